// Package config loads reindeer job files and .env defaults.
//
// A job file is HCL. Expressions are evaluated with a single variable,
// `env`, an object holding the process environment, so paths can be written
// as "${env.MAZE_DIR}/day16.txt". Relative maze paths resolve against the
// directory of the job file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/joho/godotenv"
	"github.com/zclconf/go-cty/cty"

	"github.com/assert0/aoc24/gridgraph"
)

// ErrInvalidConfig marks a job file that decodes but carries bad values.
var ErrInvalidConfig = errors.New("config: invalid job file")

// File is the decoded form of a job file.
type File struct {
	LogLevel    string  `hcl:"log_level,optional"`
	LogFormat   string  `hcl:"log_format,optional"`
	Workers     int     `hcl:"workers,optional"`
	StartFacing string  `hcl:"start_facing,optional"`
	Glyphs      *Glyphs `hcl:"glyphs,block"`
	Mazes       []*Maze `hcl:"maze,block"`

	// dir is the directory relative maze paths are resolved against.
	dir string
}

// Glyphs overrides characters of the maze alphabet. Each set value must be
// exactly one character.
type Glyphs struct {
	Wall  string `hcl:"wall,optional"`
	Open  string `hcl:"open,optional"`
	Start string `hcl:"start,optional"`
	Goal  string `hcl:"goal,optional"`
}

// Maze names one input file.
type Maze struct {
	Name        string `hcl:"name,label"`
	Path        string `hcl:"path"`
	StartFacing string `hcl:"start_facing,optional"`
}

// Load parses and decodes the job file at path. env supplies the `env`
// object; pass Environ() for the process environment.
func Load(path string, env map[string]string) (*File, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}
	return decode(hclFile, path, env)
}

// Parse decodes job file source held in memory. filename is used for
// diagnostics and as the base for relative maze paths.
func Parse(src []byte, filename string, env map[string]string) (*File, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}
	return decode(hclFile, filename, env)
}

func decode(hclFile *hcl.File, filename string, env map[string]string) (*File, error) {
	var f File
	if diags := gohcl.DecodeBody(hclFile.Body, EvalContext(env), &f); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}
	f.dir = filepath.Dir(filename)
	if err := f.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return &f, nil
}

// EvalContext exposes env as the `env` object variable.
func EvalContext(env map[string]string) *hcl.EvalContext {
	obj := cty.EmptyObjectVal
	if len(env) > 0 {
		vals := make(map[string]cty.Value, len(env))
		for k, v := range env {
			vals[k] = cty.StringVal(v)
		}
		obj = cty.ObjectVal(vals)
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{"env": obj},
	}
}

// Environ returns the process environment as a map.
func Environ() map[string]string {
	env := make(map[string]string)
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok && k != "" {
			env[k] = v
		}
	}
	return env
}

func (f *File) validate() error {
	if f.Workers < 0 {
		return fmt.Errorf("%w: workers must not be negative (%d)", ErrInvalidConfig, f.Workers)
	}
	if _, err := f.glyphs(); err != nil {
		return err
	}
	if f.StartFacing != "" {
		if _, err := gridgraph.ParseFacing(f.StartFacing); err != nil {
			return fmt.Errorf("%w: start_facing: %w", ErrInvalidConfig, err)
		}
	}
	seen := make(map[string]bool, len(f.Mazes))
	for _, m := range f.Mazes {
		if seen[m.Name] {
			return fmt.Errorf("%w: duplicate maze %q", ErrInvalidConfig, m.Name)
		}
		seen[m.Name] = true
		if m.Path == "" {
			return fmt.Errorf("%w: maze %q has an empty path", ErrInvalidConfig, m.Name)
		}
		if m.StartFacing != "" {
			if _, err := gridgraph.ParseFacing(m.StartFacing); err != nil {
				return fmt.Errorf("%w: maze %q start_facing: %w", ErrInvalidConfig, m.Name, err)
			}
		}
	}
	return nil
}

// glyphs merges the glyphs block over the default alphabet.
func (f *File) glyphs() (gridgraph.Glyphs, error) {
	gl := gridgraph.DefaultGlyphs()
	if f.Glyphs == nil {
		return gl, nil
	}
	for _, o := range []struct {
		name string
		val  string
		dst  *rune
	}{
		{"wall", f.Glyphs.Wall, &gl.Wall},
		{"open", f.Glyphs.Open, &gl.Open},
		{"start", f.Glyphs.Start, &gl.Start},
		{"goal", f.Glyphs.Goal, &gl.Goal},
	} {
		if o.val == "" {
			continue
		}
		if utf8.RuneCountInString(o.val) != 1 {
			return gl, fmt.Errorf("%w: glyph %s must be one character, got %q", ErrInvalidConfig, o.name, o.val)
		}
		r, _ := utf8.DecodeRuneInString(o.val)
		*o.dst = r
	}
	return gl, nil
}

// MazePath returns the maze path, resolved against the job file directory
// when relative.
func (f *File) MazePath(m *Maze) string {
	if filepath.IsAbs(m.Path) || f.dir == "" {
		return m.Path
	}
	return filepath.Join(f.dir, m.Path)
}

// ParseOptions returns the gridgraph options for m. A facing on the maze
// block wins over the file-level start_facing.
func (f *File) ParseOptions(m *Maze) ([]gridgraph.ParseOption, error) {
	gl, err := f.glyphs()
	if err != nil {
		return nil, err
	}
	opts := []gridgraph.ParseOption{gridgraph.WithGlyphs(gl)}

	facing := f.StartFacing
	if m != nil && m.StartFacing != "" {
		facing = m.StartFacing
	}
	if facing != "" {
		fc, err := gridgraph.ParseFacing(facing)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		opts = append(opts, gridgraph.WithStartFacing(fc))
	}
	return opts, nil
}

// LoadDotenv loads KEY=VALUE pairs from the given files (".env" when none
// are given) into the process environment. Existing variables are kept and
// missing files are ignored.
func LoadDotenv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to load env file %s: %w", p, err)
		}
	}
	return nil
}
