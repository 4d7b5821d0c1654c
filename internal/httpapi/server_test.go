package httpapi_test

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/assert0/aoc24/dijkstra"
	"github.com/assert0/aoc24/internal/httpapi"
)

const blockMaze = "#####\n#...#\n#S#E#\n#...#\n#####\n"

func init() {
	gin.SetMode(gin.TestMode)
}

func do(t *testing.T, s *httpapi.Server, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) httpapi.SolveResponse {
	t.Helper()
	var resp httpapi.SolveResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestHealth(t *testing.T) {
	s := httpapi.New(httpapi.Config{})
	rec := do(t, s, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK\n", rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestSolve(t *testing.T) {
	s := httpapi.New(httpapi.Config{})
	rec := do(t, s, http.MethodPost, "/v1/solve?render=true", blockMaze)
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decode(t, rec)
	assert.True(t, resp.Reachable)
	require.NotNil(t, resp.Cost)
	assert.Equal(t, int64(3004), *resp.Cost)
	assert.Equal(t, 8, resp.Tiles)
	assert.Equal(t, "#####\n#OOO#\n#O#O#\n#OOO#\n#####\n", resp.Render)
	assert.Equal(t, rec.Header().Get("X-Request-ID"), resp.ID)
}

func TestSolve_Facing(t *testing.T) {
	s := httpapi.New(httpapi.Config{})
	rec := do(t, s, http.MethodPost, "/v1/solve?facing=north", "######\n#S..E#\n######\n")
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decode(t, rec)
	require.NotNil(t, resp.Cost)
	assert.Equal(t, int64(1003), *resp.Cost)
	assert.Empty(t, resp.Render)
}

func TestSolve_Unreachable(t *testing.T) {
	s := httpapi.New(httpapi.Config{})
	rec := do(t, s, http.MethodPost, "/v1/solve", "#####\n#S#E#\n#####\n")
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decode(t, rec)
	assert.False(t, resp.Reachable)
	assert.Nil(t, resp.Cost)
	assert.Zero(t, resp.Tiles)
	assert.NotContains(t, rec.Body.String(), `"cost"`)
}

func TestSolve_SolveOptions(t *testing.T) {
	s := httpapi.New(httpapi.Config{SolveOptions: []dijkstra.Option{dijkstra.WithMaxCost(3003)}})
	rec := do(t, s, http.MethodPost, "/v1/solve", blockMaze)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, decode(t, rec).Reachable)
}

func TestSolve_BadRequests(t *testing.T) {
	tests := []struct {
		name   string
		target string
		body   string
	}{
		{"empty body", "/v1/solve", ""},
		{"ragged", "/v1/solve", "####\n#SE\n"},
		{"no start", "/v1/solve", "####\n#.E#\n####\n"},
		{"bad facing", "/v1/solve?facing=up-ish", blockMaze},
		{"bad render", "/v1/solve?render=maybe", blockMaze},
	}
	s := httpapi.New(httpapi.Config{})
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := do(t, s, http.MethodPost, tc.target, tc.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var resp httpapi.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp.Error)
		})
	}
}

func TestRun_Shutdown(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- httpapi.New(httpapi.Config{}).Run(ctx, addr) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/healthz")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("server did not stop")
	}
}
