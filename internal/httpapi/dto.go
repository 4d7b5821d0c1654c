package httpapi

// SolveResponse is the JSON body returned by POST /v1/solve.
type SolveResponse struct {
	ID        string `json:"id"`
	Reachable bool   `json:"reachable"`
	Cost      *int64 `json:"cost,omitempty"`
	Tiles     int    `json:"tiles"`
	Render    string `json:"render,omitempty"`
}

// ErrorResponse carries a client-facing failure.
type ErrorResponse struct {
	ID    string `json:"id,omitempty"`
	Error string `json:"error"`
}
