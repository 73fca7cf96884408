package entropy

// Paths served by the authority
const (
	RawRandPath = "/api/raw_rand"
	StatsPath   = "/api/stats"
	StreamPath  = "/stream"
)

// RawRandRequest is sent as a JSON text message on the stream
type RawRandRequest struct {
	Size int `json:"size"`
}

// RawRand carries one batch of authority bytes
type RawRand struct {
	ID    string `json:"id"`
	Bytes []byte `json:"bytes"`
}

// RawRandResponse is the JSON envelope of RawRandPath
type RawRandResponse struct {
	Success bool     `json:"success"`
	Data    *RawRand `json:"data,omitempty"`
	Error   string   `json:"error,omitempty"`
}
