/*
Package server implements msgpack IPC for the dictionary services.

The server reads structured messages from stdin and writes responses to
stdout, both msgpack encoded. Each message carries an ID the response echoes
back, so clients can pipeline requests over the single pipe pair.

A request selects an operation with the op field:

	{"id": "req_001", "op": "validate", "lang": "fr", "w": "chat"}
	{"id": "req_002", "op": "search", "lang": "fr", "p": "cha", "n": 24}
	{"id": "req_003", "op": "suggest", "lang": "fr", "kind": "rack", "l": "tachs"}

Responses include the elapsed handling time in microseconds:

	{"id": "req_002", "words": [...], "c": 2, "t": 145}

Unknown operations and malformed input come back as an error response with
code 400; anything that fails inside a handler maps to 500.

msgpack keeps messages roughly a third smaller than JSON and parses faster,
which matters for editor clients validating on every keystroke.
*/
package server

// Request is the envelope every client message shares. Fields beyond ID, Op
// and Language are operation specific.
type Request struct {
	ID        string `msgpack:"id"`
	Op        string `msgpack:"op"`
	Language  string `msgpack:"lang"`
	Word      string `msgpack:"w,omitempty"`
	Prefix    string `msgpack:"p,omitempty"`
	Pattern   string `msgpack:"pat,omitempty"`
	Letters   string `msgpack:"l,omitempty"`
	Blanks    int    `msgpack:"b,omitempty"`
	MinLength int    `msgpack:"min,omitempty"`
	Limit     int    `msgpack:"n,omitempty"`
	Kind      string `msgpack:"kind,omitempty"` // suggest: "fix", "rack" or "top"
	Path      string `msgpack:"path,omitempty"` // reload: explicit dictionary file
}

// ValidateResponse answers op "validate".
type ValidateResponse struct {
	ID        string `msgpack:"id"`
	Word      string `msgpack:"w"`
	Valid     bool   `msgpack:"ok"`
	Points    int    `msgpack:"pts"`
	TimeTaken int64  `msgpack:"t"`
}

// DefineResponse answers op "define".
type DefineResponse struct {
	ID         string `msgpack:"id"`
	Word       string `msgpack:"w"`
	Found      bool   `msgpack:"ok"`
	Definition string `msgpack:"def,omitempty"`
	TimeTaken  int64  `msgpack:"t"`
}

// ResponseWord is one entry in a search or suggest response.
type ResponseWord struct {
	Word     string  `msgpack:"w"`
	Points   int     `msgpack:"pts"`
	Length   int     `msgpack:"len"`
	Distance float64 `msgpack:"d,omitempty"`
}

// SearchResponse answers ops "search" and "suggest".
type SearchResponse struct {
	ID        string         `msgpack:"id"`
	Words     []ResponseWord `msgpack:"words"`
	Count     int            `msgpack:"c"`
	TimeTaken int64          `msgpack:"t"`
}

// StatsResponse answers op "stats" with one snapshot per language.
type StatsResponse struct {
	ID        string          `msgpack:"id"`
	Languages []LanguageStats `msgpack:"langs"`
	TimeTaken int64           `msgpack:"t"`
}

// LanguageStats is the per-language slice of a stats response.
type LanguageStats struct {
	Language       string  `msgpack:"lang"`
	Words          int     `msgpack:"words"`
	ValidationHits uint64  `msgpack:"v_hits"`
	ValidationRate float64 `msgpack:"v_rate"`
	DefinitionHits uint64  `msgpack:"d_hits"`
	DefinitionRate float64 `msgpack:"d_rate"`
	SearchHits     uint64  `msgpack:"s_hits"`
	SearchRate     float64 `msgpack:"s_rate"`
}

// ReloadResponse answers op "reload".
type ReloadResponse struct {
	ID        string `msgpack:"id"`
	Status    string `msgpack:"status"`
	Words     int    `msgpack:"words"`
	TimeTaken int64  `msgpack:"t"`
}

// ErrorResponse reports a failed request.
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
