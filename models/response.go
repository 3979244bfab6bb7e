package models

// Source identifies one retrieved chunk backing an answer.
type Source struct {
	File  string  `json:"file"`
	Chunk int     `json:"chunk"`
	Score float64 `json:"score"`
}

// QueryResponse is the body returned by POST /query.
type QueryResponse struct {
	Answer  string   `json:"answer"`
	Sources []Source `json:"sources"`
}
