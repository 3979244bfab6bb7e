package models

// QueryRequest is the body of POST /query.
type QueryRequest struct {
	Question string `json:"question" binding:"required"`
	TopK     int    `json:"top_k,omitempty"`
}
