package models

// ObjectRef names one uploaded object to ingest.
type ObjectRef struct {
	Bucket string `json:"bucket"`
	Key    string `json:"key"`
}

// ChunkError records a single chunk that could not be embedded or stored.
type ChunkError struct {
	Index int
	Err   error
}

// FileResult is the per-object outcome of an ingestion run. A failed file
// never aborts the rest of the batch; the handler aggregates these instead.
type FileResult struct {
	Key         string
	Chunks      int
	Indexed     int
	Skipped     int
	ChunkErrors []ChunkError
	Err         error
}

// BatchResult aggregates one ingestion invocation.
type BatchResult struct {
	ProcessedFiles int
	Files          []FileResult
}

// IngestResponseBody is the body of the ingestion handler's response.
type IngestResponseBody struct {
	Message        string `json:"message,omitempty"`
	ProcessedFiles int    `json:"processed_files,omitempty"`
	Error          string `json:"error,omitempty"`
}

// IngestResponse mirrors the Lambda proxy-style response envelope.
type IngestResponse struct {
	StatusCode int                `json:"statusCode"`
	Body       IngestResponseBody `json:"body"`
}
