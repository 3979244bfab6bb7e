package models

// TitanEmbedRequest is the request body for Bedrock text-embedding models.
type TitanEmbedRequest struct {
	InputText string `json:"inputText"`
}

// TitanEmbedResponse is used to parse the embedding from a Bedrock response.
type TitanEmbedResponse struct {
	Embedding []float32 `json:"embedding"`
}
