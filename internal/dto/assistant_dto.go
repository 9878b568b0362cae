package dto

type AskRequest struct {
	Question string `json:"question" validate:"required,max=2000"`
}

type AskResponse struct {
	Answer    string   `json:"answer"`
	Citations []string `json:"citations"`
	Degraded  bool     `json:"degraded"`
	Cached    bool     `json:"cached"`
}

type SearchPassageResponse struct {
	DocumentId string  `json:"document_id"`
	Title      string  `json:"title"`
	Snippet    string  `json:"snippet"`
	Score      float64 `json:"score"`
}

type SearchResponse struct {
	Passages []SearchPassageResponse `json:"passages"`
}
