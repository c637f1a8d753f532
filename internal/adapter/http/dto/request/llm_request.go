package request

type LLMRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}
