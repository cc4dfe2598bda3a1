package dto

type SendMessageRequestDTO struct {
	Text string `json:"text" validate:"required,notblank" example:"Какие документы нужны?"`
}

type ChatMessageDTO struct {
	ID        string `json:"id"`
	Text      string `json:"text" example:"Рассмотрение займа занимает до 10 минут"`
	IsBot     bool   `json:"is_bot"`
	Timestamp string `json:"timestamp" example:"2024-01-15T16:09:57+03:00"`
}

type ChatHistoryResponseDTO struct {
	Messages []ChatMessageDTO `json:"messages"`
	Typing   bool             `json:"typing"`
}

type QuickQuestionsResponseDTO struct {
	Questions []string `json:"questions"`
}
