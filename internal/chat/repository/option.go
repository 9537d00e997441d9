package repository

// CreateChatMessageOptions holds parameters for logging one exchange.
type CreateChatMessageOptions struct {
	Message     string
	BotResponse string
	Intent      string
	Confidence  float64
}
