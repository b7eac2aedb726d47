package domain

type Tone string

const (
	ToneSuccess Tone = "success"
	ToneError   Tone = "error"
)

type FeedbackState struct {
	Visible bool   `json:"visible"`
	Tone    Tone   `json:"tone,omitempty"`
	Message string `json:"message,omitempty"`
}

const (
	MessageAddedAll   = "Added all items to your cart."
	MessageRemovedAll = "Removed all items from your cart."
	MessageFailure    = "An error occurred. Try again later."
)
