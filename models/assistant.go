package models

// AssistantRequest is the payload coming from the app into /api/assistant/chat.
type AssistantRequest struct {
	Text string `json:"text"` // user's message (voice→text or typed)
}

// AssistantResponse is what the handler returns to the app.
type AssistantResponse struct {
	Intent  string `json:"intent"` // "book" or "chat"
	Reply   string `json:"reply"`
	Booked  bool   `json:"booked"`            // true when a booking was placed; the app navigates to the order list
	OrderID string `json:"orderId,omitempty"` // set when Booked is true
}
