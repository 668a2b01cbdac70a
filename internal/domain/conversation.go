package domain

import "time"

// Conversation is one persisted exchange in the append-only log. Rows
// are never read back to rebuild a session; the in-memory registry is
// the authoritative source for continuity.
type Conversation struct {
	ID          string    `json:"id"`
	SessionID   string    `json:"session_id"`
	UserMessage string    `json:"user_message"`
	BotResponse string    `json:"bot_response"`
	Language    string    `json:"language"`
	CreatedAt   time.Time `json:"created_at"`
}
