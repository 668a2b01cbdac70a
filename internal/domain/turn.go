package domain

// Turn roles follow the Gemini content convention.
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// Turn is a single message inside a session's history. Immutable once
// appended.
type Turn struct {
	Role string `json:"role"`
	Text string `json:"text"`
}
