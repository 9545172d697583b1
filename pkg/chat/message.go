// Package chat holds the conversation model for a Stonkie session: an
// append-only transcript of user questions and bot answers, and the
// submission phase that gates new questions.
package chat

import "time"

// Role identifies who authored a message.
type Role string

const (
	// RoleUser marks a question typed by the user.
	RoleUser Role = "user"
	// RoleBot marks an answer, or an error notice, from the backend.
	RoleBot Role = "bot"
)

// Message is a single entry in the conversation log.
type Message struct {
	Role    Role
	Content string
	Time    time.Time
}
