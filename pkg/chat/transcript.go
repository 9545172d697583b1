package chat

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Transcript is an append-only conversation log. Messages are never edited
// or removed, and Messages returns them in insertion order.
type Transcript struct {
	messages []Message
}

// Append adds a message stamped with the current time and returns it. The
// content is stored exactly as given; callers that want trimming do it
// before appending.
func (t *Transcript) Append(role Role, content string) Message {
	msg := Message{Role: role, Content: content, Time: time.Now()}
	t.messages = append(t.messages, msg)
	return msg
}

// Len returns the number of messages.
func (t *Transcript) Len() int { return len(t.messages) }

// Messages returns a copy of the log in insertion order.
func (t *Transcript) Messages() []Message {
	out := make([]Message, len(t.messages))
	copy(out, t.messages)
	return out
}

// Last returns the most recent message, if any.
func (t *Transcript) Last() (Message, bool) {
	if len(t.messages) == 0 {
		return Message{}, false
	}
	return t.messages[len(t.messages)-1], true
}

// Markdown renders the conversation as a markdown document with questions
// as headings and answers as body text.
func (t *Transcript) Markdown(ticker string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s analysis\n\n", strings.ToUpper(ticker))
	for _, msg := range t.messages {
		switch msg.Role {
		case RoleUser:
			fmt.Fprintf(&b, "## Q: %s\n\n", strings.TrimSpace(msg.Content))
		case RoleBot:
			b.WriteString(strings.TrimSpace(msg.Content))
			b.WriteString("\n\n")
		}
	}
	return b.String()
}

// Save writes the conversation markdown under dir as
// <ticker>_analysis.md, creating dir if needed. The ticker is lowercased
// for the file name, the same convention the backend uses for its own
// artifacts.
func (t *Transcript) Save(dir, ticker string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("%s_analysis.md", strings.ToLower(ticker)))
	if err := os.WriteFile(path, []byte(t.Markdown(ticker)), 0o644); err != nil {
		return "", fmt.Errorf("write transcript: %w", err)
	}

	return path, nil
}
