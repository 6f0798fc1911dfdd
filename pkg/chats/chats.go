// Package chats provides the conversation data model shared by the prompt
// composer and the chat frontend. A conversation is an ordered sequence of
// turns, oldest first; only a bounded suffix of it is ever sent to the
// generation API.
package chats

// Role identifies the author of a conversation turn.
type Role string

const (
	User      Role = "user"
	Assistant Role = "assistant"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case User, Assistant:
		return true
	}
	return false
}

// String returns the underlying string value of the role.
func (r Role) String() string {
	return string(r)
}

// Turn is a single message in a conversation. It is a value type that
// copies cheaply.
type Turn struct {
	Role Role
	Text string
}

// NewTurn creates a turn with the given role and text.
func NewTurn(r Role, text string) Turn {
	return Turn{Role: r, Text: text}
}

// History is an ordered sequence of turns, oldest first. The zero value is
// an empty conversation ready to append to.
type History []Turn

// Window returns the most recent n turns, preserving their original order.
// It returns h unchanged when the history holds n turns or fewer, and nil
// when n is not positive.
func (h History) Window(n int) History {
	if n <= 0 {
		return nil
	}
	if len(h) <= n {
		return h
	}
	return h[len(h)-n:]
}

// Last returns the most recent turn and true, or a zero Turn and false if
// the history is empty.
func (h History) Last() (Turn, bool) {
	if len(h) == 0 {
		return Turn{}, false
	}
	return h[len(h)-1], true
}
