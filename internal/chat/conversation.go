// Package chat owns conversation state: append-only message logs and the
// timer-driven delivery of simulated assistant replies.
package chat

import (
	"strings"
	"sync"
	"time"
)

// Role identifies who authored a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one entry in a conversation log. Never mutated or deleted.
type Message struct {
	ID        string    `json:"id"`
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
	SectionID string    `json:"section_id,omitempty"`
}

// Conversation is an ordered, append-only message log. It is the only
// owner of its messages; callers get snapshot copies. Replies are computed
// synchronously on Send but become visible only after a delay, each on its
// own timer. Two sends in flight produce two replies, landing in timer
// completion order.
type Conversation struct {
	mu        sync.Mutex
	sectionID string
	messages  []Message
	pending   int
}

// New creates an empty conversation. sectionID is empty for the
// document-wide conversation.
func New(sectionID string) *Conversation {
	return &Conversation{sectionID: sectionID}
}

// SectionID reports which section the conversation is scoped to, if any.
func (c *Conversation) SectionID() string {
	return c.sectionID
}

// Append adds a message directly, used for greetings. Returns the stored
// message with its assigned id.
func (c *Conversation) Append(role Role, content string) Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.appendLocked(role, content)
}

func (c *Conversation) appendLocked(role Role, content string) Message {
	msg := Message{
		ID:        NewMessageID(),
		Role:      role,
		Content:   content,
		Timestamp: time.Now(),
		SectionID: c.sectionID,
	}
	c.messages = append(c.messages, msg)
	return msg
}

// Send appends the user's message and schedules the assistant reply.
// Blank input is a no-op: nothing is appended and no reply is generated.
// The reply text is computed synchronously before the delay is scheduled;
// the delay only simulates typing latency.
func (c *Conversation) Send(text string, respond func(string) string, delay time.Duration) (Message, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Message{}, false
	}

	c.mu.Lock()
	userMsg := c.appendLocked(RoleUser, trimmed)
	c.pending++
	c.mu.Unlock()

	reply := respond(trimmed)

	time.AfterFunc(delay, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.appendLocked(RoleAssistant, reply)
		c.pending--
	})

	return userMsg, true
}

// Messages returns a snapshot copy of the log.
func (c *Conversation) Messages() []Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Message, len(c.messages))
	copy(out, c.messages)
	return out
}

// Pending reports how many scheduled replies have not landed yet. The
// document-wide widget refuses new input while this is nonzero.
func (c *Conversation) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending
}

// Len returns the number of messages currently in the log.
func (c *Conversation) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.messages)
}
