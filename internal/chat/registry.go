package chat

import "sync"

// Registry tracks the document-wide conversation and the lazily created
// per-section conversations.
type Registry struct {
	mu        sync.Mutex
	global    *Conversation
	bySection map[string]*Conversation
}

// NewRegistry creates a registry with a fresh global conversation.
func NewRegistry() *Registry {
	return &Registry{
		global:    New(""),
		bySection: make(map[string]*Conversation),
	}
}

// Global returns the document-wide conversation.
func (r *Registry) Global() *Conversation {
	return r.global
}

// ForSection returns the conversation scoped to sectionID, creating it on
// first use. greeting seeds the new conversation's first assistant message
// and is only called when a conversation is actually created.
func (r *Registry) ForSection(sectionID string, greeting func() string) *Conversation {
	r.mu.Lock()
	defer r.mu.Unlock()
	if conv, ok := r.bySection[sectionID]; ok {
		return conv
	}
	conv := New(sectionID)
	if greeting != nil {
		conv.Append(RoleAssistant, greeting())
	}
	r.bySection[sectionID] = conv
	return conv
}

// Drop discards the conversation for a removed section. Conversation
// history does not outlive its section.
func (r *Registry) Drop(sectionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.bySection, sectionID)
}
