// Package section holds the in-memory document model: a flat, ordered
// collection of titled text sections plus the focus pointer shared by the
// document-wide assistant.
package section

import (
	"strconv"
	"sync"
)

// Section is a titled block of document text. Immutable once created;
// sections are added and removed, never edited in place.
type Section struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Store is a thread-safe, ordered section collection. It also owns the
// active-section pointer, which is kept as an id and re-validated on every
// read so removal can never leave it dangling.
type Store struct {
	mu       sync.Mutex
	sections []Section
	activeID string
	nextID   int
}

// NewStore creates a store seeded with the given sections. The id counter
// starts past the highest numeric seed id.
func NewStore(seed []Section) *Store {
	s := &Store{nextID: 1}
	for _, sec := range seed {
		s.sections = append(s.sections, sec)
		if n, err := strconv.Atoi(sec.ID); err == nil && n >= s.nextID {
			s.nextID = n + 1
		}
	}
	return s
}

// List returns a copy of the collection in insertion order.
func (s *Store) List() []Section {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Section, len(s.sections))
	copy(out, s.sections)
	return out
}

// Get looks up a section by id.
func (s *Store) Get(id string) (Section, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sec := range s.sections {
		if sec.ID == id {
			return sec, true
		}
	}
	return Section{}, false
}

// Len returns the number of sections.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sections)
}

// Add appends a new section and returns it. An empty title defaults to
// "Section N" and an empty content to the canned new-section text.
func (s *Store) Add(title, content string) Section {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := strconv.Itoa(s.nextID)
	s.nextID++
	if title == "" {
		title = "Section " + id
	}
	if content == "" {
		content = NewSectionContent
	}

	sec := Section{ID: id, Title: title, Content: content}
	s.sections = append(s.sections, sec)
	return sec
}

// Remove deletes a section by id. If the removed section is the active
// one, the active pointer is cleared. Returns false if the id is unknown.
func (s *Store) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, sec := range s.sections {
		if sec.ID == id {
			s.sections = append(s.sections[:i], s.sections[i+1:]...)
			if s.activeID == id {
				s.activeID = ""
			}
			return true
		}
	}
	return false
}

// SetActive marks the given section as the current discussion focus.
// Returns false if the id does not exist.
func (s *Store) SetActive(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sec := range s.sections {
		if sec.ID == id {
			s.activeID = id
			return true
		}
	}
	return false
}

// ClearActive drops the focus pointer.
func (s *Store) ClearActive() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeID = ""
}

// Active returns the focused section, re-validated against the current
// collection. A stale pointer is cleared rather than returned.
func (s *Store) Active() (Section, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.activeID == "" {
		return Section{}, false
	}
	for _, sec := range s.sections {
		if sec.ID == s.activeID {
			return sec, true
		}
	}
	s.activeID = ""
	return Section{}, false
}
