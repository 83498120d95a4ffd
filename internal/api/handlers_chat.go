package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/dgallion1/docchat/internal/assistant"
	"github.com/dgallion1/docchat/internal/chat"
	"github.com/dgallion1/docchat/internal/section"
	"github.com/go-chi/chi/v5"
)

type chatRequest struct {
	Message string `json:"message"`
}

func conversationResponse(conv *chat.Conversation) map[string]any {
	return map[string]any{
		"messages": conv.Messages(),
		"pending":  conv.Pending(),
	}
}

func (s *Server) handleGetGlobalChat(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, conversationResponse(s.conversations.Global()))
}

// handlePostGlobalChat sends a message to the document-wide assistant.
// The widget's input is disabled while a reply is pending, so a second
// send in that window is refused.
func (s *Server) handlePostGlobalChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	conv := s.conversations.Global()
	if conv.Pending() > 0 {
		jsonError(w, "assistant is typing", http.StatusConflict)
		return
	}

	userMsg, ok := conv.Send(req.Message, s.timed(s.responder.Reply, s.cfg.ReplyDelay), s.cfg.ReplyDelay)
	if !ok {
		// Blank input is a no-op, not an error.
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]any{
		"message": userMsg,
		"pending": conv.Pending(),
	})
}

func (s *Server) handleGetSectionChat(w http.ResponseWriter, r *http.Request) {
	sec, ok := s.store.Get(chi.URLParam(r, "sectionID"))
	if !ok {
		jsonError(w, "section not found", http.StatusNotFound)
		return
	}
	conv := s.sectionConversation(sec)
	writeJSON(w, http.StatusOK, conversationResponse(conv))
}

// handlePostSectionChat sends a message to a per-section assistant. Unlike
// the global widget, section widgets accept input while a reply is
// pending; both replies land, each on its own timer.
func (s *Server) handlePostSectionChat(w http.ResponseWriter, r *http.Request) {
	sec, ok := s.store.Get(chi.URLParam(r, "sectionID"))
	if !ok {
		jsonError(w, "section not found", http.StatusNotFound)
		return
	}

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	conv := s.sectionConversation(sec)
	respond := func(text string) string {
		return s.responder.SectionReply(sec, text)
	}
	userMsg, ok := conv.Send(req.Message, s.timed(respond, s.cfg.SectionReplyDelay), s.cfg.SectionReplyDelay)
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]any{
		"message": userMsg,
		"pending": conv.Pending(),
	})
}

func (s *Server) sectionConversation(sec section.Section) *chat.Conversation {
	return s.conversations.ForSection(sec.ID, func() string {
		return assistant.SectionGreeting(sec)
	})
}

// timed wraps a responder so reply latency (generation plus the simulated
// typing delay) feeds the stats window.
func (s *Server) timed(respond func(string) string, delay time.Duration) func(string) string {
	return func(text string) string {
		start := time.Now()
		reply := respond(text)
		s.stats.Record(time.Since(start) + delay)
		return reply
	}
}
