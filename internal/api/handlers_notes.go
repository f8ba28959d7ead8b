package api

import (
	"encoding/json"
	"net/http"

	"github.com/vocino/vocino/internal/api/respond"
	"github.com/vocino/vocino/internal/model"
	"github.com/vocino/vocino/internal/social"
)

type NotesHandler struct {
	publisher     *social.Publisher
	reactions     *social.Reactions
	conversations *social.Conversations
	feed          *social.Feed
}

func NewNotesHandler(p *social.Publisher, re *social.Reactions, c *social.Conversations, f *social.Feed) *NotesHandler {
	return &NotesHandler{publisher: p, reactions: re, conversations: c, feed: f}
}

func (h *NotesHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	authorID, ok := pathID(w, r, "userId")
	if !ok {
		return
	}
	var in struct {
		Samples []int16 `json:"samples"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteBadRequest(w, "invalid json")
		return
	}
	note, err := h.publisher.CreatePost(r.Context(), authorID, in.Samples)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, note)
}

func (h *NotesHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	authorID, ok := pathID(w, r, "userId")
	if !ok {
		return
	}
	parentID, ok := pathID(w, r, "noteId")
	if !ok {
		return
	}
	var in struct {
		Samples []int16 `json:"samples"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteBadRequest(w, "invalid json")
		return
	}
	note, err := h.publisher.CreateComment(r.Context(), authorID, parentID, in.Samples)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, note)
}

func (h *NotesHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	authorID, ok := pathID(w, r, "userId")
	if !ok {
		return
	}
	noteID, ok := pathID(w, r, "noteId")
	if !ok {
		return
	}
	if err := h.publisher.DeletePost(r.Context(), authorID, noteID); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *NotesHandler) React(w http.ResponseWriter, r *http.Request) {
	noteID, ok := pathID(w, r, "noteId")
	if !ok {
		return
	}
	userID, ok := pathID(w, r, "userId")
	if !ok {
		return
	}
	var in struct {
		Kind model.ReactionKind `json:"kind"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteBadRequest(w, "invalid json")
		return
	}
	if err := h.reactions.React(r.Context(), noteID, userID, in.Kind); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *NotesHandler) Feed(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "userId")
	if !ok {
		return
	}
	posts, err := h.feed.Build(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, posts)
}

func (h *NotesHandler) Conversation(w http.ResponseWriter, r *http.Request) {
	noteID, ok := pathID(w, r, "noteId")
	if !ok {
		return
	}
	conv, err := h.conversations.Build(r.Context(), noteID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	// Assembly reports a missing post as a zero-valued conversation.
	if conv.PostID.IsZero() {
		respond.WriteNotFound(w, "not found")
		return
	}
	respond.WriteJSON(w, http.StatusOK, conv)
}
