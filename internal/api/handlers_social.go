package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/vocino/vocino/internal/api/respond"
	"github.com/vocino/vocino/internal/social"
)

type SocialHandler struct {
	graph    *social.Graph
	profiles *social.Profiles
}

func NewSocialHandler(graph *social.Graph, profiles *social.Profiles) *SocialHandler {
	return &SocialHandler{graph: graph, profiles: profiles}
}

// pathID parses the named path variable as an ObjectID, answering 400 on a
// malformed id. The bool reports whether the handler should continue.
func pathID(w http.ResponseWriter, r *http.Request, name string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)[name])
	if err != nil {
		respond.WriteBadRequest(w, "invalid "+name)
		return primitive.NilObjectID, false
	}
	return id, true
}

func (h *SocialHandler) Follow(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "userId")
	if !ok {
		return
	}
	targetID, ok := pathID(w, r, "targetId")
	if !ok {
		return
	}
	if err := h.graph.Follow(r.Context(), userID, targetID); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *SocialHandler) Unfollow(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "userId")
	if !ok {
		return
	}
	targetID, ok := pathID(w, r, "targetId")
	if !ok {
		return
	}
	following, err := h.graph.Unfollow(r.Context(), userID, targetID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, following)
}

func (h *SocialHandler) RemoveFollower(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "userId")
	if !ok {
		return
	}
	followerID, ok := pathID(w, r, "followerId")
	if !ok {
		return
	}
	followers, err := h.graph.RemoveFollower(r.Context(), userID, followerID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, followers)
}

func (h *SocialHandler) ListFollowing(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "userId")
	if !ok {
		return
	}
	out, err := h.profiles.ListFollowing(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, out)
}

func (h *SocialHandler) ListFollowers(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "userId")
	if !ok {
		return
	}
	out, err := h.profiles.ListFollowers(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, out)
}

func (h *SocialHandler) FindProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "userId")
	if !ok {
		return
	}
	username := mux.Vars(r)["username"]
	out, err := h.profiles.FindByUsername(r.Context(), userID, username)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, out)
}
