package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/vocino/vocino/internal/api/respond"
	"github.com/vocino/vocino/internal/identity"
)

type IdentityHandler struct {
	svc *identity.Service
}

func NewIdentityHandler(svc *identity.Service) *IdentityHandler { return &IdentityHandler{svc: svc} }

func (h *IdentityHandler) Register(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Username string `json:"username"`
		Password string `json:"password"`
		Name     string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteBadRequest(w, "invalid json")
		return
	}
	u, err := h.svc.Register(r.Context(), in.Username, in.Password, in.Name)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, u)
}

func (h *IdentityHandler) Login(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteBadRequest(w, "invalid json")
		return
	}
	u, err := h.svc.Login(r.Context(), in.Username, in.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, u)
}

// UpdateProfile patches any of name, description and password for the user
// matched by username. Absent fields are left untouched.
func (h *IdentityHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	username := mux.Vars(r)["username"]
	var in struct {
		Name        *string `json:"name,omitempty"`
		Description *string `json:"description,omitempty"`
		Password    *string `json:"password,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteBadRequest(w, "invalid json")
		return
	}
	if in.Name == nil && in.Description == nil && in.Password == nil {
		respond.WriteBadRequest(w, "no fields to update")
		return
	}
	if in.Name != nil {
		if err := h.svc.UpdateName(r.Context(), username, *in.Name); err != nil {
			writeServiceError(w, err)
			return
		}
	}
	if in.Description != nil {
		if err := h.svc.UpdateDescription(r.Context(), username, *in.Description); err != nil {
			writeServiceError(w, err)
			return
		}
	}
	if in.Password != nil {
		if err := h.svc.UpdatePassword(r.Context(), username, *in.Password); err != nil {
			writeServiceError(w, err)
			return
		}
	}
	w.WriteHeader(http.StatusNoContent)
}
