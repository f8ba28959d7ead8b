package api

import (
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/vocino/vocino/internal/api/recovery"
	"github.com/vocino/vocino/internal/identity"
	"github.com/vocino/vocino/internal/social"
	"github.com/vocino/vocino/internal/store"
)

// Deps carries everything the router needs. Health probes may be nil.
type Deps struct {
	Store            store.Store
	Materializer     social.Materializer
	Log              zerolog.Logger
	ServiceIsHealthy func() bool
	StoreIsHealthy   func() bool
}

// NewRouter wires every client-facing command to its handler.
func NewRouter(d Deps) *mux.Router {
	router := mux.NewRouter()
	router.Use(recovery.Middleware)

	profiles := social.NewProfiles(d.Store)
	graph := social.NewGraph(d.Store, profiles)
	reactions := social.NewReactions(d.Store)
	conversations := social.NewConversations(d.Store, d.Materializer, d.Log)
	feed := social.NewFeed(d.Store, d.Materializer, d.Log)
	publisher := social.NewPublisher(d.Store)
	identitySvc := identity.NewService(d.Store)

	identityHandler := NewIdentityHandler(identitySvc)
	socialHandler := NewSocialHandler(graph, profiles)
	notesHandler := NewNotesHandler(publisher, reactions, conversations, feed)
	healthHandler := NewHealthHandler(d.ServiceIsHealthy, d.StoreIsHealthy)

	// Health
	router.HandleFunc("/api/health", healthHandler.CheckHealth).Methods("GET")
	router.HandleFunc("/api/health/store", healthHandler.CheckStoreHealth).Methods("GET")

	// Identity
	router.HandleFunc("/api/users", identityHandler.Register).Methods("POST")
	router.HandleFunc("/api/auth/login", identityHandler.Login).Methods("POST")
	router.HandleFunc("/api/users/{username}", identityHandler.UpdateProfile).Methods("PATCH")

	// Follow graph and profile listings
	router.HandleFunc("/api/users/{userId:[0-9a-fA-F]{24}}/following/{targetId:[0-9a-fA-F]{24}}", socialHandler.Follow).Methods("POST")
	router.HandleFunc("/api/users/{userId:[0-9a-fA-F]{24}}/following/{targetId:[0-9a-fA-F]{24}}", socialHandler.Unfollow).Methods("DELETE")
	router.HandleFunc("/api/users/{userId:[0-9a-fA-F]{24}}/followers/{followerId:[0-9a-fA-F]{24}}", socialHandler.RemoveFollower).Methods("DELETE")
	router.HandleFunc("/api/users/{userId:[0-9a-fA-F]{24}}/following", socialHandler.ListFollowing).Methods("GET")
	router.HandleFunc("/api/users/{userId:[0-9a-fA-F]{24}}/followers", socialHandler.ListFollowers).Methods("GET")
	router.HandleFunc("/api/users/{userId:[0-9a-fA-F]{24}}/profile/{username}", socialHandler.FindProfile).Methods("GET")

	// Voice notes
	router.HandleFunc("/api/users/{userId:[0-9a-fA-F]{24}}/notes", notesHandler.CreatePost).Methods("POST")
	router.HandleFunc("/api/users/{userId:[0-9a-fA-F]{24}}/notes/{noteId:[0-9a-fA-F]{24}}/replies", notesHandler.CreateComment).Methods("POST")
	router.HandleFunc("/api/users/{userId:[0-9a-fA-F]{24}}/notes/{noteId:[0-9a-fA-F]{24}}", notesHandler.DeletePost).Methods("DELETE")
	router.HandleFunc("/api/notes/{noteId:[0-9a-fA-F]{24}}/reactions/{userId:[0-9a-fA-F]{24}}", notesHandler.React).Methods("PUT")
	router.HandleFunc("/api/users/{userId:[0-9a-fA-F]{24}}/feed", notesHandler.Feed).Methods("GET")
	router.HandleFunc("/api/notes/{noteId:[0-9a-fA-F]{24}}/conversation", notesHandler.Conversation).Methods("GET")

	return router
}
