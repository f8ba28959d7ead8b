package storetest

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/vocino/vocino/internal/model"
	"github.com/vocino/vocino/internal/store"
)

// Run exercises a minimal compliance suite against a store.Store
// implementation. makeStore should return a clean, isolated store.
func Run(t *testing.T, makeStore func(t *testing.T) store.Store) {
	t.Helper()

	s := makeStore(t)
	ctx := context.Background()

	// Users
	alice := &model.User{ID: primitive.NewObjectID(), Username: "u-" + uuid.New().String(), Name: "Alice"}
	if err := s.Users().Insert(ctx, alice); err != nil {
		t.Fatalf("Insert user: %v", err)
	}
	if err := s.Users().Insert(ctx, &model.User{ID: primitive.NewObjectID(), Username: alice.Username}); !errors.Is(err, model.ErrConflict) {
		t.Fatalf("duplicate username: want ErrConflict, got %v", err)
	}
	if got, err := s.Users().FindByID(ctx, alice.ID); err != nil || got.Username != alice.Username {
		t.Fatalf("FindByID: got=%v err=%v", got, err)
	}
	if got, err := s.Users().FindByUsername(ctx, alice.Username); err != nil || got.ID != alice.ID {
		t.Fatalf("FindByUsername: got=%v err=%v", got, err)
	}
	if _, err := s.Users().FindByID(ctx, primitive.NewObjectID()); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("FindByID missing: want ErrNotFound, got %v", err)
	}

	// Profile field updates by username
	if err := s.Users().SetProfileField(ctx, alice.Username, store.FieldDescription, "voice notes enjoyer"); err != nil {
		t.Fatalf("SetProfileField: %v", err)
	}
	if err := s.Users().SetProfileField(ctx, "no-such-user", store.FieldName, "x"); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("SetProfileField missing: want ErrNotFound, got %v", err)
	}
	if got, _ := s.Users().FindByID(ctx, alice.ID); got.Description != "voice notes enjoyer" {
		t.Fatalf("description not updated: %q", got.Description)
	}

	// Array push/pull: duplicate pushes stick, pull removes every occurrence,
	// pulling an absent value is a no-op.
	other := primitive.NewObjectID()
	for i := 0; i < 2; i++ {
		if err := s.Users().Push(ctx, alice.ID, store.UserFollowing, other); err != nil {
			t.Fatalf("Push: %v", err)
		}
	}
	if got, _ := s.Users().FindByID(ctx, alice.ID); len(got.Following) != 2 {
		t.Fatalf("Push is conditioned: following=%v", got.Following)
	}
	if err := s.Users().Pull(ctx, alice.ID, store.UserFollowing, other); err != nil {
		t.Fatalf("Pull: %v", err)
	}
	if got, _ := s.Users().FindByID(ctx, alice.ID); len(got.Following) != 0 {
		t.Fatalf("Pull left entries: following=%v", got.Following)
	}
	if err := s.Users().Pull(ctx, alice.ID, store.UserFollowing, other); err != nil {
		t.Fatalf("Pull absent value should be a no-op: %v", err)
	}

	// Notes
	post := &model.VoiceNote{ID: primitive.NewObjectID(), AuthorID: alice.ID, AuthorName: "Alice", IsPost: true, Samples: []int16{0, 512, -512}}
	if err := s.Notes().Insert(ctx, post); err != nil {
		t.Fatalf("Insert note: %v", err)
	}
	if got, err := s.Notes().FindByID(ctx, post.ID); err != nil || got.AuthorID != alice.ID {
		t.Fatalf("FindByID note: got=%v err=%v", got, err)
	}
	if _, err := s.Notes().FindByID(ctx, primitive.NewObjectID()); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("FindByID missing note: want ErrNotFound, got %v", err)
	}

	reply := primitive.NewObjectID()
	if err := s.Notes().AppendReply(ctx, post.ID, reply); err != nil {
		t.Fatalf("AppendReply: %v", err)
	}
	if got, _ := s.Notes().FindByID(ctx, post.ID); len(got.Replies) != 1 || got.Replies[0] != reply {
		t.Fatalf("replies: %v", got.Replies)
	}

	// Reaction replace matches only an existing element for the same user.
	r := model.Reaction{UserID: alice.ID, Kind: model.ReactionAffirm}
	if n, err := s.Notes().ReplaceReaction(ctx, post.ID, r); err != nil || n != 0 {
		t.Fatalf("ReplaceReaction absent: n=%d err=%v", n, err)
	}
	if err := s.Notes().AppendReaction(ctx, post.ID, r); err != nil {
		t.Fatalf("AppendReaction: %v", err)
	}
	r.Kind = model.ReactionObject
	if n, err := s.Notes().ReplaceReaction(ctx, post.ID, r); err != nil || n != 1 {
		t.Fatalf("ReplaceReaction present: n=%d err=%v", n, err)
	}
	if got, _ := s.Notes().FindByID(ctx, post.ID); len(got.Reactions) != 1 || got.Reactions[0].Kind != model.ReactionObject {
		t.Fatalf("reactions after replace: %v", got.Reactions)
	}
	// Replacing with the identical reaction still reports a match.
	if n, err := s.Notes().ReplaceReaction(ctx, post.ID, r); err != nil || n != 1 {
		t.Fatalf("ReplaceReaction same kind: n=%d err=%v", n, err)
	}

	// Delete is idempotent and leaves the parent's replies untouched.
	if err := s.Notes().Delete(ctx, post.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := s.Notes().Delete(ctx, post.ID); err != nil {
		t.Fatalf("Delete missing: %v", err)
	}
	if _, err := s.Notes().FindByID(ctx, post.ID); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("note survived delete: %v", err)
	}
}
