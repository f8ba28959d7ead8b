package social

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vocino/vocino/internal/model"
	"github.com/vocino/vocino/internal/store/memstore"
)

func TestReactions_AppendThenReplace(t *testing.T) {
	s := memstore.New()
	ctx := context.Background()
	alice := seedUser(t, s, "alice", "Alice")
	bob := seedUser(t, s, "bob", "Bob")
	post := seedPost(t, s, alice, time.Now().UTC(), nil)

	r := NewReactions(s)
	if err := r.React(ctx, post.ID, bob.ID, model.ReactionAffirm); err != nil {
		t.Fatalf("first React: %v", err)
	}
	if err := r.React(ctx, post.ID, bob.ID, model.ReactionObject); err != nil {
		t.Fatalf("second React: %v", err)
	}

	got, _ := s.Notes().FindByID(ctx, post.ID)
	if len(got.Reactions) != 1 {
		t.Fatalf("reactions = %v, want exactly one entry for bob", got.Reactions)
	}
	if got.Reactions[0].UserID != bob.ID || got.Reactions[0].Kind != model.ReactionObject {
		t.Fatalf("reaction = %+v, want bob/object", got.Reactions[0])
	}
}

func TestReactions_TwoUsersKeepSeparateEntries(t *testing.T) {
	s := memstore.New()
	ctx := context.Background()
	alice := seedUser(t, s, "alice", "Alice")
	bob := seedUser(t, s, "bob", "Bob")
	carol := seedUser(t, s, "carol", "Carol")
	post := seedPost(t, s, alice, time.Now().UTC(), nil)

	r := NewReactions(s)
	if err := r.React(ctx, post.ID, bob.ID, model.ReactionAffirm); err != nil {
		t.Fatalf("bob React: %v", err)
	}
	if err := r.React(ctx, post.ID, carol.ID, model.ReactionObject); err != nil {
		t.Fatalf("carol React: %v", err)
	}

	got, _ := s.Notes().FindByID(ctx, post.ID)
	if len(got.Reactions) != 2 {
		t.Fatalf("reactions = %v, want one per user", got.Reactions)
	}
}

func TestReactions_SameKindTwiceDoesNotDuplicate(t *testing.T) {
	s := memstore.New()
	ctx := context.Background()
	alice := seedUser(t, s, "alice", "Alice")
	bob := seedUser(t, s, "bob", "Bob")
	post := seedPost(t, s, alice, time.Now().UTC(), nil)

	r := NewReactions(s)
	for i := 0; i < 2; i++ {
		if err := r.React(ctx, post.ID, bob.ID, model.ReactionAffirm); err != nil {
			t.Fatalf("React #%d: %v", i+1, err)
		}
	}

	got, _ := s.Notes().FindByID(ctx, post.ID)
	if len(got.Reactions) != 1 {
		t.Fatalf("reactions = %v, want single entry after repeat react", got.Reactions)
	}
}

func TestReactions_InvalidKind(t *testing.T) {
	s := memstore.New()
	ctx := context.Background()
	alice := seedUser(t, s, "alice", "Alice")
	post := seedPost(t, s, alice, time.Now().UTC(), nil)

	err := NewReactions(s).React(ctx, post.ID, alice.ID, "shrug")
	if !errors.Is(err, model.ErrValidation) {
		t.Fatalf("want ErrValidation, got %v", err)
	}
}
