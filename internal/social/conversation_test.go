package social

import (
	"context"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/vocino/vocino/internal/model"
	"github.com/vocino/vocino/internal/store/memstore"
)

func TestConversations_RepliesInStoredOrder(t *testing.T) {
	s := memstore.New()
	ctx := context.Background()
	alice := seedUser(t, s, "alice", "Alice")
	bob := seedUser(t, s, "bob", "Bob")
	post := seedPost(t, s, alice, time.Now().UTC(), nil)

	first := seedComment(t, s, bob, post.ID)
	second := seedComment(t, s, alice, post.ID)

	conv, err := NewConversations(s, &fakeMaterializer{}, testLogger()).Build(ctx, post.ID)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if conv.PostID != post.ID || conv.AuthorID != alice.ID {
		t.Fatalf("conversation head = %+v", conv)
	}
	if len(conv.Replies) != 2 {
		t.Fatalf("replies = %v, want 2", conv.Replies)
	}
	if conv.Replies[0].ReplyID != first.ID || conv.Replies[1].ReplyID != second.ID {
		t.Fatalf("reply order = %v, want insertion order", conv.Replies)
	}
	if conv.Replies[0].AuthorName != "Bob" {
		t.Fatalf("reply author snapshot = %q, want Bob", conv.Replies[0].AuthorName)
	}
}

func TestConversations_DanglingReplySkipped(t *testing.T) {
	s := memstore.New()
	ctx := context.Background()
	alice := seedUser(t, s, "alice", "Alice")
	bob := seedUser(t, s, "bob", "Bob")
	post := seedPost(t, s, alice, time.Now().UTC(), nil)

	gone := seedComment(t, s, bob, post.ID)
	kept := seedComment(t, s, bob, post.ID)
	if err := s.Notes().Delete(ctx, gone.ID); err != nil {
		t.Fatalf("delete reply: %v", err)
	}

	conv, err := NewConversations(s, &fakeMaterializer{}, testLogger()).Build(ctx, post.ID)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(conv.Replies) != 1 || conv.Replies[0].ReplyID != kept.ID {
		t.Fatalf("replies = %v, want only the surviving reply", conv.Replies)
	}
}

func TestConversations_MissingPostYieldsZeroValue(t *testing.T) {
	s := memstore.New()
	conv, err := NewConversations(s, &fakeMaterializer{}, testLogger()).Build(context.Background(), primitive.NewObjectID())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if !conv.PostID.IsZero() {
		t.Fatalf("conversation = %+v, want zero value for missing post", conv)
	}
}

func TestConversations_MaterializesEachReply(t *testing.T) {
	s := memstore.New()
	ctx := context.Background()
	alice := seedUser(t, s, "alice", "Alice")
	bob := seedUser(t, s, "bob", "Bob")
	post := seedPost(t, s, alice, time.Now().UTC(), nil)
	r1 := seedComment(t, s, bob, post.ID)
	r2 := seedComment(t, s, bob, post.ID)

	mat := &fakeMaterializer{}
	if _, err := NewConversations(s, mat, testLogger()).Build(ctx, post.ID); err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(mat.rendered) != 2 || mat.rendered[0] != r1.ID || mat.rendered[1] != r2.ID {
		t.Fatalf("rendered = %v, want both replies in order", mat.rendered)
	}
}

func TestConversations_CarriesReactions(t *testing.T) {
	s := memstore.New()
	ctx := context.Background()
	alice := seedUser(t, s, "alice", "Alice")
	bob := seedUser(t, s, "bob", "Bob")
	post := seedPost(t, s, alice, time.Now().UTC(), nil)
	if err := NewReactions(s).React(ctx, post.ID, bob.ID, model.ReactionAffirm); err != nil {
		t.Fatalf("React: %v", err)
	}

	conv, err := NewConversations(s, &fakeMaterializer{}, testLogger()).Build(ctx, post.ID)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(conv.Reactions) != 1 || conv.Reactions[0].UserID != bob.ID {
		t.Fatalf("reactions = %v, want bob's affirmation", conv.Reactions)
	}
}
