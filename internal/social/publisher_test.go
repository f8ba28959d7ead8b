package social

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/vocino/vocino/internal/model"
	"github.com/vocino/vocino/internal/store/memstore"
)

func TestPublisher_CreatePostSnapshotsAuthorName(t *testing.T) {
	s := memstore.New()
	ctx := context.Background()
	alice := seedUser(t, s, "alice", "Alice")

	note, err := NewPublisher(s).CreatePost(ctx, alice.ID, []int16{1, 2})
	if err != nil {
		t.Fatalf("CreatePost: %v", err)
	}
	if !note.IsPost || note.AuthorName != "Alice" {
		t.Fatalf("note = %+v, want post with snapshotted name", note)
	}
	if note.Timestamp.IsZero() || note.Timestamp.Location() != time.UTC {
		t.Fatalf("timestamp = %v, want UTC creation time", note.Timestamp)
	}

	owner, _ := s.Users().FindByID(ctx, alice.ID)
	if len(owner.VoiceNotes) != 1 || owner.VoiceNotes[0] != note.ID {
		t.Fatalf("voiceNotes = %v, want the new post linked", owner.VoiceNotes)
	}
}

func TestPublisher_CommentStaysOutOfAuthorVoiceNotes(t *testing.T) {
	s := memstore.New()
	ctx := context.Background()
	alice := seedUser(t, s, "alice", "Alice")
	bob := seedUser(t, s, "bob", "Bob")
	post := seedPost(t, s, alice, time.Now().UTC(), nil)

	comment, err := NewPublisher(s).CreateComment(ctx, bob.ID, post.ID, []int16{3})
	if err != nil {
		t.Fatalf("CreateComment: %v", err)
	}
	if comment.IsPost {
		t.Fatal("comment flagged as post")
	}

	parent, _ := s.Notes().FindByID(ctx, post.ID)
	if len(parent.Replies) != 1 || parent.Replies[0] != comment.ID {
		t.Fatalf("replies = %v, want the comment appended", parent.Replies)
	}
	author, _ := s.Users().FindByID(ctx, bob.ID)
	if len(author.VoiceNotes) != 0 {
		t.Fatalf("voiceNotes = %v, comments must not join the author list", author.VoiceNotes)
	}
}

func TestPublisher_CreatePostUnknownAuthor(t *testing.T) {
	_, err := NewPublisher(memstore.New()).CreatePost(context.Background(), primitive.NewObjectID(), nil)
	if !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestPublisher_DeleteDoesNotCascadeIntoParentReplies(t *testing.T) {
	s := memstore.New()
	ctx := context.Background()
	alice := seedUser(t, s, "alice", "Alice")
	bob := seedUser(t, s, "bob", "Bob")
	post := seedPost(t, s, alice, time.Now().UTC(), nil)

	pub := NewPublisher(s)
	comment, err := pub.CreateComment(ctx, bob.ID, post.ID, nil)
	if err != nil {
		t.Fatalf("CreateComment: %v", err)
	}
	if err := pub.DeletePost(ctx, bob.ID, comment.ID); err != nil {
		t.Fatalf("DeletePost: %v", err)
	}

	if _, err := s.Notes().FindByID(ctx, comment.ID); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("deleted note still readable: %v", err)
	}
	parent, _ := s.Notes().FindByID(ctx, post.ID)
	if len(parent.Replies) != 1 || parent.Replies[0] != comment.ID {
		t.Fatalf("replies = %v, want the dangling id left in place", parent.Replies)
	}
}

func TestPublisher_DeletePostUnlinksAuthor(t *testing.T) {
	s := memstore.New()
	ctx := context.Background()
	alice := seedUser(t, s, "alice", "Alice")

	pub := NewPublisher(s)
	note, err := pub.CreatePost(ctx, alice.ID, nil)
	if err != nil {
		t.Fatalf("CreatePost: %v", err)
	}
	if err := pub.DeletePost(ctx, alice.ID, note.ID); err != nil {
		t.Fatalf("DeletePost: %v", err)
	}
	owner, _ := s.Users().FindByID(ctx, alice.ID)
	if len(owner.VoiceNotes) != 0 {
		t.Fatalf("voiceNotes = %v, want the post pulled", owner.VoiceNotes)
	}
}
