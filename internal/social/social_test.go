package social

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/vocino/vocino/internal/model"
	"github.com/vocino/vocino/internal/store"
	"github.com/vocino/vocino/internal/store/memstore"
)

// fakeMaterializer records which notes were rendered.
type fakeMaterializer struct {
	rendered []primitive.ObjectID
	err      error
}

func (f *fakeMaterializer) Materialize(ctx context.Context, noteID primitive.ObjectID) error {
	f.rendered = append(f.rendered, noteID)
	return f.err
}

func seedUser(t *testing.T, s *memstore.Memstore, username, name string) *model.User {
	t.Helper()
	u := &model.User{
		ID:       primitive.NewObjectID(),
		Username: username,
		Name:     name,
	}
	if err := s.Users().Insert(context.Background(), u); err != nil {
		t.Fatalf("seed user %s: %v", username, err)
	}
	return u
}

func seedPost(t *testing.T, s *memstore.Memstore, author *model.User, ts time.Time, samples []int16) *model.VoiceNote {
	t.Helper()
	ctx := context.Background()
	n := &model.VoiceNote{
		ID:         primitive.NewObjectID(),
		AuthorID:   author.ID,
		AuthorName: author.Name,
		IsPost:     true,
		Samples:    samples,
		Timestamp:  ts,
	}
	if err := s.Notes().Insert(ctx, n); err != nil {
		t.Fatalf("seed post: %v", err)
	}
	if err := s.Users().Push(ctx, author.ID, store.UserVoiceNotes, n.ID); err != nil {
		t.Fatalf("link post: %v", err)
	}
	return n
}

func seedComment(t *testing.T, s *memstore.Memstore, author *model.User, parent primitive.ObjectID) *model.VoiceNote {
	t.Helper()
	ctx := context.Background()
	n := &model.VoiceNote{
		ID:         primitive.NewObjectID(),
		AuthorID:   author.ID,
		AuthorName: author.Name,
		IsPost:     false,
		Timestamp:  time.Now().UTC(),
	}
	if err := s.Notes().Insert(ctx, n); err != nil {
		t.Fatalf("seed comment: %v", err)
	}
	if err := s.Notes().AppendReply(ctx, parent, n.ID); err != nil {
		t.Fatalf("append reply: %v", err)
	}
	return n
}

func testLogger() zerolog.Logger { return zerolog.Nop() }
