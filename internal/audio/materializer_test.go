package audio

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/vocino/vocino/internal/model"
	"github.com/vocino/vocino/internal/store/memstore"
)

func TestMaterializer_WritesStoredSamples(t *testing.T) {
	s := memstore.New()
	ctx := context.Background()
	note := &model.VoiceNote{
		ID:        primitive.NewObjectID(),
		AuthorID:  primitive.NewObjectID(),
		IsPost:    true,
		Samples:   []int16{10, -10, 300},
		Timestamp: time.Now().UTC(),
	}
	if err := s.Notes().Insert(ctx, note); err != nil {
		t.Fatalf("insert: %v", err)
	}

	m := NewMaterializer(s, t.TempDir(), zerolog.Nop())
	if err := m.Materialize(ctx, note.ID); err != nil {
		t.Fatalf("Materialize: %v", err)
	}

	got, err := Decode(m.Path(note.ID))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(got) != 3 || got[0] != 10 || got[1] != -10 || got[2] != 300 {
		t.Fatalf("decoded = %v, want stored samples", got)
	}
}

func TestMaterializer_MissingNoteWritesEmptyFile(t *testing.T) {
	m := NewMaterializer(memstore.New(), t.TempDir(), zerolog.Nop())
	id := primitive.NewObjectID()
	if err := m.Materialize(context.Background(), id); err != nil {
		t.Fatalf("Materialize: %v", err)
	}
	if _, err := os.Stat(m.Path(id)); err != nil {
		t.Fatalf("expected a file on disk: %v", err)
	}
	got, err := Decode(m.Path(id))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("decoded %d samples from a missing note, want 0", len(got))
	}
}
