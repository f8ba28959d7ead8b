package audio

import (
	"context"
	"errors"
	"path/filepath"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/vocino/vocino/internal/model"
	"github.com/vocino/vocino/internal/store"
)

// Materializer renders a stored sample buffer into a WAV file named after
// the note id. Feed and conversation assembly call it as a terminal side
// effect for every note they return.
type Materializer struct {
	notes store.Notes
	dir   string
	log   zerolog.Logger
}

func NewMaterializer(s store.Store, dir string, log zerolog.Logger) *Materializer {
	return &Materializer{notes: s.Notes(), dir: dir, log: log}
}

// Path returns the file a note materializes to.
func (m *Materializer) Path(noteID primitive.ObjectID) string {
	return filepath.Join(m.dir, noteID.Hex()+".wav")
}

// Materialize fetches the note's samples and writes them through the codec.
// A missing note still writes an empty file and succeeds; callers cannot
// tell empty audio from real audio by the result alone. Store transport
// failures and codec failures propagate.
func (m *Materializer) Materialize(ctx context.Context, noteID primitive.ObjectID) error {
	var samples []int16
	n, err := m.notes.FindByID(ctx, noteID)
	switch {
	case err == nil:
		samples = n.Samples
	case errors.Is(err, model.ErrNotFound):
		m.log.Debug().Str("note_id", noteID.Hex()).Msg("no voice data found, writing empty file")
	default:
		return err
	}
	return Encode(m.Path(noteID), samples)
}
