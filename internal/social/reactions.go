package social

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/vocino/vocino/internal/model"
	"github.com/vocino/vocino/internal/store"
)

// Reactions applies a user's reaction to a note with upsert-or-append
// semantics: a conditional replace of the user's existing reaction, then an
// append when no element matched. The two steps are not atomic; concurrent
// reactions from the same user to the same note can both miss the replace
// and both append.
type Reactions struct {
	notes store.Notes
}

func NewReactions(s store.Store) *Reactions { return &Reactions{notes: s.Notes()} }

// React records kind as userID's reaction on noteID, replacing any earlier
// reaction by the same user. A store failure on the replace propagates; it
// is never mistaken for "no existing reaction".
func (r *Reactions) React(ctx context.Context, noteID, userID primitive.ObjectID, kind model.ReactionKind) error {
	if !kind.Valid() {
		return model.ErrValidation
	}
	reaction := model.Reaction{UserID: userID, Kind: kind}
	matched, err := r.notes.ReplaceReaction(ctx, noteID, reaction)
	if err != nil {
		return err
	}
	if matched == 0 {
		return r.notes.AppendReaction(ctx, noteID, reaction)
	}
	return nil
}
