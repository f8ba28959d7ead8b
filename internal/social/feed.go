package social

import (
	"context"
	"errors"
	"sort"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/vocino/vocino/internal/model"
	"github.com/vocino/vocino/internal/store"
)

// Feed assembles the time-ordered set of top-level posts authored by a
// user's one-hop follow set. Every listing re-reads fresh store state;
// nothing is cached or batched, so cost is one round-trip per followee plus
// one per note.
type Feed struct {
	users store.Users
	notes store.Notes
	mat   Materializer
	log   zerolog.Logger
}

func NewFeed(s store.Store, mat Materializer, log zerolog.Logger) *Feed {
	return &Feed{users: s.Users(), notes: s.Notes(), mat: mat, log: log}
}

// Build gathers every voice note authored by userID's followees, keeps only
// top-level posts, and sorts them newest first. Order between posts with
// equal timestamps is not guaranteed. Each returned post is materialized as
// a side effect; a materialization failure is logged and does not fail the
// feed.
func (f *Feed) Build(ctx context.Context, userID primitive.ObjectID) ([]model.VoiceNote, error) {
	me, err := f.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]model.VoiceNote, 0)
	for _, followeeID := range me.Following {
		followee, err := f.users.FindByID(ctx, followeeID)
		if errors.Is(err, model.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		for _, noteID := range followee.VoiceNotes {
			n, err := f.notes.FindByID(ctx, noteID)
			if errors.Is(err, model.ErrNotFound) {
				continue
			}
			if err != nil {
				return nil, err
			}
			if !n.IsPost {
				continue
			}
			out = append(out, *n)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})

	for i := range out {
		if err := f.mat.Materialize(ctx, out[i].ID); err != nil {
			f.log.Error().Stack().Err(err).Str("note_id", out[i].ID.Hex()).Msg("post materialization failed")
		}
	}
	return out, nil
}
