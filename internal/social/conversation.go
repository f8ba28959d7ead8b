package social

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/vocino/vocino/internal/model"
	"github.com/vocino/vocino/internal/store"
)

// Conversations assembles the one-level-deep view of a post and its direct
// replies. A reply's own replies are never expanded.
type Conversations struct {
	notes store.Notes
	mat   Materializer
	log   zerolog.Logger
}

func NewConversations(s store.Store, mat Materializer, log zerolog.Logger) *Conversations {
	return &Conversations{notes: s.Notes(), mat: mat, log: log}
}

// Build resolves postID's reply list into a Conversation, preserving the
// stored reply order. Every resolved reply is materialized as a side
// effect. A missing post yields a zero-valued Conversation rather than an
// error; callers distinguish the cases by checking PostID against the zero
// id. Reply ids whose note no longer exists (deleted replies are not
// cascaded out of parents) are skipped.
func (c *Conversations) Build(ctx context.Context, postID primitive.ObjectID) (model.Conversation, error) {
	post, err := c.notes.FindByID(ctx, postID)
	if errors.Is(err, model.ErrNotFound) {
		return model.Conversation{}, nil
	}
	if err != nil {
		return model.Conversation{}, err
	}

	conv := model.Conversation{
		PostID:    post.ID,
		AuthorID:  post.AuthorID,
		Reactions: post.Reactions,
		Replies:   make([]model.ReplySummary, 0, len(post.Replies)),
	}
	for _, id := range post.Replies {
		reply, err := c.notes.FindByID(ctx, id)
		if errors.Is(err, model.ErrNotFound) {
			continue
		}
		if err != nil {
			return model.Conversation{}, err
		}
		if err := c.mat.Materialize(ctx, id); err != nil {
			c.log.Error().Stack().Err(err).Str("reply_id", id.Hex()).Msg("reply materialization failed")
		}
		conv.Replies = append(conv.Replies, model.ReplySummary{
			ReplyID:    id,
			AuthorID:   reply.AuthorID,
			AuthorName: reply.AuthorName,
		})
	}
	return conv, nil
}
