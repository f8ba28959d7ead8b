package social

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/vocino/vocino/internal/model"
	"github.com/vocino/vocino/internal/store"
)

// Publisher creates and deletes voice notes.
type Publisher struct {
	users store.Users
	notes store.Notes
}

func NewPublisher(s store.Store) *Publisher {
	return &Publisher{users: s.Users(), notes: s.Notes()}
}

// CreatePost stores a new top-level post and links it into the author's
// voiceNotes list. The author's name is snapshotted onto the note at
// creation time and never refreshed.
func (p *Publisher) CreatePost(ctx context.Context, authorID primitive.ObjectID, samples []int16) (*model.VoiceNote, error) {
	author, err := p.users.FindByID(ctx, authorID)
	if err != nil {
		return nil, err
	}
	note := &model.VoiceNote{
		ID:         primitive.NewObjectID(),
		AuthorID:   authorID,
		AuthorName: author.Name,
		IsPost:     true,
		Samples:    samples,
		Replies:    []primitive.ObjectID{},
		Reactions:  []model.Reaction{},
		Timestamp:  time.Now().UTC(),
	}
	if err := p.notes.Insert(ctx, note); err != nil {
		return nil, err
	}
	if err := p.users.Push(ctx, authorID, store.UserVoiceNotes, note.ID); err != nil {
		return nil, err
	}
	return note, nil
}

// CreateComment stores a reply to parentID and appends it to the parent's
// reply list. Comments do not join the author's voiceNotes list and never
// appear in feeds.
func (p *Publisher) CreateComment(ctx context.Context, authorID, parentID primitive.ObjectID, samples []int16) (*model.VoiceNote, error) {
	author, err := p.users.FindByID(ctx, authorID)
	if err != nil {
		return nil, err
	}
	note := &model.VoiceNote{
		ID:         primitive.NewObjectID(),
		AuthorID:   authorID,
		AuthorName: author.Name,
		IsPost:     false,
		Samples:    samples,
		Replies:    []primitive.ObjectID{},
		Reactions:  []model.Reaction{},
		Timestamp:  time.Now().UTC(),
	}
	if err := p.notes.Insert(ctx, note); err != nil {
		return nil, err
	}
	if err := p.notes.AppendReply(ctx, parentID, note.ID); err != nil {
		return nil, err
	}
	return note, nil
}

// DeletePost removes the note and pulls its id from the author's
// voiceNotes. Deletion does not cascade into any parent's replies list;
// conversation assembly treats the dangling id as a tombstone.
func (p *Publisher) DeletePost(ctx context.Context, authorID, noteID primitive.ObjectID) error {
	if err := p.notes.Delete(ctx, noteID); err != nil {
		return err
	}
	return p.users.Pull(ctx, authorID, store.UserVoiceNotes, noteID)
}
