// Package memstore is an in-memory store.Store used by tests and the
// memory driver. It mirrors the document-store semantics the mongo adapter
// relies on: unconditioned array pushes, value pulls that remove every
// occurrence, and a matched-count conditional reaction replace.
package memstore

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/vocino/vocino/internal/model"
	"github.com/vocino/vocino/internal/store"
)

type Memstore struct {
	mu         sync.RWMutex
	users      map[primitive.ObjectID]*model.User
	byUsername map[string]primitive.ObjectID
	notes      map[primitive.ObjectID]*model.VoiceNote
}

func New() *Memstore {
	return &Memstore{
		users:      make(map[primitive.ObjectID]*model.User),
		byUsername: make(map[string]primitive.ObjectID),
		notes:      make(map[primitive.ObjectID]*model.VoiceNote),
	}
}

func (m *Memstore) Users() store.Users { return &users{m} }
func (m *Memstore) Notes() store.Notes { return &notes{m} }

// HealthPing implements health.Pinger; the memory store is always reachable.
func (m *Memstore) HealthPing(ctx context.Context) error { return nil }

func copyUser(u *model.User) *model.User {
	out := *u
	out.Followers = append([]primitive.ObjectID(nil), u.Followers...)
	out.Following = append([]primitive.ObjectID(nil), u.Following...)
	out.VoiceNotes = append([]primitive.ObjectID(nil), u.VoiceNotes...)
	return &out
}

func copyNote(n *model.VoiceNote) *model.VoiceNote {
	out := *n
	out.Samples = append([]int16(nil), n.Samples...)
	out.Replies = append([]primitive.ObjectID(nil), n.Replies...)
	out.Reactions = append([]model.Reaction(nil), n.Reactions...)
	return &out
}

// --- Users ---

type users struct{ m *Memstore }

func (u *users) Insert(ctx context.Context, in *model.User) error {
	u.m.mu.Lock()
	defer u.m.mu.Unlock()
	if _, taken := u.m.byUsername[in.Username]; taken {
		return model.ErrConflict
	}
	u.m.users[in.ID] = copyUser(in)
	u.m.byUsername[in.Username] = in.ID
	return nil
}

func (u *users) FindByID(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	u.m.mu.RLock()
	defer u.m.mu.RUnlock()
	rec, ok := u.m.users[id]
	if !ok {
		return nil, model.ErrNotFound
	}
	return copyUser(rec), nil
}

func (u *users) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	u.m.mu.RLock()
	defer u.m.mu.RUnlock()
	id, ok := u.m.byUsername[username]
	if !ok {
		return nil, model.ErrNotFound
	}
	return copyUser(u.m.users[id]), nil
}

func (u *users) SetProfileField(ctx context.Context, username string, field store.ProfileField, value string) error {
	u.m.mu.Lock()
	defer u.m.mu.Unlock()
	id, ok := u.m.byUsername[username]
	if !ok {
		return model.ErrNotFound
	}
	rec := u.m.users[id]
	switch field {
	case store.FieldName:
		rec.Name = value
	case store.FieldPassword:
		rec.Password = value
	case store.FieldDescription:
		rec.Description = value
	default:
		return model.ErrValidation
	}
	return nil
}

func (u *users) Push(ctx context.Context, id primitive.ObjectID, field store.UserArray, value primitive.ObjectID) error {
	u.m.mu.Lock()
	defer u.m.mu.Unlock()
	rec, ok := u.m.users[id]
	if !ok {
		return nil // single-document update of a missing document matches nothing
	}
	switch field {
	case store.UserFollowers:
		rec.Followers = append(rec.Followers, value)
	case store.UserFollowing:
		rec.Following = append(rec.Following, value)
	case store.UserVoiceNotes:
		rec.VoiceNotes = append(rec.VoiceNotes, value)
	default:
		return model.ErrValidation
	}
	return nil
}

func (u *users) Pull(ctx context.Context, id primitive.ObjectID, field store.UserArray, value primitive.ObjectID) error {
	u.m.mu.Lock()
	defer u.m.mu.Unlock()
	rec, ok := u.m.users[id]
	if !ok {
		return nil
	}
	switch field {
	case store.UserFollowers:
		rec.Followers = remove(rec.Followers, value)
	case store.UserFollowing:
		rec.Following = remove(rec.Following, value)
	case store.UserVoiceNotes:
		rec.VoiceNotes = remove(rec.VoiceNotes, value)
	default:
		return model.ErrValidation
	}
	return nil
}

func remove(ids []primitive.ObjectID, value primitive.ObjectID) []primitive.ObjectID {
	out := ids[:0]
	for _, id := range ids {
		if id != value {
			out = append(out, id)
		}
	}
	return out
}

// --- Notes ---

type notes struct{ m *Memstore }

func (n *notes) Insert(ctx context.Context, in *model.VoiceNote) error {
	n.m.mu.Lock()
	defer n.m.mu.Unlock()
	n.m.notes[in.ID] = copyNote(in)
	return nil
}

func (n *notes) FindByID(ctx context.Context, id primitive.ObjectID) (*model.VoiceNote, error) {
	n.m.mu.RLock()
	defer n.m.mu.RUnlock()
	rec, ok := n.m.notes[id]
	if !ok {
		return nil, model.ErrNotFound
	}
	return copyNote(rec), nil
}

func (n *notes) Delete(ctx context.Context, id primitive.ObjectID) error {
	n.m.mu.Lock()
	defer n.m.mu.Unlock()
	delete(n.m.notes, id)
	return nil
}

func (n *notes) AppendReply(ctx context.Context, parentID, replyID primitive.ObjectID) error {
	n.m.mu.Lock()
	defer n.m.mu.Unlock()
	rec, ok := n.m.notes[parentID]
	if !ok {
		return nil
	}
	rec.Replies = append(rec.Replies, replyID)
	return nil
}

func (n *notes) ReplaceReaction(ctx context.Context, noteID primitive.ObjectID, r model.Reaction) (int64, error) {
	n.m.mu.Lock()
	defer n.m.mu.Unlock()
	rec, ok := n.m.notes[noteID]
	if !ok {
		return 0, nil
	}
	for i := range rec.Reactions {
		if rec.Reactions[i].UserID == r.UserID {
			rec.Reactions[i] = r
			return 1, nil
		}
	}
	return 0, nil
}

func (n *notes) AppendReaction(ctx context.Context, noteID primitive.ObjectID, r model.Reaction) error {
	n.m.mu.Lock()
	defer n.m.mu.Unlock()
	rec, ok := n.m.notes[noteID]
	if !ok {
		return nil
	}
	rec.Reactions = append(rec.Reactions, r)
	return nil
}
