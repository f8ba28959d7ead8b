package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/vocino/vocino/internal/model"
)

// Store exposes persistence operations required by the social, identity and
// audio packages. Implementations live under internal/store/<driver>/
// (mongo, memstore). All operations are single-document; callers own any
// cross-document consistency.
type Store interface {
	Users() Users
	Notes() Notes
}

// UserArray names the ObjectID array fields on a user record.
type UserArray string

const (
	UserFollowers  UserArray = "followers"
	UserFollowing  UserArray = "following"
	UserVoiceNotes UserArray = "voice_notes"
)

// ProfileField names the scalar profile fields updatable by username.
type ProfileField string

const (
	FieldName        ProfileField = "name"
	FieldPassword    ProfileField = "password"
	FieldDescription ProfileField = "description"
)

type Users interface {
	// Insert stores a new user. Returns model.ErrConflict when the username
	// is already taken.
	Insert(ctx context.Context, u *model.User) error
	// FindByID returns model.ErrNotFound for a missing id; transport
	// failures are returned as-is, never folded into ErrNotFound.
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	// SetProfileField updates one scalar field on the user matched by
	// username. Returns model.ErrNotFound when no user matched.
	SetProfileField(ctx context.Context, username string, field ProfileField, value string) error
	// Push appends value to the named array. Appends are unconditioned:
	// pushing an id twice stores it twice.
	Push(ctx context.Context, id primitive.ObjectID, field UserArray, value primitive.ObjectID) error
	// Pull removes every occurrence of value from the named array. Removing
	// an absent value is a silent no-op.
	Pull(ctx context.Context, id primitive.ObjectID, field UserArray, value primitive.ObjectID) error
}

type Notes interface {
	Insert(ctx context.Context, n *model.VoiceNote) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.VoiceNote, error)
	// Delete removes the record. Deleting a missing id is a no-op.
	Delete(ctx context.Context, id primitive.ObjectID) error
	// AppendReply pushes replyID onto the parent's replies array.
	AppendReply(ctx context.Context, parentID, replyID primitive.ObjectID) error
	// ReplaceReaction conditionally overwrites the reaction whose user_id
	// matches r.UserID on the note, reporting how many documents matched.
	// Zero means the note is missing or holds no reaction for that user;
	// the caller decides whether to fall back to an append.
	ReplaceReaction(ctx context.Context, noteID primitive.ObjectID, r model.Reaction) (int64, error)
	// AppendReaction pushes r onto the note's reactions array.
	AppendReaction(ctx context.Context, noteID primitive.ObjectID, r model.Reaction) error
}
