package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is an account record. Followers, Following and VoiceNotes hold ids
// into the users and voice_notes collections; the follow relation is stored
// redundantly on both sides and kept consistent by the social graph, not by
// the store.
type User struct {
	ID          primitive.ObjectID   `bson:"_id" json:"id"`
	Username    string               `bson:"username" json:"username"`
	Password    string               `bson:"password" json:"-"`
	Name        string               `bson:"name" json:"name"`
	Description string               `bson:"description" json:"description"`
	Followers   []primitive.ObjectID `bson:"followers" json:"followers"`
	Following   []primitive.ObjectID `bson:"following" json:"following"`
	VoiceNotes  []primitive.ObjectID `bson:"voice_notes" json:"voiceNotes"`
}

// PublicUser is the read projection of User handed to other users. RefNo is
// a zero-based position within a single listing call, recomputed per call;
// it is not a stable identifier.
type PublicUser struct {
	RefNo       int                  `json:"refNo"`
	ID          primitive.ObjectID   `json:"id"`
	Username    string               `json:"username"`
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Followers   []primitive.ObjectID `json:"followers"`
	Following   []primitive.ObjectID `json:"following"`
	VoiceNotes  []primitive.ObjectID `json:"voiceNotes"`
}

// Public projects u at listing position refNo.
func (u *User) Public(refNo int) PublicUser {
	return PublicUser{
		RefNo:       refNo,
		ID:          u.ID,
		Username:    u.Username,
		Name:        u.Name,
		Description: u.Description,
		Followers:   u.Followers,
		Following:   u.Following,
		VoiceNotes:  u.VoiceNotes,
	}
}

// ReactionKind enumerates the two supported reactions.
type ReactionKind string

const (
	ReactionAffirm ReactionKind = "affirm"
	ReactionObject ReactionKind = "object"
)

// Valid reports whether k is one of the known kinds.
func (k ReactionKind) Valid() bool {
	return k == ReactionAffirm || k == ReactionObject
}

// Reaction is one user's reaction on a voice note. A note holds at most one
// Reaction per UserID.
type Reaction struct {
	UserID primitive.ObjectID `bson:"user_id" json:"userId"`
	Kind   ReactionKind       `bson:"kind" json:"kind"`
}

// VoiceNote is an audio clip, either a top-level post (IsPost) or a reply.
// AuthorName is a snapshot of the author's name at creation time; it is a
// cache with no invalidation and can go stale relative to the User record.
// Samples are signed 16-bit mono PCM at 44100 Hz.
type VoiceNote struct {
	ID         primitive.ObjectID   `bson:"_id" json:"id"`
	AuthorID   primitive.ObjectID   `bson:"author_id" json:"authorId"`
	AuthorName string               `bson:"author_name" json:"authorName"`
	IsPost     bool                 `bson:"is_post" json:"isPost"`
	Samples    []int16              `bson:"samples" json:"samples"`
	Replies    []primitive.ObjectID `bson:"replies" json:"replies"`
	Reactions  []Reaction           `bson:"reactions" json:"reactions"`
	Timestamp  time.Time            `bson:"timestamp" json:"timestamp"`
}

// ReplySummary identifies one direct reply and its author.
type ReplySummary struct {
	ReplyID    primitive.ObjectID `json:"replyId"`
	AuthorID   primitive.ObjectID `json:"authorId"`
	AuthorName string             `json:"authorName"`
}

// Conversation is the one-level-deep view of a post: its reactions plus the
// authors of its direct replies. It is computed per request, never stored.
// Grandchild replies are not expanded.
type Conversation struct {
	PostID    primitive.ObjectID `json:"postId"`
	AuthorID  primitive.ObjectID `json:"authorId"`
	Reactions []Reaction         `json:"reactions"`
	Replies   []ReplySummary     `json:"replies"`
}
