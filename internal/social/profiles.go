package social

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/vocino/vocino/internal/model"
	"github.com/vocino/vocino/internal/store"
)

// Profiles resolves follow-edge id sets into PublicUser listings.
type Profiles struct {
	users store.Users
}

func NewProfiles(s store.Store) *Profiles { return &Profiles{users: s.Users()} }

// ListFollowing returns the profiles of everyone userID follows, in edge
// order, refNo assigned in emission order. One store round-trip per edge.
func (p *Profiles) ListFollowing(ctx context.Context, userID primitive.ObjectID) ([]model.PublicUser, error) {
	me, err := p.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return p.project(ctx, userID, me.Following)
}

// ListFollowers is ListFollowing for the other direction of the relation.
func (p *Profiles) ListFollowers(ctx context.Context, userID primitive.ObjectID) ([]model.PublicUser, error) {
	me, err := p.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return p.project(ctx, userID, me.Followers)
}

// FindByUsername looks another user up for display. The caller's own record
// is excluded; a self-lookup reports model.ErrNotFound like any other miss.
func (p *Profiles) FindByUsername(ctx context.Context, callerID primitive.ObjectID, username string) (model.PublicUser, error) {
	u, err := p.users.FindByUsername(ctx, username)
	if err != nil {
		return model.PublicUser{}, err
	}
	if u.ID == callerID {
		return model.PublicUser{}, model.ErrNotFound
	}
	return u.Public(0), nil
}

// project fetches each id and builds the PublicUser listing, skipping the
// caller and any id whose record no longer resolves.
func (p *Profiles) project(ctx context.Context, self primitive.ObjectID, ids []primitive.ObjectID) ([]model.PublicUser, error) {
	out := make([]model.PublicUser, 0, len(ids))
	refNo := 0
	for _, id := range ids {
		u, err := p.users.FindByID(ctx, id)
		if errors.Is(err, model.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		if u.ID == self {
			continue
		}
		out = append(out, u.Public(refNo))
		refNo++
	}
	return out, nil
}
