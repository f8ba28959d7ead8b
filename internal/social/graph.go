package social

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/vocino/vocino/internal/model"
	"github.com/vocino/vocino/internal/store"
)

// Graph maintains the bidirectional follow relation. Every edge is stored
// twice, as an entry in one user's following array and the other's
// followers array; each mutation here is two independent single-document
// writes with no atomicity across the pair, so a crash or a concurrent
// read between them can observe an asymmetric edge.
type Graph struct {
	users    store.Users
	profiles *Profiles
}

func NewGraph(s store.Store, profiles *Profiles) *Graph {
	return &Graph{users: s.Users(), profiles: profiles}
}

// Follow adds targetID to userID's following array and userID to targetID's
// followers array. Pushes are unconditioned: following twice stores the
// edge twice.
func (g *Graph) Follow(ctx context.Context, userID, targetID primitive.ObjectID) error {
	if err := g.users.Push(ctx, userID, store.UserFollowing, targetID); err != nil {
		return err
	}
	return g.users.Push(ctx, targetID, store.UserFollowers, userID)
}

// Unfollow removes the edge from both sides and returns the caller's
// refreshed following listing. Removing a non-existent edge is a no-op.
func (g *Graph) Unfollow(ctx context.Context, userID, targetID primitive.ObjectID) ([]model.PublicUser, error) {
	if err := g.users.Pull(ctx, userID, store.UserFollowing, targetID); err != nil {
		return nil, err
	}
	if err := g.users.Pull(ctx, targetID, store.UserFollowers, userID); err != nil {
		return nil, err
	}
	return g.profiles.ListFollowing(ctx, userID)
}

// RemoveFollower severs the same edge from the followed side and returns
// the caller's refreshed follower listing.
func (g *Graph) RemoveFollower(ctx context.Context, userID, followerID primitive.ObjectID) ([]model.PublicUser, error) {
	if err := g.users.Pull(ctx, userID, store.UserFollowers, followerID); err != nil {
		return nil, err
	}
	if err := g.users.Pull(ctx, followerID, store.UserFollowing, userID); err != nil {
		return nil, err
	}
	return g.profiles.ListFollowers(ctx, userID)
}
