// Package social implements the social graph and feed aggregation engine:
// follow relationships, reaction resolution, reply threading and feed
// assembly over the user and voice-note stores.
package social

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Materializer renders a voice note's payload to an audio file. Feed and
// conversation assembly invoke it as a terminal side effect; the audio
// package provides the production implementation.
type Materializer interface {
	Materialize(ctx context.Context, noteID primitive.ObjectID) error
}
