package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/vocino/vocino/internal/model"
	"github.com/vocino/vocino/internal/store"
)

const (
	usersCollection = "users"
	notesCollection = "voice_notes"
)

// Open connects to MongoDB and verifies connectivity.
func Open(ctx context.Context, uri string) (*mongo.Client, error) {
	if uri == "" {
		return nil, fmt.Errorf("mongo URI is empty")
	}
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}
	return client, nil
}

// New constructs a Mongo-backed store over the named database and ensures
// the unique username index exists. Username uniqueness lives in the index,
// not in a check-then-insert read.
func New(ctx context.Context, client *mongo.Client, dbName string) (store.Store, error) {
	db := client.Database(dbName)
	_, err := db.Collection(usersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return nil, fmt.Errorf("create username index: %w", err)
	}
	return &mongoStore{db: db, client: client}, nil
}

type mongoStore struct {
	db     *mongo.Database
	client *mongo.Client
}

func (s *mongoStore) Users() store.Users { return &users{c: s.db.Collection(usersCollection)} }
func (s *mongoStore) Notes() store.Notes { return &notes{c: s.db.Collection(notesCollection)} }

// HealthPing implements health.Pinger for the Mongo-backed store.
func (s *mongoStore) HealthPing(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

// --- Users ---

type users struct{ c *mongo.Collection }

func (u *users) Insert(ctx context.Context, m *model.User) error {
	if _, err := u.c.InsertOne(ctx, m); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return model.ErrConflict
		}
		return err
	}
	return nil
}

func (u *users) FindByID(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	var out model.User
	err := u.c.FindOne(ctx, bson.M{"_id": id}).Decode(&out)
	if err == mongo.ErrNoDocuments {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (u *users) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	var out model.User
	err := u.c.FindOne(ctx, bson.M{"username": username}).Decode(&out)
	if err == mongo.ErrNoDocuments {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (u *users) SetProfileField(ctx context.Context, username string, field store.ProfileField, value string) error {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := u.c.FindOneAndUpdate(ctx,
		bson.M{"username": username},
		bson.M{"$set": bson.M{string(field): value}},
		opts,
	).Err()
	if err == mongo.ErrNoDocuments {
		return model.ErrNotFound
	}
	return err
}

func (u *users) Push(ctx context.Context, id primitive.ObjectID, field store.UserArray, value primitive.ObjectID) error {
	_, err := u.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$push": bson.M{string(field): value}})
	return err
}

func (u *users) Pull(ctx context.Context, id primitive.ObjectID, field store.UserArray, value primitive.ObjectID) error {
	_, err := u.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$pull": bson.M{string(field): value}})
	return err
}

// --- Notes ---

type notes struct{ c *mongo.Collection }

func (n *notes) Insert(ctx context.Context, m *model.VoiceNote) error {
	_, err := n.c.InsertOne(ctx, m)
	return err
}

func (n *notes) FindByID(ctx context.Context, id primitive.ObjectID) (*model.VoiceNote, error) {
	var out model.VoiceNote
	err := n.c.FindOne(ctx, bson.M{"_id": id}).Decode(&out)
	if err == mongo.ErrNoDocuments {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (n *notes) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := n.c.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (n *notes) AppendReply(ctx context.Context, parentID, replyID primitive.ObjectID) error {
	_, err := n.c.UpdateOne(ctx, bson.M{"_id": parentID}, bson.M{"$push": bson.M{"replies": replyID}})
	return err
}

func (n *notes) ReplaceReaction(ctx context.Context, noteID primitive.ObjectID, r model.Reaction) (int64, error) {
	filter := bson.M{
		"_id": noteID,
		"reactions": bson.M{
			"$elemMatch": bson.M{"user_id": r.UserID},
		},
	}
	res, err := n.c.UpdateOne(ctx, filter, bson.M{"$set": bson.M{"reactions.$": r}})
	if err != nil {
		return 0, err
	}
	// MatchedCount, not ModifiedCount: re-reacting with the same kind matches
	// without modifying, and must not fall through to a duplicate append.
	return res.MatchedCount, nil
}

func (n *notes) AppendReaction(ctx context.Context, noteID primitive.ObjectID, r model.Reaction) error {
	_, err := n.c.UpdateOne(ctx, bson.M{"_id": noteID}, bson.M{"$push": bson.M{"reactions": r}})
	return err
}
