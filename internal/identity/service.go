// Package identity handles registration, login and profile edits.
package identity

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/vocino/vocino/internal/model"
	"github.com/vocino/vocino/internal/store"
)

// Service performs credential and profile operations against the user
// store. Passwords are stored as bcrypt hashes.
type Service struct {
	users store.Users
}

func NewService(s store.Store) *Service { return &Service{users: s.Users()} }

// Register creates a new account. A taken username reports
// model.ErrConflict and leaves no record behind.
func (s *Service) Register(ctx context.Context, username, password, name string) (*model.User, error) {
	if username == "" || password == "" {
		return nil, model.ErrValidation
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := &model.User{
		ID:         primitive.NewObjectID(),
		Username:   username,
		Password:   string(hash),
		Name:       name,
		Followers:  []primitive.ObjectID{},
		Following:  []primitive.ObjectID{},
		VoiceNotes: []primitive.ObjectID{},
	}
	if err := s.users.Insert(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Login authenticates by username and password. An unknown username and a
// wrong password both report model.ErrInvalidCredentials; callers cannot
// tell which failed.
func (s *Service) Login(ctx context.Context, username, password string) (*model.User, error) {
	u, err := s.users.FindByUsername(ctx, username)
	if errors.Is(err, model.ErrNotFound) {
		return nil, model.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
		return nil, model.ErrInvalidCredentials
	}
	return u, nil
}

// UpdateName sets the display name of the user matched by username.
// Existing voice notes keep the author-name snapshot taken when they were
// created.
func (s *Service) UpdateName(ctx context.Context, username, name string) error {
	return s.users.SetProfileField(ctx, username, store.FieldName, name)
}

// UpdateDescription sets the profile description.
func (s *Service) UpdateDescription(ctx context.Context, username, description string) error {
	return s.users.SetProfileField(ctx, username, store.FieldDescription, description)
}

// UpdatePassword rehashes and stores a new password.
func (s *Service) UpdatePassword(ctx context.Context, username, password string) error {
	if password == "" {
		return model.ErrValidation
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.users.SetProfileField(ctx, username, store.FieldPassword, string(hash))
}
