package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/devlink/backend/internal/client"
	"github.com/devlink/backend/internal/db"
	"github.com/devlink/backend/internal/model"
)

var (
	// ErrInvalidCredentials covers both unknown email and wrong
	// password. The two must stay indistinguishable to callers.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
)

type UserStore interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetUserByID(ctx context.Context, id string) (*model.User, error)
}

type AuthService struct {
	store    UserStore
	codec    *TokenCodec
	gravatar *client.Gravatar
}

func NewAuthService(store UserStore, codec *TokenCodec, gravatar *client.Gravatar) *AuthService {
	return &AuthService{store: store, codec: codec, gravatar: gravatar}
}

// Register creates a user and issues a token for it.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (string, error) {
	_, err := s.store.GetUserByEmail(ctx, req.Email)
	if err == nil {
		return "", ErrUserExists
	}
	if !db.IsNotFound(err) {
		return "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	user := &model.User{
		ID:       uuid.NewString(),
		Name:     req.Name,
		Email:    req.Email,
		Avatar:   s.gravatar.URL(req.Email),
		Password: string(hash),
	}
	if err := s.store.CreateUser(ctx, user); err != nil {
		return "", err
	}

	return s.codec.Sign(user.ID)
}

// Login verifies a credential pair and issues a token. Lookup misses and
// password mismatches collapse into ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (string, error) {
	user, err := s.store.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if db.IsNotFound(err) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.codec.Sign(user.ID)
}

func (s *AuthService) CurrentUser(ctx context.Context, id string) (*model.User, error) {
	user, err := s.store.GetUserByID(ctx, id)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
