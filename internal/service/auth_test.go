package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/devlink/backend/internal/client"
	"github.com/devlink/backend/internal/model"
)

type fakeUserStore struct {
	byEmail map[string]*model.User
	byID    map[string]*model.User
	created []*model.User

	emailLookups int
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{
		byEmail: map[string]*model.User{},
		byID:    map[string]*model.User{},
	}
}

func (f *fakeUserStore) add(user *model.User) {
	f.byEmail[user.Email] = user
	f.byID[user.ID] = user
}

func (f *fakeUserStore) CreateUser(_ context.Context, user *model.User) error {
	f.created = append(f.created, user)
	f.add(user)
	return nil
}

func (f *fakeUserStore) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	f.emailLookups++
	if user, ok := f.byEmail[email]; ok {
		return user, nil
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeUserStore) GetUserByID(_ context.Context, id string) (*model.User, error) {
	if user, ok := f.byID[id]; ok {
		return user, nil
	}
	return nil, pgx.ErrNoRows
}

func newTestAuthService(store UserStore) *AuthService {
	codec := NewTokenCodec("test-secret", time.Hour)
	return NewAuthService(store, codec, client.NewGravatar())
}

func TestRegisterIssuesToken(t *testing.T) {
	store := newFakeUserStore()
	svc := newTestAuthService(store)

	token, err := svc.Register(context.Background(), model.RegisterRequest{
		Name:     "A",
		Email:    "a@x.com",
		Password: "secret1",
	})
	if err != nil {
		t.Fatalf("Register() error: %v", err)
	}
	if token == "" {
		t.Fatal("Register() returned an empty token")
	}

	if len(store.created) != 1 {
		t.Fatalf("created %d users, want 1", len(store.created))
	}
	user := store.created[0]
	if user.Password == "secret1" {
		t.Fatal("password stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret1")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if user.Avatar == "" {
		t.Fatal("avatar not derived from email")
	}

	parsed, err := NewTokenCodec("test-secret", time.Hour).Parse(token)
	if err != nil {
		t.Fatalf("Parse() of issued token failed: %v", err)
	}
	if parsed.ID != user.ID {
		t.Fatalf("token identity = %q, want %q", parsed.ID, user.ID)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	store := newFakeUserStore()
	svc := newTestAuthService(store)

	req := model.RegisterRequest{Name: "A", Email: "a@x.com", Password: "secret1"}
	if _, err := svc.Register(context.Background(), req); err != nil {
		t.Fatalf("first Register() error: %v", err)
	}

	if _, err := svc.Register(context.Background(), req); !errors.Is(err, ErrUserExists) {
		t.Fatalf("second Register() error = %v, want ErrUserExists", err)
	}
	if len(store.created) != 1 {
		t.Fatalf("created %d users, want 1", len(store.created))
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	store := newFakeUserStore()
	svc := newTestAuthService(store)

	hash, err := bcrypt.GenerateFromPassword([]byte("right-pass"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("bcrypt error: %v", err)
	}
	store.add(&model.User{ID: "u1", Email: "known@x.com", Password: string(hash)})

	tests := []struct {
		name  string
		email string
		pass  string
	}{
		{name: "unknown-email", email: "nobody@x.com", pass: "right-pass"},
		{name: "wrong-password", email: "known@x.com", pass: "wrong-pass"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(context.Background(), model.LoginRequest{Email: tt.email, Password: tt.pass})
			if !errors.Is(err, ErrInvalidCredentials) {
				t.Fatalf("Login() error = %v, want ErrInvalidCredentials", err)
			}
		})
	}
}

func TestLoginSuccess(t *testing.T) {
	store := newFakeUserStore()
	svc := newTestAuthService(store)

	hash, err := bcrypt.GenerateFromPassword([]byte("right-pass"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("bcrypt error: %v", err)
	}
	store.add(&model.User{ID: "u1", Email: "known@x.com", Password: string(hash)})

	token, err := svc.Login(context.Background(), model.LoginRequest{Email: "known@x.com", Password: "right-pass"})
	if err != nil {
		t.Fatalf("Login() error: %v", err)
	}

	parsed, err := NewTokenCodec("test-secret", time.Hour).Parse(token)
	if err != nil {
		t.Fatalf("Parse() of issued token failed: %v", err)
	}
	if parsed.ID != "u1" {
		t.Fatalf("token identity = %q, want %q", parsed.ID, "u1")
	}
}

func TestCurrentUserNotFound(t *testing.T) {
	svc := newTestAuthService(newFakeUserStore())

	if _, err := svc.CurrentUser(context.Background(), "missing"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("CurrentUser() error = %v, want ErrUserNotFound", err)
	}
}
