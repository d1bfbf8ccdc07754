package service

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"

	"github.com/devlink/backend/internal/model"
)

type fakePostStore struct {
	posts map[string]*model.Post
}

func newFakePostStore() *fakePostStore {
	return &fakePostStore{posts: map[string]*model.Post{}}
}

func (f *fakePostStore) CreatePost(_ context.Context, post *model.Post) error {
	clone := *post
	clone.Likes = []string{}
	clone.Comments = []model.Comment{}
	f.posts[post.ID] = &clone
	return nil
}

func (f *fakePostStore) GetPostByID(_ context.Context, id string) (*model.Post, error) {
	if post, ok := f.posts[id]; ok {
		clone := *post
		return &clone, nil
	}
	return nil, pgx.ErrNoRows
}

func (f *fakePostStore) ListPosts(_ context.Context) ([]model.Post, error) {
	var posts []model.Post
	for _, post := range f.posts {
		posts = append(posts, *post)
	}
	return posts, nil
}

func (f *fakePostStore) ListPostsByUser(_ context.Context, userID string) ([]model.Post, error) {
	var posts []model.Post
	for _, post := range f.posts {
		if post.UserID == userID {
			posts = append(posts, *post)
		}
	}
	return posts, nil
}

func (f *fakePostStore) UpdatePostText(_ context.Context, id, userID, text string) error {
	post, ok := f.posts[id]
	if !ok || post.UserID != userID {
		return pgx.ErrNoRows
	}
	post.Text = text
	return nil
}

func (f *fakePostStore) DeletePost(_ context.Context, id, userID string) (*model.Post, error) {
	post, ok := f.posts[id]
	if !ok || post.UserID != userID {
		return nil, pgx.ErrNoRows
	}
	delete(f.posts, id)
	return post, nil
}

func (f *fakePostStore) AddLike(_ context.Context, postID, userID string) error {
	post, ok := f.posts[postID]
	if !ok {
		return pgx.ErrNoRows
	}
	for _, like := range post.Likes {
		if like == userID {
			return nil
		}
	}
	post.Likes = append(post.Likes, userID)
	return nil
}

func (f *fakePostStore) RemoveLike(_ context.Context, postID, userID string) error {
	post, ok := f.posts[postID]
	if !ok {
		return pgx.ErrNoRows
	}
	likes := post.Likes[:0]
	for _, like := range post.Likes {
		if like != userID {
			likes = append(likes, like)
		}
	}
	post.Likes = likes
	return nil
}

func (f *fakePostStore) AddComment(_ context.Context, postID string, comment model.Comment) error {
	post, ok := f.posts[postID]
	if !ok {
		return pgx.ErrNoRows
	}
	post.Comments = append(post.Comments, comment)
	return nil
}

func (f *fakePostStore) RemoveComment(_ context.Context, postID, commentID string) error {
	post, ok := f.posts[postID]
	if !ok {
		return pgx.ErrNoRows
	}
	comments := post.Comments[:0]
	for _, comment := range post.Comments {
		if comment.ID != commentID {
			comments = append(comments, comment)
		}
	}
	post.Comments = comments
	return nil
}

func newTestPostService() (*PostService, *fakePostStore, *fakeUserStore) {
	posts := newFakePostStore()
	users := newFakeUserStore()
	users.add(&model.User{ID: "u1", Name: "Alice", Avatar: "https://example.com/a.png"})
	users.add(&model.User{ID: "u2", Name: "Bob", Avatar: "https://example.com/b.png"})
	return NewPostService(posts, users), posts, users
}

func TestCreatePostDenormalizesAuthor(t *testing.T) {
	svc, _, _ := newTestPostService()

	post, err := svc.Create(context.Background(), "u1", "hello")
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if post.Name != "Alice" || post.Avatar != "https://example.com/a.png" {
		t.Fatalf("post author fields = %q/%q, want Alice's", post.Name, post.Avatar)
	}
	if post.Text != "hello" {
		t.Fatalf("post text = %q", post.Text)
	}
}

func TestLikeIsIdempotent(t *testing.T) {
	svc, _, _ := newTestPostService()

	post, err := svc.Create(context.Background(), "u1", "hello")
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	if _, err := svc.Like(context.Background(), post.ID, "u2"); err != nil {
		t.Fatalf("Like() error: %v", err)
	}
	liked, err := svc.Like(context.Background(), post.ID, "u2")
	if err != nil {
		t.Fatalf("second Like() error: %v", err)
	}
	if len(liked.Likes) != 1 {
		t.Fatalf("likes = %v, want exactly one entry", liked.Likes)
	}

	unliked, err := svc.Unlike(context.Background(), post.ID, "u2")
	if err != nil {
		t.Fatalf("Unlike() error: %v", err)
	}
	if len(unliked.Likes) != 0 {
		t.Fatalf("likes after unlike = %v, want none", unliked.Likes)
	}
}

func TestLikeUnknownPost(t *testing.T) {
	svc, _, _ := newTestPostService()

	if _, err := svc.Like(context.Background(), "missing", "u1"); !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("Like() error = %v, want ErrPostNotFound", err)
	}
}

func TestUpdatePostOwnership(t *testing.T) {
	svc, _, _ := newTestPostService()

	post, err := svc.Create(context.Background(), "u1", "original")
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	if _, err := svc.Update(context.Background(), post.ID, "u2", "hijacked"); !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("Update() by non-owner error = %v, want ErrPostNotFound", err)
	}

	updated, err := svc.Update(context.Background(), post.ID, "u1", "edited")
	if err != nil {
		t.Fatalf("Update() by owner error: %v", err)
	}
	if updated.Text != "edited" {
		t.Fatalf("text = %q, want %q", updated.Text, "edited")
	}
}

func TestRemoveCommentOwnership(t *testing.T) {
	svc, _, _ := newTestPostService()

	post, err := svc.Create(context.Background(), "u1", "hello")
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	commented, err := svc.AddComment(context.Background(), post.ID, "u2", "nice post")
	if err != nil {
		t.Fatalf("AddComment() error: %v", err)
	}
	if len(commented.Comments) != 1 {
		t.Fatalf("comments = %d, want 1", len(commented.Comments))
	}
	commentID := commented.Comments[0].ID

	if _, err := svc.RemoveComment(context.Background(), post.ID, commentID, "u1"); !errors.Is(err, ErrNotAuthorized) {
		t.Fatalf("RemoveComment() by non-author error = %v, want ErrNotAuthorized", err)
	}

	if _, err := svc.RemoveComment(context.Background(), post.ID, "missing", "u2"); !errors.Is(err, ErrCommentNotFound) {
		t.Fatalf("RemoveComment() of unknown comment error = %v, want ErrCommentNotFound", err)
	}

	cleaned, err := svc.RemoveComment(context.Background(), post.ID, commentID, "u2")
	if err != nil {
		t.Fatalf("RemoveComment() by author error: %v", err)
	}
	if len(cleaned.Comments) != 0 {
		t.Fatalf("comments after removal = %d, want 0", len(cleaned.Comments))
	}
}
