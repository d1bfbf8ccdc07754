package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/devlink/backend/internal/db"
	"github.com/devlink/backend/internal/model"
)

var (
	ErrPostNotFound    = errors.New("post not found")
	ErrCommentNotFound = errors.New("comment not found")
	ErrNotAuthorized   = errors.New("not authorized")
)

type PostStore interface {
	CreatePost(ctx context.Context, post *model.Post) error
	GetPostByID(ctx context.Context, id string) (*model.Post, error)
	ListPosts(ctx context.Context) ([]model.Post, error)
	ListPostsByUser(ctx context.Context, userID string) ([]model.Post, error)
	UpdatePostText(ctx context.Context, id, userID, text string) error
	DeletePost(ctx context.Context, id, userID string) (*model.Post, error)
	AddLike(ctx context.Context, postID, userID string) error
	RemoveLike(ctx context.Context, postID, userID string) error
	AddComment(ctx context.Context, postID string, comment model.Comment) error
	RemoveComment(ctx context.Context, postID, commentID string) error
}

type PostService struct {
	store PostStore
	users UserStore
}

func NewPostService(store PostStore, users UserStore) *PostService {
	return &PostService{store: store, users: users}
}

// Create persists a post with the author's name and avatar denormalized
// onto it, so listings render without a join against users.
func (s *PostService) Create(ctx context.Context, userID, text string) (*model.Post, error) {
	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	post := &model.Post{
		ID:     uuid.NewString(),
		UserID: userID,
		Text:   text,
		Name:   user.Name,
		Avatar: user.Avatar,
	}
	if err := s.store.CreatePost(ctx, post); err != nil {
		return nil, err
	}
	return s.byID(ctx, post.ID)
}

func (s *PostService) All(ctx context.Context) ([]model.Post, error) {
	return s.store.ListPosts(ctx)
}

func (s *PostService) AllByUser(ctx context.Context, userID string) ([]model.Post, error) {
	return s.store.ListPostsByUser(ctx, userID)
}

func (s *PostService) ByID(ctx context.Context, id string) (*model.Post, error) {
	return s.byID(ctx, id)
}

// Update rewrites the text of the caller's own post. A miss means the
// post does not exist or belongs to someone else; the two are not
// distinguished.
func (s *PostService) Update(ctx context.Context, id, userID, text string) (*model.Post, error) {
	if err := s.store.UpdatePostText(ctx, id, userID, text); err != nil {
		return nil, classifyPostError(err)
	}
	return s.byID(ctx, id)
}

func (s *PostService) Delete(ctx context.Context, id, userID string) (*model.Post, error) {
	post, err := s.store.DeletePost(ctx, id, userID)
	if err != nil {
		return nil, classifyPostError(err)
	}
	return post, nil
}

func (s *PostService) Like(ctx context.Context, postID, userID string) (*model.Post, error) {
	if err := s.store.AddLike(ctx, postID, userID); err != nil {
		return nil, classifyPostError(err)
	}
	return s.byID(ctx, postID)
}

func (s *PostService) Unlike(ctx context.Context, postID, userID string) (*model.Post, error) {
	if err := s.store.RemoveLike(ctx, postID, userID); err != nil {
		return nil, classifyPostError(err)
	}
	return s.byID(ctx, postID)
}

func (s *PostService) AddComment(ctx context.Context, postID, userID, text string) (*model.Post, error) {
	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	comment := model.Comment{
		ID:     uuid.NewString(),
		UserID: userID,
		Text:   text,
		Name:   user.Name,
		Avatar: user.Avatar,
		Date:   time.Now().UTC(),
	}
	if err := s.store.AddComment(ctx, postID, comment); err != nil {
		return nil, classifyPostError(err)
	}
	return s.byID(ctx, postID)
}

// RemoveComment deletes a comment from a post. Only the comment's author
// may remove it.
func (s *PostService) RemoveComment(ctx context.Context, postID, commentID, userID string) (*model.Post, error) {
	post, err := s.byID(ctx, postID)
	if err != nil {
		return nil, err
	}

	var found *model.Comment
	for i := range post.Comments {
		if post.Comments[i].ID == commentID {
			found = &post.Comments[i]
			break
		}
	}
	if found == nil {
		return nil, ErrCommentNotFound
	}
	if found.UserID != userID {
		return nil, ErrNotAuthorized
	}

	if err := s.store.RemoveComment(ctx, postID, commentID); err != nil {
		return nil, classifyPostError(err)
	}
	return s.byID(ctx, postID)
}

func (s *PostService) byID(ctx context.Context, id string) (*model.Post, error) {
	post, err := s.store.GetPostByID(ctx, id)
	if err != nil {
		return nil, classifyPostError(err)
	}
	return post, nil
}

func classifyPostError(err error) error {
	if db.IsNotFound(err) {
		return ErrPostNotFound
	}
	return err
}
