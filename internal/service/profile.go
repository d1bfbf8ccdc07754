package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/devlink/backend/internal/db"
	"github.com/devlink/backend/internal/model"
)

var ErrProfileNotFound = errors.New("profile not found")

type ProfileStore interface {
	GetProfileByUserID(ctx context.Context, userID string) (*model.Profile, error)
	ListProfiles(ctx context.Context) ([]model.Profile, error)
	UpsertProfile(ctx context.Context, profile *model.Profile) (*model.Profile, error)
	AddExperience(ctx context.Context, userID string, exp model.Experience) error
	RemoveExperience(ctx context.Context, userID, expID string) error
	AddEducation(ctx context.Context, userID string, edu model.Education) error
	RemoveEducation(ctx context.Context, userID, eduID string) error
	DeleteProfileByUserID(ctx context.Context, userID string) error
	DeletePostsByUser(ctx context.Context, userID string) error
	DeleteUser(ctx context.Context, userID string) error
}

type ProfileService struct {
	store ProfileStore
}

func NewProfileService(store ProfileStore) *ProfileService {
	return &ProfileService{store: store}
}

func (s *ProfileService) Me(ctx context.Context, userID string) (*model.Profile, error) {
	return s.byUserID(ctx, userID)
}

func (s *ProfileService) ByUserID(ctx context.Context, userID string) (*model.Profile, error) {
	return s.byUserID(ctx, userID)
}

func (s *ProfileService) All(ctx context.Context) ([]model.Profile, error) {
	return s.store.ListProfiles(ctx)
}

// Upsert creates the caller's profile or updates the fields the request
// carries. Experience and education entries are managed by their own
// operations and survive an update untouched.
func (s *ProfileService) Upsert(ctx context.Context, userID string, req model.ProfileRequest) (*model.Profile, error) {
	profile := &model.Profile{
		ID:             uuid.NewString(),
		UserID:         userID,
		Company:        req.Company,
		Website:        req.Website,
		Location:       req.Location,
		Status:         req.Status,
		Skills:         splitSkills(req.Skills),
		Bio:            req.Bio,
		GithubUsername: req.GithubUsername,
		Social: model.Social{
			Youtube:   req.Youtube,
			Twitter:   req.Twitter,
			Facebook:  req.Facebook,
			Linkedin:  req.Linkedin,
			Instagram: req.Instagram,
			Discord:   req.Discord,
		},
	}
	return s.store.UpsertProfile(ctx, profile)
}

// Delete removes the caller's posts, profile and user account.
func (s *ProfileService) Delete(ctx context.Context, userID string) error {
	if err := s.store.DeletePostsByUser(ctx, userID); err != nil {
		return err
	}
	if err := s.store.DeleteProfileByUserID(ctx, userID); err != nil {
		return err
	}
	return s.store.DeleteUser(ctx, userID)
}

func (s *ProfileService) AddExperience(ctx context.Context, userID string, req model.ExperienceRequest) (*model.Profile, error) {
	exp := model.Experience{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		From:        req.From,
		To:          req.To,
		Current:     req.Current,
		Description: req.Description,
	}
	if err := s.store.AddExperience(ctx, userID, exp); err != nil {
		return nil, classifyProfileError(err)
	}
	return s.byUserID(ctx, userID)
}

func (s *ProfileService) RemoveExperience(ctx context.Context, userID, expID string) (*model.Profile, error) {
	if err := s.store.RemoveExperience(ctx, userID, expID); err != nil {
		return nil, classifyProfileError(err)
	}
	return s.byUserID(ctx, userID)
}

func (s *ProfileService) AddEducation(ctx context.Context, userID string, req model.EducationRequest) (*model.Profile, error) {
	edu := model.Education{
		ID:           uuid.NewString(),
		School:       req.School,
		Degree:       req.Degree,
		FieldOfStudy: req.FieldOfStudy,
		From:         req.From,
		To:           req.To,
		Current:      req.Current,
		Description:  req.Description,
	}
	if err := s.store.AddEducation(ctx, userID, edu); err != nil {
		return nil, classifyProfileError(err)
	}
	return s.byUserID(ctx, userID)
}

func (s *ProfileService) RemoveEducation(ctx context.Context, userID, eduID string) (*model.Profile, error) {
	if err := s.store.RemoveEducation(ctx, userID, eduID); err != nil {
		return nil, classifyProfileError(err)
	}
	return s.byUserID(ctx, userID)
}

func (s *ProfileService) byUserID(ctx context.Context, userID string) (*model.Profile, error) {
	profile, err := s.store.GetProfileByUserID(ctx, userID)
	if err != nil {
		return nil, classifyProfileError(err)
	}
	return profile, nil
}

func classifyProfileError(err error) error {
	if db.IsNotFound(err) {
		return ErrProfileNotFound
	}
	return err
}

func splitSkills(raw string) []string {
	var skills []string
	for _, skill := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(skill); trimmed != "" {
			skills = append(skills, trimmed)
		}
	}
	return skills
}
