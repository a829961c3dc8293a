package service

import (
	"context"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"socialnet/internal/model"
	"socialnet/internal/repository"
)

// bcryptCost is the adaptive hash cost factor used for password storage.
const bcryptCost = 10

// UserService handles business logic for user operations
type UserService struct {
	repo       repository.UserRepository
	followRepo repository.FollowRepository
}

func NewUserService(repo repository.UserRepository, followRepo repository.FollowRepository) *UserService {
	return &UserService{
		repo:       repo,
		followRepo: followRepo,
	}
}

// Register creates a new user account. The credential is hashed before
// persistence and the returned record never carries the hash in JSON.
func (s *UserService) Register(ctx context.Context, req *model.RegisterRequest) (*model.User, error) {
	exists, err := s.repo.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if exists {
		return nil, model.ErrUsernameExists
	}

	exists, err = s.repo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, model.ErrEmailExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hashed),
		FullName:     req.FullName,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	log.WithFields(log.Fields{"user_id": user.ID, "username": user.Username}).Info("User registered")
	return user, nil
}

// Login authenticates a user with username and password.
func (s *UserService) Login(ctx context.Context, req *model.LoginRequest) (*model.User, error) {
	user, err := s.repo.GetByUsername(ctx, req.Username)
	if err != nil {
		// Don't reveal whether the username exists or not
		return nil, model.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, model.ErrInvalidCredentials
	}

	return user, nil
}

// GetByID retrieves a user by ID.
func (s *UserService) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return s.repo.GetByID(ctx, id)
}

// GetProfile returns the user record enriched with derived follow counts.
// Both counts are the sizes of the live edge sets, recomputed on every call.
func (s *UserService) GetProfile(ctx context.Context, userID int64) (*model.Profile, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	following, err := s.followRepo.GetFollowing(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get following: %w", err)
	}

	followers, err := s.followRepo.GetFollowers(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get followers: %w", err)
	}

	return &model.Profile{
		User:      *user,
		Following: len(following),
		Followers: len(followers),
	}, nil
}

// SearchByName finds users by a case-insensitive substring of their full name.
func (s *UserService) SearchByName(ctx context.Context, name string) ([]model.User, error) {
	name = strings.TrimSpace(name)
	users, err := s.repo.SearchByName(ctx, name)
	if err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateProfile updates the caller's username, email and full name.
func (s *UserService) UpdateProfile(ctx context.Context, userID int64, req *model.UpdateProfileRequest) (*model.User, error) {
	current, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Username != current.Username {
		exists, err := s.repo.ExistsByUsername(ctx, req.Username)
		if err != nil {
			return nil, fmt.Errorf("failed to check username: %w", err)
		}
		if exists {
			return nil, model.ErrUsernameExists
		}
	}

	if req.Email != current.Email {
		exists, err := s.repo.ExistsByEmail(ctx, req.Email)
		if err != nil {
			return nil, fmt.Errorf("failed to check email: %w", err)
		}
		if exists {
			return nil, model.ErrEmailExists
		}
	}

	user, err := s.repo.UpdateProfile(ctx, userID, req.Username, req.Email, req.FullName)
	if err != nil {
		return nil, err
	}

	log.WithField("user_id", userID).Info("Profile updated")
	return user, nil
}
