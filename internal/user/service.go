package user

import (
	"context"
	"errors"
	"log/slog"
)

// SelfAlias resolves to the acting user when given as a participant handle.
const SelfAlias = "me"

// Common errors
var (
	ErrUserNotFound  = errors.New("user not found")
	ErrUsernameTaken = errors.New("username already taken in this group")
	ErrNotInGroup    = errors.New("user does not belong to this group")
)

// Service handles user business logic and participant resolution. It is the
// user directory: expense entry refers to participants by id or by handle,
// and this service turns either into a stable user id within the group.
type Service struct {
	repo *Repository
}

// NewService creates a new user service
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// Register creates a new user inside a group.
func (s *Service) Register(ctx context.Context, req *CreateUserRequest) (*User, error) {
	user, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUsernameTaken
	}

	slog.Info("user registered", "user_id", user.ID, "group_id", user.GroupID, "username", user.Username)
	return user, nil
}

// GetByID retrieves a user by its ID
func (s *Service) GetByID(ctx context.Context, id int64) (*User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// ListByGroup retrieves all users in a group
func (s *Service) ListByGroup(ctx context.Context, groupID int64) ([]*User, error) {
	return s.repo.ListByGroupID(ctx, groupID)
}

// Resolve turns a participant reference into a user within the group. A
// non-zero id wins over the handle; the handle "me" is an alias for selfID.
// Returns ErrUserNotFound for unknown references and ErrNotInGroup when the
// id exists but belongs to another group.
func (s *Service) Resolve(ctx context.Context, groupID int64, id int64, handle string, selfID int64) (*User, error) {
	if id == 0 && handle == SelfAlias {
		id = selfID
	}

	if id != 0 {
		user, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if user == nil {
			return nil, ErrUserNotFound
		}
		if user.GroupID != groupID {
			return nil, ErrNotInGroup
		}
		return user, nil
	}

	user, err := s.repo.GetByUsername(ctx, groupID, handle)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}
