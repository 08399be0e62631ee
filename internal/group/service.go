package group

import (
	"context"
	"errors"
	"log/slog"
)

// Common errors
var (
	ErrGroupNotFound   = errors.New("group not found")
	ErrInvalidCurrency = errors.New("currency must be a 3-letter code")
)

// Service handles group business logic
type Service struct {
	repo *Repository
}

// NewService creates a new group service
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// Register creates a new group with its unit of account.
func (s *Service) Register(ctx context.Context, req *CreateGroupRequest) (*Group, error) {
	if len(req.Currency) != 3 {
		return nil, ErrInvalidCurrency
	}

	group, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	slog.Info("group registered", "group_id", group.ID, "currency", group.Currency)
	return group, nil
}

// GetByID retrieves a group by its ID
func (s *Service) GetByID(ctx context.Context, id int64) (*Group, error) {
	group, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, ErrGroupNotFound
	}
	return group, nil
}
