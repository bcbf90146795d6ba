// Package matching learns which category a purchase description belongs
// to, so re-imported report rows with unknown category labels can be
// pre-categorized instead of dumped into the catch-all bucket.
package matching

import (
	"context"
)

type Repository interface {
	// FindMatch returns the category whose learned pattern matches the
	// description, or "" when nothing matches.
	FindMatch(ctx context.Context, description string) (string, error)

	// CreateMapping remembers that descriptions containing pattern belong
	// to category.
	CreateMapping(ctx context.Context, pattern, category string) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Suggest returns the learned category for a description, or "" when no
// pattern matches.
func (s *Service) Suggest(ctx context.Context, description string) (string, error) {
	return s.repo.FindMatch(ctx, description)
}

// Learn remembers a description pattern for a category.
func (s *Service) Learn(ctx context.Context, pattern, category string) error {
	return s.repo.CreateMapping(ctx, pattern, category)
}
