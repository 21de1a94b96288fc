package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/fitplan/internal/domain"
	"github.com/alexanderramin/fitplan/internal/repository"
)

type profileService struct {
	profiles repository.UserProfileRepo
}

func NewProfileService(profiles repository.UserProfileRepo) ProfileService {
	return &profileService{profiles: profiles}
}

func (s *profileService) Get(ctx context.Context, id string) (*domain.UserProfile, error) {
	return s.profiles.Get(ctx, id)
}

// Upsert normalizes enum defaults and validates before writing.
func (s *profileService) Upsert(ctx context.Context, p *domain.UserProfile) error {
	p.ID = strings.TrimSpace(p.ID)
	if p.ID == "" {
		return fmt.Errorf("%w: profile id is required", ErrInvalidInput)
	}
	*p = p.Normalized()
	if err := p.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return s.profiles.Upsert(ctx, p)
}

func (s *profileService) Delete(ctx context.Context, id string) error {
	return s.profiles.Delete(ctx, id)
}
