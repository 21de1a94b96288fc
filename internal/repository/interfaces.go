package repository

import (
	"context"

	"github.com/alexanderramin/fitplan/internal/domain"
)

type UserProfileRepo interface {
	Get(ctx context.Context, id string) (*domain.UserProfile, error)
	Upsert(ctx context.Context, p *domain.UserProfile) error
	Delete(ctx context.Context, id string) error
}

type PlanRepo interface {
	Create(ctx context.Context, rec *domain.PlanRecord) error
	GetByID(ctx context.Context, id string) (*domain.PlanRecord, error)
	ListByUser(ctx context.Context, userID string, limit int) ([]*domain.PlanRecord, error)
}

type GenerationEventRepo interface {
	Create(ctx context.Context, e *domain.GenerationEvent) error
	ListByPlan(ctx context.Context, planID string) ([]*domain.GenerationEvent, error)
}
