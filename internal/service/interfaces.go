package service

import (
	"context"

	"github.com/alexanderramin/fitplan/internal/contract"
	"github.com/alexanderramin/fitplan/internal/domain"
)

type GenerationService interface {
	Generate(ctx context.Context, requestID string, req contract.GenerateRequest) (*contract.GenerationResult, error)
}

type ProfileService interface {
	Get(ctx context.Context, id string) (*domain.UserProfile, error)
	Upsert(ctx context.Context, p *domain.UserProfile) error
	Delete(ctx context.Context, id string) error
}

type PlanHistoryService interface {
	Get(ctx context.Context, id string) (*domain.PlanRecord, error)
	ListByUser(ctx context.Context, userID string, limit int) ([]*domain.PlanRecord, error)
	Events(ctx context.Context, planID string) ([]*domain.GenerationEvent, error)
}
