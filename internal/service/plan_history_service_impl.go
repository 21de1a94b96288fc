package service

import (
	"context"

	"github.com/alexanderramin/fitplan/internal/domain"
	"github.com/alexanderramin/fitplan/internal/repository"
)

type planHistoryService struct {
	plans  repository.PlanRepo
	events repository.GenerationEventRepo
}

func NewPlanHistoryService(plans repository.PlanRepo, events repository.GenerationEventRepo) PlanHistoryService {
	return &planHistoryService{plans: plans, events: events}
}

func (s *planHistoryService) Get(ctx context.Context, id string) (*domain.PlanRecord, error) {
	return s.plans.GetByID(ctx, id)
}

func (s *planHistoryService) ListByUser(ctx context.Context, userID string, limit int) ([]*domain.PlanRecord, error) {
	return s.plans.ListByUser(ctx, userID, limit)
}

func (s *planHistoryService) Events(ctx context.Context, planID string) ([]*domain.GenerationEvent, error) {
	if _, err := s.plans.GetByID(ctx, planID); err != nil {
		return nil, err
	}
	return s.events.ListByPlan(ctx, planID)
}
