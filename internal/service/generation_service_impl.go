package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/alexanderramin/fitplan/internal/contract"
	"github.com/alexanderramin/fitplan/internal/db"
	"github.com/alexanderramin/fitplan/internal/domain"
	"github.com/alexanderramin/fitplan/internal/intelligence"
	"github.com/alexanderramin/fitplan/internal/repository"
)

type generationService struct {
	orchestrator *intelligence.Orchestrator
	profiles     repository.UserProfileRepo
	uow          db.UnitOfWork
	log          zerolog.Logger
	observer     UseCaseObserver
}

// NewGenerationService wires the orchestrator to profile lookup and plan
// persistence. A nil uow disables persistence.
func NewGenerationService(
	orchestrator *intelligence.Orchestrator,
	profiles repository.UserProfileRepo,
	uow db.UnitOfWork,
	log zerolog.Logger,
	observers ...UseCaseObserver,
) GenerationService {
	return &generationService{
		orchestrator: orchestrator,
		profiles:     profiles,
		uow:          uow,
		log:          log.With().Str("component", "generation_service").Logger(),
		observer:     useCaseObserverOrNoop(observers),
	}
}

func (s *generationService) Generate(ctx context.Context, requestID string, req contract.GenerateRequest) (result *contract.GenerationResult, err error) {
	startedAt := time.Now().UTC()
	if requestID == "" {
		requestID = uuid.New().String()
	}
	fields := map[string]any{"request_id": requestID}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "generate",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	req.Normalize()
	if err = req.Validate(); err != nil {
		return nil, err
	}
	fields["kind"] = string(req.Kind)

	var profile domain.UserProfile
	profile, err = s.resolveProfile(ctx, req)
	if err != nil {
		return nil, err
	}

	var res *intelligence.Result
	res, err = s.orchestrator.Generate(ctx, intelligence.Request{
		RequestID: requestID,
		Kind:      req.Kind,
		Prompt:    req.PromptText,
		Profile:   profile,
		FocusArea: req.FocusArea,
		Existing:  req.ExistingStructure,
	})
	if err != nil {
		return nil, fmt.Errorf("generating plan: %w", err)
	}
	fields["source"] = string(res.Source)

	out := contract.Success(requestID, res)
	if s.uow != nil {
		// Persist even when the caller has gone away; the plan is already built.
		planID, perr := s.persist(context.WithoutCancel(ctx), requestID, req, res)
		if perr != nil {
			s.log.Warn().Err(perr).Str("request_id", requestID).Msg("plan not persisted")
		} else {
			out.PlanID = planID
			fields["plan_id"] = planID
		}
	}
	return &out, nil
}

func (s *generationService) resolveProfile(ctx context.Context, req contract.GenerateRequest) (domain.UserProfile, error) {
	if req.Profile != nil {
		p := *req.Profile
		if p.ID == "" {
			p.ID = req.UserID
		}
		return p, nil
	}
	if s.profiles == nil {
		return domain.UserProfile{}, &contract.GenerateError{Code: contract.ErrProfileNotFound, Message: "no profile store configured"}
	}
	p, err := s.profiles.Get(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.UserProfile{}, &contract.GenerateError{
				Code:    contract.ErrProfileNotFound,
				Message: fmt.Sprintf("no profile for user %q", req.UserID),
			}
		}
		return domain.UserProfile{}, fmt.Errorf("loading profile: %w", err)
	}
	return p.Normalized(), nil
}

// persist writes the plan and its generation event in one transaction.
func (s *generationService) persist(ctx context.Context, requestID string, req contract.GenerateRequest, res *intelligence.Result) (string, error) {
	planJSON, err := json.Marshal(res.Plan)
	if err != nil {
		return "", fmt.Errorf("encoding plan: %w", err)
	}
	transitions, err := json.Marshal(res.Transitions)
	if err != nil {
		return "", fmt.Errorf("encoding transitions: %w", err)
	}

	now := time.Now().UTC()
	rec := &domain.PlanRecord{
		ID:        uuid.New().String(),
		UserID:    req.UserID,
		Kind:      res.Kind,
		Source:    res.Source,
		Prompt:    req.PromptText,
		Plan:      planJSON,
		CreatedAt: now,
	}
	event := &domain.GenerationEvent{
		ID:             uuid.New().String(),
		RequestID:      requestID,
		PlanID:         rec.ID,
		Kind:           res.Kind,
		Source:         res.Source,
		Model:          res.Model,
		FallbackReason: res.FallbackReason,
		Transitions:    transitions,
		CreatedAt:      now,
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLitePlanRepo(tx).Create(ctx, rec); err != nil {
			return err
		}
		return repository.NewSQLiteGenerationEventRepo(tx).Create(ctx, event)
	})
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}
