package intelligence

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/alexanderramin/fitplan/internal/domain"
	"github.com/alexanderramin/fitplan/internal/generation"
	"github.com/alexanderramin/fitplan/internal/llm"
)

// State is a node of the generation state machine.
type State string

const (
	StateStart     State = "START"
	StateCallModel State = "CALL_MODEL"
	StateRepair    State = "REPAIR"
	StateFallback  State = "FALLBACK"
	StateDone      State = "DONE"
)

// Transition records one edge taken during a run.
type Transition struct {
	From   State  `json:"from"`
	To     State  `json:"to"`
	Reason string `json:"reason"`
}

// Request is the input to a single orchestrator run.
type Request struct {
	RequestID string
	Kind      domain.PlanKind
	Prompt    string
	Profile   domain.UserProfile
	FocusArea string
	Existing  *domain.WorkoutPlan
}

// Result is the terminal DONE payload.
type Result struct {
	Plan           domain.Plan
	Kind           domain.PlanKind
	Source         domain.PlanSource
	Model          string
	FallbackReason string
	Transitions    []Transition
}

// Orchestrator drives START -> CALL_MODEL -> REPAIR -> DONE with FALLBACK as
// the recovery edge. It holds no per-request state and is safe for
// concurrent use.
type Orchestrator struct {
	client llm.LLMClient
	log    zerolog.Logger
}

// NewOrchestrator creates an Orchestrator. A nil client means the model is
// disabled and every run goes straight to FALLBACK.
func NewOrchestrator(client llm.LLMClient, log zerolog.Logger) *Orchestrator {
	return &Orchestrator{client: client, log: log.With().Str("component", "orchestrator").Logger()}
}

// run is the per-request machine instance.
type run struct {
	req     Request
	log     zerolog.Logger
	state   State
	trace   []Transition
	rawText string
	model   string
	plan    domain.Plan
	source  domain.PlanSource
	reason  string
}

func (r *run) move(to State, reason string) {
	r.log.Info().
		Str("from", string(r.state)).
		Str("to", string(to)).
		Str("reason", reason).
		Msg("generation_transition")
	r.trace = append(r.trace, Transition{From: r.state, To: to, Reason: reason})
	r.state = to
}

// Generate runs the state machine to DONE. The only error it returns is a
// *domain.ValidationError from the fallback tier, which indicates a defect.
func (o *Orchestrator) Generate(ctx context.Context, req Request) (*Result, error) {
	if !domain.ValidPlanKinds[req.Kind] {
		req.Kind = domain.KindWorkout
	}
	req.Profile = req.Profile.Normalized()

	r := &run{
		req:   req,
		state: StateStart,
		log: o.log.With().
			Str("request_id", req.RequestID).
			Str("kind", string(req.Kind)).
			Logger(),
	}

	for r.state != StateDone {
		switch r.state {
		case StateStart:
			r.move(StateCallModel, "begin")
		case StateCallModel:
			o.callModel(ctx, r)
		case StateRepair:
			o.repair(r)
		case StateFallback:
			if err := o.fallback(r); err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("unknown generation state %q", r.state)
		}
	}

	return &Result{
		Plan:           r.plan,
		Kind:           req.Kind,
		Source:         r.source,
		Model:          r.model,
		FallbackReason: r.reason,
		Transitions:    r.trace,
	}, nil
}

func (o *Orchestrator) callModel(ctx context.Context, r *run) {
	if o.client == nil {
		r.reason = llm.ErrModelDisabled.Error()
		r.move(StateFallback, r.reason)
		return
	}
	resp, err := o.client.Generate(ctx, llm.GenerateRequest{
		Task:         taskFor(r.req.Kind),
		SystemPrompt: systemPromptFor(r.req.Kind),
		UserPrompt:   buildUserPrompt(r.req),
	})
	if err != nil {
		r.reason = "model error: " + err.Error()
		r.move(StateFallback, r.reason)
		return
	}
	r.rawText = resp.Text
	r.model = resp.Model
	r.move(StateRepair, "model responded")
}

func (o *Orchestrator) repair(r *run) {
	plan, err := repairCandidate(r.req, r.rawText)
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			r.reason = "parse error: " + pe.Error()
		} else {
			r.reason = "repair: " + err.Error()
		}
		r.move(StateFallback, r.reason)
		return
	}
	if err := plan.Validate(); err != nil {
		r.log.Error().Err(err).Msg("repaired model plan failed validation")
		r.reason = "validation: " + err.Error()
		r.move(StateFallback, r.reason)
		return
	}
	r.plan = plan
	r.source = domain.SourceModel
	r.move(StateDone, "valid")
}

// fallback synthesizes a plan without consulting the request context, so a
// cancelled caller still gets a result.
func (o *Orchestrator) fallback(r *run) error {
	plan := generation.Synthesize(generation.Input{
		Kind:      r.req.Kind,
		Profile:   r.req.Profile,
		Prompt:    r.req.Prompt,
		FocusArea: r.req.FocusArea,
		Existing:  r.req.Existing,
	})
	if err := plan.Validate(); err != nil {
		r.log.Error().Err(err).Msg("synthesized plan failed validation")
		return err
	}
	r.plan = plan
	r.source = domain.SourceSynthesized
	r.model = ""
	r.move(StateDone, "synthesized")
	return nil
}

// repairCandidate runs the kind-specific repair and, for weekly plans, the
// day-count reconciler.
func repairCandidate(req Request, raw string) (domain.Plan, error) {
	switch req.Kind {
	case domain.KindDiet:
		return RepairDietPlan(raw)
	case domain.KindSession:
		w, err := RepairWorkout(raw)
		if err != nil {
			return nil, err
		}
		if strings.TrimSpace(w.FocusArea) == "" {
			w.FocusArea = generation.NormalizeFocusArea(req.FocusArea)
		}
		return w, nil
	default:
		candidate, err := RepairWorkoutPlan(raw)
		if err != nil {
			return nil, err
		}
		n := generation.ResolveDayCount(req.Profile, req.Prompt, req.Existing, candidate.DaysPerWeek)
		completed := generation.CompleteWorkoutPlan(*candidate, req.Prompt, req.Existing, n)
		return &completed, nil
	}
}
