package contract

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/fitplan/internal/domain"
	"github.com/alexanderramin/fitplan/internal/intelligence"
)

// MaxPromptLength bounds promptText in bytes.
const MaxPromptLength = 2000

// GenerateRequest is the body of POST /generate.
type GenerateRequest struct {
	PromptText        string              `json:"promptText"`
	Profile           *domain.UserProfile `json:"profile,omitempty"`
	UserID            string              `json:"userId,omitempty"`
	Kind              domain.PlanKind     `json:"kind,omitempty"`
	FocusArea         string              `json:"focusArea,omitempty"`
	ExistingStructure *domain.WorkoutPlan `json:"existingStructure,omitempty"`
}

func NewGenerateRequest(prompt string, profile *domain.UserProfile) GenerateRequest {
	return GenerateRequest{
		PromptText: prompt,
		Profile:    profile,
		Kind:       domain.KindWorkout,
	}
}

// Normalize fills defaults in place: kind, trimmed strings and enum defaults
// on an inline profile.
func (r *GenerateRequest) Normalize() {
	r.PromptText = strings.TrimSpace(r.PromptText)
	r.UserID = strings.TrimSpace(r.UserID)
	r.FocusArea = strings.TrimSpace(r.FocusArea)
	if r.Kind == "" {
		r.Kind = domain.KindWorkout
	}
	r.Kind = domain.PlanKind(strings.ToLower(string(r.Kind)))
	if r.Profile != nil {
		p := r.Profile.Normalized()
		r.Profile = &p
	}
}

// Validate reports the first problem with a normalized request.
func (r *GenerateRequest) Validate() error {
	if !domain.ValidPlanKinds[r.Kind] {
		return &GenerateError{Code: ErrInvalidRequest, Message: fmt.Sprintf("unknown kind %q", r.Kind)}
	}
	if len(r.PromptText) > MaxPromptLength {
		return &GenerateError{Code: ErrInvalidRequest, Message: fmt.Sprintf("promptText exceeds %d bytes", MaxPromptLength)}
	}
	if r.Profile == nil && r.UserID == "" {
		return &GenerateError{Code: ErrInvalidRequest, Message: "profile or userId is required"}
	}
	if r.Profile != nil {
		if err := r.Profile.Validate(); err != nil {
			return &GenerateError{Code: ErrInvalidRequest, Message: "profile: " + err.Error()}
		}
	}
	if r.ExistingStructure != nil && r.Kind != domain.KindWorkout {
		return &GenerateError{Code: ErrInvalidRequest, Message: "existingStructure is only valid for workout plans"}
	}
	return nil
}

// GenerationResult is either {ok: true, plan, source} or {ok: false, reason}.
type GenerationResult struct {
	OK             bool                      `json:"ok"`
	Plan           domain.Plan               `json:"plan,omitempty"`
	Source         domain.PlanSource         `json:"source,omitempty"`
	Kind           domain.PlanKind           `json:"kind,omitempty"`
	RequestID      string                    `json:"requestId,omitempty"`
	PlanID         string                    `json:"planId,omitempty"`
	FallbackReason string                    `json:"fallbackReason,omitempty"`
	Transitions    []intelligence.Transition `json:"transitions,omitempty"`
	Reason         string                    `json:"reason,omitempty"`
}

// Success builds the ok variant from an orchestrator result.
func Success(requestID string, res *intelligence.Result) GenerationResult {
	return GenerationResult{
		OK:             true,
		Plan:           res.Plan,
		Source:         res.Source,
		Kind:           res.Kind,
		RequestID:      requestID,
		FallbackReason: res.FallbackReason,
		Transitions:    res.Transitions,
	}
}

// Failure builds the not-ok variant.
func Failure(requestID, reason string) GenerationResult {
	return GenerationResult{OK: false, RequestID: requestID, Reason: reason}
}

type GenerateErrorCode string

const (
	ErrInvalidRequest  GenerateErrorCode = "INVALID_REQUEST"
	ErrProfileNotFound GenerateErrorCode = "PROFILE_NOT_FOUND"
	ErrInternalError   GenerateErrorCode = "INTERNAL_ERROR"
)

type GenerateError struct {
	Code    GenerateErrorCode
	Message string
}

func (e *GenerateError) Error() string {
	return string(e.Code) + ": " + e.Message
}
