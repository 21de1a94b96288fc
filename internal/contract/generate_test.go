package contract

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/fitplan/internal/domain"
	"github.com/alexanderramin/fitplan/internal/intelligence"
)

func validProfile() *domain.UserProfile {
	return &domain.UserProfile{Age: 28, HeightCm: 170, CurrentWeightKg: 70, TargetWeightKg: 65}
}

func TestNewGenerateRequest_SetsDefaults(t *testing.T) {
	req := NewGenerateRequest("5 day split", validProfile())

	assert.Equal(t, domain.KindWorkout, req.Kind)
	assert.Equal(t, "5 day split", req.PromptText)
	assert.Nil(t, req.ExistingStructure)
}

func TestGenerateRequest_Normalize(t *testing.T) {
	req := GenerateRequest{PromptText: "  hi  ", Kind: "DIET", Profile: validProfile(), UserID: " u1 "}
	req.Normalize()

	assert.Equal(t, "hi", req.PromptText)
	assert.Equal(t, domain.KindDiet, req.Kind)
	assert.Equal(t, "u1", req.UserID)
	assert.Equal(t, domain.ActivityModeratelyActive, req.Profile.ActivityLevel)
	assert.Equal(t, domain.DietNoPreference, req.Profile.DietPreference)
}

func TestGenerateRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     GenerateRequest
		wantErr string
	}{
		{name: "inline profile", req: GenerateRequest{Profile: validProfile()}},
		{name: "stored profile", req: GenerateRequest{UserID: "u1"}},
		{name: "no profile", req: GenerateRequest{PromptText: "x"}, wantErr: "profile or userId"},
		{name: "bad kind", req: GenerateRequest{Kind: "yoga", UserID: "u1"}, wantErr: "unknown kind"},
		{name: "long prompt", req: GenerateRequest{UserID: "u1", PromptText: strings.Repeat("a", MaxPromptLength+1)}, wantErr: "exceeds"},
		{name: "bad age", req: GenerateRequest{Profile: &domain.UserProfile{Age: 5, HeightCm: 170, CurrentWeightKg: 70, TargetWeightKg: 65}}, wantErr: "age"},
		{name: "existing on diet", req: GenerateRequest{UserID: "u1", Kind: domain.KindDiet, ExistingStructure: &domain.WorkoutPlan{}}, wantErr: "existingStructure"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := tt.req
			req.Normalize()
			err := req.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var ge *GenerateError
			require.True(t, errors.As(err, &ge))
			assert.Equal(t, ErrInvalidRequest, ge.Code)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestGenerationResult_JSONShape(t *testing.T) {
	ok := Success("req-1", &intelligence.Result{
		Plan:   &domain.DietPlan{Snacks: []domain.MealEntry{}},
		Kind:   domain.KindDiet,
		Source: domain.SourceSynthesized,
	})
	data, err := json.Marshal(ok)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	assert.Equal(t, true, m["ok"])
	assert.Equal(t, "synthesized", m["source"])
	assert.Contains(t, m, "plan")
	assert.NotContains(t, m, "reason")

	bad := Failure("req-2", "profile or userId is required")
	data, err = json.Marshal(bad)
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":false,"requestId":"req-2","reason":"profile or userId is required"}`, string(data))
}
