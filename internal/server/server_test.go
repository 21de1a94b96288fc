package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/fitplan/internal/contract"
	"github.com/alexanderramin/fitplan/internal/domain"
	"github.com/alexanderramin/fitplan/internal/intelligence"
	"github.com/alexanderramin/fitplan/internal/llm"
	"github.com/alexanderramin/fitplan/internal/repository"
	"github.com/alexanderramin/fitplan/internal/service"
	"github.com/alexanderramin/fitplan/internal/testutil"
)

func newTestServer(t *testing.T, client llm.LLMClient) http.Handler {
	t.Helper()
	database := testutil.NewTestDB(t)
	profiles := repository.NewSQLiteUserProfileRepo(database)
	orch := intelligence.NewOrchestrator(client, zerolog.Nop())
	srv := New(Services{
		Generation: service.NewGenerationService(orch, profiles, testutil.NewTestUoW(database), zerolog.Nop()),
		Profiles:   service.NewProfileService(profiles),
		History: service.NewPlanHistoryService(
			repository.NewSQLitePlanRepo(database),
			repository.NewSQLiteGenerationEventRepo(database),
		),
		Model: client,
	}, zerolog.Nop())
	return srv.Handler()
}

func do(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			require.NoError(t, json.NewEncoder(&buf).Encode(b))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// generateResponse mirrors GenerationResult with the plan left raw.
type generateResponse struct {
	OK             bool                      `json:"ok"`
	Plan           json.RawMessage           `json:"plan"`
	Source         domain.PlanSource         `json:"source"`
	Kind           domain.PlanKind           `json:"kind"`
	RequestID      string                    `json:"requestId"`
	PlanID         string                    `json:"planId"`
	FallbackReason string                    `json:"fallbackReason"`
	Transitions    []intelligence.Transition `json:"transitions"`
	Reason         string                    `json:"reason"`
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestHealth(t *testing.T) {
	rec := do(t, newTestServer(t, nil), http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","model":"disabled"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestHealth_ModelReachability(t *testing.T) {
	rec := do(t, newTestServer(t, &testutil.FakeLLM{}), http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","model":"reachable"}`, rec.Body.String())

	rec = do(t, newTestServer(t, &testutil.FakeLLM{Err: llm.ErrModelUnavailable}), http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","model":"unreachable"}`, rec.Body.String())
}

func TestGenerate_FallbackWhenModelDisabled(t *testing.T) {
	h := newTestServer(t, nil)
	profile := testutil.NewTestProfile()

	rec := do(t, h, http.MethodPost, "/generate", contract.GenerateRequest{
		PromptText: "I want a 5 day strength training plan",
		Profile:    &profile,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	res := decode[generateResponse](t, rec)
	assert.True(t, res.OK)
	assert.Equal(t, domain.SourceSynthesized, res.Source)
	assert.Equal(t, domain.KindWorkout, res.Kind)
	assert.Equal(t, rec.Header().Get("X-Request-ID"), res.RequestID)
	assert.Equal(t, llm.ErrModelDisabled.Error(), res.FallbackReason)

	var plan domain.WorkoutPlan
	require.NoError(t, json.Unmarshal(res.Plan, &plan))
	assert.Equal(t, 5, plan.DaysPerWeek)
	assert.Len(t, plan.WorkoutDays, 5)
}

func TestGenerate_ModelPlanIsStored(t *testing.T) {
	client := &testutil.FakeLLM{Text: "Sure!\n```json\n" + `{
		"breakfast": {"food": "Oats", "calories": 400, "macros": {"protein": 20, "carbs": 60, "fat": 8}},
		"lunch": {"food": "Chicken salad", "calories": 550, "protein": 45, "carbs": 20, "fat": 25},
		"dinner": {"name": "Salmon and rice", "kcal": "650", "macros": {"protein": 40, "carbs": 70, "fat": 20}},
		"snacks": {"food": "Apple", "calories": 95},
		"totals": {"calories": 1695}
	}` + "\n```"}
	h := newTestServer(t, client)
	profile := testutil.NewTestProfile()

	rec := do(t, h, http.MethodPost, "/generate", contract.GenerateRequest{
		Kind: domain.KindDiet, Profile: &profile, UserID: "u1",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	res := decode[generateResponse](t, rec)
	assert.Equal(t, domain.SourceModel, res.Source)
	require.NotEmpty(t, res.PlanID)

	var diet domain.DietPlan
	require.NoError(t, json.Unmarshal(res.Plan, &diet))
	assert.Equal(t, 650.0, diet.Dinner.Calories)
	require.Len(t, diet.Snacks, 1)

	stored := do(t, h, http.MethodGet, "/plans/"+res.PlanID, nil)
	require.Equal(t, http.StatusOK, stored.Code)
	record := decode[domain.PlanRecord](t, stored)
	assert.Equal(t, domain.KindDiet, record.Kind)

	events := do(t, h, http.MethodGet, "/plans/"+res.PlanID+"/events", nil)
	require.Equal(t, http.StatusOK, events.Code)
	assert.Len(t, decode[[]domain.GenerationEvent](t, events), 1)

	list := do(t, h, http.MethodGet, "/users/u1/plans?limit=5", nil)
	require.Equal(t, http.StatusOK, list.Code)
	assert.Len(t, decode[[]domain.PlanRecord](t, list), 1)
}

func TestGenerate_BadRequests(t *testing.T) {
	h := newTestServer(t, nil)
	profile := testutil.NewTestProfile()
	bad := testutil.NewTestProfile()
	bad.Age = 3

	tests := []struct {
		name   string
		body   any
		status int
	}{
		{"malformed body", `{"promptText":`, http.StatusBadRequest},
		{"no profile", contract.GenerateRequest{PromptText: "hi"}, http.StatusBadRequest},
		{"invalid profile", contract.GenerateRequest{Profile: &bad}, http.StatusBadRequest},
		{"unknown kind", contract.GenerateRequest{Profile: &profile, Kind: "yoga"}, http.StatusBadRequest},
		{"unknown user", contract.GenerateRequest{UserID: "ghost"}, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, "/generate", tt.body)
			assert.Equal(t, tt.status, rec.Code, rec.Body.String())
			res := decode[generateResponse](t, rec)
			assert.False(t, res.OK)
			assert.NotEmpty(t, res.Reason)
			assert.NotEmpty(t, res.RequestID)
		})
	}
}

func TestProfiles_RoundTrip(t *testing.T) {
	h := newTestServer(t, nil)
	profile := testutil.NewTestProfile(testutil.WithDiet(domain.DietVegan))

	put := do(t, h, http.MethodPut, "/profiles/u7", profile)
	require.Equal(t, http.StatusOK, put.Code, put.Body.String())

	get := do(t, h, http.MethodGet, "/profiles/u7", nil)
	require.Equal(t, http.StatusOK, get.Code)
	got := decode[domain.UserProfile](t, get)
	assert.Equal(t, "u7", got.ID)
	assert.Equal(t, domain.DietVegan, got.DietPreference)

	gen := do(t, h, http.MethodPost, "/generate", contract.GenerateRequest{UserID: "u7", Kind: domain.KindDiet})
	assert.Equal(t, http.StatusOK, gen.Code, gen.Body.String())

	assert.Equal(t, http.StatusNoContent, do(t, h, http.MethodDelete, "/profiles/u7", nil).Code)
	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodGet, "/profiles/u7", nil).Code)
}

func TestProfiles_InvalidIsBadRequest(t *testing.T) {
	h := newTestServer(t, nil)
	profile := testutil.NewTestProfile()
	profile.HeightCm = 20

	rec := do(t, h, http.MethodPut, "/profiles/u1", profile)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPlans_NotFoundAndBadLimit(t *testing.T) {
	h := newTestServer(t, nil)

	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodGet, "/plans/missing", nil).Code)
	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodGet, "/plans/missing/events", nil).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodGet, "/users/u1/plans?limit=abc", nil).Code)

	empty := do(t, h, http.MethodGet, "/users/u1/plans", nil)
	require.Equal(t, http.StatusOK, empty.Code)
	assert.JSONEq(t, `[]`, empty.Body.String())
}

func TestRequestIDIsPropagated(t *testing.T) {
	h := newTestServer(t, nil)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Header().Get("X-Request-ID"))
}

func TestStatusFor(t *testing.T) {
	code, _ := statusFor(&domain.ValidationError{Kind: domain.KindDiet, Field: "lunch", Msg: "required"})
	assert.Equal(t, http.StatusInternalServerError, code)

	code, _ = statusFor(&contract.GenerateError{Code: contract.ErrInternalError, Message: "x"})
	assert.Equal(t, http.StatusInternalServerError, code)

	code, _ = statusFor(repository.ErrNotFound)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestAddrFromEnv(t *testing.T) {
	t.Setenv("FITPLAN_PORT", "")
	t.Setenv("PORT", "")
	assert.Equal(t, ":8080", AddrFromEnv())

	t.Setenv("PORT", "9000")
	assert.Equal(t, ":9000", AddrFromEnv())

	t.Setenv("FITPLAN_PORT", "9100")
	assert.Equal(t, ":9100", AddrFromEnv())
}
