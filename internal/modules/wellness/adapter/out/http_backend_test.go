package out_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	wellnessout "neurowell/internal/modules/wellness/adapter/out"
	"neurowell/internal/modules/wellness/domain"
)

func TestGeneratePlanSendsIntegerLevels(t *testing.T) {
	t.Parallel()
	var raw map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, domain.PathGeneratePlan, r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		body, _ := io.ReadAll(r.Body)
		assert.Contains(t, string(body), `"mood_score":70`)
		_ = json.Unmarshal(body, &raw)
		_, _ = io.WriteString(w, `{"success":true,"plan":{"mental_health":["breathe"],"fitness":["walk"],"nutrition":["water"],"motivation_message":"go"}}`)
	}))
	defer srv.Close()

	backend := wellnessout.NewHTTPBackend(srv.URL+"/", time.Second, nil)
	res, err := backend.GeneratePlan(context.Background(), domain.PlanRequest{MoodScore: 70, StressLevel: 30, EnergyLevel: 55, FeelingsDescription: "ok"})
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.Equal(t, []string{"breathe"}, res.Plan.MentalHealth)
	assert.Equal(t, "go", res.Plan.MotivationMessage)
	assert.Empty(t, res.Plan.PersonalizedInsights)
	assert.Equal(t, float64(55), raw["energy_level"])
	assert.Equal(t, "ok", raw["feelings_description"])
}

func TestServerErrorEnvelopeIsDecoded(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, `{"success":false,"error":"boom"}`)
	}))
	defer srv.Close()

	backend := wellnessout.NewHTTPBackend(srv.URL, time.Second, nil)
	res, err := backend.AnalyzeFeelings(context.Background(), domain.FeelingsRequest{FeelingsText: "sad"})
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, "boom", res.Error)
}

func TestUndecodableBodyIsAnError(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = io.WriteString(w, "<html>bad gateway</html>")
	}))
	defer srv.Close()

	backend := wellnessout.NewHTTPBackend(srv.URL, time.Second, nil)
	_, err := backend.LogMood(context.Background(), domain.MoodRequest{MoodScore: 1, Notes: domain.MoodNotes})
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.PathLogMood)
}

func TestSuccessWithoutPayloadIsAnError(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"success":true}`)
	}))
	defer srv.Close()

	backend := wellnessout.NewHTTPBackend(srv.URL, time.Second, nil)
	_, err := backend.GeneratePlan(context.Background(), domain.PlanRequest{})
	require.Error(t, err)
	_, err = backend.AnalyzeFeelings(context.Background(), domain.FeelingsRequest{FeelingsText: "x"})
	require.Error(t, err)
}

func TestLogMoodReturnsServerMessage(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req domain.MoodRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, domain.MoodNotes, req.Notes)
		_, _ = io.WriteString(w, `{"success":true,"message":"Mood logged successfully"}`)
	}))
	defer srv.Close()

	backend := wellnessout.NewHTTPBackend(srv.URL, time.Second, nil)
	res, err := backend.LogMood(context.Background(), domain.NewMoodRequest(domain.Levels{Mood: 80, Stress: 20, Energy: 60}))
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, "Mood logged successfully", res.Message)
}

func TestIncompletePlanIsAnError(t *testing.T) {
	t.Parallel()
	bodies := []string{
		`{"success":true,"plan":{"mental_health":["breathe"],"nutrition":["water"]}}`,
		`{"success":true,"plan":{"mental_health":["breathe"],"fitness":null,"nutrition":["water"]}}`,
		`{"success":true,"plan":{}}`,
	}
	for _, body := range bodies {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = io.WriteString(w, body)
		}))
		backend := wellnessout.NewHTTPBackend(srv.URL, time.Second, nil)
		_, err := backend.GeneratePlan(context.Background(), domain.PlanRequest{})
		srv.Close()
		require.Error(t, err, body)
		assert.Contains(t, err.Error(), domain.PathGeneratePlan)
	}
}

func TestEmptyPlanListsAreAccepted(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"success":true,"plan":{"mental_health":[],"fitness":[],"nutrition":[]}}`)
	}))
	defer srv.Close()

	backend := wellnessout.NewHTTPBackend(srv.URL, time.Second, nil)
	res, err := backend.GeneratePlan(context.Background(), domain.PlanRequest{})
	require.NoError(t, err)
	assert.True(t, res.Success)
}
