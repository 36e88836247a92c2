package profile_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fitpro-app/fitpro/internal/profile"
	"github.com/fitpro-app/fitpro/internal/scoring"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	profiles       map[string]*profile.UserProfile
	updates        []profile.UpdateParams
	dailyLogs      []profile.DailyLog
	supplementLogs []profile.SupplementLog
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		profiles: map[string]*profile.UserProfile{},
	}
}

func (f *fakeRepo) Get(_ context.Context, userID string) (*profile.UserProfile, error) {
	prof, ok := f.profiles[userID]
	if !ok {
		return nil, profile.ErrProfileNotFound
	}
	copied := *prof
	return &copied, nil
}

func (f *fakeRepo) Update(_ context.Context, userID string, params profile.UpdateParams) error {
	if _, ok := f.profiles[userID]; !ok {
		return profile.ErrProfileNotFound
	}
	f.updates = append(f.updates, params)
	return nil
}

func (f *fakeRepo) AddDailyLog(_ context.Context, _ string, dl profile.DailyLog) error {
	f.dailyLogs = append(f.dailyLogs, dl)
	return nil
}

func (f *fakeRepo) AddSupplementLog(_ context.Context, _ string, sl profile.SupplementLog) error {
	f.supplementLogs = append(f.supplementLogs, sl)
	return nil
}

func fakeProfile(userID string) *profile.UserProfile {
	gofakeit.Seed(42)
	return &profile.UserProfile{
		ID:            userID,
		Email:         gofakeit.Email(),
		Name:          gofakeit.Name(),
		Goal:          profile.GoalMuscleGain,
		CurrentWeight: 80,
		HeightCm:      182,
		CreatedAt:     time.Now().AddDate(0, 0, -10),
	}
}

func profileTestRouter(h *profile.Handler) *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc("/profile/{userID}", h.HandleGetProfile).Methods("GET")
	router.HandleFunc("/profile/{userID}", h.HandleUpdateProfile).Methods("PUT")
	router.HandleFunc("/profile/{userID}/logs/daily", h.HandleAddDailyLog).Methods("POST")
	router.HandleFunc("/profile/{userID}/logs/supplement", h.HandleAddSupplementLog).Methods("POST")
	router.HandleFunc("/profile/{userID}/health/risk", h.HandleGetHealthRisk).Methods("GET")
	return router
}

func TestHandler_HandleGetProfile(t *testing.T) {
	repo := newFakeRepo()
	repo.profiles["user-1"] = fakeProfile("user-1")
	router := profileTestRouter(profile.NewHandler(repo))

	req, err := http.NewRequest("GET", "/profile/user-1", nil)
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var prof profile.UserProfile
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &prof))
	assert.Equal(t, "user-1", prof.ID)
	assert.Equal(t, float64(80), prof.CurrentWeight)
}

func TestHandler_HandleGetProfile_notFound(t *testing.T) {
	router := profileTestRouter(profile.NewHandler(newFakeRepo()))

	req, err := http.NewRequest("GET", "/profile/ghost", nil)
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestHandler_HandleUpdateProfile(t *testing.T) {
	repo := newFakeRepo()
	repo.profiles["user-1"] = fakeProfile("user-1")
	router := profileTestRouter(profile.NewHandler(repo))

	req, err := http.NewRequest("PUT", "/profile/user-1", bytes.NewBufferString(`{"currentWeight": 82.5}`))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	require.Len(t, repo.updates, 1)
	require.NotNil(t, repo.updates[0].CurrentWeight)
	assert.Equal(t, 82.5, *repo.updates[0].CurrentWeight)
	assert.Nil(t, repo.updates[0].Name)
}

func TestHandler_HandleAddDailyLog(t *testing.T) {
	repo := newFakeRepo()
	repo.profiles["user-1"] = fakeProfile("user-1")
	router := profileTestRouter(profile.NewHandler(repo))

	dailyLog := profile.DailyLog{
		Date:           "2026-08-30",
		WorkoutScore:   75,
		NutritionScore: 80,
		Mood:           4,
		Readiness:      70,
	}
	dlJson, err := json.Marshal(dailyLog)
	require.NoError(t, err)

	req, err := http.NewRequest("POST", "/profile/user-1/logs/daily", bytes.NewBuffer(dlJson))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	require.Equal(t, http.StatusCreated, rr.Code)

	require.Len(t, repo.dailyLogs, 1)
	assert.Equal(t, dailyLog, repo.dailyLogs[0])
}

func TestHandler_HandleGetHealthRisk_insufficientData(t *testing.T) {
	repo := newFakeRepo()
	prof := fakeProfile("user-1")
	prof.DailyLogs = []profile.DailyLog{
		{Date: "2026-08-28", WorkoutScore: 80},
		{Date: "2026-08-29", WorkoutScore: 80},
	}
	repo.profiles["user-1"] = prof
	router := profileTestRouter(profile.NewHandler(repo))

	req, err := http.NewRequest("GET", "/profile/user-1/health/risk", nil)
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var result scoring.HealthRiskResult
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
	assert.Equal(t, scoring.RiskLow, result.InjuryRisk)
	assert.Contains(t, result.Insights, scoring.InsufficientDataInsight)
}
