package profile

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/fitpro-app/fitpro/internal/scoring"
	"github.com/fitpro-app/fitpro/internal/telemetry/metrics"
	"github.com/fitpro-app/fitpro/internal/telemetry/tracing"
	"github.com/fitpro-app/fitpro/pkg"

	"github.com/coocood/freecache"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

const dashboardCacheSizeBytes = 10 * 1024 * 1024

type DashboardResponse struct {
	KPIs            scoring.DashboardKPIs   `json:"kpis"`
	StackAdherence  int                     `json:"stackAdherence"`
	GoalAlignment   int                     `json:"goalAlignment"`
	Streak          int                     `json:"streak"`
	Consistency     int                     `json:"consistency"`
	HydrationStatus scoring.HydrationStatus `json:"hydrationStatus"`
	ComputedAt      time.Time               `json:"computedAt"`
}

// DashboardHandler recomputes the dashboard numbers from the raw logs
// on every miss and keeps a short-TTL snapshot per user, since the
// dashboard is polled far more often than logs change.
type DashboardHandler struct {
	repo    dashboardRepo
	cache   *freecache.Cache
	ttl     time.Duration
	metrics *metrics.Manager
	now     func() time.Time
}

type dashboardRepo interface {
	Get(ctx context.Context, userID string) (*UserProfile, error)
}

func NewDashboardHandler(repo dashboardRepo, ttl time.Duration, metricsManager *metrics.Manager) *DashboardHandler {
	return &DashboardHandler{
		repo:    repo,
		cache:   freecache.NewCache(dashboardCacheSizeBytes),
		ttl:     ttl,
		metrics: metricsManager,
		now:     time.Now,
	}
}

func (h *DashboardHandler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dashboard")
	defer span.End()

	userID := mux.Vars(r)["userID"]
	if userID == "" {
		http.Error(w, "user id missing", http.StatusBadRequest)
		return
	}

	if cached, err := h.cache.Get([]byte(userID)); err == nil {
		h.metrics.CounterDashboardCacheHits.Inc()
		pkg.WriteResponseBytes(w, pkg.ContentType.JSON, cached, http.StatusOK)
		return
	}
	h.metrics.CounterDashboardCacheMiss.Inc()

	prof, err := h.repo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			http.Error(w, "profile not found", http.StatusNotFound)
			return
		}
		log.Errorf("dashboard, get profile %s: %s", userID, err)
		http.Error(w, "dashboard failed", http.StatusInternalServerError)
		return
	}

	now := h.now()
	waterGoal := scoring.ScientificWaterNeeds(prof.CurrentWeight, prof.HighIntensity, prof.HotWeather)
	resp := DashboardResponse{
		KPIs:            scoring.CalculateDashboardKPIs(*prof, now),
		StackAdherence:  scoring.StackAdherence(prof.Supplements),
		GoalAlignment:   scoring.GoalAlignment(prof.Supplements, prof.Goal),
		Streak:          scoring.SupplementStreak(prof.Supplements, prof.SupplementLogs, now),
		Consistency:     scoring.HealthConsistency(prof.HealthActivityLogs, 30, now),
		HydrationStatus: scoring.HydrationStatusFor(todayWaterIntake(prof.NutritionLogs, now), waterGoal),
		ComputedAt:      now,
	}

	respJson, err := json.Marshal(resp)
	if err != nil {
		log.Errorf("failed to marshal dashboard response: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	if err := h.cache.Set([]byte(userID), respJson, int(h.ttl.Seconds())); err != nil {
		log.Warnf("failed to cache dashboard for %s: %s", userID, err)
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

func todayWaterIntake(nutritionLogs []NutritionDayLog, now time.Time) int {
	today := now.Format(DateLayout)
	for _, nl := range nutritionLogs {
		if nl.Date == today {
			return nl.WaterIntakeMl
		}
	}
	return 0
}
