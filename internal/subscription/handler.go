package subscription

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/fitpro-app/fitpro/internal/profile"
	"github.com/fitpro-app/fitpro/internal/telemetry/tracing"
	"github.com/fitpro-app/fitpro/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type profileGetter interface {
	Get(ctx context.Context, userID string) (*profile.UserProfile, error)
}

type statusChecker interface {
	LatestStatus(ctx context.Context, userID string) *RemoteStatus
}

type Handler struct {
	profiles  profileGetter
	checker   statusChecker
	trialDays int
}

func NewHandler(profiles profileGetter, checker statusChecker, trialDays int) *Handler {
	if trialDays <= 0 {
		trialDays = DefaultTrialDays
	}
	return &Handler{
		profiles:  profiles,
		checker:   checker,
		trialDays: trialDays,
	}
}

type statusResponse struct {
	Status
	Remote *RemoteStatus `json:"remote,omitempty"`
}

// HandleGetStatus serves the polling widget. The remote row is the
// authority when readable; on a soft check failure the stored profile
// snapshot decides, so polling never breaks the client.
func (h *Handler) HandleGetStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.subscription.status")
	defer span.End()

	userID := mux.Vars(r)["userID"]
	if userID == "" {
		http.Error(w, "user id missing", http.StatusBadRequest)
		return
	}

	prof, err := h.profiles.Get(ctx, userID)
	if err != nil {
		log.Errorf("subscription status, get profile %s: %s", userID, err)
		http.Error(w, "get subscription status failed", http.StatusInternalServerError)
		return
	}

	remote := h.checker.LatestStatus(ctx, userID)
	if remote != nil {
		prof.SubscriptionStatus = remote.Status
		prof.SubscriptionTier = remote.Tier
	}

	resp := statusResponse{
		Status: GetStatusWithTrial(*prof, time.Now(), h.trialDays),
		Remote: remote,
	}
	respJson, err := json.Marshal(resp)
	if err != nil {
		log.Errorf("failed to marshal subscription status: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}
