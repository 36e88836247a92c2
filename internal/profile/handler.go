package profile

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/fitpro-app/fitpro/internal/scoring"
	"github.com/fitpro-app/fitpro/internal/telemetry/tracing"
	"github.com/fitpro-app/fitpro/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type repo interface {
	Get(ctx context.Context, userID string) (*UserProfile, error)
	Update(ctx context.Context, userID string, params UpdateParams) error
	AddDailyLog(ctx context.Context, userID string, dl DailyLog) error
	AddSupplementLog(ctx context.Context, userID string, sl SupplementLog) error
}

type Handler struct {
	repo repo
}

func NewHandler(repo repo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (h *Handler) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.get")
	defer span.End()

	userID := mux.Vars(r)["userID"]
	if userID == "" {
		http.Error(w, "user id missing", http.StatusBadRequest)
		return
	}

	prof, err := h.repo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			http.Error(w, "profile not found", http.StatusNotFound)
			return
		}
		log.Errorf("get profile %s: %s", userID, err)
		http.Error(w, "get profile failed", http.StatusInternalServerError)
		return
	}

	profJson, err := json.Marshal(prof)
	if err != nil {
		log.Errorf("failed to marshal profile: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, profJson, http.StatusOK)
}

func (h *Handler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.update")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	userID := mux.Vars(r)["userID"]
	if userID == "" {
		http.Error(w, "user id missing", http.StatusBadRequest)
		return
	}

	var params UpdateParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		log.Errorf("update profile, unmarshal json params: %s", err)
		http.Error(w, "update profile failed", http.StatusBadRequest)
		return
	}

	if err := h.repo.Update(ctx, userID, params); err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			http.Error(w, "profile not found", http.StatusNotFound)
			return
		}
		log.Errorf("update profile %s: %s", userID, err)
		http.Error(w, "update profile failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteTextResponseOK(w, "updated")
}

func (h *Handler) HandleAddDailyLog(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.addDailyLog")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	userID := mux.Vars(r)["userID"]
	if userID == "" {
		http.Error(w, "user id missing", http.StatusBadRequest)
		return
	}

	var dailyLog DailyLog
	if err := json.NewDecoder(r.Body).Decode(&dailyLog); err != nil {
		log.Errorf("add daily log, unmarshal json params: %s", err)
		http.Error(w, "add daily log failed", http.StatusBadRequest)
		return
	}

	if err := h.repo.AddDailyLog(ctx, userID, dailyLog); err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			http.Error(w, "profile not found", http.StatusNotFound)
			return
		}
		log.Errorf("add daily log for %s: %s", userID, err)
		http.Error(w, "add daily log failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponse(w, pkg.ContentType.Text, "added", http.StatusCreated)
}

func (h *Handler) HandleAddSupplementLog(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.addSupplementLog")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	userID := mux.Vars(r)["userID"]
	if userID == "" {
		http.Error(w, "user id missing", http.StatusBadRequest)
		return
	}

	var supplementLog SupplementLog
	if err := json.NewDecoder(r.Body).Decode(&supplementLog); err != nil {
		log.Errorf("add supplement log, unmarshal json params: %s", err)
		http.Error(w, "add supplement log failed", http.StatusBadRequest)
		return
	}

	if err := h.repo.AddSupplementLog(ctx, userID, supplementLog); err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			http.Error(w, "profile not found", http.StatusNotFound)
			return
		}
		log.Errorf("add supplement log for %s: %s", userID, err)
		http.Error(w, "add supplement log failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponse(w, pkg.ContentType.Text, "added", http.StatusCreated)
}

// HandleGetHealthRisk runs the overtraining analysis over the stored
// daily logs.
func (h *Handler) HandleGetHealthRisk(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.healthRisk")
	defer span.End()

	userID := mux.Vars(r)["userID"]
	if userID == "" {
		http.Error(w, "user id missing", http.StatusBadRequest)
		return
	}

	prof, err := h.repo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			http.Error(w, "profile not found", http.StatusNotFound)
			return
		}
		log.Errorf("health risk, get profile %s: %s", userID, err)
		http.Error(w, "health risk analysis failed", http.StatusInternalServerError)
		return
	}

	result := scoring.AnalyzeHealthRisk(prof.DailyLogs)
	resultJson, err := json.Marshal(result)
	if err != nil {
		log.Errorf("failed to marshal health risk result: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, resultJson, http.StatusOK)
}
