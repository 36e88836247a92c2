package performance

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/fitpro-app/fitpro/internal/profile"
	"github.com/fitpro-app/fitpro/internal/telemetry/metrics"
	"github.com/fitpro-app/fitpro/internal/telemetry/tracing"
	"github.com/fitpro-app/fitpro/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type service interface {
	LogTraining(ctx context.Context, userID string, tl profile.TrainingLog) (State, error)
	LogNutrition(ctx context.Context, userID string, nl profile.NutritionDayLog) (State, error)
	UpdateBody(ctx context.Context, userID string, bu BodyUpdate) (State, error)
	LogSleep(ctx context.Context, userID string, sr SleepReport) (State, error)
	LogScan(ctx context.Context, userID string, sc ScanReport) (State, error)
	CurrentState() State
}

type Handler struct {
	service service
	metrics *metrics.Manager
}

func NewHandler(service service, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		service: service,
		metrics: metricsManager,
	}
}

func (h *Handler) HandleLogTraining(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.performance.log.training")
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

	var trainingLog profile.TrainingLog
	if err := json.NewDecoder(r.Body).Decode(&trainingLog); err != nil {
		log.Errorf("log training, unmarshal json params: %s", err)
		http.Error(w, "log training failed", http.StatusBadRequest)
		return
	}

	state, err := h.service.LogTraining(ctx, userID, trainingLog)
	if err != nil {
		h.handleEventErr(w, err, "log training")
		return
	}

	h.metrics.CounterPerformanceEvents.WithLabelValues(EventTypeTrainingLogged.String()).Inc()
	h.writeState(w, state)
}

func (h *Handler) HandleLogNutrition(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.performance.log.nutrition")
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

	var nutritionLog profile.NutritionDayLog
	if err := json.NewDecoder(r.Body).Decode(&nutritionLog); err != nil {
		log.Errorf("log nutrition, unmarshal json params: %s", err)
		http.Error(w, "log nutrition failed", http.StatusBadRequest)
		return
	}

	state, err := h.service.LogNutrition(ctx, userID, nutritionLog)
	if err != nil {
		h.handleEventErr(w, err, "log nutrition")
		return
	}

	h.metrics.CounterPerformanceEvents.WithLabelValues(EventTypeNutritionLogged.String()).Inc()
	h.writeState(w, state)
}

func (h *Handler) HandleUpdateBody(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.performance.update.body")
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

	var bodyUpdate BodyUpdate
	if err := json.NewDecoder(r.Body).Decode(&bodyUpdate); err != nil {
		log.Errorf("update body, unmarshal json params: %s", err)
		http.Error(w, "update body failed", http.StatusBadRequest)
		return
	}

	state, err := h.service.UpdateBody(ctx, userID, bodyUpdate)
	if err != nil {
		h.handleEventErr(w, err, "update body")
		return
	}

	h.metrics.CounterPerformanceEvents.WithLabelValues(EventTypeBodyUpdated.String()).Inc()
	h.writeState(w, state)
}

func (h *Handler) HandleLogSleep(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.performance.log.sleep")
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

	var sleepReport SleepReport
	if err := json.NewDecoder(r.Body).Decode(&sleepReport); err != nil {
		log.Errorf("log sleep, unmarshal json params: %s", err)
		http.Error(w, "log sleep failed", http.StatusBadRequest)
		return
	}

	state, err := h.service.LogSleep(ctx, userID, sleepReport)
	if err != nil {
		h.handleEventErr(w, err, "log sleep")
		return
	}

	h.metrics.CounterPerformanceEvents.WithLabelValues(EventTypeSleepLogged.String()).Inc()
	h.writeState(w, state)
}

func (h *Handler) HandleLogScan(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.performance.log.scan")
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

	var scanReport ScanReport
	if err := json.NewDecoder(r.Body).Decode(&scanReport); err != nil {
		log.Errorf("log scan, unmarshal json params: %s", err)
		http.Error(w, "log scan failed", http.StatusBadRequest)
		return
	}

	state, err := h.service.LogScan(ctx, userID, scanReport)
	if err != nil {
		h.handleEventErr(w, err, "log scan")
		return
	}

	h.metrics.CounterPerformanceEvents.WithLabelValues(EventTypeScanAnalyzed.String()).Inc()
	h.writeState(w, state)
}

func (h *Handler) HandleGetState(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.performance.state")
	defer span.End()

	h.writeState(w, h.service.CurrentState())
}

func (h *Handler) handleEventErr(w http.ResponseWriter, err error, action string) {
	if errors.Is(err, ErrInvalidEventPayload) {
		h.metrics.CounterInvalidEventPayload.Inc()
		log.Errorf("%s, invalid event payload: %s", action, err)
		http.Error(w, "invalid event payload", http.StatusBadRequest)
		return
	}
	if errors.Is(err, profile.ErrProfileNotFound) {
		http.Error(w, "profile not found", http.StatusNotFound)
		return
	}
	log.Errorf("%s: %s", action, err)
	http.Error(w, action+" failed", http.StatusInternalServerError)
}

func (h *Handler) writeState(w http.ResponseWriter, state State) {
	stateJson, err := json.Marshal(state)
	if err != nil {
		log.Errorf("failed to marshal performance state: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, stateJson, http.StatusOK)
}
