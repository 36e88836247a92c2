package auth

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/fitpro-app/fitpro/internal/telemetry/tracing"
	"github.com/fitpro-app/fitpro/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
)

const tokenHeader = "X-FITPRO-TOKEN"

type Handler struct {
	admin   *Admin
	service *Service
}

func NewHandler(admin *Admin, service *Service) *Handler {
	return &Handler{
		admin:   admin,
		service: service,
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.login")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var creds loginRequest
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.Errorf("login, unmarshal json params: %s", err)
		http.Error(w, "login failed", http.StatusBadRequest)
		return
	}

	if creds.Username != h.admin.Username ||
		!pkg.CheckPasswordHash(creds.Password, h.admin.PasswordHash) {
		log.Tracef("invalid credentials for user: %s", creds.Username)
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		span.SetStatus(codes.Error, "invalid-credentials")
		return
	}

	token, err := h.service.Login(ctx, time.Now())
	if err != nil {
		log.Errorf("login: %s", err)
		http.Error(w, "login failed", http.StatusInternalServerError)
		span.SetStatus(codes.Error, "login-failed")
		span.RecordError(err)
		return
	}

	respJson, err := json.Marshal(loginResponse{Token: token})
	if err != nil {
		log.Errorf("failed to marshal login response: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSONResponseOK(w, pkg.BytesToString(respJson))
}

func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.logout")
	defer span.End()

	token := r.Header.Get(tokenHeader)
	if token == "" {
		http.Error(w, "logout failed", http.StatusBadRequest)
		return
	}

	loggedOut, err := h.service.Logout(ctx, token)
	if err != nil {
		log.Errorf("logout: %s", err)
		http.Error(w, "logout failed", http.StatusInternalServerError)
		span.RecordError(err)
		return
	}
	if !loggedOut {
		http.Error(w, "logout failed", http.StatusBadRequest)
		return
	}

	pkg.WriteTextResponseOK(w, "logged-out")
}
