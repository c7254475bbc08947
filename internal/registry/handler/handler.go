package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/fridayblessings411-cell/AgroTour/internal/registry/models"
	"github.com/fridayblessings411-cell/AgroTour/pkg/domain"
	dErrors "github.com/fridayblessings411-cell/AgroTour/pkg/domain-errors"
	audit "github.com/fridayblessings411-cell/AgroTour/pkg/platform/audit"
	"github.com/fridayblessings411-cell/AgroTour/pkg/platform/httputil"
	"github.com/fridayblessings411-cell/AgroTour/pkg/platform/middleware/admin"
	"github.com/fridayblessings411-cell/AgroTour/pkg/platform/middleware/principal"
	request "github.com/fridayblessings411-cell/AgroTour/pkg/platform/middleware/request"
	"github.com/fridayblessings411-cell/AgroTour/pkg/requestcontext"
)

const (
	defaultAuditLimit = 50
	maxAuditLimit     = 500
)

// Service defines the registry operations exposed over HTTP.
type Service interface {
	CreateFarm(ctx context.Context, caller domain.Principal, reg models.Registration) (domain.FarmID, error)
	UpdateFarm(ctx context.Context, caller domain.Principal, id domain.FarmID, name, location string, size uint64) error
	GetFarm(ctx context.Context, id domain.FarmID) (*models.Farm, error)
	GetLastUpdate(ctx context.Context, id domain.FarmID) (*models.FarmUpdate, error)
	CheckFarmExistence(ctx context.Context, name string) (bool, error)
	GetFarmCount(ctx context.Context) uint64
	SetAuthorityContract(ctx context.Context, contract domain.Principal) error
	SetRegistrationFee(ctx context.Context, fee uint64) error
	GetConfig(ctx context.Context) models.Config
}

// AuditReader lists recorded registry events.
type AuditReader interface {
	List(ctx context.Context, subject string) ([]audit.Event, error)
	ListRecent(ctx context.Context, limit int) ([]audit.Event, error)
}

// Handler serves the farm registry routes.
type Handler struct {
	registry   Service
	events     AuditReader
	logger     *slog.Logger
	adminToken string
}

// New creates a registry Handler. events may be nil, which disables the
// audit listing route.
func New(registry Service, events AuditReader, logger *slog.Logger, adminToken string) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		registry:   registry,
		events:     events,
		logger:     logger,
		adminToken: adminToken,
	}
}

// Register registers the registry routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Route("/farms", func(r chi.Router) {
		r.Get("/count", h.handleGetFarmCount)
		r.Get("/exists", h.handleCheckFarmExistence)
		r.Get("/{id}", h.handleGetFarm)
		r.Get("/{id}/last-update", h.handleGetLastUpdate)

		r.Group(func(r chi.Router) {
			r.Use(principal.RequirePrincipal(h.logger))
			r.Post("/", h.handleCreateFarm)
			r.Put("/{id}", h.handleUpdateFarm)
		})
	})

	r.Route("/admin", func(r chi.Router) {
		r.Use(admin.RequireAdminToken(h.adminToken, h.logger))
		r.Put("/authority-contract", h.handleSetAuthorityContract)
		r.Put("/registration-fee", h.handleSetRegistrationFee)
		r.Get("/config", h.handleGetConfig)
		r.Get("/audit", h.handleListAudit)
	})
}

func (h *Handler) handleCreateFarm(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req CreateFarmRequest
	if !h.decode(w, r, &req) {
		return
	}

	id, err := h.registry.CreateFarm(ctx, requestcontext.Principal(ctx), req.ToRegistration())
	if err != nil {
		h.writeError(ctx, w, err, "create farm")
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, CreateFarmResponse{ID: id})
}

func (h *Handler) handleUpdateFarm(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := h.farmID(w, r)
	if !ok {
		return
	}
	var req UpdateFarmRequest
	if !h.decode(w, r, &req) {
		return
	}

	err := h.registry.UpdateFarm(ctx, requestcontext.Principal(ctx), id, req.Name, req.Location, req.SizeValue())
	if err != nil {
		h.writeError(ctx, w, err, "update farm")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleGetFarm(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := h.farmID(w, r)
	if !ok {
		return
	}
	farm, err := h.registry.GetFarm(ctx, id)
	if err != nil {
		h.writeError(ctx, w, err, "get farm")
		return
	}
	if farm == nil {
		httputil.WriteError(w, models.ErrFarmNotFound)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, farm)
}

func (h *Handler) handleGetLastUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := h.farmID(w, r)
	if !ok {
		return
	}
	update, err := h.registry.GetLastUpdate(ctx, id)
	if err != nil {
		h.writeError(ctx, w, err, "get last update")
		return
	}
	if update == nil {
		httputil.WriteError(w, models.ErrFarmNotFound)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, update)
}

func (h *Handler) handleGetFarmCount(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, FarmCountResponse{Count: h.registry.GetFarmCount(r.Context())})
}

func (h *Handler) handleCheckFarmExistence(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name := r.URL.Query().Get("name")
	if name == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "name query parameter is required"))
		return
	}
	exists, err := h.registry.CheckFarmExistence(ctx, name)
	if err != nil {
		h.writeError(ctx, w, err, "check farm existence")
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FarmExistenceResponse{Name: name, Exists: exists})
}

func (h *Handler) handleSetAuthorityContract(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req SetAuthorityContractRequest
	if !h.decode(w, r, &req) {
		return
	}
	contract, err := req.Principal()
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if err := h.registry.SetAuthorityContract(ctx, contract); err != nil {
		h.writeError(ctx, w, err, "set authority contract")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleSetRegistrationFee(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req SetRegistrationFeeRequest
	if !h.decode(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		httputil.WriteError(w, err)
		return
	}
	if err := h.registry.SetRegistrationFee(ctx, *req.Fee); err != nil {
		h.writeError(ctx, w, err, "set registration fee")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleGetConfig(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, h.registry.GetConfig(r.Context()))
}

func (h *Handler) handleListAudit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if h.events == nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "audit listing is not enabled"))
		return
	}

	var (
		events []audit.Event
		err    error
	)
	if subject := r.URL.Query().Get("subject"); subject != "" {
		events, err = h.events.List(ctx, subject)
	} else {
		limit, ok := parseLimit(r.URL.Query().Get("limit"))
		if !ok {
			httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "limit must be between 1 and 500"))
			return
		}
		events, err = h.events.ListRecent(ctx, limit)
	}
	if err != nil {
		h.writeError(ctx, w, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list audit events"), "list audit events")
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toAuditEventResponses(events))
}

func parseLimit(raw string) (int, bool) {
	if raw == "" {
		return defaultAuditLimit, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 || n > maxAuditLimit {
		return 0, false
	}
	return n, true
}

func (h *Handler) farmID(w http.ResponseWriter, r *http.Request) (domain.FarmID, bool) {
	id, err := domain.ParseFarmID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return 0, false
	}
	return id, true
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.logger.WarnContext(r.Context(), "invalid request body",
			"request_id", request.GetRequestID(r.Context()),
			"path", r.URL.Path,
			"error", err.Error(),
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return false
	}
	return true
}

// writeError logs internal failures at error level and rejections at debug,
// then writes the mapped response.
func (h *Handler) writeError(ctx context.Context, w http.ResponseWriter, err error, operation string) {
	if dErrors.CodeOf(err) == dErrors.CodeInternal {
		h.logger.ErrorContext(ctx, "failed to "+operation,
			"request_id", request.GetRequestID(ctx),
			"error", err.Error(),
		)
	} else {
		h.logger.DebugContext(ctx, operation+" rejected",
			"request_id", request.GetRequestID(ctx),
			"error", err.Error(),
		)
	}
	httputil.WriteError(w, err)
}
