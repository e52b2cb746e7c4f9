package fiber

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"aid-gap-analyzer/internal/dashboard/core/domain"
	"aid-gap-analyzer/internal/dashboard/core/ports"
	"aid-gap-analyzer/internal/dashboard/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type OpenSessionUseCase interface {
	Execute(ctx context.Context) (*domain.Session, error)
}

type GetDashboardUseCase interface {
	Execute(ctx context.Context, sessionID string) (*domain.Dashboard, error)
}

type ChangeSelectionUseCase interface {
	Execute(ctx context.Context, in usecase.ChangeSelectionInput) (*domain.Dashboard, error)
}

type RankOrganizationsUseCase interface {
	Execute(ctx context.Context, in usecase.RankOrganizationsInput) ([]domain.OrganizationShare, error)
}

type ListRecordsUseCase interface {
	Execute(ctx context.Context, in usecase.ListRecordsInput) ([]domain.DeliveryRecord, error)
}

type CloseSessionUseCase interface {
	Execute(ctx context.Context, sessionID string) error
}

type UseCases struct {
	Open   OpenSessionUseCase
	Get    GetDashboardUseCase
	Change ChangeSelectionUseCase
	Rank   RankOrganizationsUseCase
	List   ListRecordsUseCase
	Close  CloseSessionUseCase
}

type DashboardHandler struct {
	uc UseCases
}

func NewDashboardHandler(uc UseCases) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// RegisterRoutes mounts the session endpoints on r.
func RegisterRoutes(r fiber.Router, h *DashboardHandler) {
	r.Post("/sessions", h.OpenSession)
	r.Get("/sessions/:id/dashboard", h.GetDashboard)
	r.Put("/sessions/:id/selection", h.ChangeSelection)
	r.Get("/sessions/:id/rankings/:metric", h.RankOrganizations)
	r.Get("/sessions/:id/records", h.ListRecords)
	r.Delete("/sessions/:id", h.CloseSession)
}

// OpenSession godoc
// @Summary Open a dashboard session
// @Description Generates the session's synthetic dataset once and returns the dashboard for the full selection
// @Tags Sessions
// @Produce json
// @Success 201 {object} SessionResponse
// @Failure 500 {object} ErrorResponse
// @Router /sessions [post]
func (h *DashboardHandler) OpenSession(c *fiber.Ctx) error {
	s, err := h.uc.Open.Execute(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(toSessionResponse(s))
}

// GetDashboard godoc
// @Summary Current dashboard
// @Description Returns the dashboard computed for the session's current selection
// @Tags Sessions
// @Produce json
// @Param id path string true "Session id"
// @Success 200 {object} DashboardResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /sessions/{id}/dashboard [get]
func (h *DashboardHandler) GetDashboard(c *fiber.Ctx) error {
	d, err := h.uc.Get.Execute(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(toDashboardResponse(d))
}

// ChangeSelection godoc
// @Summary Change the selection
// @Description Recomputes every aggregate for the new region and organization selection
// @Tags Sessions
// @Accept json
// @Produce json
// @Param id path string true "Session id"
// @Param request body ChangeSelectionRequest true "Selection"
// @Success 200 {object} DashboardResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /sessions/{id}/selection [put]
func (h *DashboardHandler) ChangeSelection(c *fiber.Ctx) error {
	var req ChangeSelectionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_json",
			Message: err.Error(),
		})
	}

	sel := domain.Selection{
		Regions:       req.Regions,
		Organizations: req.Organizations,
	}
	if sel.Regions == nil {
		sel.Regions = domain.Regions()
	}
	if sel.Organizations == nil {
		sel.Organizations = domain.Organizations()
	}

	d, err := h.uc.Change.Execute(c.UserContext(), usecase.ChangeSelectionInput{
		SessionID: c.Params("id"),
		Selection: sel,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(toDashboardResponse(d))
}

// RankOrganizations godoc
// @Summary Organization ranking
// @Description Organizations of the current selection, descending by the metric
// @Tags Sessions
// @Produce json
// @Param id path string true "Session id"
// @Param metric path string true "deliveries | beneficiaries"
// @Success 200 {object} RankingResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /sessions/{id}/rankings/{metric} [get]
func (h *DashboardHandler) RankOrganizations(c *fiber.Ctx) error {
	metric := c.Params("metric")

	shares, err := h.uc.Rank.Execute(c.UserContext(), usecase.RankOrganizationsInput{
		SessionID: c.Params("id"),
		Metric:    metric,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(RankingResponse{
		Metric:        metric,
		Organizations: toShareResponses(shares),
	})
}

// ListRecords godoc
// @Summary Recent delivery records
// @Description Newest records of the current selection
// @Tags Sessions
// @Produce json
// @Param id path string true "Session id"
// @Param limit query int false "1..500, default 10"
// @Success 200 {object} RecordsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /sessions/{id}/records [get]
func (h *DashboardHandler) ListRecords(c *fiber.Ctx) error {
	limit := 0
	if s := c.Query("limit", ""); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Error:   "invalid_limit",
				Message: "invalid 'limit' parameter",
			})
		}
		limit = n
	}

	records, err := h.uc.List.Execute(c.UserContext(), usecase.ListRecordsInput{
		SessionID: c.Params("id"),
		Limit:     limit,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(RecordsResponse{
		Count:   len(records),
		Records: toRecordResponses(records),
	})
}

// CloseSession godoc
// @Summary Close a session
// @Tags Sessions
// @Param id path string true "Session id"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /sessions/{id} [delete]
func (h *DashboardHandler) CloseSession(c *fiber.Ctx) error {
	if err := h.uc.Close.Execute(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidSessionID):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_session_id",
			Message: err.Error(),
		})
	case errors.Is(err, domain.ErrInvalidSelection):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_selection",
			Message: err.Error(),
		})
	case errors.Is(err, domain.ErrUnknownMetric):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_metric",
			Message: err.Error(),
		})
	case errors.Is(err, usecase.ErrInvalidLimit):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_limit",
			Message: err.Error(),
		})
	case errors.Is(err, ports.ErrSessionNotFound):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Error:   "session_not_found",
			Message: err.Error(),
		})
	default:
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
}
