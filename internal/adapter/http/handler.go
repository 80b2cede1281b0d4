package http

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/wisata-ranking/destination-ranking/internal/adapter/http/response"
	"github.com/wisata-ranking/destination-ranking/internal/domain"
	"github.com/wisata-ranking/destination-ranking/internal/mabac"
	"github.com/wisata-ranking/destination-ranking/internal/usecase"
)

// RankingHandler handles HTTP requests for ranking endpoints.
type RankingHandler struct {
	useCase usecase.RankingUseCase
}

// NewRankingHandler creates a new RankingHandler with the given use case.
func NewRankingHandler(uc usecase.RankingUseCase) *RankingHandler {
	return &RankingHandler{
		useCase: uc,
	}
}

// GetRanking handles GET /api/v1/mabac
//
// @Summary Rank stored destinations
// @Description Runs MABAC over the stored destinations using the active criteria catalog
// @Tags mabac
// @Produce json
// @Param ids query string false "Comma separated destination ids (default: all)"
// @Param max_price query number false "Highest entrance price in IDR"
// @Param min_rating query number false "Lowest average rating (0-5)"
// @Param min_reviews query int false "Lowest review count"
// @Param min_facilities query int false "Lowest total facility count"
// @Success 200 {object} SwaggerRankingEnvelope
// @Failure 400 {object} response.Response "Invalid request"
// @Failure 404 {object} response.Response "Unknown destination id"
// @Failure 422 {object} response.Response "No destinations to rank"
// @Failure 503 {object} response.Response "Store unavailable"
// @Failure 504 {object} response.Response "Gateway timeout"
// @Router /api/v1/mabac [get]
func (h *RankingHandler) GetRanking(c echo.Context) error {
	ids, err := ParseIDs(c.QueryParam("ids"))
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	filter, err := ParseFilter(c.QueryParams())
	if err != nil {
		return h.handleValidationError(c, err)
	}

	run, err := h.useCase.RankStored(c.Request().Context(), usecase.RankOptions{
		DestinationIDs: ids,
		Filter:         filter,
	})
	if err != nil {
		return h.handleError(c, err)
	}

	return response.Ranking(c, ToRankingResponse(run))
}

// Calculate handles POST /api/v1/mabac/calculate
//
// @Summary Rank caller-supplied alternatives
// @Description Runs MABAC over the criteria and alternatives in the request body
// @Tags mabac
// @Accept json
// @Produce json
// @Param request body CalculateRequest true "Criteria and alternatives"
// @Success 200 {object} SwaggerRankingEnvelope
// @Failure 400 {object} response.Response "Validation error"
// @Failure 504 {object} response.Response "Gateway timeout"
// @Router /api/v1/mabac/calculate [post]
func (h *RankingHandler) Calculate(c echo.Context) error {
	var req CalculateRequest

	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	crit, alts := ToMabacInput(&req)

	run, err := h.useCase.RankCustom(c.Request().Context(), crit, alts)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.Ranking(c, ToRankingResponse(run))
}

// GetCriteria handles GET /api/v1/criteria
//
// @Summary List criteria
// @Description Returns the active criteria catalog used for stored rankings
// @Tags mabac
// @Produce json
// @Success 200 {object} SwaggerCriteriaEnvelope
// @Router /api/v1/criteria [get]
func (h *RankingHandler) GetCriteria(c echo.Context) error {
	return response.Criteria(c, ToCriteriaResponse(h.useCase.Criteria()))
}

// handleValidationError handles validation errors and returns a 400 response.
func (h *RankingHandler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}

	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps domain and engine errors to HTTP responses.
func (h *RankingHandler) handleError(c echo.Context, err error) error {
	switch {
	// Stores wrap context errors, so these come before the store case.
	case errors.Is(err, context.DeadlineExceeded):
		return response.GatewayTimeout(c)
	case errors.Is(err, context.Canceled):
		return response.RequestCancelled(c)
	case mabac.IsShapeError(err):
		return response.InvalidMatrix(c, err.Error())
	case mabac.IsCriterionError(err):
		return response.InvalidCriterion(c, err.Error())
	case domain.IsInvalidRequest(err):
		return response.ValidationErrorWithMessage(c, err.Error())
	case domain.IsNotFound(err):
		return response.NotFound(c, err.Error())
	case domain.IsNoDestinations(err):
		return response.NoDestinations(c)
	case domain.IsStoreUnavailable(err):
		return response.ServiceUnavailable(c)
	}

	return response.InternalServerError(c)
}

// Health handles GET /health
//
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} response.HealthResponse
// @Router /health [get]
func (h *RankingHandler) Health(c echo.Context) error {
	return response.Health(c)
}
