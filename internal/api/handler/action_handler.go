package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gaeliza/match-system/internal/core/ports"
)

// ActionHandler handles HTTP requests for in-match action logging.
type ActionHandler struct {
	service ports.ActionService
}

func NewActionHandler(service ports.ActionService) *ActionHandler {
	return &ActionHandler{service: service}
}

type recordActionRequest struct {
	MatchID     string  `json:"match_id"    validate:"required"`
	PlayerID    string  `json:"player_id"`
	TeamID      string  `json:"team_id"`
	Type        string  `json:"type"        validate:"required,oneof=goal point missed_shot foul penalty yellow_card black_card red_card"`
	Minute      int     `json:"minute"      validate:"min=0,max=120"`
	Second      int     `json:"second"      validate:"min=0,max=59"`
	XPosition   float64 `json:"x_position"  validate:"min=0,max=100"`
	YPosition   float64 `json:"y_position"  validate:"min=0,max=100"`
	Description string  `json:"description"`
}

// Record handles POST /v1/actions.
//
// @Summary      Record an in-match action
// @Tags         actions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      recordActionRequest  true  "Action details"
// @Success      201   {object}  domain.Action
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/actions [post]
func (h *ActionHandler) Record(c echo.Context) error {
	var req recordActionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	action, err := h.service.Record(c.Request().Context(), ports.RecordActionInput{
		MatchID:     req.MatchID,
		PlayerID:    req.PlayerID,
		TeamID:      req.TeamID,
		Type:        req.Type,
		Minute:      req.Minute,
		Second:      req.Second,
		XPosition:   req.XPosition,
		YPosition:   req.YPosition,
		Description: req.Description,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, action)
}

// ListByMatch handles GET /v1/matches/:id/actions — the chronological feed.
//
// @Summary      List a match's actions
// @Tags         actions
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Match id"
// @Success      200  {array}   domain.Action
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/matches/{id}/actions [get]
func (h *ActionHandler) ListByMatch(c echo.Context) error {
	actions, err := h.service.ListByMatch(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, actions)
}
