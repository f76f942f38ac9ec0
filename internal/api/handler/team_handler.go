package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gaeliza/match-system/internal/core/ports"
)

// TeamHandler handles HTTP requests for team operations.
type TeamHandler struct {
	service ports.TeamService
}

func NewTeamHandler(service ports.TeamService) *TeamHandler {
	return &TeamHandler{service: service}
}

type createTeamRequest struct {
	Name      string `json:"name"       validate:"required"`
	ShieldURL string `json:"shield_url"`
	Type      string `json:"type"       validate:"omitempty,oneof=oficial temporal"`
}

// Create handles POST /v1/teams.
//
// @Summary      Create a team
// @Tags         teams
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createTeamRequest  true  "Team details"
// @Success      201   {object}  domain.Team
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /v1/teams [post]
func (h *TeamHandler) Create(c echo.Context) error {
	var req createTeamRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := currentUser(c)
	if err != nil {
		return err
	}

	team, err := h.service.Create(c.Request().Context(), ports.CreateTeamInput{
		Name:      req.Name,
		ShieldURL: req.ShieldURL,
		Type:      req.Type,
		CreatedBy: user.ID,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, team)
}

// List handles GET /v1/teams.
//
// @Summary      List teams
// @Tags         teams
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Team
// @Failure      401  {object}  errorResponse
// @Router       /v1/teams [get]
func (h *TeamHandler) List(c echo.Context) error {
	teams, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, teams)
}
