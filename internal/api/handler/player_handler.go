package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gaeliza/match-system/internal/core/ports"
)

// PlayerHandler handles HTTP requests for player operations.
type PlayerHandler struct {
	service ports.PlayerService
}

func NewPlayerHandler(service ports.PlayerService) *PlayerHandler {
	return &PlayerHandler{service: service}
}

type createPlayerRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name"  validate:"required"`
	Number    int    `json:"number"     validate:"omitempty,min=1,max=99"`
	TeamID    string `json:"team_id"`
}

// Create handles POST /v1/players.
//
// @Summary      Register a player
// @Tags         players
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPlayerRequest  true  "Player details"
// @Success      201   {object}  domain.Player
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/players [post]
func (h *PlayerHandler) Create(c echo.Context) error {
	var req createPlayerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	player, err := h.service.Create(c.Request().Context(), ports.CreatePlayerInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Number:    req.Number,
		TeamID:    req.TeamID,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, player)
}

// List handles GET /v1/players. An optional team_id query parameter scopes
// the result to one team's roster.
//
// @Summary      List players
// @Tags         players
// @Produce      json
// @Security     BearerAuth
// @Param        team_id  query     string  false  "Filter by team"
// @Success      200      {array}   domain.Player
// @Failure      401      {object}  errorResponse
// @Router       /v1/players [get]
func (h *PlayerHandler) List(c echo.Context) error {
	players, err := h.service.List(c.Request().Context(), c.QueryParam("team_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, players)
}
