package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/gaeliza/match-system/internal/core/ports"
)

// MatchHandler handles HTTP requests for match operations.
type MatchHandler struct {
	service ports.MatchService
}

func NewMatchHandler(service ports.MatchService) *MatchHandler {
	return &MatchHandler{service: service}
}

type createMatchRequest struct {
	HomeTeamID  string    `json:"home_team_id" validate:"required"`
	AwayTeamID  string    `json:"away_team_id" validate:"required"`
	MatchDate   time.Time `json:"match_date"   validate:"required"`
	Location    string    `json:"location"`
	Competition string    `json:"competition"`
	VideoURL    string    `json:"video_url"`
}

type updateMatchRequest struct {
	MatchDate   time.Time `json:"match_date"`
	Location    string    `json:"location"`
	Competition string    `json:"competition"`
	VideoURL    string    `json:"video_url"`
}

// Create handles POST /v1/matches.
//
// @Summary      Create a match
// @Tags         matches
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createMatchRequest  true  "Match details"
// @Success      201   {object}  domain.Match
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/matches [post]
func (h *MatchHandler) Create(c echo.Context) error {
	var req createMatchRequest
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

	match, err := h.service.Create(c.Request().Context(), ports.CreateMatchInput{
		HomeTeamID:  req.HomeTeamID,
		AwayTeamID:  req.AwayTeamID,
		MatchDate:   req.MatchDate,
		Location:    req.Location,
		Competition: req.Competition,
		VideoURL:    req.VideoURL,
		CreatedBy:   user.ID,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, match)
}

// List handles GET /v1/matches.
//
// @Summary      List matches
// @Tags         matches
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Match
// @Failure      401  {object}  errorResponse
// @Router       /v1/matches [get]
func (h *MatchHandler) List(c echo.Context) error {
	matches, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, matches)
}

// Get handles GET /v1/matches/:id.
//
// @Summary      Get a match
// @Tags         matches
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Match id"
// @Success      200  {object}  domain.Match
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/matches/{id} [get]
func (h *MatchHandler) Get(c echo.Context) error {
	match, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, match)
}

// Update handles PUT /v1/matches/:id.
//
// @Summary      Update a match
// @Tags         matches
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Match id"
// @Param        body  body      updateMatchRequest  true  "Fields to update"
// @Success      200   {object}  domain.Match
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/matches/{id} [put]
func (h *MatchHandler) Update(c echo.Context) error {
	var req updateMatchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	match, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateMatchInput{
		MatchDate:   req.MatchDate,
		Location:    req.Location,
		Competition: req.Competition,
		VideoURL:    req.VideoURL,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, match)
}

// Delete handles DELETE /v1/matches/:id.
//
// @Summary      Delete a match
// @Tags         matches
// @Security     BearerAuth
// @Param        id  path  string  true  "Match id"
// @Success      204
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/matches/{id} [delete]
func (h *MatchHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Summary handles GET /v1/matches/:id/summary — the live scoreboard.
//
// @Summary      Match scoreboard
// @Tags         matches
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Match id"
// @Success      200  {object}  domain.MatchSummary
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/matches/{id}/summary [get]
func (h *MatchHandler) Summary(c echo.Context) error {
	summary, err := h.service.Summary(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, summary)
}
