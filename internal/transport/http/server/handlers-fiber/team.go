package handlers_fiber

import (
	"net/http"

	"github.com/alkharfy/cveeez-dash/internal/api"
	"github.com/alkharfy/cveeez-dash/internal/entities"
	"github.com/alkharfy/cveeez-dash/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

type teamListResponse struct {
	Teams      []api.Team     `json:"teams"`
	Pagination api.Pagination `json:"pagination"`
}

// GetTeams lists teams with leader and members expanded.
func (h *Handler) GetTeams(c *fiber.Ctx) error {
	page, limit, offset := pagination(c)

	teams, total, err := h.uc.ListTeams(c.Context(), entities.TeamFilter{
		Search: c.Query("search"),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		h.log.Errorw("failed to list teams", "error", err.Error())
		return writeError(c, err)
	}

	return respond(c, http.StatusOK, teamListResponse{
		Teams:      mapper.ToAPITeamList(teams),
		Pagination: paginationBlock(total, page, limit),
	})
}

// GetTeam returns one team with its members.
func (h *Handler) GetTeam(c *fiber.Ctx) error {
	team, err := h.uc.Team(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return respond(c, http.StatusOK, mapper.ToAPITeam(*team))
}

// PostTeam creates a team.
func (h *Handler) PostTeam(c *fiber.Ctx) error {
	var body api.CreateTeamRequest
	if err := parseBody(c, &body, "name"); err != nil {
		return writeError(c, err)
	}

	team, err := h.uc.CreateTeam(c.Context(), entities.Team{
		Name:        body.Name,
		Description: body.Description,
		LeaderID:    body.LeaderID,
	})
	if err != nil {
		h.log.Errorw("failed to create team", "error", err.Error())
		return writeError(c, err)
	}

	return respondMessage(c, http.StatusCreated, mapper.ToAPITeam(*team), "Team created successfully")
}

// PutTeam applies a partial team update.
func (h *Handler) PutTeam(c *fiber.Ctx) error {
	var body api.UpdateTeamRequest
	if err := parseBody(c, &body); err != nil {
		return writeError(c, err)
	}

	team, err := h.uc.UpdateTeam(c.Context(), c.Params("id"), entities.TeamUpdate{
		Name:        body.Name,
		Description: body.Description,
		LeaderID:    body.LeaderID,
	})
	if err != nil {
		return writeError(c, err)
	}

	return respondMessage(c, http.StatusOK, mapper.ToAPITeam(*team), "Team updated successfully")
}

// DeleteTeam hard-deletes a team and its memberships.
func (h *Handler) DeleteTeam(c *fiber.Ctx) error {
	if err := h.uc.DeleteTeam(c.Context(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return respondMessage(c, http.StatusOK, nil, "Team deleted successfully")
}

// PostTeamMember adds a user to a team.
func (h *Handler) PostTeamMember(c *fiber.Ctx) error {
	var body api.AddMemberRequest
	if err := parseBody(c, &body, "user_id"); err != nil {
		return writeError(c, err)
	}

	member, err := h.uc.AddTeamMember(c.Context(), c.Params("id"), body.UserID)
	if err != nil {
		h.log.Errorw("failed to add team member", "error", err.Error())
		return writeError(c, err)
	}

	return respondMessage(c, http.StatusCreated, mapper.ToAPITeamMember(*member), "User added to team successfully")
}

// DeleteTeamMember removes a user from a team. The user id comes from the
// query string.
func (h *Handler) DeleteTeamMember(c *fiber.Ctx) error {
	userID := c.Query("user_id")
	if userID == "" {
		return respondError(c, http.StatusBadRequest, "Missing required fields: user_id")
	}

	if err := h.uc.RemoveTeamMember(c.Context(), c.Params("id"), userID); err != nil {
		return writeError(c, err)
	}
	return respondMessage(c, http.StatusOK, nil, "User removed from team successfully")
}
