package handlers_fiber

import (
	"net/http"

	"github.com/alkharfy/cveeez-dash/internal/api"
	"github.com/alkharfy/cveeez-dash/internal/entities"
	"github.com/alkharfy/cveeez-dash/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

type projectListResponse struct {
	Projects   []api.Project  `json:"projects"`
	Pagination api.Pagination `json:"pagination"`
}

// GetProjects lists projects with client and team expanded.
func (h *Handler) GetProjects(c *fiber.Ctx) error {
	page, limit, offset := pagination(c)

	projects, total, err := h.uc.ListProjects(c.Context(), entities.ProjectFilter{
		Status: entities.ProjectStatus(c.Query("status")),
		Search: c.Query("search"),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		h.log.Errorw("failed to list projects", "error", err.Error())
		return writeError(c, err)
	}

	return respond(c, http.StatusOK, projectListResponse{
		Projects:   mapper.ToAPIProjectList(projects),
		Pagination: paginationBlock(total, page, limit),
	})
}

// GetProject returns one project including team members and its task list.
func (h *Handler) GetProject(c *fiber.Ctx) error {
	project, err := h.uc.Project(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return respond(c, http.StatusOK, mapper.ToAPIProject(*project))
}

// PostProject creates a project, defaulting status to Active.
func (h *Handler) PostProject(c *fiber.Ctx) error {
	var body api.CreateProjectRequest
	if err := parseBody(c, &body, "name"); err != nil {
		return writeError(c, err)
	}

	startDate, err := mapper.FromDate(body.StartDate)
	if err != nil {
		return writeError(c, err)
	}
	endDate, err := mapper.FromDate(body.EndDate)
	if err != nil {
		return writeError(c, err)
	}

	project, err := h.uc.CreateProject(c.Context(), entities.Project{
		Name:        body.Name,
		Description: body.Description,
		ClientID:    body.ClientID,
		Status:      entities.ProjectStatus(body.Status),
		StartDate:   startDate,
		EndDate:     endDate,
		TeamID:      body.TeamID,
	})
	if err != nil {
		h.log.Errorw("failed to create project", "error", err.Error())
		return writeError(c, err)
	}

	return respondMessage(c, http.StatusCreated, mapper.ToAPIProject(*project), "Project created successfully")
}

// PutProject applies a partial project update.
func (h *Handler) PutProject(c *fiber.Ctx) error {
	var body api.UpdateProjectRequest
	if err := parseBody(c, &body); err != nil {
		return writeError(c, err)
	}

	startDate, err := mapper.FromDate(body.StartDate)
	if err != nil {
		return writeError(c, err)
	}
	endDate, err := mapper.FromDate(body.EndDate)
	if err != nil {
		return writeError(c, err)
	}

	upd := entities.ProjectUpdate{
		Name:        body.Name,
		Description: body.Description,
		ClientID:    body.ClientID,
		StartDate:   startDate,
		EndDate:     endDate,
		TeamID:      body.TeamID,
	}
	if body.Status != nil {
		status := entities.ProjectStatus(*body.Status)
		upd.Status = &status
	}

	project, err := h.uc.UpdateProject(c.Context(), c.Params("id"), upd)
	if err != nil {
		return writeError(c, err)
	}

	return respondMessage(c, http.StatusOK, mapper.ToAPIProject(*project), "Project updated successfully")
}

// DeleteProject hard-deletes a project.
func (h *Handler) DeleteProject(c *fiber.Ctx) error {
	if err := h.uc.DeleteProject(c.Context(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return respondMessage(c, http.StatusOK, nil, "Project deleted successfully")
}
