package handlers_fiber

import (
	"net/http"

	"github.com/alkharfy/cveeez-dash/internal/api"
	"github.com/alkharfy/cveeez-dash/internal/entities"
	"github.com/alkharfy/cveeez-dash/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

type taskListResponse struct {
	Tasks      []api.Task     `json:"tasks"`
	Pagination api.Pagination `json:"pagination"`
}

// GetTasks lists tasks with assignee, creator and project expanded.
func (h *Handler) GetTasks(c *fiber.Ctx) error {
	page, limit, offset := pagination(c)

	tasks, total, err := h.uc.ListTasks(c.Context(), entities.TaskFilter{
		Status:     entities.TaskStatus(c.Query("status")),
		Priority:   entities.TaskPriority(c.Query("priority")),
		AssignedTo: c.Query("assigned_to"),
		ProjectID:  c.Query("project_id"),
		Search:     c.Query("search"),
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		h.log.Errorw("failed to list tasks", "error", err.Error())
		return writeError(c, err)
	}

	return respond(c, http.StatusOK, taskListResponse{
		Tasks:      mapper.ToAPITaskList(tasks),
		Pagination: paginationBlock(total, page, limit),
	})
}

// GetTask returns one task including its comments.
func (h *Handler) GetTask(c *fiber.Ctx) error {
	task, err := h.uc.Task(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return respond(c, http.StatusOK, mapper.ToAPITask(*task))
}

// PostTask creates a task with the principal as creator.
func (h *Handler) PostTask(c *fiber.Ctx) error {
	p, err := principalFrom(c)
	if err != nil {
		return writeError(c, err)
	}

	var body api.CreateTaskRequest
	if err := parseBody(c, &body, "title"); err != nil {
		return writeError(c, err)
	}

	dueDate, err := mapper.FromDate(body.DueDate)
	if err != nil {
		return writeError(c, err)
	}

	task, err := h.uc.CreateTask(c.Context(), entities.Task{
		Title:          body.Title,
		Description:    body.Description,
		Status:         entities.TaskStatus(body.Status),
		Priority:       entities.TaskPriority(body.Priority),
		DueDate:        dueDate,
		EstimatedHours: body.EstimatedHours,
		AssignedTo:     body.AssignedTo,
		ProjectID:      body.ProjectID,
		CreatedBy:      p.ID,
	})
	if err != nil {
		h.log.Errorw("failed to create task", "error", err.Error())
		return writeError(c, err)
	}

	return respondMessage(c, http.StatusCreated, mapper.ToAPITask(*task), "Task created successfully")
}

// PutTask applies a partial task update.
func (h *Handler) PutTask(c *fiber.Ctx) error {
	var body api.UpdateTaskRequest
	if err := parseBody(c, &body); err != nil {
		return writeError(c, err)
	}

	dueDate, err := mapper.FromDate(body.DueDate)
	if err != nil {
		return writeError(c, err)
	}

	upd := entities.TaskUpdate{
		Title:          body.Title,
		Description:    body.Description,
		DueDate:        dueDate,
		EstimatedHours: body.EstimatedHours,
		AssignedTo:     body.AssignedTo,
		ProjectID:      body.ProjectID,
	}
	if body.Status != nil {
		status := entities.TaskStatus(*body.Status)
		upd.Status = &status
	}
	if body.Priority != nil {
		priority := entities.TaskPriority(*body.Priority)
		upd.Priority = &priority
	}

	task, err := h.uc.UpdateTask(c.Context(), c.Params("id"), upd)
	if err != nil {
		return writeError(c, err)
	}

	return respondMessage(c, http.StatusOK, mapper.ToAPITask(*task), "Task updated successfully")
}

// DeleteTask hard-deletes a task and its comments.
func (h *Handler) DeleteTask(c *fiber.Ctx) error {
	if err := h.uc.DeleteTask(c.Context(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return respondMessage(c, http.StatusOK, nil, "Task deleted successfully")
}

// GetTaskComments lists a task's comments oldest first.
func (h *Handler) GetTaskComments(c *fiber.Ctx) error {
	comments, err := h.uc.TaskComments(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return respond(c, http.StatusOK, mapper.ToAPICommentList(comments))
}

// PostTaskComment attaches a comment authored by the principal.
func (h *Handler) PostTaskComment(c *fiber.Ctx) error {
	p, err := principalFrom(c)
	if err != nil {
		return writeError(c, err)
	}

	var body api.CreateCommentRequest
	if err := parseBody(c, &body, "content"); err != nil {
		return writeError(c, err)
	}

	comment, err := h.uc.AddComment(c.Context(), c.Params("id"), p.ID, body.Content)
	if err != nil {
		h.log.Errorw("failed to add comment", "error", err.Error())
		return writeError(c, err)
	}

	return respondMessage(c, http.StatusCreated, mapper.ToAPIComment(*comment), "Comment added successfully")
}
