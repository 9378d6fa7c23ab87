package handlers_fiber

import (
	"net/http"

	"github.com/alkharfy/cveeez-dash/internal/api"
	"github.com/alkharfy/cveeez-dash/internal/entities"
	"github.com/alkharfy/cveeez-dash/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

type userListResponse struct {
	Users      []api.User     `json:"users"`
	Pagination api.Pagination `json:"pagination"`
}

// GetUsers lists active users with optional role and search filters.
func (h *Handler) GetUsers(c *fiber.Ctx) error {
	page, limit, offset := pagination(c)

	users, total, err := h.uc.ListUsers(c.Context(), entities.UserFilter{
		Role:   entities.Role(c.Query("role")),
		Search: c.Query("search"),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		h.log.Errorw("failed to list users", "error", err.Error())
		return writeError(c, err)
	}

	return respond(c, http.StatusOK, userListResponse{
		Users:      mapper.ToAPIUserList(users),
		Pagination: paginationBlock(total, page, limit),
	})
}

// GetUser returns one active user.
func (h *Handler) GetUser(c *fiber.Ctx) error {
	user, err := h.uc.User(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return respond(c, http.StatusOK, mapper.ToAPIUser(*user))
}

// PostUser provisions a profile without credentials.
func (h *Handler) PostUser(c *fiber.Ctx) error {
	var body api.CreateUserRequest
	if err := parseBody(c, &body, "email", "username", "name"); err != nil {
		return writeError(c, err)
	}

	user, err := h.uc.CreateUser(c.Context(), entities.User{
		Email:     body.Email,
		Username:  body.Username,
		Name:      body.Name,
		Role:      entities.Role(body.Role),
		AvatarURL: body.AvatarURL,
	})
	if err != nil {
		h.log.Errorw("failed to create user", "error", err.Error())
		return writeError(c, err)
	}

	return respondMessage(c, http.StatusCreated, mapper.ToAPIUser(*user), "User created successfully")
}

// PutUser applies a partial profile update under the ownership policy.
func (h *Handler) PutUser(c *fiber.Ctx) error {
	p, err := principalFrom(c)
	if err != nil {
		return writeError(c, err)
	}

	var body api.UpdateUserRequest
	if err := parseBody(c, &body); err != nil {
		return writeError(c, err)
	}

	upd := entities.UserUpdate{
		Name:      body.Name,
		Username:  body.Username,
		AvatarURL: body.AvatarURL,
		IsActive:  body.IsActive,
	}
	if body.Role != nil {
		role := entities.Role(*body.Role)
		upd.Role = &role
	}

	user, err := h.uc.UpdateUser(c.Context(), p, c.Params("id"), upd)
	if err != nil {
		return writeError(c, err)
	}

	return respondMessage(c, http.StatusOK, mapper.ToAPIUser(*user), "User updated successfully")
}

// DeleteUser soft-deletes a user by flipping is_active.
func (h *Handler) DeleteUser(c *fiber.Ctx) error {
	user, err := h.uc.DeactivateUser(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return respondMessage(c, http.StatusOK, mapper.ToAPIUser(*user), "User deactivated successfully")
}
