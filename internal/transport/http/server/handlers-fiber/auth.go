package handlers_fiber

import (
	"net/http"

	"github.com/alkharfy/cveeez-dash/internal/api"
	"github.com/alkharfy/cveeez-dash/internal/entities"
	"github.com/alkharfy/cveeez-dash/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

type authResponse struct {
	User  api.User `json:"user"`
	Token string   `json:"token"`
}

// PostAuthRegister creates a credential and profile pair and opens a session.
func (h *Handler) PostAuthRegister(c *fiber.Ctx) error {
	var body api.RegisterRequest
	if err := parseBody(c, &body, "email", "password", "username", "name"); err != nil {
		return writeError(c, err)
	}

	user, token, err := h.uc.Register(c.Context(), entities.RegisterInput{
		Email:    body.Email,
		Password: body.Password,
		Username: body.Username,
		Name:     body.Name,
		Role:     entities.Role(body.Role),
	})
	if err != nil {
		h.log.Errorw("failed to register user", "error", err.Error())
		return writeError(c, err)
	}

	return respondMessage(c, http.StatusCreated, authResponse{
		User:  mapper.ToAPIUser(*user),
		Token: token,
	}, "User registered successfully")
}

// PostAuthLogin checks credentials and opens a session.
func (h *Handler) PostAuthLogin(c *fiber.Ctx) error {
	var body api.LoginRequest
	if err := parseBody(c, &body, "email", "password"); err != nil {
		return writeError(c, err)
	}

	user, token, err := h.uc.Login(c.Context(), body.Email, body.Password)
	if err != nil {
		h.log.Infow("login rejected", "email", body.Email, "error", err.Error())
		return writeError(c, err)
	}

	return respondMessage(c, http.StatusOK, authResponse{
		User:  mapper.ToAPIUser(*user),
		Token: token,
	}, "Login successful")
}

// PostAuthLogout revokes the principal's session.
func (h *Handler) PostAuthLogout(c *fiber.Ctx) error {
	p, err := principalFrom(c)
	if err != nil {
		return writeError(c, err)
	}

	if err := h.uc.Logout(c.Context(), p.SessionID); err != nil {
		h.log.Errorw("failed to revoke session", "error", err.Error())
		return writeError(c, err)
	}

	return respondMessage(c, http.StatusOK, nil, "Logout successful")
}
