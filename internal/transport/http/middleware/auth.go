package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/alkharfy/cveeez-dash/internal/api"
	"github.com/alkharfy/cveeez-dash/internal/authz"
	"github.com/alkharfy/cveeez-dash/internal/entities"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// PrincipalKey is the fiber.Ctx locals key the authenticated principal is
// stored under.
const PrincipalKey = "principal"

// PrincipalResolver turns a bearer token into the request principal.
type PrincipalResolver interface {
	Resolve(ctx context.Context, token string) (entities.Principal, error)
}

// RoleSource reads the current role of an active user.
type RoleSource interface {
	RoleByID(ctx context.Context, id string) (entities.Role, error)
}

// Authenticate extracts the bearer token, resolves the principal and stores it
// in locals. Requests without a resolvable session are rejected with 401
// before any handler runs.
func Authenticate(log *zap.SugaredLogger, resolver PrincipalResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			return unauthorized(c)
		}

		p, err := resolver.Resolve(c.Context(), token)
		if err != nil {
			if !errors.Is(err, entities.ErrUnauthorized) {
				log.Errorw("failed to resolve principal", "error", err.Error())
			}
			return unauthorized(c)
		}

		c.Locals(PrincipalKey, p)
		return c.Next()
	}
}

// RequirePermission rejects principals whose role may not perform the action.
// The role is re-read from the user record so a role change or deactivation
// takes effect on the next request, not at next login.
func RequirePermission(log *zap.SugaredLogger, roles RoleSource, res authz.Resource, act authz.Action) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, ok := c.Locals(PrincipalKey).(entities.Principal)
		if !ok {
			return unauthorized(c)
		}

		role, err := roles.RoleByID(c.Context(), p.ID)
		if err != nil {
			// A missing or deactivated record is a permission denial, not a
			// credential failure.
			if errors.Is(err, entities.ErrNotFound) {
				return forbidden(c)
			}
			log.Errorw("failed to load role", "error", err.Error(), "user_id", p.ID)
			msg := "Internal server error"
			return c.Status(http.StatusInternalServerError).JSON(api.Envelope{Error: &msg})
		}

		if !authz.Allowed(role, res, act) {
			return forbidden(c)
		}
		return c.Next()
	}
}

func unauthorized(c *fiber.Ctx) error {
	msg := "Unauthorized"
	return c.Status(http.StatusUnauthorized).JSON(api.Envelope{Error: &msg})
}

func forbidden(c *fiber.Ctx) error {
	msg := "Forbidden: Insufficient permissions"
	return c.Status(http.StatusForbidden).JSON(api.Envelope{Error: &msg})
}
