package handlers_fiber

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/alkharfy/cveeez-dash/internal/api"
	"github.com/alkharfy/cveeez-dash/internal/entities"
	"github.com/alkharfy/cveeez-dash/internal/transport/http/middleware"

	"github.com/gofiber/fiber/v2"
)

// writeError maps domain sentinels to HTTP statuses and the uniform envelope.
func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	msg := "Internal server error"

	switch {
	case errors.Is(err, entities.ErrInvalidArgument):
		status = http.StatusBadRequest
		msg = strings.TrimPrefix(err.Error(), entities.ErrInvalidArgument.Error()+": ")
	case errors.Is(err, entities.ErrInvalidCredentials):
		status = http.StatusUnauthorized
		msg = "Invalid login credentials"
	case errors.Is(err, entities.ErrUnauthorized):
		status = http.StatusUnauthorized
		msg = "Unauthorized"
	case errors.Is(err, entities.ErrForbidden):
		status = http.StatusForbidden
		msg = "Forbidden: Insufficient permissions"
		if detail := strings.TrimPrefix(err.Error(), entities.ErrForbidden.Error()+": "); detail != err.Error() {
			msg = "Forbidden: " + detail
		}
	case errors.Is(err, entities.ErrNotFound):
		status = http.StatusNotFound
		msg = "Resource not found"
	case errors.Is(err, entities.ErrAlreadyExists):
		status = http.StatusConflict
		msg = "Resource already exists"
	default:
		if err != nil && err.Error() != "" {
			msg = err.Error()
		}
	}

	return respondError(c, status, msg)
}

// parseBody validates the raw JSON body against the required field list, then
// unmarshals it into dst. A field counts as missing when the key is absent or
// its value is falsy (null, "", false, 0).
func parseBody(c *fiber.Ctx, dst any, required ...string) error {
	raw := c.Body()

	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return fmt.Errorf("%w: Invalid JSON body", entities.ErrInvalidArgument)
	}

	var missing []string
	for _, name := range required {
		if isFalsy(fields[name]) {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: Missing required fields: %s", entities.ErrInvalidArgument, strings.Join(missing, ", "))
	}

	if dst == nil {
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("%w: Invalid JSON body", entities.ErrInvalidArgument)
	}
	return nil
}

func isFalsy(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case bool:
		return !t
	case float64:
		return t == 0
	}
	return false
}

// pagination reads page and limit query params, falling back to defaults on
// absent or non-numeric input.
func pagination(c *fiber.Ctx) (page, limit, offset int) {
	page = c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	limit = c.QueryInt("limit", 10)
	if limit < 1 {
		limit = 10
	}
	return page, limit, (page - 1) * limit
}

func paginationBlock(total int64, page, limit int) api.Pagination {
	totalPages := total / int64(limit)
	if total%int64(limit) != 0 {
		totalPages++
	}
	return api.Pagination{
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}
}

// principalFrom returns the authenticated principal stored by the auth
// middleware, or ErrUnauthorized when the gate did not run.
func principalFrom(c *fiber.Ctx) (entities.Principal, error) {
	p, ok := c.Locals(middleware.PrincipalKey).(entities.Principal)
	if !ok {
		return entities.Principal{}, entities.ErrUnauthorized
	}
	return p, nil
}
