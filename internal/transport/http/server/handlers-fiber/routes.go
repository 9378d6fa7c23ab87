package handlers_fiber

import (
	"github.com/alkharfy/cveeez-dash/internal/authz"
	"github.com/alkharfy/cveeez-dash/internal/transport/http/middleware"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// RegisterRoutes mounts the REST surface under /api. Every route except
// register and login sits behind the auth gate; write routes additionally
// consult the role policy.
func RegisterRoutes(app *fiber.App, h *Handler, log *zap.SugaredLogger, resolver middleware.PrincipalResolver, roles middleware.RoleSource) {
	gate := middleware.Authenticate(log, resolver)
	require := func(res authz.Resource, act authz.Action) fiber.Handler {
		return middleware.RequirePermission(log, roles, res, act)
	}

	root := app.Group("/api")

	authGroup := root.Group("/auth")
	authGroup.Post("/register", h.PostAuthRegister)
	authGroup.Post("/login", h.PostAuthLogin)
	authGroup.Post("/logout", gate, h.PostAuthLogout)

	users := root.Group("/users", gate)
	users.Get("/", h.GetUsers)
	users.Post("/", require(authz.ResourceUser, authz.ActionCreate), h.PostUser)
	users.Get("/:id", h.GetUser)
	users.Put("/:id", h.PutUser)
	users.Delete("/:id", require(authz.ResourceUser, authz.ActionDelete), h.DeleteUser)

	teams := root.Group("/teams", gate)
	teams.Get("/", h.GetTeams)
	teams.Post("/", require(authz.ResourceTeam, authz.ActionCreate), h.PostTeam)
	teams.Get("/:id", h.GetTeam)
	teams.Put("/:id", require(authz.ResourceTeam, authz.ActionUpdate), h.PutTeam)
	teams.Delete("/:id", require(authz.ResourceTeam, authz.ActionDelete), h.DeleteTeam)
	teams.Post("/:id/members", require(authz.ResourceTeam, authz.ActionUpdate), h.PostTeamMember)
	teams.Delete("/:id/members", require(authz.ResourceTeam, authz.ActionUpdate), h.DeleteTeamMember)

	projects := root.Group("/projects", gate)
	projects.Get("/", h.GetProjects)
	projects.Post("/", require(authz.ResourceProject, authz.ActionCreate), h.PostProject)
	projects.Get("/:id", h.GetProject)
	projects.Put("/:id", require(authz.ResourceProject, authz.ActionUpdate), h.PutProject)
	projects.Delete("/:id", require(authz.ResourceProject, authz.ActionDelete), h.DeleteProject)

	tasks := root.Group("/tasks", gate)
	tasks.Get("/", h.GetTasks)
	tasks.Post("/", h.PostTask)
	tasks.Get("/:id", h.GetTask)
	tasks.Put("/:id", h.PutTask)
	tasks.Delete("/:id", h.DeleteTask)
	tasks.Get("/:id/comments", h.GetTaskComments)
	tasks.Post("/:id/comments", h.PostTaskComment)

	root.Get("/dashboard", gate, h.GetDashboard)
}
