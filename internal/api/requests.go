package api

// RegisterRequest is the self-service registration payload.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

// LoginRequest is the sign-in payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateUserRequest provisions a profile without credentials.
type CreateUserRequest struct {
	Email     string  `json:"email"`
	Username  string  `json:"username"`
	Name      string  `json:"name"`
	Role      string  `json:"role"`
	AvatarURL *string `json:"avatar_url"`
}

// UpdateUserRequest is a partial profile update; absent fields stay untouched.
type UpdateUserRequest struct {
	Name      *string `json:"name"`
	Username  *string `json:"username"`
	AvatarURL *string `json:"avatar_url"`
	Role      *string `json:"role"`
	IsActive  *bool   `json:"is_active"`
}

// CreateTeamRequest creates a team.
type CreateTeamRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	LeaderID    *string `json:"leader_id"`
}

// UpdateTeamRequest is a partial team update.
type UpdateTeamRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	LeaderID    *string `json:"leader_id"`
}

// AddMemberRequest adds a user to a team.
type AddMemberRequest struct {
	UserID string `json:"user_id"`
}

// CreateProjectRequest creates a project. Dates use YYYY-MM-DD.
type CreateProjectRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	ClientID    *string `json:"client_id"`
	Status      string  `json:"status"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
	TeamID      *string `json:"team_id"`
}

// UpdateProjectRequest is a partial project update.
type UpdateProjectRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	ClientID    *string `json:"client_id"`
	Status      *string `json:"status"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
	TeamID      *string `json:"team_id"`
}

// CreateTaskRequest creates a task. Due date uses YYYY-MM-DD.
type CreateTaskRequest struct {
	Title          string   `json:"title"`
	Description    *string  `json:"description"`
	Status         string   `json:"status"`
	Priority       string   `json:"priority"`
	DueDate        *string  `json:"due_date"`
	EstimatedHours *float64 `json:"estimated_hours"`
	AssignedTo     *string  `json:"assigned_to"`
	ProjectID      *string  `json:"project_id"`
}

// UpdateTaskRequest is a partial task update.
type UpdateTaskRequest struct {
	Title          *string  `json:"title"`
	Description    *string  `json:"description"`
	Status         *string  `json:"status"`
	Priority       *string  `json:"priority"`
	DueDate        *string  `json:"due_date"`
	EstimatedHours *float64 `json:"estimated_hours"`
	AssignedTo     *string  `json:"assigned_to"`
	ProjectID      *string  `json:"project_id"`
}

// CreateCommentRequest attaches a comment to a task.
type CreateCommentRequest struct {
	Content string `json:"content"`
}
