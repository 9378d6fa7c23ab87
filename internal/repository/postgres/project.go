package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alkharfy/cveeez-dash/internal/entities"
)

const (
	projectSelect = `
SELECT p.id, p.name, p.description, p.client_id, p.status, p.start_date, p.end_date, p.team_id,
       p.created_at, p.updated_at,
       c.id, c.name, c.email,
       t.id, t.name, l.name
FROM projects p
LEFT JOIN users c ON c.id = p.client_id
LEFT JOIN teams t ON t.id = p.team_id
LEFT JOIN users l ON l.id = t.leader_id`

	insertProjectQuery = `
INSERT INTO projects(id, name, description, client_id, status, start_date, end_date, team_id, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)`
	deleteProjectQuery = `DELETE FROM projects WHERE id = $1`

	selectProjectMembersQuery = `
SELECT u.id, u.name, u.email, u.role
FROM team_members tm
JOIN users u ON u.id = tm.user_id
WHERE tm.team_id = $1
ORDER BY tm.joined_at`

	selectProjectTasksQuery = `
SELECT t.id, t.title, t.status, t.priority, t.assigned_to, au.name
FROM tasks t
LEFT JOIN users au ON au.id = t.assigned_to
WHERE t.project_id = $1
ORDER BY t.created_at DESC`
)

func scanProject(row interface{ Scan(...any) error }) (*entities.Project, error) {
	var (
		p                                entities.Project
		clientID, clientName, clientMail *string
		teamID, teamName, leaderName     *string
	)
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.ClientID, &p.Status, &p.StartDate, &p.EndDate, &p.TeamID,
		&p.CreatedAt, &p.UpdatedAt,
		&clientID, &clientName, &clientMail,
		&teamID, &teamName, &leaderName)
	if err != nil {
		return nil, err
	}
	if clientID != nil {
		p.Client = &entities.UserRef{ID: *clientID, Name: *clientName, Email: *clientMail}
	}
	if teamID != nil {
		p.Team = &entities.ProjectTeam{ID: *teamID, Name: *teamName, LeaderName: leaderName}
	}
	return &p, nil
}

// ListProjects returns projects matching the filter with client and team expanded.
func (p *Postgres) ListProjects(ctx context.Context, f entities.ProjectFilter) ([]entities.Project, int64, error) {
	conds := []string{"true"}
	args := []any{}
	if f.Status != "" {
		args = append(args, f.Status)
		conds = append(conds, fmt.Sprintf("p.status = $%d", len(args)))
	}
	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf("(p.name ILIKE $%d OR p.description ILIKE $%d)", n, n))
	}
	where := strings.Join(conds, " AND ")

	var total int64
	if err := p.db.QueryRow(ctx, "SELECT count(*) FROM projects p WHERE "+where, args...).Scan(&total); err != nil {
		return nil, 0, classify(err, "count projects")
	}

	args = append(args, f.Limit, f.Offset)
	query := fmt.Sprintf("%s WHERE %s ORDER BY p.created_at DESC LIMIT $%d OFFSET $%d",
		projectSelect, where, len(args)-1, len(args))

	rows, err := p.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, classify(err, "list projects")
	}
	defer rows.Close()

	projects := make([]entities.Project, 0)
	for rows.Next() {
		pr, err := scanProject(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan project: %w", err)
		}
		projects = append(projects, *pr)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate projects: %w", err)
	}

	return projects, total, nil
}

// ProjectByID fetches a project with team members and its task list expanded.
func (p *Postgres) ProjectByID(ctx context.Context, id string) (*entities.Project, error) {
	pr, err := scanProject(p.db.QueryRow(ctx, projectSelect+" WHERE p.id = $1", id))
	if err != nil {
		return nil, classify(err, "select project")
	}

	if pr.Team != nil {
		rows, err := p.db.Query(ctx, selectProjectMembersQuery, pr.Team.ID)
		if err != nil {
			return nil, fmt.Errorf("select project members: %w", err)
		}
		defer rows.Close()
		for rows.Next() {
			var u entities.MemberUser
			if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Role); err != nil {
				return nil, fmt.Errorf("scan project member: %w", err)
			}
			pr.Team.Members = append(pr.Team.Members, u)
		}
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("iterate project members: %w", err)
		}
	}

	taskRows, err := p.db.Query(ctx, selectProjectTasksQuery, id)
	if err != nil {
		return nil, fmt.Errorf("select project tasks: %w", err)
	}
	defer taskRows.Close()

	pr.Tasks = make([]entities.TaskRef, 0)
	for taskRows.Next() {
		var t entities.TaskRef
		if err := taskRows.Scan(&t.ID, &t.Title, &t.Status, &t.Priority, &t.AssignedTo, &t.AssignedName); err != nil {
			return nil, fmt.Errorf("scan project task: %w", err)
		}
		pr.Tasks = append(pr.Tasks, t)
	}
	if err := taskRows.Err(); err != nil {
		return nil, fmt.Errorf("iterate project tasks: %w", err)
	}

	return pr, nil
}

// CreateProject inserts a project and returns it expanded.
func (p *Postgres) CreateProject(ctx context.Context, pr entities.Project) (*entities.Project, error) {
	now := time.Now().UTC()
	_, err := p.db.Exec(ctx, insertProjectQuery,
		pr.ID, pr.Name, pr.Description, pr.ClientID, pr.Status, pr.StartDate, pr.EndDate, pr.TeamID, now)
	if err != nil {
		return nil, classify(err, "insert project")
	}

	p.log.Infow("project created", "project_id", pr.ID, "name", pr.Name)
	return p.ProjectByID(ctx, pr.ID)
}

// UpdateProject applies the non-nil fields of upd and returns the updated project.
func (p *Postgres) UpdateProject(ctx context.Context, id string, upd entities.ProjectUpdate) (*entities.Project, error) {
	sets := []string{}
	args := []any{id}

	set := func(col string, val any) {
		args = append(args, val)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if upd.Name != nil {
		set("name", *upd.Name)
	}
	if upd.Description != nil {
		set("description", *upd.Description)
	}
	if upd.ClientID != nil {
		set("client_id", *upd.ClientID)
	}
	if upd.Status != nil {
		set("status", *upd.Status)
	}
	if upd.StartDate != nil {
		set("start_date", *upd.StartDate)
	}
	if upd.EndDate != nil {
		set("end_date", *upd.EndDate)
	}
	if upd.TeamID != nil {
		set("team_id", *upd.TeamID)
	}
	set("updated_at", time.Now().UTC())

	query := fmt.Sprintf("UPDATE projects SET %s WHERE id = $1 RETURNING id", strings.Join(sets, ", "))
	var updated string
	if err := p.db.QueryRow(ctx, query, args...).Scan(&updated); err != nil {
		return nil, classify(err, "update project")
	}

	p.log.Infow("project updated", "project_id", id)
	return p.ProjectByID(ctx, id)
}

// DeleteProject hard-deletes a project; its tasks cascade.
func (p *Postgres) DeleteProject(ctx context.Context, id string) error {
	ct, err := p.db.Exec(ctx, deleteProjectQuery, id)
	if err != nil {
		return classify(err, "delete project")
	}
	if ct.RowsAffected() == 0 {
		return entities.ErrNotFound
	}

	p.log.Infow("project deleted", "project_id", id)
	return nil
}
