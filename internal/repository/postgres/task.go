package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alkharfy/cveeez-dash/internal/entities"
)

const (
	taskSelect = `
SELECT t.id, t.title, t.description, t.status, t.priority, t.due_date, t.estimated_hours,
       t.assigned_to, t.project_id, t.created_by, t.created_at, t.updated_at,
       au.id, au.name, au.email,
       cu.id, cu.name, cu.email,
       p.id, p.name
FROM tasks t
LEFT JOIN users au ON au.id = t.assigned_to
LEFT JOIN users cu ON cu.id = t.created_by
LEFT JOIN projects p ON p.id = t.project_id`

	insertTaskQuery = `
INSERT INTO tasks(id, title, description, status, priority, due_date, estimated_hours,
                  assigned_to, project_id, created_by, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $11)`
	deleteTaskQuery = `DELETE FROM tasks WHERE id = $1`
)

func scanTask(row interface{ Scan(...any) error }) (*entities.Task, error) {
	var (
		t                      entities.Task
		auID, auName, auEmail  *string
		cuID, cuName, cuEmail  *string
		projectID, projectName *string
	)
	err := row.Scan(&t.ID, &t.Title, &t.Description, &t.Status, &t.Priority, &t.DueDate, &t.EstimatedHours,
		&t.AssignedTo, &t.ProjectID, &t.CreatedBy, &t.CreatedAt, &t.UpdatedAt,
		&auID, &auName, &auEmail,
		&cuID, &cuName, &cuEmail,
		&projectID, &projectName)
	if err != nil {
		return nil, err
	}
	if auID != nil {
		t.AssignedUser = &entities.UserRef{ID: *auID, Name: *auName, Email: *auEmail}
	}
	if cuID != nil {
		t.CreatedUser = &entities.UserRef{ID: *cuID, Name: *cuName, Email: *cuEmail}
	}
	if projectID != nil {
		t.Project = &entities.ProjectRef{ID: *projectID, Name: *projectName}
	}
	return &t, nil
}

// ListTasks returns tasks matching the filter with assignee, creator and project expanded.
func (p *Postgres) ListTasks(ctx context.Context, f entities.TaskFilter) ([]entities.Task, int64, error) {
	conds := []string{"true"}
	args := []any{}

	if f.Status != "" {
		args = append(args, f.Status)
		conds = append(conds, fmt.Sprintf("t.status = $%d", len(args)))
	}
	if f.Priority != "" {
		args = append(args, f.Priority)
		conds = append(conds, fmt.Sprintf("t.priority = $%d", len(args)))
	}
	if f.AssignedTo != "" {
		args = append(args, f.AssignedTo)
		conds = append(conds, fmt.Sprintf("t.assigned_to = $%d", len(args)))
	}
	if f.ProjectID != "" {
		args = append(args, f.ProjectID)
		conds = append(conds, fmt.Sprintf("t.project_id = $%d", len(args)))
	}
	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf("(t.title ILIKE $%d OR t.description ILIKE $%d)", n, n))
	}
	where := strings.Join(conds, " AND ")

	var total int64
	if err := p.db.QueryRow(ctx, "SELECT count(*) FROM tasks t WHERE "+where, args...).Scan(&total); err != nil {
		return nil, 0, classify(err, "count tasks")
	}

	args = append(args, f.Limit, f.Offset)
	query := fmt.Sprintf("%s WHERE %s ORDER BY t.created_at DESC LIMIT $%d OFFSET $%d",
		taskSelect, where, len(args)-1, len(args))

	rows, err := p.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, classify(err, "list tasks")
	}
	defer rows.Close()

	tasks := make([]entities.Task, 0)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate tasks: %w", err)
	}

	return tasks, total, nil
}

// TaskByID fetches a task with its comments expanded.
func (p *Postgres) TaskByID(ctx context.Context, id string) (*entities.Task, error) {
	t, err := scanTask(p.db.QueryRow(ctx, taskSelect+" WHERE t.id = $1", id))
	if err != nil {
		return nil, classify(err, "select task")
	}

	comments, err := p.CommentsByTask(ctx, id)
	if err != nil {
		return nil, err
	}
	t.Comments = comments
	return t, nil
}

// CreateTask inserts a task and returns it expanded.
func (p *Postgres) CreateTask(ctx context.Context, t entities.Task) (*entities.Task, error) {
	now := time.Now().UTC()
	_, err := p.db.Exec(ctx, insertTaskQuery,
		t.ID, t.Title, t.Description, t.Status, t.Priority, t.DueDate, t.EstimatedHours,
		t.AssignedTo, t.ProjectID, t.CreatedBy, now)
	if err != nil {
		return nil, classify(err, "insert task")
	}

	p.log.Infow("task created", "task_id", t.ID, "created_by", t.CreatedBy)
	return p.TaskByID(ctx, t.ID)
}

// UpdateTask applies the non-nil fields of upd and returns the updated task.
func (p *Postgres) UpdateTask(ctx context.Context, id string, upd entities.TaskUpdate) (*entities.Task, error) {
	sets := []string{}
	args := []any{id}

	set := func(col string, val any) {
		args = append(args, val)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if upd.Title != nil {
		set("title", *upd.Title)
	}
	if upd.Description != nil {
		set("description", *upd.Description)
	}
	if upd.Status != nil {
		set("status", *upd.Status)
	}
	if upd.Priority != nil {
		set("priority", *upd.Priority)
	}
	if upd.DueDate != nil {
		set("due_date", *upd.DueDate)
	}
	if upd.EstimatedHours != nil {
		set("estimated_hours", *upd.EstimatedHours)
	}
	if upd.AssignedTo != nil {
		set("assigned_to", *upd.AssignedTo)
	}
	if upd.ProjectID != nil {
		set("project_id", *upd.ProjectID)
	}
	set("updated_at", time.Now().UTC())

	query := fmt.Sprintf("UPDATE tasks SET %s WHERE id = $1 RETURNING id", strings.Join(sets, ", "))
	var updated string
	if err := p.db.QueryRow(ctx, query, args...).Scan(&updated); err != nil {
		return nil, classify(err, "update task")
	}

	p.log.Infow("task updated", "task_id", id)
	return p.TaskByID(ctx, id)
}

// DeleteTask hard-deletes a task; its comments cascade.
func (p *Postgres) DeleteTask(ctx context.Context, id string) error {
	ct, err := p.db.Exec(ctx, deleteTaskQuery, id)
	if err != nil {
		return classify(err, "delete task")
	}
	if ct.RowsAffected() == 0 {
		return entities.ErrNotFound
	}

	p.log.Infow("task deleted", "task_id", id)
	return nil
}
