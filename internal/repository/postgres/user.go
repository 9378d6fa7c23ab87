package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alkharfy/cveeez-dash/internal/entities"
)

const userColumns = "id, email, username, name, role, avatar_url, is_active, created_at, updated_at"

const (
	selectUserQuery = `
SELECT ` + userColumns + `
FROM users
WHERE id = $1 AND is_active = true`
	selectRoleQuery = `SELECT role FROM users WHERE id = $1 AND is_active = true`
	insertUserQuery = `
INSERT INTO users(id, email, username, name, role, avatar_url, is_active, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, true, $7, $7)
RETURNING ` + userColumns
	deactivateUserQuery = `
UPDATE users
SET is_active = false, updated_at = $2
WHERE id = $1
RETURNING ` + userColumns
)

func scanUser(row interface{ Scan(...any) error }) (*entities.User, error) {
	var u entities.User
	err := row.Scan(&u.ID, &u.Email, &u.Username, &u.Name, &u.Role, &u.AvatarURL, &u.IsActive, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// ListUsers returns active users matching the filter, newest first, with the total count.
func (p *Postgres) ListUsers(ctx context.Context, f entities.UserFilter) ([]entities.User, int64, error) {
	conds := []string{"is_active = true"}
	args := []any{}

	if f.Role != "" {
		args = append(args, f.Role)
		conds = append(conds, fmt.Sprintf("role = $%d", len(args)))
	}
	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf("(name ILIKE $%d OR email ILIKE $%d OR username ILIKE $%d)", n, n, n))
	}
	where := strings.Join(conds, " AND ")

	var total int64
	if err := p.db.QueryRow(ctx, "SELECT count(*) FROM users WHERE "+where, args...).Scan(&total); err != nil {
		return nil, 0, classify(err, "count users")
	}

	args = append(args, f.Limit, f.Offset)
	query := fmt.Sprintf("SELECT %s FROM users WHERE %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d",
		userColumns, where, len(args)-1, len(args))

	rows, err := p.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, classify(err, "list users")
	}
	defer rows.Close()

	users := make([]entities.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate users: %w", err)
	}

	return users, total, nil
}

// UserByID fetches an active user.
func (p *Postgres) UserByID(ctx context.Context, id string) (*entities.User, error) {
	u, err := scanUser(p.db.QueryRow(ctx, selectUserQuery, id))
	if err != nil {
		return nil, classify(err, "select user")
	}
	return u, nil
}

// RoleByID fetches just the role of an active user.
func (p *Postgres) RoleByID(ctx context.Context, id string) (entities.Role, error) {
	var role entities.Role
	if err := p.db.QueryRow(ctx, selectRoleQuery, id).Scan(&role); err != nil {
		return "", classify(err, "select role")
	}
	return role, nil
}

// CreateUser inserts a profile row.
func (p *Postgres) CreateUser(ctx context.Context, u entities.User) (*entities.User, error) {
	now := time.Now().UTC()
	created, err := scanUser(p.db.QueryRow(ctx, insertUserQuery,
		u.ID, u.Email, u.Username, u.Name, u.Role, u.AvatarURL, now))
	if err != nil {
		return nil, classify(err, "insert user")
	}

	p.log.Infow("user created", "user_id", created.ID, "role", created.Role)
	return created, nil
}

// UpdateUser applies the non-nil fields of upd and returns the updated row.
func (p *Postgres) UpdateUser(ctx context.Context, id string, upd entities.UserUpdate) (*entities.User, error) {
	sets := []string{}
	args := []any{id}

	set := func(col string, val any) {
		args = append(args, val)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if upd.Name != nil {
		set("name", *upd.Name)
	}
	if upd.Username != nil {
		set("username", *upd.Username)
	}
	if upd.AvatarURL != nil {
		set("avatar_url", *upd.AvatarURL)
	}
	if upd.Role != nil {
		set("role", *upd.Role)
	}
	if upd.IsActive != nil {
		set("is_active", *upd.IsActive)
	}
	set("updated_at", time.Now().UTC())

	query := fmt.Sprintf("UPDATE users SET %s WHERE id = $1 RETURNING %s", strings.Join(sets, ", "), userColumns)
	u, err := scanUser(p.db.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, classify(err, "update user")
	}

	p.log.Infow("user updated", "user_id", id)
	return u, nil
}

// DeactivateUser soft-deletes a user by clearing is_active.
func (p *Postgres) DeactivateUser(ctx context.Context, id string) (*entities.User, error) {
	u, err := scanUser(p.db.QueryRow(ctx, deactivateUserQuery, id, time.Now().UTC()))
	if err != nil {
		return nil, classify(err, "deactivate user")
	}

	p.log.Infow("user deactivated", "user_id", id)
	return u, nil
}
