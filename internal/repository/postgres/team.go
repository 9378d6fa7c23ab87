package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alkharfy/cveeez-dash/internal/entities"
)

const (
	teamSelect = `
SELECT t.id, t.name, t.description, t.leader_id, t.created_at, t.updated_at,
       l.id, l.name, l.email
FROM teams t
LEFT JOIN users l ON l.id = t.leader_id`

	insertTeamQuery = `
INSERT INTO teams(id, name, description, leader_id, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $5)`
	deleteTeamQuery = `DELETE FROM teams WHERE id = $1`

	selectMembersQuery = `
SELECT tm.team_id, tm.id, tm.user_id, tm.joined_at, u.id, u.name, u.email, u.role
FROM team_members tm
JOIN users u ON u.id = tm.user_id
WHERE tm.team_id = ANY($1::uuid[])
ORDER BY tm.joined_at`

	insertMemberQuery = `
INSERT INTO team_members(id, team_id, user_id, joined_at)
VALUES ($1, $2, $3, $4)
RETURNING id, team_id, user_id, joined_at`
	selectMemberUserQuery = `SELECT id, name, email, role FROM users WHERE id = $1`
	deleteMemberQuery     = `DELETE FROM team_members WHERE team_id = $1 AND user_id = $2`
)

func scanTeam(row interface{ Scan(...any) error }) (*entities.Team, error) {
	var (
		t                                 entities.Team
		leaderID, leaderName, leaderEmail *string
	)
	err := row.Scan(&t.ID, &t.Name, &t.Description, &t.LeaderID, &t.CreatedAt, &t.UpdatedAt,
		&leaderID, &leaderName, &leaderEmail)
	if err != nil {
		return nil, err
	}
	if leaderID != nil {
		t.Leader = &entities.UserRef{ID: *leaderID, Name: *leaderName, Email: *leaderEmail}
	}
	t.Members = make([]entities.TeamMember, 0)
	return &t, nil
}

// loadMembers attaches membership rows to the given teams in one query.
func (p *Postgres) loadMembers(ctx context.Context, teams map[string]*entities.Team) error {
	if len(teams) == 0 {
		return nil
	}
	ids := make([]string, 0, len(teams))
	for id := range teams {
		ids = append(ids, id)
	}

	rows, err := p.db.Query(ctx, selectMembersQuery, ids)
	if err != nil {
		return fmt.Errorf("select members: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			teamID string
			m      entities.TeamMember
			u      entities.MemberUser
		)
		if err := rows.Scan(&teamID, &m.ID, &m.UserID, &m.JoinedAt, &u.ID, &u.Name, &u.Email, &u.Role); err != nil {
			return fmt.Errorf("scan member: %w", err)
		}
		m.TeamID = teamID
		m.User = &u
		if t, ok := teams[teamID]; ok {
			t.Members = append(t.Members, m)
		}
	}
	return rows.Err()
}

// ListTeams returns teams matching the filter with leader and members expanded.
func (p *Postgres) ListTeams(ctx context.Context, f entities.TeamFilter) ([]entities.Team, int64, error) {
	conds := []string{"true"}
	args := []any{}
	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf("(t.name ILIKE $%d OR t.description ILIKE $%d)", n, n))
	}
	where := strings.Join(conds, " AND ")

	var total int64
	if err := p.db.QueryRow(ctx, "SELECT count(*) FROM teams t WHERE "+where, args...).Scan(&total); err != nil {
		return nil, 0, classify(err, "count teams")
	}

	args = append(args, f.Limit, f.Offset)
	query := fmt.Sprintf("%s WHERE %s ORDER BY t.created_at DESC LIMIT $%d OFFSET $%d",
		teamSelect, where, len(args)-1, len(args))

	rows, err := p.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, classify(err, "list teams")
	}
	defer rows.Close()

	teams := make([]entities.Team, 0)
	for rows.Next() {
		t, err := scanTeam(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan team: %w", err)
		}
		teams = append(teams, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate teams: %w", err)
	}

	byID := make(map[string]*entities.Team, len(teams))
	for i := range teams {
		byID[teams[i].ID] = &teams[i]
	}
	if err := p.loadMembers(ctx, byID); err != nil {
		return nil, 0, err
	}

	return teams, total, nil
}

// TeamByID fetches a team with leader and members expanded.
func (p *Postgres) TeamByID(ctx context.Context, id string) (*entities.Team, error) {
	t, err := scanTeam(p.db.QueryRow(ctx, teamSelect+" WHERE t.id = $1", id))
	if err != nil {
		return nil, classify(err, "select team")
	}
	if err := p.loadMembers(ctx, map[string]*entities.Team{t.ID: t}); err != nil {
		return nil, err
	}
	return t, nil
}

// CreateTeam inserts a team and returns it expanded.
func (p *Postgres) CreateTeam(ctx context.Context, t entities.Team) (*entities.Team, error) {
	now := time.Now().UTC()
	if _, err := p.db.Exec(ctx, insertTeamQuery, t.ID, t.Name, t.Description, t.LeaderID, now); err != nil {
		return nil, classify(err, "insert team")
	}

	p.log.Infow("team created", "team_id", t.ID, "name", t.Name)
	return p.TeamByID(ctx, t.ID)
}

// UpdateTeam applies the non-nil fields of upd and returns the updated team.
func (p *Postgres) UpdateTeam(ctx context.Context, id string, upd entities.TeamUpdate) (*entities.Team, error) {
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
	if upd.LeaderID != nil {
		set("leader_id", *upd.LeaderID)
	}
	set("updated_at", time.Now().UTC())

	query := fmt.Sprintf("UPDATE teams SET %s WHERE id = $1 RETURNING id", strings.Join(sets, ", "))
	var updated string
	if err := p.db.QueryRow(ctx, query, args...).Scan(&updated); err != nil {
		return nil, classify(err, "update team")
	}

	p.log.Infow("team updated", "team_id", id)
	return p.TeamByID(ctx, id)
}

// DeleteTeam hard-deletes a team; memberships cascade.
func (p *Postgres) DeleteTeam(ctx context.Context, id string) error {
	ct, err := p.db.Exec(ctx, deleteTeamQuery, id)
	if err != nil {
		return classify(err, "delete team")
	}
	if ct.RowsAffected() == 0 {
		return entities.ErrNotFound
	}

	p.log.Infow("team deleted", "team_id", id)
	return nil
}

// AddTeamMember inserts a membership row and returns it with the user expanded.
func (p *Postgres) AddTeamMember(ctx context.Context, teamID, userID string) (*entities.TeamMember, error) {
	var m entities.TeamMember
	err := p.db.QueryRow(ctx, insertMemberQuery, newID(), teamID, userID, time.Now().UTC()).
		Scan(&m.ID, &m.TeamID, &m.UserID, &m.JoinedAt)
	if err != nil {
		return nil, classify(err, "insert member")
	}

	var u entities.MemberUser
	if err := p.db.QueryRow(ctx, selectMemberUserQuery, userID).Scan(&u.ID, &u.Name, &u.Email, &u.Role); err != nil {
		return nil, classify(err, "select member user")
	}
	m.User = &u

	p.log.Infow("team member added", "team_id", teamID, "user_id", userID)
	return &m, nil
}

// RemoveTeamMember deletes a membership row.
func (p *Postgres) RemoveTeamMember(ctx context.Context, teamID, userID string) error {
	ct, err := p.db.Exec(ctx, deleteMemberQuery, teamID, userID)
	if err != nil {
		return classify(err, "delete member")
	}
	if ct.RowsAffected() == 0 {
		return entities.ErrNotFound
	}

	p.log.Infow("team member removed", "team_id", teamID, "user_id", userID)
	return nil
}
