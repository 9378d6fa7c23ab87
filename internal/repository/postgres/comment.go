package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/alkharfy/cveeez-dash/internal/entities"
)

const (
	commentSelect = `
SELECT c.id, c.task_id, c.user_id, c.content, c.created_at,
       u.id, u.name, u.email, u.avatar_url
FROM comments c
LEFT JOIN users u ON u.id = c.user_id`

	selectTaskCommentsQuery = commentSelect + `
WHERE c.task_id = $1
ORDER BY c.created_at ASC`

	insertCommentQuery = `
INSERT INTO comments(id, task_id, user_id, content, created_at)
VALUES ($1, $2, $3, $4, $5)`
)

func scanComment(row interface{ Scan(...any) error }) (*entities.Comment, error) {
	var (
		c                  entities.Comment
		uID, uName, uEmail *string
		uAvatar            *string
	)
	err := row.Scan(&c.ID, &c.TaskID, &c.UserID, &c.Content, &c.CreatedAt, &uID, &uName, &uEmail, &uAvatar)
	if err != nil {
		return nil, err
	}
	if uID != nil {
		c.User = &entities.CommentUser{ID: *uID, Name: *uName, Email: *uEmail, AvatarURL: uAvatar}
	}
	return &c, nil
}

// CommentsByTask returns a task's comments oldest first with authors expanded.
func (p *Postgres) CommentsByTask(ctx context.Context, taskID string) ([]entities.Comment, error) {
	rows, err := p.db.Query(ctx, selectTaskCommentsQuery, taskID)
	if err != nil {
		return nil, classify(err, "select comments")
	}
	defer rows.Close()

	comments := make([]entities.Comment, 0)
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		comments = append(comments, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate comments: %w", err)
	}

	return comments, nil
}

// CreateComment inserts a comment and returns it with its author expanded.
func (p *Postgres) CreateComment(ctx context.Context, c entities.Comment) (*entities.Comment, error) {
	if _, err := p.db.Exec(ctx, insertCommentQuery, c.ID, c.TaskID, c.UserID, c.Content, time.Now().UTC()); err != nil {
		return nil, classify(err, "insert comment")
	}

	created, err := scanComment(p.db.QueryRow(ctx, commentSelect+" WHERE c.id = $1", c.ID))
	if err != nil {
		return nil, classify(err, "select comment")
	}

	p.log.Infow("comment created", "comment_id", c.ID, "task_id", c.TaskID)
	return created, nil
}
