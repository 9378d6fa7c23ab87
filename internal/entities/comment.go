package entities

import "time"

// Comment is a user note attached to a task.
type Comment struct {
	ID        string
	TaskID    string
	UserID    string
	Content   string
	User      *CommentUser
	CreatedAt time.Time
}

// CommentUser is the author projection carried on comments.
type CommentUser struct {
	ID        string
	Name      string
	Email     string
	AvatarURL *string
}
