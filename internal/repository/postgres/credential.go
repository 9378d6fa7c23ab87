package postgres

import (
	"context"

	"github.com/alkharfy/cveeez-dash/internal/entities"
)

const (
	insertCredentialQuery = `
INSERT INTO credentials(id, email, password_hash, created_at)
VALUES ($1, $2, $3, $4)`
	selectCredentialQuery = `
SELECT id, email, password_hash, created_at
FROM credentials
WHERE lower(email) = lower($1)`
	deleteCredentialQuery = `DELETE FROM credentials WHERE id = $1`

	insertSessionQuery = `
INSERT INTO sessions(id, credential_id, created_at, expires_at)
VALUES ($1, $2, $3, $4)`
	selectSessionQuery = `
SELECT id, credential_id, created_at, expires_at
FROM sessions
WHERE id = $1`
	deleteSessionQuery = `DELETE FROM sessions WHERE id = $1`
)

// CreateCredential inserts an authentication record.
func (p *Postgres) CreateCredential(ctx context.Context, cred entities.Credential) error {
	_, err := p.db.Exec(ctx, insertCredentialQuery, cred.ID, cred.Email, cred.PasswordHash, cred.CreatedAt)
	if err != nil {
		return classify(err, "insert credential")
	}
	return nil
}

// CredentialByEmail fetches an authentication record by email, case-insensitively.
func (p *Postgres) CredentialByEmail(ctx context.Context, email string) (*entities.Credential, error) {
	var cred entities.Credential
	err := p.db.QueryRow(ctx, selectCredentialQuery, email).
		Scan(&cred.ID, &cred.Email, &cred.PasswordHash, &cred.CreatedAt)
	if err != nil {
		return nil, classify(err, "select credential")
	}
	return &cred, nil
}

// DeleteCredential removes an authentication record and cascades its sessions.
func (p *Postgres) DeleteCredential(ctx context.Context, id string) error {
	ct, err := p.db.Exec(ctx, deleteCredentialQuery, id)
	if err != nil {
		return classify(err, "delete credential")
	}
	if ct.RowsAffected() == 0 {
		return entities.ErrNotFound
	}
	return nil
}

// CreateSession inserts a login session row.
func (p *Postgres) CreateSession(ctx context.Context, s entities.Session) error {
	_, err := p.db.Exec(ctx, insertSessionQuery, s.ID, s.CredentialID, s.CreatedAt, s.ExpiresAt)
	if err != nil {
		return classify(err, "insert session")
	}
	return nil
}

// SessionByID fetches a session row.
func (p *Postgres) SessionByID(ctx context.Context, id string) (*entities.Session, error) {
	var s entities.Session
	err := p.db.QueryRow(ctx, selectSessionQuery, id).
		Scan(&s.ID, &s.CredentialID, &s.CreatedAt, &s.ExpiresAt)
	if err != nil {
		return nil, classify(err, "select session")
	}
	return &s, nil
}

// DeleteSession removes a session row, terminating the login.
func (p *Postgres) DeleteSession(ctx context.Context, id string) error {
	ct, err := p.db.Exec(ctx, deleteSessionQuery, id)
	if err != nil {
		return classify(err, "delete session")
	}
	if ct.RowsAffected() == 0 {
		return entities.ErrNotFound
	}
	return nil
}
