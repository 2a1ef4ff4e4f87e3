package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/DiogoPalharini/mtfa/internal/logger"
	"github.com/DiogoPalharini/mtfa/internal/utils"
	"github.com/DiogoPalharini/mtfa/models"
)

type credentialRepository struct {
	db     *DB
	ids    *utils.IDGenerator
	logger *logger.Logger
}

func NewCredentialRepository(db *DB, log *logger.Logger) CredentialRepository {
	return &credentialRepository{
		db:     db,
		ids:    utils.NewIDGenerator(),
		logger: log,
	}
}

func (r *credentialRepository) UpsertCredential(ctx context.Context, email, passwordHash, sessionID string) error {
	conn, err := r.db.handle(ctx)
	if err != nil {
		return err
	}

	now := time.Now().UTC()

	_, err = conn.ExecContext(ctx, upsertCredential,
		r.ids.Generate(),
		email,
		passwordHash,
		sessionID,
		now,
		now,
	)
	if err != nil {
		r.logger.Err(err).
			Str("func", "credentialRepository.UpsertCredential").
			Str("email", email).
			Msg("failed to upsert cached credential")
		return fmt.Errorf("failed to upsert cached credential: %w", err)
	}

	r.logger.Debug().
		Str("func", "credentialRepository.UpsertCredential").
		Str("email", email).
		Bool("has_session_id", sessionID != "").
		Msg("cached credential saved")

	return nil
}

func (r *credentialRepository) GetCredential(ctx context.Context, email string) (models.CachedCredential, error) {
	conn, err := r.db.handle(ctx)
	if err != nil {
		return models.CachedCredential{}, err
	}

	return r.scanCredential(conn.QueryRowContext(ctx, getCredentialByEmail, email))
}

func (r *credentialRepository) GetMostRecentCredential(ctx context.Context) (models.CachedCredential, error) {
	conn, err := r.db.handle(ctx)
	if err != nil {
		return models.CachedCredential{}, err
	}

	return r.scanCredential(conn.QueryRowContext(ctx, getMostRecentCredential))
}

func (r *credentialRepository) scanCredential(row *sql.Row) (models.CachedCredential, error) {
	var cred models.CachedCredential

	err := row.Scan(
		&cred.ID,
		&cred.Email,
		&cred.PasswordHash,
		&cred.SessionID,
		&cred.LastLogin,
		&cred.IsValidated,
		&cred.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.CachedCredential{}, ErrCredentialNotFound
	}
	if err != nil {
		r.logger.Err(err).
			Str("func", "credentialRepository.scanCredential").
			Msg("failed to scan cached credential row")
		return models.CachedCredential{}, fmt.Errorf("failed to scan cached credential row: %w", err)
	}

	return cred, nil
}

func (r *credentialRepository) HasAnyCredential(ctx context.Context) (bool, error) {
	conn, err := r.db.handle(ctx)
	if err != nil {
		return false, err
	}

	var count int
	if err := conn.QueryRowContext(ctx, countCredentials).Scan(&count); err != nil {
		r.logger.Err(err).
			Str("func", "credentialRepository.HasAnyCredential").
			Msg("failed to count cached credentials")
		return false, fmt.Errorf("failed to count cached credentials: %w", err)
	}

	return count > 0, nil
}

func (r *credentialRepository) ClearCredentials(ctx context.Context) error {
	conn, err := r.db.handle(ctx)
	if err != nil {
		return err
	}

	_, err = conn.ExecContext(ctx, clearAllCredentials)
	if err != nil {
		r.logger.Err(err).
			Str("func", "credentialRepository.ClearCredentials").
			Msg("failed to clear cached credentials")
		return fmt.Errorf("failed to clear cached credentials: %w", err)
	}

	r.logger.Debug().
		Str("func", "credentialRepository.ClearCredentials").
		Msg("cached credentials cleared")

	return nil
}

func (r *credentialRepository) UpdateSessionID(ctx context.Context, email, sessionID string) error {
	conn, err := r.db.handle(ctx)
	if err != nil {
		return err
	}

	_, err = conn.ExecContext(ctx, updateCredentialSession, sessionID, time.Now().UTC(), email)
	if err != nil {
		r.logger.Err(err).
			Str("func", "credentialRepository.UpdateSessionID").
			Str("email", email).
			Msg("failed to update credential session id")
		return fmt.Errorf("failed to update credential session id: %w", err)
	}

	return nil
}
