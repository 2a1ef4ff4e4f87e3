package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/DiogoPalharini/mtfa/internal/logger"
	"github.com/DiogoPalharini/mtfa/internal/utils"
	"github.com/DiogoPalharini/mtfa/models"
)

type loadRepository struct {
	db     *DB
	ids    *utils.IDGenerator
	logger *logger.Logger
}

func NewLoadRepository(db *DB, log *logger.Logger) LoadRepository {
	return &loadRepository{
		db:     db,
		ids:    utils.NewIDGenerator(),
		logger: log,
	}
}

func (r *loadRepository) SaveLoad(ctx context.Context, form models.LoadForm) (string, error) {
	conn, err := r.db.handle(ctx)
	if err != nil {
		return "", err
	}

	id := r.ids.Generate()
	now := time.Now().UTC()

	_, err = conn.ExecContext(ctx, insertLoad,
		id,
		form.RegDate,
		form.RegTime,
		form.Truck,
		form.OtherTruck,
		form.Farm,
		form.OtherFarm,
		form.Field,
		form.OtherField,
		form.Variety,
		form.OtherVariety,
		form.Driver,
		form.OtherDriver,
		form.Destination,
		form.OtherDestination,
		form.Note,
		form.Agreement,
		form.OtherAgreement,
		models.LoadStatusPending,
		now,
	)
	if err != nil {
		r.logger.Err(err).
			Str("func", "loadRepository.SaveLoad").
			Str("id", id).
			Msg("failed to insert load record")
		return "", fmt.Errorf("failed to save load record: %w", err)
	}

	r.logger.Debug().
		Str("func", "loadRepository.SaveLoad").
		Str("id", id).
		Str("truck", form.Truck).
		Msg("load record saved locally")

	return id, nil
}

func (r *loadRepository) GetAllLoads(ctx context.Context) ([]models.LoadRecord, error) {
	conn, err := r.db.handle(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := conn.QueryContext(ctx, getAllLoads)
	if err != nil {
		r.logger.Err(err).
			Str("func", "loadRepository.GetAllLoads").
			Msg("failed to query load records")
		return nil, fmt.Errorf("failed to query load records: %w", err)
	}
	defer rows.Close()

	return r.scanLoads(rows)
}

func (r *loadRepository) GetPendingLoads(ctx context.Context) ([]models.LoadRecord, error) {
	conn, err := r.db.handle(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := conn.QueryContext(ctx, getPendingLoads, models.LoadStatusPending)
	if err != nil {
		r.logger.Err(err).
			Str("func", "loadRepository.GetPendingLoads").
			Msg("failed to query pending load records")
		return nil, fmt.Errorf("failed to query pending load records: %w", err)
	}
	defer rows.Close()

	return r.scanLoads(rows)
}

func (r *loadRepository) scanLoads(rows *sql.Rows) ([]models.LoadRecord, error) {
	var items []models.LoadRecord

	for rows.Next() {
		var item models.LoadRecord
		var syncedAt sql.NullTime

		scanErr := rows.Scan(
			&item.ID,
			&item.RegDate,
			&item.RegTime,
			&item.Truck,
			&item.OtherTruck,
			&item.Farm,
			&item.OtherFarm,
			&item.Field,
			&item.OtherField,
			&item.Variety,
			&item.OtherVariety,
			&item.Driver,
			&item.OtherDriver,
			&item.Destination,
			&item.OtherDestination,
			&item.Note,
			&item.Agreement,
			&item.OtherAgreement,
			&item.Status,
			&item.SyncAttempts,
			&item.CreatedAt,
			&syncedAt,
		)
		if scanErr != nil {
			r.logger.Err(scanErr).
				Str("func", "loadRepository.scanLoads").
				Msg("failed to scan load record row")
			return nil, fmt.Errorf("failed to scan load record row: %w", scanErr)
		}

		if syncedAt.Valid {
			t := syncedAt.Time
			item.SyncedAt = &t
		}

		items = append(items, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		r.logger.Err(rowsErr).
			Str("func", "loadRepository.scanLoads").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating load record rows: %w", rowsErr)
	}

	return items, nil
}

func (r *loadRepository) MarkSynced(ctx context.Context, id string, syncedAt time.Time) error {
	conn, err := r.db.handle(ctx)
	if err != nil {
		return err
	}

	result, err := conn.ExecContext(ctx, markLoadSynced,
		models.LoadStatusSynced,
		syncedAt,
		id,
		models.LoadStatusPending,
	)
	if err != nil {
		r.logger.Err(err).
			Str("func", "loadRepository.MarkSynced").
			Str("id", id).
			Msg("failed to mark load record as synced")
		return fmt.Errorf("failed to mark load record as synced (id=%s): %w", id, err)
	}

	// Zero affected rows means the id does not exist or the record was
	// already synced; both are no-ops by contract.
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		r.logger.Debug().
			Str("func", "loadRepository.MarkSynced").
			Str("id", id).
			Msg("mark synced affected no rows")
	}

	return nil
}

func (r *loadRepository) IncrementSyncAttempts(ctx context.Context, id string) error {
	conn, err := r.db.handle(ctx)
	if err != nil {
		return err
	}

	_, err = conn.ExecContext(ctx, incrementLoadSyncAttempts, id)
	if err != nil {
		r.logger.Err(err).
			Str("func", "loadRepository.IncrementSyncAttempts").
			Str("id", id).
			Msg("failed to increment sync attempts")
		return fmt.Errorf("failed to increment sync attempts (id=%s): %w", id, err)
	}

	return nil
}

func (r *loadRepository) DeleteLoad(ctx context.Context, id string) error {
	conn, err := r.db.handle(ctx)
	if err != nil {
		return err
	}

	_, err = conn.ExecContext(ctx, deleteLoadByID, id)
	if err != nil {
		r.logger.Err(err).
			Str("func", "loadRepository.DeleteLoad").
			Str("id", id).
			Msg("failed to delete load record")
		return fmt.Errorf("failed to delete load record (id=%s): %w", id, err)
	}

	return nil
}

func (r *loadRepository) CleanupOldLoads(ctx context.Context, cutoff time.Time) error {
	conn, err := r.db.handle(ctx)
	if err != nil {
		return err
	}

	_, err = conn.ExecContext(ctx, cleanupSyncedLoads, cutoff, models.LoadStatusSynced)
	if err != nil {
		r.logger.Err(err).
			Str("func", "loadRepository.CleanupOldLoads").
			Time("cutoff", cutoff).
			Msg("failed to clean up old load records")
		return fmt.Errorf("failed to clean up old load records: %w", err)
	}

	return nil
}

func (r *loadRepository) Stats(ctx context.Context) (models.LoadStats, error) {
	conn, err := r.db.handle(ctx)
	if err != nil {
		return models.LoadStats{}, err
	}

	var stats models.LoadStats
	row := conn.QueryRowContext(ctx, countLoadStats)
	if err := row.Scan(&stats.Total, &stats.Pending, &stats.Synced); err != nil {
		r.logger.Err(err).
			Str("func", "loadRepository.Stats").
			Msg("failed to count load records")
		return models.LoadStats{}, fmt.Errorf("failed to count load records: %w", err)
	}

	return stats, nil
}
