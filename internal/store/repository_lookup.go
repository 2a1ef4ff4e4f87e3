package store

import (
	"context"
	"fmt"
	"time"

	"github.com/DiogoPalharini/mtfa/internal/logger"
	"github.com/DiogoPalharini/mtfa/internal/utils"
	"github.com/DiogoPalharini/mtfa/models"
)

type lookupRepository struct {
	db     *DB
	ids    *utils.IDGenerator
	logger *logger.Logger
}

func NewLookupRepository(db *DB, log *logger.Logger) LookupRepository {
	return &lookupRepository{
		db:     db,
		ids:    utils.NewIDGenerator(),
		logger: log,
	}
}

func (r *lookupRepository) UpsertValue(ctx context.Context, typ models.LookupType, value string) (bool, error) {
	conn, err := r.db.handle(ctx)
	if err != nil {
		return false, err
	}

	result, err := conn.ExecContext(ctx, upsertLookupValue,
		r.ids.Generate(),
		typ,
		value,
		time.Now().UTC(),
	)
	if err != nil {
		r.logger.Err(err).
			Str("func", "lookupRepository.UpsertValue").
			Str("type", string(typ)).
			Str("value", value).
			Msg("failed to upsert lookup value")
		return false, fmt.Errorf("failed to upsert lookup value (%s/%s): %w", typ, value, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected for lookup upsert: %w", err)
	}

	return affected > 0, nil
}

func (r *lookupRepository) GetValues(ctx context.Context, typ models.LookupType) ([]string, error) {
	conn, err := r.db.handle(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := conn.QueryContext(ctx, getLookupValuesByType, typ)
	if err != nil {
		r.logger.Err(err).
			Str("func", "lookupRepository.GetValues").
			Str("type", string(typ)).
			Msg("failed to query lookup values")
		return nil, fmt.Errorf("failed to query lookup values: %w", err)
	}
	defer rows.Close()

	values := make([]string, 0)
	for rows.Next() {
		var v string
		if scanErr := rows.Scan(&v); scanErr != nil {
			r.logger.Err(scanErr).
				Str("func", "lookupRepository.GetValues").
				Msg("failed to scan lookup value row")
			return nil, fmt.Errorf("failed to scan lookup value row: %w", scanErr)
		}
		values = append(values, v)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("error iterating lookup value rows: %w", rowsErr)
	}

	return values, nil
}

func (r *lookupRepository) GetAllValues(ctx context.Context) (map[models.LookupType][]string, error) {
	conn, err := r.db.handle(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := conn.QueryContext(ctx, getAllLookupValues)
	if err != nil {
		r.logger.Err(err).
			Str("func", "lookupRepository.GetAllValues").
			Msg("failed to query all lookup values")
		return nil, fmt.Errorf("failed to query all lookup values: %w", err)
	}
	defer rows.Close()

	// Every known type resolves to a slice, even when no rows exist for it.
	result := make(map[models.LookupType][]string, len(models.LookupTypes()))
	for _, typ := range models.LookupTypes() {
		result[typ] = []string{}
	}

	for rows.Next() {
		var typ models.LookupType
		var value string
		if scanErr := rows.Scan(&typ, &value); scanErr != nil {
			r.logger.Err(scanErr).
				Str("func", "lookupRepository.GetAllValues").
				Msg("failed to scan lookup value row")
			return nil, fmt.Errorf("failed to scan lookup value row: %w", scanErr)
		}
		if _, known := result[typ]; !known {
			// Rows with an unknown type are ignored rather than surfaced;
			// older app versions wrote pluralized type names.
			continue
		}
		result[typ] = append(result[typ], value)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("error iterating lookup value rows: %w", rowsErr)
	}

	return result, nil
}
