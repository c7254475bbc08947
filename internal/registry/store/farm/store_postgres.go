package farm

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/fridayblessings411-cell/AgroTour/internal/registry/models"
	"github.com/fridayblessings411-cell/AgroTour/pkg/domain"
	"github.com/fridayblessings411-cell/AgroTour/pkg/platform/sentinel"
	txcontext "github.com/fridayblessings411-cell/AgroTour/pkg/platform/tx"
)

const uniqueViolation = "23505"

// PostgresStore persists farms in PostgreSQL. The name index is the UNIQUE
// constraint on farms.name; renames run in one transaction.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (s *PostgresStore) conn(ctx context.Context) dbtx {
	if tx, ok := txcontext.From(ctx); ok {
		return tx
	}
	return s.db
}

// BIGINT columns store the uint64 bit pattern. The conversion round-trips
// losslessly; size, capacity and max investors have no upper bound, so a
// value above MaxInt64 reads back unchanged but is negative in SQL.
func toInt(v uint64) int64 {
	return int64(v) //nolint:gosec // see above
}

func toUint(v int64) uint64 {
	return uint64(v) //nolint:gosec // see above
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

func (s *PostgresStore) Insert(ctx context.Context, f *models.Farm) error {
	query := `
		INSERT INTO farms (
			id, name, location, size, crop_types, certifications, farm_type,
			capacity, climate, soil, currency, sustainability_score,
			max_investors, owner, height, status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`
	_, err := s.conn(ctx).ExecContext(ctx, query,
		toInt(uint64(f.ID)),
		f.Name,
		f.Location,
		toInt(f.Size),
		f.CropTypes,
		f.Certifications,
		string(f.FarmType),
		toInt(f.Capacity),
		f.Climate,
		f.Soil,
		string(f.Currency),
		toInt(f.SustainabilityScore),
		toInt(f.MaxInvestors),
		f.Owner.String(),
		toInt(f.Timestamp),
		f.Status,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert farm %s: %w", f.ID, sentinel.ErrAlreadyUsed)
		}
		return fmt.Errorf("insert farm %s: %w", f.ID, err)
	}
	return nil
}

func (s *PostgresStore) FindByID(ctx context.Context, id domain.FarmID) (*models.Farm, error) {
	query := `
		SELECT name, location, size, crop_types, certifications, farm_type,
			capacity, climate, soil, currency, sustainability_score,
			max_investors, owner, height, status
		FROM farms
		WHERE id = $1
	`
	var (
		f                                           models.Farm
		size, capacity, score, maxInvestors, height int64
		farmType, currency, owner                   string
	)
	row := s.conn(ctx).QueryRowContext(ctx, query, toInt(uint64(id)))
	err := row.Scan(&f.Name, &f.Location, &size, &f.CropTypes, &f.Certifications, &farmType,
		&capacity, &f.Climate, &f.Soil, &currency, &score, &maxInvestors, &owner, &height, &f.Status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find farm %s: %w", id, err)
	}

	f.Size = toUint(size)
	f.Capacity = toUint(capacity)
	f.SustainabilityScore = toUint(score)
	f.MaxInvestors = toUint(maxInvestors)
	f.Timestamp = toUint(height)
	f.ID = id
	f.FarmType = models.FarmType(farmType)
	f.Currency = models.Currency(currency)
	f.Owner = domain.Principal(owner)
	return &f, nil
}

func (s *PostgresStore) FindIDByName(ctx context.Context, name string) (domain.FarmID, error) {
	var id int64
	err := s.conn(ctx).QueryRowContext(ctx, `SELECT id FROM farms WHERE name = $1`, name).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, sentinel.ErrNotFound
		}
		return 0, fmt.Errorf("find farm by name: %w", err)
	}
	return domain.FarmID(toUint(id)), nil
}

func (s *PostgresStore) ExistsByName(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := s.conn(ctx).QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM farms WHERE name = $1)`, name).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check farm name: %w", err)
	}
	return exists, nil
}

func (s *PostgresStore) FindUpdate(ctx context.Context, id domain.FarmID) (*models.FarmUpdate, error) {
	query := `
		SELECT name, location, size, height, updater
		FROM farm_updates
		WHERE farm_id = $1
	`
	var (
		u            models.FarmUpdate
		size, height int64
		updater      string
	)
	row := s.conn(ctx).QueryRowContext(ctx, query, toInt(uint64(id)))
	err := row.Scan(&u.UpdateName, &u.UpdateLocation, &size, &height, &updater)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find farm update %s: %w", id, err)
	}
	u.UpdateSize = toUint(size)
	u.UpdateTimestamp = toUint(height)
	u.Updater = domain.Principal(updater)
	return &u, nil
}

// Rename updates the farm row and upserts its update entry in one
// transaction. The UNIQUE constraint on name rejects a rename onto another
// farm's name and rolls back both writes.
func (s *PostgresStore) Rename(ctx context.Context, id domain.FarmID, r models.Rename) error {
	return txcontext.RunInTx(ctx, s.db, func(ctx context.Context) error {
		conn := s.conn(ctx)
		res, err := conn.ExecContext(ctx, `
			UPDATE farms SET name = $2, location = $3, size = $4, height = $5
			WHERE id = $1
		`, toInt(uint64(id)), r.Name, r.Location, toInt(r.Size), toInt(r.Height))
		if err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("rename farm %s: %w", id, sentinel.ErrAlreadyUsed)
			}
			return fmt.Errorf("rename farm %s: %w", id, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("rename farm %s: %w", id, err)
		}
		if n == 0 {
			return sentinel.ErrNotFound
		}

		_, err = conn.ExecContext(ctx, `
			INSERT INTO farm_updates (farm_id, name, location, size, height, updater)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (farm_id) DO UPDATE SET
				name = EXCLUDED.name,
				location = EXCLUDED.location,
				size = EXCLUDED.size,
				height = EXCLUDED.height,
				updater = EXCLUDED.updater
		`, toInt(uint64(id)), r.Name, r.Location, toInt(r.Size), toInt(r.Height), r.Updater.String())
		if err != nil {
			return fmt.Errorf("record farm update %s: %w", id, err)
		}
		return nil
	})
}

// Count returns one past the largest assigned id.
func (s *PostgresStore) Count(ctx context.Context) (uint64, error) {
	var n int64
	err := s.conn(ctx).QueryRowContext(ctx, `SELECT COALESCE(MAX(id) + 1, 0) FROM farms`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count farms: %w", err)
	}
	return toUint(n), nil
}

// LatestHeight returns the largest logical height recorded on any farm or update.
func (s *PostgresStore) LatestHeight(ctx context.Context) (uint64, error) {
	var h int64
	err := s.conn(ctx).QueryRowContext(ctx, `
		SELECT GREATEST(
			COALESCE((SELECT MAX(height) FROM farms), 0),
			COALESCE((SELECT MAX(height) FROM farm_updates), 0)
		)
	`).Scan(&h)
	if err != nil {
		return 0, fmt.Errorf("latest farm height: %w", err)
	}
	return toUint(h), nil
}
