package settings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fridayblessings411-cell/AgroTour/internal/registry/models"
	"github.com/fridayblessings411-cell/AgroTour/pkg/domain"
	"github.com/fridayblessings411-cell/AgroTour/pkg/platform/sentinel"
)

// PostgresStore keeps settings in the single-row registry_settings table.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Load(ctx context.Context) (models.Settings, error) {
	var (
		fee      int64
		contract string
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT registration_fee, authority_contract
		FROM registry_settings
		WHERE singleton
	`).Scan(&fee, &contract)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Settings{}, sentinel.ErrNotFound
		}
		return models.Settings{}, fmt.Errorf("load registry settings: %w", err)
	}
	return models.Settings{
		RegistrationFee:   uint64(fee), //nolint:gosec // written from uint64
		AuthorityContract: domain.Principal(contract),
	}, nil
}

func (s *PostgresStore) Save(ctx context.Context, settings models.Settings) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO registry_settings (singleton, registration_fee, authority_contract)
		VALUES (TRUE, $1, $2)
		ON CONFLICT (singleton) DO UPDATE SET
			registration_fee = EXCLUDED.registration_fee,
			authority_contract = EXCLUDED.authority_contract
	`, int64(settings.RegistrationFee), settings.AuthorityContract.String()) //nolint:gosec // fees fit BIGINT
	if err != nil {
		return fmt.Errorf("save registry settings: %w", err)
	}
	return nil
}
