//go:build integration

package settings_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/fridayblessings411-cell/AgroTour/internal/registry/models"
	"github.com/fridayblessings411-cell/AgroTour/internal/registry/store/settings"
	"github.com/fridayblessings411-cell/AgroTour/pkg/platform/sentinel"
	"github.com/fridayblessings411-cell/AgroTour/pkg/testutil/containers"
)

type PostgresSettingsStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *settings.PostgresStore
}

func TestPostgresSettingsStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresSettingsStoreSuite))
}

func (s *PostgresSettingsStoreSuite) SetupSuite() {
	s.postgres = containers.GetManager().GetPostgres(s.T())
	s.store = settings.NewPostgres(s.postgres.DB)
}

func (s *PostgresSettingsStoreSuite) SetupTest() {
	s.Require().NoError(s.postgres.TruncateTables(context.Background(), "registry_settings"))
}

func (s *PostgresSettingsStoreSuite) TestLoadBeforeSave() {
	_, err := s.store.Load(context.Background())
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *PostgresSettingsStoreSuite) TestSaveIsAnUpsert() {
	ctx := context.Background()
	s.Require().NoError(s.store.Save(ctx, models.Settings{RegistrationFee: 1000}))
	s.Require().NoError(s.store.Save(ctx, models.Settings{RegistrationFee: 1000, AuthorityContract: "ST1AUTH"}))

	got, err := s.store.Load(ctx)
	s.Require().NoError(err)
	s.Equal(models.Settings{RegistrationFee: 1000, AuthorityContract: "ST1AUTH"}, got)

	var rows int
	s.Require().NoError(s.postgres.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM registry_settings`).Scan(&rows))
	s.Equal(1, rows)
}
