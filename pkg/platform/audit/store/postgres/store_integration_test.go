//go:build integration

package postgres_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	audit "github.com/fridayblessings411-cell/AgroTour/pkg/platform/audit"
	"github.com/fridayblessings411-cell/AgroTour/pkg/platform/audit/store/postgres"
	txcontext "github.com/fridayblessings411-cell/AgroTour/pkg/platform/tx"
	"github.com/fridayblessings411-cell/AgroTour/pkg/testutil/containers"
)

type PostgresAuditStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *postgres.Store
}

func TestPostgresAuditStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresAuditStoreSuite))
}

func (s *PostgresAuditStoreSuite) SetupSuite() {
	s.postgres = containers.GetManager().GetPostgres(s.T())
	s.store = postgres.New(s.postgres.DB)
}

func (s *PostgresAuditStoreSuite) SetupTest() {
	s.Require().NoError(s.postgres.TruncateTables(context.Background(), "audit_events"))
}

func (s *PostgresAuditStoreSuite) event(subject string, height uint64) audit.Event {
	return audit.Event{
		Category:  audit.CategoryOperations,
		Timestamp: time.Now().UTC().Truncate(time.Microsecond),
		Action:    string(audit.EventFarmUpdated),
		Subject:   subject,
		ActorID:   "ST1FARMER",
		Height:    height,
	}
}

func (s *PostgresAuditStoreSuite) TestListBySubjectKeepsAppendOrder() {
	ctx := context.Background()
	s.Require().NoError(s.store.Append(ctx, s.event("1", 1)))
	s.Require().NoError(s.store.Append(ctx, s.event("2", 2)))
	s.Require().NoError(s.store.Append(ctx, s.event("1", 3)))

	events, err := s.store.ListBySubject(ctx, "1")
	s.Require().NoError(err)
	s.Require().Len(events, 2)
	s.Equal(uint64(1), events[0].Height)
	s.Equal(uint64(3), events[1].Height)
}

func (s *PostgresAuditStoreSuite) TestListRecentReturnsNewestOldestFirst() {
	ctx := context.Background()
	for h := uint64(1); h <= 5; h++ {
		s.Require().NoError(s.store.Append(ctx, s.event("1", h)))
	}

	events, err := s.store.ListRecent(ctx, 2)
	s.Require().NoError(err)
	s.Require().Len(events, 2)
	s.Equal(uint64(4), events[0].Height)
	s.Equal(uint64(5), events[1].Height)
}

func (s *PostgresAuditStoreSuite) TestAppendJoinsRolledBackTransaction() {
	ctx := context.Background()
	errAbort := errors.New("abort")
	err := txcontext.RunInTx(ctx, s.postgres.DB, func(ctx context.Context) error {
		s.Require().NoError(s.store.Append(ctx, s.event("9", 1)))
		return errAbort
	})
	s.Require().ErrorIs(err, errAbort)

	events, err := s.store.ListBySubject(ctx, "9")
	s.Require().NoError(err)
	s.Empty(events)
}
