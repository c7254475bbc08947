//go:build integration

package farm_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/fridayblessings411-cell/AgroTour/internal/registry/models"
	"github.com/fridayblessings411-cell/AgroTour/internal/registry/store/farm"
	"github.com/fridayblessings411-cell/AgroTour/pkg/domain"
	"github.com/fridayblessings411-cell/AgroTour/pkg/platform/sentinel"
	"github.com/fridayblessings411-cell/AgroTour/pkg/testutil/containers"
)

type PostgresFarmStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *farm.PostgresStore
}

func TestPostgresFarmStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresFarmStoreSuite))
}

func (s *PostgresFarmStoreSuite) SetupSuite() {
	mgr := containers.GetManager()
	s.postgres = mgr.GetPostgres(s.T())
	s.store = farm.NewPostgres(s.postgres.DB)
}

func (s *PostgresFarmStoreSuite) SetupTest() {
	err := s.postgres.TruncateTables(context.Background(), "farm_updates", "farms")
	s.Require().NoError(err)
}

func testFarm(id domain.FarmID, name string) *models.Farm {
	return models.NewFarm(id, models.Registration{
		Name:                name,
		Location:            "Arusha",
		Size:                12,
		CropTypes:           "coffee",
		Certifications:      "Rainforest Alliance",
		FarmType:            models.FarmTypeOrganic,
		Capacity:            300,
		Climate:             "subtropical",
		Soil:                "clay",
		Currency:            models.CurrencyBTC,
		SustainabilityScore: 95,
		MaxInvestors:        8,
	}, "ST1OWNER", 11)
}

func (s *PostgresFarmStoreSuite) TestInsertRoundTrip() {
	ctx := context.Background()
	want := testFarm(0, "Kilimanjaro Estate")
	s.Require().NoError(s.store.Insert(ctx, want))

	got, err := s.store.FindByID(ctx, 0)
	s.Require().NoError(err)
	s.Equal(want, got)

	exists, err := s.store.ExistsByName(ctx, "Kilimanjaro Estate")
	s.Require().NoError(err)
	s.True(exists)

	count, err := s.store.Count(ctx)
	s.Require().NoError(err)
	s.Equal(uint64(1), count)

	_, err = s.store.FindByID(ctx, 5)
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *PostgresFarmStoreSuite) TestInsertConflicts() {
	ctx := context.Background()
	s.Require().NoError(s.store.Insert(ctx, testFarm(0, "Alpha")))

	s.ErrorIs(s.store.Insert(ctx, testFarm(0, "Beta")), sentinel.ErrAlreadyUsed)
	s.ErrorIs(s.store.Insert(ctx, testFarm(1, "Alpha")), sentinel.ErrAlreadyUsed)
}

// TestConcurrentUniqueNameViolation verifies that concurrent inserts with the
// same name result in exactly one success.
func (s *PostgresFarmStoreSuite) TestConcurrentUniqueNameViolation() {
	ctx := context.Background()
	const goroutines = 20

	var wg sync.WaitGroup
	var successCount, conflictCount atomic.Int32
	for i := range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := s.store.Insert(ctx, testFarm(domain.FarmID(i), "Contested"))
			if err == nil {
				successCount.Add(1)
			} else if errors.Is(err, sentinel.ErrAlreadyUsed) {
				conflictCount.Add(1)
			}
		}()
	}
	wg.Wait()

	s.Equal(int32(1), successCount.Load(), "exactly one insert should succeed")
	s.Equal(int32(goroutines-1), conflictCount.Load())
}

func (s *PostgresFarmStoreSuite) TestRename() {
	ctx := context.Background()
	s.Require().NoError(s.store.Insert(ctx, testFarm(0, "Alpha")))
	s.Require().NoError(s.store.Insert(ctx, testFarm(1, "Beta")))

	_, err := s.store.FindUpdate(ctx, 0)
	s.ErrorIs(err, sentinel.ErrNotFound)

	r := models.Rename{Name: "Gamma", Location: "Moshi", Size: 40, Height: 20, Updater: "ST1OWNER"}
	s.Require().NoError(s.store.Rename(ctx, 0, r))

	f, err := s.store.FindByID(ctx, 0)
	s.Require().NoError(err)
	s.Equal("Gamma", f.Name)
	s.Equal(uint64(20), f.Timestamp)

	u, err := s.store.FindUpdate(ctx, 0)
	s.Require().NoError(err)
	s.Equal(r.Update(), *u)

	s.Run("second rename replaces the update entry", func() {
		r2 := models.Rename{Name: "Gamma", Location: "Tanga", Size: 41, Height: 21, Updater: "ST1OWNER"}
		s.Require().NoError(s.store.Rename(ctx, 0, r2))
		u, err := s.store.FindUpdate(ctx, 0)
		s.Require().NoError(err)
		s.Equal(r2.Update(), *u)
	})

	s.Run("conflict rolls back both writes", func() {
		err := s.store.Rename(ctx, 0, models.Rename{Name: "Beta", Location: "Z", Size: 1, Height: 22, Updater: "ST1OWNER"})
		s.ErrorIs(err, sentinel.ErrAlreadyUsed)

		f, _ := s.store.FindByID(ctx, 0)
		s.Equal("Gamma", f.Name)
		u, _ := s.store.FindUpdate(ctx, 0)
		s.Equal(uint64(21), u.UpdateTimestamp)
	})

	s.Run("unknown id", func() {
		err := s.store.Rename(ctx, 9, models.Rename{Name: "Nope", Location: "Z", Size: 1})
		s.ErrorIs(err, sentinel.ErrNotFound)
	})

	h, err := s.store.LatestHeight(ctx)
	s.Require().NoError(err)
	s.Equal(uint64(21), h)
}
