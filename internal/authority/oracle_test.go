package authority_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/fridayblessings411-cell/AgroTour/internal/authority"
	"github.com/fridayblessings411-cell/AgroTour/internal/authority/mocks"
	"github.com/fridayblessings411-cell/AgroTour/pkg/domain"
	"github.com/fridayblessings411-cell/AgroTour/pkg/platform/circuit"
)

const (
	verified   = domain.Principal("ST1AUTHORITY")
	unverified = domain.Principal("ST2STRANGER")
)

type OracleSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	primary *mocks.MockOracle
	ctx     context.Context
}

func TestOracleSuite(t *testing.T) {
	suite.Run(t, new(OracleSuite))
}

func (s *OracleSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.primary = mocks.NewMockOracle(s.ctrl)
	s.ctx = context.Background()
}

func (s *OracleSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OracleSuite) TestStaticOracle() {
	o := authority.NewStaticOracle(verified)

	ok, err := o.IsVerifiedAuthority(s.ctx, verified)
	s.Require().NoError(err)
	s.True(ok)

	ok, err = o.IsVerifiedAuthority(s.ctx, unverified)
	s.Require().NoError(err)
	s.False(ok)

	s.Run("grant and revoke", func() {
		o.Grant(unverified)
		ok, _ := o.IsVerifiedAuthority(s.ctx, unverified)
		s.True(ok)

		o.Revoke(unverified)
		ok, _ = o.IsVerifiedAuthority(s.ctx, unverified)
		s.False(ok)
	})
}

func (s *OracleSuite) TestCachedOracle() {
	s.Run("caches positive and negative answers", func() {
		s.primary.EXPECT().IsVerifiedAuthority(gomock.Any(), verified).Return(true, nil).Times(1)
		s.primary.EXPECT().IsVerifiedAuthority(gomock.Any(), unverified).Return(false, nil).Times(1)

		o := authority.NewCachedOracle(s.primary, time.Minute)
		for range 3 {
			ok, err := o.IsVerifiedAuthority(s.ctx, verified)
			s.Require().NoError(err)
			s.True(ok)

			ok, err = o.IsVerifiedAuthority(s.ctx, unverified)
			s.Require().NoError(err)
			s.False(ok)
		}
	})

	s.Run("errors are not cached", func() {
		gomock.InOrder(
			s.primary.EXPECT().IsVerifiedAuthority(gomock.Any(), verified).Return(false, errors.New("down")),
			s.primary.EXPECT().IsVerifiedAuthority(gomock.Any(), verified).Return(true, nil),
		)

		o := authority.NewCachedOracle(s.primary, time.Minute)
		_, err := o.IsVerifiedAuthority(s.ctx, verified)
		s.Require().Error(err)

		ok, err := o.IsVerifiedAuthority(s.ctx, verified)
		s.Require().NoError(err)
		s.True(ok)
	})

	s.Run("invalidate forces a fresh lookup", func() {
		gomock.InOrder(
			s.primary.EXPECT().IsVerifiedAuthority(gomock.Any(), verified).Return(true, nil),
			s.primary.EXPECT().IsVerifiedAuthority(gomock.Any(), verified).Return(false, nil),
		)

		o := authority.NewCachedOracle(s.primary, time.Minute)
		ok, _ := o.IsVerifiedAuthority(s.ctx, verified)
		s.True(ok)

		o.Invalidate(verified)
		ok, _ = o.IsVerifiedAuthority(s.ctx, verified)
		s.False(ok)
	})
}

func (s *OracleSuite) TestFallbackOracle() {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	s.Run("healthy primary answers directly", func() {
		s.primary.EXPECT().IsVerifiedAuthority(gomock.Any(), unverified).Return(true, nil)

		o := authority.NewFallbackOracle(s.primary, authority.NewStaticOracle(), circuit.New("authority"), logger)
		ok, err := o.IsVerifiedAuthority(s.ctx, unverified)
		s.Require().NoError(err)
		s.True(ok)
	})

	s.Run("primary failure answers from fallback", func() {
		s.primary.EXPECT().IsVerifiedAuthority(gomock.Any(), verified).Return(false, errors.New("connection refused"))

		o := authority.NewFallbackOracle(s.primary, authority.NewStaticOracle(verified), circuit.New("authority"), logger)
		ok, err := o.IsVerifiedAuthority(s.ctx, verified)
		s.Require().NoError(err)
		s.True(ok)
	})

	s.Run("open breaker keeps fallback until primary recovers", func() {
		breaker := circuit.New("authority", circuit.WithFailureThreshold(1), circuit.WithSuccessThreshold(2))
		fallback := authority.NewStaticOracle()
		o := authority.NewFallbackOracle(s.primary, fallback, breaker, logger)

		gomock.InOrder(
			s.primary.EXPECT().IsVerifiedAuthority(gomock.Any(), verified).Return(false, errors.New("down")),
			s.primary.EXPECT().IsVerifiedAuthority(gomock.Any(), verified).Return(true, nil).Times(2),
		)

		ok, err := o.IsVerifiedAuthority(s.ctx, verified)
		s.Require().NoError(err)
		s.False(ok, "fallback does not know the principal")
		s.True(breaker.IsOpen())

		ok, _ = o.IsVerifiedAuthority(s.ctx, verified)
		s.False(ok, "one success is not enough to close")

		ok, _ = o.IsVerifiedAuthority(s.ctx, verified)
		s.True(ok)
		s.False(breaker.IsOpen())
	})
}
