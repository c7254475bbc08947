//go:build integration

package authority_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/fridayblessings411-cell/AgroTour/internal/authority"
	"github.com/fridayblessings411-cell/AgroTour/pkg/platform/sentinel"
	"github.com/fridayblessings411-cell/AgroTour/pkg/testutil/containers"
)

type RedisOracleSuite struct {
	suite.Suite
	redis  *containers.RedisContainer
	oracle *authority.RedisOracle
}

func TestRedisOracleSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(RedisOracleSuite))
}

func (s *RedisOracleSuite) SetupSuite() {
	mgr := containers.GetManager()
	s.redis = mgr.GetRedis(s.T())
	s.oracle = authority.NewRedisOracle(s.redis.Client)
}

func (s *RedisOracleSuite) SetupTest() {
	s.Require().NoError(s.redis.FlushAll(context.Background()))
}

func (s *RedisOracleSuite) TestGrantRevoke() {
	ctx := context.Background()

	ok, err := s.oracle.IsVerifiedAuthority(ctx, verified)
	s.Require().NoError(err)
	s.False(ok)

	s.Require().NoError(s.oracle.Grant(ctx, verified, unverified))
	ok, err = s.oracle.IsVerifiedAuthority(ctx, verified)
	s.Require().NoError(err)
	s.True(ok)

	s.Require().NoError(s.oracle.Revoke(ctx, unverified))
	ok, err = s.oracle.IsVerifiedAuthority(ctx, unverified)
	s.Require().NoError(err)
	s.False(ok)
}

func (s *RedisOracleSuite) TestCustomKeyIsolatesSets() {
	ctx := context.Background()
	other := authority.NewRedisOracle(s.redis.Client, authority.WithVerifiedKey("other:set"))

	s.Require().NoError(s.oracle.Grant(ctx, verified))
	ok, err := other.IsVerifiedAuthority(ctx, verified)
	s.Require().NoError(err)
	s.False(ok)
}

func (s *RedisOracleSuite) TestCachedRedisSeesRevocationAfterTTL() {
	ctx := context.Background()
	cached := authority.NewCachedOracle(s.oracle, 100*time.Millisecond)

	s.Require().NoError(s.oracle.Grant(ctx, verified))
	ok, _ := cached.IsVerifiedAuthority(ctx, verified)
	s.True(ok)

	s.Require().NoError(s.oracle.Revoke(ctx, verified))
	ok, _ = cached.IsVerifiedAuthority(ctx, verified)
	s.True(ok, "stale within ttl")

	s.Eventually(func() bool {
		ok, err := cached.IsVerifiedAuthority(ctx, verified)
		return err == nil && !ok
	}, 2*time.Second, 50*time.Millisecond)
}

func (s *RedisOracleSuite) TestCanceledContextReportsUnavailable() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.oracle.IsVerifiedAuthority(ctx, verified)
	s.Require().Error(err)
	s.ErrorIs(err, sentinel.ErrUnavailable)
}
