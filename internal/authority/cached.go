package authority

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/fridayblessings411-cell/AgroTour/pkg/domain"
)

// CachedOracle memoizes answers from another oracle for a TTL. Both positive
// and negative answers are cached, so a grant or revocation becomes visible
// within one TTL. Errors are never cached.
type CachedOracle struct {
	next  Oracle
	cache *gocache.Cache
}

func NewCachedOracle(next Oracle, ttl time.Duration) *CachedOracle {
	return &CachedOracle{
		next:  next,
		cache: gocache.New(ttl, 2*ttl),
	}
}

func (o *CachedOracle) IsVerifiedAuthority(ctx context.Context, p domain.Principal) (bool, error) {
	if v, found := o.cache.Get(p.String()); found {
		if verified, ok := v.(bool); ok {
			return verified, nil
		}
	}
	verified, err := o.next.IsVerifiedAuthority(ctx, p)
	if err != nil {
		return false, err
	}
	o.cache.SetDefault(p.String(), verified)
	return verified, nil
}

// Invalidate drops the cached answer for p.
func (o *CachedOracle) Invalidate(p domain.Principal) {
	o.cache.Delete(p.String())
}
