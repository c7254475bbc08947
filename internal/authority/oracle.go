// Package authority answers whether a principal is a verified farm
// authority. Implementations range from a static allowlist to a Redis set
// fronted by a local cache and a circuit breaker.
package authority

//go:generate mockgen -source=oracle.go -destination=mocks/mocks.go -package=mocks Oracle

import (
	"context"
	"sync"

	"github.com/fridayblessings411-cell/AgroTour/pkg/domain"
)

// Oracle is the read side every implementation satisfies.
type Oracle interface {
	IsVerifiedAuthority(ctx context.Context, p domain.Principal) (bool, error)
}

// StaticOracle is an in-process allowlist.
type StaticOracle struct {
	mu       sync.RWMutex
	verified map[domain.Principal]struct{}
}

func NewStaticOracle(verified ...domain.Principal) *StaticOracle {
	o := &StaticOracle{verified: make(map[domain.Principal]struct{}, len(verified))}
	for _, p := range verified {
		o.verified[p] = struct{}{}
	}
	return o
}

func (o *StaticOracle) IsVerifiedAuthority(_ context.Context, p domain.Principal) (bool, error) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	_, ok := o.verified[p]
	return ok, nil
}

func (o *StaticOracle) Grant(p domain.Principal) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.verified[p] = struct{}{}
}

func (o *StaticOracle) Revoke(p domain.Principal) {
	o.mu.Lock()
	defer o.mu.Unlock()
	delete(o.verified, p)
}
