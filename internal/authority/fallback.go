package authority

import (
	"context"
	"log/slog"

	"github.com/fridayblessings411-cell/AgroTour/pkg/domain"
	"github.com/fridayblessings411-cell/AgroTour/pkg/platform/circuit"
)

// FallbackOracle answers from primary while it is healthy. When primary
// fails, or while the breaker is open, answers come from fallback. Primary is
// still consulted while open so the breaker can close again.
type FallbackOracle struct {
	primary  Oracle
	fallback Oracle
	breaker  *circuit.Breaker
	logger   *slog.Logger
}

func NewFallbackOracle(primary, fallback Oracle, breaker *circuit.Breaker, logger *slog.Logger) *FallbackOracle {
	if logger == nil {
		logger = slog.Default()
	}
	return &FallbackOracle{primary: primary, fallback: fallback, breaker: breaker, logger: logger}
}

func (o *FallbackOracle) IsVerifiedAuthority(ctx context.Context, p domain.Principal) (bool, error) {
	verified, err := o.primary.IsVerifiedAuthority(ctx, p)
	if err != nil {
		_, change := o.breaker.RecordFailure()
		if change.Opened {
			o.logger.WarnContext(ctx, "authority oracle circuit opened, using fallback",
				"breaker", o.breaker.Name(),
				"error", err,
			)
		}
		return o.fallback.IsVerifiedAuthority(ctx, p)
	}

	usePrimary, change := o.breaker.RecordSuccess()
	if change.Closed {
		o.logger.InfoContext(ctx, "authority oracle circuit closed", "breaker", o.breaker.Name())
	}
	if !usePrimary {
		return o.fallback.IsVerifiedAuthority(ctx, p)
	}
	return verified, nil
}
