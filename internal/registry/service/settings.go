package service

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/fridayblessings411-cell/AgroTour/internal/registry/models"
	"github.com/fridayblessings411-cell/AgroTour/pkg/domain"
	dErrors "github.com/fridayblessings411-cell/AgroTour/pkg/domain-errors"
	audit "github.com/fridayblessings411-cell/AgroTour/pkg/platform/audit"
)

// SetAuthorityContract binds the authority contract that receives
// registration fees. It can be bound once, never to the null principal.
func (s *Service) SetAuthorityContract(ctx context.Context, contract domain.Principal) (err error) {
	start := time.Now()
	defer s.observe("set_authority_contract", start)
	ctx, span := s.startSpan(ctx, "SetAuthorityContract", attribute.String("contract", contract.String()))
	defer func() { endSpan(span, err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.cfg.CanBindAuthorityContract(contract); err != nil {
		return err
	}

	next := s.cfg
	next.AuthorityContract = contract
	if err := s.settings.Save(ctx, next.Settings()); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to save registry settings")
	}
	s.cfg = next

	s.logAudit(ctx, audit.Event{
		Action:  string(audit.EventAuthorityContractBound),
		Subject: "authority_contract",
		Reason:  contract.String(),
		Height:  s.clock.Height(),
	})
	return nil
}

// SetRegistrationFee replaces the fee charged per registration. It requires
// a bound authority contract. Any value is accepted.
func (s *Service) SetRegistrationFee(ctx context.Context, fee uint64) (err error) {
	start := time.Now()
	defer s.observe("set_registration_fee", start)
	ctx, span := s.startSpan(ctx, "SetRegistrationFee", attribute.Int64("fee", int64(fee))) //nolint:gosec // attribute only
	defer func() { endSpan(span, err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.cfg.HasAuthorityContract() {
		return models.ErrNotAuthorized
	}

	next := s.cfg
	next.RegistrationFee = fee
	if err := s.settings.Save(ctx, next.Settings()); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to save registry settings")
	}
	s.cfg = next

	s.logAudit(ctx, audit.Event{
		Action:  string(audit.EventRegistrationFeeChanged),
		Subject: "registration_fee",
		Amount:  fee,
		Height:  s.clock.Height(),
	})
	return nil
}

// GetConfig returns a snapshot of the registry configuration.
func (s *Service) GetConfig(ctx context.Context) models.Config {
	_, span := s.startSpan(ctx, "GetConfig")
	defer endSpan(span, nil)

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}
