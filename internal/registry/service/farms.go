package service

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/fridayblessings411-cell/AgroTour/internal/registry/models"
	"github.com/fridayblessings411-cell/AgroTour/pkg/domain"
	dErrors "github.com/fridayblessings411-cell/AgroTour/pkg/domain-errors"
	audit "github.com/fridayblessings411-cell/AgroTour/pkg/platform/audit"
	"github.com/fridayblessings411-cell/AgroTour/pkg/platform/sentinel"
)

// CreateFarm registers a farm owned by caller and charges the registration
// fee to the bound authority contract.
//
// Checks run in a fixed order and the first failure is returned: capacity,
// field validation, caller authority, name uniqueness, contract binding, fee
// transfer. Nothing is committed unless every step succeeds.
func (s *Service) CreateFarm(ctx context.Context, caller domain.Principal, reg models.Registration) (id domain.FarmID, err error) {
	start := time.Now()
	defer s.observe("create_farm", start)
	ctx, span := s.startSpan(ctx, "CreateFarm",
		attribute.String("caller", caller.String()),
		attribute.String("farm.name", reg.Name),
	)
	defer func() { endSpan(span, err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	farm, err := s.createFarm(ctx, caller, reg)
	if err != nil {
		s.incrementCreateRejected(err)
		return 0, err
	}
	span.SetAttributes(attribute.String("farm.id", farm.ID.String()))

	fee := s.cfg.RegistrationFee
	if s.metrics != nil {
		s.metrics.IncrementFarmCreated(fee)
	}
	s.logAudit(ctx, audit.Event{
		Action:  string(audit.EventFarmRegistered),
		Subject: farm.ID.String(),
		ActorID: caller.String(),
		Height:  farm.Timestamp,
		Amount:  fee,
	})
	return farm.ID, nil
}

// createFarm runs the registration sequence. The caller holds s.mu.
func (s *Service) createFarm(ctx context.Context, caller domain.Principal, reg models.Registration) (*models.Farm, error) {
	if s.cfg.AtCapacity() {
		return nil, models.ErrMaxFarmsExceeded
	}
	if err := models.ValidateRegistration(reg); err != nil {
		return nil, err
	}

	verified, err := s.oracle.IsVerifiedAuthority(ctx, caller)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "authority oracle unavailable")
	}
	if !verified {
		return nil, models.ErrNotAuthorized
	}

	taken, err := s.nameTaken(ctx, reg.Name)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, models.ErrFarmAlreadyExists
	}

	if !s.cfg.HasAuthorityContract() {
		return nil, models.ErrAuthorityNotVerified
	}

	fee, contract := s.cfg.RegistrationFee, s.cfg.AuthorityContract
	if err := s.fees.Transfer(ctx, fee, caller, contract); err != nil {
		if errors.Is(err, sentinel.ErrInsufficientFunds) {
			return nil, dErrors.Wrap(err, dErrors.CodePaymentRequired, "registration fee could not be paid")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to transfer registration fee")
	}

	farm := models.NewFarm(s.cfg.NextFarmID, reg, caller, s.clock.Height())
	if err := s.farms.Insert(ctx, farm); err != nil {
		s.refund(ctx, fee, contract, caller)
		if errors.Is(err, sentinel.ErrAlreadyUsed) {
			return nil, models.ErrFarmAlreadyExists
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to store farm")
	}
	s.cfg.NextFarmID++
	return farm, nil
}

// refund reverses a fee transfer whose registration could not be stored.
func (s *Service) refund(ctx context.Context, fee uint64, contract, caller domain.Principal) {
	if err := s.fees.Transfer(ctx, fee, contract, caller); err != nil {
		s.logger.ErrorContext(ctx, "failed to refund registration fee",
			"caller", caller.String(),
			"amount", fee,
			"error", err,
		)
	}
}

func (s *Service) nameTaken(ctx context.Context, name string) (bool, error) {
	taken, err := s.farms.ExistsByName(ctx, name)
	if err != nil {
		return false, dErrors.Wrap(err, dErrors.CodeInternal, "failed to look up farm name")
	}
	return taken, nil
}

// UpdateFarm renames a farm and replaces its location and size. Only the
// owner may update. Every rejection is reported as models.ErrUpdateRejected;
// the specific reason is logged at debug level.
func (s *Service) UpdateFarm(ctx context.Context, caller domain.Principal, id domain.FarmID, name, location string, size uint64) (err error) {
	start := time.Now()
	defer s.observe("update_farm", start)
	ctx, span := s.startSpan(ctx, "UpdateFarm",
		attribute.String("caller", caller.String()),
		attribute.String("farm.id", id.String()),
	)
	defer func() { endSpan(span, err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	farm, err := s.farms.FindByID(ctx, id)
	if errors.Is(err, sentinel.ErrNotFound) {
		return s.rejectUpdate(ctx, id, "farm not found")
	}
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load farm")
	}
	if !farm.IsOwnedBy(caller) {
		return s.rejectUpdate(ctx, id, "caller is not the owner")
	}
	if vErr := models.ValidateRename(name, location, size); vErr != nil {
		return s.rejectUpdate(ctx, id, vErr.Error())
	}

	holder, err := s.farms.FindIDByName(ctx, name)
	switch {
	case err == nil && holder != id:
		return s.rejectUpdate(ctx, id, "name belongs to another farm")
	case err != nil && !errors.Is(err, sentinel.ErrNotFound):
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to look up farm name")
	}

	rename := models.Rename{
		Name:     name,
		Location: location,
		Size:     size,
		Height:   s.clock.Height(),
		Updater:  caller,
	}
	if err := s.farms.Rename(ctx, id, rename); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) || errors.Is(err, sentinel.ErrAlreadyUsed) {
			return s.rejectUpdate(ctx, id, err.Error())
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to update farm")
	}

	if s.metrics != nil {
		s.metrics.IncrementFarmUpdated()
	}
	s.logAudit(ctx, audit.Event{
		Action:  string(audit.EventFarmUpdated),
		Subject: id.String(),
		ActorID: caller.String(),
		Height:  rename.Height,
	})
	return nil
}

func (s *Service) rejectUpdate(ctx context.Context, id domain.FarmID, reason string) error {
	s.logger.DebugContext(ctx, "farm update rejected",
		"farm_id", id.String(),
		"reason", reason,
	)
	s.incrementUpdateRejected()
	return models.ErrUpdateRejected
}

// GetFarm returns the farm, or nil when no farm has the id.
func (s *Service) GetFarm(ctx context.Context, id domain.FarmID) (farm *models.Farm, err error) {
	ctx, span := s.startSpan(ctx, "GetFarm", attribute.String("farm.id", id.String()))
	defer func() { endSpan(span, err) }()

	s.mu.RLock()
	defer s.mu.RUnlock()

	farm, err = s.farms.FindByID(ctx, id)
	if errors.Is(err, sentinel.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load farm")
	}
	return farm, nil
}

// GetLastUpdate returns the most recent update applied to a farm, or nil
// when it was never updated.
func (s *Service) GetLastUpdate(ctx context.Context, id domain.FarmID) (update *models.FarmUpdate, err error) {
	ctx, span := s.startSpan(ctx, "GetLastUpdate", attribute.String("farm.id", id.String()))
	defer func() { endSpan(span, err) }()

	s.mu.RLock()
	defer s.mu.RUnlock()

	update, err = s.farms.FindUpdate(ctx, id)
	if errors.Is(err, sentinel.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load farm update")
	}
	return update, nil
}

// CheckFarmExistence reports whether a farm is registered under name.
func (s *Service) CheckFarmExistence(ctx context.Context, name string) (exists bool, err error) {
	ctx, span := s.startSpan(ctx, "CheckFarmExistence", attribute.String("farm.name", name))
	defer func() { endSpan(span, err) }()

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.nameTaken(ctx, name)
}

// GetFarmCount returns the number of ids assigned so far, which is also the
// next id to be assigned.
func (s *Service) GetFarmCount(ctx context.Context) uint64 {
	_, span := s.startSpan(ctx, "GetFarmCount")
	defer endSpan(span, nil)

	s.mu.RLock()
	defer s.mu.RUnlock()
	return uint64(s.cfg.NextFarmID)
}
