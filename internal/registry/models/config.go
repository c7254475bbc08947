package models

import "github.com/fridayblessings411-cell/AgroTour/pkg/domain"

// Defaults used when neither options nor persisted settings say otherwise.
const (
	DefaultMaxFarms        uint64 = 1000
	DefaultRegistrationFee uint64 = 1000
)

// Config is the registry configuration. Only the service mutates it.
type Config struct {
	NextFarmID        domain.FarmID    `json:"next_farm_id"`
	MaxFarms          uint64           `json:"max_farms"`
	RegistrationFee   uint64           `json:"registration_fee"`
	AuthorityContract domain.Principal `json:"authority_contract,omitempty"`
}

func (c Config) HasAuthorityContract() bool {
	return !c.AuthorityContract.IsZero()
}

// AtCapacity reports whether no further farm may be created.
func (c Config) AtCapacity() bool {
	return uint64(c.NextFarmID) >= c.MaxFarms
}

// Settings returns the persisted subset of the configuration.
func (c Config) Settings() Settings {
	return Settings{
		RegistrationFee:   c.RegistrationFee,
		AuthorityContract: c.AuthorityContract,
	}
}

// Settings is the part of Config that survives restarts. NextFarmID is
// derived from the farm store and MaxFarms from deployment configuration.
type Settings struct {
	RegistrationFee   uint64
	AuthorityContract domain.Principal
}

// CanBindAuthorityContract checks whether p may become the authority contract.
func (c Config) CanBindAuthorityContract(p domain.Principal) error {
	if p.IsZero() || p.IsNull() || c.HasAuthorityContract() {
		return ErrInvalidAuthorityContract
	}
	return nil
}
