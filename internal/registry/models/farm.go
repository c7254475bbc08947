package models

import (
	"github.com/fridayblessings411-cell/AgroTour/pkg/domain"
)

// MaxTextLength bounds name and location, counted in UTF-16 code units.
const MaxTextLength = 100

// MaxSustainabilityScore is the inclusive upper bound of the score.
const MaxSustainabilityScore = 100

type FarmType string

const (
	FarmTypeOrganic      FarmType = "organic"
	FarmTypeConventional FarmType = "conventional"
	FarmTypeHydroponic   FarmType = "hydroponic"
)

func (t FarmType) IsValid() bool {
	switch t {
	case FarmTypeOrganic, FarmTypeConventional, FarmTypeHydroponic:
		return true
	}
	return false
}

type Currency string

const (
	CurrencySTX Currency = "STX"
	CurrencyUSD Currency = "USD"
	CurrencyBTC Currency = "BTC"
)

func (c Currency) IsValid() bool {
	switch c {
	case CurrencySTX, CurrencyUSD, CurrencyBTC:
		return true
	}
	return false
}

// Registration is the caller-supplied part of a farm record.
type Registration struct {
	Name                string   `json:"name"`
	Location            string   `json:"location"`
	Size                uint64   `json:"size"`
	CropTypes           string   `json:"crop_types"`
	Certifications      string   `json:"certifications"`
	FarmType            FarmType `json:"farm_type"`
	Capacity            uint64   `json:"capacity"`
	Climate             string   `json:"climate"`
	Soil                string   `json:"soil"`
	Currency            Currency `json:"currency"`
	SustainabilityScore uint64   `json:"sustainability_score"`
	MaxInvestors        uint64   `json:"max_investors"`
}

// Farm is one registered farm.
//
// Invariants:
//   - ID is assigned sequentially from 0 and never reused
//   - Name is unique among registered farms
//   - Owner is immutable after creation
//   - Timestamp is the logical clock at creation or at the latest update
type Farm struct {
	ID domain.FarmID `json:"id"`
	Registration
	Owner     domain.Principal `json:"owner"`
	Timestamp uint64           `json:"timestamp"`
	Status    bool             `json:"status"`
}

// NewFarm builds the record committed by a successful registration.
func NewFarm(id domain.FarmID, reg Registration, owner domain.Principal, height uint64) *Farm {
	return &Farm{
		ID:           id,
		Registration: reg,
		Owner:        owner,
		Timestamp:    height,
		Status:       true,
	}
}

// IsOwnedBy reports whether p created the farm.
func (f *Farm) IsOwnedBy(p domain.Principal) bool {
	return f.Owner == p
}

// ApplyRename overwrites the mutable fields.
func (f *Farm) ApplyRename(r Rename) {
	f.Name = r.Name
	f.Location = r.Location
	f.Size = r.Size
	f.Timestamp = r.Height
}

// Rename is a validated update to a farm's mutable fields.
type Rename struct {
	Name     string
	Location string
	Size     uint64
	Height   uint64
	Updater  domain.Principal
}

// Update converts the rename into its audit entry.
func (r Rename) Update() FarmUpdate {
	return FarmUpdate{
		UpdateName:      r.Name,
		UpdateLocation:  r.Location,
		UpdateSize:      r.Size,
		UpdateTimestamp: r.Height,
		Updater:         r.Updater,
	}
}

// FarmUpdate is the most recent update applied to a farm. At most one
// exists per farm; each update replaces it.
type FarmUpdate struct {
	UpdateName      string           `json:"update_name"`
	UpdateLocation  string           `json:"update_location"`
	UpdateSize      uint64           `json:"update_size"`
	UpdateTimestamp uint64           `json:"update_timestamp"`
	Updater         domain.Principal `json:"updater"`
}
