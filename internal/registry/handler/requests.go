package handler

import (
	"strings"
	"time"

	"github.com/fridayblessings411-cell/AgroTour/internal/registry/models"
	"github.com/fridayblessings411-cell/AgroTour/pkg/domain"
	dErrors "github.com/fridayblessings411-cell/AgroTour/pkg/domain-errors"
	audit "github.com/fridayblessings411-cell/AgroTour/pkg/platform/audit"
)

// maxBodyBytes bounds every JSON request body.
const maxBodyBytes = 64 << 10

// CreateFarmRequest is the body of POST /farms. Field rules are enforced by
// the registry so that rejections keep their numeric codes and order.
type CreateFarmRequest struct {
	Name                string `json:"name"`
	Location            string `json:"location"`
	Size                int64  `json:"size"`
	CropTypes           string `json:"crop_types"`
	Certifications      string `json:"certifications"`
	FarmType            string `json:"farm_type"`
	Capacity            int64  `json:"capacity"`
	Climate             string `json:"climate"`
	Soil                string `json:"soil"`
	Currency            string `json:"currency"`
	SustainabilityScore int64  `json:"sustainability_score"`
	MaxInvestors        int64  `json:"max_investors"`
}

// positive maps non-positive amounts to zero, which the registry rejects
// with the field's own code.
func positive(v int64) uint64 {
	if v <= 0 {
		return 0
	}
	return uint64(v)
}

// score maps a negative score above the allowed range so it is rejected as
// an invalid sustainability score rather than read as zero.
func score(v int64) uint64 {
	if v < 0 {
		return models.MaxSustainabilityScore + 1
	}
	return uint64(v)
}

func (r *CreateFarmRequest) ToRegistration() models.Registration {
	return models.Registration{
		Name:                r.Name,
		Location:            r.Location,
		Size:                positive(r.Size),
		CropTypes:           r.CropTypes,
		Certifications:      r.Certifications,
		FarmType:            models.FarmType(r.FarmType),
		Capacity:            positive(r.Capacity),
		Climate:             r.Climate,
		Soil:                r.Soil,
		Currency:            models.Currency(r.Currency),
		SustainabilityScore: score(r.SustainabilityScore),
		MaxInvestors:        positive(r.MaxInvestors),
	}
}

// UpdateFarmRequest is the body of PUT /farms/{id}.
type UpdateFarmRequest struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	Size     int64  `json:"size"`
}

func (r *UpdateFarmRequest) SizeValue() uint64 {
	return positive(r.Size)
}

// SetAuthorityContractRequest is the body of PUT /admin/authority-contract.
type SetAuthorityContractRequest struct {
	Contract string `json:"contract"`
}

// Principal parses the contract. A blank contract is passed through so the
// registry reports it with its own error code.
func (r *SetAuthorityContractRequest) Principal() (domain.Principal, error) {
	if strings.TrimSpace(r.Contract) == "" {
		return "", nil
	}
	return domain.ParsePrincipal(r.Contract)
}

// SetRegistrationFeeRequest is the body of PUT /admin/registration-fee.
type SetRegistrationFeeRequest struct {
	Fee *uint64 `json:"fee"`
}

func (r *SetRegistrationFeeRequest) Validate() error {
	if r.Fee == nil {
		return dErrors.New(dErrors.CodeValidation, "fee is required")
	}
	return nil
}

type CreateFarmResponse struct {
	ID domain.FarmID `json:"id"`
}

type FarmCountResponse struct {
	Count uint64 `json:"count"`
}

type FarmExistenceResponse struct {
	Name   string `json:"name"`
	Exists bool   `json:"exists"`
}

type AuditEventResponse struct {
	Category  string    `json:"category"`
	Timestamp time.Time `json:"timestamp"`
	Action    string    `json:"action"`
	Subject   string    `json:"subject"`
	ActorID   string    `json:"actor_id,omitempty"`
	RequestID string    `json:"request_id,omitempty"`
	Height    uint64    `json:"height"`
	Amount    uint64    `json:"amount,omitempty"`
	Reason    string    `json:"reason,omitempty"`
}

func toAuditEventResponses(events []audit.Event) []AuditEventResponse {
	out := make([]AuditEventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, AuditEventResponse{
			Category:  string(e.Category),
			Timestamp: e.Timestamp,
			Action:    e.Action,
			Subject:   e.Subject,
			ActorID:   e.ActorID,
			RequestID: e.RequestID,
			Height:    e.Height,
			Amount:    e.Amount,
			Reason:    e.Reason,
		})
	}
	return out
}
