package models

import (
	"errors"
	"fmt"

	dErrors "github.com/fridayblessings411-cell/AgroTour/pkg/domain-errors"
)

// ErrorCode is the stable numeric registry error taxonomy. Values are part of
// the public API and must not be renumbered.
type ErrorCode uint32

const (
	CodeNotAuthorized            ErrorCode = 100
	CodeInvalidName              ErrorCode = 101
	CodeInvalidLocation          ErrorCode = 102
	CodeInvalidSize              ErrorCode = 103
	CodeInvalidCropTypes         ErrorCode = 104
	CodeInvalidCertifications    ErrorCode = 105
	CodeFarmAlreadyExists        ErrorCode = 106
	CodeFarmNotFound             ErrorCode = 107
	CodeInvalidAuthorityContract ErrorCode = 108
	CodeAuthorityNotVerified     ErrorCode = 109
	CodeInvalidSustainability    ErrorCode = 110
	CodeInvalidUpdateParam       ErrorCode = 113
	CodeMaxFarmsExceeded         ErrorCode = 114
	CodeInvalidFarmType          ErrorCode = 115
	CodeInvalidCapacity          ErrorCode = 116
	CodeInvalidClimate           ErrorCode = 117
	CodeInvalidSoil              ErrorCode = 118
	CodeInvalidCurrency          ErrorCode = 119
)

// Error is a registry rejection. It carries the numeric code for API
// compatibility and a dErrors category for transport mapping.
//
// errors.Is matches on Code, so wrapped errors still compare equal to the
// package-level sentinels below.
type Error struct {
	Code     ErrorCode
	Category dErrors.Code
	Message  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s (u%d)", e.Message, e.Code)
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// Unwrap exposes the category so dErrors.HasCode and httputil work unchanged.
func (e *Error) Unwrap() error {
	return dErrors.New(e.Category, e.Message)
}

func (e *Error) NumericCode() uint32 {
	return uint32(e.Code)
}

func newError(code ErrorCode, category dErrors.Code, message string) *Error {
	return &Error{Code: code, Category: category, Message: message}
}

var (
	ErrNotAuthorized            = newError(CodeNotAuthorized, dErrors.CodeForbidden, "not authorized")
	ErrInvalidName              = newError(CodeInvalidName, dErrors.CodeValidation, "farm name must be 1 to 100 characters")
	ErrInvalidLocation          = newError(CodeInvalidLocation, dErrors.CodeValidation, "location must be 1 to 100 characters")
	ErrInvalidSize              = newError(CodeInvalidSize, dErrors.CodeValidation, "size must be greater than zero")
	ErrInvalidCropTypes         = newError(CodeInvalidCropTypes, dErrors.CodeValidation, "crop types are required")
	ErrInvalidCertifications    = newError(CodeInvalidCertifications, dErrors.CodeValidation, "certifications are malformed")
	ErrFarmAlreadyExists        = newError(CodeFarmAlreadyExists, dErrors.CodeConflict, "a farm with this name already exists")
	ErrFarmNotFound             = newError(CodeFarmNotFound, dErrors.CodeNotFound, "farm not found")
	ErrInvalidAuthorityContract = newError(CodeInvalidAuthorityContract, dErrors.CodeValidation, "authority contract cannot be set")
	ErrAuthorityNotVerified     = newError(CodeAuthorityNotVerified, dErrors.CodeForbidden, "no authority contract is bound")
	ErrInvalidSustainability    = newError(CodeInvalidSustainability, dErrors.CodeValidation, "sustainability score must be between 0 and 100")
	ErrMaxFarmsExceeded         = newError(CodeMaxFarmsExceeded, dErrors.CodeLimitExceeded, "farm capacity reached")
	ErrInvalidFarmType          = newError(CodeInvalidFarmType, dErrors.CodeValidation, "farm type must be organic, conventional or hydroponic")
	ErrInvalidCapacity          = newError(CodeInvalidCapacity, dErrors.CodeValidation, "capacity must be greater than zero")
	ErrInvalidClimate           = newError(CodeInvalidClimate, dErrors.CodeValidation, "climate is required")
	ErrInvalidSoil              = newError(CodeInvalidSoil, dErrors.CodeValidation, "soil is required")
	ErrInvalidCurrency          = newError(CodeInvalidCurrency, dErrors.CodeValidation, "currency must be STX, USD or BTC")

	// ErrUpdateRejected is the only error UpdateFarm reports for a rejected
	// update, whatever the reason.
	ErrUpdateRejected = newError(CodeInvalidUpdateParam, dErrors.CodeBadRequest, "update rejected")
)

// CodeOf returns the registry code carried by err, if any.
func CodeOf(err error) (ErrorCode, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Code, true
	}
	return 0, false
}
