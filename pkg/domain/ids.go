package domain

import (
	"strconv"
	"strings"

	dErrors "github.com/fridayblessings411-cell/AgroTour/pkg/domain-errors"
)

// MaxPrincipalLength bounds principal identifiers at trust boundaries.
const MaxPrincipalLength = 128

// NullPrincipal is the ledger's well-known all-zero burn address. It can never be
// bound as the authority contract.
const NullPrincipal Principal = "SP000000000000000000002Q6VF78"

// Principal is an opaque, already-authenticated account identifier.
type Principal string

// FarmID is the sequentially assigned identifier of a registered farm.
type FarmID uint64

// ParsePrincipal validates a principal received from outside the process.
// Accepted characters are ASCII letters, digits, '.', '-' and '_'.
func ParsePrincipal(s string) (Principal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "principal is required")
	}
	if len(s) > MaxPrincipalLength {
		return "", dErrors.New(dErrors.CodeInvalidInput, "principal is too long")
	}
	for i := 0; i < len(s); i++ {
		if !isPrincipalByte(s[i]) {
			return "", dErrors.New(dErrors.CodeInvalidInput, "principal contains invalid characters")
		}
	}
	return Principal(s), nil
}

func isPrincipalByte(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '.', c == '-', c == '_':
		return true
	}
	return false
}

func (p Principal) String() string {
	return string(p)
}

// IsZero reports whether the principal is unset.
func (p Principal) IsZero() bool {
	return p == ""
}

// IsNull reports whether the principal is the reserved burn address.
func (p Principal) IsNull() bool {
	return p == NullPrincipal
}

// ParseFarmID parses a base-10 farm identifier.
func ParseFarmID(s string) (FarmID, error) {
	if s == "" {
		return 0, dErrors.New(dErrors.CodeInvalidInput, "farm id is required")
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, dErrors.New(dErrors.CodeInvalidInput, "farm id must be a non-negative integer")
	}
	return FarmID(v), nil
}

func (id FarmID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}
