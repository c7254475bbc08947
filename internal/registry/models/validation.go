package models

import "unicode/utf16"

// textLength counts UTF-16 code units, so characters outside the Basic
// Multilingual Plane count twice.
func textLength(s string) int {
	return len(utf16.Encode([]rune(s)))
}

func validText(s string) bool {
	n := textLength(s)
	return n > 0 && n <= MaxTextLength
}

// ValidateRegistration returns the first violated rule, checked in a fixed
// order. Callers rely on which error surfaces first when several fields are
// wrong, so the order is part of the contract.
func ValidateRegistration(r Registration) error {
	switch {
	case !validText(r.Name):
		return ErrInvalidName
	case !validText(r.Location):
		return ErrInvalidLocation
	case r.Size == 0:
		return ErrInvalidSize
	case r.CropTypes == "":
		return ErrInvalidCropTypes
	case !validCertifications(r.Certifications):
		return ErrInvalidCertifications
	case !r.FarmType.IsValid():
		return ErrInvalidFarmType
	case r.Capacity == 0:
		return ErrInvalidCapacity
	case r.Climate == "":
		return ErrInvalidClimate
	case r.Soil == "":
		return ErrInvalidSoil
	case !r.Currency.IsValid():
		return ErrInvalidCurrency
	case r.SustainabilityScore > MaxSustainabilityScore:
		return ErrInvalidSustainability
	case r.MaxInvestors == 0:
		// Historical mapping: a zero investor cap reports NotAuthorized.
		return ErrNotAuthorized
	}
	return nil
}

// Certifications may be empty and have no format yet.
func validCertifications(string) bool { return true }

// ValidateRename checks the caller-supplied update fields. Ownership and name
// uniqueness are checked by the service against current state.
func ValidateRename(name, location string, size uint64) error {
	switch {
	case !validText(name):
		return ErrInvalidName
	case !validText(location):
		return ErrInvalidLocation
	case size == 0:
		return ErrInvalidSize
	}
	return nil
}
