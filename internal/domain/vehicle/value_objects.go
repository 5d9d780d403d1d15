package vehicle

import (
	"errors"
	"strings"
)

var (
	ErrInvalidYear         = errors.New("invalid manufacturing year")
	ErrInvalidModel        = errors.New("model is required")
	ErrInvalidLicensePlate = errors.New("license plate is required")
)

// LicensePlate is normalized to upper case; uniqueness is enforced at the
// store.
type LicensePlate struct {
	value string
}

func NewLicensePlate(s string) (LicensePlate, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return LicensePlate{}, ErrInvalidLicensePlate
	}
	return LicensePlate{value: s}, nil
}

func (p LicensePlate) Value() string {
	return p.value
}
