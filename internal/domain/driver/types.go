package driver

import "errors"

var ErrInvalidLicenseCategory = errors.New("invalid license category")

// LicenseCategory is the driver qualification class. Only A and A+B permit
// renting a motorcycle.
type LicenseCategory string

const (
	CategoryA  LicenseCategory = "A"
	CategoryB  LicenseCategory = "B"
	CategoryAB LicenseCategory = "A+B"
)

func (c LicenseCategory) String() string {
	return string(c)
}

func (c LicenseCategory) IsValid() bool {
	switch c {
	case CategoryA, CategoryB, CategoryAB:
		return true
	default:
		return false
	}
}

func (c LicenseCategory) PermitsMotorcycle() bool {
	return c == CategoryA || c == CategoryAB
}

func NewLicenseCategory(s string) (LicenseCategory, error) {
	category := LicenseCategory(s)
	if !category.IsValid() {
		return "", ErrInvalidLicenseCategory
	}
	return category, nil
}
