package driver

import (
	"errors"
	"path"
	"regexp"
	"strings"
)

var (
	ErrInvalidEmail         = errors.New("invalid email format")
	ErrInvalidCNPJ          = errors.New("invalid CNPJ format")
	ErrInvalidLicenseNumber = errors.New("license number is required")
	ErrInvalidLicenseImage  = errors.New("license image must be a png or bmp reference")
	ErrPasswordTooWeak      = errors.New("password must be at least 8 characters long")
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	cnpjRegex  = regexp.MustCompile(`^[0-9]{14}$`)
)

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

// CNPJ is the company registration number: exactly 14 digits, unique per
// driver.
type CNPJ struct {
	value string
}

func NewCNPJ(s string) (CNPJ, error) {
	s = strings.TrimSpace(s)
	if !cnpjRegex.MatchString(s) {
		return CNPJ{}, ErrInvalidCNPJ
	}
	return CNPJ{value: s}, nil
}

func (c CNPJ) Value() string {
	return c.value
}

type LicenseNumber struct {
	value string
}

func NewLicenseNumber(s string) (LicenseNumber, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return LicenseNumber{}, ErrInvalidLicenseNumber
	}
	return LicenseNumber{value: s}, nil
}

func (n LicenseNumber) Value() string {
	return n.value
}

// LicenseImage is a reference to an already-stored image, not the bytes;
// upload and storage live outside this service.
type LicenseImage struct {
	value string
}

func NewLicenseImage(ref string) (LicenseImage, error) {
	ref = strings.TrimSpace(ref)
	switch strings.ToLower(path.Ext(ref)) {
	case ".png", ".bmp":
		return LicenseImage{value: ref}, nil
	default:
		return LicenseImage{}, ErrInvalidLicenseImage
	}
}

func (i LicenseImage) Value() string {
	return i.value
}

type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	if len(s) < 8 {
		return Password{}, ErrPasswordTooWeak
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}
