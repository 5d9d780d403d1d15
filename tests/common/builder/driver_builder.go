//go:build unit || e2e

package builder

import (
	"time"

	"riderhub/internal/domain/driver"
	reqdto "riderhub/internal/handler/dto/request"
	"riderhub/internal/usecase/queries"

	"github.com/google/uuid"
)

type DriverBuilder struct {
	Name            string
	Email           string
	PasswordHash    string
	CNPJ            string
	DateOfBirth     time.Time
	LicenseNumber   string
	LicenseCategory string
	LicenseImage    string
}

func NewDriverBuilder() *DriverBuilder {
	return &DriverBuilder{
		Name:            "Taro Yamada",
		Email:           "taro@example.com",
		PasswordHash:    "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy",
		CNPJ:            "11222333000181",
		DateOfBirth:     time.Date(1990, 5, 20, 0, 0, 0, 0, time.UTC),
		LicenseNumber:   "LIC-0001",
		LicenseCategory: string(driver.CategoryA),
		LicenseImage:    "licenses/lic-0001.png",
	}
}

func (b *DriverBuilder) WithCategory(cat string) *DriverBuilder {
	b.LicenseCategory = cat
	return b
}

func (b *DriverBuilder) WithEmail(email string) *DriverBuilder {
	b.Email = email
	return b
}

func (b *DriverBuilder) WithCNPJ(cnpj string) *DriverBuilder {
	b.CNPJ = cnpj
	return b
}

func (b *DriverBuilder) WithLicenseNumber(number string) *DriverBuilder {
	b.LicenseNumber = number
	return b
}

func (b *DriverBuilder) BuildDomain() *driver.Driver {
	email, err := driver.NewEmail(b.Email)
	if err != nil {
		panic(err)
	}
	cnpj, err := driver.NewCNPJ(b.CNPJ)
	if err != nil {
		panic(err)
	}
	number, err := driver.NewLicenseNumber(b.LicenseNumber)
	if err != nil {
		panic(err)
	}
	category, err := driver.NewLicenseCategory(b.LicenseCategory)
	if err != nil {
		panic(err)
	}
	image, err := driver.NewLicenseImage(b.LicenseImage)
	if err != nil {
		panic(err)
	}
	return driver.NewDriver(b.Name, email, b.PasswordHash, cnpj, b.DateOfBirth, number, category, image)
}

func (b *DriverBuilder) BuildRegisterRequest() reqdto.RegisterDriverRequest {
	return reqdto.RegisterDriverRequest{
		Name:            b.Name,
		Email:           b.Email,
		Password:        "password123",
		CNPJ:            b.CNPJ,
		DateOfBirth:     b.DateOfBirth,
		LicenseNumber:   b.LicenseNumber,
		LicenseCategory: b.LicenseCategory,
		LicenseImage:    b.LicenseImage,
	}
}

func (b *DriverBuilder) BuildView() *queries.DriverView {
	now := time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC)
	image := b.LicenseImage
	return &queries.DriverView{
		ID:              uuid.New(),
		Name:            b.Name,
		Email:           b.Email,
		CNPJ:            b.CNPJ,
		DateOfBirth:     b.DateOfBirth,
		LicenseNumber:   b.LicenseNumber,
		LicenseCategory: b.LicenseCategory,
		LicenseImage:    &image,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}
