package request

import (
	"time"

	"riderhub/internal/domain/driver"
)

type RegisterDriverRequest struct {
	Name            string    `json:"name" binding:"required"`
	Email           string    `json:"email" binding:"required,email"`
	Password        string    `json:"password" binding:"required,min=8"`
	CNPJ            string    `json:"cnpj" binding:"required"`
	DateOfBirth     time.Time `json:"date_of_birth" binding:"required"`
	LicenseNumber   string    `json:"license_number" binding:"required"`
	LicenseCategory string    `json:"license_category" binding:"required"`
	LicenseImage    string    `json:"license_image" binding:"required"`
}

type DriverDomainData struct {
	Email         driver.Email
	CNPJ          driver.CNPJ
	LicenseNumber driver.LicenseNumber
	Category      driver.LicenseCategory
	LicenseImage  driver.LicenseImage
	Password      driver.Password
}

func (r RegisterDriverRequest) ToDomain() (*DriverDomainData, error) {
	email, err := driver.NewEmail(r.Email)
	if err != nil {
		return nil, err
	}
	cnpj, err := driver.NewCNPJ(r.CNPJ)
	if err != nil {
		return nil, err
	}
	number, err := driver.NewLicenseNumber(r.LicenseNumber)
	if err != nil {
		return nil, err
	}
	category, err := driver.NewLicenseCategory(r.LicenseCategory)
	if err != nil {
		return nil, err
	}
	image, err := driver.NewLicenseImage(r.LicenseImage)
	if err != nil {
		return nil, err
	}
	password, err := driver.NewPassword(r.Password)
	if err != nil {
		return nil, err
	}
	return &DriverDomainData{
		Email:         email,
		CNPJ:          cnpj,
		LicenseNumber: number,
		Category:      category,
		LicenseImage:  image,
		Password:      password,
	}, nil
}

type UpdateLicenseImageRequest struct {
	LicenseImage string `json:"license_image" binding:"required"`
}

func (r UpdateLicenseImageRequest) ToDomain() (driver.LicenseImage, error) {
	return driver.NewLicenseImage(r.LicenseImage)
}
