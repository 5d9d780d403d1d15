package driver

import (
	"time"

	"github.com/google/uuid"
)

// Driver is a delivery driver able to rent motorcycles. Modeled as a flat
// record; the rental core only ever reads the license category, through
// LicenseCategory.PermitsMotorcycle.
type Driver struct {
	id            uuid.UUID
	name          string
	email         Email
	passwordHash  string
	cnpj          CNPJ
	dateOfBirth   time.Time
	licenseNumber LicenseNumber
	category      LicenseCategory
	licenseImage  LicenseImage
}

func NewDriver(
	name string,
	email Email,
	passwordHash string,
	cnpj CNPJ,
	dateOfBirth time.Time,
	licenseNumber LicenseNumber,
	category LicenseCategory,
	licenseImage LicenseImage,
) *Driver {
	return &Driver{
		id:            uuid.New(),
		name:          name,
		email:         email,
		passwordHash:  passwordHash,
		cnpj:          cnpj,
		dateOfBirth:   dateOfBirth,
		licenseNumber: licenseNumber,
		category:      category,
		licenseImage:  licenseImage,
	}
}

func (d *Driver) ID() uuid.UUID                { return d.id }
func (d *Driver) Name() string                 { return d.name }
func (d *Driver) Email() Email                 { return d.email }
func (d *Driver) PasswordHash() string         { return d.passwordHash }
func (d *Driver) CNPJ() CNPJ                   { return d.cnpj }
func (d *Driver) DateOfBirth() time.Time       { return d.dateOfBirth }
func (d *Driver) LicenseNumber() LicenseNumber { return d.licenseNumber }
func (d *Driver) Category() LicenseCategory    { return d.category }
func (d *Driver) LicenseImage() LicenseImage   { return d.licenseImage }
