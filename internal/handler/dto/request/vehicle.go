package request

import (
	"riderhub/internal/domain/vehicle"
)

type CreateMotorcycleRequest struct {
	Year         int32  `json:"year" binding:"required"`
	Model        string `json:"model" binding:"required"`
	LicensePlate string `json:"license_plate" binding:"required"`
}

func (r CreateMotorcycleRequest) ToDomain() (*vehicle.Motorcycle, error) {
	plate, err := vehicle.NewLicensePlate(r.LicensePlate)
	if err != nil {
		return nil, err
	}
	return vehicle.NewMotorcycle(r.Year, r.Model, plate)
}

type UpdateMotorcyclePlateRequest struct {
	LicensePlate string `json:"license_plate" binding:"required"`
}

func (r UpdateMotorcyclePlateRequest) ToDomain() (vehicle.LicensePlate, error) {
	return vehicle.NewLicensePlate(r.LicensePlate)
}
