package vehicle

import (
	"github.com/google/uuid"
)

// Motorcycle is a fleet vehicle. The rental core only reads its identity;
// the rest exists for fleet management.
type Motorcycle struct {
	id           uuid.UUID
	year         int32
	model        string
	licensePlate LicensePlate
}

func NewMotorcycle(year int32, model string, plate LicensePlate) (*Motorcycle, error) {
	if year < 1900 {
		return nil, ErrInvalidYear
	}
	if model == "" {
		return nil, ErrInvalidModel
	}
	return &Motorcycle{
		id:           uuid.New(),
		year:         year,
		model:        model,
		licensePlate: plate,
	}, nil
}

func (m *Motorcycle) ID() uuid.UUID              { return m.id }
func (m *Motorcycle) Year() int32                { return m.year }
func (m *Motorcycle) Model() string              { return m.model }
func (m *Motorcycle) LicensePlate() LicensePlate { return m.licensePlate }
