package commands

import (
	"context"

	"riderhub/internal/domain/driver"
	reqdto "riderhub/internal/handler/dto/request"
	"riderhub/internal/infra"
	"riderhub/internal/pkg/errs"
	"riderhub/internal/pkg/password"
	"riderhub/internal/usecase/queries"
	"riderhub/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrDuplicateCNPJ          = errs.New("cnpj already registered")
	ErrDuplicateLicenseNumber = errs.New("license number already registered")
	ErrDuplicateEmail         = errs.New("email already registered")
	ErrPasswordHashing        = errs.New("password hashing failed")
)

type DriverCommands interface {
	RegisterDriver(ctx context.Context, req reqdto.RegisterDriverRequest) (*queries.DriverView, error)
	UpdateLicenseImage(ctx context.Context, driverID uuid.UUID, req reqdto.UpdateLicenseImageRequest) error
}

type driverCommandsImpl struct {
	uow           shared.UnitOfWork
	driverQueries queries.DriverQueries
}

func NewDriverCommands(uow shared.UnitOfWork, driverQueries queries.DriverQueries) DriverCommands {
	return &driverCommandsImpl{
		uow:           uow,
		driverQueries: driverQueries,
	}
}

func (d *driverCommandsImpl) RegisterDriver(ctx context.Context, req reqdto.RegisterDriverRequest) (*queries.DriverView, error) {
	data, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	hash, err := password.HashPassword(data.Password.Value())
	if err != nil {
		return nil, errs.Mark(err, ErrPasswordHashing)
	}

	entity := driver.NewDriver(
		req.Name,
		data.Email,
		hash,
		data.CNPJ,
		req.DateOfBirth,
		data.LicenseNumber,
		data.Category,
		data.LicenseImage,
	)

	var driverID uuid.UUID
	err = d.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		driverID, err = tx.Drivers().Create(ctx, tx.DB(), entity)
		if err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, duplicateDriverError(err))
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	view, err := d.driverQueries.GetByID(ctx, driverID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (d *driverCommandsImpl) UpdateLicenseImage(ctx context.Context, driverID uuid.UUID, req reqdto.UpdateLicenseImageRequest) error {
	image, err := req.ToDomain()
	if err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}

	return d.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Drivers().UpdateLicenseImage(ctx, tx.DB(), driverID, image.Value()); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrDriverNotFound)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func duplicateDriverError(err error) error {
	switch infra.ConstraintName(err) {
	case infra.ConstraintDriverCNPJ:
		return ErrDuplicateCNPJ
	case infra.ConstraintDriverLicense:
		return ErrDuplicateLicenseNumber
	case infra.ConstraintDriverEmail:
		return ErrDuplicateEmail
	default:
		return ErrDuplicateCNPJ
	}
}
