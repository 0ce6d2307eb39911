package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/goslynn/pasteleria-mil-sabores-sub000/internal/feature/address/domain/entity"
	"github.com/goslynn/pasteleria-mil-sabores-sub000/internal/shared/apperror"
)

// AddressRepository abstracts address and reference data persistence.
// Following Go convention: the interface is defined here, by its consumer.
type AddressRepository interface {
	// ListRegions returns every region with its comunas, north to south.
	ListRegions(ctx context.Context) ([]entity.Region, error)
	ComunaExists(ctx context.Context, id uint) (bool, error)

	ListByUser(ctx context.Context, userID uint) ([]entity.Address, error)
	// FindByID returns ErrAddressNotFound unless userID owns address id.
	FindByID(ctx context.Context, userID, id uint) (*entity.Address, error)
	Create(ctx context.Context, a *entity.Address) error
	Update(ctx context.Context, a *entity.Address) error
	// Delete returns ErrAddressNotFound unless userID owns address id.
	Delete(ctx context.Context, userID, id uint) error
}

// AddressInput carries the editable address fields.
type AddressInput struct {
	Calle        string
	Numero       string
	Departamento *string
	ComunaID     uint
}

type addressUsecase struct {
	repo AddressRepository
}

// NewAddressUsecase creates the address usecase.
func NewAddressUsecase(repo AddressRepository) *addressUsecase {
	return &addressUsecase{repo: repo}
}

// ListRegions returns the region and comuna reference data.
func (u *addressUsecase) ListRegions(ctx context.Context) ([]entity.Region, error) {
	regions, err := u.repo.ListRegions(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return regions, nil
}

// List returns the addresses of userID.
func (u *addressUsecase) List(ctx context.Context, userID uint) ([]entity.Address, error) {
	addrs, err := u.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return addrs, nil
}

// Create adds an address for userID. It fails with ErrDuplicateAddress when
// the user already has the same place.
func (u *addressUsecase) Create(ctx context.Context, userID uint, in AddressInput) (*entity.Address, error) {
	addr, err := u.validate(ctx, in)
	if err != nil {
		return nil, err
	}
	addr.UserID = userID
	if err := u.checkDuplicate(ctx, addr, 0); err != nil {
		return nil, err
	}
	if err := u.repo.Create(ctx, &addr); err != nil {
		return nil, apperror.Internal(err)
	}
	return u.find(ctx, userID, addr.ID)
}

// Update replaces the fields of address id owned by userID.
func (u *addressUsecase) Update(ctx context.Context, userID, id uint, in AddressInput) (*entity.Address, error) {
	if _, err := u.find(ctx, userID, id); err != nil {
		return nil, err
	}
	addr, err := u.validate(ctx, in)
	if err != nil {
		return nil, err
	}
	addr.ID = id
	addr.UserID = userID
	if err := u.checkDuplicate(ctx, addr, id); err != nil {
		return nil, err
	}
	if err := u.repo.Update(ctx, &addr); err != nil {
		return nil, notFoundOrInternal(err)
	}
	return u.find(ctx, userID, id)
}

// Delete removes address id owned by userID.
func (u *addressUsecase) Delete(ctx context.Context, userID, id uint) error {
	if err := u.repo.Delete(ctx, userID, id); err != nil {
		return notFoundOrInternal(err)
	}
	return nil
}

func (u *addressUsecase) find(ctx context.Context, userID, id uint) (*entity.Address, error) {
	addr, err := u.repo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, notFoundOrInternal(err)
	}
	return addr, nil
}

// validate trims the input and checks the comuna exists.
func (u *addressUsecase) validate(ctx context.Context, in AddressInput) (entity.Address, error) {
	addr := entity.Address{
		Calle:    strings.TrimSpace(in.Calle),
		Numero:   strings.TrimSpace(in.Numero),
		ComunaID: in.ComunaID,
	}
	if in.Departamento != nil {
		if unit := strings.TrimSpace(*in.Departamento); unit != "" {
			addr.Departamento = &unit
		}
	}
	if addr.Calle == "" || addr.Numero == "" || addr.ComunaID == 0 {
		return entity.Address{}, apperror.Validation("calle, numero and idComuna are required")
	}

	ok, err := u.repo.ComunaExists(ctx, addr.ComunaID)
	if err != nil {
		return entity.Address{}, apperror.Internal(err)
	}
	if !ok {
		return entity.Address{}, apperror.Validation("comuna %d does not exist", addr.ComunaID)
	}
	return addr, nil
}

// checkDuplicate compares addr against the user's other addresses; skipID
// excludes the address being updated.
func (u *addressUsecase) checkDuplicate(ctx context.Context, addr entity.Address, skipID uint) error {
	existing, err := u.repo.ListByUser(ctx, addr.UserID)
	if err != nil {
		return apperror.Internal(err)
	}
	for _, e := range existing {
		if e.ID != skipID && e.SamePlace(addr) {
			return ErrDuplicateAddress
		}
	}
	return nil
}

func notFoundOrInternal(err error) error {
	if errors.Is(err, ErrAddressNotFound) {
		return apperror.NotFound("address not found")
	}
	return apperror.Internal(err)
}
