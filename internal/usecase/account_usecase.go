package usecase

import (
	"context"

	"userreg/internal/domain/entity"

	"github.com/google/uuid"
)

// AccountUsecase reads, deletes and edits existing accounts.
// Field updates load the aggregate, mutate one sub-entity and persist only that sub-entity.
// Concurrent updates to the same account are last-write-wins.
type AccountUsecase interface {
	GetByID(ctx context.Context, accountID uuid.UUID) (*entity.Account, error)
	GetByUsername(ctx context.Context, username string) (*entity.Account, error)
	ListAll(ctx context.Context) ([]*entity.Account, error)
	DeleteByID(ctx context.Context, accountID uuid.UUID) error

	UpdatePersonalInfoField(ctx context.Context, accountID uuid.UUID, mutate entity.PersonalInfoMutation) (*entity.Account, error)
	UpdateAddressField(ctx context.Context, accountID uuid.UUID, mutate entity.AddressMutation) (*entity.Account, error)

	UpdateFirstName(ctx context.Context, accountID uuid.UUID, firstName string) (*entity.Account, error)
	UpdateSurname(ctx context.Context, accountID uuid.UUID, surname string) (*entity.Account, error)
	UpdatePersonalIdentificationNumber(ctx context.Context, accountID uuid.UUID, pin string) (*entity.Account, error)
	UpdatePhoneNumber(ctx context.Context, accountID uuid.UUID, phoneNumber string) (*entity.Account, error)
	UpdateEmail(ctx context.Context, accountID uuid.UUID, email string) (*entity.Account, error)
	UpdateProfilePicture(ctx context.Context, accountID uuid.UUID, picture []byte) (*entity.Account, error)
	UpdateCity(ctx context.Context, accountID uuid.UUID, city string) (*entity.Account, error)
	UpdateStreet(ctx context.Context, accountID uuid.UUID, street string) (*entity.Account, error)
	UpdateHouseNumber(ctx context.Context, accountID uuid.UUID, houseNumber string) (*entity.Account, error)
	UpdateApartmentNumber(ctx context.Context, accountID uuid.UUID, apartmentNumber string) (*entity.Account, error)
}
