package impl

import (
	"context"
	"log/slog"

	deliverycontext "userreg/internal/delivery/context"
	"userreg/internal/domain/entity"
	domainerrors "userreg/internal/domain/errors"
	"userreg/internal/domain/repository"
	"userreg/internal/domain/service"
	"userreg/internal/errors"
	"userreg/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
// Updates are not wrapped in a transaction or version check: the later write wins.
type accountService struct {
	accountRepo repository.AccountRepository
	publisher   service.EventPublisher
	logger      *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	AccountRepo repository.AccountRepository
	Publisher   service.EventPublisher
	Logger      *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		accountRepo: params.AccountRepo,
		publisher:   params.Publisher,
		logger:      params.Logger,
	}
}

func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *accountService) GetByID(ctx context.Context, accountID uuid.UUID) (*entity.Account, error) {
	account, err := srv.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return nil, mapLookupError(err, "failed to find account by id")
	}

	return account, nil
}

func (srv *accountService) GetByUsername(ctx context.Context, username string) (*entity.Account, error) {
	account, err := srv.accountRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, mapLookupError(err, "failed to find account by username")
	}

	return account, nil
}

func (srv *accountService) ListAll(ctx context.Context) ([]*entity.Account, error) {
	accounts, err := srv.accountRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list accounts")
	}

	return accounts, nil
}

// DeleteByID removes the account and its owned rows, then announces the deletion.
func (srv *accountService) DeleteByID(ctx context.Context, accountID uuid.UUID) error {
	account, err := srv.GetByID(ctx, accountID)
	if err != nil {
		return err
	}

	if err := srv.accountRepo.DeleteByID(ctx, accountID); err != nil {
		return mapLookupError(err, "failed to delete account")
	}

	srv.log(ctx).Info("Account deleted", slog.Any("accountID", accountID))
	publishAccountEvent(ctx, srv.publisher, srv.log(ctx), service.AccountDeleted, account)

	return nil
}

// UpdatePersonalInfoField applies mutate to the loaded PersonalInfo and persists only that row.
func (srv *accountService) UpdatePersonalInfoField(ctx context.Context, accountID uuid.UUID, mutate entity.PersonalInfoMutation) (*entity.Account, error) {
	account, err := srv.loadAggregate(ctx, accountID)
	if err != nil {
		return nil, err
	}

	mutate(account.PersonalInfo)

	if err := srv.accountRepo.UpdatePersonalInfo(ctx, account); err != nil {
		srv.log(ctx).Error("Failed to update personal info", slog.Any("accountID", accountID), slog.Any("error", err))

		return nil, mapLookupError(err, "failed to update personal info")
	}

	return account, nil
}

// UpdateAddressField applies mutate to the loaded Address and persists only that row.
func (srv *accountService) UpdateAddressField(ctx context.Context, accountID uuid.UUID, mutate entity.AddressMutation) (*entity.Account, error) {
	account, err := srv.loadAggregate(ctx, accountID)
	if err != nil {
		return nil, err
	}

	mutate(account.PersonalInfo.Address)

	if err := srv.accountRepo.UpdateAddress(ctx, account); err != nil {
		srv.log(ctx).Error("Failed to update address", slog.Any("accountID", accountID), slog.Any("error", err))

		return nil, mapLookupError(err, "failed to update address")
	}

	return account, nil
}

func (srv *accountService) UpdateFirstName(ctx context.Context, accountID uuid.UUID, firstName string) (*entity.Account, error) {
	return srv.UpdatePersonalInfoField(ctx, accountID, entity.SetFirstName(firstName))
}

func (srv *accountService) UpdateSurname(ctx context.Context, accountID uuid.UUID, surname string) (*entity.Account, error) {
	return srv.UpdatePersonalInfoField(ctx, accountID, entity.SetSurname(surname))
}

func (srv *accountService) UpdatePersonalIdentificationNumber(ctx context.Context, accountID uuid.UUID, pin string) (*entity.Account, error) {
	return srv.UpdatePersonalInfoField(ctx, accountID, entity.SetPersonalIdentificationNumber(pin))
}

func (srv *accountService) UpdatePhoneNumber(ctx context.Context, accountID uuid.UUID, phoneNumber string) (*entity.Account, error) {
	return srv.UpdatePersonalInfoField(ctx, accountID, entity.SetPhoneNumber(phoneNumber))
}

func (srv *accountService) UpdateEmail(ctx context.Context, accountID uuid.UUID, email string) (*entity.Account, error) {
	return srv.UpdatePersonalInfoField(ctx, accountID, entity.SetEmail(email))
}

func (srv *accountService) UpdateProfilePicture(ctx context.Context, accountID uuid.UUID, picture []byte) (*entity.Account, error) {
	return srv.UpdatePersonalInfoField(ctx, accountID, entity.SetProfilePicture(picture))
}

func (srv *accountService) UpdateCity(ctx context.Context, accountID uuid.UUID, city string) (*entity.Account, error) {
	return srv.UpdateAddressField(ctx, accountID, entity.SetCity(city))
}

func (srv *accountService) UpdateStreet(ctx context.Context, accountID uuid.UUID, street string) (*entity.Account, error) {
	return srv.UpdateAddressField(ctx, accountID, entity.SetStreet(street))
}

func (srv *accountService) UpdateHouseNumber(ctx context.Context, accountID uuid.UUID, houseNumber string) (*entity.Account, error) {
	return srv.UpdateAddressField(ctx, accountID, entity.SetHouseNumber(houseNumber))
}

func (srv *accountService) UpdateApartmentNumber(ctx context.Context, accountID uuid.UUID, apartmentNumber string) (*entity.Account, error) {
	return srv.UpdateAddressField(ctx, accountID, entity.SetApartmentNumber(apartmentNumber))
}

func (srv *accountService) loadAggregate(ctx context.Context, accountID uuid.UUID) (*entity.Account, error) {
	account, err := srv.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if !account.IsComplete() {
		srv.log(ctx).Error("Account aggregate is incomplete", slog.Any("accountID", accountID))

		return nil, errors.Wrap(domainerrors.ErrInternalError, "account aggregate is incomplete")
	}

	return account, nil
}

// mapLookupError turns the repository's missing-row sentinel into the NotFound domain error.
func mapLookupError(err error, message string) error {
	if errors.Is(err, repository.ErrAccountNotFound) {
		return errors.Wrap(domainerrors.ErrNotFound, "account not found")
	}

	return errors.Wrap(err, message)
}
