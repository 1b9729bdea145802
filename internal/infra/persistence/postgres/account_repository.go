// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"userreg/internal/domain/entity"
	domainerrors "userreg/internal/domain/errors"
	"userreg/internal/domain/repository"
	"userreg/internal/errors"
	"userreg/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const preloadAggregate = "PersonalInfo.Address"

// accountRepository implements repository.AccountRepository using GORM.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

// FindByUsername retrieves the aggregate whose username matches exactly.
func (repo *accountRepository) FindByUsername(ctx context.Context, username string) (*entity.Account, error) {
	var accountM model.AccountModel
	err := repo.db.WithContext(ctx).
		Preload(preloadAggregate).
		Where("username = ?", username).
		First(&accountM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find account by username")
	}

	return toAccountDomain(&accountM)
}

// FindByID retrieves the aggregate by account id.
func (repo *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	var accountM model.AccountModel
	err := repo.db.WithContext(ctx).
		Preload(preloadAggregate).
		Where("id = ?", id).
		First(&accountM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find account by id")
	}

	return toAccountDomain(&accountM)
}

// ListAll returns every aggregate ordered by username.
func (repo *accountRepository) ListAll(ctx context.Context) ([]*entity.Account, error) {
	var accountModels []*model.AccountModel
	err := repo.db.WithContext(ctx).
		Preload(preloadAggregate).
		Order("username").
		Find(&accountModels).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list accounts")
	}

	accounts := make([]*entity.Account, 0, len(accountModels))
	for _, accountM := range accountModels {
		account, err := toAccountDomain(accountM)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}

	return accounts, nil
}

// Insert writes the three rows of the aggregate in one transaction.
// When called through a TransactionManager factory the inner transaction becomes a savepoint.
func (repo *accountRepository) Insert(ctx context.Context, account *entity.Account) error {
	if !account.IsComplete() {
		return domainerrors.ErrAccountCreationFailed.WrapMessage("account aggregate is incomplete")
	}

	accountM := fromAccountDomain(account)
	infoM := fromPersonalInfoDomain(account.PersonalInfo)
	addressM := fromAddressDomain(account.PersonalInfo.Address)

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(accountM).Error; err != nil {
			return err
		}
		if err := tx.Omit(clause.Associations).Create(infoM).Error; err != nil {
			return err
		}

		return tx.Create(addressM).Error
	})
	if err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrUsernameTaken
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrAccountCreationFailed.WrapMessage("missing required account information")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrAccountCreationFailed.WrapMessage("invalid foreign key reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to insert account")
	}

	account.CreatedAt = accountM.CreatedAt
	account.UpdatedAt = accountM.UpdatedAt

	return nil
}

// UpdatePersonalInfo writes every PersonalInfo column, leaving the account and address rows untouched.
func (repo *accountRepository) UpdatePersonalInfo(ctx context.Context, account *entity.Account) error {
	if account == nil || account.PersonalInfo == nil {
		return domainerrors.ErrAccountUpdateFailed.WrapMessage("personal info is missing")
	}

	infoM := fromPersonalInfoDomain(account.PersonalInfo)
	result := repo.db.WithContext(ctx).
		Model(&model.PersonalInfoModel{}).
		Where("id = ?", infoM.ID).
		Select("FirstName", "Surname", "PersonalIdentificationNumber", "PhoneNumber", "Email", "ProfilePicture", "UpdatedAt").
		Updates(infoM)

	return repo.checkUpdate(result, "failed to update personal info")
}

// UpdateAddress writes every Address column, leaving the account and personal info rows untouched.
func (repo *accountRepository) UpdateAddress(ctx context.Context, account *entity.Account) error {
	if !account.IsComplete() {
		return domainerrors.ErrAccountUpdateFailed.WrapMessage("address is missing")
	}

	addressM := fromAddressDomain(account.PersonalInfo.Address)
	result := repo.db.WithContext(ctx).
		Model(&model.AddressModel{}).
		Where("id = ?", addressM.ID).
		Select("City", "Street", "HouseNumber", "ApartmentNumber", "UpdatedAt").
		Updates(addressM)

	return repo.checkUpdate(result, "failed to update address")
}

// UpdateRole changes only the role column of the account.
func (repo *accountRepository) UpdateRole(ctx context.Context, id uuid.UUID, role entity.Role) error {
	if !role.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails("unknown role " + role.String())
	}

	result := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("id = ?", id).
		Update("role", role.String())

	return repo.checkUpdate(result, "failed to update role")
}

// DeleteByID removes address, personal info and account rows in one transaction.
func (repo *accountRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var personalInfoIDs []uuid.UUID
		if err := tx.Model(&model.PersonalInfoModel{}).
			Where("account_id = ?", id).
			Pluck("id", &personalInfoIDs).Error; err != nil {
			return err
		}

		if len(personalInfoIDs) > 0 {
			if err := tx.Where("personal_info_id IN ?", personalInfoIDs).
				Delete(&model.AddressModel{}).Error; err != nil {
				return err
			}
			if err := tx.Where("account_id = ?", id).
				Delete(&model.PersonalInfoModel{}).Error; err != nil {
				return err
			}
		}

		result := tx.Where("id = ?", id).Delete(&model.AccountModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return repository.ErrAccountNotFound
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return repository.ErrAccountNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to delete account")
	}

	return nil
}

func (repo *accountRepository) checkUpdate(result *gorm.DB, details string) error {
	if result.Error != nil {
		if isNotNullConstraintViolation(result.Error) {
			return domainerrors.ErrAccountUpdateFailed.WrapMessage("missing required account information")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, details)
	}
	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

func toAccountDomain(data *model.AccountModel) (*entity.Account, error) {
	if data == nil {
		return nil, nil
	}

	role, err := entity.ParseRole(data.Role)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "account "+data.ID.String()+" has an unknown role")
	}

	return &entity.Account{
		ID:           data.ID,
		Username:     data.Username,
		PasswordHash: data.PasswordHash,
		Salt:         data.Salt,
		Role:         role,
		PersonalInfo: toPersonalInfoDomain(data.PersonalInfo),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}, nil
}

func toPersonalInfoDomain(data *model.PersonalInfoModel) *entity.PersonalInfo {
	if data == nil {
		return nil
	}

	return &entity.PersonalInfo{
		ID:                           data.ID,
		AccountID:                    data.AccountID,
		FirstName:                    data.FirstName,
		Surname:                      data.Surname,
		PersonalIdentificationNumber: data.PersonalIdentificationNumber,
		PhoneNumber:                  data.PhoneNumber,
		Email:                        data.Email,
		ProfilePicture:               data.ProfilePicture,
		Address:                      toAddressDomain(data.Address),
	}
}

func toAddressDomain(data *model.AddressModel) *entity.Address {
	if data == nil {
		return nil
	}

	return &entity.Address{
		ID:              data.ID,
		PersonalInfoID:  data.PersonalInfoID,
		City:            data.City,
		Street:          data.Street,
		HouseNumber:     data.HouseNumber,
		ApartmentNumber: data.ApartmentNumber,
	}
}

// fromAccountDomain maps only the account row; sub-entities are written separately.
func fromAccountDomain(data *entity.Account) *model.AccountModel {
	return &model.AccountModel{
		ID:           data.ID,
		Username:     data.Username,
		PasswordHash: data.PasswordHash,
		Salt:         data.Salt,
		Role:         data.Role.String(),
	}
}

func fromPersonalInfoDomain(data *entity.PersonalInfo) *model.PersonalInfoModel {
	return &model.PersonalInfoModel{
		ID:                           data.ID,
		AccountID:                    data.AccountID,
		FirstName:                    data.FirstName,
		Surname:                      data.Surname,
		PersonalIdentificationNumber: data.PersonalIdentificationNumber,
		PhoneNumber:                  data.PhoneNumber,
		Email:                        data.Email,
		ProfilePicture:               data.ProfilePicture,
	}
}

func fromAddressDomain(data *entity.Address) *model.AddressModel {
	return &model.AddressModel{
		ID:              data.ID,
		PersonalInfoID:  data.PersonalInfoID,
		City:            data.City,
		Street:          data.Street,
		HouseNumber:     data.HouseNumber,
		ApartmentNumber: data.ApartmentNumber,
	}
}
