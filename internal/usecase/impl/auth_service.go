// Package impl contains the implementation of the application's business logic.
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

	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager   repository.TransactionManager
	accountRepo repository.AccountRepository
	hasher      service.CredentialHasher
	publisher   service.EventPublisher
	logger      *slog.Logger

	// decoy credentials verified for unknown usernames so both login failures cost one HMAC
	decoyHash []byte
	decoySalt []byte
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	AccountRepo repository.AccountRepository
	Hasher      service.CredentialHasher
	Publisher   service.EventPublisher
	Logger      *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) (usecase.AuthUsecase, error) {
	decoyHash, decoySalt, err := params.Hasher.Hash("")
	if err != nil {
		return nil, errors.Wrap(err, "failed to prepare decoy credentials")
	}

	return &authService{
		txManager:   params.TxManager,
		accountRepo: params.AccountRepo,
		hasher:      params.Hasher,
		publisher:   params.Publisher,
		logger:      params.Logger,
		decoyHash:   decoyHash,
		decoySalt:   decoySalt,
	}, nil
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register checks the username, hashes the password and inserts the aggregate inside one transaction.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.Account, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("registration input is required")
	}
	if len(input.ProfilePicture) == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("profilePicture is required")
	}

	srv.log(ctx).Info("Starting registration", slog.String("username", input.Username))

	var registered *entity.Account
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.NewAccountRepository()

		existing, err := accountRepo.FindByUsername(ctx, input.Username)
		switch {
		case err == nil && existing != nil:
			return domainerrors.ErrDuplicateUsername
		case err != nil && !errors.Is(err, repository.ErrAccountNotFound):
			return errors.Wrap(err, "failed to check username")
		}

		hash, salt, err := srv.hasher.Hash(input.Password)
		if err != nil {
			return errors.Wrap(domainerrors.ErrInternalError, err.Error())
		}

		account := buildAccount(input, hash, salt)
		if err := accountRepo.Insert(ctx, account); err != nil {
			if errors.Is(err, repository.ErrUsernameTaken) {
				return domainerrors.ErrDuplicateUsername
			}

			return errors.Wrap(err, "failed to insert account")
		}

		registered = account

		return nil
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrDuplicateUsername) {
			srv.log(ctx).Warn("Registration rejected, username taken", slog.String("username", input.Username))
		} else {
			srv.log(ctx).Error("Failed to execute registration transaction", slog.String("username", input.Username), slog.Any("error", err))
		}

		return nil, errors.Wrap(err, "failed to register account")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("accountID", registered.ID))
	publishAccountEvent(ctx, srv.publisher, srv.log(ctx), service.AccountRegistered, registered)

	return registered, nil
}

// Login verifies the password against the stored hash and salt.
func (srv *authService) Login(ctx context.Context, username, password string) (*entity.Account, error) {
	account, err := srv.accountRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			srv.hasher.Verify(password, srv.decoyHash, srv.decoySalt)
			srv.log(ctx).Warn("Login failed", slog.String("username", username))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to find account")
	}

	if !srv.hasher.Verify(password, account.PasswordHash, account.Salt) {
		srv.log(ctx).Warn("Login failed", slog.String("username", username))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	return account, nil
}

func buildAccount(input *usecase.RegisterInput, hash, salt []byte) *entity.Account {
	return entity.NewAccount(input.Username, hash, salt, entity.RoleUser,
		entity.PersonalInfo{
			FirstName:                    input.FirstName,
			Surname:                      input.Surname,
			PersonalIdentificationNumber: input.PersonalIdentificationNumber,
			PhoneNumber:                  input.PhoneNumber,
			Email:                        input.Email,
			ProfilePicture:               input.ProfilePicture,
		},
		entity.Address{
			City:            input.City,
			Street:          input.Street,
			HouseNumber:     input.HouseNumber,
			ApartmentNumber: input.ApartmentNumber,
		},
	)
}
