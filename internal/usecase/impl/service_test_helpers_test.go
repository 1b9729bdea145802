package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"userreg/internal/domain/entity"
	"userreg/internal/domain/repository"
	"userreg/internal/usecase"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newRegisterInput(username, password string) *usecase.RegisterInput {
	return &usecase.RegisterInput{
		Username:                     username,
		Password:                     password,
		FirstName:                    "John",
		Surname:                      "Doe",
		PersonalIdentificationNumber: "90010112345",
		PhoneNumber:                  "+48123456789",
		Email:                        "john@example.com",
		ProfilePicture:               []byte("picture"),
		City:                         "Shelbyville",
		Street:                       "Main Street",
		HouseNumber:                  "12",
		ApartmentNumber:              "3",
	}
}

// memoryAccountRepository is an in-process AccountRepository keeping deep copies of each aggregate.
type memoryAccountRepository struct {
	mu       sync.Mutex
	accounts map[uuid.UUID]*entity.Account
}

func newMemoryAccountRepository() *memoryAccountRepository {
	return &memoryAccountRepository{accounts: make(map[uuid.UUID]*entity.Account)}
}

func (r *memoryAccountRepository) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(r)
}

func (r *memoryAccountRepository) NewAccountRepository() repository.AccountRepository {
	return r
}

func (r *memoryAccountRepository) FindByUsername(_ context.Context, username string) (*entity.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, account := range r.accounts {
		if account.Username == username {
			return cloneAccount(account), nil
		}
	}

	return nil, repository.ErrAccountNotFound
}

func (r *memoryAccountRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.accounts[id]
	if !ok {
		return nil, repository.ErrAccountNotFound
	}

	return cloneAccount(account), nil
}

func (r *memoryAccountRepository) ListAll(_ context.Context) ([]*entity.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	accounts := make([]*entity.Account, 0, len(r.accounts))
	for _, account := range r.accounts {
		accounts = append(accounts, cloneAccount(account))
	}

	return accounts, nil
}

func (r *memoryAccountRepository) Insert(_ context.Context, account *entity.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.accounts {
		if existing.Username == account.Username {
			return repository.ErrUsernameTaken
		}
	}
	r.accounts[account.ID] = cloneAccount(account)

	return nil
}

func (r *memoryAccountRepository) UpdatePersonalInfo(_ context.Context, account *entity.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.accounts[account.ID]
	if !ok {
		return repository.ErrAccountNotFound
	}
	address := stored.PersonalInfo.Address
	info := *account.PersonalInfo
	info.Address = address
	stored.PersonalInfo = &info

	return nil
}

func (r *memoryAccountRepository) UpdateAddress(_ context.Context, account *entity.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.accounts[account.ID]
	if !ok {
		return repository.ErrAccountNotFound
	}
	address := *account.PersonalInfo.Address
	stored.PersonalInfo.Address = &address

	return nil
}

func (r *memoryAccountRepository) UpdateRole(_ context.Context, id uuid.UUID, role entity.Role) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.accounts[id]
	if !ok {
		return repository.ErrAccountNotFound
	}
	stored.Role = role

	return nil
}

func (r *memoryAccountRepository) DeleteByID(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.accounts[id]; !ok {
		return repository.ErrAccountNotFound
	}
	delete(r.accounts, id)

	return nil
}

func cloneAccount(account *entity.Account) *entity.Account {
	cloned := *account
	if account.PersonalInfo != nil {
		info := *account.PersonalInfo
		if info.Address != nil {
			address := *info.Address
			info.Address = &address
		}
		cloned.PersonalInfo = &info
	}

	return &cloned
}
