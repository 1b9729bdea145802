package impl

import (
	"context"
	"testing"

	"userreg/internal/domain/entity"
	domainerrors "userreg/internal/domain/errors"
	"userreg/internal/domain/repository"
	"userreg/internal/domain/service"
	"userreg/internal/errors"
	mockRepo "userreg/internal/mocks/repository"
	mockService "userreg/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type accountServiceFixtures struct {
	service   *accountService
	repo      *mockRepo.MockAccountRepository
	publisher *mockService.MockEventPublisher
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	repo := mockRepo.NewMockAccountRepository(t)
	publisher := mockService.NewMockEventPublisher(t)

	svc := NewAccountService(AccountServiceParams{
		AccountRepo: repo,
		Publisher:   publisher,
		Logger:      newDiscardLogger(),
	})

	return accountServiceFixtures{
		service:   svc.(*accountService),
		repo:      repo,
		publisher: publisher,
	}
}

func newStoredAccount(username string) *entity.Account {
	return entity.NewAccount(username, []byte("hash"), []byte("salt"), entity.RoleUser,
		entity.PersonalInfo{
			FirstName:                    "John",
			Surname:                      "Doe",
			PersonalIdentificationNumber: "90010112345",
			PhoneNumber:                  "+48123456789",
			Email:                        "john@example.com",
		},
		entity.Address{
			City:            "Shelbyville",
			Street:          "Main Street",
			HouseNumber:     "12",
			ApartmentNumber: "3",
		},
	)
}

func TestAccountService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		fx := createTestAccountService(t)
		stored := newStoredAccount("john")
		fx.repo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)

		account, err := fx.service.GetByID(ctx, stored.ID)

		require.NoError(t, err)
		assert.Same(t, stored, account)
	})

	t.Run("not found", func(t *testing.T) {
		fx := createTestAccountService(t)
		id := uuid.New()
		fx.repo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrAccountNotFound)

		account, err := fx.service.GetByID(ctx, id)

		assert.Nil(t, account)
		assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
	})

	t.Run("database failure", func(t *testing.T) {
		fx := createTestAccountService(t)
		id := uuid.New()
		dbErr := errors.New("timeout")
		fx.repo.EXPECT().FindByID(ctx, id).Return(nil, dbErr)

		_, err := fx.service.GetByID(ctx, id)

		assert.True(t, errors.Is(err, dbErr))
		assert.False(t, errors.Is(err, domainerrors.ErrNotFound))
	})
}

func TestAccountService_GetByUsername_NotFound(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	fx.repo.EXPECT().FindByUsername(ctx, "ghost").Return(nil, repository.ErrAccountNotFound)

	_, err := fx.service.GetByUsername(ctx, "ghost")

	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestAccountService_ListAll(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	accounts := []*entity.Account{newStoredAccount("a"), newStoredAccount("b")}
	fx.repo.EXPECT().ListAll(ctx).Return(accounts, nil)

	got, err := fx.service.ListAll(ctx)

	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestAccountService_UpdateFirstName_TouchesOnlyPersonalInfo(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	stored := newStoredAccount("john")
	before := cloneAccount(stored)

	fx.repo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)
	fx.repo.EXPECT().UpdatePersonalInfo(ctx, mock.AnythingOfType("*entity.Account")).Return(nil)

	account, err := fx.service.UpdateFirstName(ctx, stored.ID, "Bob")

	require.NoError(t, err)
	assert.Equal(t, "Bob", account.PersonalInfo.FirstName)
	assert.Equal(t, before.PersonalInfo.Surname, account.PersonalInfo.Surname)
	assert.Equal(t, before.PersonalInfo.Email, account.PersonalInfo.Email)
	assert.Equal(t, before.PersonalInfo.Address, account.PersonalInfo.Address)
	fx.repo.AssertNotCalled(t, "UpdateAddress", mock.Anything, mock.Anything)
}

func TestAccountService_UpdateCity_TouchesOnlyAddress(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	stored := newStoredAccount("john")
	before := cloneAccount(stored)

	fx.repo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)
	fx.repo.EXPECT().UpdateAddress(ctx, mock.AnythingOfType("*entity.Account")).Return(nil)

	account, err := fx.service.UpdateCity(ctx, stored.ID, "Springfield")

	require.NoError(t, err)
	assert.Equal(t, "Springfield", account.PersonalInfo.Address.City)
	assert.Equal(t, before.PersonalInfo.Address.Street, account.PersonalInfo.Address.Street)
	assert.Equal(t, before.PersonalInfo.FirstName, account.PersonalInfo.FirstName)
	fx.repo.AssertNotCalled(t, "UpdatePersonalInfo", mock.Anything, mock.Anything)
}

func TestAccountService_Update_NotFound(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	id := uuid.New()
	fx.repo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrAccountNotFound).Twice()

	_, err := fx.service.UpdateEmail(ctx, id, "x@example.com")
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))

	_, err = fx.service.UpdateStreet(ctx, id, "Elm")
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestAccountService_Update_IncompleteAggregate(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	stored := &entity.Account{ID: uuid.New(), Username: "broken"}
	fx.repo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)

	_, err := fx.service.UpdateSurname(ctx, stored.ID, "Smith")

	assert.True(t, errors.Is(err, domainerrors.ErrInternalError))
}

func TestAccountService_Update_PersistFailure(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	stored := newStoredAccount("john")
	dbErr := errors.New("write failed")

	fx.repo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)
	fx.repo.EXPECT().UpdatePersonalInfo(ctx, stored).Return(dbErr)

	_, err := fx.service.UpdatePhoneNumber(ctx, stored.ID, "+48111222333")

	assert.True(t, errors.Is(err, dbErr))
}

func TestAccountService_Specializations(t *testing.T) {
	ctx := context.Background()

	personalInfoCases := []struct {
		name   string
		update func(*accountService, uuid.UUID) (*entity.Account, error)
		read   func(*entity.Account) any
		want   any
	}{
		{
			name: "surname",
			update: func(s *accountService, id uuid.UUID) (*entity.Account, error) {
				return s.UpdateSurname(ctx, id, "Smith")
			},
			read: func(a *entity.Account) any { return a.PersonalInfo.Surname },
			want: "Smith",
		},
		{
			name: "pin",
			update: func(s *accountService, id uuid.UUID) (*entity.Account, error) {
				return s.UpdatePersonalIdentificationNumber(ctx, id, "123")
			},
			read: func(a *entity.Account) any { return a.PersonalInfo.PersonalIdentificationNumber },
			want: "123",
		},
		{
			name: "phone",
			update: func(s *accountService, id uuid.UUID) (*entity.Account, error) {
				return s.UpdatePhoneNumber(ctx, id, "+1555")
			},
			read: func(a *entity.Account) any { return a.PersonalInfo.PhoneNumber },
			want: "+1555",
		},
		{
			name: "email",
			update: func(s *accountService, id uuid.UUID) (*entity.Account, error) {
				return s.UpdateEmail(ctx, id, "b@c.io")
			},
			read: func(a *entity.Account) any { return a.PersonalInfo.Email },
			want: "b@c.io",
		},
		{
			name: "picture",
			update: func(s *accountService, id uuid.UUID) (*entity.Account, error) {
				return s.UpdateProfilePicture(ctx, id, []byte{1, 2, 3})
			},
			read: func(a *entity.Account) any { return a.PersonalInfo.ProfilePicture },
			want: []byte{1, 2, 3},
		},
	}

	for _, tc := range personalInfoCases {
		t.Run(tc.name, func(t *testing.T) {
			fx := createTestAccountService(t)
			stored := newStoredAccount("john")
			fx.repo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)
			fx.repo.EXPECT().UpdatePersonalInfo(ctx, stored).Return(nil)

			account, err := tc.update(fx.service, stored.ID)

			require.NoError(t, err)
			assert.Equal(t, tc.want, tc.read(account))
		})
	}

	addressCases := []struct {
		name   string
		update func(*accountService, uuid.UUID) (*entity.Account, error)
		read   func(*entity.Address) string
		want   string
	}{
		{
			name: "street",
			update: func(s *accountService, id uuid.UUID) (*entity.Account, error) {
				return s.UpdateStreet(ctx, id, "Elm")
			},
			read: func(a *entity.Address) string { return a.Street },
			want: "Elm",
		},
		{
			name: "house number",
			update: func(s *accountService, id uuid.UUID) (*entity.Account, error) {
				return s.UpdateHouseNumber(ctx, id, "7A")
			},
			read: func(a *entity.Address) string { return a.HouseNumber },
			want: "7A",
		},
		{
			name: "apartment number",
			update: func(s *accountService, id uuid.UUID) (*entity.Account, error) {
				return s.UpdateApartmentNumber(ctx, id, "42")
			},
			read: func(a *entity.Address) string { return a.ApartmentNumber },
			want: "42",
		},
	}

	for _, tc := range addressCases {
		t.Run(tc.name, func(t *testing.T) {
			fx := createTestAccountService(t)
			stored := newStoredAccount("john")
			fx.repo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)
			fx.repo.EXPECT().UpdateAddress(ctx, stored).Return(nil)

			account, err := tc.update(fx.service, stored.ID)

			require.NoError(t, err)
			assert.Equal(t, tc.want, tc.read(account.PersonalInfo.Address))
		})
	}
}

func TestAccountService_LastWriteWins(t *testing.T) {
	memory := newMemoryAccountRepository()
	svc := NewAccountService(AccountServiceParams{AccountRepo: memory, Logger: newDiscardLogger()})
	ctx := context.Background()
	stored := newStoredAccount("john")
	require.NoError(t, memory.Insert(ctx, stored))

	_, err := svc.UpdateFirstName(ctx, stored.ID, "First")
	require.NoError(t, err)
	_, err = svc.UpdateFirstName(ctx, stored.ID, "Second")
	require.NoError(t, err)
	_, err = svc.UpdateCity(ctx, stored.ID, "Springfield")
	require.NoError(t, err)

	reloaded, err := svc.GetByID(ctx, stored.ID)
	require.NoError(t, err)
	assert.Equal(t, "Second", reloaded.PersonalInfo.FirstName)
	assert.Equal(t, "Springfield", reloaded.PersonalInfo.Address.City)
	assert.Equal(t, "Doe", reloaded.PersonalInfo.Surname)
}

func TestAccountService_DeleteByID(t *testing.T) {
	ctx := context.Background()

	t.Run("publishes deletion", func(t *testing.T) {
		fx := createTestAccountService(t)
		stored := newStoredAccount("john")
		fx.repo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)
		fx.repo.EXPECT().DeleteByID(ctx, stored.ID).Return(nil)
		fx.publisher.EXPECT().
			PublishAccountEvent(ctx, mock.MatchedBy(func(event *service.AccountEvent) bool {
				return event.Type == service.AccountDeleted && event.AccountID == stored.ID.String()
			})).
			Return(nil)

		require.NoError(t, fx.service.DeleteByID(ctx, stored.ID))
	})

	t.Run("publisher failure is ignored", func(t *testing.T) {
		fx := createTestAccountService(t)
		stored := newStoredAccount("john")
		fx.repo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)
		fx.repo.EXPECT().DeleteByID(ctx, stored.ID).Return(nil)
		fx.publisher.EXPECT().PublishAccountEvent(ctx, mock.Anything).Return(errors.New("broker down"))

		assert.NoError(t, fx.service.DeleteByID(ctx, stored.ID))
	})

	t.Run("missing account", func(t *testing.T) {
		fx := createTestAccountService(t)
		id := uuid.New()
		fx.repo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrAccountNotFound)

		err := fx.service.DeleteByID(ctx, id)

		assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
		fx.repo.AssertNotCalled(t, "DeleteByID", mock.Anything, mock.Anything)
	})

	t.Run("removes the aggregate", func(t *testing.T) {
		memory := newMemoryAccountRepository()
		svc := NewAccountService(AccountServiceParams{AccountRepo: memory, Logger: newDiscardLogger()})
		stored := newStoredAccount("john")
		require.NoError(t, memory.Insert(ctx, stored))

		require.NoError(t, svc.DeleteByID(ctx, stored.ID))

		_, err := svc.GetByID(ctx, stored.ID)
		assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
	})
}
