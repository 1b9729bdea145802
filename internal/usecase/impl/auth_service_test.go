package impl

import (
	"context"
	"testing"

	"userreg/internal/domain/entity"
	domainerrors "userreg/internal/domain/errors"
	"userreg/internal/domain/repository"
	"userreg/internal/domain/service"
	"userreg/internal/errors"
	"userreg/internal/infra/auth"
	mockRepo "userreg/internal/mocks/repository"
	mockService "userreg/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service   *authService
	txManager *mockRepo.MockTransactionManager
	factory   *mockRepo.MockRepositoryFactory
	repo      *mockRepo.MockAccountRepository
	hasher    *mockService.MockCredentialHasher
	publisher *mockService.MockEventPublisher
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	repo := mockRepo.NewMockAccountRepository(t)
	hasher := mockService.NewMockCredentialHasher(t)
	publisher := mockService.NewMockEventPublisher(t)

	hasher.EXPECT().Hash("").Return([]byte("decoy-hash"), []byte("decoy-salt"), nil).Once()

	svc, err := NewAuthService(AuthServiceParams{
		TxManager:   txManager,
		AccountRepo: repo,
		Hasher:      hasher,
		Publisher:   publisher,
		Logger:      newDiscardLogger(),
	})
	require.NoError(t, err)

	return authServiceFixtures{
		service:   svc.(*authService),
		txManager: txManager,
		factory:   factory,
		repo:      repo,
		hasher:    hasher,
		publisher: publisher,
	}
}

// onExecute runs the transaction callback against the fixture's mock factory.
func (f authServiceFixtures) onExecute(ctx context.Context) {
	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(f.factory)
		})
	f.factory.EXPECT().NewAccountRepository().Return(f.repo)
}

func newMemoryAuthService(t *testing.T, repo *memoryAccountRepository) *authService {
	t.Helper()

	svc, err := NewAuthService(AuthServiceParams{
		TxManager:   repo,
		AccountRepo: repo,
		Hasher:      auth.NewHMACHasher(),
		Logger:      newDiscardLogger(),
	})
	require.NoError(t, err)

	return svc.(*authService)
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	input := newRegisterInput("john", "s3cret!")

	fx.onExecute(ctx)
	fx.repo.EXPECT().FindByUsername(ctx, "john").Return(nil, repository.ErrAccountNotFound)
	fx.hasher.EXPECT().Hash("s3cret!").Return([]byte("hash"), []byte("salt"), nil)

	var inserted *entity.Account
	fx.repo.EXPECT().Insert(ctx, mock.AnythingOfType("*entity.Account")).
		Run(func(_ context.Context, account *entity.Account) { inserted = account }).
		Return(nil)
	fx.publisher.EXPECT().
		PublishAccountEvent(ctx, mock.MatchedBy(func(event *service.AccountEvent) bool {
			return event.Type == service.AccountRegistered && event.Username == "john"
		})).
		Return(nil)

	account, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	require.Same(t, inserted, account)
	assert.Equal(t, entity.RoleUser, account.Role)
	assert.Equal(t, []byte("hash"), account.PasswordHash)
	assert.Equal(t, []byte("salt"), account.Salt)
	require.True(t, account.IsComplete())
	assert.Equal(t, account.ID, account.PersonalInfo.AccountID)
	assert.Equal(t, account.PersonalInfo.ID, account.PersonalInfo.Address.PersonalInfoID)
	assert.Equal(t, "Shelbyville", account.PersonalInfo.Address.City)
	assert.Equal(t, "john@example.com", account.PersonalInfo.Email)
}

func TestAuthService_Register_DuplicateSkipsHashing(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.onExecute(ctx)
	fx.repo.EXPECT().FindByUsername(ctx, "john").Return(&entity.Account{Username: "john"}, nil)

	account, err := fx.service.Register(ctx, newRegisterInput("john", "whatever"))

	assert.Nil(t, account)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateUsername))
	fx.hasher.AssertNotCalled(t, "Hash", "whatever")
	fx.repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestAuthService_Register_InsertRaceMapsToDuplicate(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.onExecute(ctx)
	fx.repo.EXPECT().FindByUsername(ctx, "john").Return(nil, repository.ErrAccountNotFound)
	fx.hasher.EXPECT().Hash("pw").Return([]byte("hash"), []byte("salt"), nil)
	fx.repo.EXPECT().Insert(ctx, mock.AnythingOfType("*entity.Account")).Return(repository.ErrUsernameTaken)

	_, err := fx.service.Register(ctx, newRegisterInput("john", "pw"))

	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateUsername))
}

func TestAuthService_Register_LookupFailure(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	dbErr := errors.New("connection refused")

	fx.onExecute(ctx)
	fx.repo.EXPECT().FindByUsername(ctx, "john").Return(nil, dbErr)

	_, err := fx.service.Register(ctx, newRegisterInput("john", "pw"))

	assert.True(t, errors.Is(err, dbErr))
	assert.False(t, errors.Is(err, domainerrors.ErrDuplicateUsername))
}

func TestAuthService_Register_PublishFailureIsNotFatal(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.onExecute(ctx)
	fx.repo.EXPECT().FindByUsername(ctx, "john").Return(nil, repository.ErrAccountNotFound)
	fx.hasher.EXPECT().Hash("pw").Return([]byte("hash"), []byte("salt"), nil)
	fx.repo.EXPECT().Insert(ctx, mock.AnythingOfType("*entity.Account")).Return(nil)
	fx.publisher.EXPECT().PublishAccountEvent(ctx, mock.Anything).Return(errors.New("broker down"))

	account, err := fx.service.Register(ctx, newRegisterInput("john", "pw"))

	require.NoError(t, err)
	assert.NotNil(t, account)
}

func TestAuthService_Register_NilInput(t *testing.T) {
	fx := createTestAuthService(t)

	_, err := fx.service.Register(context.Background(), nil)

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestAuthService_Register_MissingPicture(t *testing.T) {
	fx := createTestAuthService(t)
	input := newRegisterInput("john", "pw")
	input.ProfilePicture = nil

	_, err := fx.service.Register(context.Background(), input)

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
	fx.hasher.AssertNotCalled(t, "Hash", "pw")
}

func TestAuthService_Login_UnknownUserVerifiesDecoy(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.repo.EXPECT().FindByUsername(ctx, "ghost").Return(nil, repository.ErrAccountNotFound)
	fx.hasher.EXPECT().Verify("x", []byte("decoy-hash"), []byte("decoy-salt")).Return(false)

	account, err := fx.service.Login(ctx, "ghost", "x")

	assert.Nil(t, account)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	stored := &entity.Account{Username: "john", PasswordHash: []byte("hash"), Salt: []byte("salt")}

	fx.repo.EXPECT().FindByUsername(ctx, "john").Return(stored, nil)
	fx.hasher.EXPECT().Verify("wrong", []byte("hash"), []byte("salt")).Return(false)

	account, err := fx.service.Login(ctx, "john", "wrong")

	assert.Nil(t, account)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_Login_LookupFailureIsNotInvalidCredentials(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.repo.EXPECT().FindByUsername(ctx, "john").Return(nil, errors.New("db down"))

	_, err := fx.service.Login(ctx, "john", "pw")

	assert.Error(t, err)
	assert.False(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_RegisterThenLogin(t *testing.T) {
	memory := newMemoryAccountRepository()
	svc := newMemoryAuthService(t, memory)
	ctx := context.Background()

	registered, err := svc.Register(ctx, newRegisterInput("u", "correct"))
	require.NoError(t, err)
	assert.NotEqual(t, []byte("correct"), registered.PasswordHash)
	assert.Len(t, memory.accounts, 1)

	account, err := svc.Login(ctx, "u", "correct")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, account.ID)

	_, err = svc.Login(ctx, "u", "wrong")
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))

	_, err = svc.Login(ctx, "nosuchuser", "x")
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_DuplicateRegistrationLeavesOriginalUntouched(t *testing.T) {
	memory := newMemoryAccountRepository()
	svc := newMemoryAuthService(t, memory)
	ctx := context.Background()

	original, err := svc.Register(ctx, newRegisterInput("u", "first"))
	require.NoError(t, err)

	second := newRegisterInput("u", "second")
	second.FirstName = "Impostor"
	_, err = svc.Register(ctx, second)
	require.True(t, errors.Is(err, domainerrors.ErrDuplicateUsername))

	stored, err := memory.FindByID(ctx, original.ID)
	require.NoError(t, err)
	assert.Equal(t, "John", stored.PersonalInfo.FirstName)
	assert.Equal(t, original.PasswordHash, stored.PasswordHash)
	assert.Len(t, memory.accounts, 1)

	_, err = svc.Login(ctx, "u", "first")
	assert.NoError(t, err)
}
