package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccount_LinksAggregate(t *testing.T) {
	account := NewAccount("bob", []byte("hash"), []byte("salt"), RoleUser,
		PersonalInfo{FirstName: "Bob", Surname: "Builder"},
		Address{City: "Springfield", Street: "Evergreen Terrace"},
	)

	require.True(t, account.IsComplete())
	assert.NotEqual(t, uuid.Nil, account.ID)
	assert.NotEqual(t, uuid.Nil, account.PersonalInfo.ID)
	assert.NotEqual(t, uuid.Nil, account.PersonalInfo.Address.ID)
	assert.Equal(t, account.ID, account.PersonalInfo.AccountID)
	assert.Equal(t, account.PersonalInfo.ID, account.PersonalInfo.Address.PersonalInfoID)
	assert.Equal(t, "Bob", account.PersonalInfo.FirstName)
	assert.Equal(t, "Springfield", account.PersonalInfo.Address.City)
}

func TestNewAccount_FreshIdsPerCall(t *testing.T) {
	a := NewAccount("a", nil, nil, RoleUser, PersonalInfo{}, Address{})
	b := NewAccount("b", nil, nil, RoleUser, PersonalInfo{}, Address{})

	assert.NotEqual(t, a.ID, b.ID)
	assert.NotEqual(t, a.PersonalInfo.ID, b.PersonalInfo.ID)
	assert.NotEqual(t, a.PersonalInfo.Address.ID, b.PersonalInfo.Address.ID)
}

func TestMutations_TouchOneField(t *testing.T) {
	info := PersonalInfo{FirstName: "John", Surname: "Doe", Email: "john@example.com"}
	SetFirstName("Jane")(&info)
	assert.Equal(t, PersonalInfo{FirstName: "Jane", Surname: "Doe", Email: "john@example.com"}, info)

	address := Address{City: "Shelbyville", Street: "Main", HouseNumber: "1", ApartmentNumber: "2"}
	SetCity("Springfield")(&address)
	assert.Equal(t, Address{City: "Springfield", Street: "Main", HouseNumber: "1", ApartmentNumber: "2"}, address)
}

func TestRole(t *testing.T) {
	assert.True(t, RoleUser.IsValid())
	assert.True(t, RoleAdmin.IsValid())
	assert.False(t, Role("Root").IsValid())

	assert.True(t, RoleAdmin.CanManageAccounts())
	assert.False(t, RoleUser.CanManageAccounts())

	role, err := ParseRole("Admin")
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, role)

	_, err = ParseRole("admin")
	assert.Error(t, err)
}
