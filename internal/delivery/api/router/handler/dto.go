package handler

import (
	"time"

	"userreg/internal/domain/entity"

	"github.com/google/uuid"
)

// registerRequest is the multipart registration form. The picture travels as a separate file part.
type registerRequest struct {
	Username                     string `form:"username" validate:"required,max=50"`
	Password                     string `form:"password" validate:"required,notblank"`
	FirstName                    string `form:"firstName" validate:"required,notblank,max=150"`
	Surname                      string `form:"surname" validate:"required,notblank,max=150"`
	PersonalIdentificationNumber string `form:"personalIdentificationNumber" validate:"required,digits,max=50"`
	PhoneNumber                  string `form:"phoneNumber" validate:"required,max=20,phone"`
	Email                        string `form:"email" validate:"required,max=100,email_address"`
	City                         string `form:"city" validate:"required,notblank,max=100"`
	Street                       string `form:"street" validate:"required,notblank,max=100"`
	HouseNumber                  string `form:"houseNumber" validate:"required,notblank,max=100"`
	ApartmentNumber              string `form:"apartmentNumber" validate:"required,notblank,max=100"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required,max=50"`
	Password string `json:"password" validate:"required,notblank"`
}

// fieldUpdateRequest is the body of every single-field PUT; the rule depends on the route.
type fieldUpdateRequest struct {
	Value string `json:"value"`
}

// AccountResponse is the public view of an account. Credentials are never exposed.
type AccountResponse struct {
	ID           uuid.UUID             `json:"id"`
	Username     string                `json:"username"`
	Role         string                `json:"role"`
	PersonalInfo *PersonalInfoResponse `json:"personalInfo,omitempty"`
	CreatedAt    time.Time             `json:"createdAt"`
	UpdatedAt    time.Time             `json:"updatedAt"`
}

type PersonalInfoResponse struct {
	FirstName                    string           `json:"firstName"`
	Surname                      string           `json:"surname"`
	PersonalIdentificationNumber string           `json:"personalIdentificationNumber,omitempty"`
	PhoneNumber                  string           `json:"phoneNumber,omitempty"`
	Email                        string           `json:"email,omitempty"`
	ProfilePicture               []byte           `json:"profilePicture,omitempty"` // base64 in JSON
	Address                      *AddressResponse `json:"address,omitempty"`
}

type AddressResponse struct {
	City            string `json:"city"`
	Street          string `json:"street"`
	HouseNumber     string `json:"houseNumber"`
	ApartmentNumber string `json:"apartmentNumber"`
}

type LoginResponse struct {
	Token   string           `json:"token"`
	Account *AccountResponse `json:"account"`
}

func newAccountResponse(account *entity.Account) *AccountResponse {
	resp := &AccountResponse{
		ID:        account.ID,
		Username:  account.Username,
		Role:      account.Role.String(),
		CreatedAt: account.CreatedAt,
		UpdatedAt: account.UpdatedAt,
	}

	if info := account.PersonalInfo; info != nil {
		resp.PersonalInfo = &PersonalInfoResponse{
			FirstName:                    info.FirstName,
			Surname:                      info.Surname,
			PersonalIdentificationNumber: info.PersonalIdentificationNumber,
			PhoneNumber:                  info.PhoneNumber,
			Email:                        info.Email,
			ProfilePicture:               info.ProfilePicture,
		}
		if addr := info.Address; addr != nil {
			resp.PersonalInfo.Address = &AddressResponse{
				City:            addr.City,
				Street:          addr.Street,
				HouseNumber:     addr.HouseNumber,
				ApartmentNumber: addr.ApartmentNumber,
			}
		}
	}

	return resp
}

// newPublicAccountResponse keeps only what other users may see: no contact details, PIN or address.
func newPublicAccountResponse(account *entity.Account) *AccountResponse {
	resp := &AccountResponse{
		ID:        account.ID,
		Username:  account.Username,
		Role:      account.Role.String(),
		CreatedAt: account.CreatedAt,
		UpdatedAt: account.UpdatedAt,
	}

	if info := account.PersonalInfo; info != nil {
		resp.PersonalInfo = &PersonalInfoResponse{
			FirstName:      info.FirstName,
			Surname:        info.Surname,
			ProfilePicture: info.ProfilePicture,
		}
	}

	return resp
}

func newAccountResponses(accounts []*entity.Account) []*AccountResponse {
	out := make([]*AccountResponse, 0, len(accounts))
	for _, account := range accounts {
		out = append(out, newAccountResponse(account))
	}

	return out
}
