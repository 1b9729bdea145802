package handler

import (
	"context"
	"net/http"

	"userreg/internal/delivery/api/response"
	"userreg/internal/delivery/api/validator"
	"userreg/internal/delivery/middleware"
	"userreg/internal/domain/entity"
	domainerrors "userreg/internal/domain/errors"
	"userreg/internal/domain/service"
	"userreg/internal/errors"
	"userreg/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// fieldUpdater is the shape shared by the single-field AccountUsecase updates.
type fieldUpdater func(ctx context.Context, accountID uuid.UUID, value string) (*entity.Account, error)

// AccountHandler serves the authenticated caller's own profile.
type AccountHandler struct {
	uc        usecase.AccountUsecase
	pictures  service.PictureProcessor
	validator *validator.Validator
}

// AccountHandlerParams holds dependencies for AccountHandler, injected by Fx.
type AccountHandlerParams struct {
	fx.In

	Usecase   usecase.AccountUsecase
	Pictures  service.PictureProcessor
	Validator *validator.Validator
}

// NewAccountHandler is the constructor for AccountHandler.
func NewAccountHandler(params AccountHandlerParams) *AccountHandler {
	return &AccountHandler{
		uc:        params.Usecase,
		pictures:  params.Pictures,
		validator: params.Validator,
	}
}

// GetMe returns the caller's account.
func (h *AccountHandler) GetMe(c echo.Context) error {
	accountID, ok := middleware.GetAccountUUID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	account, err := h.uc.GetByID(c.Request().Context(), accountID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newAccountResponse(account))
}

// GetByUsername returns the full view to the owner and account managers, the public view to everyone else.
func (h *AccountHandler) GetByUsername(c echo.Context) error {
	account, err := h.uc.GetByUsername(c.Request().Context(), c.Param("username"))
	if err != nil {
		return errors.WithStack(err)
	}

	callerID, _ := middleware.GetAccountUUID(c)
	role, _ := middleware.GetRole(c)
	if callerID == account.ID || role.CanManageAccounts() {
		return response.Success(c, http.StatusOK, newAccountResponse(account))
	}

	return response.Success(c, http.StatusOK, newPublicAccountResponse(account))
}

func (h *AccountHandler) UpdateFirstName(c echo.Context) error {
	return h.updateField(c, "firstName", validator.RuleName, h.uc.UpdateFirstName)
}

func (h *AccountHandler) UpdateSurname(c echo.Context) error {
	return h.updateField(c, "surname", validator.RuleName, h.uc.UpdateSurname)
}

func (h *AccountHandler) UpdatePersonalIdentificationNumber(c echo.Context) error {
	return h.updateField(c, "personalIdentificationNumber", validator.RulePIN, h.uc.UpdatePersonalIdentificationNumber)
}

func (h *AccountHandler) UpdatePhoneNumber(c echo.Context) error {
	return h.updateField(c, "phoneNumber", validator.RulePhoneNumber, h.uc.UpdatePhoneNumber)
}

func (h *AccountHandler) UpdateEmail(c echo.Context) error {
	return h.updateField(c, "email", validator.RuleEmail, h.uc.UpdateEmail)
}

func (h *AccountHandler) UpdateCity(c echo.Context) error {
	return h.updateField(c, "city", validator.RuleAddressPart, h.uc.UpdateCity)
}

func (h *AccountHandler) UpdateStreet(c echo.Context) error {
	return h.updateField(c, "street", validator.RuleAddressPart, h.uc.UpdateStreet)
}

func (h *AccountHandler) UpdateHouseNumber(c echo.Context) error {
	return h.updateField(c, "houseNumber", validator.RuleAddressPart, h.uc.UpdateHouseNumber)
}

func (h *AccountHandler) UpdateApartmentNumber(c echo.Context) error {
	return h.updateField(c, "apartmentNumber", validator.RuleAddressPart, h.uc.UpdateApartmentNumber)
}

// UpdateProfilePicture replaces the caller's picture from a multipart upload.
func (h *AccountHandler) UpdateProfilePicture(c echo.Context) error {
	accountID, ok := middleware.GetAccountUUID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	picture, err := readPicture(c, h.pictures)
	if err != nil {
		return err
	}

	account, err := h.uc.UpdateProfilePicture(c.Request().Context(), accountID, picture)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newAccountResponse(account))
}

func (h *AccountHandler) updateField(c echo.Context, field, rule string, update fieldUpdater) error {
	accountID, ok := middleware.GetAccountUUID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	var req fieldUpdateRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid " + field + " input")
	}

	if err := h.validator.ValidateField(field, req.Value, rule); err != nil {
		return err
	}

	account, err := update(c.Request().Context(), accountID, req.Value)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newAccountResponse(account))
}
