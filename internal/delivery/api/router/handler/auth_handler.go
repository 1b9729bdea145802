// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	"userreg/internal/delivery/api/response"
	"userreg/internal/delivery/api/validator"
	domainerrors "userreg/internal/domain/errors"
	"userreg/internal/domain/service"
	"userreg/internal/errors"
	"userreg/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandler serves registration and login.
type AuthHandler struct {
	uc        usecase.AuthUsecase
	tokenSvc  service.TokenService
	pictures  service.PictureProcessor
	validator *validator.Validator
}

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	Usecase   usecase.AuthUsecase
	TokenSvc  service.TokenService
	Pictures  service.PictureProcessor
	Validator *validator.Validator
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		uc:        params.Usecase,
		tokenSvc:  params.TokenSvc,
		pictures:  params.Pictures,
		validator: params.Validator,
	}
}

// Register handles the multipart registration form.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid registration form")
	}

	if err := h.validator.Validate(&req); err != nil {
		return err
	}

	picture, err := readPicture(c, h.pictures)
	if err != nil {
		return err
	}

	account, err := h.uc.Register(c.Request().Context(), &usecase.RegisterInput{
		Username:                     req.Username,
		Password:                     req.Password,
		FirstName:                    req.FirstName,
		Surname:                      req.Surname,
		PersonalIdentificationNumber: req.PersonalIdentificationNumber,
		PhoneNumber:                  req.PhoneNumber,
		Email:                        req.Email,
		ProfilePicture:               picture,
		City:                         req.City,
		Street:                       req.Street,
		HouseNumber:                  req.HouseNumber,
		ApartmentNumber:              req.ApartmentNumber,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newAccountResponse(account))
}

// Login checks the credentials and issues a bearer token.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid login input")
	}

	if err := h.validator.Validate(&req); err != nil {
		return err
	}

	account, err := h.uc.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return errors.WithStack(err)
	}

	token, err := h.tokenSvc.Issue(account.ID, account.Username, account.Role.String())
	if err != nil {
		return errors.Wrap(domainerrors.ErrTokenIssueFailed, err.Error())
	}

	return response.Success(c, http.StatusOK, &LoginResponse{
		Token:   token,
		Account: newAccountResponse(account),
	})
}
