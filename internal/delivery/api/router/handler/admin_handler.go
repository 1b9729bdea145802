package handler

import (
	"net/http"

	"userreg/internal/delivery/api/response"
	domainerrors "userreg/internal/domain/errors"
	"userreg/internal/errors"
	"userreg/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// AdminHandler serves account management. Routes are gated by role in the router.
type AdminHandler struct {
	uc usecase.AccountUsecase
}

// NewAdminHandler is the constructor for AdminHandler.
func NewAdminHandler(uc usecase.AccountUsecase) *AdminHandler {
	return &AdminHandler{uc: uc}
}

// ListAccounts returns every account.
func (h *AdminHandler) ListAccounts(c echo.Context) error {
	accounts, err := h.uc.ListAll(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newAccountResponses(accounts))
}

// GetAccount returns the account identified by the :id path parameter.
func (h *AdminHandler) GetAccount(c echo.Context) error {
	accountID, err := parseAccountID(c)
	if err != nil {
		return err
	}

	account, err := h.uc.GetByID(c.Request().Context(), accountID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newAccountResponse(account))
}

// DeleteAccount removes the account and everything it owns.
func (h *AdminHandler) DeleteAccount(c echo.Context) error {
	accountID, err := parseAccountID(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteByID(c.Request().Context(), accountID); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}

func parseAccountID(c echo.Context) (uuid.UUID, error) {
	accountID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("id must be a UUID")
	}

	return accountID, nil
}
