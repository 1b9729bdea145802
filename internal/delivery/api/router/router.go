// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"userreg/internal/delivery/api/router/handler"
	"userreg/internal/delivery/middleware"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	AccountHandler *handler.AccountHandler
	AdminHandler   *handler.AdminHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	accountHandler *handler.AccountHandler
	adminHandler   *handler.AdminHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		accountHandler: params.AccountHandler,
		adminHandler:   params.AdminHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.HealthCheck)

	api := e.Group("/api")

	authGroup := api.Group("/authentication")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
	}

	// Profile routes act on the caller identified by the bearer token
	usersGroup := api.Group("/users")
	usersGroup.Use(r.authMiddleware.Authenticate)
	{
		usersGroup.GET("/me", r.accountHandler.GetMe)
		usersGroup.GET("/:username", r.accountHandler.GetByUsername)

		usersGroup.PUT("/firstName", r.accountHandler.UpdateFirstName)
		usersGroup.PUT("/surname", r.accountHandler.UpdateSurname)
		usersGroup.PUT("/personalIdentificationNumber", r.accountHandler.UpdatePersonalIdentificationNumber)
		usersGroup.PUT("/phoneNumber", r.accountHandler.UpdatePhoneNumber)
		usersGroup.PUT("/email", r.accountHandler.UpdateEmail)
		usersGroup.PUT("/profilePicture", r.accountHandler.UpdateProfilePicture)
		usersGroup.PUT("/city", r.accountHandler.UpdateCity)
		usersGroup.PUT("/street", r.accountHandler.UpdateStreet)
		usersGroup.PUT("/houseNumber", r.accountHandler.UpdateHouseNumber)
		usersGroup.PUT("/apartmentNumber", r.accountHandler.UpdateApartmentNumber)
	}

	adminGroup := api.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireAccountManager())
	{
		adminGroup.GET("/users", r.adminHandler.ListAccounts)
		adminGroup.GET("/users/:id", r.adminHandler.GetAccount)
		adminGroup.DELETE("/users/:id", r.adminHandler.DeleteAccount)
	}
}
