package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"bookstack/internal/auth"
	"bookstack/internal/handler"
	"bookstack/internal/model"
	"bookstack/internal/response"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	jwtService *auth.JWTService,
	authHandler *handler.AuthHandler,
	bookHandler *handler.BookHandler,
	userHandler *handler.UserHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.HTTPErrorHandler = response.ErrorHandler
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/signup", authHandler.Signup)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/refresh-token", authHandler.Refresh)
	api.POST("/auth/logout", authHandler.Logout)
	api.GET("/books", bookHandler.List)
	api.GET("/books/:id", bookHandler.Get)

	// Secured routes (require a valid access token)
	gate := echojwt.WithConfig(auth.GateConfig(jwtService))
	secured := api.Group("", gate)

	secured.POST("/books", bookHandler.Create)
	secured.PUT("/books/:id", bookHandler.Update)
	secured.DELETE("/books/:id", bookHandler.Delete)

	anyRole := auth.RequireRoles(model.RoleBuyer, model.RoleSeller, model.RoleAdmin)
	secured.GET("/users/my-profile", userHandler.Profile, anyRole)
	secured.PATCH("/users/my-profile", userHandler.UpdateProfile, anyRole)

	adminOnly := auth.RequireRoles(model.RoleAdmin)
	secured.GET("/users", userHandler.List, adminOnly)
	secured.GET("/users/:id", userHandler.Get, adminOnly)
	secured.PATCH("/users/:id", userHandler.Update, adminOnly)
	secured.DELETE("/users/:id", userHandler.Delete, adminOnly)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
