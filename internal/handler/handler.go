package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/bibliotek/lending-service/internal/errs"
	mw "github.com/bibliotek/lending-service/pkg/middleware"
	"github.com/bibliotek/lending-service/pkg/validate"
)

type Handler struct {
	svc LendingService
	log *zap.Logger
}

func New(svc LendingService, log *zap.Logger) *Handler {
	return &Handler{
		svc: svc,
		log: log,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", mw.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(mw.RequestLoggerConfig()),
		middleware.RequestID(),
		mw.NewRateLimiter(apiRPS),
	)

	api.POST("/register", h.Register)
	api.POST("/authorize", h.Authorize)
	api.GET("/books", h.ListBooks)
	api.GET("/books/categories", h.ListCategories)
	api.GET("/books/:bookUid", h.GetBook)

	authed := api.Group("", mw.JwtAuthentication)
	authed.GET("/me", h.Me)
	authed.GET("/borrows", h.ListBorrows)
	authed.POST("/books/:bookUid/borrow", h.BorrowBook)
	authed.POST("/borrows/:borrowUid/return", h.ReturnBook)

	admin := api.Group("", mw.JwtAuthentication, mw.AdminOnly)
	admin.POST("/books", h.CreateBook)
	admin.PATCH("/books/:bookUid", h.UpdateBook)
	admin.DELETE("/books/:bookUid", h.DeleteBook)
	admin.GET("/users/:id", h.GetUserByID)
	admin.GET("/stats", h.Stats)
	admin.GET("/stats/events", h.ListEvents)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func httpError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, errs.ErrValidation):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, errs.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrBadCredentials):
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	case errors.Is(err, errs.ErrForbidden):
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	case errors.Is(err, errs.ErrConflict),
		errors.Is(err, errs.ErrNotAvailable),
		errors.Is(err, errs.ErrAlreadyBorrowed):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
