package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bibliotek/lending-service/internal/model"
	"github.com/bibliotek/lending-service/pkg/auth"
)

func (h *Handler) BorrowBook(c echo.Context) error {
	bookUid := c.Param("bookUid")
	if bookUid == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "bookUid is empty")
	}
	a, err := auth.FromContext(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}

	borrow, err := h.svc.BorrowBook(c.Request().Context(), a.Username, bookUid)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, borrow)
}

func (h *Handler) ReturnBook(c echo.Context) error {
	borrowUid := c.Param("borrowUid")
	if borrowUid == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "borrowUid is empty")
	}
	a, err := auth.FromContext(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	actor := model.Actor{Username: a.Username, IsAdmin: a.IsAdmin()}

	borrow, err := h.svc.ReturnBook(c.Request().Context(), actor, borrowUid)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, borrow)
}

func (h *Handler) ListBorrows(c echo.Context) error {
	a, err := auth.FromContext(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}

	borrows, err := h.svc.ListBorrows(c.Request().Context(), a.Username)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, borrows)
}
