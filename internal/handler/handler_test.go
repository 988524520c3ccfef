package handler_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bibliotek/lending-service/internal/errs"
	"github.com/bibliotek/lending-service/internal/handler"
	"github.com/bibliotek/lending-service/internal/model"
	"github.com/bibliotek/lending-service/pkg/auth"
	mw "github.com/bibliotek/lending-service/pkg/middleware"
	"github.com/bibliotek/lending-service/pkg/validate"

	service_mocks "github.com/bibliotek/lending-service/internal/handler/mocks"
)

func signToken(t *testing.T, username, role string) string {
	t.Helper()
	claims := &auth.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	claims.Profile.Username = username
	claims.Profile.Role = role
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(auth.JWTKey)
	require.NoError(t, err)
	return token
}

func TestHandler_ListBooks(t *testing.T) {
	t.Parallel()
	type input struct {
		search   string
		category string
		page     int
		size     int
	}
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockLendingService, req input)

	category := "History"
	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		input        input
		response     response
		wantErr      bool
	}{
		{
			name: "ok",
			mockBehavior: func(r *service_mocks.MockLendingService, req input) {
				r.EXPECT().
					ListBooks(context.Background(), model.BookFilter{
						Search:   req.search,
						Category: req.category,
						Page:     req.page,
						Size:     req.size,
					}).
					Return(model.ListBooks{
						Paging: model.Paging{
							Page:          req.page,
							PageSize:      req.size,
							TotalElements: 1,
						},
						Items: []model.Book{
							{
								BookUid:         "f7cdc58f-2caf-4b15-9727-f89dcc629b27",
								Title:           "Sapiens",
								Author:          "Yuval Noah Harari",
								Category:        &category,
								TotalCopies:     3,
								AvailableCopies: 2,
							},
						},
					}, nil)
			},
			input: input{
				search:   "sapiens",
				category: "History",
				page:     1,
				size:     10,
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"page":1,"pageSize":10,"totalElements":1,"items":[{"bookUid":"f7cdc58f-2caf-4b15-9727-f89dcc629b27","title":"Sapiens","author":"Yuval Noah Harari","category":"History","totalCopies":3,"availableCopies":2}]}`,
			},
			wantErr: false,
		},
		{
			name: "err. internal",
			mockBehavior: func(r *service_mocks.MockLendingService, req input) {
				r.EXPECT().
					ListBooks(context.Background(), model.BookFilter{
						Search:   req.search,
						Category: req.category,
						Page:     req.page,
						Size:     req.size,
					}).
					Return(model.ListBooks{}, errors.New("db internal"))
			},
			input: input{},
			response: response{
				expectedCode: http.StatusInternalServerError,
				expectedBody: `{"message":"db internal"}`,
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockLendingService(c)
			log := zap.NewExample().Named("test")
			h := handler.New(svc, log)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.GET("/api/v1/books", h.ListBooks)

			r := httptest.NewRequest(
				http.MethodGet, fmt.Sprintf("/api/v1/books?search=%s&category=%s&page=%d&size=%d",
					tt.input.search, tt.input.category, tt.input.page, tt.input.size), http.NoBody)
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc, tt.input)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_Register(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockLendingService)

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		requestBody  string
		response     response
		wantErr      bool
	}{
		{
			name: "ok",
			mockBehavior: func(r *service_mocks.MockLendingService) {
				r.EXPECT().
					RegisterUser(context.Background(), model.UserCreateRequest{
						Username: "reader",
						Password: "secret",
					}).
					Return(model.User{ID: 2, Username: "reader", IsAdmin: false}, nil)
			},
			requestBody: `{"username":"reader","password":"secret"}`,
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: `{"id":2,"username":"reader","isAdmin":false}`,
			},
			wantErr: false,
		},
		{
			name:         "err. password required",
			mockBehavior: func(r *service_mocks.MockLendingService) {},
			requestBody:  `{"username":"reader"}`,
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"Key: 'UserCreateRequest.Password' Error:Field validation for 'Password' failed on the 'required' tag"}`,
			},
			wantErr: true,
		},
		{
			name: "err. username taken",
			mockBehavior: func(r *service_mocks.MockLendingService) {
				r.EXPECT().
					RegisterUser(context.Background(), model.UserCreateRequest{
						Username: "reader",
						Password: "secret",
					}).
					Return(model.User{}, errs.ErrConflict)
			},
			requestBody: `{"username":"reader","password":"secret"}`,
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"conflict"}`,
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockLendingService(c)
			log := zap.NewExample().Named("test")
			h := handler.New(svc, log)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/api/v1/register", h.Register)

			r := httptest.NewRequest(http.MethodPost, "/api/v1/register", strings.NewReader(tt.requestBody))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_Authorize(t *testing.T) {
	t.Parallel()

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		c := gomock.NewController(t)
		defer c.Finish()
		svc := service_mocks.NewMockLendingService(c)
		svc.EXPECT().
			Authenticate(context.Background(), model.AuthRequest{Username: "admin", Password: "admin123"}).
			Return(model.User{ID: 1, Username: "admin", IsAdmin: true}, nil)
		h := handler.New(svc, zap.NewExample().Named("test"))

		e := echo.New()
		e.Validator = validate.NewCustomValidator()
		e.POST("/api/v1/authorize", h.Authorize)

		r := httptest.NewRequest(http.MethodPost, "/api/v1/authorize",
			strings.NewReader(`{"username":"admin","password":"admin123"}`))
		r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		w := httptest.NewRecorder()
		e.ServeHTTP(w, r)

		require.Equal(t, http.StatusOK, w.Code)
		var resp model.AuthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.NotEmpty(t, resp.AccessToken)

		claims := new(auth.Claims)
		token, err := jwt.ParseWithClaims(resp.AccessToken, claims, func(token *jwt.Token) (interface{}, error) {
			return auth.JWTKey, nil
		})
		require.NoError(t, err)
		require.True(t, token.Valid)
		require.Equal(t, "admin", claims.Profile.Username)
		require.Equal(t, auth.RoleAdmin, claims.Profile.Role)
	})

	t.Run("err. bad credentials", func(t *testing.T) {
		t.Parallel()
		c := gomock.NewController(t)
		defer c.Finish()
		svc := service_mocks.NewMockLendingService(c)
		svc.EXPECT().
			Authenticate(context.Background(), model.AuthRequest{Username: "admin", Password: "nope"}).
			Return(model.User{}, errs.ErrBadCredentials)
		h := handler.New(svc, zap.NewExample().Named("test"))

		e := echo.New()
		e.Validator = validate.NewCustomValidator()
		e.POST("/api/v1/authorize", h.Authorize)

		r := httptest.NewRequest(http.MethodPost, "/api/v1/authorize",
			strings.NewReader(`{"username":"admin","password":"nope"}`))
		r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		w := httptest.NewRecorder()
		e.ServeHTTP(w, r)

		require.Equal(t, http.StatusUnauthorized, w.Code)
		require.Equal(t, `{"message":"invalid username or password"}`, strings.Trim(w.Body.String(), "\n"))
	})
}

func TestHandler_BorrowBook(t *testing.T) {
	t.Parallel()
	type input struct {
		bookUid string
		token   string
	}
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockLendingService, req input)

	borrowDate := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	dueDate := borrowDate.Add(14 * 24 * time.Hour)

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		input        input
		response     response
		wantErr      bool
	}{
		{
			name: "ok",
			mockBehavior: func(r *service_mocks.MockLendingService, req input) {
				r.EXPECT().
					BorrowBook(gomock.Any(), "reader", req.bookUid).
					Return(model.Borrow{
						BorrowUid:  "0e6e628d-8f1a-44fd-b1b4-40e80b1f2f39",
						BookUid:    req.bookUid,
						Title:      "Sapiens",
						Author:     "Yuval Noah Harari",
						BorrowDate: borrowDate,
						DueDate:    dueDate,
						Status:     model.StatusBorrowed,
					}, nil)
			},
			input: input{
				bookUid: "f7cdc58f-2caf-4b15-9727-f89dcc629b27",
				token:   "valid",
			},
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: `{"borrowUid":"0e6e628d-8f1a-44fd-b1b4-40e80b1f2f39","bookUid":"f7cdc58f-2caf-4b15-9727-f89dcc629b27","title":"Sapiens","author":"Yuval Noah Harari","borrowDate":"2024-05-01T10:00:00Z","dueDate":"2024-05-15T10:00:00Z","returnDate":null,"status":"BORROWED"}`,
			},
			wantErr: false,
		},
		{
			name: "err. no copies available",
			mockBehavior: func(r *service_mocks.MockLendingService, req input) {
				r.EXPECT().
					BorrowBook(gomock.Any(), "reader", req.bookUid).
					Return(model.Borrow{}, errs.ErrNotAvailable)
			},
			input: input{
				bookUid: "f7cdc58f-2caf-4b15-9727-f89dcc629b27",
				token:   "valid",
			},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"no copies available"}`,
			},
			wantErr: true,
		},
		{
			name: "err. already borrowed",
			mockBehavior: func(r *service_mocks.MockLendingService, req input) {
				r.EXPECT().
					BorrowBook(gomock.Any(), "reader", req.bookUid).
					Return(model.Borrow{}, errs.ErrAlreadyBorrowed)
			},
			input: input{
				bookUid: "f7cdc58f-2caf-4b15-9727-f89dcc629b27",
				token:   "valid",
			},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"book already borrowed"}`,
			},
			wantErr: true,
		},
		{
			name: "err. book not found",
			mockBehavior: func(r *service_mocks.MockLendingService, req input) {
				r.EXPECT().
					BorrowBook(gomock.Any(), "reader", req.bookUid).
					Return(model.Borrow{}, errs.ErrNotFound)
			},
			input: input{
				bookUid: "83575e12-7ce0-48ee-9931-51919ff3c9ee",
				token:   "valid",
			},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"not found"}`,
			},
			wantErr: true,
		},
		{
			name:         "err. no token",
			mockBehavior: func(r *service_mocks.MockLendingService, req input) {},
			input: input{
				bookUid: "f7cdc58f-2caf-4b15-9727-f89dcc629b27",
				token:   "",
			},
			response: response{
				expectedCode: http.StatusUnauthorized,
				expectedBody: `{"message":"No Authorization Header"}`,
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockLendingService(c)
			log := zap.NewExample().Named("test")
			h := handler.New(svc, log)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/api/v1/books/:bookUid/borrow", h.BorrowBook, mw.JwtAuthentication)

			r := httptest.NewRequest(
				http.MethodPost, fmt.Sprintf("/api/v1/books/%s/borrow", tt.input.bookUid), http.NoBody)
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			if tt.input.token != "" {
				r.Header.Set(mw.AuthorizationHeader, "Bearer "+signToken(t, "reader", auth.RoleUser))
			}
			w := httptest.NewRecorder()

			tt.mockBehavior(svc, tt.input)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_ReturnBook(t *testing.T) {
	t.Parallel()
	type input struct {
		borrowUid string
		username  string
		role      string
	}
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockLendingService, req input)

	borrowDate := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	dueDate := borrowDate.Add(14 * 24 * time.Hour)
	returnDate := time.Date(2024, 5, 10, 9, 30, 0, 0, time.UTC)

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		input        input
		response     response
		wantErr      bool
	}{
		{
			name: "ok",
			mockBehavior: func(r *service_mocks.MockLendingService, req input) {
				r.EXPECT().
					ReturnBook(gomock.Any(), model.Actor{Username: req.username}, req.borrowUid).
					Return(model.Borrow{
						BorrowUid:  req.borrowUid,
						BookUid:    "f7cdc58f-2caf-4b15-9727-f89dcc629b27",
						Title:      "Sapiens",
						Author:     "Yuval Noah Harari",
						BorrowDate: borrowDate,
						DueDate:    dueDate,
						ReturnDate: &returnDate,
						Status:     model.StatusReturned,
					}, nil)
			},
			input: input{
				borrowUid: "0e6e628d-8f1a-44fd-b1b4-40e80b1f2f39",
				username:  "reader",
				role:      auth.RoleUser,
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"borrowUid":"0e6e628d-8f1a-44fd-b1b4-40e80b1f2f39","bookUid":"f7cdc58f-2caf-4b15-9727-f89dcc629b27","title":"Sapiens","author":"Yuval Noah Harari","borrowDate":"2024-05-01T10:00:00Z","dueDate":"2024-05-15T10:00:00Z","returnDate":"2024-05-10T09:30:00Z","status":"RETURNED"}`,
			},
			wantErr: false,
		},
		{
			name: "err. already returned",
			mockBehavior: func(r *service_mocks.MockLendingService, req input) {
				r.EXPECT().
					ReturnBook(gomock.Any(), model.Actor{Username: req.username}, req.borrowUid).
					Return(model.Borrow{}, errs.ErrConflict)
			},
			input: input{
				borrowUid: "0e6e628d-8f1a-44fd-b1b4-40e80b1f2f39",
				username:  "reader",
				role:      auth.RoleUser,
			},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"conflict"}`,
			},
			wantErr: true,
		},
		{
			name: "err. foreign borrow",
			mockBehavior: func(r *service_mocks.MockLendingService, req input) {
				r.EXPECT().
					ReturnBook(gomock.Any(), model.Actor{Username: req.username}, req.borrowUid).
					Return(model.Borrow{}, errs.ErrForbidden)
			},
			input: input{
				borrowUid: "0e6e628d-8f1a-44fd-b1b4-40e80b1f2f39",
				username:  "intruder",
				role:      auth.RoleUser,
			},
			response: response{
				expectedCode: http.StatusForbidden,
				expectedBody: `{"message":"forbidden"}`,
			},
			wantErr: true,
		},
		{
			name: "ok. admin returns for another user",
			mockBehavior: func(r *service_mocks.MockLendingService, req input) {
				r.EXPECT().
					ReturnBook(gomock.Any(), model.Actor{Username: req.username, IsAdmin: true}, req.borrowUid).
					Return(model.Borrow{
						BorrowUid:  req.borrowUid,
						BookUid:    "f7cdc58f-2caf-4b15-9727-f89dcc629b27",
						Title:      "Sapiens",
						Author:     "Yuval Noah Harari",
						BorrowDate: borrowDate,
						DueDate:    dueDate,
						ReturnDate: &returnDate,
						Status:     model.StatusReturned,
					}, nil)
			},
			input: input{
				borrowUid: "0e6e628d-8f1a-44fd-b1b4-40e80b1f2f39",
				username:  "admin",
				role:      auth.RoleAdmin,
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"borrowUid":"0e6e628d-8f1a-44fd-b1b4-40e80b1f2f39","bookUid":"f7cdc58f-2caf-4b15-9727-f89dcc629b27","title":"Sapiens","author":"Yuval Noah Harari","borrowDate":"2024-05-01T10:00:00Z","dueDate":"2024-05-15T10:00:00Z","returnDate":"2024-05-10T09:30:00Z","status":"RETURNED"}`,
			},
			wantErr: false,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockLendingService(c)
			log := zap.NewExample().Named("test")
			h := handler.New(svc, log)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/api/v1/borrows/:borrowUid/return", h.ReturnBook, mw.JwtAuthentication)

			r := httptest.NewRequest(
				http.MethodPost, fmt.Sprintf("/api/v1/borrows/%s/return", tt.input.borrowUid), http.NoBody)
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			r.Header.Set(mw.AuthorizationHeader, "Bearer "+signToken(t, tt.input.username, tt.input.role))
			w := httptest.NewRecorder()

			tt.mockBehavior(svc, tt.input)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_DeleteBook(t *testing.T) {
	t.Parallel()
	type input struct {
		bookUid string
		role    string
	}
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockLendingService, req input)

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		input        input
		response     response
		wantErr      bool
	}{
		{
			name: "ok",
			mockBehavior: func(r *service_mocks.MockLendingService, req input) {
				r.EXPECT().
					DeleteBook(gomock.Any(), req.bookUid).
					Return(nil)
			},
			input: input{
				bookUid: "f7cdc58f-2caf-4b15-9727-f89dcc629b27",
				role:    auth.RoleAdmin,
			},
			response: response{
				expectedCode: http.StatusNoContent,
				expectedBody: ``,
			},
			wantErr: false,
		},
		{
			name: "err. active borrows",
			mockBehavior: func(r *service_mocks.MockLendingService, req input) {
				r.EXPECT().
					DeleteBook(gomock.Any(), req.bookUid).
					Return(errs.ErrConflict)
			},
			input: input{
				bookUid: "f7cdc58f-2caf-4b15-9727-f89dcc629b27",
				role:    auth.RoleAdmin,
			},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"conflict"}`,
			},
			wantErr: true,
		},
		{
			name: "err. not found",
			mockBehavior: func(r *service_mocks.MockLendingService, req input) {
				r.EXPECT().
					DeleteBook(gomock.Any(), req.bookUid).
					Return(errs.ErrNotFound)
			},
			input: input{
				bookUid: "83575e12-7ce0-48ee-9931-51919ff3c9ee",
				role:    auth.RoleAdmin,
			},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"not found"}`,
			},
			wantErr: true,
		},
		{
			name:         "err. user role",
			mockBehavior: func(r *service_mocks.MockLendingService, req input) {},
			input: input{
				bookUid: "f7cdc58f-2caf-4b15-9727-f89dcc629b27",
				role:    auth.RoleUser,
			},
			response: response{
				expectedCode: http.StatusForbidden,
				expectedBody: `{"message":"admin role required"}`,
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockLendingService(c)
			log := zap.NewExample().Named("test")
			h := handler.New(svc, log)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.DELETE("/api/v1/books/:bookUid", h.DeleteBook, mw.JwtAuthentication, mw.AdminOnly)

			r := httptest.NewRequest(
				http.MethodDelete, fmt.Sprintf("/api/v1/books/%s", tt.input.bookUid), http.NoBody)
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			r.Header.Set(mw.AuthorizationHeader, "Bearer "+signToken(t, "admin", tt.input.role))
			w := httptest.NewRecorder()

			tt.mockBehavior(svc, tt.input)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_Stats(t *testing.T) {
	t.Parallel()

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		c := gomock.NewController(t)
		defer c.Finish()
		svc := service_mocks.NewMockLendingService(c)
		svc.EXPECT().
			GetStats(gomock.Any()).
			Return(model.Stats{
				TotalBooks:    4,
				TotalUsers:    2,
				ActiveBorrows: 1,
				Overdue:       0,
				MostBorrowed:  []model.BookCount{{Title: "Sapiens", Count: 3}},
				ActiveUsers:   []model.UserCount{{Username: "reader", Count: 2}},
			}, nil)
		h := handler.New(svc, zap.NewExample().Named("test"))

		e := echo.New()
		e.Validator = validate.NewCustomValidator()
		e.GET("/api/v1/stats", h.Stats, mw.JwtAuthentication, mw.AdminOnly)

		r := httptest.NewRequest(http.MethodGet, "/api/v1/stats", http.NoBody)
		r.Header.Set(mw.AuthorizationHeader, "Bearer "+signToken(t, "admin", auth.RoleAdmin))
		w := httptest.NewRecorder()
		e.ServeHTTP(w, r)

		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t,
			`{"totalBooks":4,"totalUsers":2,"activeBorrows":1,"overdue":0,"mostBorrowed":[{"title":"Sapiens","count":3}],"activeUsers":[{"username":"reader","count":2}]}`,
			strings.Trim(w.Body.String(), "\n"))
	})

	t.Run("ok. empty system", func(t *testing.T) {
		t.Parallel()
		c := gomock.NewController(t)
		defer c.Finish()
		svc := service_mocks.NewMockLendingService(c)
		svc.EXPECT().
			GetStats(gomock.Any()).
			Return(model.Stats{
				MostBorrowed: []model.BookCount{},
				ActiveUsers:  []model.UserCount{},
			}, nil)
		h := handler.New(svc, zap.NewExample().Named("test"))

		e := echo.New()
		e.Validator = validate.NewCustomValidator()
		e.GET("/api/v1/stats", h.Stats, mw.JwtAuthentication, mw.AdminOnly)

		r := httptest.NewRequest(http.MethodGet, "/api/v1/stats", http.NoBody)
		r.Header.Set(mw.AuthorizationHeader, "Bearer "+signToken(t, "admin", auth.RoleAdmin))
		w := httptest.NewRecorder()
		e.ServeHTTP(w, r)

		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t,
			`{"totalBooks":0,"totalUsers":0,"activeBorrows":0,"overdue":0,"mostBorrowed":[],"activeUsers":[]}`,
			strings.Trim(w.Body.String(), "\n"))
	})

	t.Run("err. user role", func(t *testing.T) {
		t.Parallel()
		c := gomock.NewController(t)
		defer c.Finish()
		svc := service_mocks.NewMockLendingService(c)
		h := handler.New(svc, zap.NewExample().Named("test"))

		e := echo.New()
		e.Validator = validate.NewCustomValidator()
		e.GET("/api/v1/stats", h.Stats, mw.JwtAuthentication, mw.AdminOnly)

		r := httptest.NewRequest(http.MethodGet, "/api/v1/stats", http.NoBody)
		r.Header.Set(mw.AuthorizationHeader, "Bearer "+signToken(t, "reader", auth.RoleUser))
		w := httptest.NewRecorder()
		e.ServeHTTP(w, r)

		require.Equal(t, http.StatusForbidden, w.Code)
	})
}
