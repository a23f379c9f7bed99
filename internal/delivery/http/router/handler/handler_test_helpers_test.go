package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"mesto/config"
	"mesto/internal/delivery/http/middleware"
	"mesto/internal/delivery/http/validator"
	"mesto/internal/infra/auth"
	"mesto/internal/infra/persistence/memory"
	"mesto/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

// testApp bundles an echo instance wired with in-memory storage and
// real hashing and token services.
type testApp struct {
	echo        *echo.Echo
	userHandler *UserHandler
	cardHandler *CardHandler
	authMW      *middleware.AuthMiddleware
	users       *memory.UserRepository
	cards       *memory.CardRepository
	cfg         *config.Config
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	cfg := &config.Config{}
	cfg.Auth.JWTSecret = "test-secret"
	cfg.Auth.TokenTTL = time.Hour

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	users := memory.NewUserRepository()
	cards := memory.NewCardRepository()
	hasher := auth.NewBcryptHasherWithCost(4)
	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	userUC := impl.NewUserService(users, hasher, logger)
	sessionUC := impl.NewSessionService(users, hasher, tokenSvc, logger)
	cardUC := impl.NewCardService(cards, logger)

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	return &testApp{
		echo: e,
		userHandler: NewUserHandler(UserHandlerParams{
			UserUC:    userUC,
			SessionUC: sessionUC,
			TokenSvc:  tokenSvc,
			Config:    cfg,
			Logger:    logger,
		}),
		cardHandler: NewCardHandler(CardHandlerParams{
			CardUC: cardUC,
			Logger: logger,
		}),
		authMW: middleware.NewAuthMiddleware(tokenSvc),
		users:  users,
		cards: cards,
		cfg:   cfg,
	}
}

// request runs one handler through the echo pipeline, so binding,
// validation and the error handler all participate.
func (app *testApp) request(t *testing.T, method, target, body string, fn echo.HandlerFunc, mutate ...func(*http.Request)) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for _, m := range mutate {
		m(req)
	}

	rec := httptest.NewRecorder()
	c := app.echo.NewContext(req, rec)
	if err := fn(c); err != nil {
		app.echo.HTTPErrorHandler(err, c)
	}

	return rec
}

// requestWithParam is request plus one route parameter, for handlers
// reading ids from the path.
func (app *testApp) requestWithParam(t *testing.T, method, target, name, value, body string, fn echo.HandlerFunc, mutate ...func(*http.Request)) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for _, m := range mutate {
		m(req)
	}

	rec := httptest.NewRecorder()
	c := app.echo.NewContext(req, rec)
	c.SetParamNames(name)
	c.SetParamValues(value)
	if err := fn(c); err != nil {
		app.echo.HTTPErrorHandler(err, c)
	}

	return rec
}

// authed runs fn behind the real authentication middleware.
func (app *testApp) authed(fn echo.HandlerFunc) echo.HandlerFunc {
	return app.authMW.Authenticate(fn)
}

// signUpAndIn registers an account, logs it in and returns the session
// cookie together with the created user's id.
func (app *testApp) signUpAndIn(t *testing.T, email, password string) (*http.Cookie, string) {
	t.Helper()

	rec := app.request(t, http.MethodPost, "/signup",
		`{"email":"`+email+`","password":"`+password+`"}`, app.userHandler.SignUp)
	require.Equal(t, http.StatusCreated, rec.Code)

	var signUpResp struct {
		Data struct {
			ID string `json:"_id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &signUpResp))

	rec = app.request(t, http.MethodPost, "/signin",
		`{"email":"`+email+`","password":"`+password+`"}`, app.userHandler.SignIn)
	require.Equal(t, http.StatusOK, rec.Code)

	return sessionCookieFrom(t, rec), signUpResp.Data.ID
}

// withCookie attaches a cookie to an outgoing test request.
func withCookie(cookie *http.Cookie) func(*http.Request) {
	return func(req *http.Request) {
		req.AddCookie(cookie)
	}
}

// sessionCookieFrom extracts the session cookie from a login response.
func sessionCookieFrom(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()

	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == middleware.SessionCookieName {
			return cookie
		}
	}
	t.Fatal("session cookie not set")

	return nil
}
