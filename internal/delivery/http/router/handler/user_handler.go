// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"mesto/config"
	"mesto/internal/delivery/http/middleware"
	"mesto/internal/delivery/http/response"
	"mesto/internal/domain/service"
	"mesto/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC    usecase.UserUsecase
	SessionUC usecase.SessionUsecase
	TokenSvc  service.TokenService
	Config    *config.Config
	Logger    *slog.Logger
}

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	userUC    usecase.UserUsecase
	sessionUC usecase.SessionUsecase
	tokenSvc  service.TokenService
	cfg       *config.Config
	logger    *slog.Logger
}

// NewUserHandler is the constructor for UserHandler.
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC:    params.UserUC,
		sessionUC: params.SessionUC,
		tokenSvc:  params.TokenSvc,
		cfg:       params.Config,
		logger:    params.Logger,
	}
}

// SignUpRequest represents the request body for registration.
// Optional profile fields are defaulted by the usecase when omitted.
type SignUpRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name" validate:"omitempty,min=2,max=30"`
	About    string `json:"about" validate:"omitempty,min=2,max=30"`
	Avatar   string `json:"avatar" validate:"omitempty,url"`
}

// SignInRequest represents the request body for login.
type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileRequest represents the request body for a profile update.
type UpdateProfileRequest struct {
	Name  string `json:"name" validate:"required,min=2,max=30"`
	About string `json:"about" validate:"required,min=2,max=30"`
}

// UpdateAvatarRequest represents the request body for an avatar update.
type UpdateAvatarRequest struct {
	Avatar string `json:"avatar" validate:"required,url"`
}

// SignUp handles the user registration request.
func (h *UserHandler) SignUp(c echo.Context) error {
	var req SignUpRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INCORRECT_REQUEST", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.userUC.Register(c.Request().Context(), &usecase.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		About:    req.About,
		Avatar:   req.Avatar,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, user)
}

// SignIn handles the login request. The session token travels only in
// the cookie; the body is a generic acknowledgement.
func (h *UserHandler) SignIn(c echo.Context) error {
	var req SignInRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INCORRECT_REQUEST", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.sessionUC.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.SetCookie(h.sessionCookie(output.Token, h.tokenSvc.TTL()))

	return response.Success(c, http.StatusOK, map[string]string{"message": "Login successful"})
}

// SignOut clears the session cookie. There is no server-side session
// state to revoke.
func (h *UserHandler) SignOut(c echo.Context) error {
	c.SetCookie(h.sessionCookie("", -time.Hour))

	return response.Success(c, http.StatusOK, map[string]string{"message": "Signed out"})
}

// ListUsers handles the request to list every user.
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.userUC.ListUsers(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, users)
}

// GetCurrentUser handles the request for the caller's own record.
func (h *UserHandler) GetCurrentUser(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "AUTH_FAILED", "Authorization required")
	}

	user, err := h.userUC.GetCurrentUser(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user)
}

// GetUser handles the request for a single user by id.
func (h *UserHandler) GetUser(c echo.Context) error {
	user, err := h.userUC.GetUser(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user)
}

// UpdateProfile handles the profile update request. The target record
// is always the caller's own; the request body cannot name a user.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "AUTH_FAILED", "Authorization required")
	}

	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INCORRECT_REQUEST", "Invalid profile input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.userUC.UpdateProfile(c.Request().Context(), userID, &usecase.UpdateProfileInput{
		Name:  req.Name,
		About: req.About,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user)
}

// UpdateAvatar handles the avatar update request.
func (h *UserHandler) UpdateAvatar(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "AUTH_FAILED", "Authorization required")
	}

	var req UpdateAvatarRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INCORRECT_REQUEST", "Invalid avatar input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.userUC.UpdateAvatar(c.Request().Context(), userID, &usecase.UpdateAvatarInput{
		Avatar: req.Avatar,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user)
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

// sessionCookie builds the session cookie: httpOnly, strict same-site,
// scoped to the configured domain, secure per config.
func (h *UserHandler) sessionCookie(token string, maxAge time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		Domain:   h.cfg.Auth.CookieDomain,
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		Secure:   h.cfg.Auth.CookieSecure,
		SameSite: http.SameSiteStrictMode,
	}
}
