package impl

import (
	"context"
	"log/slog"

	deliverycontext "mesto/internal/delivery/context"
	domainerrors "mesto/internal/domain/errors"
	"mesto/internal/domain/repository"
	"mesto/internal/domain/service"
	"mesto/internal/usecase"

	"github.com/pkg/errors"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	users    repository.UserRepository
	hasher   service.PasswordHasher
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(
	users repository.UserRepository,
	hasher service.PasswordHasher,
	tokenSvc service.TokenService,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return &sessionService{
		users:    users,
		hasher:   hasher,
		tokenSvc: tokenSvc,
		logger:   logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login verifies credentials and issues a session token. Both failure
// halves collapse into the same generic error so the response cannot
// be used to probe which emails are registered.
func (srv *sessionService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := srv.users.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Info("Login rejected", slog.String("email", input.Email))

			return nil, domainerrors.ErrAuth.WrapMessage("unknown email")
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Info("Login rejected", slog.String("email", input.Email))

		return nil, domainerrors.ErrAuth.WrapMessage("wrong password")
	}

	token, err := srv.tokenSvc.Generate(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue session token")
	}

	srv.log(ctx).Info("Login succeeded", slog.String("user_id", user.ID))

	return &usecase.LoginOutput{Token: token, User: user}, nil
}
