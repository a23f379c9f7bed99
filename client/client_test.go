package client_test

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"mesto/client"
	"mesto/config"
	httpmiddleware "mesto/internal/delivery/http/middleware"
	"mesto/internal/delivery/http/router"
	"mesto/internal/delivery/http/router/handler"
	"mesto/internal/delivery/http/validator"
	"mesto/internal/infra/auth"
	"mesto/internal/infra/persistence/memory"
	"mesto/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// startTestServer wires the real router, validator, middleware and
// in-memory storage behind an httptest server.
func startTestServer(t *testing.T) *httptest.Server {
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
	e.HideBanner = true
	e.Validator = validator.New()
	e.HTTPErrorHandler = httpmiddleware.NewErrorMiddleware(logger).HandleHTTPError

	r := router.NewRouter(router.RouterParams{
		UserHandler: handler.NewUserHandler(handler.UserHandlerParams{
			UserUC:    userUC,
			SessionUC: sessionUC,
			TokenSvc:  tokenSvc,
			Config:    cfg,
			Logger:    logger,
		}),
		CardHandler: handler.NewCardHandler(handler.CardHandlerParams{
			CardUC: cardUC,
			Logger: logger,
		}),
		AuthMiddleware: httpmiddleware.NewAuthMiddleware(tokenSvc),
	})
	r.RegisterRoutes(e)

	server := httptest.NewServer(e)
	t.Cleanup(server.Close)

	return server
}

func newSignedInClient(t *testing.T, server *httptest.Server, email string) *client.Client {
	t.Helper()

	c, err := client.New(server.URL)
	require.NoError(t, err)

	ctx := context.Background()
	_, err = c.SignUp(ctx, client.SignUpInput{Email: email, Password: "correct-horse"})
	require.NoError(t, err)
	require.NoError(t, c.SignIn(ctx, email, "correct-horse"))

	return c
}

func TestClient_FullLifecycle(t *testing.T) {
	server := startTestServer(t)
	ctx := context.Background()

	alice := newSignedInClient(t, server, "alice@example.com")
	bob := newSignedInClient(t, server, "bob@example.com")

	aliceUser, err := alice.Me(ctx)
	require.NoError(t, err)
	bobUser, err := bob.Me(ctx)
	require.NoError(t, err)
	require.NotEqual(t, aliceUser.ID, bobUser.ID)

	// Alice shares a photo.
	card, err := alice.CreateCard(ctx, client.CreateCardInput{
		Name: "Sunset",
		Link: "https://example.com/sunset.jpg",
	})
	require.NoError(t, err)
	assert.Equal(t, aliceUser.ID, card.OwnerID)
	assert.Empty(t, card.Likes)

	// Both users like it; liking twice stays a single like.
	_, err = alice.LikeCard(ctx, card.ID)
	require.NoError(t, err)
	liked, err := bob.LikeCard(ctx, card.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{aliceUser.ID, bobUser.ID}, liked.Likes)

	liked, err = bob.LikeCard(ctx, card.ID)
	require.NoError(t, err)
	assert.Len(t, liked.Likes, 2)

	// Bob withdraws his like.
	unliked, err := bob.UnlikeCard(ctx, card.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{aliceUser.ID}, unliked.Likes)

	// Bob cannot delete Alice's card.
	_, err = bob.DeleteCard(ctx, card.ID)
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 403, apiErr.Status)
	assert.Equal(t, "FORBIDDEN", apiErr.Code)

	// The card survived the forbidden attempt.
	cards, err := bob.Cards(ctx)
	require.NoError(t, err)
	require.Len(t, cards, 1)

	// Alice deletes her own card.
	deleted, err := alice.DeleteCard(ctx, card.ID)
	require.NoError(t, err)
	assert.Equal(t, card.ID, deleted.ID)

	cards, err = alice.Cards(ctx)
	require.NoError(t, err)
	assert.Empty(t, cards)
}

func TestClient_CardsNewestFirst(t *testing.T) {
	server := startTestServer(t)
	ctx := context.Background()

	alice := newSignedInClient(t, server, "alice@example.com")

	first, err := alice.CreateCard(ctx, client.CreateCardInput{Name: "First", Link: "https://example.com/1.jpg"})
	require.NoError(t, err)
	second, err := alice.CreateCard(ctx, client.CreateCardInput{Name: "Second", Link: "https://example.com/2.jpg"})
	require.NoError(t, err)

	cards, err := alice.Cards(ctx)
	require.NoError(t, err)
	require.Len(t, cards, 2)
	assert.Equal(t, second.ID, cards[0].ID)
	assert.Equal(t, first.ID, cards[1].ID)
}

func TestClient_ProfileUpdates(t *testing.T) {
	server := startTestServer(t)
	ctx := context.Background()

	alice := newSignedInClient(t, server, "alice@example.com")

	updated, err := alice.UpdateProfile(ctx, client.UpdateProfileInput{
		Name:  "Alice",
		About: "Explorer",
	})
	require.NoError(t, err)
	assert.Equal(t, "Alice", updated.Name)
	assert.Equal(t, "Explorer", updated.About)

	withAvatar, err := alice.UpdateAvatar(ctx, "https://example.com/alice.png")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/alice.png", withAvatar.Avatar)
	assert.Equal(t, "Alice", withAvatar.Name)

	// Another user sees the updated profile.
	bob := newSignedInClient(t, server, "bob@example.com")
	seen, err := bob.User(ctx, updated.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", seen.Name)
	assert.Equal(t, "https://example.com/alice.png", seen.Avatar)
}

func TestClient_UnauthenticatedRequests(t *testing.T) {
	server := startTestServer(t)
	ctx := context.Background()

	anon, err := client.New(server.URL)
	require.NoError(t, err)

	_, err = anon.Cards(ctx)
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 401, apiErr.Status)
	assert.Equal(t, "AUTH_FAILED", apiErr.Code)

	_, err = anon.Me(ctx)
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 401, apiErr.Status)
}

func TestClient_SignOutEndsSession(t *testing.T) {
	server := startTestServer(t)
	ctx := context.Background()

	alice := newSignedInClient(t, server, "alice@example.com")

	_, err := alice.Me(ctx)
	require.NoError(t, err)

	require.NoError(t, alice.SignOut(ctx))

	_, err = alice.Me(ctx)
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 401, apiErr.Status)
}

func TestClient_NotFoundKinds(t *testing.T) {
	server := startTestServer(t)
	ctx := context.Background()

	alice := newSignedInClient(t, server, "alice@example.com")

	// Well-formed but unknown card id.
	_, err := alice.LikeCard(ctx, "507f1f77bcf86cd799439011")
	require.True(t, client.IsNotFound(err))
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "CARD_NOT_FOUND", apiErr.Code)

	// Malformed id is rejected as a bad request, not a miss.
	_, err = alice.DeleteCard(ctx, "nope")
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 400, apiErr.Status)
	assert.Equal(t, "INCORRECT_REQUEST", apiErr.Code)
}

func TestClient_DuplicateSignUp(t *testing.T) {
	server := startTestServer(t)
	ctx := context.Background()

	c, err := client.New(server.URL)
	require.NoError(t, err)

	_, err = c.SignUp(ctx, client.SignUpInput{Email: "alice@example.com", Password: "correct-horse"})
	require.NoError(t, err)

	_, err = c.SignUp(ctx, client.SignUpInput{Email: "alice@example.com", Password: "other"})
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 409, apiErr.Status)
	assert.Equal(t, "EMAIL_TAKEN", apiErr.Code)
}
