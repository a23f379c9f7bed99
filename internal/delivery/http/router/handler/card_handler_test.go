package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"mesto/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardHandler_CreateCard_Success(t *testing.T) {
	app := newTestApp(t)
	cookie, userID := app.signUpAndIn(t, "diver@example.com", "correct-horse")

	rec := app.request(t, http.MethodPost, "/cards",
		`{"name":"Sunset","link":"https://example.com/sunset.jpg"}`,
		app.authed(app.cardHandler.CreateCard), withCookie(cookie))
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Data struct {
			ID      string   `json:"_id"`
			Name    string   `json:"name"`
			Owner   string   `json:"owner"`
			Likes   []string `json:"likes"`
			Created string   `json:"createdAt"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, entity.IsValidID(resp.Data.ID))
	assert.Equal(t, userID, resp.Data.Owner)
	assert.NotNil(t, resp.Data.Likes)
	assert.Empty(t, resp.Data.Likes)
}

func TestCardHandler_CreateCard_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"short name", `{"name":"x","link":"https://example.com/x.jpg"}`},
		{"missing link", `{"name":"Sunset"}`},
		{"link not a url", `{"name":"Sunset","link":"not a url"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(t)
			cookie, _ := app.signUpAndIn(t, "diver@example.com", "correct-horse")

			rec := app.request(t, http.MethodPost, "/cards", tt.body,
				app.authed(app.cardHandler.CreateCard), withCookie(cookie))
			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "INCORRECT_REQUEST", decodeError(t, rec).Error.Code)
		})
	}
}

func TestCardHandler_ListCards_Unauthenticated(t *testing.T) {
	app := newTestApp(t)

	rec := app.request(t, http.MethodGet, "/cards", "",
		app.authed(app.cardHandler.ListCards))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "AUTH_FAILED", decodeError(t, rec).Error.Code)
}

func TestCardHandler_DeleteCard_Forbidden(t *testing.T) {
	app := newTestApp(t)
	ownerCookie, _ := app.signUpAndIn(t, "owner@example.com", "correct-horse")
	otherCookie, _ := app.signUpAndIn(t, "other@example.com", "correct-horse")

	rec := app.request(t, http.MethodPost, "/cards",
		`{"name":"Sunset","link":"https://example.com/sunset.jpg"}`,
		app.authed(app.cardHandler.CreateCard), withCookie(ownerCookie))
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Data struct {
			ID string `json:"_id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	rec = app.requestWithParam(t, http.MethodDelete, "/cards/"+resp.Data.ID,
		"cardId", resp.Data.ID, "",
		app.authed(app.cardHandler.DeleteCard), withCookie(otherCookie))
	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "FORBIDDEN", decodeError(t, rec).Error.Code)
}
