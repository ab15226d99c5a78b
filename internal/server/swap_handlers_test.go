package server

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"skillswap/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// swapFixture is two logged-in users with one pending request from Alice to Bob.
type swapFixture struct {
	alice, bob     string // session tokens
	aliceID, bobID uint
	requestID      uint
}

func newSwapFixture(t *testing.T, s *Server, app *fiber.App) swapFixture {
	t.Helper()
	ctx := context.Background()

	f := swapFixture{
		alice: registerAndLogin(t, app, "Alice", "alice.fix@x.com", "secret123"),
		bob:   registerAndLogin(t, app, "Bob", "bob.fix@x.com", "secret123"),
	}

	aliceUser, err := s.userRepo.GetByEmail(ctx, "alice.fix@x.com")
	require.NoError(t, err)
	bobUser, err := s.userRepo.GetByEmail(ctx, "bob.fix@x.com")
	require.NoError(t, err)
	f.aliceID, f.bobID = aliceUser.ID, bobUser.ID

	resp, err := app.Test(jsonRequest(t, http.MethodPost, swapCreatePath(f.bobID, "Guitar"), nil, f.alice))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	body := decodeBody(t, resp)
	request := body["request"].(map[string]any)
	f.requestID = uint(request["id"].(float64))
	return f
}

func TestSendSwapRequest(t *testing.T) {
	t.Parallel()
	s, app := newTestServer(t)
	f := newSwapFixture(t, s, app)

	t.Run("skill with spaces survives the path", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(t, http.MethodPost,
			swapCreatePath(f.bobID, "Sourdough Baking"), nil, f.alice))
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		body := decodeBody(t, resp)
		request := body["request"].(map[string]any)
		assert.Equal(t, "Sourdough Baking", request["skill"])
		assert.Equal(t, "pending", request["status"])
	})

	t.Run("duplicate requests are allowed", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(t, http.MethodPost,
			swapCreatePath(f.bobID, "Guitar"), nil, f.alice))
		require.NoError(t, err)
		_ = resp.Body.Close()
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
	})

	t.Run("non-numeric receiver id is a 400", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/swaps/abc/Guitar", nil, f.alice))
		require.NoError(t, err)
		_ = resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestGetIncomingSwapRequests(t *testing.T) {
	t.Parallel()
	s, app := newTestServer(t)
	f := newSwapFixture(t, s, app)

	resp, err := app.Test(jsonRequest(t, http.MethodGet, "/api/swaps/", nil, f.bob))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	requests := body["requests"].([]any)
	require.Len(t, requests, 1)
	row := requests[0].(map[string]any)
	assert.Equal(t, "Alice", row["sender_name"])
	assert.Equal(t, "Guitar", row["skill"])
	assert.Equal(t, "pending", row["status"])

	// The sender's inbox stays empty; only the receiver sees the request.
	resp, err = app.Test(jsonRequest(t, http.MethodGet, "/api/swaps/", nil, f.alice))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body = decodeBody(t, resp)
	assert.Empty(t, body["requests"])
}

func TestAcceptSwapRequest(t *testing.T) {
	t.Parallel()
	s, app := newTestServer(t)
	f := newSwapFixture(t, s, app)
	acceptPath := fmt.Sprintf("/api/swaps/%d/accept", f.requestID)

	t.Run("sender may not accept", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(t, http.MethodPost, acceptPath, nil, f.alice))
		require.NoError(t, err)
		_ = resp.Body.Close()
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("receiver accepts", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(t, http.MethodPost, acceptPath, nil, f.bob))
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		body := decodeBody(t, resp)
		assert.Equal(t, "accepted", body["status"])
	})

	t.Run("second accept conflicts", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(t, http.MethodPost, acceptPath, nil, f.bob))
		require.NoError(t, err)
		_ = resp.Body.Close()
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	t.Run("reject after accept conflicts and changes nothing", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(t, http.MethodPost,
			fmt.Sprintf("/api/swaps/%d/reject", f.requestID), nil, f.bob))
		require.NoError(t, err)
		_ = resp.Body.Close()
		assert.Equal(t, http.StatusConflict, resp.StatusCode)

		request, err := s.swapRepo.GetByID(context.Background(), f.requestID)
		require.NoError(t, err)
		assert.Equal(t, models.SwapStatusAccepted, request.Status)
	})

	t.Run("unknown id is a 404", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/swaps/424242/accept", nil, f.bob))
		require.NoError(t, err)
		_ = resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestRejectSwapRequest(t *testing.T) {
	t.Parallel()
	s, app := newTestServer(t)
	f := newSwapFixture(t, s, app)

	resp, err := app.Test(jsonRequest(t, http.MethodPost,
		fmt.Sprintf("/api/swaps/%d/reject", f.requestID), nil, f.bob))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "rejected", body["status"])

	request, err := s.swapRepo.GetByID(context.Background(), f.requestID)
	require.NoError(t, err)
	assert.Equal(t, models.SwapStatusRejected, request.Status)
}

func TestDeleteSwapRequest(t *testing.T) {
	t.Parallel()
	s, app := newTestServer(t)
	f := newSwapFixture(t, s, app)
	deletePath := fmt.Sprintf("/api/swaps/%d", f.requestID)

	t.Run("sender may not delete", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(t, http.MethodDelete, deletePath, nil, f.alice))
		require.NoError(t, err)
		_ = resp.Body.Close()
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("receiver deletes from any state", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(t, http.MethodPost,
			fmt.Sprintf("/api/swaps/%d/accept", f.requestID), nil, f.bob))
		require.NoError(t, err)
		_ = resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		resp, err = app.Test(jsonRequest(t, http.MethodDelete, deletePath, nil, f.bob))
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		body := decodeBody(t, resp)
		assert.Equal(t, "Request deleted.", body["message"])

		_, err = s.swapRepo.GetByID(context.Background(), f.requestID)
		assert.Error(t, err)
	})

	t.Run("deleting again is a 404", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(t, http.MethodDelete, deletePath, nil, f.bob))
		require.NoError(t, err)
		_ = resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}
