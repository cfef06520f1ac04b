package main

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/whalekit/strategist/pkg/generation"
	"github.com/whalekit/strategist/pkg/models"
	"github.com/whalekit/strategist/pkg/session"
)

func setupTestApp() *fiber.App {
	generator := generation.NewSimulator(
		generation.WithLatency(0),
		generation.WithFailureRate(0),
	)

	api := NewAPI(
		slog.Default(),
		session.NewManager(),
		generator,
		nil,
	)

	return api.App()
}

func TestAPI_RootEndpoint(t *testing.T) {
	app := setupTestApp()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	defer func() {
		err := resp.Body.Close()
		if err != nil {
			t.Logf("Failed to close response body: %v", err)
		}
	}()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "Strategist API", string(body))
}

func TestAPI_HealthCheck(t *testing.T) {
	app := setupTestApp()

	req := httptest.NewRequest(http.MethodGet, "/livez", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	defer func() {
		err := resp.Body.Close()
		if err != nil {
			t.Logf("Failed to close response body: %v", err)
		}
	}()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "OK", string(body))
}

func TestAPI_GetSessions_Empty(t *testing.T) {
	app := setupTestApp()

	req := httptest.NewRequest(http.MethodGet, "/sessions/", nil)
	req.Header.Set("Accept", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)

	defer func() {
		err := resp.Body.Close()
		if err != nil {
			t.Logf("Failed to close response body: %v", err)
		}
	}()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var payload struct {
		Sessions   []models.Session `json:"sessions"`
		TotalCount int              `json:"total_count"`
	}

	err = json.NewDecoder(resp.Body).Decode(&payload)
	require.NoError(t, err)
	assert.Empty(t, payload.Sessions)
	assert.Zero(t, payload.TotalCount)
}

func TestAPI_ScenarioCatalog(t *testing.T) {
	app := setupTestApp()

	req := httptest.NewRequest(http.MethodGet, "/scenarios", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	defer func() {
		err := resp.Body.Close()
		if err != nil {
			t.Logf("Failed to close response body: %v", err)
		}
	}()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var scenarios []models.Scenario

	err = json.NewDecoder(resp.Body).Decode(&scenarios)
	require.NoError(t, err)
	require.Len(t, scenarios, 4)
	assert.Equal(t, "nurture", scenarios[0].ID)
}
