package main

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	// No simulated waits during tests.
	viper.Set("SIGNIN_DELAY_MS", 0)
	viper.Set("PROCESSING_DELAY_MS", 0)
	log.SetOutput(io.Discard)
	code := m.Run()
	os.Exit(code)
}

func TestNewAppHealthCheck(t *testing.T) {
	app, mqClient, err := NewApp()
	assert.NoError(t, err)
	// No broker configured by default.
	assert.Nil(t, mqClient)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)
	assert.Contains(t, string(body), `"status":"healthy"`)
}

func TestNewAppServesSeededCatalog(t *testing.T) {
	app, _, err := NewApp()
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/menu/items", nil)
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var items []map[string]interface{}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&items))
	assert.Len(t, items, 52)
}
