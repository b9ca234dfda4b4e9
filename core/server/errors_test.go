package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http/httptest"
	"testing"

	"admin-console/core/console"
	"admin-console/core/pager"
	"admin-console/core/snapshot"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"Stale", fmt.Errorf("%w: request 1", console.ErrStaleResponse), fiber.StatusConflict},
		{"Session Not Found", fmt.Errorf("%w: abc", console.ErrSessionNotFound), fiber.StatusNotFound},
		{"Row Not Found", console.ErrRowNotFound, fiber.StatusNotFound},
		{"Snapshot Not Found", snapshot.ErrNotFound, fiber.StatusNotFound},
		{"Unknown Move", fmt.Errorf("%w %q", pager.ErrUnknownMove, "up"), fiber.StatusBadRequest},
		{"Fiber Error", fiber.NewError(fiber.StatusBadRequest, "bad move"), fiber.StatusBadRequest},
		{"Other", errors.New("boom"), fiber.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusFor(tt.err))
		})
	}
}

func TestError(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return Error(c, fmt.Errorf("%w: abc", console.ErrSessionNotFound))
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "session not found: abc", body["error"])
}
