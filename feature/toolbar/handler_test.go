package toolbar

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"admin-console/core/console"
	"admin-console/core/snapshot"
	tb "admin-console/core/toolbar"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T) (*fiber.App, string) {
	t.Helper()
	registry := console.NewRegistry(snapshot.NewMemory(), console.Options{}, zap.NewNop())
	id, err := registry.Create(context.Background())
	require.NoError(t, err)

	app := fiber.New()
	NewHandler(NewService(registry, zap.NewNop())).RegisterRoutes(app)
	return app, id
}

func post(t *testing.T, app *fiber.App, target string, body any) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest("POST", target, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decodeResult(t *testing.T, resp *http.Response) ResponseResult {
	t.Helper()
	var res ResponseResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	return res
}

func TestHandleResponse_FullThenPartial(t *testing.T) {
	app, id := setupTestApp(t)
	base := "/sessions/" + id + "/toolbar"

	resp := post(t, app, base+"/registrations", RegistrationRequest{
		Registrations: []tb.Registration{{ID: "save"}},
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	full := ResponseRequest{
		Response: console.Response{RequestID: 1, Full: true},
		Fragment: console.Fragment{
			Toolbar: []tb.Button{{ID: "new"}, {}, {ID: "save"}, {ID: "delete"}},
		},
	}
	resp = post(t, app, base+"/responses", full)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	res := decodeResult(t, resp)
	assert.True(t, res.Changed)
	assert.True(t, res.Summary.Full)
	assert.Equal(t, []string{"new", "save", "delete"}, res.State.IDs())
	assert.Len(t, res.Applied, 4)

	// The partial update removed the element behind "save".
	partial := ResponseRequest{
		Response: console.Response{RequestID: 2},
		Fragment: console.Fragment{Present: map[string]bool{"save": false}},
	}
	resp = post(t, app, base+"/responses", partial)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	res = decodeResult(t, resp)
	assert.True(t, res.Changed)
	assert.Equal(t, []string{"new", "delete"}, res.State.IDs())
	require.Len(t, res.Actions, 1)
	assert.Equal(t, tb.Action{Type: tb.ActionRemove, ID: "save", From: 2, To: -1, Reason: "element absent"}, res.Actions[0])

	// Nothing changes on an empty partial update.
	resp = post(t, app, base+"/responses", ResponseRequest{Response: console.Response{RequestID: 3}})
	res = decodeResult(t, resp)
	assert.False(t, res.Changed)
	assert.Nil(t, res.Applied)
}

func TestHandleResponse_Stale(t *testing.T) {
	app, id := setupTestApp(t)
	base := "/sessions/" + id + "/toolbar/responses"

	resp := post(t, app, base, ResponseRequest{Response: console.Response{RequestID: 5, Full: true}})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = post(t, app, base, ResponseRequest{Response: console.Response{RequestID: 4}})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestHandleResponse_MissingRequestID(t *testing.T) {
	app, id := setupTestApp(t)

	resp := post(t, app, "/sessions/"+id+"/toolbar/responses", ResponseRequest{})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestHandleAddItems(t *testing.T) {
	app, id := setupTestApp(t)
	base := "/sessions/" + id + "/toolbar"

	resp := post(t, app, base+"/items", ItemsRequest{Items: []Item{
		{ResponseID: "r1", Button: tb.Button{ID: "publish", Label: "Publish"}, Disabled: true},
		{Separator: true},
		{ResponseID: "r1", Button: tb.Button{ID: "preview"}},
	}})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var pending []tb.Button
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&pending))
	require.Len(t, pending, 3)
	assert.True(t, pending[0].IsDisabled())
	assert.True(t, pending[1].IsSeparator())

	resp = post(t, app, base+"/responses", ResponseRequest{Response: console.Response{RequestID: 1, Full: true}})
	res := decodeResult(t, resp)
	assert.Equal(t, []string{"publish", "preview"}, res.State.IDs())

	req := httptest.NewRequest("GET", base, nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	var v View
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	assert.Equal(t, uint64(1), v.LastRequest)
	assert.Empty(t, v.Pending)
	assert.Len(t, v.State, 3)
}

func TestHandleGetToolbar_UnknownSession(t *testing.T) {
	app, _ := setupTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/sessions/nope/toolbar", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestHandleRegister_BadBody(t *testing.T) {
	app, id := setupTestApp(t)

	req := httptest.NewRequest("POST", "/sessions/"+id+"/toolbar/registrations", bytes.NewBufferString("[1"))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
