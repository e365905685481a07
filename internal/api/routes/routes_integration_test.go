//go:build integration
// +build integration

package routes

import (
	"encoding/json"
	"net/http"
	"testing"

	"procook-backend/internal/storage"
	"procook-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Data    json.RawMessage     `json:"data"`
	Errors  map[string][]string `json:"errors"`
	Count   *int64              `json:"count"`
}

func newAPI(t *testing.T, s *testutils.BaseTestSuite) *testutils.HTTPTestSuite {
	t.Helper()
	assets, err := storage.NewLocalStore(t.TempDir(), "/uploads")
	require.NoError(t, err)
	router, err := SetupRoutes(s.DB, s.Config, assets, "test")
	require.NoError(t, err)
	return &testutils.HTTPTestSuite{Router: router}
}

func register(t *testing.T, api *testutils.HTTPTestSuite, name, email string) string {
	t.Helper()
	recorder := api.MakeRequest(http.MethodPost, "/api/register", map[string]string{
		"name":                  name,
		"email":                 email,
		"password":              "Password123",
		"password_confirmation": "Password123",
	})
	require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())

	var body envelope
	testutils.ParseJSONResponse(t, recorder, &body)
	var session struct {
		Token struct {
			AccessToken string `json:"access_token"`
		} `json:"token"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &session))
	return session.Token.AccessToken
}

func TestPublicSurface(t *testing.T) {
	testutils.RunWithTestSuite(t, func(s *testutils.BaseTestSuite) {
		s.CleanTestDB()
		api := newAPI(t, s)

		api.RunHTTPTestCases(t, []testutils.HTTPTestCase{
			{
				Name:             "liveness",
				Request:          testutils.MockHTTPRequest{Method: http.MethodGet, URL: "/health/live"},
				ExpectedResponse: testutils.MockHTTPResponse{Status: http.StatusOK},
			},
			{
				Name:             "empty recipe list",
				Request:          testutils.MockHTTPRequest{Method: http.MethodGet, URL: "/api/recipes"},
				ExpectedResponse: testutils.MockHTTPResponse{Status: http.StatusOK},
			},
			{
				Name:             "public list ignores an unusable token",
				Request:          testutils.MockHTTPRequest{Method: http.MethodGet, URL: "/api/recipes", Headers: map[string]string{"Authorization": "Bearer expired"}},
				ExpectedResponse: testutils.MockHTTPResponse{Status: http.StatusOK},
			},
			{
				Name:             "protected route without credentials",
				Request:          testutils.MockHTTPRequest{Method: http.MethodGet, URL: "/api/my-recipes"},
				ExpectedResponse: testutils.MockHTTPResponse{Status: http.StatusUnauthorized},
			},
			{
				Name:             "unknown route",
				Request:          testutils.MockHTTPRequest{Method: http.MethodGet, URL: "/api/nope", Headers: map[string]string{"X-Request-ID": "req-1"}},
				ExpectedResponse: testutils.MockHTTPResponse{Status: http.StatusNotFound, Body: map[string]interface{}{"success": false, "message": "Endpoint not found", "path": "/api/nope", "method": "GET", "request_id": "req-1"}},
			},
		})
	})
}

func TestHealthRoutesReachDatabase(t *testing.T) {
	testutils.RunWithTestSuite(t, func(s *testutils.BaseTestSuite) {
		api := &testutils.HTTPTestSuite{Router: SetupHealthRoutes(s.DB, "test")}

		recorder := api.MakeRequest(http.MethodGet, "/health", nil)
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"database":"healthy"`)

		recorder = api.MakeRequest(http.MethodGet, "/health/ready", nil)
		assert.Equal(t, http.StatusOK, recorder.Code)
	})
}

func TestRecipeLifecycle(t *testing.T) {
	testutils.RunWithTestSuite(t, func(s *testutils.BaseTestSuite) {
		s.CleanTestDB()
		api := newAPI(t, s)
		owner := register(t, api, "Olive Owner", "olive@procook.test")
		critic := register(t, api, "Carl Critic", "carl@procook.test")

		recorder := api.MakeAuthedRequest(http.MethodPost, "/api/recipes", owner, map[string]interface{}{
			"title":             "Tomato Soup",
			"short_description": "A warming soup for cold evenings.",
			"cuisine_type":      "British",
			"category":          "Soup",
			"prep_time":         10,
			"cook_time":         "25",
			"serving_size":      2,
			"ingredients": []map[string]string{
				{"name": "Tomatoes", "measurement": "800g"},
				{"name": "Onion", "measurement": "1"},
			},
		})
		require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())
		var body envelope
		testutils.ParseJSONResponse(t, recorder, &body)
		var recipe struct {
			ID        string `json:"id"`
			TotalTime int    `json:"total_time"`
		}
		require.NoError(t, json.Unmarshal(body.Data, &recipe))
		assert.Equal(t, 35, recipe.TotalTime)
		base := "/api/recipes/" + recipe.ID

		recorder = api.MakeAuthedRequest(http.MethodPost, base+"/rating", owner, map[string]int{"rating": 5})
		testutils.AssertErrorResponse(t, recorder, http.StatusForbidden, "")

		recorder = api.MakeAuthedRequest(http.MethodPost, base+"/rating", critic, map[string]int{"rating": 4})
		require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

		recorder = api.MakeRequest(http.MethodGet, base+"/rating/public", nil)
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"ratingsCount":1`)

		recorder = api.MakeAuthedRequest(http.MethodPost, base+"/comments", critic, map[string]string{"comment": "Lovely and simple."})
		require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())

		recorder = api.MakeAuthedRequest(http.MethodPost, base+"/save", critic, nil)
		assert.Equal(t, http.StatusCreated, recorder.Code)

		recorder = api.MakeAuthedRequest(http.MethodDelete, base, critic, nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusForbidden, "")

		recorder = api.MakeAuthedRequest(http.MethodDelete, base, owner, nil)
		testutils.AssertSuccessResponse(t, recorder, http.StatusOK)

		recorder = api.MakeRequest(http.MethodGet, base, nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "Recipe not found.")

		recorder = api.MakeAuthedRequest(http.MethodGet, "/api/saved-recipes", critic, nil)
		testutils.ParseJSONResponse(t, recorder, &body)
		require.NotNil(t, body.Count)
		assert.Equal(t, int64(0), *body.Count)
	})
}
