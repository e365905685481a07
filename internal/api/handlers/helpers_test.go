package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"procook-backend/internal/auth"
	"procook-backend/internal/database/models"
	"procook-backend/internal/mocks"
	"procook-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// apiFixture is a router with sessions and bearer authentication backed by a
// mocked user lookup. Every test signs in as user.
type apiFixture struct {
	httpSuite  *testutils.HTTPTestSuite
	tokens     *auth.TokenService
	middleware *auth.AuthMiddleware
	users      *mocks.MockUserRepositoryInterface
	user       *models.User
	token      string

	public    *gin.RouterGroup
	protected *gin.RouterGroup
}

func newAPIFixture(t *testing.T, ctrl *gomock.Controller) *apiFixture {
	cfg := &auth.AuthConfig{
		JWTSecret:     "handler-test-key",
		TokenTTL:      time.Hour,
		Issuer:        "procook-backend",
		SessionSecret: "handler-test-session",
		SessionMaxAge: 3600,
	}
	tokens, err := auth.NewTokenService(cfg)
	require.NoError(t, err)

	user := &models.User{Name: "Jane Cook", Email: "jane@procook.test"}
	user.ID = uuid.New()

	users := mocks.NewMockUserRepositoryInterface(ctrl)
	users.EXPECT().GetByID(gomock.Any(), user.ID).Return(user, nil).AnyTimes()

	issued, err := tokens.GenerateJWT(user)
	require.NoError(t, err)

	httpSuite := testutils.SetupHTTPTest()
	httpSuite.Router.Use(auth.SessionMiddleware(auth.NewSessionStore(cfg)))

	middleware := auth.NewAuthMiddleware(tokens, users)
	api := httpSuite.Router.Group("/api")
	protected := api.Group("")
	protected.Use(middleware.RequireAuth())

	return &apiFixture{
		httpSuite:  httpSuite,
		tokens:     tokens,
		middleware: middleware,
		users:      users,
		user:       user,
		token:      issued.AccessToken,
		public:     api,
		protected:  protected,
	}
}

// envelope is the decoded response body
type envelope struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Data    json.RawMessage     `json:"data"`
	Errors  map[string][]string `json:"errors"`
	Count   *int64              `json:"count"`
}

func decodeEnvelope(t *testing.T, recorder *httptest.ResponseRecorder) envelope {
	var body envelope
	testutils.ParseJSONResponse(t, recorder, &body)
	return body
}

func (f *apiFixture) bearer() map[string]string {
	return map[string]string{"Authorization": "Bearer " + f.token}
}

func pngBytes() []byte {
	return []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00\x1f\x15\xc4\x89")
}
