package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"procook-backend/internal/auth"
	apperrors "procook-backend/internal/errors"
	"procook-backend/internal/mocks"
	"procook-backend/internal/service"
	"procook-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// AccountHandlerTestSuite defines the test suite for AccountHandler
type AccountHandlerTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockAccountService *mocks.MockAccountServiceInterface
	fixture            *apiFixture
}

func (suite *AccountHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockAccountService = mocks.NewMockAccountServiceInterface(suite.ctrl)
	suite.fixture = newAPIFixture(suite.T(), suite.ctrl)

	handler := NewAccountHandler(suite.mockAccountService, suite.fixture.tokens, suite.fixture.middleware)
	suite.fixture.public.POST("/register", handler.Register)
	suite.fixture.public.POST("/login", handler.Login)
	suite.fixture.protected.POST("/logout", handler.Logout)
	suite.fixture.protected.GET("/user", handler.CurrentUser)
	suite.fixture.protected.GET("/profile", handler.Profile)
	suite.fixture.protected.PUT("/profile", handler.UpdateProfile)
	suite.fixture.protected.PUT("/profile/password", handler.ChangePassword)
	suite.fixture.protected.DELETE("/profile", handler.DeleteAccount)
}

func (suite *AccountHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AccountHandlerTestSuite) userResponse() *service.UserResponse {
	return &service.UserResponse{
		ID:        suite.fixture.user.ID,
		Name:      suite.fixture.user.Name,
		Email:     suite.fixture.user.Email,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func (suite *AccountHandlerTestSuite) TestRegisterStartsSessionAndIssuesToken() {
	req := service.RegisterRequest{
		Name:                 "Jane Cook",
		Email:                "Jane@ProCook.test",
		Password:             "Secret123",
		PasswordConfirmation: "Secret123",
	}
	suite.mockAccountService.EXPECT().Register(gomock.Any(), &req).Return(suite.userResponse(), nil)

	recorder := suite.fixture.httpSuite.MakeRequest(http.MethodPost, "/api/register", req)

	assert.Equal(suite.T(), http.StatusCreated, recorder.Code)
	assert.Contains(suite.T(), recorder.Header().Get("Set-Cookie"), auth.SessionName+"=")

	body := decodeEnvelope(suite.T(), recorder)
	assert.Equal(suite.T(), "Registration successful! Welcome to ProCook.", body.Message)

	var session AuthResponse
	require.NoError(suite.T(), json.Unmarshal(body.Data, &session))
	assert.Equal(suite.T(), suite.fixture.user.ID, session.User.ID)
	claims, err := suite.fixture.tokens.ValidateJWT(session.Token.AccessToken)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), suite.fixture.user.ID.String(), claims.UserID)
}

func (suite *AccountHandlerTestSuite) TestRegisterValidationFailure() {
	verrs := apperrors.NewValidationErrors("Validation failed")
	verrs.Add("email", "This email is already registered. Please login instead.")
	suite.mockAccountService.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, verrs)

	recorder := suite.fixture.httpSuite.MakeRequest(http.MethodPost, "/api/register", map[string]string{"email": "taken@procook.test"})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusUnprocessableEntity, "Validation failed")
	assert.Equal(suite.T(), []string{"This email is already registered. Please login instead."}, decodeEnvelope(suite.T(), recorder).Errors["email"])
	assert.Empty(suite.T(), recorder.Header().Get("Set-Cookie"))
}

func (suite *AccountHandlerTestSuite) TestLoginInvalidCredentials() {
	suite.mockAccountService.EXPECT().Login(gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrInvalidCredentials)

	recorder := suite.fixture.httpSuite.MakeRequest(http.MethodPost, "/api/login", map[string]string{
		"email":    "jane@procook.test",
		"password": "wrong",
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusUnauthorized, "Invalid credentials")
	assert.Equal(suite.T(), []string{"The provided credentials are incorrect."}, decodeEnvelope(suite.T(), recorder).Errors["email"])
}

func (suite *AccountHandlerTestSuite) TestLogin() {
	suite.mockAccountService.EXPECT().Login(gomock.Any(), gomock.Any()).Return(suite.userResponse(), nil)

	recorder := suite.fixture.httpSuite.MakeRequest(http.MethodPost, "/api/login", map[string]string{
		"email":    "jane@procook.test",
		"password": "Secret123",
	})

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	assert.Equal(suite.T(), "Login successful! Welcome back.", decodeEnvelope(suite.T(), recorder).Message)
}

func (suite *AccountHandlerTestSuite) TestLogoutRevokesBearerToken() {
	recorder := suite.fixture.httpSuite.MakeAuthedRequest(http.MethodPost, "/api/logout", suite.fixture.token, nil)
	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	assert.Equal(suite.T(), "Logged out successfully", decodeEnvelope(suite.T(), recorder).Message)

	recorder = suite.fixture.httpSuite.MakeAuthedRequest(http.MethodGet, "/api/user", suite.fixture.token, nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusUnauthorized, "")
}

func (suite *AccountHandlerTestSuite) TestProfile() {
	suite.mockAccountService.EXPECT().
		Profile(gomock.Any(), suite.fixture.user.ID).
		Return(&service.ProfileResponse{User: *suite.userResponse()}, nil)

	recorder := suite.fixture.httpSuite.MakeAuthedRequest(http.MethodGet, "/api/profile", suite.fixture.token, nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	assert.Contains(suite.T(), string(decodeEnvelope(suite.T(), recorder).Data), `"stats"`)
}

func (suite *AccountHandlerTestSuite) TestChangePasswordWrongCurrent() {
	verrs := apperrors.NewValidationErrors("Current password is incorrect.")
	verrs.Add("current_password", "The current password is incorrect.")
	suite.mockAccountService.EXPECT().ChangePassword(gomock.Any(), suite.fixture.user.ID, gomock.Any()).Return(verrs)

	recorder := suite.fixture.httpSuite.MakeAuthedRequest(http.MethodPut, "/api/profile/password", suite.fixture.token, map[string]string{
		"current_password":      "nope",
		"password":              "Another123",
		"password_confirmation": "Another123",
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusUnprocessableEntity, "Current password is incorrect.")
}

func (suite *AccountHandlerTestSuite) TestDeleteAccountEndsSession() {
	suite.mockAccountService.EXPECT().
		DeleteAccount(gomock.Any(), suite.fixture.user.ID, &service.DeleteAccountRequest{Password: "Secret123", Mode: "keep_data"}, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, _ *service.DeleteAccountRequest, session service.SessionTerminator) error {
			return session.InvalidateSession()
		})

	recorder := suite.fixture.httpSuite.MakeAuthedRequest(http.MethodDelete, "/api/profile", suite.fixture.token, map[string]string{
		"password": "Secret123",
		"mode":     "keep_data",
	})
	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	assert.Equal(suite.T(), "Account deleted successfully.", decodeEnvelope(suite.T(), recorder).Message)

	recorder = suite.fixture.httpSuite.MakeAuthedRequest(http.MethodGet, "/api/user", suite.fixture.token, nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusUnauthorized, "")
}

func (suite *AccountHandlerTestSuite) TestDeleteAccountReportsAllInputErrors() {
	verrs := apperrors.NewValidationErrors("Validation failed.")
	verrs.Add("password", "The password is incorrect.")
	verrs.Add("mode", "Please choose what happens to your data.")
	suite.mockAccountService.EXPECT().DeleteAccount(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(verrs)

	recorder := suite.fixture.httpSuite.MakeAuthedRequest(http.MethodDelete, "/api/profile", suite.fixture.token, map[string]string{"password": "bad"})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusUnprocessableEntity, "Validation failed.")
	body := decodeEnvelope(suite.T(), recorder)
	assert.Contains(suite.T(), body.Errors, "password")
	assert.Contains(suite.T(), body.Errors, "mode")
}

func TestAccountHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AccountHandlerTestSuite))
}
