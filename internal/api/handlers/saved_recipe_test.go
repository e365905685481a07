package handlers

import (
	"net/http"
	"testing"

	apperrors "procook-backend/internal/errors"
	"procook-backend/internal/mocks"
	"procook-backend/internal/service"
	"procook-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// SavedRecipeHandlerTestSuite defines the test suite for SavedRecipeHandler
type SavedRecipeHandlerTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockSavedService *mocks.MockSavedRecipeServiceInterface
	fixture          *apiFixture
	recipeID         uuid.UUID
}

func (suite *SavedRecipeHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockSavedService = mocks.NewMockSavedRecipeServiceInterface(suite.ctrl)
	suite.fixture = newAPIFixture(suite.T(), suite.ctrl)
	suite.recipeID = uuid.New()

	handler := NewSavedRecipeHandler(suite.mockSavedService)
	suite.fixture.protected.GET("/saved-recipes", handler.ListSaved)
	suite.fixture.protected.GET("/recipes/:id/saved", handler.IsSaved)
	suite.fixture.protected.POST("/recipes/:id/save", handler.ToggleSaved)
}

func (suite *SavedRecipeHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *SavedRecipeHandlerTestSuite) TestToggleAnswersWithNewState() {
	gomock.InOrder(
		suite.mockSavedService.EXPECT().Toggle(gomock.Any(), suite.fixture.user.ID, suite.recipeID).Return(true, nil),
		suite.mockSavedService.EXPECT().Toggle(gomock.Any(), suite.fixture.user.ID, suite.recipeID).Return(false, nil),
	)
	url := "/api/recipes/" + suite.recipeID.String() + "/save"

	recorder := suite.fixture.httpSuite.MakeAuthedRequest(http.MethodPost, url, suite.fixture.token, nil)
	assert.Equal(suite.T(), http.StatusCreated, recorder.Code)
	body := decodeEnvelope(suite.T(), recorder)
	assert.Equal(suite.T(), "Recipe saved successfully.", body.Message)
	assert.JSONEq(suite.T(), `{"isSaved":true}`, string(body.Data))

	recorder = suite.fixture.httpSuite.MakeAuthedRequest(http.MethodPost, url, suite.fixture.token, nil)
	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	body = decodeEnvelope(suite.T(), recorder)
	assert.Equal(suite.T(), "Recipe unsaved successfully.", body.Message)
	assert.JSONEq(suite.T(), `{"isSaved":false}`, string(body.Data))
}

func (suite *SavedRecipeHandlerTestSuite) TestToggleMissingRecipe() {
	suite.mockSavedService.EXPECT().Toggle(gomock.Any(), gomock.Any(), suite.recipeID).Return(false, apperrors.ErrRecipeNotFound)

	recorder := suite.fixture.httpSuite.MakeAuthedRequest(http.MethodPost, "/api/recipes/"+suite.recipeID.String()+"/save", suite.fixture.token, nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "Recipe not found.")
}

func (suite *SavedRecipeHandlerTestSuite) TestIsSaved() {
	suite.mockSavedService.EXPECT().IsSaved(gomock.Any(), suite.fixture.user.ID, suite.recipeID).Return(true, nil)

	recorder := suite.fixture.httpSuite.MakeAuthedRequest(http.MethodGet, "/api/recipes/"+suite.recipeID.String()+"/saved", suite.fixture.token, nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	assert.JSONEq(suite.T(), `{"isSaved":true}`, string(decodeEnvelope(suite.T(), recorder).Data))
}

func (suite *SavedRecipeHandlerTestSuite) TestListSaved() {
	suite.mockSavedService.EXPECT().
		List(gomock.Any(), suite.fixture.user.ID, 0, 0).
		Return([]service.RecipeResponse{{ID: suite.recipeID}}, int64(1), nil)

	recorder := suite.fixture.httpSuite.MakeAuthedRequest(http.MethodGet, "/api/saved-recipes", suite.fixture.token, nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	assert.Equal(suite.T(), int64(1), *decodeEnvelope(suite.T(), recorder).Count)
}

func (suite *SavedRecipeHandlerTestSuite) TestListSavedRequiresAuthentication() {
	recorder := suite.fixture.httpSuite.MakeRequest(http.MethodGet, "/api/saved-recipes", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusUnauthorized, "")
}

func TestSavedRecipeHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(SavedRecipeHandlerTestSuite))
}
