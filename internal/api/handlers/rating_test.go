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

// RatingHandlerTestSuite defines the test suite for RatingHandler
type RatingHandlerTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	mockRatingService *mocks.MockRatingServiceInterface
	fixture           *apiFixture
	url               string
	recipeID          uuid.UUID
}

func (suite *RatingHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRatingService = mocks.NewMockRatingServiceInterface(suite.ctrl)
	suite.fixture = newAPIFixture(suite.T(), suite.ctrl)
	suite.recipeID = uuid.New()
	suite.url = "/api/recipes/" + suite.recipeID.String() + "/rating"

	handler := NewRatingHandler(suite.mockRatingService)
	suite.fixture.public.GET("/recipes/:id/rating/public", handler.GetPublicRating)
	suite.fixture.protected.POST("/recipes/:id/rating", handler.SubmitRating)
	suite.fixture.protected.GET("/recipes/:id/rating", handler.GetRating)
	suite.fixture.protected.DELETE("/recipes/:id/rating", handler.DeleteRating)
}

func (suite *RatingHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *RatingHandlerTestSuite) TestSubmitRating() {
	suite.mockRatingService.EXPECT().
		Upsert(gomock.Any(), suite.fixture.user.ID, suite.recipeID, &service.RatingRequest{Rating: 4}).
		Return(&service.RatingSubmitResponse{AverageRating: 4, RatingsCount: 1}, nil)

	recorder := suite.fixture.httpSuite.MakeAuthedRequest(http.MethodPost, suite.url, suite.fixture.token, map[string]interface{}{"rating": 4})

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	body := decodeEnvelope(suite.T(), recorder)
	assert.Equal(suite.T(), "Rating submitted successfully.", body.Message)
	assert.Contains(suite.T(), string(body.Data), `"ratingsCount":1`)
}

func (suite *RatingHandlerTestSuite) TestSubmitRatingNotANumber() {
	suite.mockRatingService.EXPECT().
		Upsert(gomock.Any(), suite.fixture.user.ID, suite.recipeID, &service.RatingRequest{DecodeError: service.RatingNumberMessage}).
		Return(nil, apperrors.NewValidationError("rating", service.RatingNumberMessage))

	recorder := suite.fixture.httpSuite.MakeAuthedRequest(http.MethodPost, suite.url, suite.fixture.token, map[string]interface{}{"rating": "five"})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusUnprocessableEntity, "Validation failed.")
	assert.Equal(suite.T(), []string{"Rating must be a number."}, decodeEnvelope(suite.T(), recorder).Errors["rating"])
}

func (suite *RatingHandlerTestSuite) TestSubmitOwnRecipe() {
	suite.mockRatingService.EXPECT().
		Upsert(gomock.Any(), gomock.Any(), suite.recipeID, gomock.Any()).
		Return(nil, apperrors.ErrSelfRatingForbidden)

	recorder := suite.fixture.httpSuite.MakeAuthedRequest(http.MethodPost, suite.url, suite.fixture.token, map[string]interface{}{"rating": 5})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusForbidden, "You cannot rate your own recipe.")
}

func (suite *RatingHandlerTestSuite) TestGetRatingWithoutOwnRating() {
	suite.mockRatingService.EXPECT().
		Get(gomock.Any(), suite.fixture.user.ID, suite.recipeID).
		Return(&service.UserRatingResponse{AverageRating: 3.7, RatingsCount: 3}, nil)

	recorder := suite.fixture.httpSuite.MakeAuthedRequest(http.MethodGet, suite.url, suite.fixture.token, nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	assert.JSONEq(suite.T(), `{"userRating":null,"averageRating":3.7,"ratingsCount":3}`, string(decodeEnvelope(suite.T(), recorder).Data))
}

func (suite *RatingHandlerTestSuite) TestGetPublicRatingIsAnonymous() {
	owner := uuid.New()
	suite.mockRatingService.EXPECT().
		GetPublic(gomock.Any(), suite.recipeID).
		Return(&service.PublicRatingResponse{AverageRating: 4.5, RatingsCount: 2, RecipeOwnerID: &owner}, nil)

	recorder := suite.fixture.httpSuite.MakeRequest(http.MethodGet, suite.url+"/public", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	assert.Contains(suite.T(), string(decodeEnvelope(suite.T(), recorder).Data), owner.String())
}

func (suite *RatingHandlerTestSuite) TestDeleteMissingRating() {
	suite.mockRatingService.EXPECT().
		Delete(gomock.Any(), suite.fixture.user.ID, suite.recipeID).
		Return(nil, apperrors.ErrRatingNotFound)

	recorder := suite.fixture.httpSuite.MakeAuthedRequest(http.MethodDelete, suite.url, suite.fixture.token, nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "Rating not found.")
}

func (suite *RatingHandlerTestSuite) TestDeleteRating() {
	suite.mockRatingService.EXPECT().
		Delete(gomock.Any(), suite.fixture.user.ID, suite.recipeID).
		Return(&service.RatingSummaryResponse{}, nil)

	recorder := suite.fixture.httpSuite.MakeAuthedRequest(http.MethodDelete, suite.url, suite.fixture.token, nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	assert.Equal(suite.T(), "Rating removed successfully.", decodeEnvelope(suite.T(), recorder).Message)
}

func TestRatingHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(RatingHandlerTestSuite))
}
