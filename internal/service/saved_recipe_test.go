package service_test

import (
	"context"
	"errors"
	"testing"

	"procook-backend/internal/database/models"
	apperrors "procook-backend/internal/errors"
	"procook-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// SavedRecipeServiceTestSuite defines the test suite for SavedRecipeService
type SavedRecipeServiceTestSuite struct {
	suite.Suite
	ctx       context.Context
	ctrl      *gomock.Controller
	m         *mockStore
	service   *service.SavedRecipeService
	principal uuid.UUID
	recipeID  uuid.UUID
}

func (suite *SavedRecipeServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.ctrl = gomock.NewController(suite.T())
	suite.m = newMockStore(suite.ctrl)
	suite.service = service.NewSavedRecipeService(suite.m.store, newFakeAssets())
	suite.principal = uuid.New()
	suite.recipeID = uuid.New()
}

func (suite *SavedRecipeServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *SavedRecipeServiceTestSuite) TestToggleMissingRecipe() {
	suite.m.recipes.EXPECT().GetByID(gomock.Any(), suite.recipeID).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.Toggle(suite.ctx, suite.principal, suite.recipeID)
	assert.ErrorIs(suite.T(), err, apperrors.ErrRecipeNotFound)
}

func (suite *SavedRecipeServiceTestSuite) TestToggleReportsNewState() {
	suite.m.recipes.EXPECT().GetByID(gomock.Any(), suite.recipeID).Return(&models.Recipe{}, nil).Times(2)
	gomock.InOrder(
		suite.m.saved.EXPECT().Toggle(gomock.Any(), suite.principal, suite.recipeID).Return(true, nil),
		suite.m.saved.EXPECT().Toggle(gomock.Any(), suite.principal, suite.recipeID).Return(false, nil),
	)

	saved, err := suite.service.Toggle(suite.ctx, suite.principal, suite.recipeID)
	require.NoError(suite.T(), err)
	assert.True(suite.T(), saved)

	saved, err = suite.service.Toggle(suite.ctx, suite.principal, suite.recipeID)
	require.NoError(suite.T(), err)
	assert.False(suite.T(), saved)
}

func (suite *SavedRecipeServiceTestSuite) TestToggleFailureIsInternal() {
	suite.m.recipes.EXPECT().GetByID(gomock.Any(), suite.recipeID).Return(&models.Recipe{}, nil)
	suite.m.saved.EXPECT().Toggle(gomock.Any(), suite.principal, suite.recipeID).Return(false, errors.New("deadlock detected"))

	_, err := suite.service.Toggle(suite.ctx, suite.principal, suite.recipeID)
	assert.True(suite.T(), apperrors.IsInternal(err))
	assert.ErrorContains(suite.T(), err, "toggle saved recipe")
}

func (suite *SavedRecipeServiceTestSuite) TestIsSaved() {
	suite.m.recipes.EXPECT().GetByID(gomock.Any(), suite.recipeID).Return(&models.Recipe{}, nil)
	suite.m.saved.EXPECT().Exists(gomock.Any(), suite.principal, suite.recipeID).Return(true, nil)

	saved, err := suite.service.IsSaved(suite.ctx, suite.principal, suite.recipeID)
	require.NoError(suite.T(), err)
	assert.True(suite.T(), saved)
}

func (suite *SavedRecipeServiceTestSuite) TestListIncludesAggregates() {
	r := models.Recipe{BaseModel: models.BaseModel{ID: suite.recipeID}, Image: strPtr("recipes/a.png")}
	suite.m.saved.EXPECT().ListRecipes(gomock.Any(), suite.principal, service.MaxRecipeListLimit, 0).Return([]models.Recipe{r}, int64(1), nil)
	suite.m.ratings.EXPECT().Summaries(gomock.Any(), []uuid.UUID{r.ID}).Return(map[uuid.UUID]models.RatingSummary{
		r.ID: {RecipeID: r.ID, Average: 4.25, Count: 4},
	}, nil)

	list, total, err := suite.service.List(suite.ctx, suite.principal, 0, -5)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(1), total)
	require.Len(suite.T(), list, 1)
	assert.Equal(suite.T(), 4.3, list[0].AverageRating)
	assert.Equal(suite.T(), "/uploads/recipes/a.png", *list[0].ImageURL)
}

func (suite *SavedRecipeServiceTestSuite) TestRequiresPrincipal() {
	_, err := suite.service.Toggle(suite.ctx, uuid.Nil, suite.recipeID)
	assert.True(suite.T(), apperrors.IsAuthentication(err))
}

func TestSavedRecipeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SavedRecipeServiceTestSuite))
}
