//go:build integration
// +build integration

package repository

import (
	"context"
	"sync"
	"testing"

	"procook-backend/internal/database/models"
	"procook-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// SavedRecipeRepositoryTestSuite tests the SavedRecipeRepository
type SavedRecipeRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	store         *GormStore
	repo          *SavedRecipeRepository
	factories     *testutils.FactorySet
	ctx           context.Context
	user          *models.User
	recipe        *models.Recipe
}

func (suite *SavedRecipeRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.store = NewStore(suite.baseTestSuite.DB)
	suite.repo = NewSavedRecipeRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
	suite.ctx = context.Background()
}

func (suite *SavedRecipeRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *SavedRecipeRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
	suite.user = suite.factories.User.Create()
	suite.Require().NoError(suite.store.Users().Create(suite.ctx, suite.user))
	suite.recipe = suite.factories.Recipe.WithOwner(suite.user.ID)
	suite.Require().NoError(suite.store.Recipes().Create(suite.ctx, suite.recipe))
}

func (suite *SavedRecipeRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *SavedRecipeRepositoryTestSuite) TestToggleFlips() {
	saved, err := suite.repo.Toggle(suite.ctx, suite.user.ID, suite.recipe.ID)
	suite.NoError(err)
	suite.True(saved)

	exists, err := suite.repo.Exists(suite.ctx, suite.user.ID, suite.recipe.ID)
	suite.NoError(err)
	suite.True(exists)

	saved, err = suite.repo.Toggle(suite.ctx, suite.user.ID, suite.recipe.ID)
	suite.NoError(err)
	suite.False(saved)

	exists, err = suite.repo.Exists(suite.ctx, suite.user.ID, suite.recipe.ID)
	suite.NoError(err)
	suite.False(exists)
}

func (suite *SavedRecipeRepositoryTestSuite) TestConcurrentTogglesNeverDuplicate() {
	var wg sync.WaitGroup
	for i := 0; i < 6; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := suite.repo.Toggle(suite.ctx, suite.user.ID, suite.recipe.ID)
			suite.NoError(err)
		}()
	}
	wg.Wait()

	var count int64
	suite.baseTestSuite.DB.Model(&models.SavedRecipe{}).
		Where("user_id = ? AND recipe_id = ?", suite.user.ID, suite.recipe.ID).
		Count(&count)
	suite.LessOrEqual(count, int64(1))
}

func (suite *SavedRecipeRepositoryTestSuite) TestListRecipesNewestSavedFirst() {
	second := suite.factories.Recipe.WithTitle(suite.user.ID, "Second")
	suite.Require().NoError(suite.store.Recipes().Create(suite.ctx, second))

	_, err := suite.repo.Toggle(suite.ctx, suite.user.ID, suite.recipe.ID)
	suite.Require().NoError(err)
	_, err = suite.repo.Toggle(suite.ctx, suite.user.ID, second.ID)
	suite.Require().NoError(err)

	recipes, total, err := suite.repo.ListRecipes(suite.ctx, suite.user.ID, 10, 0)
	suite.NoError(err)
	suite.Equal(int64(2), total)
	suite.Require().Len(recipes, 2)
	suite.Equal(second.ID, recipes[0].ID)
	suite.NotNil(recipes[0].User)
}

func (suite *SavedRecipeRepositoryTestSuite) TestDeleteByRecipesAndUser() {
	_, err := suite.repo.Toggle(suite.ctx, suite.user.ID, suite.recipe.ID)
	suite.Require().NoError(err)

	suite.NoError(suite.repo.DeleteByRecipes(suite.ctx, []uuid.UUID{suite.recipe.ID}))
	exists, err := suite.repo.Exists(suite.ctx, suite.user.ID, suite.recipe.ID)
	suite.NoError(err)
	suite.False(exists)

	_, err = suite.repo.Toggle(suite.ctx, suite.user.ID, suite.recipe.ID)
	suite.Require().NoError(err)
	suite.NoError(suite.repo.DeleteByUser(suite.ctx, suite.user.ID))
	exists, err = suite.repo.Exists(suite.ctx, suite.user.ID, suite.recipe.ID)
	suite.NoError(err)
	suite.False(exists)
}

func TestSavedRecipeRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(SavedRecipeRepositoryTestSuite))
}
