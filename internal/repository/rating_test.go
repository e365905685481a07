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
	"gorm.io/gorm"
)

// RatingRepositoryTestSuite tests the RatingRepository
type RatingRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	store         *GormStore
	repo          *RatingRepository
	factories     *testutils.FactorySet
	ctx           context.Context
	owner         *models.User
	rater         *models.User
	recipe        *models.Recipe
}

func (suite *RatingRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.store = NewStore(suite.baseTestSuite.DB)
	suite.repo = NewRatingRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
	suite.ctx = context.Background()
}

func (suite *RatingRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *RatingRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
	suite.owner = suite.factories.User.Create()
	suite.rater = suite.factories.User.Create()
	suite.Require().NoError(suite.store.Users().Create(suite.ctx, suite.owner))
	suite.Require().NoError(suite.store.Users().Create(suite.ctx, suite.rater))
	suite.recipe = suite.factories.Recipe.WithOwner(suite.owner.ID)
	suite.Require().NoError(suite.store.Recipes().Create(suite.ctx, suite.recipe))
}

func (suite *RatingRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *RatingRepositoryTestSuite) TestUpsertOverwrites() {
	suite.NoError(suite.repo.Upsert(suite.ctx, suite.factories.Rating.Create(suite.recipe.ID, suite.rater.ID, 2)))
	suite.NoError(suite.repo.Upsert(suite.ctx, suite.factories.Rating.Create(suite.recipe.ID, suite.rater.ID, 5)))

	rating, err := suite.repo.GetByRecipeAndUser(suite.ctx, suite.recipe.ID, suite.rater.ID)
	suite.NoError(err)
	suite.Equal(int16(5), rating.Value)

	summary, err := suite.repo.Summary(suite.ctx, suite.recipe.ID)
	suite.NoError(err)
	suite.Equal(int64(1), summary.Count)
	suite.InDelta(5.0, summary.Average, 0.0001)
}

func (suite *RatingRepositoryTestSuite) TestConcurrentUpsertKeepsOneRow() {
	var wg sync.WaitGroup
	for i := int16(1); i <= 5; i++ {
		wg.Add(1)
		go func(v int16) {
			defer wg.Done()
			suite.NoError(suite.repo.Upsert(suite.ctx, suite.factories.Rating.Create(suite.recipe.ID, suite.rater.ID, v)))
		}(i)
	}
	wg.Wait()

	summary, err := suite.repo.Summary(suite.ctx, suite.recipe.ID)
	suite.NoError(err)
	suite.Equal(int64(1), summary.Count)
}

func (suite *RatingRepositoryTestSuite) TestValueOutOfRange() {
	suite.Error(suite.repo.Upsert(suite.ctx, suite.factories.Rating.Create(suite.recipe.ID, suite.rater.ID, 6)))
}

func (suite *RatingRepositoryTestSuite) TestSummaryWithoutRatings() {
	summary, err := suite.repo.Summary(suite.ctx, suite.recipe.ID)
	suite.NoError(err)
	suite.Zero(summary.Count)
	suite.Zero(summary.Average)
}

func (suite *RatingRepositoryTestSuite) TestSummaries() {
	third := suite.factories.User.Create()
	suite.Require().NoError(suite.store.Users().Create(suite.ctx, third))
	suite.Require().NoError(suite.repo.Upsert(suite.ctx, suite.factories.Rating.Create(suite.recipe.ID, suite.rater.ID, 4)))
	suite.Require().NoError(suite.repo.Upsert(suite.ctx, suite.factories.Rating.Create(suite.recipe.ID, third.ID, 5)))

	unrated := suite.factories.Recipe.WithOwner(suite.owner.ID)
	suite.Require().NoError(suite.store.Recipes().Create(suite.ctx, unrated))

	summaries, err := suite.repo.Summaries(suite.ctx, []uuid.UUID{suite.recipe.ID, unrated.ID})
	suite.NoError(err)
	suite.Len(summaries, 1)
	suite.Equal(int64(2), summaries[suite.recipe.ID].Count)
	suite.InDelta(4.5, summaries[suite.recipe.ID].Average, 0.0001)
}

func (suite *RatingRepositoryTestSuite) TestDeleteAndClear() {
	suite.Require().NoError(suite.repo.Upsert(suite.ctx, suite.factories.Rating.Create(suite.recipe.ID, suite.rater.ID, 3)))

	affected, err := suite.repo.ClearUser(suite.ctx, suite.rater.ID)
	suite.NoError(err)
	suite.Equal(int64(1), affected)

	summary, err := suite.repo.Summary(suite.ctx, suite.recipe.ID)
	suite.NoError(err)
	suite.Equal(int64(1), summary.Count)

	affected, err = suite.repo.DeleteByRecipeAndUser(suite.ctx, suite.recipe.ID, suite.rater.ID)
	suite.NoError(err)
	suite.Zero(affected)

	suite.NoError(suite.repo.DeleteByRecipes(suite.ctx, []uuid.UUID{suite.recipe.ID}))
	_, err = suite.repo.GetByRecipeAndUser(suite.ctx, suite.recipe.ID, suite.rater.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func TestRatingRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RatingRepositoryTestSuite))
}
