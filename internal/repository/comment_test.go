//go:build integration
// +build integration

package repository

import (
	"context"
	"testing"

	"procook-backend/internal/database/models"
	"procook-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// CommentRepositoryTestSuite tests the CommentRepository
type CommentRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	store         *GormStore
	repo          *CommentRepository
	factories     *testutils.FactorySet
	ctx           context.Context
	author        *models.User
	other         *models.User
	recipe        *models.Recipe
}

func (suite *CommentRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.store = NewStore(suite.baseTestSuite.DB)
	suite.repo = NewCommentRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
	suite.ctx = context.Background()
}

func (suite *CommentRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *CommentRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
	suite.author = suite.factories.User.Create()
	suite.other = suite.factories.User.Create()
	suite.Require().NoError(suite.store.Users().Create(suite.ctx, suite.author))
	suite.Require().NoError(suite.store.Users().Create(suite.ctx, suite.other))
	suite.recipe = suite.factories.Recipe.WithOwner(suite.other.ID)
	suite.Require().NoError(suite.store.Recipes().Create(suite.ctx, suite.recipe))
}

func (suite *CommentRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *CommentRepositoryTestSuite) thread() (*models.Comment, *models.Comment) {
	root := suite.factories.Comment.Create(suite.recipe.ID, suite.author.ID)
	suite.Require().NoError(suite.repo.Create(suite.ctx, root))
	reply := suite.factories.Comment.Reply(root, suite.other.ID)
	suite.Require().NoError(suite.repo.Create(suite.ctx, reply))
	return root, reply
}

func (suite *CommentRepositoryTestSuite) TestListThreads() {
	root, reply := suite.thread()
	second := suite.factories.Comment.Create(suite.recipe.ID, suite.other.ID)
	suite.Require().NoError(suite.repo.Create(suite.ctx, second))

	threads, err := suite.repo.ListThreads(suite.ctx, suite.recipe.ID)
	suite.NoError(err)
	suite.Require().Len(threads, 2)
	suite.Equal(second.ID, threads[0].ID)
	suite.Equal(root.ID, threads[1].ID)
	suite.Require().Len(threads[1].Replies, 1)
	suite.Equal(reply.ID, threads[1].Replies[0].ID)
	suite.Require().NotNil(threads[1].Replies[0].User)
	suite.Equal(suite.other.Name, threads[1].Replies[0].User.Name)
}

func (suite *CommentRepositoryTestSuite) TestGetByRecipeAndID() {
	root, _ := suite.thread()

	found, err := suite.repo.GetByRecipeAndID(suite.ctx, suite.recipe.ID, root.ID)
	suite.NoError(err)
	suite.Equal(suite.author.ID, found.User.ID)

	otherRecipe := suite.factories.Recipe.WithOwner(suite.other.ID)
	suite.Require().NoError(suite.store.Recipes().Create(suite.ctx, otherRecipe))
	_, err = suite.repo.GetByRecipeAndID(suite.ctx, otherRecipe.ID, root.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *CommentRepositoryTestSuite) TestUpdateBody() {
	root, _ := suite.thread()

	suite.NoError(suite.repo.UpdateBody(suite.ctx, root.ID, "Edited"))
	found, err := suite.repo.GetByRecipeAndID(suite.ctx, suite.recipe.ID, root.ID)
	suite.NoError(err)
	suite.Equal("Edited", found.Body)
}

func (suite *CommentRepositoryTestSuite) TestDeleteRemovesReplies() {
	root, reply := suite.thread()

	suite.NoError(suite.repo.Delete(suite.ctx, root.ID))

	_, err := suite.repo.GetByRecipeAndID(suite.ctx, suite.recipe.ID, reply.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *CommentRepositoryTestSuite) TestDeleteByAuthorRemovesOthersReplies() {
	_, reply := suite.thread()

	suite.NoError(suite.repo.DeleteByAuthor(suite.ctx, suite.author.ID))

	_, err := suite.repo.GetByRecipeAndID(suite.ctx, suite.recipe.ID, reply.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *CommentRepositoryTestSuite) TestClearAuthor() {
	root, _ := suite.thread()

	affected, err := suite.repo.ClearAuthor(suite.ctx, suite.author.ID)
	suite.NoError(err)
	suite.Equal(int64(1), affected)

	found, err := suite.repo.GetByRecipeAndID(suite.ctx, suite.recipe.ID, root.ID)
	suite.NoError(err)
	suite.Nil(found.UserID)
	suite.Nil(found.User)
}

func (suite *CommentRepositoryTestSuite) TestDeleteByRecipes() {
	suite.thread()

	suite.NoError(suite.repo.DeleteByRecipes(suite.ctx, []uuid.UUID{suite.recipe.ID}))

	threads, err := suite.repo.ListThreads(suite.ctx, suite.recipe.ID)
	suite.NoError(err)
	suite.Empty(threads)
}

func TestCommentRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(CommentRepositoryTestSuite))
}
