package service_test

import (
	"context"
	"strings"
	"testing"
	"time"

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

// CommentServiceTestSuite defines the test suite for CommentService
type CommentServiceTestSuite struct {
	suite.Suite
	ctx       context.Context
	ctrl      *gomock.Controller
	m         *mockStore
	service   *service.CommentService
	principal uuid.UUID
	recipe    *models.Recipe
}

func (suite *CommentServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.ctrl = gomock.NewController(suite.T())
	suite.m = newMockStore(suite.ctrl)
	suite.service = service.NewCommentService(suite.m.store, service.NewValidator())
	suite.principal = uuid.New()
	owner := uuid.New()
	suite.recipe = &models.Recipe{BaseModel: models.BaseModel{ID: uuid.New()}, UserID: &owner}
}

func (suite *CommentServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *CommentServiceTestSuite) expectRecipe() {
	suite.m.recipes.EXPECT().GetByID(gomock.Any(), suite.recipe.ID).Return(suite.recipe, nil)
}

func (suite *CommentServiceTestSuite) comment(author uuid.UUID, parent *uuid.UUID) *models.Comment {
	return &models.Comment{
		BaseModel: models.BaseModel{ID: uuid.New(), CreatedAt: time.Now()},
		RecipeID:  suite.recipe.ID,
		UserID:    &author,
		ParentID:  parent,
		Body:      "Lovely",
		User:      &models.User{BaseModel: models.BaseModel{ID: author}, Name: "Jane"},
	}
}

func (suite *CommentServiceTestSuite) TestListMissingRecipe() {
	suite.m.recipes.EXPECT().GetByID(gomock.Any(), suite.recipe.ID).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.ListForRecipe(suite.ctx, suite.recipe.ID)
	assert.ErrorIs(suite.T(), err, apperrors.ErrRecipeNotFound)
}

func (suite *CommentServiceTestSuite) TestListNestsReplies() {
	root := suite.comment(suite.principal, nil)
	reply := suite.comment(uuid.New(), &root.ID)
	reply.User = nil
	root.Replies = []models.Comment{*reply}

	suite.expectRecipe()
	suite.m.comments.EXPECT().ListThreads(gomock.Any(), suite.recipe.ID).Return([]models.Comment{*root}, nil)

	threads, err := suite.service.ListForRecipe(suite.ctx, suite.recipe.ID)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), threads, 1)
	assert.Equal(suite.T(), "Jane", threads[0].User.Name)
	require.Len(suite.T(), threads[0].Replies, 1)
	assert.Equal(suite.T(), reply.ID, threads[0].Replies[0].ID)
	assert.Nil(suite.T(), threads[0].Replies[0].User)
	assert.NotNil(suite.T(), threads[0].Replies[0].Replies)
}

func (suite *CommentServiceTestSuite) TestCreateTrimsAndStores() {
	var created *models.Comment
	suite.expectRecipe()
	suite.m.expectTransaction()
	suite.m.comments.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c *models.Comment) error {
			c.ID = uuid.New()
			created = c
			return nil
		})
	suite.m.comments.EXPECT().GetByRecipeAndID(gomock.Any(), suite.recipe.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ uuid.UUID) (*models.Comment, error) { return created, nil })

	resp, err := suite.service.Create(suite.ctx, suite.principal, suite.recipe.ID, &service.CreateCommentRequest{Comment: "  Great recipe!  "})
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Great recipe!", created.Body)
	assert.Equal(suite.T(), suite.principal, *created.UserID)
	assert.Equal(suite.T(), "Great recipe!", resp.Comment)
}

func (suite *CommentServiceTestSuite) TestCreateValidation() {
	suite.expectRecipe()
	_, err := suite.service.Create(suite.ctx, suite.principal, suite.recipe.ID, &service.CreateCommentRequest{Comment: "   "})
	verr, ok := apperrors.AsValidation(err)
	require.True(suite.T(), ok)
	assert.Equal(suite.T(), []string{"Comment text is required."}, verr.Fields["comment"])

	suite.expectRecipe()
	_, err = suite.service.Create(suite.ctx, suite.principal, suite.recipe.ID, &service.CreateCommentRequest{Comment: strings.Repeat("a", 1001)})
	verr, ok = apperrors.AsValidation(err)
	require.True(suite.T(), ok)
	assert.Equal(suite.T(), []string{"Comment cannot exceed 1000 characters."}, verr.Fields["comment"])
}

func (suite *CommentServiceTestSuite) TestCreateReplyToOtherRecipeFails() {
	parentID := uuid.New()
	suite.expectRecipe()
	suite.m.comments.EXPECT().GetByRecipeAndID(gomock.Any(), suite.recipe.ID, parentID).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.Create(suite.ctx, suite.principal, suite.recipe.ID, &service.CreateCommentRequest{Comment: "Reply", ParentID: &parentID})
	verr, ok := apperrors.AsValidation(err)
	require.True(suite.T(), ok)
	assert.Equal(suite.T(), "Invalid parent comment.", verr.Message)
	assert.Contains(suite.T(), verr.Fields, "parent_id")
}

func (suite *CommentServiceTestSuite) TestCreateReplyToReplyFails() {
	rootID := uuid.New()
	reply := suite.comment(uuid.New(), &rootID)
	suite.expectRecipe()
	suite.m.comments.EXPECT().GetByRecipeAndID(gomock.Any(), suite.recipe.ID, reply.ID).Return(reply, nil)

	_, err := suite.service.Create(suite.ctx, suite.principal, suite.recipe.ID, &service.CreateCommentRequest{Comment: "Deep", ParentID: &reply.ID})
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *CommentServiceTestSuite) TestCreateMissingRecipeCheckedFirst() {
	parentID := uuid.New()
	suite.m.recipes.EXPECT().GetByID(gomock.Any(), suite.recipe.ID).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.Create(suite.ctx, suite.principal, suite.recipe.ID, &service.CreateCommentRequest{Comment: "Reply", ParentID: &parentID})
	assert.ErrorIs(suite.T(), err, apperrors.ErrRecipeNotFound)
}

func (suite *CommentServiceTestSuite) TestUpdateByOtherAuthorIsForbidden() {
	c := suite.comment(uuid.New(), nil)
	suite.m.comments.EXPECT().GetByRecipeAndID(gomock.Any(), suite.recipe.ID, c.ID).Return(c, nil)

	_, err := suite.service.Update(suite.ctx, suite.principal, suite.recipe.ID, c.ID, &service.UpdateCommentRequest{Comment: "Edited"})
	assert.ErrorIs(suite.T(), err, apperrors.ErrCommentUpdateForbidden)
	assert.Equal(suite.T(), "Unauthorized to update this comment.", err.Error())
}

func (suite *CommentServiceTestSuite) TestUpdateUnderWrongRecipeIsNotFound() {
	commentID := uuid.New()
	suite.m.comments.EXPECT().GetByRecipeAndID(gomock.Any(), suite.recipe.ID, commentID).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.Update(suite.ctx, suite.principal, suite.recipe.ID, commentID, &service.UpdateCommentRequest{Comment: "Edited"})
	assert.ErrorIs(suite.T(), err, apperrors.ErrCommentNotFound)
}

func (suite *CommentServiceTestSuite) TestUpdateOwnComment() {
	c := suite.comment(suite.principal, nil)
	suite.m.comments.EXPECT().GetByRecipeAndID(gomock.Any(), suite.recipe.ID, c.ID).Return(c, nil).Times(2)
	suite.m.expectTransaction()
	suite.m.comments.EXPECT().UpdateBody(gomock.Any(), c.ID, "Edited").Return(nil)

	_, err := suite.service.Update(suite.ctx, suite.principal, suite.recipe.ID, c.ID, &service.UpdateCommentRequest{Comment: " Edited "})
	assert.NoError(suite.T(), err)
}

func (suite *CommentServiceTestSuite) TestDeleteOwnComment() {
	c := suite.comment(suite.principal, nil)
	suite.m.comments.EXPECT().GetByRecipeAndID(gomock.Any(), suite.recipe.ID, c.ID).Return(c, nil)
	suite.m.expectTransaction()
	suite.m.comments.EXPECT().Delete(gomock.Any(), c.ID).Return(nil)

	assert.NoError(suite.T(), suite.service.Delete(suite.ctx, suite.principal, suite.recipe.ID, c.ID))
}

func (suite *CommentServiceTestSuite) TestDeleteByOtherAuthorIsForbidden() {
	c := suite.comment(uuid.New(), nil)
	suite.m.comments.EXPECT().GetByRecipeAndID(gomock.Any(), suite.recipe.ID, c.ID).Return(c, nil)

	err := suite.service.Delete(suite.ctx, suite.principal, suite.recipe.ID, c.ID)
	assert.ErrorIs(suite.T(), err, apperrors.ErrCommentDeleteForbidden)
	assert.Equal(suite.T(), "Unauthorized to delete this comment.", err.Error())
}

func TestCommentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CommentServiceTestSuite))
}
