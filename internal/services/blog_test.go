package services_test

import (
	"context"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/avdeev-dev/portfolio-api/internal/models"
	"github.com/avdeev-dev/portfolio-api/internal/services"
)

func TestReadTime(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{name: "empty body still takes a minute", content: "", want: 1},
		{name: "short body", content: "just a few words", want: 1},
		{name: "exactly one minute", content: strings.Repeat("word ", 200), want: 1},
		{name: "rounds up", content: strings.Repeat("word ", 201), want: 2},
		{name: "long body", content: strings.Repeat("word ", 1000), want: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, services.ReadTime(tt.content))
		})
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Hello World", "hello-world"},
		{"Go 1.22 Released!", "go-1-22-released"},
		{"  spaced   out  ", "spaced-out"},
		{"ALL CAPS", "all-caps"},
		{"---", ""},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.want, services.Slugify(tt.title))
		})
	}
}

func TestBlogService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockBlogReader(ctrl)
	svc := services.NewBlogService(mockReader, services.NewMockBlogWriter(ctrl))

	t.Run("derives slug and read time per post", func(t *testing.T) {
		filter := models.BlogFilter{Page: 1, Limit: 10}
		mockReader.EXPECT().
			List(gomock.Any(), filter).
			Return([]models.BlogPostDB{
				{PostID: uuid.New(), Title: "Threat Modeling 101", Content: strings.Repeat("word ", 450)},
			}, int64(1), nil)

		posts, pagination, err := svc.List(context.Background(), filter)
		assert.NoError(t, err)
		assert.Len(t, posts, 1)
		assert.Equal(t, "threat-modeling-101", posts[0].Slug)
		assert.Equal(t, 3, posts[0].ReadTime)
		assert.Equal(t, int64(1), pagination.Total)
	})

	t.Run("unknown category", func(t *testing.T) {
		_, _, err := svc.List(context.Background(), models.BlogFilter{Category: strPtr("Gossip")})
		assert.ErrorIs(t, err, services.ErrInvalidBlogCategory)
	})

	t.Run("empty page", func(t *testing.T) {
		filter := models.BlogFilter{Category: strPtr(models.BlogCategoryCareer)}
		mockReader.EXPECT().
			List(gomock.Any(), filter).
			Return([]models.BlogPostDB{}, int64(0), nil)

		posts, _, err := svc.List(context.Background(), filter)
		assert.NoError(t, err)
		assert.NotNil(t, posts)
		assert.Empty(t, posts)
	})
}

func TestBlogService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockBlogReader(ctrl)
	svc := services.NewBlogService(mockReader, services.NewMockBlogWriter(ctrl))

	postID := uuid.New()

	t.Run("found", func(t *testing.T) {
		mockReader.EXPECT().
			GetByID(gomock.Any(), postID).
			Return(&models.BlogPostDB{PostID: postID, Title: "Hello World", Content: "short"}, nil)

		post, err := svc.Get(context.Background(), postID)
		assert.NoError(t, err)
		assert.Equal(t, "hello-world", post.Slug)
		assert.Equal(t, 1, post.ReadTime)
	})

	t.Run("not found", func(t *testing.T) {
		mockReader.EXPECT().GetByID(gomock.Any(), postID).Return(nil, nil)

		post, err := svc.Get(context.Background(), postID)
		assert.ErrorIs(t, err, services.ErrPostNotFound)
		assert.Nil(t, post)
	})
}

func TestBlogService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWriter := services.NewMockBlogWriter(ctrl)
	svc := services.NewBlogService(services.NewMockBlogReader(ctrl), mockWriter)

	authorID := uuid.New()

	t.Run("persists a valid post", func(t *testing.T) {
		mockWriter.EXPECT().
			Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p models.BlogPostDB) error {
				assert.NotEqual(t, uuid.Nil, p.PostID)
				assert.Equal(t, authorID, p.AuthorID)
				return nil
			})

		post, err := svc.Create(context.Background(), services.BlogInput{
			Title:      "Hello World",
			Content:    "body",
			Categories: []string{models.BlogCategoryTutorial},
			AuthorID:   authorID,
		})
		assert.NoError(t, err)
		assert.Equal(t, "hello-world", post.Slug)
	})

	t.Run("rejects an unknown category", func(t *testing.T) {
		post, err := svc.Create(context.Background(), services.BlogInput{
			Title:      "Hello World",
			Content:    "body",
			Categories: []string{"Gossip"},
			AuthorID:   authorID,
		})
		assert.ErrorIs(t, err, services.ErrInvalidBlogCategory)
		assert.Nil(t, post)
	})

	t.Run("rejects an empty title", func(t *testing.T) {
		post, err := svc.Create(context.Background(), services.BlogInput{Content: "body"})
		assert.ErrorIs(t, err, services.ErrValidation)
		assert.Nil(t, post)
	})
}

func TestBlogService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockBlogReader(ctrl)
	mockWriter := services.NewMockBlogWriter(ctrl)
	svc := services.NewBlogService(mockReader, mockWriter)

	postID := uuid.New()
	stored := models.BlogPostDB{
		PostID:     postID,
		Title:      "Hello World",
		Content:    "body",
		Categories: models.StringList{models.BlogCategoryTutorial},
	}

	t.Run("patch updates the derived slug", func(t *testing.T) {
		snapshot := stored
		mockReader.EXPECT().GetByID(gomock.Any(), postID).Return(&snapshot, nil)
		mockWriter.EXPECT().Update(gomock.Any(), gomock.Any()).Return(int64(1), nil)

		post, err := svc.Update(context.Background(), postID, services.BlogPatch{
			Title: strPtr("Goodbye World"),
		})
		assert.NoError(t, err)
		assert.Equal(t, "goodbye-world", post.Slug)
	})

	t.Run("not found", func(t *testing.T) {
		mockReader.EXPECT().GetByID(gomock.Any(), postID).Return(nil, nil)

		post, err := svc.Update(context.Background(), postID, services.BlogPatch{})
		assert.ErrorIs(t, err, services.ErrPostNotFound)
		assert.Nil(t, post)
	})
}

func TestBlogService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWriter := services.NewMockBlogWriter(ctrl)
	svc := services.NewBlogService(services.NewMockBlogReader(ctrl), mockWriter)

	postID := uuid.New()

	t.Run("deleted", func(t *testing.T) {
		mockWriter.EXPECT().Delete(gomock.Any(), postID).Return(int64(1), nil)
		assert.NoError(t, svc.Delete(context.Background(), postID))
	})

	t.Run("not found", func(t *testing.T) {
		mockWriter.EXPECT().Delete(gomock.Any(), postID).Return(int64(0), nil)
		assert.ErrorIs(t, svc.Delete(context.Background(), postID), services.ErrPostNotFound)
	})
}
