package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/avdeev-dev/portfolio-api/internal/middlewares"
	"github.com/avdeev-dev/portfolio-api/internal/models"
	"github.com/avdeev-dev/portfolio-api/internal/services"
)

// BlogLister defines the read side of the blog service.
type BlogLister interface {
	List(ctx context.Context, filter models.BlogFilter) ([]services.BlogPostView, models.Pagination, error)
	Get(ctx context.Context, postID uuid.UUID) (*services.BlogPostView, error)
}

// BlogEditor defines the admin-only write side of the blog service.
type BlogEditor interface {
	Create(ctx context.Context, in services.BlogInput) (*services.BlogPostView, error)
	Update(ctx context.Context, postID uuid.UUID, patch services.BlogPatch) (*services.BlogPostView, error)
	Delete(ctx context.Context, postID uuid.UUID) error
}

// BlogPostRequest represents the JSON body for creating a blog post
// swagger:model BlogPostRequest
type BlogPostRequest struct {
	// required: true
	Title string `json:"title"`
	// required: true
	Content       string `json:"content"`
	Excerpt       string `json:"excerpt"`
	CoverImageURL string `json:"coverImageUrl"`
	// example: ["AI","Tutorials"]
	Categories []string `json:"categories"`
	Featured   bool     `json:"featured"`
}

// BlogPostPatchRequest represents the JSON body for a partial blog post update
// swagger:model BlogPostPatchRequest
type BlogPostPatchRequest struct {
	Title         *string   `json:"title"`
	Content       *string   `json:"content"`
	Excerpt       *string   `json:"excerpt"`
	CoverImageURL *string   `json:"coverImageUrl"`
	Categories    *[]string `json:"categories"`
	Featured      *bool     `json:"featured"`
}

// NewListBlogPostsHandler returns an HTTP handler for listing posts.
// @Summary List blog posts
// @Description Newest first, with derived slug and read time on each post.
// @Tags blog
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param category query string false "Category filter"
// @Success 200 {object} handlers.SuccessResponse "Posts page"
// @Router /blog [get]
func NewListBlogPostsHandler(svc BlogLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, limit := parsePagination(r)
		filter := models.BlogFilter{
			Category: queryStringPtr(r, "category"),
			Featured: queryBoolPtr(r, "featured"),
			Page:     page,
			Limit:    limit,
		}

		posts, pagination, err := svc.List(r.Context(), filter)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeList(w, posts, pagination)
	}
}

// NewFeaturedBlogPostsHandler returns an HTTP handler for the featured
// posts listing.
// @Summary List featured blog posts
// @Tags blog
// @Produce json
// @Success 200 {object} handlers.SuccessResponse "Featured posts"
// @Router /blog/featured [get]
func NewFeaturedBlogPostsHandler(svc BlogLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		featured := true
		page, limit := parsePagination(r)

		posts, pagination, err := svc.List(r.Context(), models.BlogFilter{
			Featured: &featured,
			Page:     page,
			Limit:    limit,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeList(w, posts, pagination)
	}
}

// NewBlogPostsByCategoryHandler returns an HTTP handler for the
// category listing.
// @Summary List blog posts in one category
// @Tags blog
// @Produce json
// @Param category path string true "Category"
// @Success 200 {object} handlers.SuccessResponse "Posts page"
// @Failure 400 {object} handlers.ErrorResponse "Invalid category"
// @Router /blog/category/{category} [get]
func NewBlogPostsByCategoryHandler(svc BlogLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category := chi.URLParam(r, "category")
		page, limit := parsePagination(r)

		posts, pagination, err := svc.List(r.Context(), models.BlogFilter{
			Category: &category,
			Page:     page,
			Limit:    limit,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeList(w, posts, pagination)
	}
}

// NewGetBlogPostHandler returns an HTTP handler for a single post.
// @Summary Get one blog post
// @Tags blog
// @Produce json
// @Param id path string true "Post id"
// @Success 200 {object} handlers.SuccessResponse "Post"
// @Failure 404 {object} handlers.ErrorResponse "Post not found"
// @Router /blog/{id} [get]
func NewGetBlogPostHandler(svc BlogLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID, err := parseID(r, "id")
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid post id")
			return
		}

		post, err := svc.Get(r.Context(), postID)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeData(w, http.StatusOK, post)
	}
}

// NewCreateBlogPostHandler returns an HTTP handler for creating a post.
// The authenticated admin becomes the author.
// @Summary Create a blog post
// @Tags blog
// @Accept json
// @Produce json
// @Param blogPostRequest body handlers.BlogPostRequest true "Blog post"
// @Success 201 {object} handlers.SuccessResponse "Created post"
// @Failure 400 {object} handlers.ErrorResponse "Validation failure"
// @Router /blog [post]
// @Security CookieAuth
func NewCreateBlogPostHandler(svc BlogEditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authorID, ok := middlewares.UserIDFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Not authenticated")
			return
		}

		var req BlogPostRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		post, err := svc.Create(r.Context(), services.BlogInput{
			Title:         req.Title,
			Content:       req.Content,
			Excerpt:       req.Excerpt,
			CoverImageURL: req.CoverImageURL,
			Categories:    req.Categories,
			Featured:      req.Featured,
			AuthorID:      authorID,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeData(w, http.StatusCreated, post)
	}
}

// NewUpdateBlogPostHandler returns an HTTP handler for partially
// updating a post.
// @Summary Update a blog post
// @Tags blog
// @Accept json
// @Produce json
// @Param id path string true "Post id"
// @Param blogPostPatchRequest body handlers.BlogPostPatchRequest true "Fields to change"
// @Success 200 {object} handlers.SuccessResponse "Updated post"
// @Failure 404 {object} handlers.ErrorResponse "Post not found"
// @Router /blog/{id} [put]
// @Security CookieAuth
func NewUpdateBlogPostHandler(svc BlogEditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID, err := parseID(r, "id")
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid post id")
			return
		}

		var req BlogPostPatchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		post, err := svc.Update(r.Context(), postID, services.BlogPatch{
			Title:         req.Title,
			Content:       req.Content,
			Excerpt:       req.Excerpt,
			CoverImageURL: req.CoverImageURL,
			Categories:    req.Categories,
			Featured:      req.Featured,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeData(w, http.StatusOK, post)
	}
}

// NewDeleteBlogPostHandler returns an HTTP handler for deleting a post.
// @Summary Delete a blog post
// @Tags blog
// @Produce json
// @Param id path string true "Post id"
// @Success 200 {object} handlers.SuccessResponse "Deleted"
// @Failure 404 {object} handlers.ErrorResponse "Post not found"
// @Router /blog/{id} [delete]
// @Security CookieAuth
func NewDeleteBlogPostHandler(svc BlogEditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID, err := parseID(r, "id")
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid post id")
			return
		}

		if err := svc.Delete(r.Context(), postID); err != nil {
			writeServiceError(w, err)
			return
		}

		writeMessage(w, http.StatusOK, "Blog post deleted")
	}
}
