package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/google/uuid"

	"github.com/avdeev-dev/portfolio-api/internal/logger"
	"github.com/avdeev-dev/portfolio-api/internal/models"
)

// readTimeWPM is the reading speed used to derive read time from the
// post body.
const readTimeWPM = 200

// Error variables
var (
	ErrPostNotFound        = errors.New("blog post not found")
	ErrInvalidBlogCategory = errors.New("invalid blog category")
)

// BlogReader defines read-only operations for blog posts.
type BlogReader interface {
	List(ctx context.Context, filter models.BlogFilter) ([]models.BlogPostDB, int64, error)
	GetByID(ctx context.Context, postID uuid.UUID) (*models.BlogPostDB, error)
}

// BlogWriter defines write operations for blog posts.
type BlogWriter interface {
	Save(ctx context.Context, p models.BlogPostDB) error
	Update(ctx context.Context, p models.BlogPostDB) (int64, error)
	Delete(ctx context.Context, postID uuid.UUID) (int64, error)
}

// BlogPostView is a blog post plus its derived presentation fields.
// Slug and read time are computed here at read time, never stored.
type BlogPostView struct {
	models.BlogPostDB
	Slug     string `json:"slug"`
	ReadTime int    `json:"readTime"`
}

// BlogInput carries the fields of a blog post create request.
type BlogInput struct {
	Title         string
	Content       string
	Excerpt       string
	CoverImageURL string
	Categories    []string
	Featured      bool
	AuthorID      uuid.UUID
}

// BlogPatch carries a partial update; nil fields keep their value.
type BlogPatch struct {
	Title         *string
	Content       *string
	Excerpt       *string
	CoverImageURL *string
	Categories    *[]string
	Featured      *bool
}

// BlogService handles blog post CRUD, featured and category listings.
type BlogService struct {
	reader BlogReader
	writer BlogWriter
}

// NewBlogService creates a new BlogService instance.
func NewBlogService(reader BlogReader, writer BlogWriter) *BlogService {
	return &BlogService{reader: reader, writer: writer}
}

// List returns one page of posts. An empty page is a successful empty
// list, never an error.
func (svc *BlogService) List(ctx context.Context, filter models.BlogFilter) ([]BlogPostView, models.Pagination, error) {
	if filter.Category != nil && !models.IsValidBlogCategory(*filter.Category) {
		return nil, models.Pagination{}, ErrInvalidBlogCategory
	}

	posts, total, err := svc.reader.List(ctx, filter)
	if err != nil {
		logger.Log.Errorw("failed to list blog posts", "err", err)
		return nil, models.Pagination{}, err
	}

	views := make([]BlogPostView, 0, len(posts))
	for _, p := range posts {
		views = append(views, newBlogPostView(p))
	}

	return views, models.NewPagination(filter.Page, filter.Limit, total), nil
}

// Get returns one post by id.
func (svc *BlogService) Get(ctx context.Context, postID uuid.UUID) (*BlogPostView, error) {
	post, err := svc.reader.GetByID(ctx, postID)
	if err != nil {
		logger.Log.Errorw("failed to get blog post", "err", err)
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	view := newBlogPostView(*post)
	return &view, nil
}

// Create validates and persists a new post.
func (svc *BlogService) Create(ctx context.Context, in BlogInput) (*BlogPostView, error) {
	if err := validateBlogInput(in.Title, in.Content, in.Categories); err != nil {
		return nil, err
	}

	post := models.BlogPostDB{
		PostID:        uuid.New(),
		Title:         in.Title,
		Content:       in.Content,
		Excerpt:       in.Excerpt,
		CoverImageURL: in.CoverImageURL,
		Categories:    models.StringList(in.Categories),
		Featured:      in.Featured,
		AuthorID:      in.AuthorID,
	}

	if err := svc.writer.Save(ctx, post); err != nil {
		logger.Log.Errorw("failed to save blog post", "err", err)
		return nil, err
	}

	view := newBlogPostView(post)
	return &view, nil
}

// Update applies a partial update. Same lost-update caveat as projects:
// the read-modify-write is not transactional.
func (svc *BlogService) Update(ctx context.Context, postID uuid.UUID, patch BlogPatch) (*BlogPostView, error) {
	post, err := svc.reader.GetByID(ctx, postID)
	if err != nil {
		logger.Log.Errorw("failed to get blog post", "err", err)
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	applyBlogPatch(post, patch)

	if err := validateBlogInput(post.Title, post.Content, post.Categories); err != nil {
		return nil, err
	}

	rows, err := svc.writer.Update(ctx, *post)
	if err != nil {
		logger.Log.Errorw("failed to update blog post", "err", err)
		return nil, err
	}
	if rows == 0 {
		return nil, ErrPostNotFound
	}

	view := newBlogPostView(*post)
	return &view, nil
}

// Delete removes one post by id.
func (svc *BlogService) Delete(ctx context.Context, postID uuid.UUID) error {
	rows, err := svc.writer.Delete(ctx, postID)
	if err != nil {
		logger.Log.Errorw("failed to delete blog post", "err", err)
		return err
	}
	if rows == 0 {
		return ErrPostNotFound
	}
	return nil
}

// ReadTime derives minutes-to-read from the body at 200 words per
// minute, never less than one minute.
func ReadTime(content string) int {
	words := len(strings.Fields(content))
	minutes := (words + readTimeWPM - 1) / readTimeWPM
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}

// Slugify turns a title into a URL-safe slug: lowercase alphanumerics
// with single dashes between words.
func Slugify(title string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(title) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastDash = false
		case !lastDash:
			b.WriteRune('-')
			lastDash = true
		}
	}
	return strings.TrimRight(b.String(), "-")
}

func newBlogPostView(p models.BlogPostDB) BlogPostView {
	return BlogPostView{
		BlogPostDB: p,
		Slug:       Slugify(p.Title),
		ReadTime:   ReadTime(p.Content),
	}
}

func validateBlogInput(title, content string, categories []string) error {
	if title == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	if content == "" {
		return fmt.Errorf("%w: content is required", ErrValidation)
	}
	for _, c := range categories {
		if !models.IsValidBlogCategory(c) {
			return ErrInvalidBlogCategory
		}
	}
	return nil
}

func applyBlogPatch(p *models.BlogPostDB, patch BlogPatch) {
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Content != nil {
		p.Content = *patch.Content
	}
	if patch.Excerpt != nil {
		p.Excerpt = *patch.Excerpt
	}
	if patch.CoverImageURL != nil {
		p.CoverImageURL = *patch.CoverImageURL
	}
	if patch.Categories != nil {
		p.Categories = models.StringList(*patch.Categories)
	}
	if patch.Featured != nil {
		p.Featured = *patch.Featured
	}
}
