package news

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"mig-catalog/internal/common/pagination"
	"mig-catalog/internal/domain/entity"
	"mig-catalog/internal/repository"
)

// CreateInput represents the input parameters for creating an article.
type CreateInput struct {
	Title       string
	Content     string
	Author      string
	IsPublished bool
}

// UpdateInput represents the input parameters for updating an article.
// Fields with nil values are not updated.
type UpdateInput struct {
	ID          string
	Title       *string
	Content     *string
	Author      *string
	IsPublished *bool
}

// Service provides news article use cases.
type Service struct {
	Repo repository.ArticleRepository
}

// PaginatedResult holds one page of articles and the total count.
type PaginatedResult struct {
	Data  []*entity.Article
	Total int64
}

// Get retrieves a single article. When publishedOnly is true, drafts are
// reported as not found so anonymous readers cannot probe for them.
func (s *Service) Get(ctx context.Context, id string, publishedOnly bool) (*entity.Article, error) {
	if id == "" {
		return nil, ErrInvalidArticleID
	}
	article, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if article == nil || (publishedOnly && !article.IsPublished) {
		return nil, ErrArticleNotFound
	}
	return article, nil
}

// ListPaginated retrieves one page of articles, newest first.
func (s *Service) ListPaginated(ctx context.Context, publishedOnly bool, params pagination.Params) (*PaginatedResult, error) {
	total, err := s.Repo.Count(ctx, publishedOnly)
	if err != nil {
		return nil, fmt.Errorf("count articles: %w", err)
	}
	articles, err := s.Repo.ListPaginated(ctx, publishedOnly, params.Offset(), params.Size)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	return &PaginatedResult{Data: articles, Total: total}, nil
}

// Create validates and stores a new article.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Article, error) {
	now := time.Now().UTC()
	article := &entity.Article{
		ID:          uuid.NewString(),
		Title:       strings.TrimSpace(in.Title),
		Content:     in.Content,
		Author:      in.Author,
		IsPublished: in.IsPublished,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := article.Validate(); err != nil {
		return nil, err
	}
	if err := s.Repo.Create(ctx, article); err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}
	return article, nil
}

// Update applies the non-nil fields of in to the stored article.
func (s *Service) Update(ctx context.Context, in UpdateInput) (*entity.Article, error) {
	article, err := s.Get(ctx, in.ID, false)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		article.Title = strings.TrimSpace(*in.Title)
	}
	if in.Content != nil {
		article.Content = *in.Content
	}
	if in.Author != nil {
		article.Author = *in.Author
	}
	if in.IsPublished != nil {
		article.IsPublished = *in.IsPublished
	}
	if err := article.Validate(); err != nil {
		return nil, err
	}

	article.UpdatedAt = time.Now().UTC()
	if err := s.Repo.Update(ctx, article); err != nil {
		return nil, fmt.Errorf("update article: %w", err)
	}
	return article, nil
}

// Delete removes the article.
func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id, false); err != nil {
		return err
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	return nil
}
