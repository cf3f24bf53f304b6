package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"mig-catalog/internal/domain/entity"
	"mig-catalog/internal/repository"
)

type ArticleRepo struct {
	db *sql.DB
}

func NewArticleRepo(db *sql.DB) repository.ArticleRepository {
	return &ArticleRepo{db: db}
}

const articleColumns = `id, title, content, author, is_published, created_at, updated_at`

func scanArticle(row interface{ Scan(...any) error }) (*entity.Article, error) {
	var a entity.Article
	var author sql.NullString
	err := row.Scan(&a.ID, &a.Title, &a.Content, &author, &a.IsPublished,
		&a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	a.Author = author.String
	return &a, nil
}

func (repo *ArticleRepo) Get(ctx context.Context, id string) (*entity.Article, error) {
	query := `SELECT ` + articleColumns + ` FROM articles WHERE id = $1`
	article, err := scanArticle(repo.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return article, nil
}

func (repo *ArticleRepo) ListPaginated(ctx context.Context, publishedOnly bool, offset, limit int) ([]*entity.Article, error) {
	query := `
SELECT ` + articleColumns + `
FROM articles
WHERE ($1 = FALSE OR is_published = TRUE)
ORDER BY created_at DESC, id
LIMIT $2 OFFSET $3`
	rows, err := repo.db.QueryContext(ctx, query, publishedOnly, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("ListPaginated: %w", err)
	}
	defer func() { _ = rows.Close() }()

	articles := make([]*entity.Article, 0, limit)
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("ListPaginated: Scan: %w", err)
		}
		articles = append(articles, article)
	}
	return articles, rows.Err()
}

func (repo *ArticleRepo) Count(ctx context.Context, publishedOnly bool) (int64, error) {
	var count int64
	err := repo.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM articles WHERE ($1 = FALSE OR is_published = TRUE)`,
		publishedOnly).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return count, nil
}

func (repo *ArticleRepo) Create(ctx context.Context, article *entity.Article) error {
	const query = `
INSERT INTO articles (id, title, content, author, is_published, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := repo.db.ExecContext(ctx, query,
		article.ID, article.Title, article.Content, article.Author,
		article.IsPublished, article.CreatedAt, article.UpdatedAt)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (repo *ArticleRepo) Update(ctx context.Context, article *entity.Article) error {
	const query = `
UPDATE articles
SET title = $2, content = $3, author = $4, is_published = $5, updated_at = $6
WHERE id = $1`
	result, err := repo.db.ExecContext(ctx, query,
		article.ID, article.Title, article.Content, article.Author,
		article.IsPublished, article.UpdatedAt)
	if err != nil {
		return fmt.Errorf("Update: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("Update: RowsAffected: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (repo *ArticleRepo) Delete(ctx context.Context, id string) error {
	result, err := repo.db.ExecContext(ctx, `DELETE FROM articles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("Delete: RowsAffected: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
