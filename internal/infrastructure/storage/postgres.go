package storage

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"newsbrief/internal/domain"
	"newsbrief/internal/ports"
)

// PostgresRepository persists delivered articles into Postgres.
type PostgresRepository struct {
	db      *sql.DB
	builder sq.StatementBuilderType
}

var _ ports.ArticleRepository = (*PostgresRepository)(nil)

// NewPostgresRepository wires a sql.DB implementation.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{
		db:      db,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// Open connects to Postgres and verifies the connection.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}

// AlreadyDelivered returns a map with IDs that already exist in storage.
func (r *PostgresRepository) AlreadyDelivered(ctx context.Context, ids []string) (map[string]bool, error) {
	if r.db == nil || len(ids) == 0 {
		return map[string]bool{}, nil
	}

	query, args, err := r.builder.
		Select("external_id").
		From("delivered_articles").
		Where("external_id = ANY(?)", pq.StringArray(ids)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build delivered query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query delivered: %w", err)
	}
	defer rows.Close()

	result := make(map[string]bool)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan id: %w", err)
		}
		result[id] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}

	return result, nil
}

// SaveDelivered upserts the delivered article snapshot.
func (r *PostgresRepository) SaveDelivered(ctx context.Context, article domain.ProcessedArticle) error {
	if r.db == nil {
		return nil
	}

	query, args, err := r.builder.
		Insert("delivered_articles").
		Columns("external_id", "title", "url", "source", "category", "summary", "status", "published_at").
		Values(
			article.Article.ID,
			article.Article.Title,
			article.Article.URL,
			article.Article.Source,
			string(article.Category),
			article.Summary,
			string(article.Status),
			article.Article.PublishedAt,
		).
		Suffix(`ON CONFLICT (external_id) DO UPDATE
            SET summary = EXCLUDED.summary,
                category = EXCLUDED.category,
                status = EXCLUDED.status,
                updated_at = NOW()`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert delivered: %w", err)
	}
	return nil
}
