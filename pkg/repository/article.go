package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/umputun/pushhub/pkg/domain"
)

// ArticleRepository handles article-related database operations
type ArticleRepository struct {
	db *sqlx.DB
}

// articleSQL represents an article for SQL operations
type articleSQL struct {
	ID          string     `db:"id"`
	FeatureID   string     `db:"feature_id"`
	Title       string     `db:"title"`
	Content     string     `db:"content"`
	Link        string     `db:"link"`
	ContentHash string     `db:"content_hash"`
	Source      string     `db:"source"`
	Category    string     `db:"category"`
	PublishedAt *time.Time `db:"published_at"`
	ScrapedAt   time.Time  `db:"scraped_at"`

	// enrichment
	Summary         string          `db:"summary"`
	Keywords        stringsSQL      `db:"keywords"`
	Sentiment       string          `db:"sentiment"`
	ImportanceScore sql.NullFloat64 `db:"importance_score"`
	RefinedCategory string          `db:"refined_category"`
	Entities        entitiesSQL     `db:"entities"`
	OneLiner        string          `db:"one_liner"`
	AnalyzedAt      *time.Time      `db:"analyzed_at"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// NewArticleRepository creates a new article repository
func NewArticleRepository(database *sqlx.DB) *ArticleRepository {
	return &ArticleRepository{db: database}
}

// CreateArticle inserts a new article and assigns its ID.
// Returns ErrDuplicate if the feature already has an article with the same content hash.
func (r *ArticleRepository) CreateArticle(ctx context.Context, article *domain.Article) error {
	if article.FeatureID == "" {
		return fmt.Errorf("create article: feature id is required")
	}
	if article.ScrapedAt.IsZero() {
		article.ScrapedAt = time.Now().UTC()
	}

	rec := &articleSQL{
		ID:          uuid.NewString(),
		FeatureID:   article.FeatureID,
		Title:       article.Title,
		Content:     article.Content,
		Link:        article.Link,
		ContentHash: article.ContentHash,
		Source:      string(article.Source),
		Category:    article.Category,
		ScrapedAt:   article.ScrapedAt.UTC(),
	}
	if !article.PublishedAt.IsZero() {
		rec.PublishedAt = &article.PublishedAt
	}

	query := `
		INSERT INTO articles (
			id, feature_id, title, content, link, content_hash,
			source, category, published_at, scraped_at
		) VALUES (
			:id, :feature_id, :title, :content, :link, :content_hash,
			:source, :category, :published_at, :scraped_at
		)
	`
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	err := retrier.Do(ctx, func() error {
		_, err := r.db.NamedExecContext(ctx, query, rec)
		switch {
		case err == nil:
			return nil
		case isLockError(err):
			return err // repeater will retry this
		case isUniqueError(err):
			return &criticalError{err: fmt.Errorf("create article %q: %w", article.Title, ErrDuplicate)}
		default:
			return &criticalError{err: fmt.Errorf("create article: %w", err)}
		}
	}, errCritical)
	if err != nil {
		var ce *criticalError
		if errors.As(err, &ce) {
			return ce.err
		}
		return fmt.Errorf("create article: %w", err)
	}

	article.ID = rec.ID
	return nil
}

// GetArticle retrieves an article by ID
func (r *ArticleRepository) GetArticle(ctx context.Context, id string) (*domain.Article, error) {
	var rec articleSQL
	err := r.db.GetContext(ctx, &rec, "SELECT * FROM articles WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get article %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	return rec.toDomain(), nil
}

// GetRecentArticles retrieves up to limit most recently scraped articles of a feature
func (r *ArticleRepository) GetRecentArticles(ctx context.Context, featureID string, limit int) ([]*domain.Article, error) {
	return r.ListArticles(ctx, domain.ArticleFilter{FeatureID: featureID, Limit: limit})
}

// ListArticles retrieves articles of a feature, newest first
func (r *ArticleRepository) ListArticles(ctx context.Context, filter domain.ArticleFilter) ([]*domain.Article, error) {
	if filter.Limit <= 0 {
		filter.Limit = 100
	}

	query := `SELECT * FROM articles WHERE feature_id = ?`
	args := []any{filter.FeatureID}
	if filter.OnlyAnalyzed {
		query += ` AND importance_score IS NOT NULL AND importance_score >= ?`
		args = append(args, filter.MinScore)
	}
	query += ` ORDER BY scraped_at DESC, rowid DESC LIMIT ?`
	args = append(args, filter.Limit)

	var recs []articleSQL
	if err := r.db.SelectContext(ctx, &recs, query, args...); err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}

	articles := make([]*domain.Article, len(recs))
	for i := range recs {
		articles[i] = recs[i].toDomain()
	}
	return articles, nil
}

// GetRecentHashes returns non-empty content hashes of the window most recent articles of a feature
func (r *ArticleRepository) GetRecentHashes(ctx context.Context, featureID string, window int) (map[string]struct{}, error) {
	var hashes []string
	query := `
		SELECT content_hash FROM articles
		WHERE feature_id = ? AND content_hash != ''
		ORDER BY scraped_at DESC, rowid DESC
		LIMIT ?
	`
	if err := r.db.SelectContext(ctx, &hashes, query, featureID, window); err != nil {
		return nil, fmt.Errorf("get recent hashes: %w", err)
	}
	return toSet(hashes), nil
}

// HashesExist returns the subset of hashes already stored for a feature.
// It uses the (feature_id, content_hash) index, so it is not bounded by recency.
func (r *ArticleRepository) HashesExist(ctx context.Context, featureID string, hashes []string) (map[string]struct{}, error) {
	lookup := make([]string, 0, len(hashes))
	for _, h := range hashes {
		if h != "" {
			lookup = append(lookup, h)
		}
	}
	if len(lookup) == 0 {
		return map[string]struct{}{}, nil
	}

	query, args, err := sqlx.In(`SELECT content_hash FROM articles WHERE feature_id = ? AND content_hash IN (?)`, featureID, lookup)
	if err != nil {
		return nil, fmt.Errorf("build hash lookup: %w", err)
	}

	var found []string
	if err := r.db.SelectContext(ctx, &found, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("lookup hashes: %w", err)
	}
	return toSet(found), nil
}

// UpdateArticleAnalysis writes enrichment fields back to an article
func (r *ArticleRepository) UpdateArticleAnalysis(ctx context.Context, id string, analysis *domain.Analysis) error {
	if analysis == nil {
		return fmt.Errorf("update article analysis %s: empty analysis", id)
	}

	query := `
		UPDATE articles
		SET summary = ?,
		    keywords = ?,
		    sentiment = ?,
		    importance_score = ?,
		    refined_category = ?,
		    entities = ?,
		    one_liner = ?,
		    analyzed_at = ?
		WHERE id = ?
	`
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	return retrier.Do(ctx, func() error {
		res, err := r.db.ExecContext(ctx, query, analysis.Summary, stringsSQL(analysis.Keywords), string(analysis.Sentiment),
			analysis.ImportanceScore, analysis.Category, entitiesSQL(analysis.Entities), analysis.OneLiner, time.Now().UTC(), id)
		if err != nil {
			if isLockError(err) {
				return err // repeater will retry this
			}
			return &criticalError{err: fmt.Errorf("update article analysis: %w", err)}
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return &criticalError{err: fmt.Errorf("get affected rows: %w", err)}
		}
		if affected == 0 {
			return &criticalError{err: fmt.Errorf("update article analysis %s: %w", id, ErrNotFound)}
		}
		return nil
	}, errCritical)
}

// CountArticles returns the number of stored and analyzed articles of a feature
func (r *ArticleRepository) CountArticles(ctx context.Context, featureID string) (total, analyzed int, err error) {
	var counts struct {
		Total    int `db:"total"`
		Analyzed int `db:"analyzed"`
	}
	query := `
		SELECT COUNT(*) AS total, COUNT(importance_score) AS analyzed
		FROM articles WHERE feature_id = ?
	`
	if err := r.db.GetContext(ctx, &counts, query, featureID); err != nil {
		return 0, 0, fmt.Errorf("count articles: %w", err)
	}
	return counts.Total, counts.Analyzed, nil
}

// toDomain converts articleSQL to domain.Article
func (a *articleSQL) toDomain() *domain.Article {
	res := &domain.Article{
		ID:              a.ID,
		FeatureID:       a.FeatureID,
		Title:           a.Title,
		Content:         a.Content,
		Link:            a.Link,
		ContentHash:     a.ContentHash,
		Source:          domain.Source(a.Source),
		Category:        a.Category,
		ScrapedAt:       a.ScrapedAt,
		Summary:         a.Summary,
		Keywords:        []string(a.Keywords),
		Sentiment:       domain.Sentiment(a.Sentiment),
		RefinedCategory: a.RefinedCategory,
		Entities:        domain.Entities(a.Entities),
		OneLiner:        a.OneLiner,
		AnalyzedAt:      a.AnalyzedAt,
	}
	if a.PublishedAt != nil {
		res.PublishedAt = *a.PublishedAt
	}
	if a.ImportanceScore.Valid {
		score := a.ImportanceScore.Float64
		res.ImportanceScore = &score
	}
	return res
}

func toSet(values []string) map[string]struct{} {
	res := make(map[string]struct{}, len(values))
	for _, v := range values {
		res[v] = struct{}{}
	}
	return res
}
