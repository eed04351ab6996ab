// Package content provides the landing page repositories.
package content

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/AtRiskMedia/landstack-go/internal/domain/blocks"
	"github.com/AtRiskMedia/landstack-go/internal/domain/entities/content"
	"github.com/AtRiskMedia/landstack-go/internal/domain/repositories"
	"github.com/AtRiskMedia/landstack-go/internal/infrastructure/caching/interfaces"
	"github.com/AtRiskMedia/landstack-go/internal/infrastructure/observability/logging"
	"github.com/AtRiskMedia/landstack-go/internal/infrastructure/persistence/database"
)

var _ repositories.LandingPageRepository = (*LandingPageRepository)(nil)

const pageColumns = `id, title, slug, description, meta_title, meta_description, og_image, status,
	template_type, target_audience, campaign_source, tracking_code, settings,
	published_at, expires_at, created_by, created_at, updated_at`

type LandingPageRepository struct {
	db     *sql.DB
	cache  interfaces.ContentCache
	logger *logging.ChanneledLogger
}

func NewLandingPageRepository(db *sql.DB, cache interfaces.ContentCache, logger *logging.ChanneledLogger) *LandingPageRepository {
	return &LandingPageRepository{
		db:     db,
		cache:  cache,
		logger: logger,
	}
}

func (r *LandingPageRepository) FindByID(ctx context.Context, id string) (*content.LandingPage, error) {
	if page, found := r.cache.GetPage(ctx, id); found {
		return page, nil
	}

	page, err := r.loadFromDB(ctx, "id = ?", id)
	if err != nil {
		return nil, err
	}
	r.cache.SetPage(ctx, page)
	return page, nil
}

func (r *LandingPageRepository) FindBySlug(ctx context.Context, slug string) (*content.LandingPage, error) {
	if id, found := r.cache.GetPageIDBySlug(ctx, slug); found {
		if page, ok := r.cache.GetPage(ctx, id); ok && page.Slug == slug {
			return page, nil
		}
	}

	page, err := r.loadFromDB(ctx, "slug = ?", slug)
	if err != nil {
		return nil, err
	}
	r.cache.SetPage(ctx, page)
	return page, nil
}

// filterClause builds the WHERE clause shared by List and Count.
func filterClause(f content.PageFilter) (string, []any) {
	var conds []string
	var args []any
	if f.Status != "" {
		conds = append(conds, "status = ?")
		args = append(args, string(f.Status))
	}
	if f.CampaignSource != "" {
		conds = append(conds, "campaign_source = ?")
		args = append(args, f.CampaignSource)
	}
	if f.CreatedBy != "" {
		conds = append(conds, "created_by = ?")
		args = append(args, f.CreatedBy)
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		conds = append(conds, "(LOWER(title) LIKE ? OR LOWER(COALESCE(description, '')) LIKE ? OR LOWER(slug) LIKE ?)")
		args = append(args, like, like, like)
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// List returns pages matching filter, newest first. Components are loaded
// for every page.
func (r *LandingPageRepository) List(ctx context.Context, filter content.PageFilter) ([]*content.LandingPage, error) {
	where, args := filterClause(filter)
	query := `SELECT ` + pageColumns + ` FROM landing_pages` + where + ` ORDER BY created_at DESC, id`
	if filter.Limit > 0 {
		query += ` LIMIT ? OFFSET ?`
		args = append(args, filter.Limit, filter.Offset)
	}

	start := time.Now()
	r.logger.Database().Debug("Listing landing pages", "status", filter.Status, "search", filter.Search)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Database().Error("Failed to list landing pages", "error", err.Error())
		return nil, fmt.Errorf("failed to list landing pages: %w", err)
	}
	defer rows.Close()

	var pages []*content.LandingPage
	for rows.Next() {
		page, err := scanPage(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan landing page: %w", err)
		}
		pages = append(pages, page)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate landing pages: %w", err)
	}
	rows.Close()

	for _, page := range pages {
		if page.Content, err = r.loadComponents(ctx, page.ID); err != nil {
			return nil, err
		}
	}

	duration := time.Since(start)
	r.logger.Database().Info("Listed landing pages", "count", len(pages), "duration", duration)
	database.CheckAndLogSlowQuery(r.logger, query, duration, "list")
	return pages, nil
}

func (r *LandingPageRepository) Count(ctx context.Context, filter content.PageFilter) (int, error) {
	where, args := filterClause(filter)
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM landing_pages`+where, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count landing pages: %w", err)
	}
	return n, nil
}

// FindExpired returns published pages whose expiry is at or before now.
func (r *LandingPageRepository) FindExpired(ctx context.Context, now time.Time) ([]*content.LandingPage, error) {
	query := `SELECT ` + pageColumns + ` FROM landing_pages
		WHERE status = 'published' AND expires_at IS NOT NULL AND expires_at <= ?`
	rows, err := r.db.QueryContext(ctx, query, database.FormatTime(now))
	if err != nil {
		return nil, fmt.Errorf("failed to query expired pages: %w", err)
	}
	defer rows.Close()

	var pages []*content.LandingPage
	for rows.Next() {
		page, err := scanPage(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expired page: %w", err)
		}
		pages = append(pages, page)
	}
	return pages, rows.Err()
}

// Store inserts the page and its components in one transaction.
func (r *LandingPageRepository) Store(ctx context.Context, page *content.LandingPage) error {
	query := `INSERT INTO landing_pages (` + pageColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	start := time.Now()
	r.logger.Database().Debug("Executing landing page insert", "id", page.ID, "slug", page.Slug)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, query, pageArgs(page)...); err != nil {
		r.logger.Database().Error("Landing page insert failed", "error", err.Error(), "id", page.ID)
		return classify(err, "insert landing page")
	}
	for i := range page.Content {
		if err := insertComponent(ctx, tx, page.ID, &page.Content[i]); err != nil {
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit landing page insert: %w", err)
	}

	duration := time.Since(start)
	r.logger.Database().Info("Landing page insert completed", "id", page.ID, "components", len(page.Content), "duration", duration)
	database.CheckAndLogSlowQuery(r.logger, "TX_"+query, duration, page.ID)
	r.cache.InvalidatePage(ctx, page.ID, page.Slug)
	return nil
}

// Update writes page fields. Components are managed through the component
// methods and are not touched here.
func (r *LandingPageRepository) Update(ctx context.Context, page *content.LandingPage) error {
	query := `UPDATE landing_pages SET title = ?, slug = ?, description = ?, meta_title = ?, meta_description = ?,
		og_image = ?, status = ?, template_type = ?, target_audience = ?, campaign_source = ?, tracking_code = ?,
		settings = ?, published_at = ?, expires_at = ?, updated_at = ? WHERE id = ?`

	previous, err := r.loadFromDB(ctx, "id = ?", page.ID)
	if err != nil {
		return err
	}

	start := time.Now()
	r.logger.Database().Debug("Executing landing page update", "id", page.ID)

	args := pageArgs(page)
	// title .. expires_at, then updated_at and the key
	updateArgs := append(args[1:15:15], database.FormatTime(page.UpdatedAt), page.ID)
	if _, err := r.db.ExecContext(ctx, query, updateArgs...); err != nil {
		r.logger.Database().Error("Landing page update failed", "error", err.Error(), "id", page.ID)
		return classify(err, "update landing page")
	}

	duration := time.Since(start)
	r.logger.Database().Info("Landing page update completed", "id", page.ID, "duration", duration)
	database.CheckAndLogSlowQuery(r.logger, query, duration, page.ID)
	r.cache.InvalidatePage(ctx, page.ID, previous.Slug)
	if previous.Slug != page.Slug {
		r.cache.InvalidatePage(ctx, page.ID, page.Slug)
	}
	return nil
}

func (r *LandingPageRepository) Delete(ctx context.Context, id string) error {
	page, err := r.loadFromDB(ctx, "id = ?", id)
	if err != nil {
		return err
	}

	start := time.Now()
	r.logger.Database().Debug("Executing landing page delete", "id", id)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, q := range []string{
		`DELETE FROM contact_inquiries WHERE landing_page_id = ?`,
		`DELETE FROM landing_page_components WHERE landing_page_id = ?`,
		`DELETE FROM landing_pages WHERE id = ?`,
	} {
		if _, err := tx.ExecContext(ctx, q, id); err != nil {
			r.logger.Database().Error("Landing page delete failed", "error", err.Error(), "id", id)
			return fmt.Errorf("failed to delete landing page: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit landing page delete: %w", err)
	}

	r.logger.Database().Info("Landing page delete completed", "id", id, "duration", time.Since(start))
	r.cache.InvalidatePage(ctx, id, page.Slug)
	return nil
}

// AddComponent appends component at the end of the page. Its Order is set
// from the stored position.
func (r *LandingPageRepository) AddComponent(ctx context.Context, pageID string, component *content.ComponentInstance) error {
	page, err := r.loadFromDB(ctx, "id = ?", pageID)
	if err != nil {
		return err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var next int
	if err := tx.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(position), -1) + 1 FROM landing_page_components WHERE landing_page_id = ?`, pageID,
	).Scan(&next); err != nil {
		return fmt.Errorf("failed to read component position: %w", err)
	}
	component.Order = next
	if err := insertComponent(ctx, tx, pageID, component); err != nil {
		return err
	}
	if err := touchPage(ctx, tx, pageID, component.UpdatedAt); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit component insert: %w", err)
	}

	r.logger.Database().Info("Component added", "pageId", pageID, "componentId", component.ID, "type", component.Type, "position", next)
	r.cache.InvalidatePage(ctx, pageID, page.Slug)
	return nil
}

func (r *LandingPageRepository) RemoveComponent(ctx context.Context, pageID, componentID string) error {
	page, err := r.loadFromDB(ctx, "id = ?", pageID)
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx,
		`DELETE FROM landing_page_components WHERE id = ? AND landing_page_id = ?`, componentID, pageID)
	if err != nil {
		return fmt.Errorf("failed to delete component: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("component %s: %w", componentID, repositories.ErrNotFound)
	}

	r.logger.Database().Info("Component removed", "pageId", pageID, "componentId", componentID)
	r.cache.InvalidatePage(ctx, pageID, page.Slug)
	return nil
}

// ReplaceComponentConfig is the single write path for a component config.
func (r *LandingPageRepository) ReplaceComponentConfig(ctx context.Context, pageID, componentID string, config json.RawMessage) error {
	query := `UPDATE landing_page_components SET config = ?, updated_at = ? WHERE id = ? AND landing_page_id = ?`

	page, err := r.loadFromDB(ctx, "id = ?", pageID)
	if err != nil {
		return err
	}

	start := time.Now()
	now := time.Now()
	res, err := r.db.ExecContext(ctx, query, string(config), database.FormatTime(now), componentID, pageID)
	if err != nil {
		r.logger.Database().Error("Component config update failed", "error", err.Error(), "componentId", componentID)
		return fmt.Errorf("failed to update component config: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("component %s: %w", componentID, repositories.ErrNotFound)
	}
	if _, err := r.db.ExecContext(ctx, `UPDATE landing_pages SET updated_at = ? WHERE id = ?`, database.FormatTime(now), pageID); err != nil {
		return fmt.Errorf("failed to touch landing page: %w", err)
	}

	duration := time.Since(start)
	r.logger.Database().Info("Component config replaced", "pageId", pageID, "componentId", componentID, "bytes", len(config), "duration", duration)
	database.CheckAndLogSlowQuery(r.logger, query, duration, pageID)
	r.cache.InvalidatePage(ctx, pageID, page.Slug)
	return nil
}

func (r *LandingPageRepository) loadFromDB(ctx context.Context, where string, arg any) (*content.LandingPage, error) {
	query := `SELECT ` + pageColumns + ` FROM landing_pages WHERE ` + where

	start := time.Now()
	r.logger.Database().Debug("Loading landing page from database", "key", arg)

	page, err := scanPage(r.db.QueryRowContext(ctx, query, arg))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("landing page %v: %w", arg, repositories.ErrNotFound)
	}
	if err != nil {
		r.logger.Database().Error("Failed to scan landing page", "error", err.Error(), "key", arg)
		return nil, fmt.Errorf("failed to load landing page: %w", err)
	}
	if page.Content, err = r.loadComponents(ctx, page.ID); err != nil {
		return nil, err
	}

	duration := time.Since(start)
	r.logger.Database().Info("Landing page loaded from database", "id", page.ID, "components", len(page.Content), "duration", duration)
	database.CheckAndLogSlowQuery(r.logger, query, duration, page.ID)
	return page, nil
}

func (r *LandingPageRepository) loadComponents(ctx context.Context, pageID string) ([]content.ComponentInstance, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, type, config, position, created_at, updated_at FROM landing_page_components
		WHERE landing_page_id = ? ORDER BY position, created_at`, pageID)
	if err != nil {
		return nil, fmt.Errorf("failed to query components: %w", err)
	}
	defer rows.Close()

	components := []content.ComponentInstance{}
	for rows.Next() {
		var c content.ComponentInstance
		var kind, config string
		var created, updated sql.NullString
		if err := rows.Scan(&c.ID, &kind, &config, &c.Order, &created, &updated); err != nil {
			return nil, fmt.Errorf("failed to scan component: %w", err)
		}
		c.Type = normaliseKind(kind)
		c.Config = json.RawMessage(config)
		c.CreatedAt = database.ParseTime(created)
		c.UpdatedAt = database.ParseTime(updated)
		components = append(components, c)
	}
	return components, rows.Err()
}

// normaliseKind maps seed spellings to the canonical kind. Unknown kinds are
// kept as stored so the renderer can degrade them.
func normaliseKind(s string) blocks.Kind {
	if k, err := blocks.ParseKind(s); err == nil {
		return k
	}
	return blocks.Kind(s)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPage(row rowScanner) (*content.LandingPage, error) {
	var p content.LandingPage
	var description, metaTitle, metaDescription, ogImage sql.NullString
	var templateType, targetAudience, campaignSource, trackingCode sql.NullString
	var settings, createdBy sql.NullString
	var publishedAt, expiresAt, createdAt, updatedAt sql.NullString
	var status string

	err := row.Scan(&p.ID, &p.Title, &p.Slug, &description, &metaTitle, &metaDescription, &ogImage, &status,
		&templateType, &targetAudience, &campaignSource, &trackingCode, &settings,
		&publishedAt, &expiresAt, &createdBy, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	p.Description = description.String
	p.MetaTitle = metaTitle.String
	p.MetaDescription = metaDescription.String
	p.OGImage = ogImage.String
	p.Status = content.PageStatus(status)
	p.TemplateType = templateType.String
	p.TargetAudience = targetAudience.String
	p.CampaignSource = campaignSource.String
	p.TrackingCode = trackingCode.String
	if settings.Valid && settings.String != "" {
		p.Settings = json.RawMessage(settings.String)
	}
	p.PublishedAt = database.ParseNullTime(publishedAt)
	p.ExpiresAt = database.ParseNullTime(expiresAt)
	p.CreatedBy = createdBy.String
	p.CreatedAt = database.ParseTime(createdAt)
	p.UpdatedAt = database.ParseTime(updatedAt)
	return &p, nil
}

// pageArgs returns insert arguments in pageColumns order.
func pageArgs(p *content.LandingPage) []any {
	settings := "{}"
	if len(p.Settings) > 0 {
		settings = string(p.Settings)
	}
	return []any{
		p.ID, p.Title, p.Slug, database.NullString(p.Description),
		database.NullString(p.MetaTitle), database.NullString(p.MetaDescription), database.NullString(p.OGImage),
		string(p.Status),
		database.NullString(p.TemplateType), database.NullString(p.TargetAudience),
		database.NullString(p.CampaignSource), database.NullString(p.TrackingCode), settings,
		database.NullTime(p.PublishedAt), database.NullTime(p.ExpiresAt),
		database.NullString(p.CreatedBy), database.FormatTime(p.CreatedAt), database.FormatTime(p.UpdatedAt),
	}
}

func insertComponent(ctx context.Context, tx *sql.Tx, pageID string, c *content.ComponentInstance) error {
	config := "{}"
	if len(c.Config) > 0 {
		config = string(c.Config)
	}
	_, err := tx.ExecContext(ctx,
		`INSERT INTO landing_page_components (id, landing_page_id, type, config, position, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		c.ID, pageID, string(c.Type), config, c.Order, database.FormatTime(c.CreatedAt), database.FormatTime(c.UpdatedAt))
	if err != nil {
		return fmt.Errorf("failed to insert component %s: %w", c.ID, err)
	}
	return nil
}

func touchPage(ctx context.Context, tx *sql.Tx, pageID string, at time.Time) error {
	if at.IsZero() {
		at = time.Now()
	}
	if _, err := tx.ExecContext(ctx, `UPDATE landing_pages SET updated_at = ? WHERE id = ?`, database.FormatTime(at), pageID); err != nil {
		return fmt.Errorf("failed to touch landing page: %w", err)
	}
	return nil
}

// classify maps unique constraint violations to ErrConflict.
func classify(err error, op string) error {
	if strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return fmt.Errorf("%s: %w", op, repositories.ErrConflict)
	}
	return fmt.Errorf("failed to %s: %w", op, err)
}
