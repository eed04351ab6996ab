package content

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/AtRiskMedia/landstack-go/internal/domain/entities/content"
	"github.com/AtRiskMedia/landstack-go/internal/domain/repositories"
	"github.com/AtRiskMedia/landstack-go/internal/infrastructure/observability/logging"
	"github.com/AtRiskMedia/landstack-go/internal/infrastructure/persistence/database"
)

var _ repositories.ComponentTemplateRepository = (*ComponentTemplateRepository)(nil)

const templateColumns = `id, name, type, config, preview_image, is_system, created_by, created_at, updated_at`

type ComponentTemplateRepository struct {
	db     *sql.DB
	logger *logging.ChanneledLogger
}

func NewComponentTemplateRepository(db *sql.DB, logger *logging.ChanneledLogger) *ComponentTemplateRepository {
	return &ComponentTemplateRepository{db: db, logger: logger}
}

func (r *ComponentTemplateRepository) FindByID(ctx context.Context, id string) (*content.ComponentTemplate, error) {
	tpl, err := scanTemplate(r.db.QueryRowContext(ctx, `SELECT `+templateColumns+` FROM component_templates WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("component template %s: %w", id, repositories.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load component template: %w", err)
	}
	return tpl, nil
}

// List returns templates for kind, or every template when kind is empty.
// System templates come first.
func (r *ComponentTemplateRepository) List(ctx context.Context, kind string) ([]*content.ComponentTemplate, error) {
	query := `SELECT ` + templateColumns + ` FROM component_templates`
	var args []any
	if kind != "" {
		query += ` WHERE type = ?`
		args = append(args, kind)
	}
	query += ` ORDER BY is_system DESC, name`

	start := time.Now()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Database().Error("Failed to list component templates", "error", err.Error())
		return nil, fmt.Errorf("failed to list component templates: %w", err)
	}
	defer rows.Close()

	var out []*content.ComponentTemplate
	for rows.Next() {
		tpl, err := scanTemplate(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan component template: %w", err)
		}
		out = append(out, tpl)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	duration := time.Since(start)
	r.logger.Database().Debug("Listed component templates", "kind", kind, "count", len(out), "duration", duration)
	database.CheckAndLogSlowQuery(r.logger, query, duration, "templates")
	return out, nil
}

func (r *ComponentTemplateRepository) Store(ctx context.Context, tpl *content.ComponentTemplate) error {
	start := time.Now()
	r.logger.Database().Debug("Executing component template insert", "id", tpl.ID, "type", tpl.Type)

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO component_templates (`+templateColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		tpl.ID, tpl.Name, string(tpl.Type), rawOrEmpty(tpl.Config), database.NullString(tpl.PreviewImage),
		tpl.IsSystem, database.NullString(tpl.CreatedBy), database.FormatTime(tpl.CreatedAt), database.FormatTime(tpl.UpdatedAt))
	if err != nil {
		r.logger.Database().Error("Component template insert failed", "error", err.Error(), "id", tpl.ID)
		return classify(err, "insert component template")
	}

	r.logger.Database().Info("Component template insert completed", "id", tpl.ID, "duration", time.Since(start))
	return nil
}

func (r *ComponentTemplateRepository) Update(ctx context.Context, tpl *content.ComponentTemplate) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE component_templates SET name = ?, type = ?, config = ?, preview_image = ?, updated_at = ? WHERE id = ?`,
		tpl.Name, string(tpl.Type), rawOrEmpty(tpl.Config), database.NullString(tpl.PreviewImage),
		database.FormatTime(tpl.UpdatedAt), tpl.ID)
	if err != nil {
		r.logger.Database().Error("Component template update failed", "error", err.Error(), "id", tpl.ID)
		return fmt.Errorf("failed to update component template: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("component template %s: %w", tpl.ID, repositories.ErrNotFound)
	}
	r.logger.Database().Info("Component template updated", "id", tpl.ID)
	return nil
}

func (r *ComponentTemplateRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM component_templates WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete component template: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("component template %s: %w", id, repositories.ErrNotFound)
	}
	r.logger.Database().Info("Component template deleted", "id", id)
	return nil
}

func scanTemplate(row rowScanner) (*content.ComponentTemplate, error) {
	var t content.ComponentTemplate
	var kind, config string
	var preview, createdBy, createdAt, updatedAt sql.NullString
	if err := row.Scan(&t.ID, &t.Name, &kind, &config, &preview, &t.IsSystem, &createdBy, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	t.Type = normaliseKind(kind)
	t.Config = json.RawMessage(config)
	t.PreviewImage = preview.String
	t.CreatedBy = createdBy.String
	t.CreatedAt = database.ParseTime(createdAt)
	t.UpdatedAt = database.ParseTime(updatedAt)
	return &t, nil
}

func rawOrEmpty(raw json.RawMessage) string {
	if len(raw) == 0 {
		return "{}"
	}
	return string(raw)
}
