package content

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/AtRiskMedia/landstack-go/internal/domain/entities/content"
	"github.com/AtRiskMedia/landstack-go/internal/domain/repositories"
	"github.com/AtRiskMedia/landstack-go/internal/infrastructure/observability/logging"
	"github.com/AtRiskMedia/landstack-go/internal/infrastructure/persistence/database"
)

var _ repositories.InquiryRepository = (*InquiryRepository)(nil)

type InquiryRepository struct {
	db     *sql.DB
	logger *logging.ChanneledLogger
}

func NewInquiryRepository(db *sql.DB, logger *logging.ChanneledLogger) *InquiryRepository {
	return &InquiryRepository{db: db, logger: logger}
}

func (r *InquiryRepository) Store(ctx context.Context, inq *content.Inquiry) error {
	fields := []byte("{}")
	if len(inq.Fields) > 0 {
		var err error
		if fields, err = json.Marshal(inq.Fields); err != nil {
			return fmt.Errorf("failed to encode inquiry fields: %w", err)
		}
	}

	start := time.Now()
	r.logger.Database().Debug("Executing inquiry insert", "id", inq.ID, "pageId", inq.LandingPageID)

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO contact_inquiries (id, landing_page_id, component_id, name, email, phone, message, fields, source, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		inq.ID, inq.LandingPageID, database.NullString(inq.ComponentID), inq.Name,
		database.NullString(inq.Email), database.NullString(inq.Phone), database.NullString(inq.Message),
		string(fields), database.NullString(inq.Source), database.FormatTime(inq.CreatedAt))
	if err != nil {
		r.logger.Database().Error("Inquiry insert failed", "error", err.Error(), "id", inq.ID)
		return fmt.Errorf("failed to insert inquiry: %w", err)
	}

	r.logger.Database().Info("Inquiry insert completed", "id", inq.ID, "duration", time.Since(start))
	return nil
}

// ListByPage returns the newest inquiries for a page first.
func (r *InquiryRepository) ListByPage(ctx context.Context, pageID string, limit, offset int) ([]*content.Inquiry, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `SELECT id, landing_page_id, component_id, name, email, phone, message, fields, source, created_at
		FROM contact_inquiries WHERE landing_page_id = ? ORDER BY created_at DESC, id LIMIT ? OFFSET ?`

	start := time.Now()
	rows, err := r.db.QueryContext(ctx, query, pageID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list inquiries: %w", err)
	}
	defer rows.Close()

	out := []*content.Inquiry{}
	for rows.Next() {
		var inq content.Inquiry
		var componentID, email, phone, message, source, createdAt sql.NullString
		var fields string
		if err := rows.Scan(&inq.ID, &inq.LandingPageID, &componentID, &inq.Name, &email, &phone,
			&message, &fields, &source, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan inquiry: %w", err)
		}
		inq.ComponentID = componentID.String
		inq.Email = email.String
		inq.Phone = phone.String
		inq.Message = message.String
		inq.Source = source.String
		inq.CreatedAt = database.ParseTime(createdAt)
		if fields != "" && fields != "{}" {
			if err := json.Unmarshal([]byte(fields), &inq.Fields); err != nil {
				r.logger.Database().Warn("Discarding malformed inquiry fields", "id", inq.ID, "error", err.Error())
			}
		}
		out = append(out, &inq)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	duration := time.Since(start)
	database.CheckAndLogSlowQuery(r.logger, query, duration, pageID)
	return out, nil
}
