package queries

import (
	"context"

	"orderdesk/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActivityQueryHandler reads the activity journal with plain SQL. With no
// database configured the journal is disabled and every query returns an
// empty list.
type GetActivityQueryHandler struct {
	db *gorm.DB
}

// NewGetActivityQueryHandler accepts a nil db.
func NewGetActivityQueryHandler(db *gorm.DB) GetActivityQueryHandler {
	return GetActivityQueryHandler{db: db}
}

func (h GetActivityQueryHandler) Handle(
	ctx context.Context,
	query GetActivityQuery,
) ([]GetActivityQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	entries := make([]GetActivityQueryResponse, 0)
	if h.db == nil {
		return entries, nil
	}

	sql := `
		SELECT
			id,
			operation,
			order_id,
			from_status,
			to_status,
			outcome,
			message,
			occurred_at
		FROM activity_entries`
	args := make([]any, 0, 2)
	if id := query.OrderID(); id != nil {
		sql += ` WHERE order_id = ?`
		args = append(args, id.String())
	}
	sql += ` ORDER BY occurred_at DESC LIMIT ?`
	args = append(args, query.Limit())

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry GetActivityQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&entry.Operation,
			&entry.OrderID,
			&entry.FromStatus,
			&entry.ToStatus,
			&entry.Outcome,
			&entry.Message,
			&entry.OccurredAt,
		)
		if err != nil {
			return nil, err
		}

		entryID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		entry.ID = entryID
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
