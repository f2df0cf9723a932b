package store

import (
	"context"

	"github.com/ougirez/ecotrack/internal/domain"
	"github.com/ougirez/ecotrack/internal/pkg/store/xpgx"
)

func (s *store) InsertAudit(ctx context.Context, record *domain.AuditRecord) error {
	query := builder().Insert(tableAuditLog).
		Columns("operation_type", "table_name", "record_id", "old_values", "new_values", "performed_by").
		Values(record.OperationType, record.TableName, record.RecordID, record.OldValues, record.NewValues, record.PerformedBy).
		Suffix("RETURNING id")

	id, err := xpgx.GetScalarx[int64](ctx, s.pool, query)
	if err != nil {
		return wrapErr(err)
	}

	record.ID = id
	return nil
}
