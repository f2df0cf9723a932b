// Package audit records before/after state of entity writes. Auditing is
// best-effort: a failed audit write is logged and never fails the operation
// it describes.
package audit

import (
	"context"

	"github.com/bytedance/sonic"
	"github.com/ougirez/ecotrack/internal/domain"
	"github.com/ougirez/ecotrack/internal/pkg/logger"
	"github.com/ougirez/ecotrack/internal/pkg/store"
)

type Service struct {
	store store.Store
}

func NewAuditService(store store.Store) *Service {
	return &Service{store: store}
}

func marshalValue(ctx context.Context, v interface{}) []byte {
	if v == nil {
		return nil
	}
	data, err := sonic.Marshal(v)
	if err != nil {
		logger.Warnf(ctx, "audit: marshal value: %s", err.Error())
		return nil
	}
	return data
}

// Record writes one audit row. oldValue/newValue may be nil for creates and
// deletes respectively.
func (s *Service) Record(ctx context.Context, operation, table string, recordID int64, oldValue, newValue interface{}, actorID int64) {
	record := &domain.AuditRecord{
		OperationType: operation,
		TableName:     table,
		RecordID:      &recordID,
		OldValues:     marshalValue(ctx, oldValue),
		NewValues:     marshalValue(ctx, newValue),
		PerformedBy:   actorID,
	}

	if err := s.store.InsertAudit(ctx, record); err != nil {
		logger.Errorf(ctx, "audit: insert %s %s/%d: %s", operation, table, recordID, err.Error())
	}
}
