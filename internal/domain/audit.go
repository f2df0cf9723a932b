package domain

import "time"

// audit operation kinds
const (
	AuditCreate = "CREATE"
	AuditUpdate = "UPDATE"
	AuditDelete = "DELETE"
)

// AuditRecord captures the before/after state of one entity write.
type AuditRecord struct {
	ID            int64     `db:"id" json:"id"`
	OperationType string    `db:"operation_type" json:"operation_type"`
	TableName     string    `db:"table_name" json:"table_name"`
	RecordID      *int64    `db:"record_id" json:"record_id,omitempty"`
	OldValues     []byte    `db:"old_values" json:"old_values,omitempty"`
	NewValues     []byte    `db:"new_values" json:"new_values,omitempty"`
	PerformedBy   int64     `db:"performed_by" json:"performed_by"`
	Timestamp     time.Time `db:"timestamp" json:"timestamp"`
}
