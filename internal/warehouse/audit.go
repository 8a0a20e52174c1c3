package warehouse

import (
	"context"
	"time"
)

// Audit statuses as persisted in the status column.
const (
	StatusPass = "PASS"
	StatusWarn = "WARN"
	StatusFail = "FAIL"
)

// AuditResultRow is one quality-check outcome, persisted to the audit log.
type AuditResultRow struct {
	RunID     string    `bigquery:"run_id" json:"run_id"`
	Check     string    `bigquery:"check" json:"check"`
	TableName string    `bigquery:"table_name" json:"table_name"`
	Layer     string    `bigquery:"layer" json:"layer"`
	Expected  string    `bigquery:"expected" json:"expected"`
	Actual    string    `bigquery:"actual" json:"actual"`
	Status    string    `bigquery:"status" json:"status"`
	CheckedAt time.Time `bigquery:"checked_at" json:"checked_at"`
}

// ReplaceAuditLog replaces the audit log table with the results of a run.
func (c *Client) ReplaceAuditLog(ctx context.Context, rows []AuditResultRow) error {
	return replaceRows(ctx, c, AuditLogTable, rows)
}
