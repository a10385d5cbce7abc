package bootstrap

import "context"

// AuditLog is an operator-facing lifecycle event, recorded separately from
// request logging so process-level transitions stay easy to find.
type AuditLog struct {
	Action  string
	Message string
	Meta    map[string]any
}

type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}
