package ports

import "go.trai.ch/mend/internal/core/domain"

// AuditSink flushes the removal record to durable storage. It runs exactly
// once per repair run, on every terminal path.
//
//go:generate go run go.uber.org/mock/mockgen -source=audit_sink.go -destination=mocks/mock_audit_sink.go -package=mocks
type AuditSink interface {
	// Export writes the removal documents below dir, creating missing
	// directories as needed.
	Export(dir string, record *domain.RemovalRecord) error
}
