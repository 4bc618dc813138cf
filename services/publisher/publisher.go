package publisher

import "context"

// Publisher archives delivered product records for downstream
// consumers. Archiving is best-effort: failures are logged by the
// caller and never block a delivery.
type Publisher interface {
	// Publish appends one record payload under the given category
	Publish(ctx context.Context, category string, payload []byte) error

	// Trim caps the archive stream to its configured maximum length
	Trim(ctx context.Context) error

	// Close closes the publisher connection
	Close() error
}

// Noop is the publisher used when no archive backend is configured.
type Noop struct{}

func (Noop) Publish(context.Context, string, []byte) error { return nil }
func (Noop) Trim(context.Context) error                    { return nil }
func (Noop) Close() error                                  { return nil }
