// Package notify publishes a single best-effort BatchCompletedEvent to
// NATS once a batch run finishes. It is narrowed from the lifecycle-
// event publishing the reference processor does at every pipeline
// stage (Initialized/Ready/Started/Completed over JetStream) down to
// one terminal event over core NATS: this package has no delivery
// guarantees to provide and no durable consumer to coordinate with, so
// plain publish-and-forget is the right amount of machinery.
package notify

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/book-expert/logger"
)

// Subject is the default NATS subject a completion event is published
// on, used whenever the configuration leaves the subject unset.
const Subject = "ocr-clean.batch.completed"

// BatchCompletedEvent summarizes one finished batch run.
type BatchCompletedEvent struct {
	RunID              string    `json:"run_id"`
	OutputDir          string    `json:"output_dir"`
	CompletedAt        time.Time `json:"completed_at"`
	FilesProcessed     int64     `json:"files_processed"`
	FilesModified      int64     `json:"files_modified"`
	FilesFailed        int64     `json:"files_failed"`
	TotalSubstitutions int64     `json:"total_substitutions"`
}

// Notifier publishes BatchCompletedEvent messages. A nil *Notifier is
// valid and Publish becomes a no-op, matching the config contract that
// notification is optional and the batch must run the same whether or
// not it is configured.
type Notifier struct {
	conn    *nats.Conn
	log     *logger.Logger
	subject string
}

// Connect dials url and returns a Notifier bound to subject (falling
// back to Subject when empty). An empty url means notification was not
// configured; Connect returns a nil *Notifier and nil error in that
// case so callers can treat it uniformly with a configured-but-
// unreachable broker, which returns a non-nil error instead.
func Connect(url, subject string, log *logger.Logger) (*Notifier, error) {
	if url == "" {
		return nil, nil
	}

	if subject == "" {
		subject = Subject
	}

	conn, err := nats.Connect(url, nats.Name("ocr-clean"), nats.MaxReconnects(5))
	if err != nil {
		return nil, fmt.Errorf("connect to nats at %s: %w", url, err)
	}

	return &Notifier{conn: conn, log: log, subject: subject}, nil
}

// Publish marshals event and publishes it to the configured subject.
// Failures are logged, not returned: a dropped completion notification
// must never fail a batch that otherwise finished successfully.
func (n *Notifier) Publish(event BatchCompletedEvent) {
	if n == nil || n.conn == nil {
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		if n.log != nil {
			n.log.Errorf("marshal batch completed event: %v", err)
		}

		return
	}

	if err := n.conn.Publish(n.subject, data); err != nil {
		if n.log != nil {
			n.log.Errorf("publish batch completed event: %v", err)
		}

		return
	}

	if err := n.conn.Flush(); err != nil && n.log != nil {
		n.log.Warnf("flush nats connection after publish: %v", err)
	}
}

// Close closes the underlying connection. Safe to call on a
// nil Notifier.
func (n *Notifier) Close() {
	if n == nil || n.conn == nil {
		return
	}

	n.conn.Close()
}
