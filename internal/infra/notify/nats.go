// Package notify delivers accepted alert intents to external consumers.
package notify

import (
	"context"
	"encoding/json"
	"time"

	"fleetsync/internal/domain/alert"
	"fleetsync/internal/pkg/clock"
	"fleetsync/internal/pkg/errs"

	"github.com/nats-io/nats.go"
)

// intentEvent is the wire shape published for each new notification.
type intentEvent struct {
	Kind       string    `json:"kind"`
	Severity   string    `json:"severity"`
	SubjectKey string    `json:"subject_key"`
	Ficha      string    `json:"ficha,omitempty"`
	Message    string    `json:"message"`
	EmittedAt  time.Time `json:"emitted_at"`
}

// NATSSink publishes intents to a JetStream subject.
type NATSSink struct {
	conn    *nats.Conn
	js      nats.JetStreamContext
	subject string
	clock   clock.Clock
}

func NewNATSSink(url, subject string, clk clock.Clock) (*NATSSink, error) {
	nc, err := nats.Connect(url,
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second))
	if err != nil {
		return nil, errs.Wrap(err, "failed to connect to NATS")
	}

	js, err := nc.JetStream()
	if err != nil {
		nc.Close()
		return nil, errs.Wrap(err, "failed to open JetStream context")
	}

	return &NATSSink{conn: nc, js: js, subject: subject, clock: clk}, nil
}

func (s *NATSSink) Publish(ctx context.Context, intent alert.Intent) error {
	data, err := json.Marshal(intentEvent{
		Kind:       string(intent.Kind),
		Severity:   string(intent.Severity),
		SubjectKey: intent.SubjectKey,
		Ficha:      intent.Ficha,
		Message:    intent.Message,
		EmittedAt:  s.clock.Now().UTC(),
	})
	if err != nil {
		return errs.Wrap(err, "failed to encode intent event")
	}

	if _, err := s.js.Publish(s.subject, data, nats.Context(ctx)); err != nil {
		return errs.Wrap(err, "failed to publish intent event")
	}
	return nil
}

func (s *NATSSink) Close() {
	if s == nil || s.conn == nil {
		return
	}
	if err := s.conn.Drain(); err != nil {
		s.conn.Close()
	}
}

// NoopSink is used when no NATS endpoint is configured. Alerting still
// works; only the external fan-out is skipped.
type NoopSink struct{}

func (NoopSink) Publish(context.Context, alert.Intent) error { return nil }
