// Package events publishes ranking notifications to NATS.
package events

import (
	"context"
	"time"
)

//go:generate mockgen -source=events.go -destination=mock_publisher.go -package=events

// Publisher delivers an event payload to a subject.
type Publisher interface {
	Publish(ctx context.Context, subject string, payload any) error
	Close()
}

// DefaultSubjectPrefix is used when no prefix is configured.
const DefaultSubjectPrefix = "wisata.mabac"

// SubjectRankingComputed is the subject a completed ranking is announced on.
func SubjectRankingComputed(prefix string) string {
	if prefix == "" {
		prefix = DefaultSubjectPrefix
	}
	return prefix + ".ranking.computed"
}

// RankingComputed summarises a completed ranking run. The staged matrices are
// not included; subscribers that need them call the HTTP API.
type RankingComputed struct {
	RunID        string    `json:"run_id"`
	Source       string    `json:"source"`
	CalculatedAt time.Time `json:"calculated_at"`
	Alternatives int       `json:"alternatives"`
	Criteria     []string  `json:"criteria"`
	TopID        string    `json:"top_id"`
	TopName      string    `json:"top_name"`
	TopScore     float64   `json:"top_score"`
	Recommended  []string  `json:"recommended"`
	DurationMs   int64     `json:"duration_ms"`
}

// NopPublisher discards every event.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, string, any) error { return nil }
func (NopPublisher) Close()                                     {}

var _ Publisher = NopPublisher{}
