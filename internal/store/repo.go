package store

import (
	"context"
	"time"
)

// PracticeEventData captures one finished study or drill session.
type PracticeEventData struct {
	SessionID    string
	Mode         string // "study" or "drill"
	ItemsSeen    int
	Completed    int
	DurationSecs int
}

// PracticeRecord is a persisted practice event as read back for stats.
type PracticeRecord struct {
	SessionID    string
	Mode         string
	ItemsSeen    int
	Completed    int
	DurationSecs int
	Timestamp    time.Time
}

// PracticeRepo provides append and query access to practice events.
type PracticeRepo interface {
	// Append records a finished session.
	Append(ctx context.Context, data PracticeEventData) error

	// Recent returns up to limit events, newest first.
	Recent(ctx context.Context, limit int) ([]PracticeRecord, error)

	// DeleteAll removes every practice event (used by `slang reset`).
	DeleteAll(ctx context.Context) (int, error)
}
