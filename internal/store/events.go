package store

import (
	"context"
	"fmt"

	"github.com/Jun-ho-Kim-ops/chinese-slang-app/ent"
	"github.com/Jun-ho-Kim-ops/chinese-slang-app/ent/practiceevent"
)

// practiceRepo implements PracticeRepo using the ent client.
type practiceRepo struct {
	client *ent.Client
}

func (r *practiceRepo) Append(ctx context.Context, data PracticeEventData) error {
	_, err := r.client.PracticeEvent.Create().
		SetSessionID(data.SessionID).
		SetMode(data.Mode).
		SetItemsSeen(data.ItemsSeen).
		SetCompleted(data.Completed).
		SetDurationSecs(data.DurationSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("append practice event: %w", err)
	}
	return nil
}

func (r *practiceRepo) Recent(ctx context.Context, limit int) ([]PracticeRecord, error) {
	q := r.client.PracticeEvent.Query().
		Order(ent.Desc(practiceevent.FieldTimestamp))
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query practice events: %w", err)
	}

	out := make([]PracticeRecord, 0, len(rows))
	for _, e := range rows {
		out = append(out, PracticeRecord{
			SessionID:    e.SessionID,
			Mode:         e.Mode,
			ItemsSeen:    e.ItemsSeen,
			Completed:    e.Completed,
			DurationSecs: e.DurationSecs,
			Timestamp:    e.Timestamp,
		})
	}
	return out, nil
}

func (r *practiceRepo) DeleteAll(ctx context.Context) (int, error) {
	n, err := r.client.PracticeEvent.Delete().Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("delete practice events: %w", err)
	}
	return n, nil
}
