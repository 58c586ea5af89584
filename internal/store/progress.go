package store

import (
	"context"
	"fmt"
	"time"

	"github.com/prateekk-tech99/safebite-quiz/ent"
)

// progressRepo implements ProgressRepo using the ent client.
type progressRepo struct {
	client *ent.Client
}

func (r *progressRepo) Load(ctx context.Context) (map[string]any, error) {
	rec, err := r.client.ProgressRecord.Query().First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query progress record: %w", err)
	}
	return rec.Data, nil
}

func (r *progressRepo) Save(ctx context.Context, data map[string]any) error {
	rec, err := r.client.ProgressRecord.Query().First(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			return fmt.Errorf("query progress record: %w", err)
		}
		_, err = r.client.ProgressRecord.Create().
			SetData(data).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create progress record: %w", err)
		}
		return nil
	}

	_, err = rec.Update().
		SetData(data).
		SetUpdatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update progress record: %w", err)
	}
	return nil
}

func (r *progressRepo) Clear(ctx context.Context) error {
	_, err := r.client.ProgressRecord.Delete().Exec(ctx)
	if err != nil {
		return fmt.Errorf("clear progress record: %w", err)
	}
	return nil
}
