package progress

import (
	"context"
	"encoding/json"
	"fmt"
)

// RawRepo is the document-level persistence contract the store layer
// provides. The store knows nothing about UserProgress; this package owns
// the encoding.
type RawRepo interface {
	Load(ctx context.Context) (map[string]any, error)
	Save(ctx context.Context, data map[string]any) error
	Clear(ctx context.Context) error
}

// NewRepo adapts a raw document repo into a typed Repo.
func NewRepo(raw RawRepo) Repo {
	return &docRepo{raw: raw}
}

type docRepo struct {
	raw RawRepo
}

func (r *docRepo) Load(ctx context.Context) (*UserProgress, error) {
	data, err := r.raw.Load(ctx)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}

	b, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("marshal record data: %w", err)
	}
	var p UserProgress
	if err := json.Unmarshal(b, &p); err != nil {
		// Undecodable record: start fresh rather than brick the app.
		return nil, nil
	}
	return &p, nil
}

func (r *docRepo) Save(ctx context.Context, p *UserProgress) error {
	b, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal progress: %w", err)
	}
	var data map[string]any
	if err := json.Unmarshal(b, &data); err != nil {
		return fmt.Errorf("encode progress document: %w", err)
	}
	return r.raw.Save(ctx, data)
}

func (r *docRepo) Clear(ctx context.Context) error {
	return r.raw.Clear(ctx)
}
