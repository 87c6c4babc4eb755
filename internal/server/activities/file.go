package activities

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/shazhupan/activity-portal/internal/common"
	"github.com/shazhupan/activity-portal/internal/logging"
)

// FileRepository persists the collection as one pretty-printed JSON array.
// The file is the source of truth: every operation re-reads it and every
// mutation rewrites it in full. The mutex serializes writers inside this
// process; across processes the last writer still wins.
type FileRepository struct {
	mu     sync.Mutex
	path   string
	logger logging.Logger
}

func NewFileRepository(path string, logger logging.Logger) *FileRepository {
	return &FileRepository{path: path, logger: logger}
}

func (r *FileRepository) List(ctx context.Context) ([]Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.load(ctx), nil
}

func (r *FileRepository) Get(ctx context.Context, id int64) (*Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, a := range r.load(ctx) {
		if a.ID == id {
			return &a, nil
		}
	}

	return nil, common.ErrActivityNotFound
}

func (r *FileRepository) Create(ctx context.Context, draft Draft) (*Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := r.load(ctx)

	activity := Activity{
		ID:                nextID(list),
		Title:             draft.Title,
		BgImage:           draft.BgImage,
		StartTime:         draft.StartTime,
		EndTime:           draft.EndTime,
		DetailTopImage:    draft.DetailTopImage,
		DetailBottomImage: draft.DetailBottomImage,
	}

	list = append(list, activity)
	if err := r.write(list); err != nil {
		return nil, fmt.Errorf("persisting activities: %w", err)
	}

	return &activity, nil
}

// Delete removes the record with the given id and rewrites the file. If
// no record matches, the file is left untouched.
func (r *FileRepository) Delete(ctx context.Context, id int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := r.load(ctx)

	filtered := make([]Activity, 0, len(list))
	for _, a := range list {
		if a.ID != id {
			filtered = append(filtered, a)
		}
	}

	if len(filtered) == len(list) {
		return 0, common.ErrActivityNotFound
	}

	if err := r.write(filtered); err != nil {
		return 0, fmt.Errorf("persisting activities: %w", err)
	}

	return id, nil
}

// load reads the collection from disk. A missing file is seeded with one
// sample record; unreadable or malformed content degrades to an empty
// collection instead of failing the request.
func (r *FileRepository) load(ctx context.Context) []Activity {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			seeded := seedActivities()
			if werr := r.write(seeded); werr != nil {
				r.logger.Warn(ctx, "seeding activity file", "path", r.path, "error", werr.Error())
				return nil
			}
			return seeded
		}
		r.logger.Warn(ctx, "reading activity file", "path", r.path, "error", err.Error())
		return nil
	}

	var list []Activity
	if err := json.Unmarshal(data, &list); err != nil {
		r.logger.Warn(ctx, "parsing activity file", "path", r.path, "error", err.Error())
		return nil
	}

	return list
}

// write rewrites the whole file: two-space indent, HTML escaping off so
// URLs and non-ASCII titles stay readable.
func (r *FileRepository) write(list []Activity) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(list); err != nil {
		return err
	}

	return os.WriteFile(r.path, buf.Bytes(), 0o644)
}

// nextID is max existing id + 1, or 1 for an empty collection. IDs of
// deleted records are never reused.
func nextID(list []Activity) int64 {
	var max int64
	for _, a := range list {
		if a.ID > max {
			max = a.ID
		}
	}
	return max + 1
}

func seedActivities() []Activity {
	return []Activity{{
		ID:                1,
		Title:             "风行视频新春会员活动",
		BgImage:           strPtr("../bg-1.png"),
		StartTime:         strPtr("2025/12/17"),
		EndTime:           strPtr("2026/03/31"),
		DetailTopImage:    strPtr("../商详图1.jpg"),
		DetailBottomImage: strPtr("../商详图2.jpeg"),
	}}
}

func strPtr(s string) *string { return &s }
