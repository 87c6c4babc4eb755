// Package activities manages the promotional campaign records behind the
// authenticated CRUD endpoints.
package activities

import (
	"context"
	"strings"

	"github.com/shazhupan/activity-portal/internal/common"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns every activity in stored order, each wrapped with the
// derived display period when both start and end times are set.
func (s *Service) List(ctx context.Context) ([]ListItem, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]ListItem, 0, len(list))
	for _, a := range list {
		item := ListItem{Activity: a}
		if a.StartTime != nil && *a.StartTime != "" && a.EndTime != nil && *a.EndTime != "" {
			item.Time = *a.StartTime + " - " + *a.EndTime
		}
		items = append(items, item)
	}

	return items, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*Activity, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, draft Draft) (*Activity, error) {
	if strings.TrimSpace(draft.Title) == "" {
		return nil, common.ErrTitleRequired
	}

	return s.repo.Create(ctx, draft)
}

func (s *Service) Delete(ctx context.Context, id int64) (int64, error) {
	return s.repo.Delete(ctx, id)
}
