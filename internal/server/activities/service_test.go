package activities

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shazhupan/activity-portal/internal/common"
)

// fakeRepo serves a fixed collection.
type fakeRepo struct {
	list      []Activity
	createdID int64
}

func (f *fakeRepo) List(ctx context.Context) ([]Activity, error) {
	return f.list, nil
}

func (f *fakeRepo) Get(ctx context.Context, id int64) (*Activity, error) {
	for _, a := range f.list {
		if a.ID == id {
			return &a, nil
		}
	}
	return nil, common.ErrActivityNotFound
}

func (f *fakeRepo) Create(ctx context.Context, draft Draft) (*Activity, error) {
	f.createdID++
	return &Activity{ID: f.createdID, Title: draft.Title}, nil
}

func (f *fakeRepo) Delete(ctx context.Context, id int64) (int64, error) {
	for _, a := range f.list {
		if a.ID == id {
			return id, nil
		}
	}
	return 0, common.ErrActivityNotFound
}

func TestList_DerivedDisplayPeriod(t *testing.T) {
	start, end := "2025/12/17", "2026/03/31"
	repo := &fakeRepo{list: []Activity{
		{ID: 1, Title: "both times", StartTime: &start, EndTime: &end},
		{ID: 2, Title: "no times"},
		{ID: 3, Title: "only start", StartTime: &start},
	}}
	svc := NewService(repo)

	items, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 3)

	assert.Equal(t, "2025/12/17 - 2026/03/31", items[0].Time)
	assert.Empty(t, items[1].Time)
	assert.Empty(t, items[2].Time)
}

func TestList_PreservesStoredOrder(t *testing.T) {
	repo := &fakeRepo{list: []Activity{{ID: 3}, {ID: 1}, {ID: 2}}}
	svc := NewService(repo)

	items, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, int64(3), items[0].ID)
	assert.Equal(t, int64(1), items[1].ID)
	assert.Equal(t, int64(2), items[2].ID)
}

func TestCreate_RequiresTitle(t *testing.T) {
	svc := NewService(&fakeRepo{})

	_, err := svc.Create(context.Background(), Draft{Title: "   "})
	assert.ErrorIs(t, err, common.ErrTitleRequired)

	a, err := svc.Create(context.Background(), Draft{Title: "Sale"})
	require.NoError(t, err)
	assert.Equal(t, "Sale", a.Title)
}

func TestDelete_PassesThroughNotFound(t *testing.T) {
	svc := NewService(&fakeRepo{})

	_, err := svc.Delete(context.Background(), 42)
	assert.ErrorIs(t, err, common.ErrActivityNotFound)
}
