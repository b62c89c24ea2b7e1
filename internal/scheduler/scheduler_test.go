package scheduler

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrilync/farmtrack/internal/config"
	"github.com/agrilync/farmtrack/internal/domain/models"
	"github.com/agrilync/farmtrack/internal/repository/farmstore"
)

type fakeStore struct {
	farms   []models.Farm
	listErr error
}

func (f *fakeStore) ListFarms(_ context.Context) ([]models.Farm, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.farms, nil
}

func (f *fakeStore) UpdateFarm(_ context.Context, _ string, _ farmstore.FarmUpdate) (*models.Farm, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeStore) CreateFarm(_ context.Context, _ farmstore.NewFarm) (*models.Farm, error) {
	return nil, errors.New("not implemented")
}

type fakeNotifier struct {
	notices []models.Notification
}

func (f *fakeNotifier) Notify(_ context.Context, n models.Notification) {
	f.notices = append(f.notices, n)
}

func testConfig() config.ReminderConfig {
	return config.ReminderConfig{
		CronSchedule:       "0 7 * * *",
		ExportCronSchedule: "0 20 * * 5",
		Timezone:           "Africa/Accra",
	}
}

func TestSendProgressReminders(t *testing.T) {
	store := &fakeStore{farms: []models.Farm{
		{ID: "farm-1", Name: "Ejura Maize Farm", FarmType: "crop farming", Farmer: models.FarmerRef{ID: "farmer-1"}},
		{ID: "farm-2", Name: "Savelugu Goat Farm", FarmType: "livestock farming", Farmer: models.FarmerRef{ID: "farmer-2"}},
		{ID: "farm-3", Name: "Orphaned Farm", FarmType: "crop farming"},
	}}
	notifier := &fakeNotifier{}
	s := NewScheduler(testConfig(), store, notifier, nil, nil)

	s.sendProgressReminders()

	// Farms without a farmer reference are skipped.
	require.Len(t, notifier.notices, 2)
	assert.Equal(t, "farmer-1", notifier.notices[0].To)
	assert.Contains(t, notifier.notices[0].Message, "planting, growth, and harvest")
	assert.Equal(t, "farmer-2", notifier.notices[1].To)
	assert.Contains(t, notifier.notices[1].Message, "health, feed, and production")
}

func TestSendProgressRemindersStoreFailure(t *testing.T) {
	notifier := &fakeNotifier{}
	s := NewScheduler(testConfig(), &fakeStore{listErr: errors.New("upstream down")}, notifier, nil, nil)

	s.sendProgressReminders()

	assert.Empty(t, notifier.notices)
}

func TestNewSchedulerUnknownTimezone(t *testing.T) {
	cfg := testConfig()
	cfg.Timezone = "Mars/Olympus"

	s := NewScheduler(cfg, &fakeStore{}, &fakeNotifier{}, nil, nil)
	require.NotNil(t, s)
}
