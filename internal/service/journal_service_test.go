package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wakescroll/backend/internal/model"
	"wakescroll/backend/internal/repository"
	"wakescroll/backend/internal/store"
)

func newTestJournalService(t *testing.T) (*JournalService, *time.Time) {
	t.Helper()
	kv, err := store.OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = kv.Close() })

	now := time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)
	svc := NewJournalService(repository.NewJournalRepository(kv), time.UTC)
	svc.nowFn = func() time.Time { return now }
	return svc, &now
}

func TestJournalSaveRoundTrip(t *testing.T) {
	svc, _ := newTestJournalService(t)
	ctx := context.Background()

	saved, apiErr := svc.Save(ctx, "user-1", "hello", model.MoodGreat)
	require.Nil(t, apiErr)
	require.NotEmpty(t, saved.ID)

	entries, apiErr := svc.TodaysEntries(ctx, "user-1")
	require.Nil(t, apiErr)
	require.Len(t, entries, 1)
	assert.Equal(t, "hello", entries[0].Text)
	assert.Equal(t, model.MoodGreat, entries[0].Mood)
	assert.Equal(t, "2026-03-10", entries[0].DateString)
}

func TestJournalSaveValidation(t *testing.T) {
	svc, _ := newTestJournalService(t)
	ctx := context.Background()

	_, apiErr := svc.Save(ctx, "user-1", "   ", model.MoodGreat)
	require.NotNil(t, apiErr)
	assert.Equal(t, "validation_failed", apiErr.Code)

	long := ""
	for i := 0; i < 501; i++ {
		long += "a"
	}
	_, apiErr = svc.Save(ctx, "user-1", long, model.MoodGreat)
	require.NotNil(t, apiErr)

	_, apiErr = svc.Save(ctx, "user-1", "fine text", "not-a-mood")
	require.NotNil(t, apiErr)
}

func TestJournalSaveTrimsText(t *testing.T) {
	svc, _ := newTestJournalService(t)

	saved, apiErr := svc.Save(context.Background(), "user-1", "  padded  ", model.MoodOkay)
	require.Nil(t, apiErr)
	assert.Equal(t, "padded", saved.Text)
}

func TestJournalDeleteRemovesExactlyOne(t *testing.T) {
	svc, _ := newTestJournalService(t)
	ctx := context.Background()

	first, apiErr := svc.Save(ctx, "user-1", "keep me", model.MoodGood)
	require.Nil(t, apiErr)
	second, apiErr := svc.Save(ctx, "user-1", "delete me", model.MoodSad)
	require.Nil(t, apiErr)
	// Same dateString as the others; must survive the delete.
	third, apiErr := svc.Save(ctx, "user-1", "also keep me", model.MoodOkay)
	require.Nil(t, apiErr)

	deleted, apiErr := svc.Delete(ctx, "user-1", second.ID)
	require.Nil(t, apiErr)
	assert.True(t, deleted)

	entries, apiErr := svc.Entries(ctx, "user-1")
	require.Nil(t, apiErr)
	require.Len(t, entries, 2)
	assert.Equal(t, third.ID, entries[0].ID)
	assert.Equal(t, first.ID, entries[1].ID)

	deleted, apiErr = svc.Delete(ctx, "user-1", "no-such-id")
	require.Nil(t, apiErr)
	assert.False(t, deleted)
}

func TestJournalRetention(t *testing.T) {
	svc, _ := newTestJournalService(t)
	ctx := context.Background()

	for i := 0; i < repository.JournalEntryCap+1; i++ {
		_, apiErr := svc.Save(ctx, "user-1", fmt.Sprintf("entry %d", i), model.MoodOkay)
		require.Nil(t, apiErr)
	}

	entries, apiErr := svc.Entries(ctx, "user-1")
	require.Nil(t, apiErr)
	require.Len(t, entries, repository.JournalEntryCap)
	// Newest first; the very first entry fell off.
	assert.Equal(t, fmt.Sprintf("entry %d", repository.JournalEntryCap), entries[0].Text)
	assert.Equal(t, "entry 1", entries[len(entries)-1].Text)
}

func TestJournalStats(t *testing.T) {
	svc, now := newTestJournalService(t)
	ctx := context.Background()

	_, apiErr := svc.Save(ctx, "user-1", "day one", model.MoodGreat)
	require.Nil(t, apiErr)
	*now = now.AddDate(0, 0, 1)
	_, apiErr = svc.Save(ctx, "user-1", "day two morning", model.MoodGood)
	require.Nil(t, apiErr)
	last, apiErr := svc.Save(ctx, "user-1", "day two evening", model.MoodGood)
	require.Nil(t, apiErr)

	stats, apiErr := svc.Stats(ctx, "user-1")
	require.Nil(t, apiErr)
	assert.Equal(t, 3, stats.TotalEntries)
	assert.Equal(t, 2, stats.UniqueDays)
	assert.Equal(t, 2, stats.CurrentStreak)
	assert.Equal(t, map[string]int{model.MoodGreat: 1, model.MoodGood: 2}, stats.MoodCounts)
	require.NotNil(t, stats.LastEntry)
	assert.Equal(t, last.ID, stats.LastEntry.ID)
}

func TestJournalWeeklyDataAlwaysSevenBuckets(t *testing.T) {
	svc, now := newTestJournalService(t)
	ctx := context.Background()

	_, apiErr := svc.Save(ctx, "user-1", "one two three", model.MoodOkay)
	require.Nil(t, apiErr)
	*now = now.AddDate(0, 0, 2)
	_, apiErr = svc.Save(ctx, "user-1", "four five", model.MoodOkay)
	require.Nil(t, apiErr)

	buckets, apiErr := svc.WeeklyData(ctx, "user-1", "2026-03-09")
	require.Nil(t, apiErr)
	require.Len(t, buckets, 7)

	assert.Equal(t, "2026-03-09", buckets[0].DateString)
	assert.Equal(t, "2026-03-15", buckets[6].DateString)

	assert.Equal(t, 0, buckets[0].Entries)
	assert.Equal(t, 1, buckets[1].Entries)
	assert.Equal(t, 3, buckets[1].Words)
	assert.Equal(t, 1, buckets[3].Entries)
	assert.Equal(t, 2, buckets[3].Words)
	for _, i := range []int{0, 2, 4, 5, 6} {
		assert.Zero(t, buckets[i].Entries)
		assert.Zero(t, buckets[i].Words)
	}
}

func TestJournalWeeklyDataRejectsBadStart(t *testing.T) {
	svc, _ := newTestJournalService(t)

	_, apiErr := svc.WeeklyData(context.Background(), "user-1", "next monday")
	require.NotNil(t, apiErr)
	assert.Equal(t, "validation_failed", apiErr.Code)
}

func TestJournalCalendarAndMonthlyStats(t *testing.T) {
	svc, now := newTestJournalService(t)
	ctx := context.Background()

	_, apiErr := svc.Save(ctx, "user-1", "march entry one", model.MoodGreat)
	require.Nil(t, apiErr)
	_, apiErr = svc.Save(ctx, "user-1", "march entry two same day", model.MoodLow)
	require.Nil(t, apiErr)
	*now = now.AddDate(0, 1, 0)
	_, apiErr = svc.Save(ctx, "user-1", "april entry", model.MoodGood)
	require.Nil(t, apiErr)

	calendar, apiErr := svc.CalendarData(ctx, "user-1", 2026, time.March)
	require.Nil(t, apiErr)
	require.Len(t, calendar, 1)
	assert.Len(t, calendar[10], 2)

	stats, apiErr := svc.MonthlyStats(ctx, "user-1", 2026, time.March)
	require.Nil(t, apiErr)
	assert.Equal(t, 2, stats.TotalEntries)
	assert.Equal(t, 1, stats.DaysWithEntries)
	assert.InDelta(t, 2.0, stats.AveragePerDay, 0.001)
	assert.InDelta(t, 4.0, stats.AverageWords, 0.001)
	assert.Equal(t, map[string]int{model.MoodGreat: 1, model.MoodLow: 1}, stats.MoodCounts)

	empty, apiErr := svc.MonthlyStats(ctx, "user-1", 2026, time.February)
	require.Nil(t, apiErr)
	assert.Zero(t, empty.TotalEntries)
	assert.Zero(t, empty.AveragePerDay)
}
