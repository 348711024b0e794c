package store

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ayoisaiah/focusring/internal/models"
	"github.com/ayoisaiah/focusring/internal/phase"
)

func newTestClient(t *testing.T) (*Client, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "focusring.db")

	c, err := NewClient(path)
	if err != nil {
		t.Fatal(err)
	}

	t.Cleanup(func() {
		_ = c.Close()
	})

	return c, path
}

func TestRecordsWithinWindow(t *testing.T) {
	c, _ := newTestClient(t)

	base := time.Date(2024, time.March, 10, 9, 0, 0, 0, time.UTC)

	var all []*models.Record

	for i := range 4 {
		p := phase.Work
		d := 6 * time.Second

		if i%2 == 1 {
			p, d = phase.Rest, 3*time.Second
		}

		end := base.Add(time.Duration(i) * time.Hour)
		r := models.NewRecord(p, d, end.Add(-d), end)
		all = append(all, r)
	}

	// insert out of order to check that results are sorted by completion
	for _, i := range []int{2, 0, 3, 1} {
		if err := c.AddRecord(all[i]); err != nil {
			t.Fatal(err)
		}
	}

	got, err := c.Records(base.Add(30*time.Minute), base.Add(3*time.Hour))
	if err != nil {
		t.Fatal(err)
	}

	want := []models.Record{*all[1], *all[2], *all[3]}

	if assert.Len(t, got, len(want)) {
		for i := range want {
			assert.Equal(t, want[i].ID, got[i].ID)
			assert.Equal(t, want[i].Phase, got[i].Phase)
			assert.Equal(t, want[i].Duration, got[i].Duration)
			assert.True(t, want[i].CompletedAt.Equal(got[i].CompletedAt))
			assert.True(t, want[i].StartedAt.Equal(got[i].StartedAt))
		}
	}
}

func TestRecordsEmpty(t *testing.T) {
	c, _ := newTestClient(t)

	got, err := c.Records(time.Time{}, time.Now())

	assert.NoError(t, err)
	assert.Empty(t, got)
}

func TestSecondClientReportsRunning(t *testing.T) {
	_, path := newTestClient(t)

	_, err := NewClient(path)
	if !errors.Is(err, errFocusRunning) {
		t.Fatalf("expected errFocusRunning, got %v", err)
	}
}
