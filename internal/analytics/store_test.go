package analytics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), filepath.Join(t.TempDir(), "analytics.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStore_RecordAndStats(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.RecordVisit(ctx, Visit{IP: "10.0.0.1", Path: "/"}))
	require.NoError(t, s.RecordVisit(ctx, Visit{IP: "10.0.0.1", Path: "/"}))
	require.NoError(t, s.RecordVisit(ctx, Visit{IP: "10.0.0.2", Path: "/"}))

	for i := 0; i < 3; i++ {
		require.NoError(t, s.RecordClick(ctx, Click{ProjectIndex: 4, ProjectSlug: "modern-portfolio", Kind: "repo", Target: "https://github.com/x", IP: "10.0.0.1"}))
	}
	require.NoError(t, s.RecordClick(ctx, Click{ProjectIndex: 0, ProjectSlug: "speak-feed-project", Kind: "demo", Target: "https://speakfeed.com/en", IP: "10.0.0.2"}))

	stats, err := s.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalVisits)
	assert.Equal(t, int64(2), stats.UniqueVisitors)
	assert.Equal(t, int64(4), stats.TotalClicks)
	require.Len(t, stats.Clicks, 2)
	assert.Equal(t, ClickStat{ProjectSlug: "modern-portfolio", Kind: "repo", Clicks: 3}, stats.Clicks[0])
	assert.Equal(t, ClickStat{ProjectSlug: "speak-feed-project", Kind: "demo", Clicks: 1}, stats.Clicks[1])
}

func TestStore_EmptyStats(t *testing.T) {
	stats, err := openTestStore(t).Stats(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stats.TotalVisits)
	assert.NotNil(t, stats.Clicks)
	assert.Empty(t, stats.Clicks)
}

func TestStore_HashIP(t *testing.T) {
	s := openTestStore(t)
	h := s.HashIP("192.168.1.1")
	assert.Len(t, h, 16)
	assert.Equal(t, h, s.HashIP("192.168.1.1"))
	assert.NotEqual(t, h, s.HashIP("192.168.1.2"))
	assert.NotContains(t, h, "192")
}

func TestStore_Cleanup(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	now := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, s.RecordVisit(ctx, Visit{IP: "a", Timestamp: now.AddDate(-2, 0, 0)}))
	require.NoError(t, s.RecordVisit(ctx, Visit{IP: "b", Timestamp: now.AddDate(0, -1, 0)}))
	require.NoError(t, s.RecordClick(ctx, Click{ProjectSlug: "x", Kind: "demo", Target: "t", IP: "a", Timestamp: now.AddDate(-1, -1, 0)}))

	removed, err := s.Cleanup(ctx, 12, now)
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)

	stats, err := s.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.TotalVisits)
	assert.Equal(t, int64(0), stats.TotalClicks)

	removed, err = s.Cleanup(ctx, 0, now)
	require.NoError(t, err)
	assert.Zero(t, removed)
}

func TestTrack(t *testing.T) {
	s := openTestStore(t)
	h := s.Track(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	serve := func(path string, dnt bool) {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		if dnt {
			req.Header.Set("DNT", "1")
		}
		h.ServeHTTP(httptest.NewRecorder(), req)
	}

	serve("/", false)
	serve("/static/app.css", false)
	serve("/api/projects", false)
	serve("/", true)

	require.Eventually(t, func() bool {
		stats, err := s.Stats(context.Background())
		return err == nil && stats.TotalVisits == 1
	}, 2*time.Second, 10*time.Millisecond)
}

func TestRecordClickAsync(t *testing.T) {
	s := openTestStore(t)
	s.RecordClickAsync(Click{ProjectSlug: "viai", Kind: "demo", Target: "https://viainow.com/", IP: "1.2.3.4"})

	require.Eventually(t, func() bool {
		stats, err := s.Stats(context.Background())
		return err == nil && stats.TotalClicks == 1
	}, 2*time.Second, 10*time.Millisecond)
}

func TestClose_DrainsPendingWrites(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "analytics.db")
	s, err := Open(context.Background(), dsn)
	require.NoError(t, err)

	h := s.Track(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	for i := 0; i < 5; i++ {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		s.RecordClickAsync(Click{ProjectSlug: "tickit", Kind: "repo", Target: "https://github.com/x", IP: "1.2.3.4"})
	}
	require.NoError(t, s.Close())

	reopened, err := Open(context.Background(), dsn)
	require.NoError(t, err)
	defer reopened.Close()

	stats, err := reopened.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(5), stats.TotalVisits)
	assert.Equal(t, int64(5), stats.TotalClicks)
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "203.0.113.9:5555"
	assert.Equal(t, "203.0.113.9", ClientIP(req))

	req.Header.Set("X-Forwarded-For", "198.51.100.1, 10.0.0.1")
	assert.Equal(t, "198.51.100.1", ClientIP(req))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "not-an-addr"
	assert.Equal(t, "not-an-addr", ClientIP(req))
}

func TestRunCleanup_StopsOnCancel(t *testing.T) {
	s := openTestStore(t)
	require.NoError(t, s.RecordVisit(context.Background(), Visit{IP: "a", Timestamp: time.Now().AddDate(-3, 0, 0)}))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.RunCleanup(ctx, 12, time.Hour)
		close(done)
	}()

	require.Eventually(t, func() bool {
		stats, err := s.Stats(context.Background())
		return err == nil && stats.TotalVisits == 0
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("RunCleanup did not stop after cancel")
	}
}
