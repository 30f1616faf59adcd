package analytics

import (
	"context"
	"net"
	"net/http"
	"strings"
	"time"

	"latestworks.dev/internal/logger"
)

const writeTimeout = 5 * time.Second

var untracked = []string{"/static/", "/api/", "/go/", "/favicon", "/projects/hover"}

// Track returns middleware that records page views in the background.
// Static assets, API calls and requests carrying DNT: 1 are skipped.
func (s *Store) Track(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet && trackable(r) {
			v := Visit{
				IP:        ClientIP(r),
				UserAgent: r.UserAgent(),
				Path:      r.URL.Path,
				Timestamp: time.Now(),
			}
			s.pending.Add(1)
			go s.recordVisit(v)
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Store) recordVisit(v Visit) {
	defer s.pending.Done()
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()
	if err := s.RecordVisit(ctx, v); err != nil {
		log := logger.GetLogger("analytics")
		log.Warn().Err(err).Str("path", v.Path).Msg("Failed to record visit")
	}
}

// RecordClickAsync stores a click without blocking the caller
func (s *Store) RecordClickAsync(c Click) {
	s.pending.Add(1)
	go func() {
		defer s.pending.Done()
		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		defer cancel()
		if err := s.RecordClick(ctx, c); err != nil {
			log := logger.GetLogger("analytics")
			log.Warn().Err(err).Str("project", c.ProjectSlug).Msg("Failed to record click")
		}
	}()
}

func trackable(r *http.Request) bool {
	if r.Header.Get("DNT") == "1" {
		return false
	}
	for _, prefix := range untracked {
		if strings.HasPrefix(r.URL.Path, prefix) {
			return false
		}
	}
	return true
}

// ClientIP returns the first X-Forwarded-For address, or the remote host
func ClientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		return strings.TrimSpace(first)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// RunCleanup deletes rows older than months now and then every interval
// until ctx is cancelled
func (s *Store) RunCleanup(ctx context.Context, months int, interval time.Duration) {
	log := logger.GetLogger("analytics")
	sweep := func() {
		removed, err := s.Cleanup(ctx, months, time.Now())
		if err != nil {
			log.Warn().Err(err).Msg("Analytics cleanup failed")
			return
		}
		if removed > 0 {
			log.Info().Int64("removed", removed).Int("months", months).Msg("Removed old analytics rows")
		}
	}

	sweep()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			sweep()
		}
	}
}
