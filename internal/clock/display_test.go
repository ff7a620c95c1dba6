package clock

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"
)

type manualTicker struct {
	ch      chan time.Time
	mu      sync.Mutex
	stopped bool
}

func (t *manualTicker) C() <-chan time.Time { return t.ch }

func (t *manualTicker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopped = true
}

func (t *manualTicker) isStopped() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stopped
}

type manualClock struct {
	now      time.Time
	ticker   *manualTicker
	interval time.Duration
}

func newManualClock(now time.Time) *manualClock {
	return &manualClock{now: now, ticker: &manualTicker{ch: make(chan time.Time)}}
}

func (c *manualClock) Now() time.Time { return c.now }

func (c *manualClock) NewTicker(d time.Duration) Ticker {
	c.interval = d
	return c.ticker
}

type stubLocator struct {
	place   string
	err     error
	release chan struct{}
}

func (s *stubLocator) Locate(ctx context.Context, _ Coordinates) (string, error) {
	if s.release != nil {
		<-s.release
	}
	return s.place, s.err
}

var start = time.Date(2024, time.March, 4, 9, 30, 0, 0, time.UTC)

func TestDisplayTicksUntilCancelledAndStopsTicker(t *testing.T) {
	clk := newManualClock(start)
	d := NewDisplay(clk, 2*time.Second, "15:04:05", WithTimeLocation(time.UTC))
	ctx, cancel := context.WithCancel(context.Background())

	frames := d.Stream(ctx, nil)
	if f := <-frames; f.Time != "09:30:00" || f.Place != "" {
		t.Fatalf("unexpected first frame %+v", f)
	}
	if clk.interval != 2*time.Second {
		t.Fatalf("expected ticker interval 2s, got %v", clk.interval)
	}

	clk.ticker.ch <- start.Add(time.Second)
	if f := <-frames; f.Time != "09:30:01" {
		t.Fatalf("unexpected tick frame %+v", f)
	}

	cancel()
	for range frames {
	}
	if !clk.ticker.isStopped() {
		t.Fatalf("ticker must be released when the view goes away")
	}
}

func TestDisplayLocationResolvesOnce(t *testing.T) {
	clk := newManualClock(start)
	loc := &stubLocator{place: "Lisbon, Portugal", release: make(chan struct{})}
	d := NewDisplay(clk, time.Second, "15:04", WithLocator(loc), WithTimeLocation(time.UTC))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	frames := d.Stream(ctx, &Coordinates{Latitude: 38.7, Longitude: -9.1})
	if f := <-frames; f.Place != "" {
		t.Fatalf("place must not block the first frame, got %+v", f)
	}
	clk.ticker.ch <- start
	if f := <-frames; f.Time != "09:30" {
		t.Fatalf("clock must keep ticking while lookup is pending, got %+v", f)
	}
	close(loc.release)
	if f := <-frames; f.Place != "Lisbon, Portugal" {
		t.Fatalf("expected resolved place, got %+v", f)
	}
	clk.ticker.ch <- start.Add(time.Minute)
	if f := <-frames; f.Place != "Lisbon, Portugal" || f.Time != "09:31" {
		t.Fatalf("place must persist across ticks, got %+v", f)
	}
}

func TestDisplayLocationFailureUsesSentinel(t *testing.T) {
	clk := newManualClock(start)
	loc := &stubLocator{err: errors.New("denied")}
	d := NewDisplay(clk, time.Second, "", WithLocator(loc))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	frames := d.Stream(ctx, &Coordinates{})
	<-frames
	if f := <-frames; f.Place != LocationUnavailable {
		t.Fatalf("expected sentinel, got %+v", f)
	}
}

func TestDisplayWithoutCoordinatesUsesSentinel(t *testing.T) {
	clk := newManualClock(start)
	d := NewDisplay(clk, time.Second, "", WithLocator(&stubLocator{place: "never"}))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if f := <-d.Stream(ctx, nil); f.Place != LocationUnavailable {
		t.Fatalf("expected sentinel without coordinates, got %+v", f)
	}
}

func TestParseCoordinates(t *testing.T) {
	if _, err := ParseCoordinates("", "1"); !errors.Is(err, ErrLocationUnavailable) {
		t.Fatalf("expected unavailable for missing lat, got %v", err)
	}
	if _, err := ParseCoordinates("91", "0"); err == nil {
		t.Fatalf("expected error for latitude out of range")
	}
	if _, err := ParseCoordinates("10", "abc"); err == nil {
		t.Fatalf("expected error for invalid longitude")
	}
	c, err := ParseCoordinates("-33.86", "151.2")
	if err != nil || c.Latitude != -33.86 || c.Longitude != 151.2 {
		t.Fatalf("unexpected result %+v %v", c, err)
	}
}

func TestHTTPLocator(t *testing.T) {
	t.Run("city and country", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			q := r.URL.Query()
			if q.Get("latitude") != "38.7" || q.Get("longitude") != "-9.1" || q.Get("localityLanguage") != "en" {
				t.Errorf("unexpected query %s", r.URL.RawQuery)
			}
			_, _ = w.Write([]byte(`{"city":"Lisbon","countryName":"Portugal"}`))
		}))
		defer server.Close()

		place, err := NewHTTPLocator(server.URL, server.Client()).Locate(context.Background(), Coordinates{Latitude: 38.7, Longitude: -9.1})
		if err != nil || place != "Lisbon, Portugal" {
			t.Fatalf("unexpected %q %v", place, err)
		}
	})

	t.Run("locality fallback", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"city":"","locality":"Sintra","countryName":"Portugal"}`))
		}))
		defer server.Close()

		place, err := NewHTTPLocator(server.URL, server.Client()).Locate(context.Background(), Coordinates{})
		if err != nil || place != "Sintra, Portugal" {
			t.Fatalf("unexpected %q %v", place, err)
		}
	})

	t.Run("http error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer server.Close()

		_, err := NewHTTPLocator(server.URL, server.Client()).Locate(context.Background(), Coordinates{})
		if !errors.Is(err, ErrLocationUnavailable) {
			t.Fatalf("expected unavailable, got %v", err)
		}
	})

	t.Run("empty place", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{}`))
		}))
		defer server.Close()

		_, err := NewHTTPLocator(server.URL, server.Client()).Locate(context.Background(), Coordinates{})
		if !errors.Is(err, ErrLocationUnavailable) {
			t.Fatalf("expected unavailable, got %v", err)
		}
	})
}
