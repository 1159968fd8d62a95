package workers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/musicmaps/musicmaps-backend/models"
)

// fakeResolver resolves through a function field, standing in for the
// external geocoding service.
type fakeResolver struct {
	resolve func(ctx context.Context, query string) (models.Location, error)
}

func (f *fakeResolver) Resolve(ctx context.Context, query string) (models.Location, error) {
	return f.resolve(ctx, query)
}

func awaitLocation(t *testing.T, ch <-chan models.Location) models.Location {
	t.Helper()
	select {
	case loc := <-ch:
		return loc
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for delivered location")
		return models.Location{}
	}
}

func TestEnqueueResolvesZipAsynchronously(t *testing.T) {
	ithaca := models.Location{Latitude: 42.4439, Longitude: -76.5019}
	resolver := &fakeResolver{
		resolve: func(ctx context.Context, query string) (models.Location, error) {
			if query != "14850" {
				t.Errorf("resolver received query %q, want 14850", query)
			}
			return ithaca, nil
		},
	}

	d := NewGeocodeDispatcher(resolver, 4, 1, time.Second)
	defer d.Stop()

	delivered := make(chan models.Location, 1)
	if ok := d.Enqueue("14850", models.UnresolvedLocation(), func(loc models.Location) {
		delivered <- loc
	}); !ok {
		t.Fatal("Enqueue returned false for a valid zip")
	}

	if got := awaitLocation(t, delivered); got != ithaca {
		t.Errorf("delivered %+v, want %+v", got, ithaca)
	}
}

func TestEnqueueNonZipDeliversFallbackImmediately(t *testing.T) {
	resolver := &fakeResolver{
		resolve: func(ctx context.Context, query string) (models.Location, error) {
			t.Error("resolver must not be called for a non-zip query")
			return models.Location{}, nil
		},
	}

	d := NewGeocodeDispatcher(resolver, 4, 1, time.Second)
	defer d.Stop()

	fallback := models.Location{Latitude: 42.0, Longitude: -76.0}
	tests := []string{"", "1485", "148500", "not a zip", "1485O"}
	for _, query := range tests {
		delivered := make(chan models.Location, 1)
		if ok := d.Enqueue(query, fallback, func(loc models.Location) {
			delivered <- loc
		}); ok {
			t.Errorf("Enqueue(%q) returned true, want fallback path", query)
		}
		if got := awaitLocation(t, delivered); got != fallback {
			t.Errorf("Enqueue(%q) delivered %+v, want fallback %+v", query, got, fallback)
		}
	}
}

func TestResolverFailureDeliversSentinel(t *testing.T) {
	resolver := &fakeResolver{
		resolve: func(ctx context.Context, query string) (models.Location, error) {
			return models.Location{}, errors.New("geocoding service unavailable")
		},
	}

	d := NewGeocodeDispatcher(resolver, 4, 1, time.Second)
	defer d.Stop()

	delivered := make(chan models.Location, 1)
	d.Enqueue("14850", models.Location{}, func(loc models.Location) {
		delivered <- loc
	})

	got := awaitLocation(t, delivered)
	if got != models.UnresolvedLocation() {
		t.Errorf("delivered %+v, want the {-1, -1} sentinel", got)
	}
	if got.IsSet() {
		t.Error("sentinel location reports IsSet")
	}
}

func TestResolverTimeout(t *testing.T) {
	resolver := &fakeResolver{
		resolve: func(ctx context.Context, query string) (models.Location, error) {
			select {
			case <-ctx.Done():
				return models.Location{}, ctx.Err()
			case <-time.After(5 * time.Second):
				return models.Location{Latitude: 1, Longitude: 1}, nil
			}
		},
	}

	d := NewGeocodeDispatcher(resolver, 4, 1, 50*time.Millisecond)
	defer d.Stop()

	delivered := make(chan models.Location, 1)
	d.Enqueue("14850", models.Location{}, func(loc models.Location) {
		delivered <- loc
	})

	if got := awaitLocation(t, delivered); got != models.UnresolvedLocation() {
		t.Errorf("delivered %+v, want sentinel after timeout", got)
	}
}

func TestStopJoinsWorkers(t *testing.T) {
	resolver := &fakeResolver{
		resolve: func(ctx context.Context, query string) (models.Location, error) {
			return models.Location{Latitude: 1, Longitude: 2}, nil
		},
	}

	d := NewGeocodeDispatcher(resolver, 4, 2, time.Second)

	done := make(chan struct{})
	go func() {
		d.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop did not return")
	}

	// after Stop, enqueues take the fallback path
	fallback := models.Location{Latitude: 9, Longitude: 9}
	delivered := make(chan models.Location, 1)
	if ok := d.Enqueue("14850", fallback, func(loc models.Location) {
		delivered <- loc
	}); ok {
		t.Error("Enqueue after Stop returned true")
	}
	if got := awaitLocation(t, delivered); got != fallback {
		t.Errorf("Enqueue after Stop delivered %+v, want fallback", got)
	}
}
