package travel_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"travel_reco/internal/adapters/travel"
	"travel_reco/internal/domain"
)

const payload = `{
  "countries": [
    {"id": 1, "name": "Japan", "cities": [
      {"name": "Tokyo, Japan", "imageUrl": "enter_your_image_for_tokyo.jpg", "description": "Neon."},
      {"name": "Kyoto, Japan", "imageUrl": "enter_your_image_for_kyoto.jpg", "description": "Temples."}
    ]}
  ],
  "temples": [{"id": 1, "name": "Angkor Wat, Cambodia", "imageUrl": "enter_your_image_for_angkor-wat.jpg", "description": "Khmer."}],
  "beaches": [{"id": 1, "name": "Bora Bora, French Polynesia", "imageUrl": "enter_your_image_for_bora-bora.jpg", "description": "Lagoon."}]
}`

func TestClient_LoadDataset_OK(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Accept") != "application/json" {
			t.Errorf("unexpected Accept header: %q", r.Header.Get("Accept"))
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(payload))
	}))
	defer ts.Close()

	cl, err := travel.New(ts.URL, 100) // high RPS for tests
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	ds, err := cl.LoadDataset(ctx)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(ds.Countries) != 1 || len(ds.Countries[0].Cities) != 2 {
		t.Fatalf("unexpected countries: %+v", ds.Countries)
	}
	if got := ds.Countries[0].Cities[0]; got.ImageKey != "enter_your_image_for_tokyo.jpg" || got.Description != "Neon." {
		t.Fatalf("unexpected city: %+v", got)
	}
	if len(ds.Temples) != 1 || len(ds.Beaches) != 1 {
		t.Fatalf("unexpected temples/beaches: %+v", ds)
	}
}

func TestClient_LoadDataset_NoRetryOn500(t *testing.T) {
	var hits int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		http.Error(w, "upstream broke", http.StatusInternalServerError)
	}))
	defer ts.Close()

	cl, _ := travel.New(ts.URL, 100)
	_, err := cl.LoadDataset(context.Background())
	if !errors.Is(err, travel.ErrBadStatus) {
		t.Fatalf("expected ErrBadStatus, got %v", err)
	}
	if n := atomic.LoadInt32(&hits); n != 1 {
		t.Fatalf("expected a single attempt, got %d", n)
	}
}

func TestClient_LoadDataset_404(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	defer ts.Close()

	cl, _ := travel.New(ts.URL, 100)
	_, err := cl.LoadDataset(context.Background())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestClient_LoadDataset_BadJSON(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"countries": [`))
	}))
	defer ts.Close()

	cl, _ := travel.New(ts.URL, 100)
	if _, err := cl.LoadDataset(context.Background()); !errors.Is(err, travel.ErrDecode) {
		t.Fatalf("expected ErrDecode, got %v", err)
	}
}

func TestNew_RejectsBadURL(t *testing.T) {
	for _, u := range []string{"", "ftp://example.com/x.json", "travel.json"} {
		if _, err := travel.New(u, 1); err == nil {
			t.Fatalf("expected error for %q", u)
		}
	}
}
