package httpserver_test

import (
	"strings"
	"testing"

	server "travel_reco/internal/adapters/http_server"
	"travel_reco/internal/app"
	"travel_reco/internal/domain"
)

func TestRender_Intro(t *testing.T) {
	b, err := server.Render(app.Intro())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	page := string(b)
	if !strings.Contains(page, `id="intro-box"`) {
		t.Fatalf("intro box missing")
	}
	if strings.Contains(page, `id="results-container"`) {
		t.Fatalf("results container rendered in intro view")
	}
}

func TestRender_Cards(t *testing.T) {
	items := []domain.Destination{
		{Name: "Sydney, Australia", Description: "Harbour.", ImageKey: "enter_your_image_for_sydney.jpg"},
		{Name: "Nowhere", Description: "No image."},
	}
	st := app.Searched("sydney", domain.SearchResult{Items: items}, nil)

	b, err := server.Render(st)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	page := string(b)
	if n := strings.Count(page, `class="result-card"`); n != 2 {
		t.Fatalf("cards = %d, want 2", n)
	}
	for _, want := range []string{"Sydney, Australia", "Harbour.", "Image+Missing", "Image+Load+Error", `value="sydney"`} {
		if !strings.Contains(page, want) {
			t.Fatalf("page missing %q", want)
		}
	}
	if strings.Contains(page, `id="intro-box"`) {
		t.Fatalf("intro box rendered in results view")
	}
}

func TestRender_Message(t *testing.T) {
	st := app.Searched("atlantis", domain.SearchResult{Items: []domain.Destination{}}, nil)

	b, err := server.Render(st)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	page := string(b)
	if !strings.Contains(page, "No recommendations found for keyword: &#34;atlantis&#34;") {
		t.Fatalf("no-match message missing:\n%s", page)
	}
	if strings.Contains(page, `class="result-card"`) {
		t.Fatalf("cards rendered alongside message")
	}
}
