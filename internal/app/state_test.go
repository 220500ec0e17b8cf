package app_test

import (
	"errors"
	"testing"

	"travel_reco/internal/app"
	"travel_reco/internal/domain"
)

func TestSearched_Messages(t *testing.T) {
	cases := []struct {
		name  string
		input string
		res   domain.SearchResult
		err   error
		msg   string
	}{
		{"unavailable", "beach", domain.SearchResult{}, domain.ErrDataUnavailable, app.MsgDataUnavailable},
		{"empty", "  ", domain.SearchResult{}, domain.ErrInvalidQuery, app.MsgEmptyQuery},
		{"no matches", "Atlantis", domain.SearchResult{Items: []domain.Destination{}}, nil,
			`No recommendations found for keyword: "Atlantis"`},
		{"unexpected", "x", domain.SearchResult{}, errors.New("boom"), app.MsgDataUnavailable},
	}
	for _, tc := range cases {
		st := app.Searched(tc.input, tc.res, tc.err)
		if st.View != app.ViewError {
			t.Fatalf("%s: expected error view, got %s", tc.name, st.View)
		}
		if st.Message != tc.msg {
			t.Fatalf("%s: message = %q, want %q", tc.name, st.Message, tc.msg)
		}
		if st.Input != tc.input {
			t.Fatalf("%s: input should be kept, got %q", tc.name, st.Input)
		}
	}
}

func TestSearched_ResultsBecomeCards(t *testing.T) {
	res := domain.SearchResult{Items: []domain.Destination{
		{Name: "Tokyo, Japan", Description: "Neon.", ImageKey: "enter_your_image_for_tokyo.jpg"},
		{Name: "Nowhere", Description: "?", ImageKey: "unknown.jpg"},
	}}
	st := app.Searched("tokyo", res, nil)
	if st.View != app.ViewResults || st.Message != "" {
		t.Fatalf("unexpected state: %+v", st)
	}
	if len(st.Cards) != 2 {
		t.Fatalf("expected 2 cards, got %d", len(st.Cards))
	}
	if st.Cards[0].ImageURL != "https://placehold.co/300x200/4ECDC4/1A1A1A?text=Tokyo" {
		t.Fatalf("unexpected mapped url: %s", st.Cards[0].ImageURL)
	}
	if st.Cards[1].ImageURL != app.ImageMissingURL {
		t.Fatalf("unknown key should fall back, got %s", st.Cards[1].ImageURL)
	}
	if st.Cards[0].FallbackURL != app.ImageLoadErrorURL {
		t.Fatalf("missing load-error fallback")
	}
}

func TestReset(t *testing.T) {
	st := app.Searched("beach", domain.SearchResult{Items: fixture().Beaches}, nil)
	st = app.Reset(st)
	if st.View != app.ViewIntro || st.Input != "" || st.Cards != nil || st.Message != "" {
		t.Fatalf("reset should return to a blank intro, got %+v", st)
	}
}

func TestImageURL(t *testing.T) {
	if got := app.ImageURL(""); got != app.ImageMissingURL {
		t.Fatalf("empty key: %s", got)
	}
	if got := app.ImageURL("enter_your_image_for_copacabana.jpg"); got != "https://placehold.co/300x200/69DBFF/1A1A1A?text=Copacabana" {
		t.Fatalf("copacabana: %s", got)
	}
}
