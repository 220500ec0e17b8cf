package app

import (
	"errors"
	"fmt"

	"travel_reco/internal/domain"
)

type View string

const (
	ViewIntro   View = "intro"
	ViewResults View = "results"
	ViewError   View = "error"
)

const (
	MsgDataUnavailable = "Travel data is not available. Please try again later."
	MsgEmptyQuery      = "Please enter 'beach', 'temple', or 'country' to get recommendations."
)

// Card is a destination ready for display.
type Card struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	FallbackURL string `json:"fallbackUrl"`
}

// State drives the page render; transitions below are pure.
type State struct {
	View    View
	Input   string
	Cards   []Card
	Message string
}

func Intro() State { return State{View: ViewIntro} }

// Reset clears the input and results and shows the intro again.
func Reset(State) State { return Intro() }

// Searched folds the outcome of a search into the next state.
func Searched(input string, res domain.SearchResult, err error) State {
	st := State{View: ViewError, Input: input}
	switch {
	case errors.Is(err, domain.ErrDataUnavailable):
		st.Message = MsgDataUnavailable
	case errors.Is(err, domain.ErrInvalidQuery):
		st.Message = MsgEmptyQuery
	case err != nil:
		st.Message = MsgDataUnavailable
	case len(res.Items) == 0:
		st.Message = NoMatchesMessage(input)
	default:
		st.View = ViewResults
		st.Cards = Cards(res.Items)
	}
	return st
}

func NoMatchesMessage(input string) string {
	return fmt.Sprintf("No recommendations found for keyword: \"%s\"", input)
}

func Cards(ds []domain.Destination) []Card {
	out := make([]Card, 0, len(ds))
	for _, d := range ds {
		out = append(out, Card{
			Name:        d.Name,
			Description: d.Description,
			ImageURL:    ImageURL(d.ImageKey),
			FallbackURL: ImageLoadErrorURL,
		})
	}
	return out
}
