package domain

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
)

// Destination is a single recommendable place: a city, a temple or a beach.
type Destination struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageKey    string `json:"imageUrl"` // key into the image map, not a URL
}

// Country groups the cities recommended for one country name.
type Country struct {
	Name   string        `json:"name"`
	Cities []Destination `json:"cities"`
}

// Dataset is loaded once and never mutated afterwards.
type Dataset struct {
	Countries []Country     `json:"countries"`
	Temples   []Destination `json:"temples"`
	Beaches   []Destination `json:"beaches"`
}

// Cities flattens every country's cities in country-then-city order.
func (d Dataset) Cities() []Destination {
	n := 0
	for _, c := range d.Countries {
		n += len(c.Cities)
	}
	out := make([]Destination, 0, n)
	for _, c := range d.Countries {
		out = append(out, c.Cities...)
	}
	return out
}

// Version identifies the dataset's content. Equal datasets share a version.
func (d Dataset) Version() string {
	b, _ := json.Marshal(d) // plain strings and slices; cannot fail
	sum := sha1.Sum(b)
	return hex.EncodeToString(sum[:])[:16]
}

// Size is the number of destinations across all categories.
func (d Dataset) Size() int {
	n := len(d.Temples) + len(d.Beaches)
	for _, c := range d.Countries {
		n += len(c.Cities)
	}
	return n
}

// Category is the path a query took through the matcher.
type Category string

const (
	CategoryBeach   Category = "beach"
	CategoryTemple  Category = "temple"
	CategoryCountry Category = "country"
	CategoryBroad   Category = "broad"
)
