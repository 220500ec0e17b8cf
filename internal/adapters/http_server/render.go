package httpserver

import (
	"bytes"
	"html/template"

	"travel_reco/internal/app"
)

var pageTmpl = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Travel Recommendations</title>
</head>
<body>
<nav class="navbar">
  <form action="/search" method="get">
    <input id="search-input" type="text" name="q" value="{{.Input}}" placeholder="Enter a destination or keyword">
    <button id="search-btn" class="btn" type="submit">Search</button>
    <a id="reset-btn" class="btn" href="/reset">Clear</a>
  </form>
</nav>
{{if eq .View "intro"}}
<section id="intro-box">
  <h1>Explore dream destinations</h1>
  <p>Search for beaches, temples or countries to get recommendations.</p>
</section>
{{else}}
<section id="results-container">
  <a id="clear-results-overlay" class="btn" href="/reset">X Clear Results</a>
  <div id="recommendations-display">
  {{if .Message}}
    <p class="message">{{.Message}}</p>
  {{else}}
    {{range .Cards}}
    <div class="result-card">
      <img src="{{.ImageURL}}" alt="{{.Name}}" data-fallback="{{.FallbackURL}}" onerror="this.onerror=null; this.src=this.dataset.fallback;">
      <div class="card-content">
        <h3>{{.Name}}</h3>
        <p>{{.Description}}</p>
        <button class="btn book-now-btn">Visit</button>
      </div>
    </div>
    {{end}}
  {{end}}
  </div>
</section>
{{end}}
</body>
</html>
`))

// Render turns a state into a full HTML page. It does no I/O beyond the buffer.
func Render(st app.State) ([]byte, error) {
	var buf bytes.Buffer
	if err := pageTmpl.Execute(&buf, st); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
