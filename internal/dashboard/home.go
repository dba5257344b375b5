package dashboard

import (
	"html/template"
	"net/http"
)

var homeTmpl = template.Must(template.New("home").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Bharat Explorer</title>
<style>
body { font-family: sans-serif; margin: 2rem auto; max-width: 860px; color: #2e2a24; }
h1 { color: #9c3b1e; }
.cards { display: grid; grid-template-columns: repeat(4, 1fr); gap: 1rem; margin: 1.5rem 0; }
.card { background: #f7f2e9; border-radius: 8px; padding: 1rem; text-align: center; }
.card .num { font-size: 1.8rem; font-weight: bold; color: #9c3b1e; }
nav ul { list-style: none; padding: 0; display: grid; grid-template-columns: repeat(3, 1fr); gap: .5rem; }
nav a { display: block; padding: .7rem 1rem; background: #fff8ec; border: 1px solid #e4d9c3; border-radius: 6px; text-decoration: none; color: #2e2a24; }
nav a:hover { background: #f3e7d0; }
</style>
</head>
<body>
<h1>&#127470;&#127475; Bharat Explorer</h1>
<p>Discover India&rsquo;s culture, art forms, heritage sites and tourism patterns.</p>
<div class="cards">
  <div class="card"><div class="num">{{.ArtForms}}</div>art forms</div>
  <div class="card"><div class="num">{{.HeritageSites}}</div>heritage sites</div>
  <div class="card"><div class="num">{{.Crafts}}</div>traditional crafts</div>
  <div class="card"><div class="num">{{.Events}}</div>cultural events</div>
</div>
<nav><ul>
  <li><a href="/explorer">Interactive Explorer</a></li>
  <li><a href="/arts">Traditional Art Forms</a></li>
  <li><a href="/heritage">Cultural Heritage Sites</a></li>
  <li><a href="/tourism">Tourism Analytics</a></li>
  <li><a href="/events">Cultural Events Calendar</a></li>
  <li><a href="/economy">Cultural Economy</a></li>
  <li><a href="/responsible">Responsible Tourism</a></li>
  <li><a href="/chat">Chat Assistant</a></li>
  <li><a href="/healthz">Status</a></li>
</ul></nav>
</body>
</html>
`))

func (p *Pages) Home(w http.ResponseWriter, r *http.Request) {
	data := struct {
		ArtForms, HeritageSites, Crafts, Events int
	}{
		ArtForms:      len(p.catalog.ArtForms()),
		HeritageSites: len(p.catalog.HeritageSites()),
		Crafts:        len(p.catalog.Crafts()),
		Events:        len(p.catalog.CulturalEvents()),
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := homeTmpl.Execute(w, data); err != nil {
		p.logger.Error("home render failed", "error", err)
	}
}
