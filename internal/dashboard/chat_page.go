package dashboard

import (
	"html/template"
	"net/http"

	"github.com/priyank-sharma/bharat-explorer/internal/chat"
)

var chatTmpl = template.Must(template.New("chat").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Bharat Explorer Chat</title>
<style>
body { font-family: sans-serif; margin: 2rem auto; max-width: 720px; color: #2e2a24; }
h1 { color: #9c3b1e; }
#log { border: 1px solid #e4d9c3; border-radius: 8px; min-height: 320px; padding: 1rem; margin-bottom: 1rem; white-space: pre-wrap; }
.turn-user { color: #2e6f95; margin: .4rem 0; }
.turn-model { color: #2e2a24; margin: .4rem 0 1rem; }
form { display: flex; gap: .5rem; }
input[type=text] { flex: 1; padding: .6rem; border: 1px solid #e4d9c3; border-radius: 6px; }
button { padding: .6rem 1.2rem; background: #9c3b1e; color: #fff; border: 0; border-radius: 6px; cursor: pointer; }
.topics button { background: #fff8ec; color: #2e2a24; border: 1px solid #e4d9c3; margin: .2rem; }
.disabled { background: #fbeeee; border: 1px solid #d9a3a3; border-radius: 8px; padding: 1rem; }
</style>
</head>
<body>
<h1>&#128172; Bharat Explorer Chat</h1>
{{if .Enabled}}
<p>Ask about Indian culture, festivals, heritage and travel.</p>
<div class="topics">
{{range .Topics}}<button type="button" onclick="ask(this.textContent)">{{.}}</button>{{end}}
</div>
<div id="log"></div>
<form id="f" onsubmit="return send()">
  <input type="text" id="msg" placeholder="Tell me about Kathakali..." autocomplete="off">
  <button type="submit">Send</button>
</form>
<script>
let sessionId = "";
function append(cls, text) {
  const div = document.createElement("div");
  div.className = cls;
  div.textContent = text;
  document.getElementById("log").appendChild(div);
  div.scrollIntoView();
}
function ask(text) {
  document.getElementById("msg").value = text;
  send();
}
function send() {
  const input = document.getElementById("msg");
  const message = input.value.trim();
  if (!message) return false;
  input.value = "";
  append("turn-user", "You: " + message);
  fetch("/api/chat", {
    method: "POST",
    headers: {"Content-Type": "application/json"},
    body: JSON.stringify({session_id: sessionId, message: message}),
  }).then(r => r.json()).then(data => {
    if (data.error) { append("turn-model", "Error: " + data.error); return; }
    sessionId = data.session_id;
    append("turn-model", data.reply);
  }).catch(err => append("turn-model", "Error: " + err));
  return false;
}
</script>
{{else}}
<div class="disabled">The chat assistant is not configured. Set GOOGLE_API_KEY to enable it.</div>
{{end}}
<p><a href="/">&larr; back to Bharat Explorer</a></p>
</body>
</html>
`))

func (p *Pages) Chat(w http.ResponseWriter, r *http.Request) {
	data := struct {
		Enabled bool
		Topics  []string
	}{
		Enabled: p.chatEnabled,
		Topics:  chat.SuggestedTopics(),
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := chatTmpl.Execute(w, data); err != nil {
		p.logger.Error("chat page render failed", "error", err)
	}
}
