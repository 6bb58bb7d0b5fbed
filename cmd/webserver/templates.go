package main

import "html/template"

const baseHTML = `{{define "base"}}<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>docquiz</title>
  <style>
    body { font-family: sans-serif; max-width: 720px; margin: 2em auto; padding: 0 1em; }
    .error { color: #b00020; border: 1px solid #b00020; padding: 0.5em 1em; margin-bottom: 1em; }
    .option { display: block; margin: 0.4em 0; }
    .muted { color: #666; }
    .correct { color: #1b5e20; }
    .wrong { color: #b00020; }
    nav form { display: inline; }
    button { margin-right: 0.5em; }
  </style>
</head>
<body>
  <h1>docquiz</h1>
  {{template "content" .}}
</body>
</html>{{end}}`

const setupHTML = `{{define "content"}}
{{if .Error}}<div class="error">{{.Error}}</div>{{end}}
<p>Upload a PDF or Word document and get a multiple-choice quiz generated from it.</p>
<form action="/submit" method="post" enctype="multipart/form-data">
  <p><label>Document (.pdf, .doc, .docx): <input type="file" name="document" required></label></p>
  <p><label>Number of questions: <input type="number" name="num_questions" value="5" min="1"></label></p>
  <p><label>Seconds per question: <input type="number" name="timer_seconds" value="30" min="1"></label></p>
  <p><button type="submit">Generate quiz</button></p>
</form>
{{end}}`

const quizHTML = `{{define "content"}}
<p class="muted">Question {{.Number}} of {{.Total}} &middot; {{.TimerSeconds}}s per question</p>
<h2>{{.Question.Question}}</h2>
<form action="/quiz/answer" method="post">
  {{range .Question.Options}}
  <label class="option">
    <input type="radio" name="answer" value="{{.}}" {{if eq . $.Selected}}checked{{end}}> {{.}}
  </label>
  {{end}}
  <p><button type="submit">Save answer</button></p>
</form>
<nav>
  <form action="/quiz/prev" method="post"><button {{if .IsFirst}}disabled{{end}}>&larr; Previous</button></form>
  <form action="/quiz/next" method="post"><button {{if .IsLast}}disabled{{end}}>Next &rarr;</button></form>
  <form action="/quiz/finish" method="post"><button>Finish &amp; review</button></form>
</nav>
{{end}}`

const reviewHTML = `{{define "content"}}
<h2>Review your answers</h2>
<p class="muted">{{.Answered}} of {{.Total}} answered</p>
<ol>
  {{range .Items}}
  <li>
    {{.Question}}<br>
    {{if .Answer}}<strong>{{.Answer}}</strong>{{else}}<span class="muted">(unanswered)</span>{{end}}
    <form action="/review/jump" method="post">
      <input type="hidden" name="index" value="{{.Index}}">
      <button>Change</button>
    </form>
  </li>
  {{end}}
</ol>
<form action="/review/submit" method="post"><button>Submit quiz</button></form>
{{end}}`

const resultsHTML = `{{define "content"}}
<h2>Results: {{.Score.Correct}}/{{.Score.Total}} ({{printf "%.1f" .Score.Percent}}%)</h2>
<ol>
  {{range .Items}}
  <li>
    {{.Question}}<br>
    {{if .Right}}
    <span class="correct">✔ {{.Answer}}</span>
    {{else}}
    <span class="wrong">✘ {{if .Answer}}{{.Answer}}{{else}}(unanswered){{end}}</span><br>
    <span class="muted">Correct answer: {{.Correct}}</span>
    {{end}}
  </li>
  {{end}}
</ol>
<form action="/retry" method="post"><button>Start over</button></form>
{{end}}`

// loadTemplates parses each page together with the base layout, mirroring a
// base.html + per-page file split without shipping template files.
func loadTemplates() map[string]*template.Template {
	pages := map[string]string{
		"setup":   setupHTML,
		"quiz":    quizHTML,
		"review":  reviewHTML,
		"results": resultsHTML,
	}

	templates := make(map[string]*template.Template, len(pages))
	for name, page := range pages {
		t := template.Must(template.New(name).Parse(baseHTML))
		template.Must(t.Parse(page))
		templates[name] = t
	}
	return templates
}
