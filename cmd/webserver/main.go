package main

import (
	"context"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"strconv"
	"sync"
	"time"

	"docquiz"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/joho/godotenv"
)

const (
	sessionName    = "docquiz-session"
	maxUploadBytes = 32 << 20
	submitTimeout  = 10 * time.Minute
)

// quizSession pairs a workflow controller with the mutex that serializes
// all access to it. The controller itself is single-goroutine by contract,
// so every handler touching it must hold mu for the whole interaction,
// including a long-running submission.
type quizSession struct {
	mu sync.Mutex
	c  *docquiz.Controller
}

// Server holds one workflow controller per browser session. The cookie only
// carries an opaque session id; all quiz state lives in memory and is gone
// when the process stops.
type Server struct {
	store         *sessions.CookieStore
	templates     map[string]*template.Template
	newController func() *docquiz.Controller

	mu       sync.Mutex
	sessions map[string]*quizSession
}

func main() {
	_ = godotenv.Load()

	cfg, err := docquiz.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	server := newServer(cfg.SessionKey, func() *docquiz.Controller {
		extractor := docquiz.NewTextExtractor(docquiz.NewPDFDecoder(), docquiz.NewWordDecoder())
		producer := docquiz.NewOpenAIProducer(cfg.OpenAIAPIKey, cfg.Model)
		c := docquiz.NewController(extractor, producer)
		if cfg.RunLogDir != "" {
			c.SetRunLogDir(cfg.RunLogDir)
		}
		return c
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	log.Printf("Starting server on %s", addr)
	log.Fatal(http.ListenAndServe(addr, server.routes()))
}

func newServer(sessionKey string, newController func() *docquiz.Controller) *Server {
	return &Server{
		store:         sessions.NewCookieStore([]byte(sessionKey)),
		templates:     loadTemplates(),
		newController: newController,
		sessions:      make(map[string]*quizSession),
	}
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleSetup)
	r.Post("/submit", s.handleSubmit)
	r.Get("/quiz", s.handleQuiz)
	r.Post("/quiz/answer", s.handleAnswer)
	r.Post("/quiz/next", s.handleNext)
	r.Post("/quiz/prev", s.handlePrev)
	r.Post("/quiz/finish", s.handleFinish)
	r.Get("/review", s.handleReview)
	r.Post("/review/jump", s.handleJump)
	r.Post("/review/submit", s.handleFinalSubmit)
	r.Get("/results", s.handleResults)
	r.Post("/retry", s.handleRetry)

	return r
}

// session returns the quiz session of the requesting browser, creating one
// on first contact. s.mu only guards the registry; the returned session's
// own mutex guards the controller.
func (s *Server) session(w http.ResponseWriter, r *http.Request) *quizSession {
	cookie, _ := s.store.Get(r, sessionName)

	id, _ := cookie.Values["id"].(string)
	if id == "" {
		id = uuid.NewString()
		cookie.Values["id"] = id
		if err := cookie.Save(r, w); err != nil {
			log.Printf("Session save error: %v", err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	qs, ok := s.sessions[id]
	if !ok {
		qs = &quizSession{c: s.newController()}
		s.sessions[id] = qs
	}
	return qs
}

// withController runs fn with the session's controller lock held. A second
// tab's request simply waits here while a submission is generating, which
// matches the workflow: the UI is not interactive during that phase.
func (s *Server) withController(w http.ResponseWriter, r *http.Request, fn func(c *docquiz.Controller)) {
	qs := s.session(w, r)
	qs.mu.Lock()
	defer qs.mu.Unlock()
	fn(qs.c)
}

// phasePath maps each workflow phase to its page.
func phasePath(p docquiz.Phase) string {
	switch p {
	case docquiz.PhaseQuiz:
		return "/quiz"
	case docquiz.PhaseReview:
		return "/review"
	case docquiz.PhaseResults:
		return "/results"
	default:
		return "/"
	}
}

func redirectToPhase(w http.ResponseWriter, r *http.Request, c *docquiz.Controller) {
	http.Redirect(w, r, phasePath(c.Phase()), http.StatusSeeOther)
}

func (s *Server) render(w http.ResponseWriter, name string, data interface{}) {
	if err := s.templates[name].ExecuteTemplate(w, "base", data); err != nil {
		log.Printf("Template error in %s: %v", name, err)
		http.Error(w, "Template error", http.StatusInternalServerError)
	}
}

func (s *Server) handleSetup(w http.ResponseWriter, r *http.Request) {
	s.withController(w, r, func(c *docquiz.Controller) {
		if c.Phase() != docquiz.PhaseSetup {
			redirectToPhase(w, r, c)
			return
		}
		s.render(w, "setup", map[string]interface{}{
			"Error": c.ErrorMessage(),
		})
	})
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "Failed to parse upload", http.StatusBadRequest)
		return
	}
	file, header, err := r.FormFile("document")
	if err != nil {
		http.Error(w, "A document is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	numQuestions, err := strconv.Atoi(r.FormValue("num_questions"))
	if err != nil || numQuestions <= 0 {
		numQuestions = 5
	}
	timerSeconds, err := strconv.Atoi(r.FormValue("timer_seconds"))
	if err != nil || timerSeconds <= 0 {
		timerSeconds = 30
	}

	s.withController(w, r, func(c *docquiz.Controller) {
		ctx, cancel := context.WithTimeout(r.Context(), submitTimeout)
		defer cancel()

		// Submit blocks until the pipeline succeeds or fails; on failure the
		// controller is back in setup with the message set, so the redirect
		// lands on the right page either way.
		if err := c.Submit(ctx, file, header.Filename, numQuestions, timerSeconds); err != nil {
			log.Printf("Submission failed: %v", err)
		}
		redirectToPhase(w, r, c)
	})
}

func (s *Server) handleQuiz(w http.ResponseWriter, r *http.Request) {
	s.withController(w, r, func(c *docquiz.Controller) {
		if c.Phase() != docquiz.PhaseQuiz {
			redirectToPhase(w, r, c)
			return
		}

		session := c.Session()
		s.render(w, "quiz", map[string]interface{}{
			"Number":       session.CurrentIndex + 1,
			"Total":        len(session.Questions),
			"Question":     session.Current(),
			"Selected":     session.UserAnswers[session.CurrentIndex],
			"TimerSeconds": session.TimerSeconds,
			"IsFirst":      session.CurrentIndex == 0,
			"IsLast":       session.CurrentIndex == len(session.Questions)-1,
		})
	})
}

func (s *Server) handleAnswer(w http.ResponseWriter, r *http.Request) {
	s.withController(w, r, func(c *docquiz.Controller) {
		if answer := r.FormValue("answer"); answer != "" {
			c.SelectAnswer(answer)
		}
		redirectToPhase(w, r, c)
	})
}

func (s *Server) handleNext(w http.ResponseWriter, r *http.Request) {
	s.withController(w, r, func(c *docquiz.Controller) {
		c.Next()
		redirectToPhase(w, r, c)
	})
}

func (s *Server) handlePrev(w http.ResponseWriter, r *http.Request) {
	s.withController(w, r, func(c *docquiz.Controller) {
		c.Prev()
		redirectToPhase(w, r, c)
	})
}

func (s *Server) handleFinish(w http.ResponseWriter, r *http.Request) {
	s.withController(w, r, func(c *docquiz.Controller) {
		c.Finish()
		redirectToPhase(w, r, c)
	})
}

type reviewItem struct {
	Index    int
	Question string
	Answer   string
}

func (s *Server) handleReview(w http.ResponseWriter, r *http.Request) {
	s.withController(w, r, func(c *docquiz.Controller) {
		if c.Phase() != docquiz.PhaseReview {
			redirectToPhase(w, r, c)
			return
		}

		session := c.Session()
		items := make([]reviewItem, len(session.Questions))
		for i, q := range session.Questions {
			items[i] = reviewItem{Index: i, Question: q.Question, Answer: session.UserAnswers[i]}
		}
		s.render(w, "review", map[string]interface{}{
			"Items":    items,
			"Answered": session.Answered(),
			"Total":    len(session.Questions),
		})
	})
}

func (s *Server) handleJump(w http.ResponseWriter, r *http.Request) {
	s.withController(w, r, func(c *docquiz.Controller) {
		if i, err := strconv.Atoi(r.FormValue("index")); err == nil {
			c.JumpToQuestion(i)
		}
		redirectToPhase(w, r, c)
	})
}

func (s *Server) handleFinalSubmit(w http.ResponseWriter, r *http.Request) {
	s.withController(w, r, func(c *docquiz.Controller) {
		c.FinalSubmit()
		redirectToPhase(w, r, c)
	})
}

type resultItem struct {
	Question string
	Answer   string
	Correct  string
	Right    bool
}

func (s *Server) handleResults(w http.ResponseWriter, r *http.Request) {
	s.withController(w, r, func(c *docquiz.Controller) {
		if c.Phase() != docquiz.PhaseResults {
			redirectToPhase(w, r, c)
			return
		}

		session := c.Session()
		score := session.Score()
		items := make([]resultItem, len(session.Questions))
		for i, q := range session.Questions {
			items[i] = resultItem{
				Question: q.Question,
				Answer:   session.UserAnswers[i],
				Correct:  q.CorrectAnswer,
				Right:    score.PerQuestion[i],
			}
		}
		s.render(w, "results", map[string]interface{}{
			"Items": items,
			"Score": score,
		})
	})
}

func (s *Server) handleRetry(w http.ResponseWriter, r *http.Request) {
	s.withController(w, r, func(c *docquiz.Controller) {
		c.Retry()
		redirectToPhase(w, r, c)
	})
}
