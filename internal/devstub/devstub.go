// Package devstub is an in-memory Cantara backend for local development
// and tests. It speaks the same wire contract as the production server
// but keeps everything in process: accounts, quiz progress, achievements
// and chat history all reset on restart.
package devstub

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"cantara-client/internal/models"
)

const sessionCookie = "cantara_session"

// user is one registered account and all of its progress counters.
type user struct {
	id           int
	username     string
	passwordHash []byte

	quizAnswered int
	quizCorrect  int
	quizStreak   int
	quizScore    int
	chatMessages int

	// Counters the stub never advances but the achievement rules read.
	articlesRead  int
	songsCreated  int
	favoriteSongs int
	forumPosts    int

	unlocked map[int]bool
	history  []models.HistoryItem
}

// Server implements the full HTTP contract. Safe for concurrent use.
type Server struct {
	router chi.Router

	mu       sync.Mutex
	users    map[string]*user
	byID     map[int]*user
	sessions map[string]int
	nextID   int

	achievements []models.Achievement
	questions    []seedQuestion
	songs        []models.Song
	videos       []models.Video
}

func NewServer() *Server {
	s := &Server{
		users:        make(map[string]*user),
		byID:         make(map[int]*user),
		sessions:     make(map[string]int),
		nextID:       1,
		achievements: seedAchievements(),
		questions:    seedQuestions(),
		songs:        seedSongs(),
		videos:       seedVideos(),
	}
	s.router = s.routes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Get("/status", s.handleAuthStatus)
			r.Post("/login", s.handleLogin)
			r.Post("/register", s.handleRegister)
			r.Get("/logout", s.handleLogout)
		})

		r.Route("/quiz", func(r chi.Router) {
			r.Get("/questions", s.handleQuizQuestions)
			r.Post("/submit", s.handleQuizSubmit)
			r.Get("/stats", s.handleQuizStats)
			r.Get("/leaderboard", s.handleQuizLeaderboard)
		})

		r.Route("/achievements", func(r chi.Router) {
			r.Get("/", s.handleAchievements)
			r.Get("/stats", s.handleAchievementStats)
			r.Post("/check", s.handleAchievementCheck)
		})

		r.Get("/leaderboard", s.handleLeaderboard)

		r.Post("/agent/chat", s.handleAgentChat)
		r.Post("/guide/command", s.handleGuideCommand)

		r.Route("/chat", func(r chi.Router) {
			r.Get("/history", s.handleChatHistory)
			r.Delete("/history", s.handleClearChatHistory)
		})
	})

	return r
}

// currentUser resolves the session cookie. Callers hold s.mu.
func (s *Server) currentUser(r *http.Request) *user {
	cookie, err := r.Cookie(sessionCookie)
	if err != nil {
		return nil
	}
	id, ok := s.sessions[cookie.Value]
	if !ok {
		return nil
	}
	return s.byID[id]
}

// totalScore is quiz points plus the bonus of every unlocked achievement.
func (s *Server) totalScore(u *user) int {
	total := u.quizScore
	for _, a := range s.achievements {
		if u.unlocked[a.ID] {
			total += a.Points
		}
	}
	return total
}

// conditionMet evaluates one unlock rule against the user's counters.
func (s *Server) conditionMet(u *user, a models.Achievement) bool {
	v := a.ConditionValue
	switch a.ConditionType {
	case "quiz_correct":
		return u.quizCorrect >= v
	case "quiz_streak":
		return u.quizStreak >= v
	case "learn_articles":
		return u.articlesRead >= v
	case "create_songs":
		return u.songsCreated >= v
	case "chat_messages":
		return u.chatMessages >= v
	case "total_score":
		return s.totalScore(u) >= v
	case "favorite_songs":
		return u.favoriteSongs >= v
	case "forum_posts":
		return u.forumPosts >= v
	case "achievement_count":
		return len(u.unlocked) >= v
	default:
		return false
	}
}

// evaluateAchievements unlocks everything newly earned, looping because an
// unlock can feed total_score and achievement_count rules. Callers hold s.mu.
func (s *Server) evaluateAchievements(u *user) []models.Achievement {
	var newly []models.Achievement
	for {
		progressed := false
		for _, a := range s.achievements {
			if u.unlocked[a.ID] || !s.conditionMet(u, a) {
				continue
			}
			u.unlocked[a.ID] = true
			newly = append(newly, a)
			progressed = true
		}
		if !progressed {
			return newly
		}
	}
}

// ─── Response helpers ───

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
