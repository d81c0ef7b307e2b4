package devstub

import (
	"encoding/json"
	"math"
	"math/rand"
	"net/http"
	"sort"
	"strconv"

	"cantara-client/internal/models"
)

// seedQuestion keeps the correct answer server-side; only the public
// QuizQuestion shape ever leaves on the questions endpoint.
type seedQuestion struct {
	models.QuizQuestion
	CorrectAnswer string
}

func (s *Server) handleQuizQuestions(w http.ResponseWriter, r *http.Request) {
	count := 5
	if raw := r.URL.Query().Get("count"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			count = n
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	picked := rand.Perm(len(s.questions))
	if count > len(picked) {
		count = len(picked)
	}
	questions := make([]models.QuizQuestion, 0, count)
	for _, idx := range picked[:count] {
		questions = append(questions, s.questions[idx].QuizQuestion)
	}

	writeJSON(w, http.StatusOK, map[string]any{"questions": questions})
}

func (s *Server) handleQuizSubmit(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	u := s.currentUser(r)
	if u == nil {
		writeError(w, http.StatusUnauthorized, "Login required")
		return
	}

	var question *seedQuestion
	for i := range s.questions {
		if s.questions[i].ID == req.QuestionID {
			question = &s.questions[i]
			break
		}
	}
	if question == nil {
		writeError(w, http.StatusNotFound, "Question not found")
		return
	}

	correct := req.Answer == question.CorrectAnswer
	earned := 0
	u.quizAnswered++
	if correct {
		u.quizCorrect++
		u.quizStreak++
		earned = question.Points
		u.quizScore += earned
	} else {
		u.quizStreak = 0
	}

	newly := s.evaluateAchievements(u)

	writeJSON(w, http.StatusOK, models.SubmitAnswerResult{
		Success:       true,
		IsCorrect:     correct,
		CorrectAnswer: question.CorrectAnswer,
		ScoreEarned:   earned,
		Explanation:   question.Explanation,
		TotalScore:    s.totalScore(u),
		NewlyUnlocked: newly,
	})
}

func (s *Server) handleQuizStats(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := s.currentUser(r)
	if u == nil {
		writeError(w, http.StatusUnauthorized, "Login required")
		return
	}

	accuracy := 0.0
	if u.quizAnswered > 0 {
		accuracy = math.Round(float64(u.quizCorrect)/float64(u.quizAnswered)*1000) / 10
	}
	writeJSON(w, http.StatusOK, models.QuizStats{
		TotalQuestions: u.quizAnswered,
		TotalCorrect:   u.quizCorrect,
		Accuracy:       accuracy,
		QuizScore:      u.quizScore,
	})
}

func (s *Server) handleQuizLeaderboard(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ranked := s.rankedUsers(func(u *user) int { return u.quizScore })
	limit := limitParam(r, 10)

	entries := make([]models.LeaderboardEntry, 0, limit)
	for i, u := range ranked {
		if i >= limit {
			break
		}
		entries = append(entries, models.LeaderboardEntry{
			Rank:             i + 1,
			Username:         u.username,
			QuizScore:        u.quizScore,
			AchievementCount: len(u.unlocked),
		})
	}
	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ranked := s.rankedUsers(func(u *user) int { return s.totalScore(u) })
	limit := limitParam(r, 10)

	entries := make([]models.LeaderboardEntry, 0, limit)
	for i, u := range ranked {
		if i >= limit {
			break
		}
		entries = append(entries, models.LeaderboardEntry{
			Rank:             i + 1,
			Username:         u.username,
			TotalScore:       s.totalScore(u),
			AchievementCount: len(u.unlocked),
		})
	}
	writeJSON(w, http.StatusOK, entries)
}

// rankedUsers sorts every account by the given score, ties by username so
// the order is stable across calls. Callers hold s.mu.
func (s *Server) rankedUsers(score func(*user) int) []*user {
	ranked := make([]*user, 0, len(s.users))
	for _, u := range s.users {
		ranked = append(ranked, u)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if score(ranked[i]) != score(ranked[j]) {
			return score(ranked[i]) > score(ranked[j])
		}
		return ranked[i].username < ranked[j].username
	})
	return ranked
}

func limitParam(r *http.Request, fallback int) int {
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
