package devstub

import (
	"net/http"

	"cantara-client/internal/models"
)

func (s *Server) handleAchievements(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := s.currentUser(r)
	if u == nil {
		writeError(w, http.StatusUnauthorized, "Login required")
		return
	}

	unlocked := make([]models.Achievement, 0)
	locked := make([]models.Achievement, 0)
	for _, a := range s.achievements {
		if u.unlocked[a.ID] {
			unlocked = append(unlocked, a)
		} else {
			locked = append(locked, a)
		}
	}

	writeJSON(w, http.StatusOK, models.AchievementCatalog{
		Unlocked:      unlocked,
		Locked:        locked,
		UnlockedCount: len(unlocked),
		TotalCount:    len(s.achievements),
	})
}

func (s *Server) handleAchievementStats(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := s.currentUser(r)
	if u == nil {
		writeError(w, http.StatusUnauthorized, "Login required")
		return
	}

	writeJSON(w, http.StatusOK, models.AchievementStats{
		TotalScore:    s.totalScore(u),
		UnlockedCount: len(u.unlocked),
	})
}

func (s *Server) handleAchievementCheck(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := s.currentUser(r)
	if u == nil {
		writeError(w, http.StatusUnauthorized, "Login required")
		return
	}

	newly := s.evaluateAchievements(u)
	if newly == nil {
		newly = []models.Achievement{}
	}
	writeJSON(w, http.StatusOK, models.CheckResult{Success: true, NewlyUnlocked: newly})
}
