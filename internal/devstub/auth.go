package devstub

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"cantara-client/internal/models"
)

func (s *Server) handleAuthStatus(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := s.currentUser(r)
	if u == nil {
		writeJSON(w, http.StatusOK, models.AuthStatus{LoggedIn: false})
		return
	}
	writeJSON(w, http.StatusOK, models.AuthStatus{
		LoggedIn: true,
		Username: u.username,
		UserID:   u.id,
	})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[req.Username]
	if !ok || bcrypt.CompareHashAndPassword(u.passwordHash, []byte(req.Password)) != nil {
		writeError(w, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	s.issueSession(w, u)
	writeJSON(w, http.StatusOK, models.AuthResult{Success: true, Username: u.username})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Username == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Username and password are required")
		return
	}
	if req.ConfirmPassword != "" && req.ConfirmPassword != req.Password {
		writeError(w, http.StatusBadRequest, "Passwords do not match")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[req.Username]; exists {
		writeError(w, http.StatusBadRequest, "Username already taken")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create account")
		return
	}

	u := &user{
		id:           s.nextID,
		username:     req.Username,
		passwordHash: hash,
		unlocked:     make(map[int]bool),
	}
	s.nextID++
	s.users[u.username] = u
	s.byID[u.id] = u

	s.issueSession(w, u)
	writeJSON(w, http.StatusOK, models.AuthResult{Success: true, Username: u.username})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cookie, err := r.Cookie(sessionCookie); err == nil {
		delete(s.sessions, cookie.Value)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// issueSession mints a fresh token cookie. Callers hold s.mu.
func (s *Server) issueSession(w http.ResponseWriter, u *user) {
	token := uuid.NewString()
	s.sessions[token] = u.id
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
	})
}
