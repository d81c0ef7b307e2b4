package devstub

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"cantara-client/internal/models"
)

func (s *Server) handleAgentChat(w http.ResponseWriter, r *http.Request) {
	var req models.AgentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var resp models.AgentResponse
	if req.ConfirmedAction != nil {
		resp = s.performAction(*req.ConfirmedAction)
	} else {
		resp = s.classify(req.UserInput)
	}

	// Guests chat too; only accounts accumulate counters and history.
	if u := s.currentUser(r); u != nil {
		u.chatMessages++
		resp.NewlyUnlocked = s.evaluateAchievements(u)
		if resp.TextResponse != "" {
			u.history = append(u.history, models.HistoryItem{
				Question:  req.UserInput,
				Answer:    resp.TextResponse,
				Timestamp: time.Now().Format("2006-01-02 15:04:05"),
			})
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

// classify is the stub's stand-in for intent detection: plain keyword
// matching over the user input.
func (s *Server) classify(input string) models.AgentResponse {
	lower := strings.ToLower(input)

	switch {
	case strings.Contains(lower, "search") || strings.Contains(lower, "find"):
		keyword := extractTopic(input)
		data, _ := json.Marshal(models.ConfirmationData{
			Intent: "search_songs_by_keyword",
			Params: map[string]string{"keyword": keyword},
		})
		return models.AgentResponse{
			ResponseType: models.ResponseConfirmation,
			TextResponse: fmt.Sprintf("I can search the song library for %q. Shall I?", keyword),
			Data:         data,
		}

	case strings.Contains(lower, "lyrics") || strings.Contains(lower, "compose") || strings.Contains(lower, "write"):
		theme := extractTopic(input)
		data, _ := json.Marshal(models.ConfirmationData{
			Intent: "create_song_lyrics",
			Params: map[string]string{"theme": theme},
		})
		return models.AgentResponse{
			ResponseType: models.ResponseConfirmation,
			TextResponse: fmt.Sprintf("I can draft lyrics on the theme %q. Shall I?", theme),
			Data:         data,
		}

	case strings.Contains(lower, "video"):
		data, _ := json.Marshal(s.videos)
		return models.AgentResponse{
			ResponseType: models.ResponseContentCard,
			CardType:     models.CardVideoList,
			TextResponse: "Here are some videos you might like:",
			Data:         data,
		}

	case strings.Contains(lower, "go to") || strings.Contains(lower, "take me") || strings.Contains(lower, "open"):
		if path, label, ok := pageFor(lower); ok {
			return models.AgentResponse{
				ResponseType: models.ResponseNavigate,
				TextResponse: "Taking you to " + label + ".",
				Path:         path,
			}
		}
		return models.AgentResponse{
			ResponseType: models.ResponseText,
			TextResponse: "I'm not sure which page you mean. Try the plaza, the circle, or the studio.",
		}

	default:
		return models.AgentResponse{
			ResponseType: models.ResponseText,
			TextResponse: "I can search songs, draft lyrics, recommend videos, or take you to a page. What would you like?",
		}
	}
}

// performAction runs a confirmed intent.
func (s *Server) performAction(action models.ConfirmedAction) models.AgentResponse {
	switch action.Intent {
	case "search_songs_by_keyword":
		keyword := action.Params["keyword"]
		var matches []models.Song
		for _, song := range s.songs {
			if keyword == "" || strings.Contains(strings.ToLower(song.Title), strings.ToLower(keyword)) {
				matches = append(matches, song)
			}
		}
		if matches == nil {
			matches = []models.Song{}
		}
		data, _ := json.Marshal(matches)
		return models.AgentResponse{
			ResponseType: models.ResponseContentCard,
			CardType:     models.CardSongList,
			TextResponse: fmt.Sprintf("Found %d songs for %q:", len(matches), keyword),
			Data:         data,
		}

	case "create_song_lyrics":
		theme := action.Params["theme"]
		if theme == "" {
			theme = "the journey"
		}
		lyrics := fmt.Sprintf(
			"Verse 1:\nUnder skies of %s we stand,\nVoices rising hand in hand.\n\nChorus:\nSing of %s, loud and true,\nEvery note a story new.",
			theme, theme)
		data, _ := json.Marshal(models.LyricsCard{
			Theme:  theme,
			Lyrics: lyrics,
			NavigateInstruction: &models.NavigateInstruction{
				Path:   "/creation",
				Params: map[string]string{"auto_fill_lyrics": lyrics},
			},
		})
		return models.AgentResponse{
			ResponseType: models.ResponseContentCard,
			CardType:     models.CardLyricsCard,
			TextResponse: fmt.Sprintf("Here is a draft on the theme %q:", theme),
			Data:         data,
		}

	default:
		return models.AgentResponse{
			ResponseType: models.ResponseText,
			TextResponse: "I don't know how to do that yet.",
		}
	}
}

// extractTopic pulls the phrase after "about"; failing that, the last word.
func extractTopic(input string) string {
	lower := strings.ToLower(input)
	if idx := strings.Index(lower, "about "); idx >= 0 {
		return strings.TrimSpace(input[idx+len("about "):])
	}
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return input
	}
	return fields[len(fields)-1]
}

var guidePages = []struct {
	keyword string
	path    string
	label   string
	intro   string
}{
	{"plaza", "/plaza", "Learning Plaza", "The plaza gathers articles and videos on song heritage."},
	{"circle", "/circle", "Song Circle", "The circle is where the whole song library lives."},
	{"studio", "/making", "Music Studio", "The studio turns your lyrics into a finished song."},
	{"making", "/making", "Music Studio", ""},
	{"creation", "/creation", "Lyrics Workshop", "The workshop helps you draft and polish lyrics."},
	{"workshop", "/creation", "Lyrics Workshop", ""},
	{"favorites", "/favorites", "Favorites", ""},
	{"quiz", "/quiz", "Quiz", "Test yourself and earn points."},
	{"achievement", "/achievements", "Achievements", ""},
	{"home", "/", "Home", ""},
}

func pageFor(lower string) (path, label string, ok bool) {
	for _, p := range guidePages {
		if strings.Contains(lower, p.keyword) {
			return p.path, p.label, true
		}
	}
	return "", "", false
}

func (s *Server) handleGuideCommand(w http.ResponseWriter, r *http.Request) {
	var req models.GuideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	lower := strings.ToLower(req.Query)
	for _, p := range guidePages {
		if strings.Contains(lower, p.keyword) {
			writeJSON(w, http.StatusOK, models.GuideResponse{
				Action:       models.GuideNavigate,
				Path:         p.path,
				Label:        p.label,
				IntroMessage: p.intro,
			})
			return
		}
	}

	writeJSON(w, http.StatusOK, models.GuideResponse{
		Action:  models.GuideTextResponse,
		Message: "You can ask me to open the plaza, the circle, the studio, the quiz, or your favorites.",
	})
}

func (s *Server) handleChatHistory(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := s.currentUser(r)
	if u == nil {
		writeError(w, http.StatusUnauthorized, "Login required")
		return
	}

	history := u.history
	if history == nil {
		history = []models.HistoryItem{}
	}
	writeJSON(w, http.StatusOK, models.HistoryResponse{History: history})
}

func (s *Server) handleClearChatHistory(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := s.currentUser(r)
	if u == nil {
		writeError(w, http.StatusUnauthorized, "Login required")
		return
	}

	u.history = nil
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
