package controller

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"cantara-client/internal/api"
	"cantara-client/internal/models"
	"cantara-client/internal/session"
)

// maxTranscriptTurns caps the rolling context sent back to the agent.
const maxTranscriptTurns = 20

// videoSummaryRunes is the truncation point for video blurbs in cards.
const videoSummaryRunes = 20

// historyRefreshDelay gives the backend a beat to persist the turn before
// the side panel re-reads it.
const historyRefreshDelay = 200 * time.Millisecond

// ConfirmationCard is a rendered confirmation_required response.
type ConfirmationCard struct {
	Title  string
	Desc   string
	Intent string
	Params map[string]string
}

// LyricsView is a rendered lyrics_card, with the optional composer
// hand-off resolved into a flag plus the path to jump to.
type LyricsView struct {
	Theme        string
	Lyrics       string
	ComposerPath string
}

type ChatView interface {
	AppendMessage(role, text string)
	ShowTyping()
	HideTyping()
	ShowConfirmation(card ConfirmationCard)
	ShowSongList(songs []models.Song, total int)
	ShowVideoList(videos []models.Video, total int)
	ShowLyrics(card LyricsView)
	Navigate(path string)
	RenderHistory(items []models.HistoryItem)
	ShowHistoryLoginHint()
	ShowHistoryError(msg string)
	CloseClearConfirm()
	ShowClearFailed(msg string)
}

type agentAPI interface {
	AgentChat(ctx context.Context, req models.AgentRequest) (*models.AgentResponse, error)
	ChatHistory(ctx context.Context) ([]models.HistoryItem, error)
	ClearChatHistory(ctx context.Context) (bool, error)
}

// Agent drives the conversational page: idle → awaiting_response →
// rendering, one turn at a time.
type Agent struct {
	api     agentAPI
	session *session.Context
	view    ChatView

	mu         sync.Mutex
	transcript []models.ConversationTurn
	waiting    bool

	navigateDelay time.Duration
	after         AfterFunc
	now           func() time.Time
}

func NewAgent(apiClient agentAPI, sess *session.Context, view ChatView, navigateDelay time.Duration) *Agent {
	return &Agent{
		api:           apiClient,
		session:       sess,
		view:          view,
		navigateDelay: navigateDelay,
		after:         defaultAfter,
		now:           time.Now,
	}
}

// Transcript returns a copy of the rolling context.
func (a *Agent) Transcript() []models.ConversationTurn {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]models.ConversationTurn{}, a.transcript...)
}

func (a *Agent) addTurn(role, content string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.transcript = append(a.transcript, models.ConversationTurn{Role: role, Content: content})
	if len(a.transcript) > maxTranscriptTurns {
		a.transcript = a.transcript[len(a.transcript)-maxTranscriptTurns:]
	}
}

func (a *Agent) beginTurn() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.waiting {
		return false
	}
	a.waiting = true
	return true
}

func (a *Agent) endTurn() {
	a.mu.Lock()
	a.waiting = false
	a.mu.Unlock()
}

// Send posts one user turn. Ignored while a response is pending.
func (a *Agent) Send(ctx context.Context, text string) {
	if text == "" || !a.beginTurn() {
		return
	}
	defer a.endTurn()

	a.view.AppendMessage(models.RoleUser, text)
	a.addTurn(models.RoleUser, text)
	a.view.ShowTyping()

	resp, err := a.api.AgentChat(ctx, models.AgentRequest{
		UserInput:           text,
		ConversationHistory: a.Transcript(),
	})
	a.view.HideTyping()
	if err != nil {
		a.view.AppendMessage(models.RoleAssistant, "Sorry, that didn't work: "+userFacing(err))
		return
	}

	a.dispatch(resp)
	a.recordGuestTurn(text, resp)
	a.after(historyRefreshDelay, func() { a.LoadHistory(context.Background()) })
}

// Confirm re-invokes the backend with the confirmed action envelope and
// renders the follow-up through the same dispatch.
func (a *Agent) Confirm(ctx context.Context, intent string, params map[string]string) {
	if !a.beginTurn() {
		return
	}
	defer a.endTurn()

	a.view.ShowTyping()
	resp, err := a.api.AgentChat(ctx, models.AgentRequest{
		ConfirmedAction:     &models.ConfirmedAction{Intent: intent, Params: params},
		ConversationHistory: a.Transcript(),
	})
	a.view.HideTyping()
	if err != nil {
		a.view.AppendMessage(models.RoleAssistant, "The action failed: "+userFacing(err))
		return
	}

	a.dispatch(resp)
	a.after(historyRefreshDelay, func() { a.LoadHistory(context.Background()) })
}

// Cancel records the declined action locally. No network call.
func (a *Agent) Cancel() {
	a.addTurn(models.RoleUser, "[user cancelled the operation]")
}

func (a *Agent) dispatch(resp *models.AgentResponse) {
	if resp.TextResponse != "" {
		a.addTurn(models.RoleAssistant, resp.TextResponse)
	}

	switch resp.ResponseType {
	case models.ResponseText:
		a.view.AppendMessage(models.RoleAssistant, resp.TextResponse)

	case models.ResponseNavigate:
		if resp.TextResponse != "" {
			a.view.AppendMessage(models.RoleAssistant, resp.TextResponse)
		}
		path := resp.Path
		a.after(a.navigateDelay, func() { a.view.Navigate(path) })

	case models.ResponseConfirmation:
		if resp.TextResponse != "" {
			a.view.AppendMessage(models.RoleAssistant, resp.TextResponse)
		}
		var data models.ConfirmationData
		if err := json.Unmarshal(resp.Data, &data); err != nil {
			slog.Error("bad confirmation payload", "error", err)
			return
		}
		a.view.ShowConfirmation(buildConfirmationCard(data))

	case models.ResponseContentCard:
		if resp.TextResponse != "" {
			a.view.AppendMessage(models.RoleAssistant, resp.TextResponse)
		}
		a.dispatchCard(resp)

	default:
		text := resp.TextResponse
		if text == "" {
			text = "Noted."
		}
		a.view.AppendMessage(models.RoleAssistant, text)
	}
}

func (a *Agent) dispatchCard(resp *models.AgentResponse) {
	switch resp.CardType {
	case models.CardSongList:
		var songs []models.Song
		if err := json.Unmarshal(resp.Data, &songs); err != nil {
			slog.Error("bad song list payload", "error", err)
			return
		}
		if len(songs) == 0 {
			a.view.AppendMessage(models.RoleAssistant, "Sorry, no matching songs were found.")
			return
		}
		total := len(songs)
		if len(songs) > 5 {
			songs = songs[:5]
		}
		a.view.ShowSongList(songs, total)

	case models.CardVideoList:
		var videos []models.Video
		if err := json.Unmarshal(resp.Data, &videos); err != nil {
			slog.Error("bad video list payload", "error", err)
			return
		}
		if len(videos) == 0 {
			a.view.AppendMessage(models.RoleAssistant, "Sorry, no matching videos were found.")
			return
		}
		total := len(videos)
		if len(videos) > 3 {
			videos = videos[:3]
		}
		for i := range videos {
			videos[i].Summary = TruncateSummary(videos[i].Summary)
		}
		a.view.ShowVideoList(videos, total)

	case models.CardLyricsCard:
		var card models.LyricsCard
		if err := json.Unmarshal(resp.Data, &card); err != nil {
			slog.Error("bad lyrics payload", "error", err)
			return
		}
		view := LyricsView{Theme: card.Theme, Lyrics: card.Lyrics}
		if ni := card.NavigateInstruction; ni != nil && ni.Path != "" {
			view.ComposerPath = ni.Path
			if lyrics, ok := ni.Params["auto_fill_lyrics"]; ok {
				// Stash before navigating so the composer can pick it up.
				a.session.SetAutoFillLyrics(lyrics)
			}
		}
		a.view.ShowLyrics(view)

	default:
		slog.Warn("unknown card type", "card_type", resp.CardType)
	}
}

// TruncateSummary clips a blurb to the card's display length.
func TruncateSummary(s string) string {
	runes := []rune(s)
	if len(runes) <= videoSummaryRunes {
		return s
	}
	return string(runes[:videoSummaryRunes]) + "..."
}

func buildConfirmationCard(data models.ConfirmationData) ConfirmationCard {
	card := ConfirmationCard{
		Title:  "Confirm operation",
		Desc:   "Are you sure you want to proceed?",
		Intent: data.Intent,
		Params: data.Params,
	}
	switch data.Intent {
	case "search_songs_by_keyword":
		card.Title = "🔍 Search confirmation"
		card.Desc = "About to search for songs about **" + data.Params["keyword"] + "**."
	case "create_song_lyrics":
		card.Title = "✍️ Creation confirmation"
		card.Desc = "About to write lyrics on the theme **" + data.Params["theme"] + "**."
	}
	return card
}

// recordGuestTurn mirrors the turn into the local history array when the
// backend has no account to persist it under.
func (a *Agent) recordGuestTurn(question string, resp *models.AgentResponse) {
	if !a.session.VisitorActive() || resp.TextResponse == "" {
		return
	}
	a.session.AppendGuestHistory(models.HistoryItem{
		Question:  question,
		Answer:    resp.TextResponse,
		Timestamp: a.now().Format("2006-01-02 15:04"),
	})
}

// LoadHistory fills the side panel, newest first. Guests read the local
// array; logged-in users read the server-held transcript.
func (a *Agent) LoadHistory(ctx context.Context) {
	if a.session.VisitorActive() {
		a.view.RenderHistory(reverseHistory(a.session.GuestHistory()))
		return
	}

	items, err := a.api.ChatHistory(ctx)
	if err != nil {
		var apiErr *api.Error
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized {
			a.view.ShowHistoryLoginHint()
			return
		}
		slog.Error("history fetch failed", "error", err)
		a.view.ShowHistoryError("Failed to load history.")
		return
	}
	a.view.RenderHistory(reverseHistory(items))
}

// ClearHistory runs after the confirm modal. Guest mode drops the local
// key; authenticated mode only clears the panel on an acknowledged delete.
func (a *Agent) ClearHistory(ctx context.Context) {
	defer a.view.CloseClearConfirm()

	if a.session.VisitorActive() {
		a.session.ClearGuestHistory()
		a.LoadHistory(ctx)
		return
	}

	ok, err := a.api.ClearChatHistory(ctx)
	if err != nil {
		a.view.ShowClearFailed("Clearing failed, network error.")
		return
	}
	if !ok {
		a.view.ShowClearFailed("Failed to clear history.")
		return
	}
	a.LoadHistory(ctx)
}

func reverseHistory(items []models.HistoryItem) []models.HistoryItem {
	out := make([]models.HistoryItem, len(items))
	for i, item := range items {
		out[len(items)-1-i] = item
	}
	return out
}

func userFacing(err error) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return "please try again later"
}
