package session

import (
	"encoding/json"
	"fmt"
	"math/rand"

	"cantara-client/internal/models"
)

// Storage keys. The session-scoped keys live for one run of the client,
// the local keys persist across runs.
const (
	KeyVisitorModeActive  = "visitorModeActive"
	KeyVisitorName        = "visitorName"
	KeyPendingDestination = "pendingDestination"

	KeyVisitorChatHistory = "visitorChatHistory"
	KeyAutoFillLyrics     = "auto_fill_lyrics"
)

// Store is a flat string key/value store. Browser storage never surfaces
// errors to callers; implementations log failures and degrade to a miss.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Delete(key string)
}

// Context bundles the two storage scopes behind typed accessors so
// controllers never touch raw keys. Injectable for tests.
type Context struct {
	session Store
	local   Store
	randInt func(n int) int
}

func New(sessionStore, localStore Store) *Context {
	return &Context{
		session: sessionStore,
		local:   localStore,
		randInt: rand.Intn,
	}
}

// ─── Visitor mode ───

func (c *Context) VisitorActive() bool {
	v, ok := c.session.Get(KeyVisitorModeActive)
	return ok && v == "true"
}

func (c *Context) VisitorName() string {
	v, ok := c.session.Get(KeyVisitorName)
	if !ok || v == "" {
		return "Guest_0000"
	}
	return v
}

// ActivateVisitor turns on guest mode with a fresh random display name and
// returns it. The identity lives only as long as the session store.
func (c *Context) ActivateVisitor() string {
	name := fmt.Sprintf("Guest_%d", c.randInt(9000)+1000)
	c.session.Set(KeyVisitorModeActive, "true")
	c.session.Set(KeyVisitorName, name)
	return name
}

// ClearVisitor drops all guest state, including any pending destination.
func (c *Context) ClearVisitor() {
	c.session.Delete(KeyVisitorModeActive)
	c.session.Delete(KeyVisitorName)
	c.session.Delete(KeyPendingDestination)
}

// ─── Pending destination ───

func (c *Context) PendingDestination() (string, bool) {
	return c.session.Get(KeyPendingDestination)
}

func (c *Context) SetPendingDestination(path string) {
	c.session.Set(KeyPendingDestination, path)
}

func (c *Context) ClearPendingDestination() {
	c.session.Delete(KeyPendingDestination)
}

// ─── Guest chat history (local, persistent, unbounded) ───

func (c *Context) GuestHistory() []models.HistoryItem {
	raw, ok := c.local.Get(KeyVisitorChatHistory)
	if !ok || raw == "" {
		return nil
	}
	var items []models.HistoryItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		// Corrupt entry: reset rather than fail the panel.
		c.local.Delete(KeyVisitorChatHistory)
		return nil
	}
	return items
}

func (c *Context) AppendGuestHistory(item models.HistoryItem) {
	items := append(c.GuestHistory(), item)
	raw, err := json.Marshal(items)
	if err != nil {
		return
	}
	c.local.Set(KeyVisitorChatHistory, string(raw))
}

func (c *Context) ClearGuestHistory() {
	c.local.Delete(KeyVisitorChatHistory)
}

// ─── Composer hand-off ───

func (c *Context) SetAutoFillLyrics(lyrics string) {
	c.local.Set(KeyAutoFillLyrics, lyrics)
}

// TakeAutoFillLyrics returns stashed lyrics and clears them, so the
// composer consumes the hand-off exactly once.
func (c *Context) TakeAutoFillLyrics() (string, bool) {
	v, ok := c.local.Get(KeyAutoFillLyrics)
	if ok {
		c.local.Delete(KeyAutoFillLyrics)
	}
	return v, ok
}
