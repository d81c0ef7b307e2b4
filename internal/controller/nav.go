package controller

import (
	"time"

	"cantara-client/internal/session"
)

// Routes that require login. Guests may still enter the chat and composer
// pages; favorites always needs a full account.
var protectedRoutes = map[string]bool{
	"/favorites": true,
	"/making":    true,
	"/creation":  true,
}

var guestAllowedRoutes = map[string]bool{
	"/making":   true,
	"/creation": true,
}

// NavView is the page-transition surface of the front-end.
type NavView interface {
	RevealContent()
	FadeOut()
	Navigate(path string)
	OpenLoginModal(message string)
}

// Nav intercepts internal navigation, guards protected routes, and
// sequences the fade-out before the actual page change.
type Nav struct {
	session *session.Context
	view    NavView

	// authed reports current login state; wired to Auth.LoggedIn.
	authed func() bool

	fadeDuration time.Duration
	after        AfterFunc
}

// Deferring the reveal by one frame guarantees the enter transition runs.
const revealDelay = 16 * time.Millisecond

func NewNav(sess *session.Context, view NavView, authed func() bool, fadeDuration time.Duration) *Nav {
	return &Nav{
		session:      sess,
		view:         view,
		authed:       authed,
		fadeDuration: fadeDuration,
		after:        defaultAfter,
	}
}

// PageLoaded reveals the page content on the next frame.
func (n *Nav) PageLoaded() {
	n.after(revealDelay, n.view.RevealContent)
}

// ClickLink handles an internal link. Logout links are exempt from both
// the guard and the fade; the auth controller owns that flow.
func (n *Nav) ClickLink(path string, isLogout bool) {
	if isLogout {
		return
	}

	if protectedRoutes[path] && !n.authed() {
		isVisitor := n.session.VisitorActive()
		if !(isVisitor && guestAllowedRoutes[path]) {
			n.session.SetPendingDestination(path)
			msg := "Please log in to access this page."
			if isVisitor && path == "/favorites" {
				msg = "Favorites requires a full account."
			}
			n.view.OpenLoginModal(msg)
			return
		}
		// Active guest heading to a guest-permitted page: fall through.
	}

	n.view.FadeOut()
	// Navigate only after the fade completes; the duration is the same
	// value the view animates with.
	n.after(n.fadeDuration, func() { n.view.Navigate(path) })
}
