package controller

import (
	"context"
	"log/slog"
	"unicode"

	"cantara-client/internal/models"
	"cantara-client/internal/session"
)

// NavKind discriminates what the nav auth slot shows.
type NavKind int

const (
	NavLoggedIn NavKind = iota
	NavVisitor
	NavLoginButton
	NavError
)

// NavState is the rendered state of the nav auth slot.
type NavState struct {
	Kind          NavKind
	Username      string
	VisitorName   string
	TotalScore    int
	QuizScore     int
	UnlockedCount int
}

// AuthView is what the auth widget needs from the front-end.
type AuthView interface {
	RenderNav(NavState)
	ShowLoginError(msg string)
	ShowRegisterError(msg string)
	CloseAuthModal()
	Notice(msg string)
	Navigate(path string)
	Reload()
}

type authAPI interface {
	AuthStatus(ctx context.Context) (*models.AuthStatus, error)
	AchievementStats(ctx context.Context) (*models.AchievementStats, error)
	QuizStats(ctx context.Context) (*models.QuizStats, error)
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResult, error)
	Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResult, error)
	Logout(ctx context.Context) error
}

// Auth drives the nav auth slot and the login/register/guest-mode modal.
type Auth struct {
	api     authAPI
	session *session.Context
	view    AuthView

	seq      sequence
	loggedIn bool
}

func NewAuth(api authAPI, sess *session.Context, view AuthView) *Auth {
	return &Auth{api: api, session: sess, view: view}
}

// LoggedIn reports the last observed auth state. The nav guard reads it
// instead of sniffing the rendered UI.
func (a *Auth) LoggedIn() bool { return a.loggedIn }

// Refresh re-queries login state and renders the nav slot. Stat fetches
// are best-effort: failures degrade the counters to zero, never the slot.
func (a *Auth) Refresh(ctx context.Context) {
	gen := a.seq.next()

	status, err := a.api.AuthStatus(ctx)
	if err != nil {
		slog.Error("auth status fetch failed", "error", err)
		if a.seq.current(gen) {
			a.loggedIn = false
			a.view.RenderNav(NavState{Kind: NavError})
		}
		return
	}

	if !status.LoggedIn {
		if !a.seq.current(gen) {
			return
		}
		a.loggedIn = false
		if a.session.VisitorActive() {
			a.view.RenderNav(NavState{Kind: NavVisitor, VisitorName: a.session.VisitorName()})
		} else {
			a.view.RenderNav(NavState{Kind: NavLoginButton})
		}
		return
	}

	state := NavState{Kind: NavLoggedIn, Username: status.Username}
	if stats, err := a.api.AchievementStats(ctx); err == nil {
		state.TotalScore = stats.TotalScore
		state.UnlockedCount = stats.UnlockedCount
	} else {
		slog.Warn("achievement stats unavailable", "error", err)
	}
	if stats, err := a.api.QuizStats(ctx); err == nil {
		state.QuizScore = stats.QuizScore
	} else {
		slog.Warn("quiz stats unavailable", "error", err)
	}

	if !a.seq.current(gen) {
		return
	}
	a.loggedIn = true
	a.view.RenderNav(state)
}

// Login submits credentials. On success all guest state is dropped and the
// page reloads; failures surface as inline form errors.
func (a *Auth) Login(ctx context.Context, username, password string) {
	result, err := a.api.Login(ctx, models.LoginRequest{Username: username, Password: password})
	if err != nil {
		a.view.ShowLoginError("Network error, please try again later.")
		return
	}
	if !result.Success {
		msg := result.Error
		if msg == "" {
			msg = "Login failed"
		}
		a.view.ShowLoginError(msg)
		return
	}
	a.session.ClearVisitor()
	a.view.Reload()
}

// Register validates locally before posting, mirroring the form rules.
func (a *Auth) Register(ctx context.Context, username, password, confirm string) {
	if msg, ok := validateRegistration(username, password, confirm); !ok {
		a.view.ShowRegisterError(msg)
		return
	}

	result, err := a.api.Register(ctx, models.RegisterRequest{
		Username:        username,
		Password:        password,
		ConfirmPassword: confirm,
	})
	if err != nil {
		a.view.ShowRegisterError("Network error, please try again later.")
		return
	}
	if !result.Success {
		msg := result.Error
		if msg == "" {
			msg = "Registration failed"
		}
		a.view.ShowRegisterError(msg)
		return
	}
	a.session.ClearVisitor()
	a.view.Reload()
}

func validateRegistration(username, password, confirm string) (string, bool) {
	if username == "" || password == "" || confirm == "" {
		return "All fields are required.", false
	}
	if len([]rune(username)) > 15 {
		return "Username must be 15 characters or fewer.", false
	}
	if password != confirm {
		return "Passwords do not match.", false
	}

	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case r > unicode.MaxASCII:
			return "Password must use ASCII characters only.", false
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasLetter {
		return "Password must contain at least one letter.", false
	}
	if !hasDigit {
		return "Password must contain at least one digit.", false
	}
	return "", true
}

// Logout hits the logout endpoint and returns to the home page whatever
// the outcome; a dead session cookie is not worth stranding the user for.
func (a *Auth) Logout(ctx context.Context) {
	if err := a.api.Logout(ctx); err != nil {
		slog.Warn("logout request failed", "error", err)
	}
	a.loggedIn = false
	a.view.Navigate("/")
}

// GuestMode handles the visitor-mode button in the auth modal. Where the
// guest lands depends on the destination that triggered the modal.
func (a *Auth) GuestMode(ctx context.Context) {
	dest, _ := a.session.PendingDestination()
	a.session.ClearPendingDestination()

	switch {
	case dest == "/favorites":
		a.view.Notice("Guest mode cannot access favorites; returning to the home page.")
		a.view.Navigate("/")
	case dest == "/making" || dest == "/creation":
		a.session.ActivateVisitor()
		a.view.Navigate(dest)
	default:
		a.session.ActivateVisitor()
		a.view.CloseAuthModal()
		a.Refresh(ctx)
	}
}

// CancelAuthModal closes the modal and forgets where the user was headed.
func (a *Auth) CancelAuthModal() {
	a.session.ClearPendingDestination()
	a.view.CloseAuthModal()
}
