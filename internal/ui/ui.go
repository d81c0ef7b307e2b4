// Package ui is the terminal front-end. Root owns every widget and
// implements the controllers' view interfaces; all domain decisions stay
// in the controllers.
package ui

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"cantara-client/internal/controller"
	"cantara-client/internal/models"
)

// Controllers is everything Root dispatches user input to. Wired after
// construction because the controllers need Root as their view.
type Controllers struct {
	Auth         *controller.Auth
	Nav          *controller.Nav
	Quiz         *controller.Quiz
	Achievements *controller.Achievements
	Agent        *controller.Agent
	Guide        *controller.Guide
}

type Options struct {
	ScoreAnimTime time.Duration
	ToastLifetime time.Duration
}

// Root implements every controller view interface.
var (
	_ controller.AuthView         = (*Root)(nil)
	_ controller.NavView          = (*Root)(nil)
	_ controller.QuizView         = (*Root)(nil)
	_ controller.AchievementsView = (*Root)(nil)
	_ controller.ChatView         = (*Root)(nil)
	_ controller.GuideView        = (*Root)(nil)
)

type Root struct {
	app  *tview.Application
	ctrl Controllers
	opts Options

	running     bool
	currentPath string

	header *tview.TextView
	status *tview.TextView
	body   *tview.Pages
	main   *tview.Flex
	pages  *tview.Pages

	home *tview.TextView

	quizStats   *tview.TextView
	quizBoard   *tview.TextView
	quizMain    *tview.TextView
	quizOptions *tview.List
	quizPage    *tview.Flex

	achOverview *tview.TextView
	achList     *tview.List
	achBoard    *tview.TextView
	achPage     *tview.Flex
	achCategory string
	achUnlocked []models.Achievement
	achLocked   []models.Achievement

	chatLog     *tview.TextView
	chatInput   *tview.InputField
	chatHistory *tview.TextView
	chatPage    *tview.Flex

	guideLog   *tview.TextView
	guideInput *tview.InputField
	guideOpen  bool

	authModalOpen  bool
	authForms      *authForms
	clearModal     *tview.Modal
	detailModal    *tview.Modal
	confirmModal   *tview.Modal
	pendingConfirm controller.ConfirmationCard

	toastTimer *time.Timer

	navState controller.NavState
	navKnown bool

	// Option selection is ignored while a submit is in flight.
	optionsEnabled bool

	guideNavPath string
}

func New(opts Options) *Root {
	r := &Root{
		opts:        opts,
		app:         tview.NewApplication(),
		currentPath: "/",
		achCategory: controller.CategoryAll,
	}

	r.header = tview.NewTextView().SetDynamicColors(true)
	r.status = tview.NewTextView().SetDynamicColors(true)

	r.buildHomePage()
	r.buildQuizPage()
	r.buildAchievementsPage()
	r.buildChatPage()
	r.buildGuideOverlay()
	r.buildModals()

	r.body = tview.NewPages().
		AddPage("/", r.home, true, true).
		AddPage("/quiz", r.quizPage, true, false).
		AddPage("/achievements", r.achPage, true, false).
		AddPage("/chat", r.chatPage, true, false)
	for _, path := range []string{"/plaza", "/circle", "/making", "/creation", "/favorites"} {
		r.body.AddPage(path, placeholderPage(path), true, false)
	}

	r.main = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(r.header, 1, 0, false).
		AddItem(r.body, 0, 1, true).
		AddItem(r.status, 1, 0, false)

	r.pages = tview.NewPages().AddPage("main", r.main, true, true)

	r.app.SetRoot(r.pages, true)
	r.app.SetInputCapture(r.captureInput)

	r.refreshHeader()
	r.setStatus("F1 Home · F2 Quiz · F3 Achievements · F4 Chat · Ctrl+G Melo · Ctrl+L Account · Ctrl+C Quit")
	return r
}

func (r *Root) SetControllers(c Controllers) { r.ctrl = c }

func (r *Root) Run() error {
	r.running = true
	defer func() { r.running = false }()
	return r.app.Run()
}

func (r *Root) Stop() { r.app.Stop() }

func (r *Root) requestDraw() {
	if !r.running {
		return
	}
	r.app.QueueUpdateDraw(func() {})
}

func (r *Root) bg() context.Context { return context.Background() }

func (r *Root) captureInput(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyF1:
		go r.ctrl.Nav.ClickLink("/", false)
		return nil
	case tcell.KeyF2:
		go r.ctrl.Nav.ClickLink("/quiz", false)
		return nil
	case tcell.KeyF3:
		go r.ctrl.Nav.ClickLink("/achievements", false)
		return nil
	case tcell.KeyF4:
		go r.ctrl.Nav.ClickLink("/chat", false)
		return nil
	case tcell.KeyCtrlG:
		r.toggleGuide()
		return nil
	case tcell.KeyCtrlL:
		if r.navKnown && r.navState.Kind == controller.NavLoggedIn {
			go r.ctrl.Auth.Logout(r.bg())
		} else {
			r.OpenLoginModal("")
		}
		return nil
	}
	return event
}

// Navigate switches the visible page. Called by the nav controller after
// the fade delay, and by auth/agent flows directly.
func (r *Root) Navigate(path string) {
	if !r.body.HasPage(path) {
		path = "/"
	}
	r.currentPath = path
	r.body.SwitchToPage(path)
	r.refreshHeader()
	r.requestDraw()

	go r.loadPage(path)
}

// loadPage runs the controller work a fresh page needs.
func (r *Root) loadPage(path string) {
	r.ctrl.Nav.PageLoaded()
	switch path {
	case "/quiz":
		r.ctrl.Quiz.Init(r.bg())
	case "/achievements":
		r.ctrl.Achievements.Load(r.bg())
		r.ctrl.Achievements.LoadLeaderboard(r.bg())
	case "/chat":
		r.ctrl.Agent.LoadHistory(r.bg())
	}
}

// FadeOut and RevealContent bracket a page change. The terminal has no
// opacity, so the transition reads as a status cue.
func (r *Root) FadeOut() {
	r.setStatus("[gray]···[-]")
	r.requestDraw()
}

func (r *Root) RevealContent() {
	r.setStatus("")
	r.requestDraw()
}

// Reload re-enters the current page, the closest thing to a browser
// refresh the terminal has.
func (r *Root) Reload() {
	r.closeAuthModal()
	go r.ctrl.Auth.Refresh(r.bg())
	r.Navigate(r.currentPath)
}

func (r *Root) Notice(msg string) {
	r.flash("[yellow]" + tview.Escape(msg) + "[-]")
}

func (r *Root) setStatus(text string) {
	r.status.SetText(text)
}

// flash shows a transient status line, replaced by the next flash and
// cleared after the toast lifetime.
func (r *Root) flash(markup string) {
	r.setStatus(markup)
	if r.toastTimer != nil {
		r.toastTimer.Stop()
	}
	r.toastTimer = time.AfterFunc(r.opts.ToastLifetime, func() {
		r.setStatus("")
		r.requestDraw()
	})
	r.requestDraw()
}

func (r *Root) buildHomePage() {
	r.home = tview.NewTextView().SetDynamicColors(true)
	r.home.SetBorder(true).SetTitle(" Cantara ")
	r.home.SetText("[::b]Welcome to Cantara[-:-:-]\n\n" +
		"A home for song heritage: learn, quiz yourself, collect\n" +
		"achievements, and chat with Melo the heritage guide.\n\n" +
		"  F2  Quiz        answer questions, earn points\n" +
		"  F3  Achievements track your badges\n" +
		"  F4  Chat        talk to the heritage agent\n\n" +
		"  Ctrl+G opens Melo anywhere. Ctrl+L logs in or out.")
}

func placeholderPage(path string) tview.Primitive {
	titles := map[string]string{
		"/plaza":     "Learning Plaza",
		"/circle":    "Song Circle",
		"/making":    "Music Studio",
		"/creation":  "Lyrics Workshop",
		"/favorites": "Favorites",
	}
	view := tview.NewTextView().SetDynamicColors(true)
	view.SetBorder(true).SetTitle(" " + titles[path] + " ")
	view.SetText("This area lives on the web app. The terminal client keeps\n" +
		"it reachable so navigation and guest rules behave the same.\n\n" +
		"Press F1 to go back home.")
	return view
}
