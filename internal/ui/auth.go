package ui

import (
	"fmt"

	"github.com/rivo/tview"

	"cantara-client/internal/controller"
)

const authModalPage = "auth_modal"

// RenderNav updates the header's account slot.
func (r *Root) RenderNav(state controller.NavState) {
	r.navState = state
	r.navKnown = true
	r.refreshHeader()
	r.requestDraw()
}

func (r *Root) refreshHeader() {
	slot := "[yellow]Ctrl+L to log in[-]"
	if r.navKnown {
		switch r.navState.Kind {
		case controller.NavLoggedIn:
			slot = fmt.Sprintf("[green]%s[-] · %d pts · quiz %d · 🏅 %d",
				tview.Escape(r.navState.Username),
				r.navState.TotalScore, r.navState.QuizScore, r.navState.UnlockedCount)
		case controller.NavVisitor:
			slot = fmt.Sprintf("[aqua]%s[-] (guest)", tview.Escape(r.navState.VisitorName))
		case controller.NavError:
			slot = "[red]account unavailable[-]"
		}
	}
	r.header.SetText(fmt.Sprintf("[::b]Cantara[-:-:-] · %s    %s",
		tview.Escape(r.currentPath), slot))
}

// authForms holds the modal's two forms so error labels can be updated
// after construction.
type authForms struct {
	message  *tview.TextView
	loginErr *tview.TextView
	regErr   *tview.TextView
	login    *tview.Form
	register *tview.Form
	pages    *tview.Pages
}

func (r *Root) buildAuthModal(message string) tview.Primitive {
	r.authForms = &authForms{
		message:  tview.NewTextView().SetDynamicColors(true),
		loginErr: tview.NewTextView().SetDynamicColors(true),
		regErr:   tview.NewTextView().SetDynamicColors(true),
	}
	f := r.authForms
	f.message.SetText("[yellow]" + tview.Escape(message) + "[-]")

	f.login = tview.NewForm().
		AddInputField("Username", "", 24, nil, nil).
		AddPasswordField("Password", "", 24, '*', nil)
	f.login.
		AddButton("Log in", func() {
			username := f.login.GetFormItem(0).(*tview.InputField).GetText()
			password := f.login.GetFormItem(1).(*tview.InputField).GetText()
			go r.ctrl.Auth.Login(r.bg(), username, password)
		}).
		AddButton("Register instead", func() { f.pages.SwitchToPage("register") }).
		AddButton("Guest mode", func() { go r.ctrl.Auth.GuestMode(r.bg()) }).
		AddButton("Cancel", func() { r.ctrl.Auth.CancelAuthModal() })
	f.login.SetBorder(true).SetTitle(" Log in ")

	f.register = tview.NewForm().
		AddInputField("Username", "", 24, nil, nil).
		AddPasswordField("Password", "", 24, '*', nil).
		AddPasswordField("Confirm password", "", 24, '*', nil)
	f.register.
		AddButton("Create account", func() {
			username := f.register.GetFormItem(0).(*tview.InputField).GetText()
			password := f.register.GetFormItem(1).(*tview.InputField).GetText()
			confirm := f.register.GetFormItem(2).(*tview.InputField).GetText()
			go r.ctrl.Auth.Register(r.bg(), username, password, confirm)
		}).
		AddButton("Back", func() { f.pages.SwitchToPage("login") }).
		AddButton("Cancel", func() { r.ctrl.Auth.CancelAuthModal() })
	f.register.SetBorder(true).SetTitle(" Register ")

	loginPane := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(f.message, 1, 0, false).
		AddItem(f.loginErr, 1, 0, false).
		AddItem(f.login, 0, 1, true)
	registerPane := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(f.regErr, 1, 0, false).
		AddItem(f.register, 0, 1, true)

	f.pages = tview.NewPages().
		AddPage("login", loginPane, true, true).
		AddPage("register", registerPane, true, false)
	return f.pages
}

// OpenLoginModal pops the login/register/guest modal, optionally with the
// reason the user landed there.
func (r *Root) OpenLoginModal(message string) {
	r.authModalOpen = true
	r.pages.AddAndSwitchToPage(authModalPage, center(52, 18, r.buildAuthModal(message)), true)
	r.requestDraw()
}

func (r *Root) CloseAuthModal() {
	r.closeAuthModal()
	r.requestDraw()
}

func (r *Root) closeAuthModal() {
	if !r.authModalOpen {
		return
	}
	r.authModalOpen = false
	r.pages.RemovePage(authModalPage)
	r.authForms = nil
}

func (r *Root) ShowLoginError(msg string) {
	if r.authForms == nil {
		r.OpenLoginModal("")
	}
	r.authForms.loginErr.SetText("[red]" + tview.Escape(msg) + "[-]")
	r.requestDraw()
}

func (r *Root) ShowRegisterError(msg string) {
	if r.authForms == nil {
		r.OpenLoginModal("")
	}
	r.authForms.regErr.SetText("[red]" + tview.Escape(msg) + "[-]")
	r.requestDraw()
}

func center(w, h int, p tview.Primitive) tview.Primitive {
	return tview.NewFlex().
		AddItem(nil, 0, 1, false).
		AddItem(tview.NewFlex().SetDirection(tview.FlexRow).
			AddItem(nil, 0, 1, false).
			AddItem(p, h, 1, true).
			AddItem(nil, 0, 1, false), w, 1, true).
		AddItem(nil, 0, 1, false)
}
