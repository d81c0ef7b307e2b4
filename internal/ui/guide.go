package ui

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const guidePage = "guide_overlay"

func (r *Root) buildGuideOverlay() {
	r.guideLog = tview.NewTextView().SetDynamicColors(true).SetScrollable(true)
	r.guideLog.SetBorder(true).SetTitle(" Melo · site guide (Ctrl+G to close) ")
	r.guideLog.SetText("[gray]Ask where things are, how points work, or say\n\"take me to the plaza\". Type /go to follow the last link.[-]\n")

	r.guideInput = tview.NewInputField().SetLabel("Ask: ")
	r.guideInput.SetDoneFunc(func(key tcell.Key) {
		if key != tcell.KeyEnter {
			return
		}
		text := strings.TrimSpace(r.guideInput.GetText())
		if text == "" {
			return
		}
		r.guideInput.SetText("")
		if text == "/go" {
			if r.guideNavPath != "" {
				path := r.guideNavPath
				r.toggleGuide()
				go r.ctrl.Nav.ClickLink(path, false)
			}
			return
		}
		go r.ctrl.Guide.Ask(r.bg(), text)
	})
}

func (r *Root) toggleGuide() {
	if r.guideOpen {
		r.guideOpen = false
		r.pages.RemovePage(guidePage)
	} else {
		r.guideOpen = true
		pane := tview.NewFlex().SetDirection(tview.FlexRow).
			AddItem(r.guideLog, 0, 1, false).
			AddItem(r.guideInput, 1, 0, true)
		r.pages.AddAndSwitchToPage(guidePage, center(60, 18, pane), true)
	}
	r.requestDraw()
}

// ─── controller.GuideView ───

func (r *Root) AppendUserQuery(text string) {
	r.appendGuide("[aqua]You:[-] " + tview.Escape(text))
}

func (r *Root) AppendGuideReply(text string) {
	r.appendGuide("[green]Melo:[-] " + tview.Escape(text))
}

func (r *Root) AppendNavigation(path, label string) {
	r.guideNavPath = path
	r.appendGuide("[yellow]→ " + tview.Escape(label) + "[-] [gray](type /go to open)[-]")
}

func (r *Root) SetBusy(busy bool) {
	if busy {
		r.guideInput.SetLabel("[gray]…[-] ")
	} else {
		r.guideInput.SetLabel("Ask: ")
	}
	r.requestDraw()
}

func (r *Root) appendGuide(markup string) {
	r.guideLog.SetText(r.guideLog.GetText(false) + markup + "\n")
	r.guideLog.ScrollToEnd()
	r.requestDraw()
}
