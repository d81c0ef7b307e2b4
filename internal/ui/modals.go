package ui

import (
	"github.com/rivo/tview"
)

func (r *Root) buildModals() {
	r.clearModal = tview.NewModal().
		SetText("Delete the whole conversation history?").
		AddButtons([]string{"Cancel", "Delete"}).
		SetDoneFunc(func(_ int, label string) {
			if label == "Delete" {
				go r.ctrl.Agent.ClearHistory(r.bg())
				return
			}
			r.CloseClearConfirm()
		})

	r.detailModal = tview.NewModal().
		SetText("Achievement").
		AddButtons([]string{"Close"}).
		SetDoneFunc(func(_ int, _ string) {
			r.pages.RemovePage("ach_detail")
			r.requestDraw()
		})

	r.confirmModal = tview.NewModal().
		SetText("Confirm").
		AddButtons([]string{"Cancel", "Confirm"}).
		SetDoneFunc(func(_ int, label string) {
			r.pages.RemovePage("agent_confirm")
			card := r.pendingConfirm
			if label == "Confirm" {
				go r.ctrl.Agent.Confirm(r.bg(), card.Intent, card.Params)
			} else {
				r.ctrl.Agent.Cancel()
			}
			r.requestDraw()
		})
}
