package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"cantara-client/internal/controller"
	"cantara-client/internal/models"
)

// categoryCycle is the filter order the F key steps through.
var categoryCycle = []string{
	controller.CategoryAll, "quiz", "song", "learn", "create", "chat", "forum", "total",
}

func (r *Root) buildAchievementsPage() {
	r.achOverview = tview.NewTextView().SetDynamicColors(true)
	r.achOverview.SetBorder(true).SetTitle(" Overview ")

	r.achList = tview.NewList()
	r.achList.SetBorder(true).SetTitle(" Achievements (f: filter, Enter: details) ")

	r.achBoard = tview.NewTextView().SetDynamicColors(true)
	r.achBoard.SetBorder(true).SetTitle(" Overall leaderboard ")

	left := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(r.achOverview, 6, 0, false).
		AddItem(r.achList, 0, 1, true)

	r.achPage = tview.NewFlex().
		AddItem(left, 0, 2, true).
		AddItem(r.achBoard, 0, 1, false)

	r.achList.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Rune() == 'f' {
			r.cycleCategory()
			return nil
		}
		return event
	})
}

func (r *Root) cycleCategory() {
	for i, cat := range categoryCycle {
		if cat == r.achCategory {
			r.achCategory = categoryCycle[(i+1)%len(categoryCycle)]
			r.ctrl.Achievements.SetCategory(r.achCategory)
			return
		}
	}
	r.achCategory = categoryCycle[0]
	r.ctrl.Achievements.SetCategory(r.achCategory)
}

// ─── controller.AchievementsView ───

func (r *Root) RenderOverview(o controller.Overview) {
	label := controller.CategoryLabel(r.achCategory)
	if r.achCategory == controller.CategoryAll || r.achCategory == "" {
		label = "All"
	}
	r.achOverview.SetText(fmt.Sprintf(
		"[::b]Total score: %d[-:-:-]\nFilter: %s\nUnlocked %d · Locked %d · %d%%",
		o.TotalScore, label, o.UnlockedInCat, o.LockedInCat, o.ProgressPercent))
	r.requestDraw()
}

func (r *Root) RenderUnlocked(items []models.Achievement) {
	r.achUnlocked = items
	r.renderAchievementList()
}

func (r *Root) RenderLocked(items []models.Achievement) {
	r.achLocked = items
	r.renderAchievementList()
}

func (r *Root) renderAchievementList() {
	r.achList.Clear()
	for _, item := range r.achUnlocked {
		id := item.ID
		r.achList.AddItem(
			fmt.Sprintf("[green]%s %s[-]", item.Icon, tview.Escape(item.Name)),
			fmt.Sprintf("+%d pts · %s", item.Points, tview.Escape(item.Description)),
			0, func() { r.ctrl.Achievements.ShowDetail(id) })
	}
	for _, item := range r.achLocked {
		id := item.ID
		r.achList.AddItem(
			fmt.Sprintf("[gray]🔒 %s[-]", tview.Escape(item.Name)),
			fmt.Sprintf("[gray]%s[-]", controller.ConditionText(item)),
			0, func() { r.ctrl.Achievements.ShowDetail(id) })
	}
	if r.achList.GetItemCount() == 0 {
		r.achList.AddItem("Nothing in this category yet.", "", 0, nil)
	}
	r.requestDraw()
}

func (r *Root) ShowLoadError(msg string) {
	r.achOverview.SetText("[red]" + tview.Escape(msg) + "[-]")
	r.requestDraw()
}

func (r *Root) ShowDetail(d controller.AchievementDetail) {
	state := "[green]Unlocked[-]"
	if !d.Unlocked {
		state = "[gray]Locked[-]"
	}
	r.detailModal.SetText(fmt.Sprintf(
		"%s %s\n\n%s\n\nCategory: %s\nCondition: %s\nReward: %d points\nStatus: %s",
		d.Icon, d.Name, d.Description, d.CategoryLabel, d.ConditionText, d.Points, state))
	r.pages.AddAndSwitchToPage("ach_detail", center(60, 14, r.detailModal), true)
	r.requestDraw()
}
