package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/rivo/tview"

	"cantara-client/internal/controller"
	"cantara-client/internal/models"
)

func (r *Root) buildQuizPage() {
	r.quizStats = tview.NewTextView().SetDynamicColors(true)
	r.quizStats.SetBorder(true).SetTitle(" Your stats ")

	r.quizBoard = tview.NewTextView().SetDynamicColors(true)
	r.quizBoard.SetBorder(true).SetTitle(" Quiz leaderboard ")

	r.quizMain = tview.NewTextView().SetDynamicColors(true)
	r.quizMain.SetBorder(true).SetTitle(" Quiz ")

	r.quizOptions = tview.NewList().ShowSecondaryText(false)
	r.quizOptions.SetBorder(true).SetTitle(" Answers ")

	left := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(r.quizMain, 0, 2, false).
		AddItem(r.quizOptions, 0, 1, true)
	right := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(r.quizStats, 0, 1, false).
		AddItem(r.quizBoard, 0, 2, false)

	r.quizPage = tview.NewFlex().
		AddItem(left, 0, 2, true).
		AddItem(right, 0, 1, false)

	r.showStartScreen("")
}

func (r *Root) showStartScreen(notice string) {
	text := "[::b]Song Heritage Quiz[-:-:-]\n\n" +
		"Five questions per round. Correct answers earn points and\n" +
		"can unlock achievements.\n"
	if notice != "" {
		text += "\n[red]" + tview.Escape(notice) + "[-]\n"
	}
	r.quizMain.SetText(text)

	r.quizOptions.Clear()
	r.quizOptions.AddItem("Start quiz", "", 's', func() {
		go r.ctrl.Quiz.Start(r.bg())
	})
}

// ─── controller.QuizView ───

func (r *Root) ShowStart() {
	r.showStartScreen("")
	r.requestDraw()
}

func (r *Root) ShowStartError(msg string) {
	r.showStartScreen(msg)
	r.requestDraw()
}

func (r *Root) ShowQuestion(number, total int, q models.QuizQuestion) {
	r.quizMain.SetText(fmt.Sprintf(
		"[::b]Question %d / %d[-:-:-]   [gray]%s · %d pts[-]\n\n%s",
		number, total, q.Difficulty, q.Points, tview.Escape(q.Question)))

	r.optionsEnabled = true
	r.quizOptions.Clear()
	for i, text := range q.Options() {
		idx := i
		letter := controller.OptionLetters[i]
		r.quizOptions.AddItem(letter+". "+text, "", rune('a'+i), func() {
			if !r.optionsEnabled {
				return
			}
			go r.ctrl.Quiz.Select(r.bg(), idx)
		})
	}
	r.requestDraw()
}

func (r *Root) SetOptionsEnabled(enabled bool) {
	r.optionsEnabled = enabled
	r.requestDraw()
}

// MarkFeedback recolors the answered options: the correct one green and,
// on a miss, the chosen one red.
func (r *Root) MarkFeedback(correctIdx, selectedIdx int, wrong bool) {
	for i := 0; i < r.quizOptions.GetItemCount(); i++ {
		text, _ := r.quizOptions.GetItemText(i)
		text = stripColorPrefix(text)
		switch {
		case i == correctIdx:
			text = "[green]" + text + " ✓[-]"
		case wrong && i == selectedIdx:
			text = "[red]" + text + " ✗[-]"
		}
		r.quizOptions.SetItemText(i, text, "")
	}
	r.requestDraw()
}

func stripColorPrefix(text string) string {
	for _, tag := range []string{"[green]", "[red]"} {
		text = strings.TrimPrefix(text, tag)
	}
	text = strings.TrimSuffix(text, " ✓[-]")
	text = strings.TrimSuffix(text, " ✗[-]")
	return text
}

func (r *Root) ShowFloatingPoints(points, optionIdx int) {
	r.flash(fmt.Sprintf("[green]+%d points![-]", points))
}

// AnimateScore counts the stat panel's score from one settled value to
// the next on the shared easing curve.
func (r *Root) AnimateScore(from, to int) {
	const frames = 20
	step := r.opts.ScoreAnimTime / frames
	go func() {
		for i := 1; i <= frames; i++ {
			value := controller.ScoreAt(from, to, float64(i)/frames)
			r.app.QueueUpdateDraw(func() {
				r.quizStats.SetText(fmt.Sprintf("[::b]Score: %d[-:-:-]", value))
			})
			time.Sleep(step)
		}
	}()
}

func (r *Root) ShowNextButton() {
	r.quizOptions.AddItem("Next →", "", 'n', func() {
		go r.ctrl.Quiz.Next(r.bg())
	})
	r.requestDraw()
}

func (r *Root) ShowResults(summary controller.QuizResultsSummary) {
	icon, caption := tierPresentation(summary.Tier)
	r.quizMain.SetText(fmt.Sprintf(
		"%s  [::b]Round complete[-:-:-]\n\n%s\n\nCorrect: %d / %d\nPoints earned: %d",
		icon, caption, summary.Correct, summary.Total, summary.Points))

	r.quizOptions.Clear()
	r.quizOptions.AddItem("Play again", "", 'r', func() {
		go r.ctrl.Quiz.Restart(r.bg())
	})
	r.requestDraw()
}

func tierPresentation(tier controller.Tier) (icon, caption string) {
	switch tier {
	case controller.TierTrophy:
		return "🏆", "Perfect round! You know these songs inside out."
	case controller.TierCelebration:
		return "🎉", "Excellent work, nearly flawless."
	case controller.TierEncouragement:
		return "💪", "Good run. A little more practice and you'll ace it."
	default:
		return "🌱", "Every answer teaches you something. Try another round!"
	}
}

func (r *Root) ShowAchievementToast(a models.Achievement) {
	r.flash(fmt.Sprintf("[gold]%s Achievement unlocked: %s (+%d pts)[-]",
		a.Icon, tview.Escape(a.Name), a.Points))
}

func (r *Root) RenderStats(stats *models.QuizStats) {
	r.quizStats.SetText(fmt.Sprintf(
		"[::b]Score: %d[-:-:-]\n\nAnswered: %d\nCorrect: %d\nAccuracy: %.1f%%",
		stats.QuizScore, stats.TotalQuestions, stats.TotalCorrect, stats.Accuracy))
	r.requestDraw()
}

func (r *Root) RenderLeaderboard(entries []models.LeaderboardEntry) {
	var b strings.Builder
	for _, e := range entries {
		score := e.QuizScore
		if score == 0 {
			score = e.TotalScore
		}
		fmt.Fprintf(&b, "%2d. %-16s %5d  🏅 %d\n", e.Rank, tview.Escape(e.Username), score, e.AchievementCount)
	}
	if b.Len() == 0 {
		b.WriteString("No players yet.")
	}
	switch r.currentPath {
	case "/achievements":
		r.achBoard.SetText(b.String())
	default:
		r.quizBoard.SetText(b.String())
	}
	r.requestDraw()
}
