package controller

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"cantara-client/internal/models"
)

// CannedResponder answers a query locally. The first responder to match
// wins and the backend is never called for that query.
type CannedResponder func(query string) (string, bool)

type GuideView interface {
	AppendUserQuery(text string)
	AppendGuideReply(text string)
	AppendNavigation(path, label string)
	SetBusy(busy bool)
}

type guideAPI interface {
	GuideCommand(ctx context.Context, query string) (*models.GuideResponse, error)
}

// Guide is the floating assistant. One implementation serves every page;
// the page's feature set arrives as its canned responders.
type Guide struct {
	api    guideAPI
	view   GuideView
	canned []CannedResponder
}

func NewGuide(api guideAPI, view GuideView, canned ...CannedResponder) *Guide {
	return &Guide{api: api, view: view, canned: canned}
}

// Ask routes a free-text query: canned responders first, then the guide
// command endpoint.
func (g *Guide) Ask(ctx context.Context, query string) {
	query = strings.TrimSpace(query)
	if query == "" {
		return
	}

	g.view.SetBusy(true)
	defer g.view.SetBusy(false)

	g.view.AppendUserQuery(query)

	for _, responder := range g.canned {
		if reply, ok := responder(query); ok {
			g.view.AppendGuideReply(reply)
			return
		}
	}

	resp, err := g.api.GuideCommand(ctx, query)
	if err != nil {
		slog.Error("guide command failed", "error", err)
		g.view.AppendGuideReply("Melo seems to be offline, please try again later.")
		return
	}

	switch resp.Action {
	case models.GuideNavigate:
		intro := resp.IntroMessage
		if intro == "" {
			intro = fmt.Sprintf("Alright, taking you to **%s**.", resp.Label)
		}
		g.view.AppendGuideReply(intro)
		g.view.AppendNavigation(resp.Path, resp.Label)
	case models.GuideTextResponse:
		g.view.AppendGuideReply(resp.Message)
	default:
		g.view.AppendGuideReply("Sorry, I didn't catch that.")
	}
}

// containsAny reports whether the query mentions any of the keywords.
func containsAny(query string, keywords ...string) bool {
	lower := strings.ToLower(query)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// QuizPageResponders are the quiz page's canned answers.
func QuizPageResponders() []CannedResponder {
	return []CannedResponder{
		func(q string) (string, bool) {
			if !containsAny(q, "point", "score") {
				return "", false
			}
			return "💡 You can earn points by:\n" +
				"1. Quizzes: every correct answer earns 10-30 points\n" +
				"2. Favoriting a song for the first time earns 30 points\n" +
				"3. Your first forum post earns 40 points\n" +
				"4. Unlocking achievements: each one grants bonus points!", true
		},
		func(q string) (string, bool) {
			if !containsAny(q, "achievement", "badge") {
				return "", false
			}
			return "🏅 Achievements you can unlock:\n\n" +
				"🎯 **Quiz**:\n- First Steps (1 correct answer)\n- Getting Warmer (10 correct)\n- Song Scholar (50 correct)\n\n" +
				"🎵 **Favorites**:\n- First Spark (favorite 1 song)\n- Collector (favorite 10 songs)\n\n" +
				"💬 **Forum**:\n- First Voice (1 post)\n- Community Regular (5 posts)\n\n" +
				"Keep going and unlock them all!", true
		},
	}
}

// AchievementsPageResponders are the achievements page's canned answers;
// progress is read live from the page's controller.
func AchievementsPageResponders(progress func() Progress) []CannedResponder {
	return []CannedResponder{
		func(q string) (string, bool) {
			if !containsAny(q, "unlock fast", "how") {
				return "", false
			}
			return "💡 The best ways to unlock achievements:\n\n" +
				"1. **Quiz often**: every correct answer earns 10-30 points\n" +
				"2. **Favorite songs**: collecting counts too\n" +
				"3. **Join the forum**: meaningful posts add up\n" +
				"4. **Answer in streaks**: long correct runs are the fastest route\n\n" +
				"You can do it!", true
		},
		func(q string) (string, bool) {
			if !containsAny(q, "progress", "how many points") {
				return "", false
			}
			p := progress()
			msg := fmt.Sprintf("📊 **Your achievement progress**:\n\nUnlocked: %d/%d (%d%%)\n\n",
				p.Unlocked, p.Total, p.Percent)
			if p.Next != nil {
				msg += fmt.Sprintf("🎯 Next achievement: **%s**\n%s\nStill needed: %s\n",
					p.Next.Name, p.Next.Description, p.NextSteps)
			} else {
				msg += "🎉 Congratulations, you have unlocked everything!"
			}
			return msg, true
		},
	}
}
