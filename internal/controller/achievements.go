package controller

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"cantara-client/internal/models"
)

// CategoryAll matches every achievement.
const CategoryAll = "all"

var categoryLabels = map[string]string{
	"quiz":   "🎯 Quiz",
	"song":   "🎵 Favorites",
	"learn":  "📖 Reading",
	"create": "✨ Creation",
	"chat":   "📚 Chat",
	"forum":  "💬 Forum",
	"total":  "🌟 Overall",
}

var titleCaser = cases.Title(language.English)

// CategoryLabel resolves the display label for a category, title-casing
// unknown ones rather than leaking raw identifiers.
func CategoryLabel(category string) string {
	if label, ok := categoryLabels[category]; ok {
		return label
	}
	return titleCaser.String(category)
}

// ConditionText synthesizes the human-readable unlock condition.
func ConditionText(a models.Achievement) string {
	v := a.ConditionValue
	switch a.ConditionType {
	case "quiz_correct":
		return fmt.Sprintf("Answer %d questions correctly", v)
	case "quiz_streak":
		return fmt.Sprintf("Answer %d questions correctly in a row", v)
	case "learn_articles":
		return fmt.Sprintf("Read %d song-heritage articles", v)
	case "create_songs":
		return fmt.Sprintf("Compose %d songs", v)
	case "chat_messages":
		return fmt.Sprintf("Chat with the heritage guide %d times", v)
	case "total_score":
		return fmt.Sprintf("Accumulate %d points", v)
	case "favorite_songs":
		return fmt.Sprintf("Favorite %d songs", v)
	case "forum_posts":
		return fmt.Sprintf("Post %d forum messages", v)
	case "achievement_count":
		return fmt.Sprintf("Unlock %d achievements", v)
	default:
		return "Meet a special condition"
	}
}

// nextStepsText is the shorter phrasing the guide uses for the remaining
// distance to an achievement.
func nextStepsText(a models.Achievement) string {
	v := a.ConditionValue
	switch a.ConditionType {
	case "quiz_correct":
		return fmt.Sprintf("%d correct answers", v)
	case "learn_articles":
		return fmt.Sprintf("%d articles read", v)
	case "create_songs":
		return fmt.Sprintf("%d songs composed", v)
	case "total_score":
		return fmt.Sprintf("%d points", v)
	case "favorite_songs":
		return fmt.Sprintf("%d favorites", v)
	case "forum_posts":
		return fmt.Sprintf("%d forum posts", v)
	case "achievement_count":
		return fmt.Sprintf("%d achievements", v)
	default:
		return "a little more effort"
	}
}

// AchievementDetail backs the detail overlay.
type AchievementDetail struct {
	models.Achievement
	CategoryLabel string
	ConditionText string
	Unlocked      bool
}

// Overview is the header block above the grids. Everything is scoped to
// the active category.
type Overview struct {
	TotalScore      int
	UnlockedInCat   int
	LockedInCat     int
	ProgressPercent int
}

type AchievementsView interface {
	RenderOverview(Overview)
	RenderUnlocked(items []models.Achievement)
	RenderLocked(items []models.Achievement)
	ShowLoadError(msg string)
	ShowDetail(AchievementDetail)
	RenderLeaderboard(entries []models.LeaderboardEntry)
}

type achievementsAPI interface {
	AuthStatus(ctx context.Context) (*models.AuthStatus, error)
	Achievements(ctx context.Context) (*models.AchievementCatalog, error)
	QuizStats(ctx context.Context) (*models.QuizStats, error)
	Leaderboard(ctx context.Context, limit int) ([]models.LeaderboardEntry, error)
}

// Achievements owns the merged catalog view-model: one working set, a
// category filter, and a derived total score.
type Achievements struct {
	api  achievementsAPI
	view AchievementsView

	all         []models.Achievement
	unlockedIDs map[int]bool
	category    string
	quizScore   int

	loadSeq sequence
}

func NewAchievements(api achievementsAPI, view AchievementsView) *Achievements {
	return &Achievements{api: api, view: view, category: CategoryAll}
}

// Load fetches the catalog and the quiz score in sequence, then renders.
// Computing the total only after both responses are in removes the
// interleaved-write race the two independent fetches used to have.
func (a *Achievements) Load(ctx context.Context) {
	gen := a.loadSeq.next()

	status, err := a.api.AuthStatus(ctx)
	if err != nil || !status.LoggedIn {
		return
	}

	catalog, err := a.api.Achievements(ctx)
	if err != nil {
		slog.Error("achievement catalog fetch failed", "error", err)
		a.view.ShowLoadError("Failed to load achievements, please refresh.")
		return
	}

	quizScore := 0
	if stats, err := a.api.QuizStats(ctx); err == nil {
		quizScore = stats.QuizScore
	} else {
		slog.Warn("quiz stats unavailable for total score", "error", err)
	}

	if !a.loadSeq.current(gen) {
		return
	}

	a.unlockedIDs = make(map[int]bool, len(catalog.Unlocked))
	for _, u := range catalog.Unlocked {
		a.unlockedIDs[u.ID] = true
	}
	a.all = append(append([]models.Achievement{}, catalog.Unlocked...), catalog.Locked...)
	a.quizScore = quizScore

	a.render()
}

// SetCategory re-applies the filter predicate and re-renders.
func (a *Achievements) SetCategory(category string) {
	a.category = category
	a.render()
}

func (a *Achievements) render() {
	unlocked, locked := a.partition()
	a.view.RenderOverview(a.overview(unlocked, locked))
	a.view.RenderUnlocked(unlocked)
	a.view.RenderLocked(locked)
}

func (a *Achievements) partition() (unlocked, locked []models.Achievement) {
	for _, item := range a.all {
		if !a.inCategory(item) {
			continue
		}
		if a.unlockedIDs[item.ID] {
			unlocked = append(unlocked, item)
		} else {
			locked = append(locked, item)
		}
	}
	return unlocked, locked
}

func (a *Achievements) inCategory(item models.Achievement) bool {
	return a.category == CategoryAll || item.Category == a.category
}

func (a *Achievements) overview(unlocked, locked []models.Achievement) Overview {
	o := Overview{
		TotalScore:    a.TotalScore(),
		UnlockedInCat: len(unlocked),
		LockedInCat:   len(locked),
	}
	if total := len(unlocked) + len(locked); total > 0 {
		o.ProgressPercent = int(math.Round(float64(len(unlocked)) / float64(total) * 100))
	}
	return o
}

// TotalScore is the quiz score plus the points of every unlocked
// achievement, regardless of the active category filter.
func (a *Achievements) TotalScore() int {
	total := a.quizScore
	for _, item := range a.all {
		if a.unlockedIDs[item.ID] {
			total += item.Points
		}
	}
	return total
}

// ShowDetail opens the detail overlay for one card.
func (a *Achievements) ShowDetail(id int) {
	for _, item := range a.all {
		if item.ID == id {
			a.view.ShowDetail(AchievementDetail{
				Achievement:   item,
				CategoryLabel: CategoryLabel(item.Category),
				ConditionText: ConditionText(item),
				Unlocked:      a.unlockedIDs[item.ID],
			})
			return
		}
	}
}

// NextLocked is the first non-unlocked entry in catalog order.
func (a *Achievements) NextLocked() *models.Achievement {
	for _, item := range a.all {
		if !a.unlockedIDs[item.ID] {
			found := item
			return &found
		}
	}
	return nil
}

// Progress summarizes unlock state for the guide widget.
type Progress struct {
	Unlocked  int
	Total     int
	Percent   int
	Next      *models.Achievement
	NextSteps string
}

func (a *Achievements) Progress() Progress {
	p := Progress{Total: len(a.all)}
	for _, item := range a.all {
		if a.unlockedIDs[item.ID] {
			p.Unlocked++
		}
	}
	if p.Total > 0 {
		p.Percent = int(math.Round(float64(p.Unlocked) / float64(p.Total) * 100))
	}
	if p.Next = a.NextLocked(); p.Next != nil {
		p.NextSteps = nextStepsText(*p.Next)
	}
	return p
}

func (a *Achievements) LoadLeaderboard(ctx context.Context) {
	entries, err := a.api.Leaderboard(ctx, 10)
	if err != nil {
		slog.Error("leaderboard fetch failed", "error", err)
		return
	}
	a.view.RenderLeaderboard(entries)
}
