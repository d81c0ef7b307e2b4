package controller

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"cantara-client/internal/models"
)

type fakeAchievementsAPI struct {
	status     *models.AuthStatus
	catalog    *models.AchievementCatalog
	catalogErr error
	quizStats  *models.QuizStats
	statsErr   error
	board      []models.LeaderboardEntry
	boardErr   error
}

func (f *fakeAchievementsAPI) AuthStatus(ctx context.Context) (*models.AuthStatus, error) {
	if f.status == nil {
		return &models.AuthStatus{LoggedIn: true, Username: "ada", UserID: 1}, nil
	}
	return f.status, nil
}

func (f *fakeAchievementsAPI) Achievements(ctx context.Context) (*models.AchievementCatalog, error) {
	return f.catalog, f.catalogErr
}

func (f *fakeAchievementsAPI) QuizStats(ctx context.Context) (*models.QuizStats, error) {
	if f.statsErr != nil {
		return nil, f.statsErr
	}
	return f.quizStats, nil
}

func (f *fakeAchievementsAPI) Leaderboard(ctx context.Context, limit int) ([]models.LeaderboardEntry, error) {
	return f.board, f.boardErr
}

type achievementsViewRecorder struct {
	overviews  []Overview
	unlocked   [][]models.Achievement
	locked     [][]models.Achievement
	loadErrors []string
	details    []AchievementDetail
	board      [][]models.LeaderboardEntry
}

func (v *achievementsViewRecorder) RenderOverview(o Overview) { v.overviews = append(v.overviews, o) }
func (v *achievementsViewRecorder) RenderUnlocked(items []models.Achievement) {
	v.unlocked = append(v.unlocked, items)
}
func (v *achievementsViewRecorder) RenderLocked(items []models.Achievement) {
	v.locked = append(v.locked, items)
}
func (v *achievementsViewRecorder) ShowLoadError(msg string) {
	v.loadErrors = append(v.loadErrors, msg)
}
func (v *achievementsViewRecorder) ShowDetail(d AchievementDetail) {
	v.details = append(v.details, d)
}
func (v *achievementsViewRecorder) RenderLeaderboard(entries []models.LeaderboardEntry) {
	v.board = append(v.board, entries)
}

func sampleCatalog() *models.AchievementCatalog {
	unlocked := []models.Achievement{
		{ID: 1, Name: "First Steps", Category: "quiz", ConditionType: "quiz_correct", ConditionValue: 1, Points: 10},
		{ID: 2, Name: "First Spark", Category: "song", ConditionType: "favorite_songs", ConditionValue: 1, Points: 30},
	}
	locked := []models.Achievement{
		{ID: 3, Name: "Getting Warmer", Category: "quiz", ConditionType: "quiz_correct", ConditionValue: 10, Points: 50},
		{ID: 4, Name: "Collector", Category: "song", ConditionType: "favorite_songs", ConditionValue: 10, Points: 100},
		{ID: 5, Name: "First Voice", Category: "forum", ConditionType: "forum_posts", ConditionValue: 1, Points: 40},
	}
	return &models.AchievementCatalog{
		Unlocked:      unlocked,
		Locked:        locked,
		UnlockedCount: len(unlocked),
		TotalCount:    len(unlocked) + len(locked),
	}
}

func loadedAchievements(t *testing.T) (*Achievements, *achievementsViewRecorder) {
	t.Helper()
	api := &fakeAchievementsAPI{catalog: sampleCatalog(), quizStats: &models.QuizStats{QuizScore: 120}}
	view := &achievementsViewRecorder{}
	ach := NewAchievements(api, view)
	ach.Load(context.Background())
	return ach, view
}

func TestLoadRendersMergedCatalog(t *testing.T) {
	_, view := loadedAchievements(t)

	require.Len(t, view.overviews, 1)
	o := view.overviews[0]
	require.Equal(t, 2, o.UnlockedInCat)
	require.Equal(t, 3, o.LockedInCat)
	require.Equal(t, 40, o.ProgressPercent, "2 of 5 rounds to 40")
	require.Equal(t, 120+10+30, o.TotalScore)
}

func TestLoadNotLoggedInRendersNothing(t *testing.T) {
	api := &fakeAchievementsAPI{status: &models.AuthStatus{LoggedIn: false}}
	view := &achievementsViewRecorder{}
	ach := NewAchievements(api, view)

	ach.Load(context.Background())

	require.Empty(t, view.overviews)
	require.Empty(t, view.loadErrors)
}

func TestLoadCatalogErrorShowsMessage(t *testing.T) {
	api := &fakeAchievementsAPI{catalogErr: errors.New("boom")}
	view := &achievementsViewRecorder{}
	ach := NewAchievements(api, view)

	ach.Load(context.Background())

	require.Len(t, view.loadErrors, 1)
	require.Empty(t, view.overviews)
}

func TestLoadStatsFailureStillRendersCatalog(t *testing.T) {
	api := &fakeAchievementsAPI{catalog: sampleCatalog(), statsErr: errors.New("boom")}
	view := &achievementsViewRecorder{}
	ach := NewAchievements(api, view)

	ach.Load(context.Background())

	require.Len(t, view.overviews, 1)
	require.Equal(t, 10+30, view.overviews[0].TotalScore, "quiz portion degrades to zero")
}

func TestCategoryFilterPartitionsAndSums(t *testing.T) {
	ach, view := loadedAchievements(t)

	ach.SetCategory("quiz")

	o := view.overviews[len(view.overviews)-1]
	require.Equal(t, 1, o.UnlockedInCat)
	require.Equal(t, 1, o.LockedInCat)
	require.Equal(t, 50, o.ProgressPercent)

	gotUnlocked := view.unlocked[len(view.unlocked)-1]
	gotLocked := view.locked[len(view.locked)-1]
	require.Equal(t, o.UnlockedInCat+o.LockedInCat, len(gotUnlocked)+len(gotLocked),
		"overview counts equal the rendered grids")
	for _, item := range gotUnlocked {
		require.Equal(t, "quiz", item.Category)
	}
	for _, item := range gotLocked {
		require.Equal(t, "quiz", item.Category)
	}
}

func TestTotalScoreIgnoresCategoryFilter(t *testing.T) {
	ach, view := loadedAchievements(t)

	ach.SetCategory("forum")

	o := view.overviews[len(view.overviews)-1]
	require.Equal(t, 120+10+30, o.TotalScore, "header total never shrinks with the filter")
	require.Equal(t, 0, o.UnlockedInCat)
	require.Equal(t, 1, o.LockedInCat)
	require.Equal(t, 0, o.ProgressPercent)
}

func TestOverviewEmptyCategoryAvoidsDivideByZero(t *testing.T) {
	ach, view := loadedAchievements(t)

	ach.SetCategory("create")

	o := view.overviews[len(view.overviews)-1]
	require.Zero(t, o.UnlockedInCat)
	require.Zero(t, o.LockedInCat)
	require.Zero(t, o.ProgressPercent)
}

func TestShowDetail(t *testing.T) {
	ach, view := loadedAchievements(t)

	ach.ShowDetail(3)

	require.Len(t, view.details, 1)
	d := view.details[0]
	require.Equal(t, "Getting Warmer", d.Name)
	require.False(t, d.Unlocked)
	require.Equal(t, "🎯 Quiz", d.CategoryLabel)
	require.Equal(t, "Answer 10 questions correctly", d.ConditionText)
}

func TestProgressReportsNextLocked(t *testing.T) {
	ach, _ := loadedAchievements(t)

	p := ach.Progress()

	require.Equal(t, 2, p.Unlocked)
	require.Equal(t, 5, p.Total)
	require.Equal(t, 40, p.Percent)
	require.NotNil(t, p.Next)
	require.Equal(t, "Getting Warmer", p.Next.Name, "first locked entry in catalog order")
	require.Equal(t, "10 correct answers", p.NextSteps)
}

func TestProgressAllUnlocked(t *testing.T) {
	catalog := sampleCatalog()
	catalog.Unlocked = append(catalog.Unlocked, catalog.Locked...)
	catalog.Locked = nil
	api := &fakeAchievementsAPI{catalog: catalog, quizStats: &models.QuizStats{}}
	view := &achievementsViewRecorder{}
	ach := NewAchievements(api, view)
	ach.Load(context.Background())

	p := ach.Progress()

	require.Equal(t, 100, p.Percent)
	require.Nil(t, p.Next)
}

func TestConditionTextFallback(t *testing.T) {
	got := ConditionText(models.Achievement{ConditionType: "mystery", ConditionValue: 3})
	require.Equal(t, "Meet a special condition", got)
}

func TestCategoryLabelUnknownIsTitleCased(t *testing.T) {
	require.Equal(t, "Seasonal", CategoryLabel("seasonal"))
}
