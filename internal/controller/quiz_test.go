package controller

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"cantara-client/internal/models"
)

type fakeQuizAPI struct {
	questions []models.QuizQuestion
	fetchErr  error
	results   map[int]*models.SubmitAnswerResult
	submitErr error
	stats     models.QuizStats
	board     []models.LeaderboardEntry
}

func (f *fakeQuizAPI) AuthStatus(ctx context.Context) (*models.AuthStatus, error) {
	return &models.AuthStatus{LoggedIn: true, Username: "ada", UserID: 1}, nil
}

func (f *fakeQuizAPI) QuizQuestions(ctx context.Context, count int) ([]models.QuizQuestion, error) {
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	return f.questions, nil
}

func (f *fakeQuizAPI) SubmitAnswer(ctx context.Context, req models.SubmitAnswerRequest) (*models.SubmitAnswerResult, error) {
	if f.submitErr != nil {
		return nil, f.submitErr
	}
	return f.results[req.QuestionID], nil
}

func (f *fakeQuizAPI) QuizStats(ctx context.Context) (*models.QuizStats, error) {
	return &f.stats, nil
}

func (f *fakeQuizAPI) QuizLeaderboard(ctx context.Context, limit int) ([]models.LeaderboardEntry, error) {
	return f.board, nil
}

type quizViewRecorder struct {
	startErrors    []string
	shownQuestions []int
	optionsEnabled []bool
	feedback       []struct{ correct, selected int; wrong bool }
	floating       []int
	scoreAnims     [][2]int
	nextShown      int
	results        []QuizResultsSummary
	toasts         []models.Achievement
	stats          []*models.QuizStats
	board          [][]models.LeaderboardEntry
}

func (v *quizViewRecorder) ShowStart()                {}
func (v *quizViewRecorder) ShowStartError(msg string) { v.startErrors = append(v.startErrors, msg) }
func (v *quizViewRecorder) ShowQuestion(number, total int, q models.QuizQuestion) {
	v.shownQuestions = append(v.shownQuestions, number)
}
func (v *quizViewRecorder) SetOptionsEnabled(enabled bool) {
	v.optionsEnabled = append(v.optionsEnabled, enabled)
}
func (v *quizViewRecorder) MarkFeedback(correctIdx, selectedIdx int, wrong bool) {
	v.feedback = append(v.feedback, struct {
		correct, selected int
		wrong             bool
	}{correctIdx, selectedIdx, wrong})
}
func (v *quizViewRecorder) ShowFloatingPoints(points, optionIdx int) {
	v.floating = append(v.floating, points)
}
func (v *quizViewRecorder) AnimateScore(from, to int) {
	v.scoreAnims = append(v.scoreAnims, [2]int{from, to})
}
func (v *quizViewRecorder) ShowNextButton() { v.nextShown++ }
func (v *quizViewRecorder) ShowResults(r QuizResultsSummary) {
	v.results = append(v.results, r)
}
func (v *quizViewRecorder) ShowAchievementToast(a models.Achievement) {
	v.toasts = append(v.toasts, a)
}
func (v *quizViewRecorder) RenderStats(stats *models.QuizStats) {
	v.stats = append(v.stats, stats)
}
func (v *quizViewRecorder) RenderLeaderboard(entries []models.LeaderboardEntry) {
	v.board = append(v.board, entries)
}

func fiveQuestions() []models.QuizQuestion {
	qs := make([]models.QuizQuestion, 5)
	for i := range qs {
		qs[i] = models.QuizQuestion{
			ID:       i + 1,
			Question: "q",
			OptionA:  "a", OptionB: "b", OptionC: "c", OptionD: "d",
			Difficulty: "easy",
			Points:     20,
		}
	}
	return qs
}

func TestTierFor(t *testing.T) {
	tests := []struct {
		correct int
		want    Tier
	}{
		{5, TierTrophy},
		{4, TierCelebration},
		{3, TierEncouragement},
		{2, TierMotivation},
		{0, TierMotivation},
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, TierFor(tc.correct, 5), "correct=%d", tc.correct)
	}
}

func TestScoreAnimationCurve(t *testing.T) {
	// Ease-out cubic: starts fast, settles exactly on the target.
	require.Equal(t, 80, ScoreAt(80, 100, 0))
	require.Equal(t, 100, ScoreAt(80, 100, 1))

	halfway := ScoreAt(80, 100, 0.5)
	require.Greater(t, halfway, 90, "ease-out covers most ground early")
	require.LessOrEqual(t, halfway, 100)
}

func TestStartEmptyBatchStaysOnStart(t *testing.T) {
	api := &fakeQuizAPI{}
	view := &quizViewRecorder{}
	quiz := NewQuiz(api, view, 5)

	quiz.Start(context.Background())

	require.Len(t, view.startErrors, 1)
	require.Empty(t, view.shownQuestions)
	require.Equal(t, QuizStart, quiz.State())
}

func TestStartFetchErrorStaysOnStart(t *testing.T) {
	api := &fakeQuizAPI{fetchErr: errors.New("boom")}
	view := &quizViewRecorder{}
	quiz := NewQuiz(api, view, 5)

	quiz.Start(context.Background())

	require.Len(t, view.startErrors, 1)
	require.Equal(t, QuizStart, quiz.State())
}

func TestCorrectAnswerScoresAndAnimates(t *testing.T) {
	api := &fakeQuizAPI{
		questions: fiveQuestions(),
		stats:     models.QuizStats{QuizScore: 80},
		results: map[int]*models.SubmitAnswerResult{
			1: {Success: true, IsCorrect: true, CorrectAnswer: "B", ScoreEarned: 20},
		},
	}
	view := &quizViewRecorder{}
	quiz := NewQuiz(api, view, 5)

	quiz.RefreshStats(context.Background())
	quiz.Start(context.Background())
	quiz.Select(context.Background(), 1)

	require.Equal(t, [][2]int{{80, 100}}, view.scoreAnims, "prior score 80 + 20 earned settles at 100")
	require.Equal(t, []int{20}, view.floating)

	fb := view.feedback[0]
	require.Equal(t, 1, fb.correct, "correct option marked")
	require.False(t, fb.wrong, "selected option not marked wrong")

	correct, score := quiz.Counts()
	require.Equal(t, 1, correct)
	require.Equal(t, 20, score)
}

func TestWrongAnswerLeavesScoreAndMarksBoth(t *testing.T) {
	api := &fakeQuizAPI{
		questions: fiveQuestions(),
		results: map[int]*models.SubmitAnswerResult{
			1: {Success: true, IsCorrect: false, CorrectAnswer: "C", ScoreEarned: 0},
		},
	}
	view := &quizViewRecorder{}
	quiz := NewQuiz(api, view, 5)

	quiz.Start(context.Background())
	quiz.Select(context.Background(), 0)

	require.Empty(t, view.scoreAnims, "score unchanged on a wrong answer")
	require.Empty(t, view.floating)

	fb := view.feedback[0]
	require.Equal(t, 2, fb.correct, "exactly one option marked green: the correct one")
	require.Equal(t, 0, fb.selected, "exactly one option marked red: the selected one")
	require.True(t, fb.wrong)
}

func TestDoubleSelectSubmitsOnce(t *testing.T) {
	api := &fakeQuizAPI{
		questions: fiveQuestions(),
		results: map[int]*models.SubmitAnswerResult{
			1: {Success: true, IsCorrect: true, CorrectAnswer: "A", ScoreEarned: 20},
		},
	}
	view := &quizViewRecorder{}
	quiz := NewQuiz(api, view, 5)

	quiz.Start(context.Background())
	quiz.Select(context.Background(), 0)
	quiz.Select(context.Background(), 0)

	require.Len(t, view.feedback, 1, "second press is a no-op")
}

func TestSubmitFailureReenablesOptions(t *testing.T) {
	api := &fakeQuizAPI{
		questions: fiveQuestions(),
		submitErr: errors.New("network"),
	}
	view := &quizViewRecorder{}
	quiz := NewQuiz(api, view, 5)

	quiz.Start(context.Background())
	quiz.Select(context.Background(), 0)

	require.Equal(t, []bool{false, true}, view.optionsEnabled, "disabled on submit, re-enabled on failure")
	require.Equal(t, QuizInQuestion, quiz.State())
}

func TestFullRunReachesResults(t *testing.T) {
	results := make(map[int]*models.SubmitAnswerResult)
	for i := 1; i <= 5; i++ {
		correct := i <= 4 // 4 of 5
		results[i] = &models.SubmitAnswerResult{
			Success: true, IsCorrect: correct, CorrectAnswer: "A", ScoreEarned: 20,
		}
	}
	if !results[5].IsCorrect {
		results[5].ScoreEarned = 0
	}

	api := &fakeQuizAPI{questions: fiveQuestions(), results: results}
	view := &quizViewRecorder{}
	quiz := NewQuiz(api, view, 5)

	quiz.Start(context.Background())
	for i := 0; i < 5; i++ {
		quiz.Select(context.Background(), 0)
		quiz.Next(context.Background())
	}

	require.Len(t, view.results, 1)
	r := view.results[0]
	require.Equal(t, 4, r.Correct)
	require.Equal(t, 5, r.Total)
	require.Equal(t, 80, r.Points)
	require.Equal(t, TierCelebration, r.Tier)
	require.Equal(t, QuizResults, quiz.State())
}

func TestInlineUnlockShowsToast(t *testing.T) {
	api := &fakeQuizAPI{
		questions: fiveQuestions(),
		results: map[int]*models.SubmitAnswerResult{
			1: {
				Success: true, IsCorrect: true, CorrectAnswer: "A", ScoreEarned: 10,
				NewlyUnlocked: []models.Achievement{{ID: 7, Name: "First Steps"}},
			},
		},
	}
	view := &quizViewRecorder{}
	quiz := NewQuiz(api, view, 5)

	quiz.Start(context.Background())
	quiz.Select(context.Background(), 0)

	require.Len(t, view.toasts, 1)
	require.Equal(t, "First Steps", view.toasts[0].Name)
	require.NotEmpty(t, view.stats, "unlock triggers a stats refresh")
}

func TestRestartFetchesFreshBatch(t *testing.T) {
	api := &fakeQuizAPI{questions: fiveQuestions(), results: map[int]*models.SubmitAnswerResult{}}
	view := &quizViewRecorder{}
	quiz := NewQuiz(api, view, 5)

	quiz.Start(context.Background())
	quiz.Restart(context.Background())

	require.Equal(t, []int{1, 1}, view.shownQuestions, "restart re-enters question one")
	correct, score := quiz.Counts()
	require.Zero(t, correct)
	require.Zero(t, score)
}
