package controller

import (
	"context"
	"log/slog"
	"math"

	"cantara-client/internal/models"
)

// QuizState is the linear answer flow. Which screen is visible is the
// whole of the state.
type QuizState int

const (
	QuizStart QuizState = iota
	QuizInQuestion
	QuizFeedback
	QuizResults
)

// Tier picks the results icon and caption. Nothing else depends on it.
type Tier int

const (
	TierTrophy Tier = iota
	TierCelebration
	TierEncouragement
	TierMotivation
)

// TierFor maps a session's accuracy to its results tier.
func TierFor(correct, total int) Tier {
	if total == 0 {
		return TierMotivation
	}
	accuracy := float64(correct) / float64(total)
	switch {
	case accuracy == 1:
		return TierTrophy
	case accuracy >= 0.8:
		return TierCelebration
	case accuracy >= 0.6:
		return TierEncouragement
	default:
		return TierMotivation
	}
}

// EaseOutCubic is the score counter's animation curve.
func EaseOutCubic(p float64) float64 {
	return 1 - math.Pow(1-p, 3)
}

// ScoreAt interpolates the displayed score at animation progress p∈[0,1].
func ScoreAt(from, to int, p float64) int {
	return from + int(math.Round(float64(to-from)*EaseOutCubic(p)))
}

// QuizResultsSummary is what the results screen shows.
type QuizResultsSummary struct {
	Correct int
	Total   int
	Points  int
	Tier    Tier
}

type QuizView interface {
	ShowStart()
	ShowStartError(msg string)
	ShowQuestion(number, total int, q models.QuizQuestion)
	SetOptionsEnabled(enabled bool)
	MarkFeedback(correctIdx, selectedIdx int, wrong bool)
	ShowFloatingPoints(points, optionIdx int)
	AnimateScore(from, to int)
	ShowNextButton()
	ShowResults(QuizResultsSummary)
	ShowAchievementToast(a models.Achievement)
	RenderStats(stats *models.QuizStats)
	RenderLeaderboard(entries []models.LeaderboardEntry)
}

type quizAPI interface {
	AuthStatus(ctx context.Context) (*models.AuthStatus, error)
	QuizQuestions(ctx context.Context, count int) ([]models.QuizQuestion, error)
	SubmitAnswer(ctx context.Context, req models.SubmitAnswerRequest) (*models.SubmitAnswerResult, error)
	QuizStats(ctx context.Context) (*models.QuizStats, error)
	QuizLeaderboard(ctx context.Context, limit int) ([]models.LeaderboardEntry, error)
}

// Quiz drives start → question → feedback → (next | results).
type Quiz struct {
	api   quizAPI
	view  QuizView
	batch int

	state     QuizState
	questions []models.QuizQuestion
	index     int
	correct   int
	score     int
	answered  bool

	// displayedScore is the quiz-score counter on screen; animations run
	// from its last settled value.
	displayedScore int

	statsSeq sequence
}

func NewQuiz(api quizAPI, view QuizView, batch int) *Quiz {
	return &Quiz{api: api, view: view, batch: batch}
}

func (q *Quiz) State() QuizState { return q.state }

// Counts reports the running session tally.
func (q *Quiz) Counts() (correct, score int) { return q.correct, q.score }

// Init loads the start-screen stats and the quiz leaderboard.
func (q *Quiz) Init(ctx context.Context) {
	q.RefreshStats(ctx)
	q.LoadLeaderboard(ctx)
}

// RefreshStats re-renders the stat counters for a logged-in user. A newer
// refresh supersedes any still in flight.
func (q *Quiz) RefreshStats(ctx context.Context) {
	gen := q.statsSeq.next()

	status, err := q.api.AuthStatus(ctx)
	if err != nil || !status.LoggedIn {
		return
	}
	stats, err := q.api.QuizStats(ctx)
	if err != nil {
		slog.Error("quiz stats fetch failed", "error", err)
		return
	}
	if !q.statsSeq.current(gen) {
		return
	}
	q.displayedScore = stats.QuizScore
	q.view.RenderStats(stats)
}

func (q *Quiz) LoadLeaderboard(ctx context.Context) {
	entries, err := q.api.QuizLeaderboard(ctx, 10)
	if err != nil {
		slog.Error("quiz leaderboard fetch failed", "error", err)
		return
	}
	q.view.RenderLeaderboard(entries)
}

// Start fetches a batch and enters the first question. An empty batch
// keeps the start screen up with a notice.
func (q *Quiz) Start(ctx context.Context) {
	questions, err := q.api.QuizQuestions(ctx, q.batch)
	if err != nil {
		slog.Error("question fetch failed", "error", err)
		q.view.ShowStartError("Failed to load questions, please try again later.")
		return
	}
	if len(questions) == 0 {
		q.view.ShowStartError("No questions available right now, please try again later.")
		return
	}

	q.questions = questions
	q.index = 0
	q.correct = 0
	q.score = 0
	q.showQuestion()
}

func (q *Quiz) showQuestion() {
	q.state = QuizInQuestion
	q.answered = false
	q.view.ShowQuestion(q.index+1, len(q.questions), q.questions[q.index])
}

// Select submits the chosen option. Options are disabled before the
// request leaves, so a double press cannot submit twice.
func (q *Quiz) Select(ctx context.Context, optionIdx int) {
	if q.state != QuizInQuestion || q.answered {
		return
	}
	if optionIdx < 0 || optionIdx > 3 {
		return
	}
	q.answered = true
	q.view.SetOptionsEnabled(false)

	question := q.questions[q.index]
	result, err := q.api.SubmitAnswer(ctx, models.SubmitAnswerRequest{
		QuestionID: question.ID,
		Answer:     OptionLetters[optionIdx],
	})
	if err != nil {
		slog.Error("answer submit failed", "error", err)
		// Terminal for this attempt; re-enable so the user can retry.
		q.answered = false
		q.view.SetOptionsEnabled(true)
		return
	}

	q.state = QuizFeedback
	correctIdx := LetterIndex(result.CorrectAnswer)
	q.view.MarkFeedback(correctIdx, optionIdx, !result.IsCorrect)

	if result.IsCorrect {
		q.correct++
		q.score += result.ScoreEarned
		q.view.ShowFloatingPoints(result.ScoreEarned, optionIdx)
		from := q.displayedScore
		q.displayedScore += result.ScoreEarned
		q.view.AnimateScore(from, q.displayedScore)
	}

	if len(result.NewlyUnlocked) > 0 {
		q.view.ShowAchievementToast(result.NewlyUnlocked[0])
		q.RefreshStats(ctx)
	}

	q.view.ShowNextButton()
}

// Next advances to the following question or the results screen.
func (q *Quiz) Next(ctx context.Context) {
	if q.state != QuizFeedback {
		return
	}
	q.index++
	if q.index >= len(q.questions) {
		q.showResults(ctx)
		return
	}
	q.showQuestion()
}

func (q *Quiz) showResults(ctx context.Context) {
	q.state = QuizResults
	q.view.ShowResults(QuizResultsSummary{
		Correct: q.correct,
		Total:   len(q.questions),
		Points:  q.score,
		Tier:    TierFor(q.correct, len(q.questions)),
	})
	q.RefreshStats(ctx)
}

// Restart re-enters the start flow with a fresh batch.
func (q *Quiz) Restart(ctx context.Context) {
	q.state = QuizStart
	q.Start(ctx)
}
