package models

// AuthStatus mirrors GET /api/auth/status.
type AuthStatus struct {
	LoggedIn bool   `json:"logged_in"`
	Username string `json:"username,omitempty"`
	UserID   int    `json:"user_id,omitempty"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// AuthResult is the common shape of the login/register/logout responses.
type AuthResult struct {
	Success  bool   `json:"success"`
	Username string `json:"username,omitempty"`
	Error    string `json:"error,omitempty"`
}

// Achievement is a server-defined badge. Immutable once fetched.
type Achievement struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	Icon           string `json:"icon"`
	Description    string `json:"description"`
	Category       string `json:"category"`
	ConditionType  string `json:"condition_type"`
	ConditionValue int    `json:"condition_value"`
	Points         int    `json:"points"`
}

// AchievementCatalog mirrors GET /api/achievements: the full catalog split
// into unlocked/locked by the server. Unlocked ids are a subset of all ids.
type AchievementCatalog struct {
	Unlocked      []Achievement `json:"unlocked"`
	Locked        []Achievement `json:"locked"`
	UnlockedCount int           `json:"unlocked_count"`
	TotalCount    int           `json:"total_count"`
}

type AchievementStats struct {
	TotalScore    int `json:"total_score"`
	UnlockedCount int `json:"unlocked_count"`
}

type CheckResult struct {
	Success       bool          `json:"success"`
	NewlyUnlocked []Achievement `json:"newly_unlocked"`
}

type QuizQuestion struct {
	ID          int    `json:"id"`
	Question    string `json:"question"`
	OptionA     string `json:"option_a"`
	OptionB     string `json:"option_b"`
	OptionC     string `json:"option_c"`
	OptionD     string `json:"option_d"`
	Difficulty  string `json:"difficulty"`
	Points      int    `json:"points"`
	Explanation string `json:"explanation,omitempty"`
}

// Options returns the four answer texts in A..D order.
func (q QuizQuestion) Options() [4]string {
	return [4]string{q.OptionA, q.OptionB, q.OptionC, q.OptionD}
}

type SubmitAnswerRequest struct {
	QuestionID int    `json:"question_id"`
	Answer     string `json:"answer"` // "A".."D"
}

type SubmitAnswerResult struct {
	Success       bool          `json:"success"`
	IsCorrect     bool          `json:"is_correct"`
	CorrectAnswer string        `json:"correct_answer"`
	ScoreEarned   int           `json:"score_earned"`
	Explanation   string        `json:"explanation,omitempty"`
	TotalScore    int           `json:"current_total_score,omitempty"`
	NewlyUnlocked []Achievement `json:"newly_unlocked,omitempty"`
}

type QuizStats struct {
	TotalQuestions int     `json:"total_questions"`
	TotalCorrect   int     `json:"total_correct"`
	Accuracy       float64 `json:"accuracy"`
	QuizScore      int     `json:"total_score_from_quiz"`
}

// LeaderboardEntry is read-only and refreshed per page load. TotalScore is
// populated by /api/leaderboard, QuizScore by /api/quiz/leaderboard.
type LeaderboardEntry struct {
	Rank             int    `json:"rank"`
	Username         string `json:"username"`
	TotalScore       int    `json:"total_score,omitempty"`
	QuizScore        int    `json:"quiz_score,omitempty"`
	AchievementCount int    `json:"achievement_count"`
}
