package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"cantara-client/internal/models"
)

func (c *Client) QuizQuestions(ctx context.Context, count int) ([]models.QuizQuestion, error) {
	var payload struct {
		Questions []models.QuizQuestion `json:"questions"`
	}
	path := withQuery("/api/quiz/questions", url.Values{"count": {strconv.Itoa(count)}})
	if err := c.do(ctx, http.MethodGet, path, nil, &payload); err != nil {
		return nil, err
	}
	return payload.Questions, nil
}

func (c *Client) SubmitAnswer(ctx context.Context, req models.SubmitAnswerRequest) (*models.SubmitAnswerResult, error) {
	var result models.SubmitAnswerResult
	if err := c.do(ctx, http.MethodPost, "/api/quiz/submit", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) QuizStats(ctx context.Context) (*models.QuizStats, error) {
	var stats models.QuizStats
	if err := c.do(ctx, http.MethodGet, "/api/quiz/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// QuizLeaderboard ranks by quiz score only.
func (c *Client) QuizLeaderboard(ctx context.Context, limit int) ([]models.LeaderboardEntry, error) {
	var entries []models.LeaderboardEntry
	path := withQuery("/api/quiz/leaderboard", url.Values{"limit": {strconv.Itoa(limit)}})
	if err := c.do(ctx, http.MethodGet, path, nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Leaderboard ranks by total score (quiz plus achievements).
func (c *Client) Leaderboard(ctx context.Context, limit int) ([]models.LeaderboardEntry, error) {
	var entries []models.LeaderboardEntry
	path := withQuery("/api/leaderboard", url.Values{"limit": {strconv.Itoa(limit)}})
	if err := c.do(ctx, http.MethodGet, path, nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
