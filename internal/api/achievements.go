package api

import (
	"context"
	"net/http"

	"cantara-client/internal/models"
)

func (c *Client) Achievements(ctx context.Context) (*models.AchievementCatalog, error) {
	var catalog models.AchievementCatalog
	if err := c.do(ctx, http.MethodGet, "/api/achievements", nil, &catalog); err != nil {
		return nil, err
	}
	return &catalog, nil
}

func (c *Client) AchievementStats(ctx context.Context) (*models.AchievementStats, error) {
	var stats models.AchievementStats
	if err := c.do(ctx, http.MethodGet, "/api/achievements/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// CheckAchievements asks the server to re-evaluate unlock conditions.
func (c *Client) CheckAchievements(ctx context.Context) (*models.CheckResult, error) {
	var result models.CheckResult
	if err := c.do(ctx, http.MethodPost, "/api/achievements/check", struct{}{}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
