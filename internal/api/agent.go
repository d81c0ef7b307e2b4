package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"cantara-client/internal/models"
)

func (c *Client) AgentChat(ctx context.Context, req models.AgentRequest) (*models.AgentResponse, error) {
	var resp models.AgentResponse
	if err := c.do(ctx, http.MethodPost, "/api/agent/chat", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) GuideCommand(ctx context.Context, query string) (*models.GuideResponse, error) {
	var resp models.GuideResponse
	if err := c.do(ctx, http.MethodPost, "/api/guide/command", models.GuideRequest{Query: query}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ChatHistory cache-busts with a timestamp query, as intermediaries were
// observed serving stale history otherwise.
func (c *Client) ChatHistory(ctx context.Context) ([]models.HistoryItem, error) {
	var payload models.HistoryResponse
	path := withQuery("/api/chat/history", url.Values{
		"t": {strconv.FormatInt(time.Now().UnixMilli(), 10)},
	})
	if err := c.do(ctx, http.MethodGet, path, nil, &payload); err != nil {
		return nil, err
	}
	return payload.History, nil
}

// ClearChatHistory deletes the server-held transcript. Success is reported
// only when the backend acknowledges with success=true.
func (c *Client) ClearChatHistory(ctx context.Context) (bool, error) {
	var result struct {
		Success bool `json:"success"`
	}
	if err := c.do(ctx, http.MethodDelete, "/api/chat/history", nil, &result); err != nil {
		return false, err
	}
	return result.Success, nil
}
