package models

import "encoding/json"

// Conversation roles as sent back to the agent endpoint.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

type ConversationTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// AgentRequest carries either a fresh user input or a confirmed action,
// always together with the rolling transcript.
type AgentRequest struct {
	UserInput           string             `json:"user_input,omitempty"`
	ConversationHistory []ConversationTurn `json:"conversation_history"`
	ConfirmedAction     *ConfirmedAction   `json:"confirmed_action,omitempty"`
}

type ConfirmedAction struct {
	Intent string            `json:"intent"`
	Params map[string]string `json:"params"`
}

// Agent response discriminators.
const (
	ResponseText         = "text"
	ResponseNavigate     = "navigate"
	ResponseConfirmation = "confirmation_required"
	ResponseContentCard  = "content_card"
)

// Content card discriminators.
const (
	CardSongList   = "song_list"
	CardVideoList  = "video_list"
	CardLyricsCard = "lyrics_card"
)

// AgentResponse is the typed union returned by POST /api/agent/chat.
// Data is decoded lazily per card type.
type AgentResponse struct {
	ResponseType  string          `json:"response_type"`
	TextResponse  string          `json:"text_response,omitempty"`
	Path          string          `json:"path,omitempty"`
	CardType      string          `json:"card_type,omitempty"`
	Data          json.RawMessage `json:"data,omitempty"`
	NewlyUnlocked []Achievement   `json:"newly_unlocked,omitempty"`
	Error         string          `json:"error,omitempty"`
}

// Song as rendered in a song_list card.
type Song struct {
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Artist string `json:"artist,omitempty"`
}

// Video as rendered in a video_list card.
type Video struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	Summary string `json:"summary,omitempty"`
}

type LyricsCard struct {
	Lyrics              string               `json:"lyrics"`
	Theme               string               `json:"theme"`
	NavigateInstruction *NavigateInstruction `json:"navigate_instruction,omitempty"`
}

// NavigateInstruction is the optional composer hand-off attached to a
// lyrics card. Params may carry auto_fill_lyrics.
type NavigateInstruction struct {
	Path   string            `json:"path"`
	Params map[string]string `json:"params,omitempty"`
}

// ConfirmationData is the payload of a confirmation_required response.
type ConfirmationData struct {
	Intent string            `json:"intent"`
	Params map[string]string `json:"params"`
}

// Guide action discriminators.
const (
	GuideNavigate     = "navigate"
	GuideTextResponse = "text_response"
)

type GuideRequest struct {
	Query string `json:"query"`
}

type GuideResponse struct {
	Action       string `json:"action"`
	Message      string `json:"message,omitempty"`
	Path         string `json:"path,omitempty"`
	Label        string `json:"label,omitempty"`
	IntroMessage string `json:"intro_message,omitempty"`
}

// HistoryItem is one persisted question/answer pair. The same shape is used
// for the guest-mode local store and the server-held history.
type HistoryItem struct {
	Question  string `json:"question"`
	Answer    string `json:"answer"`
	Timestamp string `json:"timestamp"`
}

type HistoryResponse struct {
	History []HistoryItem `json:"history"`
}
