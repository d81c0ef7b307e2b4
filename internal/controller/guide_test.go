package controller

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"cantara-client/internal/models"
)

type fakeGuideAPI struct {
	resp    *models.GuideResponse
	err     error
	queries []string
}

func (f *fakeGuideAPI) GuideCommand(ctx context.Context, query string) (*models.GuideResponse, error) {
	f.queries = append(f.queries, query)
	return f.resp, f.err
}

type guideViewRecorder struct {
	userQueries []string
	replies     []string
	navigations [][2]string
	busyStates  []bool
}

func (v *guideViewRecorder) AppendUserQuery(text string) {
	v.userQueries = append(v.userQueries, text)
}
func (v *guideViewRecorder) AppendGuideReply(text string) { v.replies = append(v.replies, text) }
func (v *guideViewRecorder) AppendNavigation(path, label string) {
	v.navigations = append(v.navigations, [2]string{path, label})
}
func (v *guideViewRecorder) SetBusy(busy bool) { v.busyStates = append(v.busyStates, busy) }

func TestAskBlankIsIgnored(t *testing.T) {
	apiClient := &fakeGuideAPI{}
	view := &guideViewRecorder{}
	guide := NewGuide(apiClient, view)

	guide.Ask(context.Background(), "   ")

	require.Empty(t, view.userQueries)
	require.Empty(t, apiClient.queries)
}

func TestAskCannedResponderSkipsBackend(t *testing.T) {
	apiClient := &fakeGuideAPI{}
	view := &guideViewRecorder{}
	guide := NewGuide(apiClient, view, func(q string) (string, bool) {
		if containsAny(q, "score") {
			return "canned answer", true
		}
		return "", false
	})

	guide.Ask(context.Background(), "how is my score?")

	require.Equal(t, []string{"canned answer"}, view.replies)
	require.Empty(t, apiClient.queries, "a canned match never reaches the backend")
	require.Equal(t, []bool{true, false}, view.busyStates)
}

func TestAskNavigateWithIntro(t *testing.T) {
	apiClient := &fakeGuideAPI{resp: &models.GuideResponse{
		Action:       models.GuideNavigate,
		Path:         "/plaza",
		Label:        "Learning Plaza",
		IntroMessage: "The plaza has articles and videos.",
	}}
	view := &guideViewRecorder{}
	guide := NewGuide(apiClient, view)

	guide.Ask(context.Background(), "take me to the plaza")

	require.Equal(t, []string{"The plaza has articles and videos."}, view.replies)
	require.Equal(t, [][2]string{{"/plaza", "Learning Plaza"}}, view.navigations)
}

func TestAskNavigateDefaultIntro(t *testing.T) {
	apiClient := &fakeGuideAPI{resp: &models.GuideResponse{
		Action: models.GuideNavigate,
		Path:   "/circle",
		Label:  "Song Circle",
	}}
	view := &guideViewRecorder{}
	guide := NewGuide(apiClient, view)

	guide.Ask(context.Background(), "songs")

	require.Equal(t, []string{"Alright, taking you to **Song Circle**."}, view.replies)
}

func TestAskTextResponse(t *testing.T) {
	apiClient := &fakeGuideAPI{resp: &models.GuideResponse{
		Action:  models.GuideTextResponse,
		Message: "Here is what I know.",
	}}
	view := &guideViewRecorder{}
	guide := NewGuide(apiClient, view)

	guide.Ask(context.Background(), "tell me something")

	require.Equal(t, []string{"Here is what I know."}, view.replies)
	require.Empty(t, view.navigations)
}

func TestAskBackendDownShowsOfflineMessage(t *testing.T) {
	apiClient := &fakeGuideAPI{err: errors.New("dial tcp: refused")}
	view := &guideViewRecorder{}
	guide := NewGuide(apiClient, view)

	guide.Ask(context.Background(), "hello")

	require.Equal(t, []string{"Melo seems to be offline, please try again later."}, view.replies)
	require.Equal(t, []bool{true, false}, view.busyStates, "busy state released on failure")
}

func TestAskUnknownActionFallsBack(t *testing.T) {
	apiClient := &fakeGuideAPI{resp: &models.GuideResponse{Action: "dance"}}
	view := &guideViewRecorder{}
	guide := NewGuide(apiClient, view)

	guide.Ask(context.Background(), "hello")

	require.Equal(t, []string{"Sorry, I didn't catch that."}, view.replies)
}

func TestQuizPageResponders(t *testing.T) {
	responders := QuizPageResponders()

	reply, ok := responders[0]("how do I earn points?")
	require.True(t, ok)
	require.Contains(t, reply, "earn points")

	reply, ok = responders[1]("what achievements are there?")
	require.True(t, ok)
	require.Contains(t, reply, "Achievements")

	_, ok = responders[0]("unrelated question")
	require.False(t, ok)
}

func TestAchievementsProgressResponderReadsLive(t *testing.T) {
	progress := Progress{
		Unlocked: 2, Total: 5, Percent: 40,
		Next:      &models.Achievement{Name: "Getting Warmer", Description: "Ten correct answers"},
		NextSteps: "10 correct answers",
	}
	responders := AchievementsPageResponders(func() Progress { return progress })

	reply, ok := responders[1]("what is my progress?")
	require.True(t, ok)
	require.Contains(t, reply, "2/5 (40%)")
	require.Contains(t, reply, "Getting Warmer")

	progress.Next = nil
	reply, ok = responders[1]("my progress?")
	require.True(t, ok)
	require.Contains(t, reply, "unlocked everything")
}
