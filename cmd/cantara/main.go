package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"cantara-client/internal/api"
	"cantara-client/internal/config"
	"cantara-client/internal/controller"
	"cantara-client/internal/logger"
	"cantara-client/internal/session"
	"cantara-client/internal/ui"
)

func main() {
	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()

	// ──── Step 2: Logging ────
	// The TUI owns the screen, so logs go to a file next to the store.
	logFile := logger.InitFile(cfg.StorePath + ".log")
	if logFile != nil {
		defer logFile.Close()
	}
	slog.Info("starting cantara", "api", cfg.APIBaseURL)

	// ──── Step 3: Session Stores ────
	// Memory store plays the role of per-run session state; SQLite
	// persists across runs like browser local storage.
	localStore, err := session.OpenSQLite(cfg.StorePath)
	if err != nil {
		log.Fatalf("open local store: %v", err)
	}
	defer localStore.Close()
	sess := session.New(session.NewMemoryStore(), localStore)

	// ──── Step 4: Backend Client ────
	client := api.NewClient(cfg.APIBaseURL, cfg.RequestTimeout)

	// ──── Step 5: View + Controllers ────
	root := ui.New(ui.Options{
		ScoreAnimTime: cfg.ScoreAnimTime,
		ToastLifetime: cfg.ToastLifetime,
	})

	auth := controller.NewAuth(client, sess, root)
	nav := controller.NewNav(sess, root, auth.LoggedIn, cfg.FadeDuration)
	quiz := controller.NewQuiz(client, root, cfg.QuestionBatch)
	achievements := controller.NewAchievements(client, root)
	agent := controller.NewAgent(client, sess, root, cfg.NavigateDelay)
	guide := controller.NewGuide(client, root,
		append(controller.QuizPageResponders(),
			controller.AchievementsPageResponders(achievements.Progress)...)...)

	root.SetControllers(ui.Controllers{
		Auth:         auth,
		Nav:          nav,
		Quiz:         quiz,
		Achievements: achievements,
		Agent:        agent,
		Guide:        guide,
	})

	go auth.Refresh(context.Background())

	if err := root.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "cantara: %v\n", err)
		os.Exit(1)
	}
}
