// Command stubserver runs the in-memory development backend so the TUI
// can be exercised without the production server.
package main

import (
	"log"
	"log/slog"
	"net/http"
	"os"

	"cantara-client/internal/devstub"
	"cantara-client/internal/logger"
)

func main() {
	logger.Init(os.Stdout)

	addr := os.Getenv("CANTARA_STUB_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	slog.Info("stub backend listening", "addr", addr)
	if err := http.ListenAndServe(addr, devstub.NewServer()); err != nil {
		log.Fatalf("stubserver: %v", err)
	}
}
