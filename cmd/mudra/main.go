package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/ayusman/mudra/internal/app"
	"github.com/ayusman/mudra/internal/config"
	"github.com/ayusman/mudra/internal/server"
	"github.com/ayusman/mudra/internal/store"
	"github.com/ayusman/mudra/internal/tray"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	flag.Parse()

	fmt.Println("Mudra - Gaze & Gesture Recognition")

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize the store
	dbPath := cfg.DatabasePath
	if dbPath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			log.Fatalf("Failed to get home directory: %v", err)
		}

		dbDir := filepath.Join(homeDir, ".mudra")
		if err := os.MkdirAll(dbDir, 0755); err != nil {
			log.Fatalf("Failed to create data directory: %v", err)
		}
		dbPath = filepath.Join(dbDir, "mudra.db")
	}

	st, err := store.New(dbPath)
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer st.Close()

	// Build the recognition pipeline
	a := app.New(app.Config{
		Store:          st,
		CameraID:       cfg.CameraID,
		MotionThresh:   cfg.MotionThreshold,
		GazeThresholds: cfg.GazeThresholds(),
		GestureConfig:  cfg.GestureClassifierConfig(),
	})

	// Fan recognition results out to WebSocket clients and the tray
	hub := server.NewHub()
	t := tray.New()
	a.OnResult = func(r app.Result) {
		hub.Publish(r)
		t.SetLastGesture(string(r.Gesture))
		if len(r.Gazes) > 0 {
			t.SetLastGaze(string(r.Gazes[0]))
		}
	}

	// Find web directory
	webDir := findWebDir()
	if webDir != "" {
		fmt.Printf("Serving static files from: %s\n", webDir)
	}

	// Configure and start server
	srv := server.New(server.Config{
		StaticDir: webDir,
		Store:     st,
		Camera:    a.Camera(),
		Hub:       hub,
	})

	go func() {
		fmt.Printf("Starting server on %s\n", cfg.ListenAddr)
		if err := srv.ListenAndServe(cfg.ListenAddr); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Start the recognition pipeline
	a.SetEnabled(true)
	if err := a.Start(); err != nil {
		log.Printf("Failed to start pipeline: %v", err)
	}

	// Wire tray callbacks and block on the tray loop
	t.OnToggle(func(enabled bool) {
		a.SetEnabled(enabled)
	})
	t.OnQuit(func() {
		a.Stop()
	})
	t.Run()
}

// findWebDir searches for the web directory in common locations.
// It checks: "web", "../web", "../../web", and ~/.mudra/web.
// Returns the first existing directory or empty string if none found.
func findWebDir() string {
	// Check relative paths from current working directory
	relativePaths := []string{"web", "../web", "../../web"}
	for _, p := range relativePaths {
		if info, err := os.Stat(p); err == nil && info.IsDir() {
			absPath, err := filepath.Abs(p)
			if err == nil {
				return absPath
			}
			return p
		}
	}

	// Check home directory
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	homeWebDir := filepath.Join(homeDir, ".mudra", "web")
	if info, err := os.Stat(homeWebDir); err == nil && info.IsDir() {
		return homeWebDir
	}

	return ""
}
