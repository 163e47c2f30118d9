package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/ayusman/mudra/internal/action"
	"github.com/ayusman/mudra/internal/app"
	"github.com/ayusman/mudra/internal/config"
	"github.com/ayusman/mudra/internal/gesture"
	"github.com/ayusman/mudra/internal/server"
	"github.com/ayusman/mudra/internal/store"
	"github.com/ayusman/mudra/internal/tray"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	source := flag.String("source", "", "camera index or video file path (overrides config)")
	record := flag.String("record", "", "directory to record the annotated session into (overrides config)")
	addr := flag.String("addr", "", "dashboard listen address (overrides config)")
	flag.Parse()

	fmt.Println("Mudra - AI Virtual Mouse")

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *source != "" {
		cfg.Source = *source
	}
	if *record != "" {
		cfg.Record = *record
	}
	if *addr != "" {
		cfg.Addr = *addr
	}

	dataDir := config.ExpandPath(cfg.DataDir)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}

	st, err := store.New(filepath.Join(dataDir, "mudra.db"))
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer st.Close()

	a := app.New(app.Config{
		Source:          cfg.Source,
		RecordDir:       cfg.Record,
		Store:           st,
		IdleFPS:         int(cfg.Capture.IdleFPS),
		ActiveFPS:       int(cfg.Capture.ActiveFPS),
		MotionThreshold: cfg.Capture.MotionThreshold,
		Gesture:         cfg.GestureConfig(),
	}, action.NewRobotgoBackend())

	enabled := st.Settings().GetBool(store.SettingEnabled, true)
	a.SetEnabled(enabled)

	srv := server.New(server.Config{
		StaticDir: findWebDir(dataDir),
		Store:     st,
		Camera:    a.Camera(),
		Status: func() server.Status {
			return server.Status{
				Enabled:     a.IsEnabled(),
				Paused:      a.Paused(),
				FPS:         a.FPS(),
				LastGesture: a.LastGesture(),
			}
		},
	})

	if err := a.Start(); err != nil {
		log.Fatalf("Failed to start pipeline: %v", err)
	}
	defer a.Stop()

	go func() {
		fmt.Printf("Dashboard listening on %s\n", cfg.Addr)
		if err := srv.ListenAndServe(cfg.Addr); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	t := tray.New()
	t.OnToggle(func(on bool) {
		a.SetEnabled(on)
		if err := st.Settings().SetBool(store.SettingEnabled, on); err != nil {
			log.Printf("Failed to persist enabled state: %v", err)
		}
	})
	t.OnDashboard(func() {
		fmt.Printf("Dashboard: http://localhost%s\n", cfg.Addr)
	})
	t.OnQuit(func() {
		a.Stop()
	})

	a.OnGesture(func(e gesture.Event) {
		srv.Events().Publish(e)
		if e.Kind != gesture.KindMove {
			t.SetLastGesture(e.Kind.String())
		}
	})

	// Blocks until the tray's quit item is selected.
	t.Run()
}

// findWebDir searches for the dashboard assets in common locations.
// Returns the first existing directory or empty string if none found.
func findWebDir(dataDir string) string {
	candidates := []string{"web", "../web", filepath.Join(dataDir, "web")}
	for _, p := range candidates {
		if info, err := os.Stat(p); err == nil && info.IsDir() {
			if abs, err := filepath.Abs(p); err == nil {
				return abs
			}
			return p
		}
	}
	return ""
}
