// ABOUTME: Entry point for the clock widget
// ABOUTME: Parses CLI flags, starts the sync loop and runs the TUI or text stream
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/harperreed/clockwidget/internal/app"
	"github.com/harperreed/clockwidget/internal/config"
	"github.com/harperreed/clockwidget/internal/ui"
	"github.com/harperreed/clockwidget/internal/version"
)

var (
	fps          = flag.Int("fps", 0, "Display refresh rate (default from config, 30)")
	noCentis     = flag.Bool("no-centis", false, "Hide the centisecond field")
	syncMode     = flag.String("sync", "", "Sync checker: simulated or ntp")
	syncInterval = flag.Duration("sync-interval", 0, "Time between sync checks")
	ntpServer    = flag.String("ntp-server", "", "NTP server for -sync ntp")
	failSync     = flag.Bool("fail-sync", false, "Make the simulated checker fail")
	correct      = flag.Bool("correct", false, "Add the measured offset to the displayed time")
	logFile      = flag.String("log-file", "", "Log file path")
	noTUI        = flag.Bool("no-tui", false, "Disable TUI, stream a text readout instead")
	inline       = flag.Bool("inline", false, "Start inline instead of on the alternate screen")
	showVersion  = flag.Bool("version", false, "Print version and exit")
)

func main() {
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String())
		return
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid flags: %v", err)
	}

	useTUI := !cfg.UI.NoTUI

	// Set up logging
	f, err := os.OpenFile(cfg.Log.File, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		log.Fatalf("error opening log file: %v", err)
	}
	defer func() { _ = f.Close() }()

	if useTUI {
		// TUI mode: log only to file
		log.SetOutput(f)
	} else {
		// Streaming mode: log to both stdout and file
		log.SetOutput(io.MultiWriter(os.Stdout, f))
	}

	log.Printf("Starting %s", version.String())

	widget, err := app.New(cfg, nil)
	if err != nil {
		log.Fatalf("Failed to create widget: %v", err)
	}
	if err := widget.Start(); err != nil {
		log.Fatalf("Failed to start widget: %v", err)
	}
	defer widget.Stop()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	if !useTUI {
		ctx, cancel := context.WithCancel(context.Background())
		go func() {
			<-sigChan
			log.Printf("Shutting down...")
			cancel()
		}()
		widget.Stream(ctx, os.Stdout, time.Second)
		return
	}

	controls := ui.NewControls()
	fullscreen := ui.NewTerminalFullscreen(os.Stdout, cfg.UI.Fullscreen)
	prog, err := ui.Run(widget.Source(), ui.Options{
		FrameInterval: cfg.FrameInterval(),
		ShowCentis:    cfg.Display.Centis,
		Fullscreen:    fullscreen,
		Controls:      controls,
	})
	if err != nil {
		log.Fatalf("Failed to start TUI: %v", err)
	}

	done := make(chan struct{})
	go func() {
		if _, err := prog.Run(); err != nil {
			log.Printf("TUI error: %v", err)
		}
		close(done)
	}()

	select {
	case <-sigChan:
		log.Printf("Received interrupt, shutting down...")
		prog.Quit()
		<-done
	case <-controls.Quit:
		log.Printf("Quit requested")
		<-done
	case <-done:
	}

	log.Printf("Stopped")
}

// applyFlags lays explicitly set flags over the loaded config
func applyFlags(cfg *config.Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "fps":
			cfg.Display.FPS = *fps
		case "no-centis":
			cfg.Display.Centis = !*noCentis
		case "sync":
			cfg.Sync.Mode = *syncMode
		case "sync-interval":
			cfg.Sync.Interval = *syncInterval
		case "ntp-server":
			cfg.Sync.Server = *ntpServer
		case "fail-sync":
			cfg.Sync.Fail = *failSync
		case "correct":
			cfg.Sync.Correct = *correct
		case "log-file":
			cfg.Log.File = *logFile
		case "no-tui":
			cfg.UI.NoTUI = *noTUI
		case "inline":
			cfg.UI.Fullscreen = !*inline
		}
	})
}
