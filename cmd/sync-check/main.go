// ABOUTME: One-shot sync probe
// ABOUTME: Runs a single check with the configured checker and reports the offset
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/harperreed/clockwidget/internal/app"
	"github.com/harperreed/clockwidget/internal/config"
	"github.com/jonboulle/clockwork"
)

var (
	mode    = flag.String("sync", "", "Sync checker: simulated or ntp")
	server  = flag.String("ntp-server", "", "NTP server")
	timeout = flag.Duration("timeout", 0, "Check timeout")
	fail    = flag.Bool("fail", false, "Make the simulated checker fail")
)

func main() {
	flag.Parse()

	log.SetFlags(log.Ltime | log.Lmicroseconds)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *mode != "" {
		cfg.Sync.Mode = *mode
	}
	if *server != "" {
		cfg.Sync.Server = *server
	}
	if *timeout > 0 {
		cfg.Sync.Timeout = *timeout
	}
	if *fail {
		cfg.Sync.Fail = true
	}

	checker, err := app.NewChecker(cfg.Sync, clockwork.NewRealClock())
	if err != nil {
		log.Fatalf("Failed to create checker: %v", err)
	}

	fmt.Printf("Running %s sync check...\n", cfg.Sync.Mode)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Sync.Timeout+cfg.Sync.Latency)
	defer cancel()

	start := time.Now()
	offset, err := checker.Check(ctx)
	elapsed := time.Since(start)
	if err != nil {
		fmt.Printf("FAILED after %v: %v\n", elapsed.Round(time.Millisecond), err)
		os.Exit(1)
	}

	fmt.Printf("OK after %v: offset %v\n", elapsed.Round(time.Millisecond), offset)
}
