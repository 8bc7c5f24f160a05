// Command measurementtools evaluates a selection script and prints the
// measurements, surface size, content tally and preview mesh of the shape
// it selects as JSON.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"

	"github.com/mttstwrt/measurementtools/pkg/config"
)

func main() {
	cfg, err := config.Read(os.Args[1:], os.Getenv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n\n", err)
		config.Usage(os.Stderr)
		os.Exit(1)
	}
	initLogger(cfg)
	log.Debugf("Config: %#v", cfg)

	source, err := os.ReadFile(cfg.Script)
	if err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}

	app, err := NewApp(cfg, prometheus.DefaultRegisterer)
	if err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
	defer app.Close()

	report := app.Evaluate(context.Background(), string(source))

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
	if len(report.Errors) > 0 {
		app.Close()
		os.Exit(2)
	}
}

func initLogger(cfg config.Config) {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	level, err := log.ParseLevel(cfg.LoggingLevel)
	if err != nil {
		panic(err)
	}
	log.SetLevel(level)
}
