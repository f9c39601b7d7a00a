package main

import (
	"io"
	"os"

	"shopfloor/config"
	"shopfloor/dashboard"
	"shopfloor/domain/workorder"
	"shopfloor/event"
	"shopfloor/fixtures"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
)

// main runs the dashboard over its own store seeded from FIXTURE_FILE, or from the embedded fixtures.
func main() {
	cfg, err := config.ParseServiceConfigFromEnv()
	if err != nil {
		logrus.Fatalf("parse service config failed: %v", err)
	}
	// stdout belongs to the terminal UI
	logrus.SetOutput(io.Discard)

	doc, err := fixtures.Load(cfg.FixtureFile)
	if err != nil {
		logrus.SetOutput(os.Stderr)
		logrus.Fatalf("load fixtures failed: %v", err)
	}
	store, err := workorder.NewStore(event.NewBus(), doc.WorkOrders...)
	if err != nil {
		logrus.SetOutput(os.Stderr)
		logrus.Fatalf("seed work orders failed: %v", err)
	}

	if _, err := tea.NewProgram(dashboard.New(store), tea.WithAltScreen()).Run(); err != nil {
		logrus.SetOutput(os.Stderr)
		logrus.Fatalf("dashboard failed: %v", err)
	}
}
