// Copyright 2026 The LexiServe Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the dictionary server and CLI [DBG] application.

LexiServe answers Scrabble word queries for French and English: validation
with point values, definitions, prefix/pattern/anagram search, and spelling
or rack suggestions. It can operate as a MessagePack IPC server for
integration with game backends, or as a CLI application for testing and
debugging.

Each language keeps its own trie index behind a three-cache layer (LRU for
validations, LFU with TTL for definitions, TTL for searches). Word lists can
be reloaded at runtime without dropping in-flight reads.

# Usage

Start the server with default settings:

	lexiserve

Use a custom data directory and enable debug mode:

	lexiserve -data /path/to/dicts -d

Run in CLI mode for interactive testing:

	lexiserve -c -lang fr -limit 10

The data directory holds one dictionary file per language, named by code:
fr.lxb, en.csv, fr.db, etc. Compiled binary lists load fastest; SQLite
exports and raw text are also accepted.

# Configuration

Runtime configuration is managed through a TOML file:

	[server]
	max_results = 64

	[cache]
	validation_size = 5000
	definition_size = 3000
	definition_ttl_secs = 3600
	search_size = 1000
	search_ttl_secs = 600

	[languages]
	enabled = ["fr", "en"]
	data_dir = "data"

The config file is automatically created with defaults if it doesn't exist.

# IPC Protocol

The server communicates via MessagePack over stdin/stdout. Requests are
processed synchronously with microsecond timing information included in
responses.

Send a validation request:

	{"id": "req1", "op": "validate", "lang": "fr", "w": "chat"}

Receive the verdict with point value:

	{"id": "req1", "w": "CHAT", "ok": true, "pts": 9, "t": 87}

Search and suggestion requests follow the same shape; see pkg/server.

# Command Line Flags

The following flags control application behavior:

	-data string
	    Directory containing dictionary files (default from config)
	-config string
	    Custom config file path
	-d  Enable debug mode with detailed logging
	-c  Run in CLI mode instead of server mode
	-lang string
	    CLI language (default from config)
	-limit int
	    Number of results to return in CLI mode (default from config)
	-version
	    Show current version
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/scrabbot/lexiserve/internal/cli"
	"github.com/scrabbot/lexiserve/pkg/config"
	"github.com/scrabbot/lexiserve/pkg/dict"
	"github.com/scrabbot/lexiserve/pkg/dictionary"
	"github.com/scrabbot/lexiserve/pkg/server"
)

const (
	Version = "0.4.0"
	AppName = "lexiserve"
	gh      = "https://github.com/scrabbot/lexiserve"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main wires config, loaders and the manager together, then hands control
// to either the IPC server or the interactive CLI.
func main() {
	sigHandler()
	defaults := config.DefaultConfig()

	showVersion := flag.Bool("version", false, "Show current version")
	dataDir := flag.String("data", "", "Directory containing dictionary files (overrides config)")
	configPath := flag.String("config", "", "Custom config file path")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for testing and debugging")
	language := flag.String("lang", defaults.CLI.DefaultLanguage, "CLI language")
	limit := flag.Int("limit", defaults.CLI.DefaultLimit, "Number of results to return in CLI mode")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}
	// stdout carries the IPC stream, logs go to stderr
	log.SetOutput(os.Stderr)

	cfg, usedPath, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Debugf("Using config file: (%s)", config.GetActiveConfigPath(usedPath))

	dir := cfg.Languages.DataDir
	if *dataDir != "" {
		dir = *dataDir
	}
	log.Debugf("Using data dir at: %s", dir)

	manager, err := dict.NewManager(cfg.Languages.Enabled, dict.CacheConfig{
		ValidationSize: cfg.Cache.ValidationSize,
		DefinitionSize: cfg.Cache.DefinitionSize,
		DefinitionTTL:  time.Duration(cfg.Cache.DefinitionTTLSecs) * time.Second,
		SearchSize:     cfg.Cache.SearchSize,
		SearchTTL:      time.Duration(cfg.Cache.SearchTTLSecs) * time.Second,
		MaxResults:     cfg.Server.MaxResults,
	})
	if err != nil {
		log.Fatalf("Failed to init dictionary manager: %v", err)
	}

	loader := dictionary.NewLoader(dir)
	if err := manager.LoadAll(context.Background(), loader.Load); err != nil {
		log.Fatalf("Failed to load dictionaries: %v", err)
	}
	for _, st := range manager.Stats() {
		log.Debugf("loaded %s: %d words", st.Language, st.Words)
	}

	if *cliMode {
		log.SetReportTimestamp(false)
		if _, err := manager.Service(*language); err != nil {
			log.Fatalf("Unknown CLI language %q (enabled: %v)", *language, manager.Languages())
		}
		handler := cli.NewInputHandler(manager, *language, *limit)
		if err := handler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	log.Debug("spawning IPC")
	srv := server.NewServer(manager, loader)

	showStartupInfo(dir, manager)

	if err := srv.Start(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// printVersion displays the styled version banner.
func printVersion() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	logger.SetStyles(styles)

	logger.Print("")
	logger.Print("[ LexiServe ] Scrabble dictionary services, fast.")
	logger.Print("", "version", Version)
	logger.Print("")
	logger.Print("use -h or --help to see available options")
	logger.Print("Github Repo", "gh", gh)
}

// showStartupInfo displays some basic info about the init process.
func showStartupInfo(dataDir string, manager *dict.Manager) {
	pid := os.Getpid()
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	fmt.Fprintln(os.Stderr, "===========")
	fmt.Fprintln(os.Stderr, " LexiServe ")
	fmt.Fprintln(os.Stderr, "===========")
	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", pid)
	log.Infof("languages: %v", manager.Languages())
	log.Infof("data dir: ( %s )", dataDir)
	log.Info("status: ready")
	fmt.Fprintln(os.Stderr, "===========")
	fmt.Fprintln(os.Stderr, "Press Ctrl+C to exit")

	log.SetLevel(currentLevel)
}
