/*
Package main implements the typing-assist server and CLI [DBG] application.

LexiServe provides as-you-type word suggestions and lexical insights for
text editors. Suggestions merge three streams: spell corrections for the
word under the caret, dictionary completions of its prefix, and words
already used in the document. Insights resolve a focused word into
definitions, usage examples and related words, with an English fallback
when the document language has no entry.

The engine fetches per-language resources (dictionary packs, Hunspell
aff/dic data) on demand and memoizes them for the process lifetime, so a
keystroke never waits on the network.

# Usage

Start the IPC server with default settings:

	lexiserve

Enable debug logging and preload the German resources:

	lexiserve -d -lang de

Run in CLI mode for interactive testing:

	lexiserve -c -lang en

# Configuration

Runtime configuration is read from a TOML file:

	[suggest]
	limit = 3
	min_prefix = 2
	min_spell_length = 3

	[insight]
	example_limit = 3
	related_limit = 8
	treat_bare_pack_entry_as_missing = false

A missing or unparsable config falls back to built-in defaults.

# IPC Protocol

The server communicates via MessagePack over stdin/stdout. Suggestion
requests carry the text snapshot and the caret:

	{"id": "req1", "op": "suggest", "t": "the quick fo", "sel": [12, 12], "lang": "en"}

and responses carry the ranked merge with timing information:

	{"id": "req1", "s": ["fox", "focus", "form"], "c": 3, "ms": 2}

Apply requests commit an accepted suggestion; insight requests block
until the focused word's record settles.

# CLI Mode

CLI mode reads text lines from stdin and prints suggestions with the
caret assumed at the line end; ":i <word>" resolves insights. It is
intended for development and testing new features before server mode.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/GendByteMaster/lexiserve/internal/cli"
	"github.com/GendByteMaster/lexiserve/pkg/assist"
	"github.com/GendByteMaster/lexiserve/pkg/config"
	"github.com/GendByteMaster/lexiserve/pkg/langres"
	"github.com/GendByteMaster/lexiserve/pkg/resource"
	"github.com/GendByteMaster/lexiserve/pkg/server"
)

const (
	Version = "0.3.0-beta"
	AppName = "lexiserve"
	gh      = "https://github.com/GendByteMaster/lexiserve"
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

// main wires the packages together and manages the flow; the logic
// lives in the assist, server and cli packages.
func main() {
	sigHandler()

	showVersion := flag.Bool("version", false, "Show current version")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for testing and debugging")
	lang := flag.String("lang", langres.Fallback, "Language tag to preload resources for")
	configPath := flag.String("config", config.DefaultConfigPath(), "Path to TOML config file")

	flag.Parse()

	if *showVersion {
		showVersionInfo()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	cfg := config.LoadConfig(*configPath)
	engine := assist.New(cfg, resource.NewHTTPFetcher())

	if _, ok := langres.Lookup(langres.BaseCode(*lang)); !ok {
		log.Warnf("Unsupported language %q, insight fallback only", *lang)
	} else {
		log.Debugf("Warming %s resources", *lang)
		engine.Warm(*lang)
	}

	if *cliMode {
		log.SetReportTimestamp(false)
		inputHandler := cli.NewInputHandler(engine, *lang)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	log.Debug("spawning IPC")
	srv := server.NewServer(engine, cfg)

	showStartupInfo(*lang)

	if err := srv.Start(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func showVersionInfo() {
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
	logger.Print("[ LexiServe ] Suggestions and insights while you type!")
	logger.Print("", "version", Version)
	logger.Print("")
	logger.Print("use -h or --help to see available options")
	logger.Print("Github Repo", "gh", gh)
}

// showStartupInfo displays some basic info about the init process.
func showStartupInfo(lang string) {
	pid := os.Getpid()
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	println("===========")
	println(" LexiServe ")
	println("===========")
	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", pid)
	log.Infof("language: ( %s )", lang)
	log.Info("status: ready")
	println("===========")
	println("Press Ctrl+C to exit")

	log.SetLevel(currentLevel)
}
