package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"launchbox/internal/config"
	"launchbox/internal/finder"
	"launchbox/internal/menu"
	"launchbox/internal/models"
	"launchbox/internal/picker"
	"launchbox/internal/runner"
	"launchbox/internal/ui"
)

// Version info (set by ldflags)
var (
	version   = "dev"
	buildTime = "unknown"
)

func main() {
	args := os.Args[1:]

	// Preview mode, invoked by the finder's preview binding
	if len(args) == 2 && args[0] == "preview" {
		fmt.Print(ui.Preview(args[1]))
		return
	}

	refresh := false
	for _, arg := range args {
		switch arg {
		case "-v", "--version", "version":
			fmt.Printf("launchbox %s (built %s)\n", version, buildTime)
			return
		case "-h", "--help", "help":
			usage()
			return
		case "-r", "--refresh", "refresh":
			refresh = true
		case "-d", "--debug", "debug":
			log.SetLevel(log.DebugLevel)
		default:
			fmt.Fprintf(os.Stderr, "unknown argument: %s\n", arg)
			usage()
			os.Exit(1)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("load config", "err", err)
	}

	m, err := menu.New(cfg).Get(refresh)
	if err != nil {
		log.Fatal("build menu", "err", err)
	}

	app, err := pick(cfg, m)
	if err != nil {
		log.Fatal("select application", "err", err)
	}
	if app == nil {
		return
	}

	if err := runner.Launch(app, cfg.Terminal); err != nil {
		log.Fatal("launch application", "err", err)
	}
}

// pick prefers the configured external finder and falls back to the
// built-in picker when it is not installed
func pick(cfg *config.Config, m *models.Menu) (*models.App, error) {
	self, err := os.Executable()
	if err != nil {
		self = os.Args[0]
	}

	f := finder.New(cfg.Finder, self)
	if f.Available() {
		return f.Pick(m)
	}

	log.Debug("finder not installed, using built-in picker", "finder", cfg.Finder)
	return picker.Pick(m.Apps)
}

func usage() {
	fmt.Println("launchbox - desktop application launcher")
	fmt.Println()
	fmt.Println("Usage: launchbox [options]")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  -r, --refresh    Rebuild the application menu cache")
	fmt.Println("  -v, --version    Show version")
	fmt.Println("  -h, --help       Show this help")
	fmt.Println("  -d, --debug      Enable debug logging (stderr)")
}
