// cmd/sqlpane/main.go
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sqlpane/sqlpane/internal/config"
	"github.com/sqlpane/sqlpane/internal/db"
	"github.com/sqlpane/sqlpane/internal/history"
	"github.com/sqlpane/sqlpane/internal/ui"
)

func main() {
	driverType := flag.String("driver", "sqlite", "Database driver: postgres, mysql, sqlite")
	database := flag.String("database", "", "Database name or file path")
	host := flag.String("host", "localhost", "Database host")
	port := flag.Int("port", 0, "Database port (0 = driver default)")
	user := flag.String("user", "", "Database user")
	connName := flag.String("name", "", "Saved connection name from config")
	theme := flag.String("theme", "", "Color theme: dark or light")
	debug := flag.Bool("debug", false, "Enable debug logging to debug.log")
	flag.Parse()

	if *debug {
		f, err := tea.LogToFile("debug.log", "debug")
		if err != nil {
			fmt.Printf("fatal: could not open debug log: %v", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *theme != "" {
		cfg.Theme = *theme
	}

	params := db.ConnectParams{
		Host:     *host,
		Port:     *port,
		User:     *user,
		Password: os.Getenv("SQLPANE_PASSWORD"),
		Database: *database,
	}
	name := *connName

	// A saved connection provides defaults; flags override.
	if name != "" {
		saved := findConnection(cfg, name)
		if saved == nil {
			fmt.Fprintf(os.Stderr, "Unknown connection %q in config\n", name)
			os.Exit(1)
		}
		*driverType = saved.Type
		if params.Database == "" {
			params.Database = saved.Database
		}
		if params.User == "" {
			params.User = saved.User
		}
		if saved.Host != "" {
			params.Host = saved.Host
		}
		if params.Port == 0 {
			params.Port = saved.Port
		}
	} else {
		name = params.Database
	}

	if params.Database == "" {
		fmt.Fprintln(os.Stderr, "Usage: sqlpane -driver sqlite -database app.db")
		os.Exit(1)
	}

	if params.Port == 0 {
		switch db.DriverType(*driverType) {
		case db.Postgres:
			params.Port = 5432
		case db.MySQL:
			params.Port = 3306
		}
	}

	driver, err := db.NewDriver(db.DriverType(*driverType))
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	if err := driver.Connect(params); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to connect: %v\n", err)
		os.Exit(1)
	}
	defer driver.Close()

	historyStore, err := history.NewStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize history: %v\n", err)
		os.Exit(1)
	}
	defer historyStore.Close()

	model := ui.NewModel(cfg, name, driver, historyStore)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

func findConnection(cfg *config.Config, name string) *config.Connection {
	for i := range cfg.Connections {
		if cfg.Connections[i].Name == name {
			return &cfg.Connections[i]
		}
	}
	return nil
}
