// ABOUTME: Entry point for the contact import CLI
// ABOUTME: Routes to import pipeline and client management commands
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"

	"github.com/ticnutai/crmport/cli"
	"github.com/ticnutai/crmport/db"
)

const version = "0.1.0"

func main() {
	// Optional .env for CRMPORT_DB_PATH and friends; absence is fine.
	_ = godotenv.Load()

	// Global flags
	showVersion := flag.Bool("version", false, "Show version and exit")
	dbPath := flag.String("db-path", "", "Database path (default: ~/.local/share/crmport/crm.db)")
	initOnly := flag.Bool("init", false, "Initialize database and exit")

	_ = flag.CommandLine.Parse(os.Args[1:])

	if *showVersion {
		fmt.Printf("crmport version %s\n", version)
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(0)
	}

	command := args[0]
	commandArgs := args[1:]

	// Checkpoint-only commands work without a database.
	switch command {
	case "status":
		if err := cli.ImportStatusCommand(commandArgs); err != nil {
			log.Fatalf("Error: %v", err)
		}
		return
	case "clear":
		if err := cli.ClearImportCommand(commandArgs); err != nil {
			log.Fatalf("Error: %v", err)
		}
		return
	}

	finalDBPath := getDatabasePath(*dbPath)
	database, err := db.OpenDatabase(finalDBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer database.Close()

	if *initOnly {
		log.Printf("Database initialized: %s", finalDBPath)
		os.Exit(0)
	}

	switch command {
	case "import":
		if err := cli.ImportCommand(database, commandArgs); err != nil {
			log.Fatalf("Error: %v", err)
		}
	case "resume":
		if err := cli.ResumeImportCommand(database, commandArgs); err != nil {
			log.Fatalf("Error: %v", err)
		}

	case "add-client":
		if err := cli.AddClientCommand(database, commandArgs); err != nil {
			log.Fatalf("Error: %v", err)
		}
	case "list-clients":
		if err := cli.ListClientsCommand(database, commandArgs); err != nil {
			log.Fatalf("Error: %v", err)
		}
	case "show-client":
		if err := cli.ShowClientCommand(database, commandArgs); err != nil {
			log.Fatalf("Error: %v", err)
		}
	case "delete-client":
		if err := cli.DeleteClientCommand(database, commandArgs); err != nil {
			log.Fatalf("Error: %v", err)
		}

	default:
		fmt.Printf("Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func getDatabasePath(dbPath string) string {
	if dbPath != "" {
		return dbPath
	}
	if envPath := os.Getenv("CRMPORT_DB_PATH"); envPath != "" {
		return envPath
	}
	return filepath.Join(xdg.DataHome, "crmport", "crm.db")
}

func printUsage() {
	fmt.Printf(`crmport v%s - Contact import toolkit

USAGE:
  crmport [global flags] <command> [flags]

GLOBAL FLAGS:
  --version              Show version and exit
  --db-path <path>       Database path (default: ~/.local/share/crmport/crm.db)
  --init                 Initialize database and exit

IMPORT COMMANDS:
  crmport import            Import contacts from a file
    --file <path>             Contacts file: CSV, vCard, JSON, or Excel (required)
    --owner <id>              Owner ID for imported clients (default: local)
    --country-code <code>     Country code for phone matching (default: 972)
    --map <field=Header>      Override a detected column mapping (repeatable)
    --yes                     Skip the review screen, import with defaults

  crmport resume            Continue an interrupted import
  crmport status            Show the saved import checkpoint
  crmport clear             Discard the saved import checkpoint

CLIENT COMMANDS:
  crmport add-client        Add a new client
    --name <name>             Client name (required)
    --email <email>           Email address
    --phone <phone>           Phone number
    --company <company>       Company name
    --position <title>        Job title
    --notes <notes>           Notes about the client
    --owner <id>              Owner ID (default: local)

  crmport list-clients      List clients
    --query <text>            Search by name, email, or phone
    --owner <id>              Filter by owner ID
    --limit <n>               Max results (default: 50)

  crmport show-client <id>  Show one client in full
  crmport delete-client <id>  Delete a client

EXAMPLES:
  # Import a Google Contacts export with interactive review
  crmport import --file contacts.csv

  # Import a vCard file without review, fixing one column by hand
  crmport import --file export.vcf --yes

  # Map an unrecognized header before importing
  crmport import --file odd.csv --map full_name=Who --map email=Mail

  # Continue after an interrupted run
  crmport resume

`, version)
}
