// ABOUTME: Import CLI commands
// ABOUTME: Runs the parse, review, and execute pipeline from the command line
package cli

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/ticnutai/crmport/db"
	"github.com/ticnutai/crmport/importer"
	"github.com/ticnutai/crmport/ingest"
	"github.com/ticnutai/crmport/models"
	"github.com/ticnutai/crmport/tui"
)

// mapOverrides collects repeated --map field=Header flags.
type mapOverrides map[models.Field]string

func (m mapOverrides) String() string {
	var parts []string
	for field, header := range m {
		parts = append(parts, fmt.Sprintf("%s=%s", field, header))
	}
	return strings.Join(parts, ",")
}

func (m mapOverrides) Set(value string) error {
	name, header, found := strings.Cut(value, "=")
	if !found {
		return fmt.Errorf("expected field=header, got %q", value)
	}

	for _, field := range models.Fields {
		if string(field) == name {
			m[field] = header
			return nil
		}
	}
	return fmt.Errorf("unknown field %q (valid: %s)", name, fieldNames())
}

func fieldNames() string {
	names := make([]string, len(models.Fields))
	for i, f := range models.Fields {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

// ImportCommand parses a contacts file, classifies duplicates against the
// owner's existing clients, and imports the reviewed selection.
func ImportCommand(database *sql.DB, args []string) error {
	fs := flag.NewFlagSet("import", flag.ExitOnError)
	file := fs.String("file", "", "Contacts file to import (required)")
	owner := fs.String("owner", defaultOwner(), "Owner ID for imported clients")
	countryCode := fs.String("country-code", defaultCountryCode(), "Country code for phone normalization")
	yes := fs.Bool("yes", false, "Skip the review screen and import with defaults")
	overrides := make(mapOverrides)
	fs.Var(overrides, "map", "Override column mapping, field=Header (repeatable)")
	_ = fs.Parse(args)

	if *file == "" {
		return fmt.Errorf("--file is required")
	}

	content, err := os.ReadFile(*file)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", *file, err)
	}

	src, err := importer.LoadSource(*file, content)
	if err != nil {
		return err
	}
	if err := applyOverrides(src, overrides); err != nil {
		return err
	}

	contacts := src.Contacts()
	if len(contacts) == 0 {
		fmt.Println("No importable contacts found")
		return nil
	}
	fmt.Printf("Parsed %d of %d records from %s (%s)\n",
		len(contacts), src.RowCount(), *file, src.Format)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	existing, err := db.ListClientsByOwner(ctx, database, *owner)
	if err != nil {
		return fmt.Errorf("failed to load existing clients: %w", err)
	}

	matcher := importer.NewMatcher(existing, *countryCode)
	matcher.Classify(contacts)

	if !*yes {
		reviewed, confirmed, err := tui.Review(contacts)
		if err != nil {
			return fmt.Errorf("review failed: %w", err)
		}
		if !confirmed {
			fmt.Println("Import cancelled")
			return nil
		}
		contacts = reviewed
	}

	runner := importer.NewRunner(db.NewStore(database), importer.NewCheckpointStore(""), *owner)
	runner.SetMatcher(matcher)
	runner.Progress = printProgress

	stats, err := runner.Run(ctx, contacts)
	printSummary(stats)
	if err != nil {
		return fmt.Errorf("import incomplete: %w", err)
	}
	fmt.Println("✓ Import complete")
	return nil
}

// ResumeImportCommand continues an interrupted import from its checkpoint.
func ResumeImportCommand(database *sql.DB, args []string) error {
	fs := flag.NewFlagSet("import-resume", flag.ExitOnError)
	_ = fs.Parse(args)

	checkpoints := importer.NewCheckpointStore("")
	cp, err := checkpoints.Load()
	if err != nil {
		return describeCheckpointErr(err)
	}

	fmt.Printf("Resuming run %s at record %d of %d\n",
		cp.RunID, cp.LastProcessedIndex+1, len(cp.Contacts))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	runner := importer.NewRunner(db.NewStore(database), checkpoints, cp.OwnerID)
	runner.Progress = printProgress

	stats, err := runner.Resume(ctx)
	printSummary(stats)
	if err != nil {
		return fmt.Errorf("import incomplete: %w", err)
	}
	fmt.Println("✓ Import complete")
	return nil
}

// ImportStatusCommand shows the saved checkpoint, if any.
func ImportStatusCommand(args []string) error {
	fs := flag.NewFlagSet("import-status", flag.ExitOnError)
	_ = fs.Parse(args)

	cp, err := importer.NewCheckpointStore("").Load()
	if err != nil {
		return describeCheckpointErr(err)
	}

	fmt.Printf("Run:      %s\n", cp.RunID)
	fmt.Printf("Owner:    %s\n", cp.OwnerID)
	fmt.Printf("Progress: %d of %d records\n", cp.LastProcessedIndex, len(cp.Contacts))
	fmt.Printf("Saved:    %s\n", cp.Timestamp.Format("2006-01-02 15:04:05"))
	fmt.Printf("Stats:    %d imported, %d updated, %d skipped, %d errors\n",
		cp.Stats.Imported, cp.Stats.Updated, cp.Stats.Skipped, cp.Stats.Errors)
	return nil
}

// ClearImportCommand discards the saved checkpoint.
func ClearImportCommand(args []string) error {
	fs := flag.NewFlagSet("import-clear", flag.ExitOnError)
	_ = fs.Parse(args)

	if err := importer.NewCheckpointStore("").Clear(); err != nil {
		return fmt.Errorf("failed to clear saved import: %w", err)
	}
	fmt.Println("✓ Saved import state cleared")
	return nil
}

// applyOverrides folds --map flags into the detected mapping. vCard input
// carries structured cards and no column mapping, so overrides are rejected
// rather than silently ignored.
func applyOverrides(src *importer.Source, overrides mapOverrides) error {
	if len(overrides) == 0 {
		return nil
	}
	if src.Format == ingest.FormatVCard {
		return fmt.Errorf("--map does not apply to vCard input")
	}
	if src.Mapping == nil {
		src.Mapping = make(models.ColumnMapping)
	}
	for field, header := range overrides {
		src.Mapping[field] = header
	}
	return nil
}

// Env defaults let .env set the owner and country once; flags still win.
func defaultOwner() string {
	if owner := os.Getenv("CRMPORT_OWNER_ID"); owner != "" {
		return owner
	}
	return "local"
}

func defaultCountryCode() string {
	if code := os.Getenv("CRMPORT_COUNTRY_CODE"); code != "" {
		return code
	}
	return importer.DefaultCountryCode
}

func describeCheckpointErr(err error) error {
	switch {
	case errors.Is(err, importer.ErrNoCheckpoint):
		return fmt.Errorf("no import in progress")
	case errors.Is(err, importer.ErrStaleCheckpoint):
		return fmt.Errorf("saved import was older than 24 hours and has been discarded")
	default:
		return err
	}
}

func printProgress(index, total int, c models.ParsedContact) {
	label := c.Name
	if c.Email != "" {
		label = fmt.Sprintf("%s <%s>", c.Name, c.Email)
	}
	fmt.Printf("  [%d/%d] %s (%s)\n", index+1, total, label, c.Action)
}

func printSummary(stats models.ImportStats) {
	fmt.Printf("\n%d imported, %d updated, %d skipped, %d duplicates, %d errors (%d total)\n",
		stats.Imported, stats.Updated, stats.Skipped, stats.Duplicates, stats.Errors, stats.Total)
}
