// ABOUTME: Client CLI commands
// ABOUTME: Human-friendly commands for managing clients
package cli

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/google/uuid"

	"github.com/ticnutai/crmport/db"
	"github.com/ticnutai/crmport/importer"
	"github.com/ticnutai/crmport/models"
)

// AddClientCommand adds a new client.
func AddClientCommand(database *sql.DB, args []string) error {
	fs := flag.NewFlagSet("add-client", flag.ExitOnError)
	name := fs.String("name", "", "Client name (required)")
	email := fs.String("email", "", "Email address")
	phone := fs.String("phone", "", "Phone number")
	company := fs.String("company", "", "Company name")
	position := fs.String("position", "", "Job title")
	notes := fs.String("notes", "", "Notes about the client")
	owner := fs.String("owner", defaultOwner(), "Owner ID")
	_ = fs.Parse(args)

	if *name == "" {
		return fmt.Errorf("--name is required")
	}

	client := &models.Client{
		Name:      *name,
		NameClean: importer.NormalizeName(*name),
		Email:     *email,
		Phone:     *phone,
		Company:   *company,
		Position:  *position,
		Notes:     *notes,
		Source:    models.SourceManual,
		OwnerID:   *owner,
	}

	if err := db.CreateClient(context.Background(), database, client); err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}

	fmt.Printf("✓ Client created: %s (ID: %s)\n", client.Name, client.ID)
	if client.Email != "" {
		fmt.Printf("  Email: %s\n", client.Email)
	}
	if client.Phone != "" {
		fmt.Printf("  Phone: %s\n", client.Phone)
	}
	if client.Company != "" {
		fmt.Printf("  Company: %s\n", client.Company)
	}

	return nil
}

// ListClientsCommand lists clients, optionally filtered by a search query.
func ListClientsCommand(database *sql.DB, args []string) error {
	fs := flag.NewFlagSet("list-clients", flag.ExitOnError)
	query := fs.String("query", "", "Search by name, email, or phone")
	owner := fs.String("owner", "", "Filter by owner ID")
	limit := fs.Int("limit", 50, "Maximum results")
	_ = fs.Parse(args)

	var clients []models.Client
	var err error
	if *owner != "" {
		clients, err = db.ListClientsByOwner(context.Background(), database, *owner)
	} else {
		clients, err = db.FindClients(context.Background(), database, *query, *limit)
	}
	if err != nil {
		return fmt.Errorf("failed to find clients: %w", err)
	}

	if len(clients) == 0 {
		fmt.Println("No clients found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tEMAIL\tPHONE\tCOMPANY\tSOURCE\tID")
	_, _ = fmt.Fprintln(w, "----\t-----\t-----\t-------\t------\t--")

	for _, client := range clients {
		email := client.Email
		if email == "" {
			email = "-"
		}
		phone := client.Phone
		if phone == "" {
			phone = "-"
		}
		company := client.Company
		if company == "" {
			company = "-"
		}

		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			client.Name, email, phone, company, client.Source, client.ID.String()[:8])
	}
	_ = w.Flush()

	fmt.Printf("\nTotal: %d client(s)\n", len(clients))
	return nil
}

// ShowClientCommand prints one client in full.
func ShowClientCommand(database *sql.DB, args []string) error {
	fs := flag.NewFlagSet("show-client", flag.ExitOnError)
	_ = fs.Parse(args)

	if len(fs.Args()) < 1 {
		return fmt.Errorf("client ID is required")
	}

	clientID, err := uuid.Parse(fs.Args()[0])
	if err != nil {
		return fmt.Errorf("invalid client ID: %w", err)
	}

	client, err := db.GetClient(context.Background(), database, clientID)
	if err != nil {
		return fmt.Errorf("failed to load client: %w", err)
	}
	if client == nil {
		return fmt.Errorf("client not found: %s", clientID)
	}

	fmt.Printf("Name:     %s\n", client.Name)
	fmt.Printf("Email:    %s\n", client.Email)
	fmt.Printf("Phone:    %s\n", client.Phone)
	if client.PhoneSecondary != "" {
		fmt.Printf("Phone 2:  %s\n", client.PhoneSecondary)
	}
	fmt.Printf("Company:  %s\n", client.Company)
	fmt.Printf("Position: %s\n", client.Position)
	fmt.Printf("Address:  %s\n", client.Address)
	fmt.Printf("Labels:   %s\n", client.Labels)
	fmt.Printf("Notes:    %s\n", client.Notes)
	fmt.Printf("Source:   %s\n", client.Source)
	fmt.Printf("Status:   %s\n", client.Status)
	fmt.Printf("Owner:    %s\n", client.OwnerID)
	return nil
}

// DeleteClientCommand deletes a client.
func DeleteClientCommand(database *sql.DB, args []string) error {
	fs := flag.NewFlagSet("delete-client", flag.ExitOnError)
	_ = fs.Parse(args)

	if len(fs.Args()) < 1 {
		return fmt.Errorf("client ID is required")
	}

	clientID, err := uuid.Parse(fs.Args()[0])
	if err != nil {
		return fmt.Errorf("invalid client ID: %w", err)
	}

	client, err := db.GetClient(context.Background(), database, clientID)
	if err != nil {
		return fmt.Errorf("failed to load client: %w", err)
	}
	if client == nil {
		return fmt.Errorf("client not found: %s", clientID)
	}

	if err := db.DeleteClient(context.Background(), database, clientID); err != nil {
		return fmt.Errorf("failed to delete client: %w", err)
	}

	fmt.Printf("✓ Client deleted: %s\n", clientID)
	return nil
}
