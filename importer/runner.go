// ABOUTME: Sequential import run with per-record checkpointing
// ABOUTME: Inserts or merges selected candidates one at a time, resumable
package importer

import (
	"context"
	"fmt"

	"github.com/ticnutai/crmport/models"
)

// Runner executes an import run against a ClientStore. Records are processed
// strictly in list order with no concurrency: the checkpoint is then always
// consistent with "everything before the index is done".
type Runner struct {
	store       ClientStore
	checkpoints *CheckpointStore
	ownerID     string
	matcher     *Matcher

	// Progress, when set, is called before each record is processed.
	Progress func(index, total int, contact models.ParsedContact)
}

func NewRunner(store ClientStore, checkpoints *CheckpointStore, ownerID string) *Runner {
	return &Runner{
		store:       store,
		checkpoints: checkpoints,
		ownerID:     ownerID,
	}
}

// SetMatcher lets the run feed inserted records back into the duplicate
// indexes, so a file carrying the same contact twice imports it once.
func (r *Runner) SetMatcher(m *Matcher) {
	r.matcher = m
}

// Run processes the candidate list from the start. Total covers the whole
// list; candidates that are not selected, or whose action is skip, are
// counted as skipped without store calls.
func (r *Runner) Run(ctx context.Context, contacts []models.ParsedContact) (models.ImportStats, error) {
	stats := models.ImportStats{Total: len(contacts)}
	for _, c := range contacts {
		if c.IsDuplicate {
			stats.Duplicates++
		}
	}

	return r.run(ctx, NewRunID(), contacts, 0, stats)
}

// Resume re-reads the checkpoint and re-enters the loop at the saved index.
func (r *Runner) Resume(ctx context.Context) (models.ImportStats, error) {
	cp, err := r.checkpoints.Load()
	if err != nil {
		return models.ImportStats{}, err
	}

	return r.run(ctx, cp.RunID, cp.Contacts, cp.LastProcessedIndex, cp.Stats)
}

func (r *Runner) run(ctx context.Context, runID string, contacts []models.ParsedContact, startIndex int, stats models.ImportStats) (models.ImportStats, error) {
	save := func(nextIndex int) {
		// A failed checkpoint write must not kill the run
		_ = r.checkpoints.Save(&Checkpoint{
			RunID:              runID,
			OwnerID:            r.ownerID,
			Contacts:           contacts,
			LastProcessedIndex: nextIndex,
			Stats:              stats,
		})
	}

	for i := startIndex; i < len(contacts); i++ {
		// Cancellation is only observed here; an in-flight store call
		// always finishes before the loop stops.
		select {
		case <-ctx.Done():
			save(i)
			return stats, ctx.Err()
		default:
		}

		c := &contacts[i]

		if !c.Selected || c.Action == models.ActionSkip {
			stats.Skipped++
			save(i + 1)
			continue
		}

		if r.Progress != nil {
			r.Progress(i, len(contacts), *c)
		}

		if err := r.processRecord(ctx, c, &stats); err != nil {
			// A panic below the store boundary is fatal to the run: halt,
			// keep the checkpoint pointing at this record, and tell the
			// caller where to resume.
			save(i)
			return stats, fmt.Errorf("import halted at record %d of %d: %w", i+1, len(contacts), err)
		}

		save(i + 1)
	}

	if err := r.checkpoints.Clear(); err != nil {
		return stats, fmt.Errorf("import finished but checkpoint cleanup failed: %w", err)
	}

	return stats, nil
}

// processRecord handles one candidate. Store errors are counted into stats
// and return nil so the loop continues; only a recovered panic is returned.
func (r *Runner) processRecord(ctx context.Context, c *models.ParsedContact, stats *models.ImportStats) (fatal error) {
	defer func() {
		if p := recover(); p != nil {
			fatal = fmt.Errorf("unexpected failure: %v", p)
		}
	}()

	switch {
	case c.Action == models.ActionUpdate && c.MatchedClientID != nil:
		r.updateRecord(ctx, c, stats)
	case c.Action == models.ActionImport:
		r.insertRecord(ctx, c, stats)
	default:
		stats.Skipped++
	}

	return nil
}

func (r *Runner) insertRecord(ctx context.Context, c *models.ParsedContact, stats *models.ImportStats) {
	client := &models.Client{
		Name:           c.Name,
		NameClean:      NormalizeName(c.Name),
		Email:          c.Email,
		Phone:          c.Phone,
		PhoneSecondary: c.PhoneSecondary,
		Company:        c.Company,
		Position:       c.Title,
		Address:        c.Address,
		Notes:          c.Notes,
		Labels:         c.Labels,
		Source:         models.SourceContactImport,
		Status:         models.ClientStatusActive,
		OwnerID:        r.ownerID,
	}

	id, err := r.store.Insert(ctx, client)
	if err != nil {
		stats.Errors++
		return
	}

	client.ID = id
	if r.matcher != nil {
		r.matcher.Add(client)
	}

	c.Imported = true
	stats.Imported++
}

// updateRecord merges candidate fields into the matched record. Only columns
// that are empty on the existing record are written; populated columns stay
// untouched even when the candidate disagrees.
func (r *Runner) updateRecord(ctx context.Context, c *models.ParsedContact, stats *models.ImportStats) {
	existing, err := r.store.Get(ctx, *c.MatchedClientID)
	if err != nil {
		stats.Errors++
		return
	}
	if existing == nil {
		// Matched record deleted since classification
		stats.Errors++
		return
	}

	patch := make(map[string]string)
	merge := func(column, candidate, current string) {
		if candidate != "" && current == "" {
			patch[column] = candidate
		}
	}

	merge("email", c.Email, existing.Email)
	merge("phone", c.Phone, existing.Phone)
	merge("phone_secondary", c.PhoneSecondary, existing.PhoneSecondary)
	merge("company", c.Company, existing.Company)
	merge("position", c.Title, existing.Position)
	merge("address", c.Address, existing.Address)
	merge("notes", c.Notes, existing.Notes)
	merge("labels", c.Labels, existing.Labels)

	if len(patch) == 0 {
		stats.Skipped++
		return
	}

	if err := r.store.UpdateFields(ctx, existing.ID, patch); err != nil {
		stats.Errors++
		return
	}

	c.Imported = true
	stats.Updated++
}
