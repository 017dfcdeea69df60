package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/psyscore/internal/assessment"
	"github.com/blackwell-systems/psyscore/internal/dataset"
	"github.com/blackwell-systems/psyscore/internal/store"
)

var importDB string

var importCmd = &cobra.Command{
	Use:   "import <snapshot>",
	Short: "Load a snapshot file into the database",
	Long: `Validate a YAML or JSON snapshot and upsert its categories, questions,
assessments, responses and action plans into the SQLite database. Rows are
keyed by id, so importing the same file twice leaves one copy.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().StringVar(&importDB, "db", "", "Database path (default: db_path from config)")
	rootCmd.AddCommand(importCmd)
}

// importOutput is the JSON-serializable result of the import command.
type importOutput struct {
	ImportID int64             `json:"importId"`
	Source   string            `json:"source"`
	Stats    store.ImportStats `json:"stats"`
}

func runImport(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup(cmd)
	if err != nil {
		return err
	}

	source := args[0]
	snap, err := dataset.Load(source)
	if err != nil {
		return fmt.Errorf("loading snapshot: %w", err)
	}
	if err := assessment.Validate(snap); err != nil {
		return fmt.Errorf("validating %s: %w", source, err)
	}

	db, err := store.Open(dbPath(cfg, importDB))
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() { _ = db.Close() }()

	id, stats, err := db.ImportSnapshot(snap, source, appVersion)
	if err != nil {
		return fmt.Errorf("importing %s: %w", source, err)
	}
	logger.Debug("snapshot imported", "import_id", id, "source", source)

	w := cmd.OutOrStdout()
	if flagJSON {
		return writeJSON(w, newEnvelope(importOutput{ImportID: id, Source: source, Stats: stats}))
	}
	_, _ = fmt.Fprintf(w, "Imported %s: %d categories, %d questions, %d assessments, %d responses, %d action plans\n",
		source, stats.Categories, stats.Questions, stats.Assessments, stats.Responses, stats.ActionPlans)
	return nil
}
