package app

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/blackwell-systems/psyscore/internal/assessment"
	"github.com/blackwell-systems/psyscore/internal/dataset"
	"github.com/blackwell-systems/psyscore/internal/output"
	"github.com/blackwell-systems/psyscore/internal/report"
	"github.com/blackwell-systems/psyscore/internal/store"
)

var (
	batchInput     string
	batchDB        string
	batchCompanies []string
	batchPartner   string
	batchWorkers   int
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Score every company of a partner",
	Long: `Build one report per company concurrently. Companies default to every
company with assessments for the partner; repeat --company to pick some.`,
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().StringVar(&batchInput, "input", "", "Snapshot file (YAML or JSON) instead of the database")
	batchCmd.Flags().StringVar(&batchDB, "db", "", "Database path (default: db_path from config)")
	batchCmd.Flags().StringSliceVar(&batchCompanies, "company", nil, "Company id to report on (repeatable)")
	batchCmd.Flags().StringVar(&batchPartner, "partner", "", "Partner id whose plans apply")
	batchCmd.Flags().IntVar(&batchWorkers, "workers", 4, "Reports built in parallel")
	_ = batchCmd.MarkFlagRequired("partner")
	rootCmd.AddCommand(batchCmd)
}

// scopeLoader returns the snapshot for one company.
type scopeLoader func(companyID string) (assessment.Snapshot, error)

func runBatch(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup(cmd)
	if err != nil {
		return err
	}

	companies := batchCompanies
	var load scopeLoader
	if batchInput != "" {
		snap, err := dataset.Load(batchInput)
		if err != nil {
			return fmt.Errorf("loading snapshot: %w", err)
		}
		if len(companies) == 0 {
			companies = companiesOf(snap, batchPartner)
		}
		load = func(string) (assessment.Snapshot, error) { return snap, nil }
	} else {
		db, err := store.Open(dbPath(cfg, batchDB))
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer func() { _ = db.Close() }()

		if len(companies) == 0 {
			companies, err = db.ListCompanies(batchPartner)
			if err != nil {
				return fmt.Errorf("listing companies: %w", err)
			}
		}
		load = func(companyID string) (assessment.Snapshot, error) {
			return db.LoadScope(companyID, batchPartner)
		}
	}

	reports := make([]*report.Report, len(companies))
	opts := reportOptions(cfg, logger)

	g, ctx := errgroup.WithContext(cmd.Context())
	if batchWorkers > 0 {
		g.SetLimit(batchWorkers)
	}
	for i, companyID := range companies {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			snap, err := load(companyID)
			if err != nil {
				return fmt.Errorf("loading company %s: %w", companyID, err)
			}
			rep, err := report.Build(snap, report.Scope{CompanyID: companyID, PartnerID: batchPartner}, opts)
			if err != nil {
				return err
			}
			reports[i] = rep
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	logger.Debug("batch complete", "partner", batchPartner, "reports", len(reports))

	w := cmd.OutOrStdout()
	if flagJSON {
		return writeJSON(w, newEnvelope(reports))
	}
	renderBatch(w, reports)
	return nil
}

// companiesOf lists the companies with assessments for partnerID, in
// first-seen order.
func companiesOf(snap assessment.Snapshot, partnerID string) []string {
	seen := make(map[string]bool)
	var ids []string
	for _, a := range snap.Assessments {
		if a.PartnerID != partnerID || seen[a.CompanyID] {
			continue
		}
		seen[a.CompanyID] = true
		ids = append(ids, a.CompanyID)
	}
	return ids
}

func renderBatch(w io.Writer, reports []*report.Report) {
	_, _ = fmt.Fprintln(w, output.Section(fmt.Sprintf("Partner %s", batchPartner)))
	_, _ = fmt.Fprintln(w)
	if len(reports) == 0 {
		_, _ = fmt.Fprintln(w, output.StyleMuted.Render(" No companies."))
		return
	}

	tbl := output.NewTable("Company", "Overall", "Risk", "Assessments", "Plans", "Skipped")
	for _, rep := range reports {
		tbl.AddRow(
			rep.Scope.CompanyID,
			output.OptionalScore(rep.OverallAverageScore),
			output.RiskBadge(rep.OverallRisk),
			fmt.Sprintf("%d", rep.ScoredAssessments),
			fmt.Sprintf("%d", len(rep.ActionPlans)),
			fmt.Sprintf("%d", rep.Diagnostics.Skipped()),
		)
	}
	_ = tbl.Fprint(w)
}
