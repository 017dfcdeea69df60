package app

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/psyscore/internal/assessment"
	"github.com/blackwell-systems/psyscore/internal/config"
	"github.com/blackwell-systems/psyscore/internal/dataset"
	"github.com/blackwell-systems/psyscore/internal/output"
	"github.com/blackwell-systems/psyscore/internal/report"
	"github.com/blackwell-systems/psyscore/internal/scoring"
	"github.com/blackwell-systems/psyscore/internal/store"
)

var (
	reportInput   string
	reportDB      string
	reportCompany string
	reportPartner string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Score one company and resolve its action plans",
	Long: `Compute question and category scores, sentiment distributions, risk
bands and the overall score for one company, then attach the action plans
that apply when the overall score is below 75.

Data is read from a snapshot file with --input, or from the database
populated by 'psyscore import'.`,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringVar(&reportInput, "input", "", "Snapshot file (YAML or JSON) instead of the database")
	reportCmd.Flags().StringVar(&reportDB, "db", "", "Database path (default: db_path from config)")
	reportCmd.Flags().StringVar(&reportCompany, "company", "", "Company id to report on")
	reportCmd.Flags().StringVar(&reportPartner, "partner", "", "Partner id whose plans apply")
	_ = reportCmd.MarkFlagRequired("company")
	_ = reportCmd.MarkFlagRequired("partner")
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup(cmd)
	if err != nil {
		return err
	}

	scope := report.Scope{CompanyID: reportCompany, PartnerID: reportPartner}

	var snap assessment.Snapshot
	if reportInput != "" {
		snap, err = dataset.Load(reportInput)
		if err != nil {
			return fmt.Errorf("loading snapshot: %w", err)
		}
	} else {
		db, err := store.Open(dbPath(cfg, reportDB))
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer func() { _ = db.Close() }()

		snap, err = db.LoadScope(scope.CompanyID, scope.PartnerID)
		if err != nil {
			return fmt.Errorf("loading scope: %w", err)
		}
	}

	rep, err := report.Build(snap, scope, reportOptions(cfg, logger))
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if flagJSON {
		return writeJSON(w, newEnvelope(rep))
	}
	renderReport(w, rep, cfg.Output.Width)
	return nil
}

// dbPath picks the --db flag over the configured path.
func dbPath(cfg *config.Config, flag string) string {
	if flag != "" {
		return flag
	}
	return cfg.DBPath
}

func reportOptions(cfg *config.Config, logger *slog.Logger) report.Options {
	return report.Options{
		Logger:            logger,
		OmitUncategorized: !cfg.Report.IncludeUncategorized,
	}
}

// renderReport prints a report as styled terminal output.
func renderReport(w io.Writer, rep *report.Report, width int) {
	barWidth := width / 4
	if barWidth <= 0 {
		barWidth = 20
	}

	_, _ = fmt.Fprintln(w, output.Section(fmt.Sprintf("Company %s (partner %s)", rep.Scope.CompanyID, rep.Scope.PartnerID)))
	_, _ = fmt.Fprintln(w)
	if rep.OverallAverageScore != nil {
		_, _ = fmt.Fprintf(w, " %s %s  %s\n",
			output.StyleLabel.Render("Overall score"),
			output.ScoreBar(*rep.OverallAverageScore, barWidth),
			output.RiskBadge(rep.OverallRisk))
	} else {
		_, _ = fmt.Fprintf(w, " %s %s\n", output.StyleLabel.Render("Overall score"), output.RiskBadge(rep.OverallRisk))
	}
	_, _ = fmt.Fprintf(w, " %s %d\n", output.StyleLabel.Render("Scored assessments"), rep.ScoredAssessments)

	_, _ = fmt.Fprintln(w, output.Section("Categories"))
	_, _ = fmt.Fprintln(w)
	categories := rep.Categories
	if rep.Uncategorized != nil {
		categories = append(append([]scoring.ProcessedCategory(nil), categories...), *rep.Uncategorized)
	}
	if len(categories) == 0 {
		_, _ = fmt.Fprintln(w, output.StyleMuted.Render(" No categories."))
	} else {
		tbl := output.NewTable("Category / question", "Score", "Responses", "Fav/Neu/Unf", "Risk")
		for _, c := range categories {
			tbl.AddRow(
				output.StyleBold.Render(c.Name),
				output.OptionalScore(c.Average()),
				fmt.Sprintf("%d", c.ResponseCount),
				output.DistributionCell(c.Distribution),
				output.RiskBadge(c.Risk),
			)
			for _, q := range c.Questions {
				tbl.AddRow(
					"  "+q.QuestionID,
					output.OptionalScore(q.Average()),
					fmt.Sprintf("%d", q.ResponseCount),
					output.DistributionCell(q.Distribution),
					output.RiskBadge(q.Risk),
				)
			}
		}
		_ = tbl.Fprint(w)
	}

	_, _ = fmt.Fprintln(w, output.Section("Action plans"))
	_, _ = fmt.Fprintln(w)
	switch {
	case rep.OverallAverageScore == nil:
		_, _ = fmt.Fprintln(w, output.StyleMuted.Render(" No overall score; no action plans apply."))
	case len(rep.ActionPlans) == 0:
		_, _ = fmt.Fprintln(w, output.StyleMuted.Render(fmt.Sprintf(" Overall score is %.0f or above, or no plan matches.", scoring.ActionPlanGate)))
	default:
		for _, r := range rep.ActionPlans {
			_, _ = fmt.Fprintf(w, " %s %s\n", output.StyleBold.Render(r.CategoryName), output.StyleMuted.Render(fmt.Sprintf("(%.1f, %s plans)", r.AverageScore, r.Source)))
			for _, p := range r.Plans {
				_, _ = fmt.Fprintf(w, "   - %s\n", p)
			}
		}
	}

	d := rep.Diagnostics
	if d.Skipped() > 0 || d.DetachedQuestions > 0 {
		_, _ = fmt.Fprintln(w)
		_, _ = fmt.Fprintln(w, output.StyleWarning.Render(fmt.Sprintf(
			" Skipped %d defective records (%d invalid responses, %d orphan responses, %d detached responses, %d invalid scores); %d detached questions.",
			d.Skipped(), d.InvalidResponses, d.OrphanResponses, d.DetachedResponses, d.InvalidScores, d.DetachedQuestions)))
	}
}
