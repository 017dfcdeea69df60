package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/psyscore/internal/assessment"
	"github.com/blackwell-systems/psyscore/internal/output"
	"github.com/blackwell-systems/psyscore/internal/scoring"
)

var bandsCmd = &cobra.Command{
	Use:   "bands",
	Short: "Show the answer scale and risk thresholds",
	RunE:  runBands,
}

func init() {
	rootCmd.AddCommand(bandsCmd)
}

type scaleRow struct {
	Label   string  `json:"label"`
	Value   float64 `json:"value"`
	Direct  float64 `json:"direct"`
	Inverse float64 `json:"inverse"`
}

// bandsOutput is the JSON-serializable result of the bands command.
type bandsOutput struct {
	Scale              []scaleRow `json:"scale"`
	FavorableThreshold float64    `json:"favorableThreshold"`
	NeutralThreshold   float64    `json:"neutralThreshold"`
	ActionPlanGate     float64    `json:"actionPlanGate"`
}

func buildBands() bandsOutput {
	out := bandsOutput{
		FavorableThreshold: scoring.FavorableThreshold,
		NeutralThreshold:   scoring.NeutralThreshold,
		ActionPlanGate:     scoring.ActionPlanGate,
	}
	for _, opt := range assessment.DefaultScale {
		out.Scale = append(out.Scale, scaleRow{
			Label:   opt.Label,
			Value:   opt.Value,
			Direct:  scoring.Normalize(opt.Value, assessment.KindDirect),
			Inverse: scoring.Normalize(opt.Value, assessment.KindInverse),
		})
	}
	return out
}

func runBands(cmd *cobra.Command, args []string) error {
	if _, _, err := setup(cmd); err != nil {
		return err
	}

	bands := buildBands()
	w := cmd.OutOrStdout()
	if flagJSON {
		return writeJSON(w, bands)
	}

	_, _ = fmt.Fprintln(w, output.Section("Answer scale"))
	_, _ = fmt.Fprintln(w)
	scale := output.NewTable("Answer", "Value", "Direct", "Inverse")
	for _, r := range bands.Scale {
		scale.AddRow(r.Label, fmt.Sprintf("%.0f", r.Value), fmt.Sprintf("%.0f", r.Direct), fmt.Sprintf("%.0f", r.Inverse))
	}
	_ = scale.Fprint(w)

	_, _ = fmt.Fprintln(w, output.Section("Risk bands"))
	_, _ = fmt.Fprintln(w)
	risk := output.NewTable("Score", "Sentiment", "Risk")
	risk.AddRow(fmt.Sprintf(">= %.0f", bands.FavorableThreshold), string(scoring.SentimentFavorable), output.RiskBadge(scoring.RiskLow))
	risk.AddRow(fmt.Sprintf("%.0f to < %.0f", bands.NeutralThreshold, bands.FavorableThreshold), string(scoring.SentimentNeutral), output.RiskBadge(scoring.RiskModerate))
	risk.AddRow(fmt.Sprintf("< %.0f", bands.NeutralThreshold), string(scoring.SentimentUnfavorable), output.RiskBadge(scoring.RiskHigh))
	risk.AddRow("no responses", "-", output.RiskBadge(scoring.RiskNoData))
	_ = risk.Fprint(w)

	_, _ = fmt.Fprintf(w, "\n Action plans apply when the overall score is below %.0f.\n", bands.ActionPlanGate)
	return nil
}
