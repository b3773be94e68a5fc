package main

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/leadgen-cli/internal/model"
)

var (
	runSector     string
	runKeyword    string
	runCountry    string
	runState      string
	runCity       string
	runPostcode   string
	runMaxResults int
	runInputFile  string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one lead-generation job",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		crit, err := jobFromFlags()
		if err != nil {
			return err
		}

		p, err := buildPipeline(cfg)
		if err != nil {
			return err
		}

		result := p.Run(ctx, crit)

		zap.L().Info("job finished",
			zap.String("job_id", result.JobID),
			zap.Int("leads", len(result.Leads)),
		)

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result.Output())
	},
}

// jobFromFlags builds the job criteria from flags, or from a JSON file
// when --input is given. File fields lose to explicitly set flags.
func jobFromFlags() (model.JobCriteria, error) {
	crit := model.JobCriteria{
		Sector:     runSector,
		Keyword:    runKeyword,
		Country:    runCountry,
		State:      runState,
		City:       runCity,
		Postcode:   runPostcode,
		MaxResults: runMaxResults,
	}

	if runInputFile == "" {
		return crit, nil
	}

	raw, err := os.ReadFile(runInputFile)
	if err != nil {
		return crit, eris.Wrap(err, "read input file")
	}
	var fromFile model.JobCriteria
	if err := json.Unmarshal(raw, &fromFile); err != nil {
		return crit, eris.Wrap(err, "parse input file")
	}

	return mergeCriteria(fromFile, crit), nil
}

// mergeCriteria overlays non-zero flag values onto the file criteria.
func mergeCriteria(base, flags model.JobCriteria) model.JobCriteria {
	if flags.Sector != "" {
		base.Sector = flags.Sector
	}
	if flags.Keyword != "" {
		base.Keyword = flags.Keyword
	}
	if flags.Country != "" {
		base.Country = flags.Country
	}
	if flags.State != "" {
		base.State = flags.State
	}
	if flags.City != "" {
		base.City = flags.City
	}
	if flags.Postcode != "" {
		base.Postcode = flags.Postcode
	}
	if flags.MaxResults > 0 {
		base.MaxResults = flags.MaxResults
	}
	return base
}

func init() {
	runCmd.Flags().StringVar(&runSector, "sector", "", "business sector to search (default Healthcare)")
	runCmd.Flags().StringVar(&runKeyword, "keyword", "", "explicit search keyword, overrides generated terms")
	runCmd.Flags().StringVar(&runCountry, "country", "", "country name")
	runCmd.Flags().StringVar(&runState, "state", "", "state or province name")
	runCmd.Flags().StringVar(&runCity, "city", "", "city name")
	runCmd.Flags().StringVar(&runPostcode, "postcode", "", "postal code")
	runCmd.Flags().IntVar(&runMaxResults, "max-results", 0, "maximum leads to return (default 10)")
	runCmd.Flags().StringVar(&runInputFile, "input", "", "path to a JSON job file; flags override its fields")
	rootCmd.AddCommand(runCmd)
}
