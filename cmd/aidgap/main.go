package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"aid-gap-analyzer/internal/config"
	"aid-gap-analyzer/internal/dashboard/core/domain"
	"aid-gap-analyzer/internal/dashboard/core/pipeline"

	"github.com/spf13/cobra"
)

var version = "dev"

var (
	configPath string
	cfg        *config.Config
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "aidgap",
	Short:        "Aid delivery gap dashboard in the terminal",
	Long:         "aidgap generates the synthetic delivery dataset and prints the dashboard for a region and organization selection.",
	Version:      version,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		log.SetFlags(log.LstdFlags)

		if cmd.Name() == "version" {
			return nil
		}

		path := configPath
		if path == "" {
			path = os.Getenv(config.EnvPath)
		}
		var err error
		cfg, err = config.Load(path)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file")

	reportCmd.Flags().StringSlice("regions", nil, "Regions to include (default all, empty for none)")
	reportCmd.Flags().StringSlice("organizations", nil, "Organizations to include (default all, empty for none)")
	reportCmd.Flags().String("metric", string(domain.MetricDeliveries), "Ranking metric: deliveries or beneficiaries")
	reportCmd.Flags().Int("limit", 0, "Recent records to show (default from config)")

	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(optionsCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("aidgap", version)
	},
}

var optionsCmd = &cobra.Command{
	Use:   "options",
	Short: "List the selectable regions and organizations",
	RunE: func(cmd *cobra.Command, args []string) error {
		renderOptions(cmd.OutOrStdout())
		return nil
	},
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print the dashboard for a selection",
	RunE: func(cmd *cobra.Command, args []string) error {
		sel := domain.FullSelection()
		if cmd.Flags().Changed("regions") {
			sel.Regions, _ = cmd.Flags().GetStringSlice("regions")
		}
		if cmd.Flags().Changed("organizations") {
			sel.Organizations, _ = cmd.Flags().GetStringSlice("organizations")
		}

		metricName, _ := cmd.Flags().GetString("metric")
		metric, err := domain.ParseMetric(metricName)
		if err != nil {
			return fmt.Errorf("%w: %q", err, metricName)
		}

		limit, _ := cmd.Flags().GetInt("limit")
		if limit <= 0 {
			limit = cfg.Dashboard.RecentLimit
		}

		ds := pipeline.GenerateDataset(cfg.Dataset.Seed, cfg.Dataset.RecordCount, cfg.Dataset.WindowDays, time.Now())
		d, err := pipeline.BuildDashboard(ds, sel, pipeline.Options{RecentLimit: limit})
		if err != nil {
			return err
		}

		renderReport(cmd.OutOrStdout(), d, metric)
		return nil
	},
}
