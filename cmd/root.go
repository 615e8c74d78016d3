package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"k8s.io/client-go/kubernetes"

	"github.com/fairwindsops/disruption-report/pkg/kube"
	"github.com/fairwindsops/disruption-report/pkg/report"
)

const defaultCSVPath = "pod-disruptions.csv"

var rootCmd = &cobra.Command{
	Use:   "disruption-report",
	Short: "Report pods against their PodDisruptionBudgets and PriorityClasses",
	Long: `disruption-report lists every Pod in the cluster and joins it with the
PodDisruptionBudget selecting it and the PriorityClass it runs at. The report
is printed as TSV on stdout and written as CSV to --csv.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		if viper.GetBool("debug") {
			logrus.SetLevel(logrus.DebugLevel)
		}

		client, err := kube.GetClient()
		if err != nil {
			logrus.Errorf("error fetching Kubernetes client: %v", err)
			os.Exit(1)
		}
		logrus.Debug("connected to kube")

		if err := runReport(cmd.Context(), client, os.Stdout, viper.GetString("csv")); err != nil {
			logrus.Fatal(err)
		}
	},
}

// Execute runs the root command. Argument and flag errors exit 2; everything
// past parsing exits through logrus.Fatal.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		logrus.Error(err)
		os.Exit(2)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolP("debug", "D", false, "Enable debug logging.")
	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	rootCmd.Flags().String("csv", defaultCSVPath, "Destination file for the CSV report.")
	viper.BindPFlag("csv", rootCmd.Flags().Lookup("csv"))
	viper.SetEnvPrefix("disruption_report")
	viper.AutomaticEnv()
}

// runReport fetches the three resource listings, builds the report, and
// renders it: TSV to out, CSV to csvPath. Any failure aborts before a
// partial report is emitted.
func runReport(ctx context.Context, client kubernetes.Interface, out io.Writer, csvPath string) error {
	pods, err := report.GetPods(ctx, client)
	if err != nil {
		return fmt.Errorf("fetching pods: %w", err)
	}
	pdbs, err := report.GetPDBs(ctx, client)
	if err != nil {
		return fmt.Errorf("fetching poddisruptionbudgets: %w", err)
	}
	classes, err := report.GetPriorityClasses(ctx, client)
	if err != nil {
		return fmt.Errorf("fetching priorityclasses: %w", err)
	}
	logrus.Debugf("got %d pods, %d pdbs, %d priorityclasses", len(pods), len(pdbs), len(classes))

	rows := report.BuildReport(pods, pdbs, classes)

	if err := report.WriteTSV(out, rows); err != nil {
		return err
	}
	if err := report.WriteCSV(csvPath, rows); err != nil {
		return err
	}
	logrus.Infof("wrote CSV report to %s", csvPath)
	return nil
}
