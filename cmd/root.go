// Package cmd provides the root command and CLI setup for vscore.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"vscore.dev/pkg/vscore/internal/adapter"
	"vscore.dev/pkg/vscore/internal/domain"
	m "vscore.dev/pkg/vscore/internal/model"
)

var matrixLoader adapter.MatrixLoader
var variantLoader adapter.VariantLoader
var resultStore adapter.ResultStore
var pipeline domain.Pipeline

// logFileFlag overrides the debug log destination for this invocation.
var logFileFlag string

// verboseFlag raises the debug log level to Debug.
var verboseFlag bool

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	matrixLoader = adapter.NewLocalMatrixLoader()
	variantLoader = adapter.NewLocalVariantLoader()
	resultStore = adapter.NewLocalResultStore()
	pipeline = domain.NewPipeline(matrixLoader, variantLoader, resultStore)
}

const rootLongDescription = `Vscore computes a substitution-score baseline for single amino-acid
variants: every variant in a VEP-format file is scored by looking up its
reference/mutant pair in a substitution matrix such as BLOSUM62, and the
scores are written to a tab-separated file in input order.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vscore",
		Short: "Baseline substitution scorer for amino-acid variants",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(logFileFlag, verboseFlag || viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "debug log file path")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "enable debug logging")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
