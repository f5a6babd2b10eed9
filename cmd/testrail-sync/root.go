package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/rwx-research/testrail-sync/internal/cli"
	"github.com/rwx-research/testrail-sync/internal/errors"
	"github.com/rwx-research/testrail-sync/internal/fs"
	"github.com/rwx-research/testrail-sync/internal/locator"
	"github.com/rwx-research/testrail-sync/internal/logging"
	"github.com/rwx-research/testrail-sync/internal/parsers"
	"github.com/rwx-research/testrail-sync/internal/testrail"
)

var (
	service              cli.Service
	configFilePath       string
	initializationErrors []error
	reportConfig         cli.ReportConfig

	rootCmd = &cobra.Command{
		Use:          "testrail-sync --run-id <id> --junit-report <path>",
		Short:        "Adds the results of a JUnit report to a TestRail run",
		Long:         descriptionTestRailSync,
		Args:         cobra.NoArgs,
		PreRunE:      initCLIService,
		SilenceUsage: true, // Disables usage text on error
		RunE: func(cmd *cobra.Command, args []string) error {
			// Anything from here on is logged by `internal/cli` already.
			cmd.SilenceErrors = true

			_, err := service.ReportResults(cmd.Context(), reportConfig)
			return errors.WithStack(err)
		},
	}
)

func init() {
	flags := rootCmd.Flags()

	flags.StringVar(&reportConfig.RunID, "run-id", "", "the ID of the TestRail run to add results to (required)")
	flags.StringSliceVar(
		&reportConfig.ReportPaths, "junit-report", nil, "path or glob pattern of the JUnit report (required)",
	)
	flags.BoolVar(&reportConfig.DryRun, "dry-run", false, "resolve TestRail cases without submitting any result")
	flags.BoolVar(
		&reportConfig.FailOnSubmissionError,
		"fail-on-submission-error",
		false,
		"exit with code 2 if TestRail rejected any result",
	)

	for _, name := range []string{"run-id", "junit-report"} {
		if err := rootCmd.MarkFlagRequired(name); err != nil {
			initializationErrors = append(initializationErrors, err)
		}
	}

	flags.StringVar(&configFilePath, "config", "", "path to a config file (default is .testrail-sync.yaml)")
	flags.String("host", "", "the host of the TestRail instance, e.g. acme.testrail.io")
	flags.String("user", "", "the TestRail user to submit results as")
	flags.String("case-pattern", "", "a regular expression with a capture group named 'case' to locate TestRail cases")
	flags.Bool("debug", false, "enable debug output")

	flags.Bool("insecure", false, "disable TLS for the API")
	if err := flags.MarkHidden("insecure"); err != nil {
		initializationErrors = append(initializationErrors, err)
	}

	for _, name := range []string{"host", "user", "case-pattern", "debug", "insecure"} {
		if err := bindFlag(flags, name); err != nil {
			initializationErrors = append(initializationErrors, err)
		}
	}

	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

func bindFlag(flags *pflag.FlagSet, name string) error {
	return errors.WithStack(viper.BindPFlag(name, flags.Lookup(name)))
}

func newLogger(debug bool) *zap.SugaredLogger {
	if debug {
		return logging.NewDebugLogger()
	}

	return logging.NewProductionLogger()
}

func initCLIService(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(configFilePath)
	if err != nil {
		return err
	}

	logger := newLogger(cfg.Debug)

	casePattern, err := cfg.casePattern()
	if err != nil {
		return err
	}

	var fileSystem fs.FileSystem = fs.Local{}

	scriptLocator, err := locator.NewPattern(fileSystem, casePattern)
	if err != nil {
		return err
	}

	apiClient, err := testrail.NewClient(testrail.ClientConfig{
		APIKey:   cfg.APIKey,
		Debug:    cfg.Debug,
		Host:     cfg.Host,
		Insecure: cfg.Insecure,
		Log:      logger,
		User:     cfg.User,
	})
	if err != nil {
		return errors.WithMessage("unable to create TestRail client: %w", err)
	}

	service = cli.Service{
		API:        apiClient,
		FileSystem: fileSystem,
		Locator:    scriptLocator,
		Log:        logger,
		Parser:     parsers.JUnit{},
		Statuses:   cfg.statuses(),
	}

	return nil
}
