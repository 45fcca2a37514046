package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"sentinel/core/change"
	"sentinel/core/config"
	"sentinel/core/logger"
	"sentinel/core/reconcile"
	"sentinel/core/render"
	"sentinel/core/state"
	"sentinel/core/storage"
	"sentinel/core/telemetry"
	"sentinel/core/utils"
	"sentinel/feature/audit"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the audit command
	auditDesired    string
	auditActual     string
	auditDevice     string
	auditRoot       string
	auditBackend    string
	auditConfigPath string
	auditPlain      bool
	auditJSON       bool
	auditDebug      bool
)

// auditCmd runs a single drift audit and reports the result.
var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Run a one-shot configuration drift audit",
	Long: `Run a single audit: load the desired and actual state documents, compare
them, emit a telemetry event, and open a simulated change request when drift
is found.

The detected drift is rendered as a table. Telemetry and change-request
failures are logged but never discard the computed report; only a state
document that cannot be loaded fails the command.

Examples:
  # Audit the configured device using local files
  sentinel audit

  # Audit against specific documents
  sentinel audit --desired gold_standard.yaml --actual f5_actual_state.json

  # Audit documents published to object storage
  sentinel audit --backend bucket

  # Machine-readable output
  sentinel audit --json`,
	RunE: runAudit,
}

func init() {
	auditCmd.Flags().StringVar(&auditDesired, "desired", "", "Desired-state document (path, or object key with --backend bucket)")
	auditCmd.Flags().StringVar(&auditActual, "actual", "", "Actual-state document (path, or object key with --backend bucket)")
	auditCmd.Flags().StringVar(&auditDevice, "device", "", "Device identifier the documents describe")
	auditCmd.Flags().StringVar(&auditRoot, "root", "", "Wrapper segment prepended to drift paths (empty disables it)")
	auditCmd.Flags().StringVar(&auditBackend, "backend", "", "Document backend: file or bucket")
	auditCmd.Flags().StringVar(&auditConfigPath, "config", ".", "Directory containing the .env file")
	auditCmd.Flags().BoolVar(&auditPlain, "plain", false, "Render the report without colors or borders")
	auditCmd.Flags().BoolVar(&auditJSON, "json", false, "Print the run result as JSON instead of a table")
	auditCmd.Flags().BoolVar(&auditDebug, "debug", false, "Enable debug logging")

	RootCmd.AddCommand(auditCmd)
}

func runAudit(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	// Load configuration
	cfg, err := config.LoadConfig(auditConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Flags override the environment where set.
	cfg.State.DeviceID = utils.Coalesce(auditDevice, cfg.State.DeviceID)
	cfg.State.Backend = utils.Coalesce(auditBackend, cfg.State.Backend)
	if cmd.Flags().Changed("root") {
		// An empty --root is meaningful: it drops the wrapper segment.
		cfg.State.Root = auditRoot
	}
	switch cfg.State.Backend {
	case state.BackendBucket:
		cfg.State.DesiredObject = utils.Coalesce(auditDesired, cfg.State.DesiredObject)
		cfg.State.ActualObject = utils.Coalesce(auditActual, cfg.State.ActualObject)
	default:
		cfg.State.DesiredPath = utils.Coalesce(auditDesired, cfg.State.DesiredPath)
		cfg.State.ActualPath = utils.Coalesce(auditActual, cfg.State.ActualPath)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if auditDebug {
		cfg.Log.Level = "debug"
	}

	// Initialize logger
	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	l.Info("Starting configuration audit",
		zap.String("device_id", cfg.State.DeviceID),
		zap.String("backend", cfg.State.Backend),
	)

	// The file backend never touches object storage.
	var store storage.Client
	if cfg.State.Backend == state.BackendBucket {
		store, err = storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to create storage client: %w", err)
		}
	}

	desired, actual := audit.BuildSources(cfg.State, store, cfg.Storage.Bucket)

	service := audit.NewService(
		desired,
		actual,
		reconcile.NewEngine(cfg.State.Root),
		telemetry.NewLogSink(l),
		change.NewSimulatedInitiator(l),
		cfg.State.DeviceID,
		l,
	)

	result, err := service.Run(ctx)
	if err != nil {
		return fmt.Errorf("failed to run audit: %w", err)
	}

	if auditJSON {
		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode run result: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	if result.Report.DriftDetected {
		fmt.Print(render.New(auditPlain).Render(result.Report))
	}

	return nil
}
