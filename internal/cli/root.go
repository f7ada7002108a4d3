// filepath: internal/cli/root.go
package cli

import (
	"fmt"
	"os"
	"time"

	"retrohub/internal/config"
	"retrohub/internal/logging"

	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const defaultConfigPath = "config.toml"

var (
	// Version info
	Version   = "0.1.0"
	StartTime time.Time

	// Global config object populated by flags/env/file
	cfg *config.Config

	// Flags
	cfgFile      string
	envFile      string
	port         int
	logLevel     string
	dbPath       string
	uploadRoot   string
	maxFileSize  string
	auditEnabled bool
)

// RootCmd represents the base command when called without any subcommands.
// It starts the HTTP server.
var RootCmd = &cobra.Command{
	Use:   "retrohub",
	Short: "RetroHub API",
	Long:  `A REST API for team retrospectives with validated image attachments.`,
	// PersistentPreRunE loads the configuration before any command runs.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer()
	},
	SilenceUsage: true,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server (default command)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	StartTime = time.Now()

	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVar(&cfgFile, "config_path", defaultConfigPath, "Path to the base configuration file. (Env: RETRO_CONFIG_PATH)")
	RootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Optional dotenv file with RETRO_* settings.")
	RootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Logging level (debug, info, warn, error). (Env: RETRO_LOG_LEVEL)")
	RootCmd.PersistentFlags().StringVar(&dbPath, "db-path", "", "Path to the SQLite database file. (Env: RETRO_DATABASE_PATH)")

	// Server-specific flags, shared by the root command and "serve".
	bindServerFlags(RootCmd.Flags())
	bindServerFlags(serveCmd.Flags())

	RootCmd.AddCommand(serveCmd)
}

func bindServerFlags(fs *pflag.FlagSet) {
	fs.IntVar(&port, "port", 0, "Port for the HTTP server. (Env: RETRO_PORT)")
	fs.StringVar(&uploadRoot, "upload-root", "", "Directory attachments are written to. (Env: RETRO_UPLOAD_ROOT)")
	fs.StringVar(&maxFileSize, "max-file-size", "", "Max attachment size (e.g. '5MB'). (Env: RETRO_MAX_FILE_SIZE)")
	fs.BoolVar(&auditEnabled, "audit-enabled", false, "Enable detailed audit logging. (Env: RETRO_AUDIT_ENABLED=true)")
}

// initializeConfig loads and overrides configuration values.
// Precedence: flags, then environment (and dotenv file), then the TOML file, then defaults.
func initializeConfig(cmd *cobra.Command) error {
	if envPath := os.Getenv("RETRO_CONFIG_PATH"); envPath != "" && cfgFile == defaultConfigPath {
		cfgFile = envPath
	}

	var err error
	cfg, err = config.LoadConfig(cfgFile)
	if err != nil {
		if os.IsNotExist(err) {
			// Create empty config if not found, rely on defaults/flags
			cfg = &config.Config{}
		} else {
			return fmt.Errorf("failed to load configuration from %s: %w", cfgFile, err)
		}
	}

	v, err := config.NewEnvReader(envFile)
	if err != nil {
		return err
	}
	cfg.ApplyEnvironment(v)
	applyFlagOverrides(cfg, cmd)

	if err := cfg.ParseAndValidate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logging.Init(cfg.Logging.Level)
	goose.SetLogger(logging.Log)

	return nil
}

func applyFlagOverrides(c *config.Config, cmd *cobra.Command) {
	if port != 0 {
		c.Server.Port = port
	}
	if logLevel != "" {
		c.Logging.Level = logLevel
	}
	if dbPath != "" {
		c.Database.Path = dbPath
	}
	if uploadRoot != "" {
		c.Upload.Root = uploadRoot
	}
	if maxFileSize != "" {
		c.Upload.MaxFileSize = maxFileSize
	}
	// Check if flag was explicitly set
	if cmd.Flags().Changed("audit-enabled") {
		c.Logging.AuditEnabled = auditEnabled
	}
}
