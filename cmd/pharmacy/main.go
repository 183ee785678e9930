package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"pharmacy/internal/cache"
	"pharmacy/internal/config"
	"pharmacy/internal/console"
	"pharmacy/internal/db"
	"pharmacy/internal/logging"
	"pharmacy/internal/repository"
	"pharmacy/internal/role"
	"pharmacy/internal/service"
)

// Set via ldflags at build time
var Version = "dev"

var (
	cfgFile  string
	logLevel string
)

// app holds everything built from configuration.
type app struct {
	cfg       *config.Config
	logger    *log.Logger
	session   *db.Session
	cache     *cache.Client
	managers  service.ManagerService
	inventory service.InventoryService
}

// newApp connects to the store and builds the service layer.
func newApp() (*app, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	logger := logging.New(logging.Config{Level: cfg.LogLevel, Prefix: "pharmacy"})

	session, err := db.Open(cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("database init: %w", err)
	}
	logger.Debug("connected to store", "driver", cfg.DB.Driver)

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	managerRepo := repository.NewManagerRepository(session.DB())
	medicineRepo := repository.NewMedicineRepository(session.DB())

	return &app{
		cfg:       cfg,
		logger:    logger,
		session:   session,
		cache:     cacheClient,
		managers:  service.NewManagerService(managerRepo, cacheClient),
		inventory: service.NewInventoryService(medicineRepo, nil),
	}, nil
}

var rootCmd = &cobra.Command{
	Use:   "pharmacy",
	Short: "Pharmacy inventory and manager registry",
	Long: `pharmacy is an interactive console for pharmacy managers to register,
log in and maintain the medicine inventory. Admins can list registered
managers. Run without a subcommand to start the console.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.cache.Close()
		if err := a.session.UseSingleConnection(); err != nil {
			_ = a.session.Close()
			return err
		}

		manager := role.NewManager(a.managers, a.inventory, cmd.OutOrStdout(), a.logger)
		loop := console.New(cmd.InOrStdin(), cmd.OutOrStdout(), manager, role.NewAdmin(manager), a.session, a.logger)
		return loop.Run(cmd.Context())
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), Version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Config file (default: ./pharmacy.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
