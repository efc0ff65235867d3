package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/debug"

	fyneapp "fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"

	snoozeApp "github.com/shhac/snooze/internal/app"
	"github.com/shhac/snooze/internal/ui"
)

// newRootCmd builds the snooze command. Flags are bound to the same viper
// keys as the SNOOZE_* environment variables and the config file; run
// receives the merged configuration.
func newRootCmd(run func(*snoozeApp.Config) error) *cobra.Command {
	v := snoozeApp.NewViper()
	var cfgFile string

	cmd := &cobra.Command{
		Use:           "snooze",
		Short:         "snooze - a desktop HTTP client",
		Long:          "snooze sends HTTP requests and shows the response as a searchable JSON tree or highlighted text.",
		Version:       ui.Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := snoozeApp.ReadConfigFile(v, cfgFile, configDirs()...); err != nil {
				return err
			}
			cfg, err := snoozeApp.LoadConfig(v)
			if err != nil {
				return err
			}
			return run(cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&cfgFile, "config", "c", "", "config file (default: ./snooze.yaml)")
	flags.Bool("debug", false, "enable debug logging")
	flags.Duration("timeout", 0, "request timeout, 0 for none")
	flags.Bool("insecure", false, "skip TLS certificate verification")
	flags.String("overlap", "ignore", "what send does while a request is in flight: ignore or supersede")
	flags.String("url", "", "pre-fill the URL field")

	bind := map[string]string{
		"debug":    snoozeApp.KeyDebug,
		"timeout":  snoozeApp.KeyRequestTimeout,
		"insecure": snoozeApp.KeyInsecure,
		"overlap":  snoozeApp.KeyOverlap,
		"url":      snoozeApp.KeyInitialURL,
	}
	for flag, key := range bind {
		if err := v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			panic(fmt.Sprintf("bind flag %s: %v", flag, err))
		}
	}

	return cmd
}

// configDirs lists the directories searched for snooze.yaml.
func configDirs() []string {
	dirs := []string{"."}
	if dir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, filepath.Join(dir, "snooze"))
	}
	return dirs
}

// runApp is the main application entry point with panic recovery.
func runApp(cfg *snoozeApp.Config) (err error) {
	// Create a temporary stdout logger for bootstrap errors
	tempLogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Recover from panics
	defer func() {
		if r := recover(); r != nil {
			tempLogger.Error("panic recovered",
				slog.Any("panic", r),
				slog.String("stack", string(debug.Stack())),
			)
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	tempLogger.Info("starting snooze HTTP client")

	fyneApp := fyneapp.NewWithID("com.snooze.client")
	ui.LoadThemePreference(fyneApp)

	app, err := snoozeApp.New(fyneApp, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	defer func() {
		if cerr := app.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	mainWindow := ui.NewMainWindow(app.FyneApp(), app)

	// Run the application (blocking)
	app.Run(mainWindow.Window())

	app.Logger().Info("application shutdown complete")
	return nil
}
