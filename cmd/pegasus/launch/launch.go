package launch

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/SylleoYr/pegasus-frontend/internal/config"
	"github.com/SylleoYr/pegasus-frontend/internal/notification"
	"github.com/SylleoYr/pegasus-frontend/pkg/launcher"
	"github.com/SylleoYr/pegasus-frontend/pkg/logger"
)

// Config holds the launch command configuration
type Config struct {
	Platform      string
	RomPath       string
	Verbose       bool
	PlatformsFile string
}

// App represents a single foreground launch
type App struct {
	config        *Config
	logger        *logger.Logger
	discordClient *notification.NotificationClient
}

// NewApp creates a new application instance
func NewApp(cfg *Config) (*App, error) {
	logLevel := logrus.InfoLevel
	if cfg.Verbose {
		logLevel = logrus.DebugLevel
	}
	appLogger := logger.NewLogger(logLevel)

	// Initialize Discord client if configured
	var discordClient *notification.NotificationClient
	if token := os.Getenv("DISCORD_TOKEN"); token != "" {
		var err error
		discordClient, err = notification.NewNotificationClient()
		if err != nil {
			appLogger.WithError(err).Warn("Failed to initialize Discord client")
		} else {
			appLogger.Info("Discord notifications enabled")
		}
	} else {
		appLogger.Debug("DISCORD_TOKEN not set - Discord notifications disabled")
	}

	return &App{
		config:        cfg,
		logger:        appLogger,
		discordClient: discordClient,
	}, nil
}

// Close cleans up application resources
func (a *App) Close() error {
	if a.discordClient != nil {
		return a.discordClient.Close()
	}
	return nil
}

// Run resolves the target platform and launches the game, blocking until
// the game process has exited.
func (a *App) Run() error {
	platformsFile := a.config.PlatformsFile
	if platformsFile == "" {
		platformsFile = config.LoadConfig().PlatformsFile
	}

	platforms, err := config.LoadPlatforms(platformsFile)
	if err != nil {
		return fmt.Errorf("failed to load platforms from %s: %w", platformsFile, err)
	}

	platform, err := config.FindPlatform(platforms, a.config.Platform)
	if err != nil {
		return fmt.Errorf("unknown platform %q: %w", a.config.Platform, err)
	}

	if !platform.HasExtension(a.config.RomPath) {
		a.logger.WithGame(platform.Name, a.config.RomPath).
			Warn("File extension is not registered for this platform")
	}

	gameTitle := launcher.Basename(a.config.RomPath)
	if a.discordClient != nil {
		if err := a.discordClient.NotifyLaunchStarted(platform.Name, gameTitle); err != nil {
			a.logger.WithError(err).Warn("Failed to send Discord notification")
		}
	}

	gameLauncher := launcher.NewLauncher(launcher.WithLogger(a.logger))
	result := gameLauncher.Launch(platform.LaunchCommand, a.config.RomPath)

	if !result.Succeeded() {
		if a.discordClient != nil {
			reason := "unknown error"
			if result.Failure != nil {
				reason = result.Failure.Kind.String()
			}
			if err := a.discordClient.NotifyLaunchFailed(platform.Name, gameTitle, reason); err != nil {
				a.logger.WithError(err).Warn("Failed to send Discord notification")
			}
		}
		return fmt.Errorf("launch of %s did not complete cleanly", gameTitle)
	}
	return nil
}

// NewLaunchCommand creates the launch command
func NewLaunchCommand() *cobra.Command {
	cfg := &Config{}

	launchCmd := &cobra.Command{
		Use:   "launch",
		Short: "Launch a game on the specified platform",
		Long:  `Launch a game by substituting its rom path into the platform's command template and waiting for the game to exit`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			app, err := NewApp(cfg)
			if err != nil {
				return fmt.Errorf("failed to initialize application: %w", err)
			}
			defer func() {
				if closeErr := app.Close(); closeErr != nil {
					app.logger.WithError(closeErr).Error("Error closing application")
				}
			}()

			// A SIGINT from the terminal reaches the game process too, so the
			// blocking launch unwinds on its own; log the signal and wait.
			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
			defer signal.Stop(sigChan)
			go func() {
				sig, ok := <-sigChan
				if ok {
					app.logger.WithFields(logger.Fields{
						"signal": sig.String(),
					}).Info("Received shutdown signal, waiting for the game to exit")
				}
			}()

			return app.Run()
		},
	}

	launchCmd.Flags().StringVarP(&cfg.Platform, "platform", "p", "", "Platform to launch on (required)")
	launchCmd.Flags().StringVarP(&cfg.RomPath, "rom", "r", "", "Path to the rom file (required)")
	launchCmd.Flags().BoolVarP(&cfg.Verbose, "verbose", "v", false, "Enable verbose logging")
	launchCmd.Flags().StringVar(&cfg.PlatformsFile, "platforms", "", "Path to the platforms file")

	launchCmd.MarkFlagRequired("platform")
	launchCmd.MarkFlagRequired("rom")

	return launchCmd
}

// NewListPlatformsCommand creates the list-platforms command
func NewListPlatformsCommand() *cobra.Command {
	cfg := &Config{}

	listPlatformsCmd := &cobra.Command{
		Use:   "list-platforms",
		Short: "List configured platforms",
		Long:  `List all configured platforms with their launch commands and rom directories`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			platformsFile := cfg.PlatformsFile
			if platformsFile == "" {
				platformsFile = config.LoadConfig().PlatformsFile
			}

			platforms, err := config.LoadPlatforms(platformsFile)
			if err != nil {
				return fmt.Errorf("failed to load platforms from %s: %w", platformsFile, err)
			}

			fmt.Println("Configured Platforms:")
			fmt.Println("=====================")

			for _, platform := range platforms {
				fmt.Printf("\n• %s\n", platform.Name)
				if platform.Description != "" {
					fmt.Printf("  Description: %s\n", platform.Description)
				}
				fmt.Printf("  Command: %s\n", platform.LaunchCommand)
				if len(platform.RomDirs) > 0 {
					fmt.Printf("  Rom dirs: %s\n", strings.Join(platform.RomDirs, ", "))
				}
				if len(platform.Extensions) > 0 {
					fmt.Printf("  Extensions: %s\n", strings.Join(platform.Extensions, ", "))
				}
			}

			if len(platforms) == 0 {
				fmt.Printf("No platforms configured in %s\n", platformsFile)
			}

			return nil
		},
	}

	listPlatformsCmd.Flags().StringVar(&cfg.PlatformsFile, "platforms", "", "Path to the platforms file")

	return listPlatformsCmd
}
