package server

import (
	"context"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/SylleoYr/pegasus-frontend/api/routes"
	"github.com/SylleoYr/pegasus-frontend/internal/config"
	"github.com/SylleoYr/pegasus-frontend/internal/database"
	"github.com/SylleoYr/pegasus-frontend/internal/notification"
	"github.com/SylleoYr/pegasus-frontend/internal/services"
	"github.com/SylleoYr/pegasus-frontend/pkg/logger"
)

type ServerOpts struct {
	Port int
	Ip   string
}

func NewServerCommand() *cobra.Command {
	serverConfig := &ServerOpts{}

	serverCmd := &cobra.Command{
		Use:   "server",
		Short: "Start the Pegasus server",
		Long:  `Start the Pegasus server to browse the game library and launch games over a REST API`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			cfg := config.LoadConfig()
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			platforms, err := config.LoadPlatforms(cfg.PlatformsFile)
			if err != nil {
				return fmt.Errorf("failed to load platforms from %s: %w", cfg.PlatformsFile, err)
			}

			database.InitDB(cfg)

			appLogger := logger.NewLogger(log.InfoLevel)
			library := services.NewLibrary(platforms, appLogger)
			library.Scan()

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()
			go library.Watch(ctx)

			opts := []services.ServiceOption{services.WithLogDir(cfg.LogDir)}
			if token := os.Getenv("DISCORD_TOKEN"); token != "" {
				discordClient, err := notification.NewNotificationClient()
				if err != nil {
					log.Warnf("Failed to initialize Discord client: %v", err)
				} else {
					defer discordClient.Close()
					opts = append(opts, services.WithNotifier(discordClient))
					log.Info("Discord notifications enabled")
				}
			}

			port := serverConfig.Port
			if port == 0 {
				port = cfg.ServerPort
			}

			router := routes.InitRouter(database.DB, platforms, library, opts...)
			return router.Run(fmt.Sprintf("%s:%d", serverConfig.Ip, port))
		},
	}

	serverCmd.Flags().IntVarP(&serverConfig.Port, "port", "p", 0, "Port to run the server on (defaults to the configured port)")
	serverCmd.Flags().StringVarP(&serverConfig.Ip, "ip", "i", "", "IP address to bind the server to")

	return serverCmd
}
