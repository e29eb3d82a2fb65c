package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/SylleoYr/pegasus-frontend/cmd/pegasus/launch"
	"github.com/SylleoYr/pegasus-frontend/cmd/pegasus/server"
)

func Execute() error {
	var rootCmd = &cobra.Command{
		Use:   "pegasus",
		Short: "A configurable launcher for emulated game libraries",
		Long:  `Pegasus launches games through per-platform command templates and keeps a record of every launch`,
	}

	// Add commands
	rootCmd.AddCommand(launch.NewLaunchCommand())
	rootCmd.AddCommand(launch.NewListPlatformsCommand())
	rootCmd.AddCommand(server.NewServerCommand())
	return rootCmd.ExecuteContext(context.Background())
}
