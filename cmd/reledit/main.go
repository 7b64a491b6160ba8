// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Command reledit is a CLI for the reledit library.
// Implements: prd007-cli R1.1-R1.8;
//
//	docs/ARCHITECTURE § Project Structure.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "reledit",
		Short: "Fuzzy search/replace file editor",
		Long: "reledit applies search/replace edits to files, tolerating imperfect " +
			"search text through a chain of match strategies, with pre-edit backups " +
			"and optional syntax validation.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(viper.GetString("log-level"))
		},
	}

	// Global flags.
	rootCmd.PersistentFlags().String("project-root", ".", "Project root directory")
	rootCmd.PersistentFlags().Float64("fuzzy-threshold", 0, "Minimum fuzzy match similarity (0 uses the default)")
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level (trace, debug, info, warn, error)")

	// Bind flags to viper.
	viper.BindPFlag("project-root", rootCmd.PersistentFlags().Lookup("project-root"))
	viper.BindPFlag("fuzzy-threshold", rootCmd.PersistentFlags().Lookup("fuzzy-threshold"))
	viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))

	// Env vars: RELEDIT_PROJECT_ROOT, RELEDIT_LOG_LEVEL, etc.
	viper.SetEnvPrefix("RELEDIT")
	viper.AutomaticEnv()

	// Config file.
	viper.SetConfigName(".reledit")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.ReadInConfig() // Ignore error; config file is optional.

	// Add commands.
	rootCmd.AddCommand(newEditCmd())
	rootCmd.AddCommand(newApplyCmd())
	rootCmd.AddCommand(newRestoreCmd())
	rootCmd.AddCommand(newBackupsCmd())
	rootCmd.AddCommand(newVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setupLogging configures the global zerolog logger for console output.
func setupLogging(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.WarnLevel
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}

// newVersionCmd creates the "version" command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print reledit version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("reledit %s\n", version)
		},
	}
}
