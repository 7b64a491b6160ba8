// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: prd007-cli R2-R5.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/petar-djukic/reledit/internal/editformat"
	"github.com/petar-djukic/reledit/pkg/reledit"
	"github.com/petar-djukic/reledit/pkg/types"
)

// newEditor builds an Editor from the global configuration.
func newEditor() (reledit.Editor, error) {
	return reledit.New(reledit.Config{
		ProjectRoot:    viper.GetString("project-root"),
		FuzzyThreshold: viper.GetFloat64("fuzzy-threshold"),
	})
}

// newEditCmd creates the "edit" command.
func newEditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Apply a single search/replace edit",
		Long: "Edit locates the search text in the file through the match-strategy " +
			"chain and replaces it. An empty search appends to the file, or creates " +
			"it when missing.",
		RunE: runEdit,
	}

	cmd.Flags().StringP("file", "f", "", "Target file path (required)")
	cmd.Flags().String("search", "", "Text to locate (empty means append/create)")
	cmd.Flags().String("replace", "", "Replacement text")
	cmd.Flags().Bool("replace-all", false, "Replace every occurrence of a single-line token")
	cmd.Flags().Bool("no-create", false, "Do not create the file when missing")
	cmd.Flags().Bool("no-validate", false, "Skip syntax validation of candidates")
	cmd.MarkFlagRequired("file")

	return cmd
}

// runEdit executes a single edit request.
func runEdit(cmd *cobra.Command, args []string) error {
	file, _ := cmd.Flags().GetString("file")
	search, _ := cmd.Flags().GetString("search")
	replace, _ := cmd.Flags().GetString("replace")
	replaceAll, _ := cmd.Flags().GetBool("replace-all")
	noCreate, _ := cmd.Flags().GetBool("no-create")
	noValidate, _ := cmd.Flags().GetBool("no-validate")

	ed, err := newEditor()
	if err != nil {
		return fmt.Errorf("initialization failed: %w", err)
	}

	result := ed.Edit(types.EditRequest{
		FilePath:        file,
		SearchText:      search,
		ReplaceText:     replace,
		CreateIfMissing: !noCreate,
		ValidateSyntax:  !noValidate,
		ReplaceAll:      replaceAll,
	})

	printJSON(result)
	if !result.Success {
		return errors.New("no changes applied")
	}
	return nil
}

// newApplyCmd creates the "apply" command, which reads a SEARCH/REPLACE
// block stream from a file or stdin and applies every block.
func newApplyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply [blocks-file]",
		Short: "Apply a stream of SEARCH/REPLACE blocks",
		Long:  "Apply parses SEARCH/REPLACE blocks from the given file (or stdin when omitted or \"-\") and applies each edit in order.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runApply,
	}

	cmd.Flags().String("default-file", "", "File to edit for blocks that name no path")

	return cmd
}

// runApply parses and applies a block stream.
func runApply(cmd *cobra.Command, args []string) error {
	defaultFile, _ := cmd.Flags().GetString("default-file")

	text, err := readBlocksInput(args)
	if err != nil {
		return err
	}

	parsed, err := editformat.Parse(text, defaultFile)
	if err != nil {
		return fmt.Errorf("parsing blocks: %w", err)
	}
	for _, perr := range parsed.ParseErrors {
		fmt.Fprintf(os.Stderr, "warning: %v\n", perr)
	}

	ed, err := newEditor()
	if err != nil {
		return fmt.Errorf("initialization failed: %w", err)
	}

	results := make([]types.EditResult, 0, len(parsed.Requests))
	failed := 0
	for _, req := range parsed.Requests {
		res := ed.Edit(req)
		if !res.Success {
			failed++
		}
		results = append(results, res)
	}

	printJSON(results)
	if failed > 0 {
		return fmt.Errorf("%d of %d edits failed", failed, len(parsed.Requests))
	}
	return nil
}

// readBlocksInput reads the block stream from the named file or stdin.
func readBlocksInput(args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", args[0], err)
	}
	return string(data), nil
}

// newRestoreCmd creates the "restore" command.
func newRestoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "restore <file> <backup>",
		Short: "Restore a file from a backup snapshot",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ed, err := newEditor()
			if err != nil {
				return fmt.Errorf("initialization failed: %w", err)
			}
			if err := ed.Restore(args[0], args[1]); err != nil {
				return fmt.Errorf("restore failed: %w", err)
			}
			fmt.Printf("restored %s from %s\n", args[0], args[1])
			return nil
		},
	}
}

// newBackupsCmd creates the "backups" command.
func newBackupsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "backups <file>",
		Short: "List backup snapshots for a file, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ed, err := newEditor()
			if err != nil {
				return fmt.Errorf("initialization failed: %w", err)
			}
			paths, err := ed.Backups(args[0])
			if err != nil {
				return err
			}
			for _, p := range paths {
				fmt.Println(p)
			}
			return nil
		},
	}
}

// printJSON outputs a value as indented JSON to stdout.
func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error marshaling result: %v\n", err)
		return
	}
	fmt.Println(string(out))
}
