package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List configured boards",
	Long:  `Shows every board variant defined in the configuration.`,
	RunE:  runList,
}

func runList(_ *cobra.Command, _ []string) error {
	settings, err := appConfig.Settings()
	if err != nil {
		return err
	}

	if len(settings) == 0 {
		fmt.Println("No boards configured.")
		return nil
	}

	fmt.Println("Available boards:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, s := range settings {
		maxIDLen = max(maxIDLen, len(s.ID))
	}

	fmt.Printf("  %-*s  %-5s  %-6s  %s\n", maxIDLen, "ID", "Size", "Target", "Title")
	fmt.Printf("  %-*s  %-5s  %-6s  %s\n", maxIDLen, "--", "----", "------", "-----")

	for _, s := range settings {
		size := fmt.Sprintf("%dx%d", s.Height, s.Width)
		fmt.Printf("  %-*s  %-5s  %-6d  %s\n", maxIDLen, s.ID, size, s.Target, s.Title)
	}

	fmt.Println()
	fmt.Println("Run 'getgodel play <id>' to play a board.")
	return nil
}
