package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lexcase/repo"
	"lexcase/services"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the case register as a spreadsheet",
	RunE:  runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "cases.xlsx", "output file path")
}

func runExport(cmd *cobra.Command, args []string) error {
	all, err := repo.NewCaseRepository(st).GetAll()
	if err != nil {
		return err
	}

	buf, err := services.ExportCaseRegister(all)
	if err != nil {
		return fmt.Errorf("failed to build spreadsheet: %w", err)
	}

	if err := os.WriteFile(exportOut, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", exportOut, err)
	}

	fmt.Printf("Exported %d cases to %s\n", len(all), exportOut)
	return nil
}
