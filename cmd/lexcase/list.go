package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"lexcase/repo"
)

var listCaseID string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List cases, or one case's hearings, documents and notes",
	Long: `List prints every case in the store in insertion order.

With --case, it instead prints the hearings, documents and notes that
reference the given case id.

Examples:
  # List all cases
  ./lexcase list

  # Show related records of case 1
  ./lexcase list --case 1`,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVar(&listCaseID, "case", "", "show related records for the given case id")
}

func runList(cmd *cobra.Command, args []string) error {
	if listCaseID == "" {
		return listCases()
	}
	return listRelated(listCaseID)
}

func listCases() error {
	all, err := repo.NewCaseRepository(st).GetAll()
	if err != nil {
		return err
	}
	if len(all) == 0 {
		fmt.Println("No cases in the store.")
		return nil
	}

	fmt.Printf("%-20s  %-14s  %-10s  %-8s  %-30s\n", "ID", "Reference", "Status", "Priority", "Title")
	for _, c := range all {
		fmt.Printf("%-20s  %-14s  %-10s  %-8s  %-30s\n",
			c.ID, c.ReferenceNumber, c.Status, c.Priority, c.Title)
	}
	return nil
}

func listRelated(caseID string) error {
	hearings, err := repo.NewHearingRepository(st).GetByCaseID(caseID)
	if err != nil {
		return err
	}
	documents, err := repo.NewDocumentRepository(st).GetByCaseID(caseID)
	if err != nil {
		return err
	}
	notes, err := repo.NewNoteRepository(st).GetByCaseID(caseID)
	if err != nil {
		return err
	}

	fmt.Printf("Hearings (%d)\n", len(hearings))
	for _, h := range hearings {
		fmt.Printf("  %s  %s %s  %-10s  %s, %s\n", h.ID, h.Date, h.Time, h.Status, h.Judge, h.Courtroom)
	}

	fmt.Printf("Documents (%d)\n", len(documents))
	for _, d := range documents {
		fmt.Printf("  %s  %s  %-14s  %s (%s)\n", d.ID, d.UploadDate, d.Status, d.Name, d.Size)
	}

	fmt.Printf("Notes (%d)\n", len(notes))
	for _, n := range notes {
		tags := ""
		if len(n.Tags) > 0 {
			tags = "  [" + strings.Join(n.Tags, ", ") + "]"
		}
		fmt.Printf("  %s  %s %s  %s: %s%s\n", n.ID, n.Date, n.Time, n.Author, n.Content, tags)
	}
	return nil
}
