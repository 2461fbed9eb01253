package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"lexcase/models"
	"lexcase/repo"
)

var createInput models.Case
var createClients []string

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new case",
	Long: `Create adds a case to the store. The id, the business identifiers
(reference, file and case number) and the creation dates are generated;
everything else comes from flags.

Example:
  ./lexcase create --title "Loan Settlement Dispute" \
    --client "Acme Inc" --category Financial --priority High`,
	RunE: runCreate,
}

func init() {
	rootCmd.AddCommand(createCmd)

	createCmd.Flags().StringVar(&createInput.Title, "title", "", "case title (required)")
	createCmd.Flags().StringArrayVar(&createClients, "client", nil, "client name, repeatable (at least one required)")
	createCmd.Flags().StringVar(&createInput.Category, "category", "", "case category")
	createCmd.Flags().StringVar(&createInput.Subcategory, "subcategory", "", "case subcategory")
	createCmd.Flags().StringVar(&createInput.Status, "status", models.CaseStatusActive, "case status (Active, Pending, Closed)")
	createCmd.Flags().StringVar(&createInput.Priority, "priority", models.CasePriorityMedium, "case priority (High, Medium, Low)")
	createCmd.Flags().StringVar(&createInput.Description, "description", "", "case description")
	createCmd.Flags().StringVar(&createInput.AssignedLawyer, "lawyer", "", "assigned lawyer")
	createCmd.Flags().StringVar(&createInput.CourtName, "court", "", "court name")
	createCmd.Flags().StringVar(&createInput.JudgeAssigned, "judge", "", "assigned judge")
	createCmd.Flags().StringVar(&createInput.NextHearingDate, "next-hearing", "", "next hearing date (YYYY-MM-DD)")
}

func runCreate(cmd *cobra.Command, args []string) error {
	if createInput.Title == "" {
		return fmt.Errorf("--title is required")
	}
	if len(createClients) == 0 {
		return fmt.Errorf("at least one --client is required")
	}
	if !models.IsValidCaseStatus(createInput.Status) {
		return fmt.Errorf("invalid status %q", createInput.Status)
	}
	if !models.IsValidCasePriority(createInput.Priority) {
		return fmt.Errorf("invalid priority %q", createInput.Priority)
	}
	if createInput.NextHearingDate != "" {
		if _, err := repo.ParseDate(createInput.NextHearingDate); err != nil {
			return fmt.Errorf("invalid --next-hearing: %w", err)
		}
	}

	createInput.ClientNames = createClients
	created, err := repo.NewCaseRepository(st).Create(createInput)
	if err != nil {
		return err
	}

	fmt.Printf("Created case %s (%s)\n", created.ReferenceNumber, created.ID)
	return nil
}
