package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jhakola/vocablo/internal/history"
	"github.com/jhakola/vocablo/internal/mastery"
	"github.com/jhakola/vocablo/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Erase all mastery, history, and attempt data",
	RunE:  runReset,
}

func init() {
	resetCmd.Flags().Bool("force", false, "Skip the confirmation prompt")
}

func runReset(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	force, _ := cmd.Flags().GetBool("force")
	if !force {
		fmt.Print("This erases all learner data. Type 'yes' to continue: ")
		scanner := bufio.NewScanner(os.Stdin)
		if !scanner.Scan() || strings.TrimSpace(scanner.Text()) != "yes" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	masterySvc := mastery.NewService(ctx, st.Documents(), st.Attempts())
	if err := masterySvc.Reset(ctx); err != nil {
		return fmt.Errorf("reset mastery: %w", err)
	}
	historySvc := history.NewService(ctx, st.Documents())
	if err := historySvc.Reset(ctx); err != nil {
		return fmt.Errorf("reset history: %w", err)
	}

	fmt.Println("All learner data erased.")
	return nil
}
