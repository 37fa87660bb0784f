package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhakola/vocablo/internal/history"
	"github.com/jhakola/vocablo/internal/store"
)

var previewCmd = &cobra.Command{
	Use:   "preview [scope]",
	Short: "Show the recent sessions stored for a scope",
	Long: `List the item sequences of recently completed sessions for a scope.

This is a read-only developer tool for inspecting what the selector
will treat as recently used. Scope defaults to "all".`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().Int("limit", history.MaxStoredSessions, "Maximum sessions to show")
}

func runPreview(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	cat, err := loadCatalog(cmd, cfg)
	if err != nil {
		return err
	}

	scope := "all"
	if len(args) > 0 {
		scope = args[0]
	}
	limit, _ := cmd.Flags().GetInt("limit")

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	historySvc := history.NewService(ctx, st.Documents())
	sessions := historySvc.PreviousSessions(scope, limit, cat)
	if len(sessions) == 0 {
		fmt.Printf("No stored sessions for scope %q.\n", scope)
		return nil
	}

	fmt.Printf("Scope %q — %d stored session(s), most recent first:\n\n", scope, len(sessions))
	for i, items := range sessions {
		fmt.Printf("── Session %d (%d items) ──\n", i+1, len(items))
		for _, it := range items {
			fmt.Printf("  %-20s %s\n", it.Primary, it.Target)
		}
		fmt.Println()
	}
	return nil
}
