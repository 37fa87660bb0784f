package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jhakola/vocablo/internal/app"
	"github.com/jhakola/vocablo/internal/catalog"
	"github.com/jhakola/vocablo/internal/config"
	"github.com/jhakola/vocablo/internal/history"
	"github.com/jhakola/vocablo/internal/mastery"
	"github.com/jhakola/vocablo/internal/selection"
	"github.com/jhakola/vocablo/internal/session"
	"github.com/jhakola/vocablo/internal/store"
)

var playCmd = &cobra.Command{
	Use:   "play [scope]",
	Short: "Start a practice session",
	Long: `Start a practice session over a category or lesson.

The scope argument names a catalog category or lesson ID. Without one,
the whole catalog is the pool.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd, args...)
	},
}

func init() {
	playCmd.Flags().Int("length", 0, "Session length (items)")
	playCmd.Flags().String("direction", "", "Practice direction: primary_to_target or target_to_primary")
	playCmd.Flags().String("tier", "", "Mastery tier to practice under")
	playCmd.Flags().Bool("favor-weak", false, "Bias selection toward low-mastery items")
	playCmd.Flags().Bool("favor-frequent", false, "Bias selection toward high-frequency items")
	playCmd.Flags().Int("min-distance", 0, "Minimum queue distance between repeats of one item")
	playCmd.Flags().String("catalog", "", "Path to a catalog JSON file")
	playCmd.Flags().String("frequency", "", "Path to a frequency metadata JSON file")
}

// runPlay builds the session from config, flags, and stored state, then
// launches the TUI. Also the root command's behavior.
func runPlay(cmd *cobra.Command, args ...string) error {
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
	pool := scopePool(cat, scope)
	if len(pool) == 0 {
		return fmt.Errorf("unknown scope %q: want a category (%s) or lesson ID",
			scope, strings.Join(cat.Categories(), ", "))
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
	historySvc := history.NewService(ctx, st.Documents())

	length := flagOrConfigInt(cmd, "length", cfg.Practice.Length, config.DefaultSessionLength)
	dir := catalog.ParseDirection(flagOrConfigString(cmd, "direction", cfg.Practice.Direction, ""))
	tier := flagOrConfigString(cmd, "tier", cfg.Practice.Tier, catalog.TierBasic)

	opts := selection.Options{
		FavorWeak:     flagOrConfigBool(cmd, "favor-weak", cfg.Practice.FavorWeak),
		FavorFrequent: flagOrConfigBool(cmd, "favor-frequent", cfg.Practice.FavorFrequent),
		Tier:          tier,
		MinDistance:   flagOrConfigInt(cmd, "min-distance", cfg.Practice.MinDistance, 0),
	}

	engine := selection.New(historySvc, masterySvc)
	queue := engine.Select(pool, length, scope, dir, opts)
	if len(queue) == 0 {
		return fmt.Errorf("no items selected for scope %q", scope)
	}

	sess := session.New(scope, dir, tier, queue)
	return app.Run(app.Options{
		Session: sess,
		Mastery: masterySvc,
		History: historySvc,
	})
}

// loadCatalog resolves the catalog and its frequency metadata from
// flags, config, or the embedded seed.
func loadCatalog(cmd *cobra.Command, cfg config.Config) (*catalog.Catalog, error) {
	catalogPath := flagOrConfigString(cmd, "catalog", cfg.Catalog.Path, "")
	cat, err := catalog.Load(catalogPath)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	freqPath := flagOrConfigString(cmd, "frequency", cfg.Catalog.Frequency, "")
	freq, err := catalog.ResolveFrequency(cmd.Context(), freqPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "warning: frequency metadata unavailable:", err)
	} else {
		cat.ApplyFrequency(freq)
	}
	return cat, nil
}

// scopePool maps the scope argument to an item pool. "all" means the
// whole catalog.
func scopePool(cat *catalog.Catalog, scope string) []catalog.Item {
	if scope == "all" {
		return cat.All()
	}
	return cat.Scope(scope)
}

func flagOrConfigString(cmd *cobra.Command, name string, cfgVal *string, fallback string) string {
	if cmd.Flags().Changed(name) {
		v, _ := cmd.Flags().GetString(name)
		return v
	}
	if cfgVal != nil {
		return *cfgVal
	}
	return fallback
}

func flagOrConfigInt(cmd *cobra.Command, name string, cfgVal *int, fallback int) int {
	if cmd.Flags().Changed(name) {
		v, _ := cmd.Flags().GetInt(name)
		return v
	}
	if cfgVal != nil {
		return *cfgVal
	}
	return fallback
}

func flagOrConfigBool(cmd *cobra.Command, name string, cfgVal *bool) bool {
	if cmd.Flags().Changed(name) {
		v, _ := cmd.Flags().GetBool(name)
		return v
	}
	if cfgVal != nil {
		return *cfgVal
	}
	return false
}
