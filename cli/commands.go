// Package cli provides the Cobra-based CLI for the storefront.
package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"storefront/catalog"
	"storefront/domain"
	"storefront/query"
	"storefront/store"
)

var (
	rootCmd = &cobra.Command{
		Use:   "storefront",
		Short: "A storefront catalog, cart, and wishlist in your terminal",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// IMPORTANT: allow tests to inject catalog and stores
			if productCatalog != nil {
				return nil
			}

			if cfg := viper.GetString("config"); cfg != "" {
				viper.SetConfigFile(cfg)
				if err := viper.ReadInConfig(); err != nil {
					return err
				}
			}

			lvlStr := strings.ToLower(viper.GetString("log-level"))
			lvl := slog.LevelInfo
			switch lvlStr {
			case "debug":
				lvl = slog.LevelDebug
			case "warn", "warning":
				lvl = slog.LevelWarn
			case "error":
				lvl = slog.LevelError
			}
			slog.SetDefault(slog.New(
				slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}),
			))

			seed := catalog.DefaultSeed()
			if path := viper.GetString("seed"); path != "" {
				var err error
				seed, err = catalog.LoadSeed(path)
				if err != nil {
					return err
				}
			}
			var err error
			productCatalog, err = catalog.New(seed)
			if err != nil {
				return err
			}

			kv, err := store.NewKV(
				viper.GetString("store"),
				viper.GetString("data-dir"),
			)
			if err != nil {
				return err
			}
			cartStore = store.NewCartStore(kv)
			wishlistStore = store.NewWishlistStore(kv)
			return nil
		},
	}

	productCatalog *catalog.Catalog
	cartStore      *store.CartStore
	wishlistStore  *store.WishlistStore
)

// resetFlags restores every flag in the command tree to its default.
// Flag values survive Execute calls on the shared command tree, so anything
// dispatching repeatedly in one process (the shell, tests) resets between
// runs; otherwise one "browse --output json" would leave every later browse
// in JSON mode.
func resetFlags(cmd *cobra.Command) {
	cmd.Flags().Visit(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

func printProducts(result query.Result) {
	if result.TotalCount == 0 {
		fmt.Println("no products match the current filters")
		return
	}
	for _, p := range result.Items {
		sale := ""
		if p.OnSale() {
			sale = fmt.Sprintf(" (was %.2f)", p.OriginalPrice)
		}
		fmt.Printf("%s | %s | %.2f%s | %s | stock %d\n",
			p.ID, p.Name, p.Price, sale, p.Category, p.Stock)
	}
	fmt.Printf("page %d of %d (%d products)\n",
		result.CurrentPage, result.TotalPages, result.TotalCount)
}

func init() {
	rootCmd.PersistentFlags().String("store", "memory", "store backend: memory|file")
	rootCmd.PersistentFlags().String("data-dir", "data", "file store directory")
	rootCmd.PersistentFlags().String("seed", "", "catalog seed JSON file (default: built-in)")
	rootCmd.PersistentFlags().String("config", "", "config file")
	rootCmd.PersistentFlags().String("log-level", "info", "log level")

	viper.BindPFlag("store", rootCmd.PersistentFlags().Lookup("store"))
	viper.BindPFlag("data-dir", rootCmd.PersistentFlags().Lookup("data-dir"))
	viper.BindPFlag("seed", rootCmd.PersistentFlags().Lookup("seed"))
	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.SetEnvPrefix("STOREFRONT")
	viper.AutomaticEnv()

	// browse
	var bParams query.Params
	var bOutput string
	browseCmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse the catalog with filters, sorting, and pagination",
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now()
			result := query.Run(productCatalog, bParams)
			slog.Debug("browse executed",
				"matches", result.TotalCount,
				"duration_ms", time.Since(start).Milliseconds(),
			)
			if bOutput == "json" {
				b, _ := json.MarshalIndent(result, "", "  ")
				fmt.Println(string(b))
				return nil
			}
			printProducts(result)
			return nil
		},
	}
	browseCmd.Flags().StringVar(&bParams.Section, "section", "", "section: best-sellers|new-arrivals|on-sale|featured")
	browseCmd.Flags().StringVar(&bParams.Search, "search", "", "free-text search")
	browseCmd.Flags().StringVar(&bParams.Category, "category", "", "category filter")
	browseCmd.Flags().StringVar(&bParams.PriceRange, "price-range", "", "price bucket: under-50|50-100|100-200|over-200")
	browseCmd.Flags().StringVar(&bParams.SortBy, "sort-by", "", "sort: price-low|price-high|rating|name|newest|popular")
	browseCmd.Flags().IntVar(&bParams.Page, "page", 1, "page number")
	browseCmd.Flags().IntVar(&bParams.PerPage, "per-page", query.DefaultPerPage, "items per page")
	browseCmd.Flags().StringVar(&bOutput, "output", "", "output format")
	rootCmd.AddCommand(browseCmd)

	// product
	productCmd := &cobra.Command{
		Use:   "product <id>",
		Short: "Show a product and its related items",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, ok := productCatalog.ByID(args[0])
			if !ok {
				fmt.Fprintf(os.Stderr, "product not found: id=%s\n", args[0])
				return nil
			}
			b, _ := json.MarshalIndent(p, "", "  ")
			fmt.Println(string(b))
			related := productCatalog.Related(p.ID, catalog.DefaultRelatedLimit)
			if len(related) > 0 {
				fmt.Println("related:")
				for _, r := range related {
					fmt.Printf("  %s | %s | %.2f\n", r.ID, r.Name, r.Price)
				}
			}
			return nil
		},
	}
	rootCmd.AddCommand(productCmd)

	// collections
	collectionsCmd := &cobra.Command{
		Use:   "collections",
		Short: "List the named collections and their filters",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, col := range productCatalog.Collections() {
				fmt.Printf("%s | %s | %s\n", col.ID, col.Name, col.Description)
				for _, f := range col.Filters {
					fmt.Printf("  %s: %s\n", f.ID, strings.Join(f.Options, ", "))
				}
			}
			return nil
		},
	}
	rootCmd.AddCommand(collectionsCmd)

	// cart
	cartCmd := &cobra.Command{
		Use:   "cart",
		Short: "Manage the cart",
	}

	cartAddCmd := &cobra.Command{
		Use:   "add <product-id>",
		Short: "Add one unit of a product to the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, ok := productCatalog.ByID(args[0])
			if !ok {
				fmt.Fprintf(os.Stderr, "product not found: id=%s\n", args[0])
				return nil
			}
			cartStore.Add(p)
			slog.Info("cart add", "product_id", p.ID, "total_items", cartStore.TotalItems())
			fmt.Printf("added %s (cart now holds %d items)\n", p.Name, cartStore.TotalItems())
			return nil
		},
	}
	cartCmd.AddCommand(cartAddCmd)

	var cartOutput string
	cartListCmd := &cobra.Command{
		Use:   "list",
		Short: "Show cart lines and totals",
		RunE: func(cmd *cobra.Command, args []string) error {
			items := cartStore.Items()
			totals := cartStore.Totals()
			if cartOutput == "json" {
				b, _ := json.MarshalIndent(struct {
					Items  []domain.CartItem `json:"items"`
					Totals domain.CartTotals `json:"totals"`
				}{items, totals}, "", "  ")
				fmt.Println(string(b))
				return nil
			}
			if len(items) == 0 {
				fmt.Println("cart is empty")
				return nil
			}
			for _, it := range items {
				fmt.Printf("%s | %s | %.2f x %d\n", it.ID, it.Name, it.Price, it.Quantity)
			}
			fmt.Printf("subtotal %.2f | shipping %.2f | tax %.2f | total %.2f\n",
				totals.Subtotal, totals.Shipping, totals.Tax, totals.Total)
			return nil
		},
	}
	cartListCmd.Flags().StringVar(&cartOutput, "output", "", "output format")
	cartCmd.AddCommand(cartListCmd)

	var cartQty int
	cartUpdateCmd := &cobra.Command{
		Use:   "update <line-id>",
		Short: "Set a cart line's quantity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cartStore.UpdateQuantity(args[0], cartQty)
			fmt.Printf("cart holds %d items\n", cartStore.TotalItems())
			return nil
		},
	}
	cartUpdateCmd.Flags().IntVar(&cartQty, "quantity", 1, "new quantity")
	cartCmd.AddCommand(cartUpdateCmd)

	cartRemoveCmd := &cobra.Command{
		Use:   "remove <line-id>",
		Short: "Remove a cart line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cartStore.Remove(args[0])
			fmt.Printf("cart holds %d items\n", cartStore.TotalItems())
			return nil
		},
	}
	cartCmd.AddCommand(cartRemoveCmd)

	cartClearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Empty the cart",
		RunE: func(cmd *cobra.Command, args []string) error {
			cartStore.Clear()
			fmt.Println("cart cleared")
			return nil
		},
	}
	cartCmd.AddCommand(cartClearCmd)
	rootCmd.AddCommand(cartCmd)

	// wishlist
	wishlistCmd := &cobra.Command{
		Use:   "wishlist",
		Short: "Manage the wishlist",
	}

	wishlistToggleCmd := &cobra.Command{
		Use:   "toggle <product-id>",
		Short: "Add the product to the wishlist, or remove it if present",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, ok := productCatalog.ByID(args[0])
			if !ok {
				fmt.Fprintf(os.Stderr, "product not found: id=%s\n", args[0])
				return nil
			}
			if wishlistStore.Toggle(p.ID) {
				fmt.Printf("added %s to wishlist (%d saved)\n", p.Name, wishlistStore.Count())
			} else {
				fmt.Printf("removed %s from wishlist (%d saved)\n", p.Name, wishlistStore.Count())
			}
			return nil
		},
	}
	wishlistCmd.AddCommand(wishlistToggleCmd)

	var wishlistOutput string
	wishlistListCmd := &cobra.Command{
		Use:   "list",
		Short: "Show saved products",
		RunE: func(cmd *cobra.Command, args []string) error {
			items := wishlistStore.Items(productCatalog)
			if wishlistOutput == "json" {
				b, _ := json.MarshalIndent(items, "", "  ")
				fmt.Println(string(b))
				return nil
			}
			if len(items) == 0 {
				fmt.Println("wishlist is empty")
				return nil
			}
			for _, it := range items {
				fmt.Printf("%s | %s | %.2f | saved %s\n",
					it.ProductID, it.Product.Name, it.Product.Price,
					it.AddedAt.Format("2006-01-02"))
			}
			return nil
		},
	}
	wishlistListCmd.Flags().StringVar(&wishlistOutput, "output", "", "output format")
	wishlistCmd.AddCommand(wishlistListCmd)

	wishlistRemoveCmd := &cobra.Command{
		Use:   "remove <product-id>",
		Short: "Remove a product from the wishlist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wishlistStore.Remove(args[0])
			fmt.Printf("%d saved\n", wishlistStore.Count())
			return nil
		},
	}
	wishlistCmd.AddCommand(wishlistRemoveCmd)
	rootCmd.AddCommand(wishlistCmd)

	rootCmd.AddCommand(newShellCmd())
}

// newShellCmd builds the interactive browse session. Filter, search, and
// sort commands mutate a query.State, so any of them snaps back to page 1;
// everything else is dispatched as a regular CLI command.
func newShellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Interactive browse session",
		RunE: func(cmd *cobra.Command, args []string) error {
			state := query.NewState()
			r := bufio.NewReader(os.Stdin)
			for {
				fmt.Print("storefront> ")
				line, err := r.ReadString('\n')
				if err != nil {
					return nil
				}
				line = strings.TrimSpace(line)
				if line == "" {
					continue
				}
				if line == "exit" || line == "quit" {
					return nil
				}
				if handleShellLine(state, line) {
					continue
				}
				resetFlags(rootCmd)
				rootCmd.SetArgs(strings.Fields(line))
				if err := rootCmd.Execute(); err != nil {
					fmt.Fprintln(os.Stderr, err)
				}
				rootCmd.SetArgs(nil)
			}
		},
	}
}

// handleShellLine applies browse-session commands against the state and
// reports whether the line was consumed.
func handleShellLine(state *query.State, line string) bool {
	fields := strings.Fields(line)
	arg := ""
	if len(fields) > 1 {
		arg = strings.Join(fields[1:], " ")
	}
	switch fields[0] {
	case "show":
		printProducts(query.Run(productCatalog, state.Params()))
	case "section":
		state.SetSection(arg)
	case "search":
		state.SetSearch(arg)
	case "category":
		state.SetCategory(arg)
	case "price":
		state.SetPriceRange(arg)
	case "sort":
		state.SetSortBy(arg)
	case "page":
		n, err := strconv.Atoi(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "page wants a number, got %q\n", arg)
			return true
		}
		state.SetPage(n)
	case "per-page":
		n, err := strconv.Atoi(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "per-page wants a number, got %q\n", arg)
			return true
		}
		state.SetPerPage(n)
	default:
		return false
	}
	return true
}

func Execute() error {
	return rootCmd.Execute()
}
