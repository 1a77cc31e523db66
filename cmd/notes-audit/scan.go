package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"storefront/internal/menu"
	"storefront/internal/notes"
	"storefront/internal/orders"
)

func scanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Decode every stored note of a tenant and count strategies",
		Long: `Scan reads all non-null order_items.notes of one tenant, decodes them
with the tenant's option catalog and prints how many rows each strategy
handled. Rows only readable by the plain fallback are listed by id.`,
		RunE: runScan,
	}

	cmd.Flags().String("tenant", "", "Tenant id (required)")
	cmd.Flags().String("database-url", "", "Postgres DSN (default $DATABASE_URL)")
	_ = cmd.MarkFlagRequired("tenant")

	return cmd
}

func runScan(cmd *cobra.Command, args []string) error {
	tenantID, _ := cmd.Flags().GetString("tenant")
	dsn, _ := cmd.Flags().GetString("database-url")
	if dsn == "" {
		dsn = os.Getenv("DATABASE_URL")
	}
	if dsn == "" {
		return errors.New("DATABASE_URL not set")
	}

	ctx := cmd.Context()
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer pool.Close()

	log.Printf("[NOTES-AUDIT] scanning tenant %s", tenantID)

	svc := orders.NewService(
		orders.NewPostgresRepository(pool),
		nil,
		menu.NewService(menu.NewPostgresRepository(pool)),
		nil,
	)

	audit, err := svc.Audit(ctx, tenantID)
	if err != nil {
		return err
	}

	printAudit(cmd.OutOrStdout(), audit)
	return nil
}

// strategyOrder is the order the decoder tries strategies in.
var strategyOrder = []notes.Strategy{
	notes.StrategyTagged,
	notes.StrategyPrefixed,
	notes.StrategyUserNotes,
	notes.StrategyBareJSON,
	notes.StrategyLegacyColon,
	notes.StrategyPlain,
}

func printAudit(w io.Writer, audit *orders.Audit) {
	fmt.Fprintf(w, "Tenant: %s\n", audit.TenantID)
	fmt.Fprintln(w, strings.Repeat("=", 40))

	if audit.Total == 0 {
		fmt.Fprintln(w, "Notes: (none stored)")
		return
	}

	for _, s := range strategyOrder {
		count := audit.Counts[s]
		pct := float64(count) * 100 / float64(audit.Total)
		fmt.Fprintf(w, "  %-16s %6d  %5.1f%%\n", string(s)+":", count, pct)
	}
	fmt.Fprintf(w, "  %-16s %6d\n", "TOTAL:", audit.Total)

	if len(audit.Unreadable) > 0 {
		ids := append([]string(nil), audit.Unreadable...)
		sort.Strings(ids)
		fmt.Fprintln(w, "\nUnreadable lines:")
		for _, id := range ids {
			fmt.Fprintf(w, "  %s\n", id)
		}
	}
}
