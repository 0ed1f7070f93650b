package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"marketplace/internal/domain/entity"
	"marketplace/internal/infra/api"
	"marketplace/internal/infra/qrcode"
	"marketplace/internal/store"
	"marketplace/internal/usecase"
	"marketplace/internal/usecase/impl"
)

type vendorsOptions struct {
	page     int
	limit    int
	search   string
	statuses []entity.VendorStatus
	tab      string
	token    string
}

// staticToken authenticates with a token given on the command line.
type staticToken string

func (t staticToken) AccessToken() string {
	return string(t)
}

func splitStatuses(raw string) []entity.VendorStatus {
	var statuses []entity.VendorStatus
	for part := range strings.SplitSeq(raw, ",") {
		if s := entity.VendorStatus(strings.TrimSpace(part)); s != "" {
			statuses = append(statuses, s)
		}
	}

	return statuses
}

func runVendors(ctx context.Context, opts vendorsOptions) error {
	env, err := loadEnv(ctx)
	if err != nil {
		return err
	}
	defer env.close()

	state := store.NewStore(env.storage, env.logger)
	state.Hydrate(ctx)

	var tokens api.TokenProvider = state
	if opts.token != "" {
		tokens = staticToken(opts.token)
	}

	client, err := api.NewClient(api.Params{Config: env.cfg, Logger: env.logger, Tokens: tokens})
	if err != nil {
		return err
	}

	vendors := impl.NewVendorDirectoryService(
		api.NewUserRepository(client),
		api.NewVendorRepository(client),
		qrcode.NewFromConfig(env.cfg),
		state,
		env.logger,
	)

	if _, err := vendors.Load(ctx, opts.page, opts.limit); err != nil {
		return err
	}

	directory := vendors.Directory(usecase.VendorQuery{
		Search:   opts.search,
		Statuses: opts.statuses,
		Tab:      opts.tab,
	})

	return printDirectory(directory)
}

func printDirectory(directory usecase.VendorDirectory) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)

	fmt.Fprintln(w, "ID\tNAME\tEMAIL\tBUSINESS\tSTATUS\tPROFILE\tPRODUCTS\tRATING")
	for _, v := range directory.Vendors {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%t\t%d\t%.1f\n",
			v.ID, v.FullName, v.Email, v.BusinessName, v.Status,
			v.HasVendorProfile, v.TotalProducts, v.Rating)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	stats := directory.Stats
	fmt.Printf("\n%d vendors, %d with profile, %d products, %d sales, revenue %s, average rating %.2f\n",
		stats.Total, stats.WithProfile, stats.TotalProducts, stats.TotalSales,
		stats.TotalRevenue.StringFixed(2), stats.AverageRating)
	for status, n := range stats.ByStatus {
		fmt.Printf("  %-12s %d\n", status, n)
	}

	return nil
}
