package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/pkg/errors"
)

// Supported subcommands:
// - vendors:  Join vendor users with their profiles and print the directory
// - geocode:  Reverse geocode a coordinate through the configured chain
// - state:    Dump the locally persisted state
// - searches: List, add or clear recent searches

func main() {
	vendorsCmd := flag.NewFlagSet("vendors", flag.ExitOnError)
	geocodeCmd := flag.NewFlagSet("geocode", flag.ExitOnError)
	stateCmd := flag.NewFlagSet("state", flag.ExitOnError)
	searchesCmd := flag.NewFlagSet("searches", flag.ExitOnError)

	// vendors parameters
	vendorsPage := vendorsCmd.Int("page", 1, "Page of vendor users to load")
	vendorsLimit := vendorsCmd.Int("limit", 50, "Vendor users per page")
	vendorsSearch := vendorsCmd.String("search", "", "Case-insensitive search on name, email or business")
	vendorsStatus := vendorsCmd.String("status", "", "Comma-separated vendor statuses to keep")
	vendorsTab := vendorsCmd.String("tab", "", "Directory tab (all, kyc, active, suspended)")
	vendorsToken := vendorsCmd.String("token", "", "Access token; defaults to the persisted session")

	// geocode parameters
	geocodeLat := geocodeCmd.Float64("lat", 0, "Latitude")
	geocodeLon := geocodeCmd.Float64("lon", 0, "Longitude")

	// state parameters
	stateKey := stateCmd.String("key", "", "Only dump this key")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	flags := marketFlags{
		Vendors: vendorsFlags{
			cmd:    vendorsCmd,
			page:   vendorsPage,
			limit:  vendorsLimit,
			search: vendorsSearch,
			status: vendorsStatus,
			tab:    vendorsTab,
			token:  vendorsToken,
		},
		Geocode: geocodeFlags{
			cmd: geocodeCmd,
			lat: geocodeLat,
			lon: geocodeLon,
		},
		State: stateFlags{
			cmd: stateCmd,
			key: stateKey,
		},
		Searches: searchesFlags{
			cmd: searchesCmd,
		},
	}

	if err := runSubcommand(ctx, &flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type marketFlags struct {
	Vendors  vendorsFlags
	Geocode  geocodeFlags
	State    stateFlags
	Searches searchesFlags
}

type vendorsFlags struct {
	cmd    *flag.FlagSet
	page   *int
	limit  *int
	search *string
	status *string
	tab    *string
	token  *string
}

type geocodeFlags struct {
	cmd *flag.FlagSet
	lat *float64
	lon *float64
}

type stateFlags struct {
	cmd *flag.FlagSet
	key *string
}

type searchesFlags struct {
	cmd *flag.FlagSet
}

func runSubcommand(ctx context.Context, flags *marketFlags) error {
	switch os.Args[1] {
	case "vendors":
		return handleVendors(ctx, flags)
	case "geocode":
		return handleGeocode(ctx, flags)
	case "state":
		return handleState(ctx, flags)
	case "searches":
		return handleSearches(ctx, flags)
	default:
		printUsage()

		return errors.New("unknown subcommand")
	}
}

func handleVendors(ctx context.Context, flags *marketFlags) error {
	if err := flags.Vendors.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse vendors flags")
	}

	return runVendors(ctx, vendorsOptions{
		page:     *flags.Vendors.page,
		limit:    *flags.Vendors.limit,
		search:   *flags.Vendors.search,
		statuses: splitStatuses(*flags.Vendors.status),
		tab:      *flags.Vendors.tab,
		token:    *flags.Vendors.token,
	})
}

func handleGeocode(ctx context.Context, flags *marketFlags) error {
	if err := flags.Geocode.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse geocode flags")
	}

	return runGeocode(ctx, *flags.Geocode.lat, *flags.Geocode.lon)
}

func handleState(ctx context.Context, flags *marketFlags) error {
	if err := flags.State.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse state flags")
	}

	return runState(ctx, *flags.State.key)
}

func handleSearches(ctx context.Context, flags *marketFlags) error {
	if err := flags.Searches.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse searches flags")
	}

	return runSearches(ctx, flags.Searches.cmd.Args())
}

func printUsage() {
	fmt.Println("Usage: marketctl <command> [options]")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  vendors     Print the combined vendor directory and its stats")
	fmt.Println("  geocode     Reverse geocode -lat/-lon (BigDataCloud, then Nominatim)")
	fmt.Println("  state       Dump the persisted client state")
	fmt.Println("  searches    list | add <query> | remove <query> | clear")
	fmt.Println("")
	fmt.Println("Use 'marketctl <command> -h' for more information about a command.")
}
