package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tripai/config"
	"tripai/discovery"
	"tripai/models"
)

type nearbyOptions struct {
	Lat      float64
	Lon      float64
	HasPos   bool
	RadiusKm float64
	Category string
	Search   string
}

var errNoPosition = errors.New("no position given")

func newNearbyCmd() *cobra.Command {
	var opts nearbyOptions
	cmd := &cobra.Command{
		Use:   "nearby",
		Short: "List places around a position",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			opts.HasPos = cmd.Flags().Changed("lat") && cmd.Flags().Changed("lon")

			// --api goes first, then the configured candidates
			candidates := cfg.NearbyBaseURLs
			if cmd.Flags().Changed("api") {
				candidates = append([]string{apiFlag}, candidates...)
			}
			prober := discovery.NewProber(candidates, 5*time.Second, zap.NewNop())
			client := discovery.NewNearbyClient(prober, 15*time.Second, zap.NewNop())
			return runNearby(cmd.Context(), client, opts, os.Stdout)
		},
	}
	cmd.Flags().Float64Var(&opts.Lat, "lat", 0, "Latitude")
	cmd.Flags().Float64Var(&opts.Lon, "lon", 0, "Longitude")
	cmd.Flags().Float64VarP(&opts.RadiusKm, "radius", "r", 5, "Search radius in km")
	cmd.Flags().StringVarP(&opts.Category, "category", "c", "all", "restaurant, medical, atm, fuel, hotel or all")
	cmd.Flags().StringVarP(&opts.Search, "search", "s", "", "Only names containing this text")
	return cmd
}

func runNearby(ctx context.Context, client *discovery.NearbyClient, opts nearbyOptions, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	var source discovery.Locator = discovery.LocatorFunc(func(context.Context) (models.LatLon, error) {
		return models.LatLon{}, errNoPosition
	})
	if opts.HasPos {
		source = discovery.StaticLocator{Lat: opts.Lat, Lon: opts.Lon}
	}

	at, res := client.SearchAround(ctx, discovery.NewCachedLocator(source), opts.RadiusKm, opts.Category)
	places := discovery.FilterPlaces(res.Data, opts.Search, opts.Category)

	fmt.Fprintf(out, "Around %.4f, %.4f: %d places\n", at.Lat, at.Lon, len(places))
	if res.UsingMockData {
		fmt.Fprintf(out, "Showing sample data: %s\n", res.Error)
	}
	for _, p := range places {
		fmt.Fprintf(out, "  %-32s %-12s %s\n", p.Name, p.Category, strings.TrimSpace(p.Address))
	}
	return nil
}
