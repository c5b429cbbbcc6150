package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"tripai/itinerary"
	"tripai/models"
	"tripai/wizard"
)

type planOptions struct {
	Destination   string
	StartDate     string
	EndDate       string
	Budget        string
	Travelers     int
	Interests     []string
	Accommodation string
	TravelStyle   string
	PDFPath       string
}

func newPlanCmd() *cobra.Command {
	var opts planOptions
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Generate a trip itinerary",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlan(cmd.Context(), wizard.NewHTTPGateway(apiFlag), opts, os.Stdout)
		},
	}
	cmd.Flags().StringVarP(&opts.Destination, "destination", "d", "", "Where to go (required)")
	cmd.Flags().StringVar(&opts.StartDate, "start", "", "Start date, YYYY-MM-DD (required)")
	cmd.Flags().StringVar(&opts.EndDate, "end", "", "End date, YYYY-MM-DD (required)")
	cmd.Flags().StringVarP(&opts.Budget, "budget", "b", "", "Total budget in USD (required)")
	cmd.Flags().IntVarP(&opts.Travelers, "travelers", "t", 1, "Number of travelers")
	cmd.Flags().StringSliceVarP(&opts.Interests, "interest", "i", nil, "Interest id, repeat at least three times")
	cmd.Flags().StringVar(&opts.Accommodation, "accommodation", models.AccommodationMidRange, "budget, mid-range or luxury")
	cmd.Flags().StringVar(&opts.TravelStyle, "style", models.StyleBalanced, "relaxed, balanced or packed")
	cmd.Flags().StringVar(&opts.PDFPath, "pdf", "", "Write the itinerary PDF to this path")
	for _, name := range []string{"destination", "start", "end", "budget"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}

// runPlan drives the wizard the same way the browser does: basics, then
// preferences, then one submission.
func runPlan(ctx context.Context, gw wizard.Gateway, opts planOptions, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	wz := wizard.New()
	form := wz.Form()
	form.Destination = opts.Destination
	form.StartDate = opts.StartDate
	form.EndDate = opts.EndDate
	form.Budget = opts.Budget
	form.Travelers = opts.Travelers
	form.Accommodation = opts.Accommodation
	form.TravelStyle = opts.TravelStyle

	if err := wz.Next(); err != nil {
		return errors.Wrap(err, "destination, dates and budget are required")
	}
	for _, id := range opts.Interests {
		if !form.HasInterest(id) {
			form.ToggleInterest(id)
		}
	}
	if !form.CanGenerate() {
		return errors.Errorf("select at least %d interests", wizard.MinInterests)
	}

	fmt.Fprintf(out, "%s: %d days, $%.2f per day (%s)\n", form.Destination, form.TripLength(), form.PerDay(), form.BudgetCategory())

	if err := wz.Submit(ctx, gw); err != nil {
		return errors.Wrap(err, "generate trip")
	}

	it := wz.Itinerary()
	if wz.TripID() != "" {
		fmt.Fprintf(out, "Trip id: %s\n", wz.TripID())
	}
	for _, day := range it.Days {
		fmt.Fprintf(out, "\nDay %d\n", day.Day)
		for _, a := range day.Activities {
			if a.Time != "" {
				fmt.Fprintf(out, "  %s  %s\n", a.Time, a.Name)
			} else {
				fmt.Fprintf(out, "  %s\n", a.Name)
			}
		}
	}

	if opts.PDFPath == "" {
		return nil
	}
	req, err := form.Request()
	if err != nil {
		return err
	}
	data, err := itinerary.ExportPDF(itinerary.Document{Request: req, Itinerary: *it, Generated: time.Now()})
	if err != nil {
		return errors.Wrap(err, "export pdf")
	}
	if err := os.WriteFile(opts.PDFPath, data, 0o644); err != nil {
		return errors.Wrap(err, "write pdf")
	}
	fmt.Fprintf(out, "\nSaved %s\n", opts.PDFPath)
	return nil
}
