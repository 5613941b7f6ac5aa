package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/username/date-picker/internal/calendar"
	"github.com/username/date-picker/internal/picker"
	"github.com/username/date-picker/internal/termview"
)

func renderCmd() *cobra.Command {
	var start, end, excluded string
	var month string
	var selectDate string
	var plain bool

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print a month of the picker to the terminal",
		Example: "  date-picker render --start 2025-06-01 --end 2025-08-30 --month 2025-07 --select 2025-07-15",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			p, err := picker.New(pickerOptions(cfg, start, end, excluded))
			if err != nil {
				return fmt.Errorf("failed to create picker: %w", err)
			}

			if month != "" {
				target, err := calendar.ParseDate(month + "-01")
				if err != nil {
					return fmt.Errorf("invalid --month %q, want YYYY-MM", month)
				}
				if err := navigateTo(p, target.MonthOf()); err != nil {
					return err
				}
			}

			if selectDate != "" {
				d, err := calendar.ParseDate(selectDate)
				if err != nil {
					return fmt.Errorf("invalid --select: %w", err)
				}
				if !p.SelectDate(d) {
					fmt.Fprintf(os.Stderr, "%s is not selectable in %s\n", d, p.Month().Label())
				}
			}

			styles := termview.DefaultStyles()
			if plain {
				styles = termview.PlainStyles()
			}

			fmt.Print(termview.Render(p.View(), styles))

			rng := p.Range()
			fmt.Printf("\nRange: %s .. %s\n", rng.Start, rng.End)
			if blocked := p.Disabled().InMonth(p.Month()); len(blocked) > 0 {
				labels := make([]string, len(blocked))
				for i, d := range blocked {
					labels[i] = d.String()
				}
				fmt.Printf("Unavailable: %s\n", strings.Join(labels, ", "))
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "Range start YYYY-MM-DD (default: today)")
	cmd.Flags().StringVar(&end, "end", "", "Range end YYYY-MM-DD (default: start + 30 days)")
	cmd.Flags().StringVar(&excluded, "excluded", "", "Comma-separated excluded dates (default: generate busy days)")
	cmd.Flags().StringVar(&month, "month", "", "Month to show YYYY-MM (default: start month)")
	cmd.Flags().StringVar(&selectDate, "select", "", "Date to select YYYY-MM-DD")
	cmd.Flags().BoolVar(&plain, "plain", false, "Disable colors and styling")

	return cmd
}

// navigateTo pages the picker to target the way a user would, one month at a time
func navigateTo(p *picker.Picker, target calendar.Month) error {
	for p.Month() != target {
		var moved bool
		if target.Before(p.Month()) {
			moved = p.PreviousMonth()
		} else {
			moved = p.NextMonth()
		}
		if !moved {
			return fmt.Errorf("%s is outside the range %s", target.Label(), p.Range())
		}
	}
	return nil
}
