package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/username/date-picker/internal/calendar"
	"github.com/username/date-picker/pkg/dateutil"
)

func validateCmd() *cobra.Command {
	var roleStr string
	var otherStr string

	cmd := &cobra.Command{
		Use:   "validate <date>",
		Short: "Check a start or end boundary the way the picker inputs do",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			role, err := calendar.ParseRole(roleStr)
			if err != nil {
				return err
			}

			var other *calendar.Date
			if otherStr != "" {
				d, err := calendar.ParseDate(otherStr)
				if err != nil {
					return fmt.Errorf("invalid --other: %w", err)
				}
				other = &d
			}

			today := calendar.DateOf(dateutil.Today())
			if msg := calendar.ValidateBoundary(args[0], role, other, today); msg != "" {
				return errors.New(msg)
			}

			fmt.Printf("%s date %s is valid\n", role, args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&roleStr, "role", "start", "Boundary role: start or end")
	cmd.Flags().StringVar(&otherStr, "other", "", "Accepted start date, checked against an end candidate")

	return cmd
}
