package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/PratikDhanave/schedule-admin/internal/admin"
)

var duplicateCount int

var duplicateCmd = &cobra.Command{
	Use:   "duplicate [flags] EVENT_ID...",
	Short: "Copy events onto the following days, as the console action does",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ids := make([]uuid.UUID, 0, len(args))
		for _, a := range args {
			id, err := uuid.Parse(a)
			if err != nil {
				return fmt.Errorf("event id %q: %w", a, err)
			}
			ids = append(ids, id)
		}

		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.close()

		events, _ := a.registry.Get(admin.EventModel)
		action, ok := events.Action(fmt.Sprintf("duplicate_event_%d", duplicateCount))
		if !ok {
			return fmt.Errorf("no duplicate action for count %d", duplicateCount)
		}

		selection, err := a.db.EventsByID(cmd.Context(), ids)
		if err != nil {
			return err
		}
		if len(selection) != len(ids) {
			return fmt.Errorf("found %d of %d events", len(selection), len(ids))
		}

		res, err := action.Run(cmd.Context(), selection)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d created, %d already existed\n", action.Label, res.Created, res.Skipped)
		return nil
	},
}

func init() {
	duplicateCmd.Flags().IntVarP(&duplicateCount, "count", "n", 5, "copies per event (5 or 10)")
}
