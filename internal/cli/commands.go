package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/i474232898/timezone-weather/internal/common"
	"github.com/i474232898/timezone-weather/internal/selection"
	"github.com/i474232898/timezone-weather/internal/timezone"
)

func newZonesCommand(e *env) *cobra.Command {
	var filter string
	cmd := &cobra.Command{
		Use:   "zones",
		Short: "List every known time zone",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var entries []timezone.Entry
			for _, entry := range e.catalog.List() {
				if common.MatchesAny(filter, entry.ID, entry.DisplayName) {
					entries = append(entries, entry)
				}
			}
			renderZones(e.out, entries, e.session.IsSelected, e.color)
			return nil
		},
	}
	cmd.Flags().StringVarP(&filter, "filter", "f", "", "only list zones whose ID or name contains this text")
	return cmd
}

func newTimesCommand(e *env) *cobra.Command {
	var (
		reference string
		zoneID    string
		targets   []string
	)
	cmd := &cobra.Command{
		Use:   "times",
		Short: "Convert a reference time into the selected zones",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if zoneID == "" {
				zoneID = e.cfg.ReferenceZone
			}
			converter := timezone.NewConverter(e.zones, e.catalog)
			refZone := converter.ReferenceZone(zoneID)

			ref := timezone.DefaultReferenceTime(e.zones, refZone.ID, time.Now())
			if reference != "" {
				parsed, err := timezone.ParseWallClock(reference)
				if err != nil {
					return err
				}
				ref = parsed
			}

			if len(targets) == 0 {
				targets = e.session.Selected()
			}
			records := converter.Convert(ref, refZone.ID, targets)
			if missing := timezone.Missing(targets, records); len(missing) > 0 {
				e.log.Infow("skipped unresolved zones", "zones", missing)
			}

			fmt.Fprintf(e.out, "Reference: %s %s\n", refZone.DisplayName, timezone.FormatTimeWithOffset(ref, refZone.Location))
			renderTimes(e.out, records, e.displayMode(), e.color)
			return nil
		},
	}
	cmd.Flags().StringVarP(&reference, "reference", "r", "", "reference wall clock, YYYY-MM-DDTHH:MM[:SS] (default: now)")
	cmd.Flags().StringVarP(&zoneID, "zone", "z", "", "zone the reference is read in (default: REFERENCE_ZONE)")
	cmd.Flags().StringArrayVarP(&targets, "target", "t", nil, "zone to convert into; repeatable (default: the selection)")
	return cmd
}

func newWeatherCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "weather [zone...]",
		Short: "Show current weather for zones (default: the selection)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := args
			if len(ids) == 0 {
				ids = e.session.Selected()
			}
			data := e.weather.FetchAll(cmd.Context(), ids)
			renderWeather(e.out, ids, data, e.displayMode(), e.color)
			return nil
		},
	}
}

func newSelectCommand(e *env) *cobra.Command {
	var add, remove bool
	cmd := &cobra.Command{
		Use:   "select [zone...]",
		Short: "Show or replace the selected zones",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				fmt.Fprintln(e.out, strings.Join(e.session.Selected(), "\n"))
				return nil
			}
			if err := e.checkZones(args); err != nil {
				return err
			}

			ids := args
			switch {
			case add:
				ids = append(e.session.Selected(), args...)
			case remove:
				drop := make(map[string]struct{}, len(args))
				for _, id := range args {
					drop[id] = struct{}{}
				}
				ids = nil
				for _, id := range e.session.Selected() {
					if _, ok := drop[id]; !ok {
						ids = append(ids, id)
					}
				}
			}
			if err := e.session.SetSelected(cmd.Context(), ids); err != nil {
				return err
			}
			fmt.Fprintln(e.out, strings.Join(e.session.Selected(), "\n"))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&add, "add", "a", false, "add the zones to the selection")
	cmd.Flags().BoolVarP(&remove, "remove", "d", false, "remove the zones from the selection")
	cmd.MarkFlagsMutuallyExclusive("add", "remove")
	return cmd
}

func newModeCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:       "mode [Grid|List|Compact]",
		Short:     "Show or set the display mode",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"Grid", "List", "Compact"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				mode, err := selection.ParseDisplayMode(args[0])
				if err != nil {
					return err
				}
				if err := e.session.SetDisplayMode(cmd.Context(), mode); err != nil {
					return err
				}
			}
			fmt.Fprintln(e.out, e.session.DisplayMode())
			return nil
		},
	}
}
