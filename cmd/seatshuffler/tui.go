package main

import (
	"SeatShuffler/internal/clock"
	"SeatShuffler/internal/seating"
	"SeatShuffler/internal/tui"

	"github.com/spf13/cobra"
)

var tuiFlags layoutFlags

func init() {
	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "Shuffle and rearrange seats in the terminal",
		Long: `Shuffle a seating plan and rearrange it with the mouse: drag a seat
onto another to swap them, press r to reshuffle and q to quit.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			tuiFlags.resolve(cmd)
			req, err := tuiFlags.request()
			if err != nil {
				return err
			}
			m, err := tui.New(seating.NewSeatingService(nil, logger), req, clock.NewSystem(), cfg.SwapCue)
			if err != nil {
				return err
			}
			return tui.Run(m)
		},
	}
	tuiFlags.register(tuiCmd)
	rootCmd.AddCommand(tuiCmd)
}
