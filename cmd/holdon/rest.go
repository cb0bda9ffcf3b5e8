// ABOUTME: The rest command: a blocking rest-period countdown.
// ABOUTME: Ticks once per second on the same line; Ctrl-C cancels.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"strconv"

	"github.com/fatih/color"
	"github.com/holdonapp/holdon/internal/timer"
	"github.com/spf13/cobra"
)

var restCmd = &cobra.Command{
	Use:   "rest <seconds>",
	Short: "Run a rest timer",
	Long: `Count down a rest period between sets.

EXAMPLES:

  $ holdon rest 90
  $ holdon rest 180`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		seconds, err := strconv.Atoi(args[0])
		if err != nil || seconds <= 0 {
			return fmt.Errorf("invalid duration %q (seconds)", args[0])
		}

		done := make(chan struct{})
		t := timer.New()
		t.Start(seconds,
			func(remaining int) {
				fmt.Printf("\r  rest: %3ds remaining", remaining)
			},
			func() {
				close(done)
			},
		)

		interrupt := make(chan os.Signal, 1)
		signal.Notify(interrupt, os.Interrupt)
		defer signal.Stop(interrupt)

		fmt.Printf("  rest: %3ds remaining", seconds)
		select {
		case <-done:
			fmt.Print("\r")
			color.Green("✓ Rest over, next set!      ")
		case <-interrupt:
			t.Stop()
			fmt.Println()
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(restCmd)
}
