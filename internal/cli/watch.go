package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/CopelandCodes/setupsheets/internal/repository"
	"github.com/CopelandCodes/setupsheets/internal/session"
)

var watchSearch string

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch setup sheets live",
	Long: `Continuously display the sheet list, re-rendering whenever the store
changes. Changes made by other processes are picked up through a
filesystem watch on the database. Stop with Ctrl-C.

Examples:
  setupsheets watch
  setupsheets watch --search bracket`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVar(&watchSearch, "search", "", "Filter by title/notes substring")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.WatchExternal(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sess, err := session.New(ctx, repository.New(store))
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	defer sess.Close()

	if watchSearch != "" {
		sess.SetFilter(watchSearch)
	}

	if !IsQuiet() {
		fmt.Println("Watching sheets (Ctrl-C to stop)")
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case records, ok := <-sess.Visible():
			if !ok {
				return nil
			}
			fmt.Printf("--- %d sheet(s) ---\n", len(records))
			for _, rec := range records {
				printRecordLine(rec)
			}
		}
	}
}
