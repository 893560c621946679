package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	pasteService "github.com/praython/djenofdjango/internal/service/paste"
)

var getMeta bool

func init() {
	getCmd.Flags().BoolVar(&getMeta, "meta", false, "Print the full record instead of just the text")

	rootCmd.AddCommand(getCmd)
}

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Print a stored paste",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id: %v", args[0])
		}

		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		paste, err := a.Pastes.Get(id)
		if err != nil {
			if errors.Is(err, pasteService.ErrNotFound) {
				return fmt.Errorf("paste %d not found", id)
			}

			return err
		}

		if !getMeta {
			fmt.Print(paste.Text)
			return nil
		}

		name := "<null>"
		if paste.Name != nil {
			name = strconv.Quote(*paste.Name)
		}

		fmt.Printf("id:         %d\n", paste.ID)
		fmt.Printf("name:       %s\n", name)
		fmt.Printf("created_on: %s\n", paste.CreatedOn.Format(time.RFC3339))
		fmt.Printf("updated_on: %s\n", paste.UpdatedOn.Format(time.RFC3339))
		fmt.Printf("text:       %d bytes\n", len(paste.Text))

		return nil
	},
}
