package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	pasteService "github.com/praython/djenofdjango/internal/service/paste"
)

func init() {
	rootCmd.AddCommand(deleteCmd)
}

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a stored paste",
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

		if _, err := a.Pastes.Delete(id); err != nil {
			if errors.Is(err, pasteService.ErrNotFound) {
				return fmt.Errorf("paste %d not found", id)
			}

			return err
		}

		return nil
	},
}
