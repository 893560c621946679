package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	pasteService "github.com/praython/djenofdjango/internal/service/paste"
)

var (
	updateText      string
	updateFile      string
	updateName      string
	updateClearName bool
)

func init() {
	updateCmd.Flags().StringVarP(&updateText, "text", "t", "", "New text")
	updateCmd.Flags().StringVarP(&updateFile, "file", "f", "", "Read new text from file")
	updateCmd.Flags().StringVarP(&updateName, "name", "n", "", "New display name (max 40 characters)")
	updateCmd.Flags().BoolVar(&updateClearName, "clear-name", false, "Reset the display name to null")

	rootCmd.AddCommand(updateCmd)
}

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Modify a stored paste",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id: %v", args[0])
		}

		var text *string

		switch {
		case cmd.Flags().Changed("text"):
			text = &updateText
		case updateFile != "":
			data, err := os.ReadFile(updateFile)
			if err != nil {
				return err
			}

			s := string(data)
			text = &s
		}

		var name *string
		if cmd.Flags().Changed("name") {
			name = &updateName
		}

		if text == nil && name == nil && !updateClearName {
			return errors.New("nothing to update, pass --text, --file, --name or --clear-name")
		}

		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		paste, err := a.Pastes.Update(id, text, name, updateClearName)
		if err != nil {
			if errors.Is(err, pasteService.ErrNotFound) {
				return fmt.Errorf("paste %d not found", id)
			}

			if errors.Is(err, pasteService.ErrEmptyText) {
				return errors.New("refusing to store an empty paste")
			}

			if errors.Is(err, pasteService.ErrNameTooLong) {
				return fmt.Errorf("name exceeds %d characters", pasteService.MaxNameLength)
			}

			if errors.Is(err, pasteService.ErrTooBig) {
				return fmt.Errorf("text exceeds the configured limit of %d bytes", a.Pastes.Limit())
			}

			return err
		}

		fmt.Println(paste.ID)
		return nil
	},
}
