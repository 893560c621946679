package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	pasteService "github.com/praython/djenofdjango/internal/service/paste"
)

var (
	createName string
	createFile string
)

func init() {
	createCmd.Flags().StringVarP(&createName, "name", "n", "", "Optional display name (max 40 characters)")
	createCmd.Flags().StringVarP(&createFile, "file", "f", "", "Read text from file instead of argument/stdin")

	rootCmd.AddCommand(createCmd)
}

var createCmd = &cobra.Command{
	Use:   "create [text]",
	Short: "Store a new paste and print its id",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readText(args, createFile)
		if err != nil {
			return err
		}

		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		// a name passed as "" is stored as empty, an omitted flag as null
		var name *string
		if cmd.Flags().Changed("name") {
			name = &createName
		}

		paste, err := a.Pastes.Create(text, name)
		if err != nil {
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

func readText(args []string, file string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}

	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", err
		}

		return string(data), nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}

	return string(data), nil
}
