package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored pastes",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		pastes, err := a.Pastes.List()
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tSIZE\tCREATED\tUPDATED")

		for _, paste := range pastes {
			name := ""
			if paste.Name != nil {
				name = *paste.Name
			}

			fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%s\n",
				paste.ID,
				name,
				len(paste.Text),
				paste.CreatedOn.Format(time.RFC3339),
				paste.UpdatedOn.Format(time.RFC3339),
			)
		}

		return w.Flush()
	},
}
