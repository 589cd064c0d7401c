package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/palakm/gyanguru/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Print the course catalog",
	Run: func(cmd *cobra.Command, args []string) {
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTITLE\tINSTRUCTOR\tCATEGORY\tLEVEL\tRATING\tPRICE")
		for _, c := range catalog.Generate() {
			price := fmt.Sprintf("₹%d", c.Price)
			if c.Free() {
				price = "Free"
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%.1f\t%s\n",
				c.ID, c.Title, c.Instructor, c.Category, c.Level, c.Rating, price)
		}
		w.Flush()
	},
}
