package commands

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"djrank-backend/lib/scrapers/djmag"
	"djrank-backend/lib/serviceutil"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(topCmd)
}

var topCmd = &cobra.Command{
	Use:   "top <year>",
	Short: "Prints a single poll year's rankings as a table.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		year, err := strconv.Atoi(args[0])
		if err != nil {
			serviceutil.Fatal("invalid year", err)
		}

		client := createClient(readConfig())
		resolver := djmag.NewResolver(client, djmag.CurrentYear(time.Now()))

		out := resolver.ResolveYear(cmd.Context(), year)
		if out.Empty() {
			fmt.Fprintf(os.Stderr, "no rankings found for %d\n", year)
			if out.Err != nil {
				fmt.Fprintln(os.Stderr, out.Err.Error())
			}
			os.Exit(1)
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Rank", "Name"})

		for _, r := range out.Records {
			t.AppendRow(table.Row{r.Rank, r.Name})
		}

		t.SetStyle(table.StyleRounded)
		t.Render()
	},
}
