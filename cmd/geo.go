package cmd

import (
	"errors"
	"io"

	"golang-devtools/internal/pkg/geo"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var geoCmd = &cobra.Command{
	Use:   "geo [ip]",
	Short: "Look up the geolocation of an IPv4 address, or of this host",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reporter := newGeoReporter(cfg)

		var report geo.Report
		if len(args) == 1 {
			report = reporter.Locate(cmd.Context(), args[0])
		} else {
			report = reporter.LocateSelf(cmd.Context())
		}
		if report.Failed() {
			return errors.New(report.Error)
		}

		loc := report.Location
		return render(cmd, report, func(w io.Writer) error {
			return printTable(w, nil, []table.Row{
				{"IP", loc.IP},
				{"Country", loc.Country},
				{"Region", loc.Region},
				{"City", loc.City},
				{"Postal", loc.Postal},
				{"Coordinates", loc.Coordinates},
				{"Timezone", loc.Timezone},
				{"ISP", loc.ISP},
				{"AS", loc.AS},
			})
		})
	},
}

func init() {
	rootCmd.AddCommand(geoCmd)
}
