package cmd

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var interfacesCmd = &cobra.Command{
	Use:   "interfaces [name]",
	Short: "Show the IPv4 subnets configured on network interfaces",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var name string
		if len(args) == 1 {
			name = args[0]
		}

		subnets, err := newInterfaceInspector().Inspect(cmd.Context(), name)
		if err != nil {
			return err
		}

		return render(cmd, subnets, func(w io.Writer) error {
			if len(subnets) == 0 {
				return printLine(w, "No IPv4 addresses found")
			}
			rows := make([]table.Row, 0, len(subnets))
			for _, s := range subnets {
				rows = append(rows, table.Row{
					s.Interface, s.CIDR, s.Subnet.Network, s.Subnet.Broadcast,
					s.Subnet.FirstUsable + " - " + s.Subnet.LastUsable, s.Subnet.UsableHosts,
				})
			}
			return printTable(w, table.Row{"Interface", "CIDR", "Network", "Broadcast", "Host range", "Usable"}, rows)
		})
	},
}

func init() {
	rootCmd.AddCommand(interfacesCmd)
}
