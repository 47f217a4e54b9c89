package cmd

import (
	"fmt"
	"io"
	"strings"

	"golang-devtools/internal/pkg/ipv4"
	"golang-devtools/internal/pkg/subnet"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var ipCmd = &cobra.Command{
	Use:   "ip <address>",
	Short: "Show the decimal, hex, binary and octal forms of an IPv4 address",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		conv, err := ipv4.Convert(args[0])
		if err != nil {
			return err
		}
		return render(cmd, conv, func(w io.Writer) error {
			return printTable(w, nil, []table.Row{
				{"Address", conv.Address},
				{"Decimal", conv.Decimal},
				{"Hexadecimal", conv.Hex},
				{"Binary", conv.Binary},
				{"Octal", conv.Octal},
				{"Class", conv.Info.Class},
				{"Private", conv.Info.Private},
				{"Type", conv.Info.Special},
			})
		})
	},
}

var subnetCmd = &cobra.Command{
	Use:   "subnet <address/prefix | address mask>",
	Short: "Calculate the network, broadcast and host range of an IPv4 subnet",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		address, mask, err := subnetArgs(args)
		if err != nil {
			return err
		}

		res, err := subnet.Calculate(address, mask)
		if err != nil {
			return err
		}
		return render(cmd, res, func(w io.Writer) error {
			return printTable(w, nil, subnetRows(res))
		})
	},
}

// subnetArgs accepts "a.b.c.d/N" or "a.b.c.d" followed by "/N" or a dotted netmask.
func subnetArgs(args []string) (string, string, error) {
	if len(args) == 2 {
		mask := args[1]
		if !strings.Contains(mask, ".") && !strings.HasPrefix(mask, "/") {
			mask = "/" + mask
		}
		return args[0], mask, nil
	}

	address, prefix, found := strings.Cut(args[0], "/")
	if !found {
		return "", "", fmt.Errorf("missing mask: use %s/N or pass the mask as a second argument", args[0])
	}
	return address, "/" + prefix, nil
}

func subnetRows(res subnet.Result) []table.Row {
	return []table.Row{
		{"Address", res.Address},
		{"Netmask", fmt.Sprintf("%s (/%d)", res.Netmask, res.Prefix)},
		{"Wildcard", res.Wildcard},
		{"Network", res.Network},
		{"Broadcast", res.Broadcast},
		{"Host range", fmt.Sprintf("%s - %s", res.FirstUsable, res.LastUsable)},
		{"Total hosts", res.TotalHosts},
		{"Usable hosts", res.UsableHosts},
	}
}

func init() {
	rootCmd.AddCommand(ipCmd)
	rootCmd.AddCommand(subnetCmd)
}
