package cmd

import (
	"fmt"
	"io"

	"golang-devtools/internal/pkg/password"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var (
	passwordLength    int
	passwordUppercase bool
	passwordLowercase bool
	passwordNumbers   bool
	passwordSymbols   bool
)

var passwordCmd = &cobra.Command{
	Use:   "password",
	Short: "Generate a random password",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := cfg.Password.Options()

		flags := cmd.Flags()
		if flags.Changed("length") {
			opts.Length = passwordLength
		}
		if flags.Changed("uppercase") {
			opts.Uppercase = passwordUppercase
		}
		if flags.Changed("lowercase") {
			opts.Lowercase = passwordLowercase
		}
		if flags.Changed("numbers") {
			opts.Numbers = passwordNumbers
		}
		if flags.Changed("symbols") {
			opts.Symbols = passwordSymbols
		}

		generated, err := password.Generate(opts)
		if err != nil {
			return err
		}
		return render(cmd, generated, func(w io.Writer) error {
			return printTable(w, nil, []table.Row{
				{"Password", generated.Password},
				{"Length", generated.Length},
				{"Strength", strengthLabel(generated.Strength)},
			})
		})
	},
}

var strengthCmd = &cobra.Command{
	Use:   "strength <password>",
	Short: "Score the strength of a password",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		strength := password.Evaluate(args[0])
		return render(cmd, strength, func(w io.Writer) error {
			return printLine(w, strengthLabel(strength))
		})
	},
}

func strengthLabel(s password.Strength) string {
	return fmt.Sprintf("%s (%d/%d, %d%%)", s.Level, s.Score, password.MaxScore, s.Percent)
}

func init() {
	passwordCmd.Flags().IntVarP(&passwordLength, "length", "l", password.DefaultLength, "Password length")
	passwordCmd.Flags().BoolVar(&passwordUppercase, "uppercase", true, "Include uppercase letters")
	passwordCmd.Flags().BoolVar(&passwordLowercase, "lowercase", true, "Include lowercase letters")
	passwordCmd.Flags().BoolVar(&passwordNumbers, "numbers", true, "Include digits")
	passwordCmd.Flags().BoolVar(&passwordSymbols, "symbols", true, "Include symbols")

	passwordCmd.AddCommand(strengthCmd)
	rootCmd.AddCommand(passwordCmd)
}
