package cmd

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/liarsbid/internal/launcher"
)

var opts launcher.Options

var rootCmd = &cobra.Command{
	Use:   "liarsbid",
	Short: "liarsbid - pick a Liar's Dice bid",
	Long: `liarsbid is a terminal bid selector for Liar's Dice.
Pick a quantity from the numeral strip and a face from the pip grid,
with the mouse or the keyboard.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return launcher.Launch(opts)
	},
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVar(&opts.Orientation, "orientation", "", "layout orientation: auto, portrait or landscape")
	flags.StringVar(&opts.Numerals, "numerals", "", "numeral ceiling policy: lazy or fixed")
	flags.StringVar(&opts.Haptics, "haptics", "", "impact feedback: log, bell or off")
	flags.StringVar(&opts.Glyphs, "glyphs", "", "glyph set: unicode or ascii")
	flags.StringVar(&opts.Theme, "theme", "", "theme preset: default, monochrome, wave, dragon or lotus")
	flags.BoolVar(&opts.NoMouse, "no-mouse", false, "disable mouse input")

	rootCmd.AddCommand(configCmd())
}

func Execute() error {
	return rootCmd.Execute()
}
