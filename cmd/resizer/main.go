package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dixieflatline76/Resizer/config"
	"github.com/dixieflatline76/Resizer/ui"
)

var rootCmd = &cobra.Command{
	Use:     "resizer [image]",
	Short:   "Resize a PNG or JPEG image",
	Version: config.AppVersion,
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var path string
		if len(args) == 1 {
			abs, err := filepath.Abs(args[0])
			if err != nil {
				return err
			}
			path = abs
		}
		ui.NewResizerApp().Start(path)
		return nil
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
