// check_dimensions prints the size an image would get when resized to a
// target box, in both fit and stretch mode, without writing anything.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dixieflatline76/Resizer/pkg/resizer"
)

var rootCmd = &cobra.Command{
	Use:  "check_dimensions <image> <width> <height>",
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		img, err := resizer.NewProcessor().Load(args[0])
		if err != nil {
			return err
		}
		w, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("width: %w", err)
		}
		h, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("height: %w", err)
		}

		srcW, srcH := img.Bounds().Dx(), img.Bounds().Dy()
		fitW, fitH := resizer.FitSize(srcW, srcH, w, h)

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "File: %s\n", args[0])
		fmt.Fprintf(out, "Source: %dx%d (aspect %.6f)\n", srcW, srcH, float64(srcW)/float64(srcH))
		fmt.Fprintf(out, "Fit: %dx%d\n", fitW, fitH)
		fmt.Fprintf(out, "Stretch: %dx%d\n", w, h)
		if w > srcW || h > srcH {
			fmt.Fprintln(out, "Note: the window clamps width and height to the source size")
		}
		return nil
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
