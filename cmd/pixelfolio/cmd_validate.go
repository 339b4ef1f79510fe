package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"pixelfolio.dev/internal/config"
	"pixelfolio.dev/internal/registry"
)

func runValidate(cmd *cobra.Command, args []string) error {
	path := cfg.WorldPath
	if len(args) == 1 {
		path = args[0]
	}
	return validate(path, cmd.OutOrStdout())
}

// validate prints every problem found in the world at path
func validate(path string, out io.Writer) error {
	name := path
	if name == "" {
		name = "built-in world"
	}

	w, err := config.LoadWorld(path)
	if err != nil {
		return err
	}

	if err := registry.Validate(w); err != nil {
		fmt.Fprintf(out, "%s: invalid\n", name)
		var joined interface{ Unwrap() []error }
		if errors.As(err, &joined) {
			for _, e := range joined.Unwrap() {
				fmt.Fprintf(out, "  - %v\n", e)
			}
		} else {
			fmt.Fprintf(out, "  - %v\n", err)
		}
		return fmt.Errorf("%s failed validation", name)
	}

	fmt.Fprintf(out, "%s: ok (%d landmarks, %dx%d grid)\n", name, len(w.Landmarks), w.Grid.Cols, w.Grid.Rows)
	return nil
}
