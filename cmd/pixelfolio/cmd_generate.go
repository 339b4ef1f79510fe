package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"pixelfolio.dev/internal/config"
	"pixelfolio.dev/internal/models"
	"pixelfolio.dev/internal/services"
)

func runGenerate(cmd *cobra.Command, args []string) error {
	reg, err := config.LoadRegistry(cfg.WorldPath)
	if err != nil {
		return err
	}
	return generate(services.NewStaticWorldService(reg, nil), args[0], cmd.OutOrStdout())
}

// generate writes the same documents the catalog API serves, for hosting
// the world as static files
func generate(ws *services.WorldService, outputDir string, out io.Writer) error {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	files := []struct {
		name string
		data any
	}{
		{"world.json", ws.GetWorldResponse()},
		{"landmarks.json", models.LandmarkList{Landmarks: services.NewLandmarkService(ws).GetAll()}},
		{"map.json", services.NewMapService(ws).GetFullMap()},
	}

	for _, f := range files {
		data, err := json.MarshalIndent(f.data, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal %s: %w", f.name, err)
		}

		path := filepath.Join(outputDir, f.name)
		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("write %s: %w", f.name, err)
		}
		fmt.Fprintf(out, "Created %s\n", path)
	}

	fmt.Fprintln(out, "Done!")
	return nil
}
