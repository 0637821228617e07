package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tagkit-dev/tagkit/internal/config"
	"github.com/tagkit-dev/tagkit/internal/site"
	"github.com/tagkit-dev/tagkit/pkg/render"
)

func renderCmd() *cobra.Command {
	var output string
	var pretty bool

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the gallery page to the output directory",
		Long: `Render builds the gallery page through the tag builder set and
writes index.html to the output directory (default from tagkit.json).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(".")
			if err != nil {
				return err
			}
			if output != "" {
				cfg.Output = output
			}

			path, err := renderTo(cfg, pretty)
			if err != nil {
				return err
			}

			success("rendered %s", path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output directory (overrides tagkit.json)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print the HTML output")

	return cmd
}

// renderTo writes the gallery page under cfg.Output and returns the
// written file path.
func renderTo(cfg *config.Config, pretty bool) (string, error) {
	doc, err := site.Page(cfg.Title)
	if err != nil {
		return "", fmt.Errorf("build page: %w", err)
	}

	html, err := render.New(render.Config{Pretty: pretty}).ToString(doc)
	if err != nil {
		return "", fmt.Errorf("render page: %w", err)
	}

	if err := os.MkdirAll(cfg.Output, 0755); err != nil {
		return "", err
	}

	path := filepath.Join(cfg.Output, "index.html")
	if err := os.WriteFile(path, []byte("<!DOCTYPE html>\n"+html), 0644); err != nil {
		return "", err
	}
	return path, nil
}
