package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/tagkit-dev/tagkit/internal/config"
	"github.com/tagkit-dev/tagkit/internal/deploy"
)

func deployCmd() *cobra.Command {
	var bucket string
	var prefix string
	var region string
	var skipRender bool

	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Upload the rendered output to S3",
		Long: `Deploy renders the gallery page (unless --skip-render is set) and
uploads the output directory to the configured S3 bucket. AWS
credentials come from the SDK's default resolution chain.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(".")
			if err != nil {
				return err
			}
			if bucket != "" {
				cfg.Deploy.Bucket = bucket
			}
			if prefix != "" {
				cfg.Deploy.Prefix = prefix
			}
			if region != "" {
				cfg.Deploy.Region = region
			}
			if cfg.Deploy.Bucket == "" {
				return fmt.Errorf("no S3 bucket configured; set deploy.bucket in %s or pass --bucket", config.ConfigFileName)
			}

			if !skipRender {
				path, err := renderTo(cfg, false)
				if err != nil {
					return err
				}
				info("rendered %s", path)
			}

			ctx := cmd.Context()
			logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
			up, err := deploy.NewFromDefaultConfig(ctx, cfg.Deploy.Region, cfg.Deploy.Bucket, cfg.Deploy.Prefix, logger)
			if err != nil {
				return err
			}

			n, err := up.UploadDir(ctx, cfg.Output)
			if err != nil {
				return err
			}

			success("deployed %d objects to s3://%s/%s", n, cfg.Deploy.Bucket, cfg.Deploy.Prefix)
			return nil
		},
	}

	cmd.Flags().StringVar(&bucket, "bucket", "", "S3 bucket (overrides tagkit.json)")
	cmd.Flags().StringVar(&prefix, "prefix", "", "Key prefix (overrides tagkit.json)")
	cmd.Flags().StringVar(&region, "region", "", "AWS region (overrides tagkit.json)")
	cmd.Flags().BoolVar(&skipRender, "skip-render", false, "Upload the existing output without re-rendering")

	return cmd
}
