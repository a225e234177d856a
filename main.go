package main

import (
	"context"
	"embed"
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/UnitVectorY-Labs/badgegist/internal/action"
	"github.com/UnitVectorY-Labs/badgegist/internal/config"
	"github.com/UnitVectorY-Labs/badgegist/internal/gist"
	"github.com/UnitVectorY-Labs/badgegist/internal/preview"
)

// templateFS embeds the HTML template for preview mode.
//
//go:embed templates/preview.html
var templateFS embed.FS

func main() {
	previewPath := flag.String("preview", "", "Render an HTML preview of the badge to this file instead of updating the gist")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	if *previewPath != "" {
		if cfg.Filename == "" {
			cfg.Filename = "badge.svg"
		}
		if err := preview.Run(cfg, templateFS, *previewPath); err != nil {
			fmt.Printf("Preview failed: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := cfg.Validate(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	store := gist.NewGitHub(ctx, cfg.Auth)

	res, err := action.Run(ctx, cfg, store)
	if err != nil {
		logrus.Fatalf("Badge update failed: %v", err)
	}
	if err := action.WriteOutputs(os.Getenv("GITHUB_OUTPUT"), res); err != nil {
		logrus.Fatalf("Failed to report step outputs: %v", err)
	}
}
