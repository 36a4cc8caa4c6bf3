package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/starford/docfront/internal"
	pkgconfig "github.com/starford/docfront/pkg/config"
)

func loadConfig(cmd *cli.Command) (*internal.Config, error) {
	cfg := internal.NewDefaultConfig()
	if _, err := pkgconfig.LoadIfExists(cmd.String("config"), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	// The flag wins over the file.
	if root := cmd.String("root"); root != "" {
		cfg.Docs.Root = root
	}
	return cfg, nil
}

func action(name string) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		opts := []internal.Option{
			internal.WithConfig(cfg),
			internal.WithCommand(name),
			internal.WithDryRun(cmd.Bool("dry-run")),
			internal.WithStrict(cmd.Bool("strict")),
		}

		if err := internal.Run(ctx, opts...); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		return nil
	}
}

func main() {
	cmd := &cli.Command{
		Name:  "docfront",
		Usage: "Normalize YAML frontmatter across a Markdown documentation tree",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Path to config file (optional)",
				DefaultText: "docfront.yaml",
				Value:       "docfront.yaml",
				Sources:     cli.EnvVars("APP_CONFIG_FILE"),
			},
			&cli.StringFlag{
				Name:    "root",
				Aliases: []string{"r"},
				Usage:   "Docs root to scan (default src/content/docs)",
				Sources: cli.EnvVars("DOCFRONT_ROOT"),
			},
			&cli.BoolFlag{
				Name:    "dry-run",
				Aliases: []string{"n"},
				Usage:   "Report changes without writing files",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   internal.CommandInsertTitles,
				Usage:  "Add a title frontmatter block from the first H1 to files without frontmatter",
				Action: action(internal.CommandInsertTitles),
			},
			{
				Name:   internal.CommandQuoteTitles,
				Usage:  "Quote frontmatter titles that contain a colon",
				Action: action(internal.CommandQuoteTitles),
			},
			{
				Name:  internal.CommandCheck,
				Usage: "Report documents whose frontmatter does not parse or lacks a title",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "strict",
						Usage: "Exit non-zero when any document fails the check",
					},
				},
				Action: action(internal.CommandCheck),
			},
			{
				Name:   internal.CommandWatch,
				Usage:  "Fix the tree once, then keep fixing documents as they change",
				Action: action(internal.CommandWatch),
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
