package main

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"
)

func RootCommand() *cli.Command {
	var logger *slog.Logger
	cmd := &cli.Command{
		Name:      "eldeps",
		Usage:     "list the dependencies between the Emacs Lisp files of a directory",
		ArgsUsage: "[dir]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "local-only",
				Aliases: []string{"l"},
				Usage:   "only report dependencies whose file exists in dir",
				Sources: cli.EnvVars("ELDEPS_LOCAL_ONLY"),
			},
			&cli.BoolFlag{
				Name:    "toplevel-only",
				Aliases: []string{"t"},
				Usage:   "only print the modules no other module requires",
				Sources: cli.EnvVars("ELDEPS_TOPLEVEL_ONLY"),
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "enable debug logging",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			level := slog.LevelInfo
			if cmd.Bool("verbose") {
				level = slog.LevelDebug
			}
			logger = slog.New(slog.NewTextHandler(cmd.ErrWriter, &slog.HandlerOptions{Level: level}))
			return ctx, nil
		},

		Action: func(ctx context.Context, cmd *cli.Command) error {
			cwd, err := os.Getwd()
			if err != nil {
				return err
			}
			dir := cmd.Args().Get(0)
			if dir == "" {
				dir = cwd
			} else if !filepath.IsAbs(dir) {
				dir = filepath.Join(cwd, dir)
			}

			logger.Debug("scan elisp modules.", "dir", dir)

			opts := Options{
				LocalOnly:    cmd.Bool("local-only"),
				ToplevelOnly: cmd.Bool("toplevel-only"),
			}
			return resolveDependencies(cmd.Writer, dir, opts, logger)
		},
	}
	return cmd
}

func main() {
	cmd := RootCommand()
	cmd.Writer = os.Stdout
	cmd.ErrWriter = os.Stderr
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("exited", "error", err)
		os.Exit(1)
	}
}
