package main

import (
	"context"
	"log"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/atvirokodosprendimai/packcheck/internal/app"
)

func main() {
	cmd := &cli.Command{
		Name:      "packcheck",
		Usage:     "Validate reasoning-pack JSON files against the built-in GLOBAL and THREAD schemas",
		ArgsUsage: "path/to/file.json",
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.Args().Len() != 1 {
				return cli.Exit("Usage: packcheck path/to/file.json", 1)
			}
			if code := app.Run(c.Args().First(), os.Stdout, os.Stderr); code != 0 {
				return cli.Exit("", code)
			}
			return nil
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
