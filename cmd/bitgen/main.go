// Command bitgen generates typed bitfield accessors from annotated Go
// struct declarations.
//
//	//go:generate go run github.com/alexhholmes/bitfield/cmd/bitgen generate $GOFILE
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"

	"github.com/alexhholmes/bitfield/internal/config"
)

var log = logrus.WithField("prefix", "bitgen")

func main() {
	customFormatter := new(prefixed.TextFormatter)
	customFormatter.TimestampFormat = "2006-01-02 15:04:05"
	customFormatter.FullTimestamp = true
	logrus.SetFormatter(customFormatter)

	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := &cli.App{
		Name:  "bitgen",
		Usage: "generate bitfield accessors from @bitfield struct declarations",
	}
	app.Commands = []*cli.Command{
		{
			Name:      "generate",
			Aliases:   []string{"gen"},
			Usage:     "write <file><suffix> for every file with @bitfield types",
			ArgsUsage: "files...",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "config",
					Aliases: []string{"c"},
					Usage:   "path to the YAML config",
					Value:   config.DefaultFile,
				},
				&cli.StringFlag{
					Name:  "suffix",
					Usage: "suffix replacing .go in output file names",
				},
				&cli.StringFlag{
					Name:  "log-level",
					Usage: "logging verbosity",
				},
				&cli.IntFlag{
					Name:  "workers",
					Usage: "files generated concurrently",
				},
			},
			Action: runGenerate,
		},
		{
			Name:      "inspect",
			Usage:     "print the fields bitgen sees in a file",
			ArgsUsage: "file",
			Action:    runInspect,
		},
	}
	return app
}

// loadConfig reads the config file and applies flag overrides.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, err
	}
	if c.IsSet("suffix") {
		cfg.OutputSuffix = c.String("suffix")
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}
	if c.IsSet("workers") {
		cfg.Workers = c.Int("workers")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runGenerate(c *cli.Context) error {
	if c.NArg() == 0 {
		return cli.Exit("generate: no input files", 2)
	}

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	logrus.SetLevel(cfg.Level())

	written, err := generateAll(c.Context, cfg, c.Args().Slice())
	if err != nil {
		return err
	}
	log.WithField("files", len(written)).Info("Generation complete")
	return nil
}
