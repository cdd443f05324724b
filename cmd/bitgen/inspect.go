package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/alexhholmes/bitfield/internal/parser"
)

func runInspect(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("inspect: expected exactly one file", 2)
	}
	w := c.App.Writer

	file, err := parser.ParseFile(c.Args().First())
	if err != nil {
		return err
	}

	if len(file.Types) == 0 {
		fmt.Fprintln(w, "No types with @bitfield annotations found")
		return nil
	}

	layouts, err := analyzeFile(file)
	for _, a := range layouts {
		fmt.Fprintf(w, "\n%s -> %s (storage=%s, %d bits)\n", a.Source, a.TypeName, a.Storage, a.StorageWidth)
		fmt.Fprintln(w, "Fields:")
		for _, f := range a.Fields {
			fmt.Fprintf(w, "  %-15s %-10s %s\n", f.Spec.Name, f.Raw, f.Spec)
		}
		for _, e := range a.Errors {
			fmt.Fprintf(w, "  error: %s\n", e)
		}
	}
	return err
}
