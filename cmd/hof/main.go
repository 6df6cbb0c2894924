package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/pflag"

	"github.com/joncabrerasu/HigherOrderFunctions/examples"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Println(err)
		os.Exit(1)
	}

	os.Exit(0)
}

func run(args []string, out io.Writer) error {
	flags := pflag.NewFlagSet("hof", pflag.ContinueOnError)

	list := flags.Bool("list", false, "print the example names and exit")
	only := flags.StringSlice("run", nil, "run only these examples, in this order")
	debug := flags.Bool("debug", false, "log the value returned by each example")

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	if flags.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", flags.Args())
	}

	if *list {
		for _, e := range examples.All() {
			fmt.Fprintln(out, e.Name)
		}
		return nil
	}

	_, err := examples.NewRunner(out, *debug).Run(*only...)
	return err
}
