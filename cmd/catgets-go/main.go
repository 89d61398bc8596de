package main

import (
	"log"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/snapcore/go-catgets/internal/nlscli"
)

func main() {
	// parse args
	var opts nlscli.Options
	args, err := flags.ParseArgs(&opts, os.Args)
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}
	if len(args) < 2 {
		log.Fatalf("missing catalog name")
	}

	code, err := nlscli.Query(os.Stdout, opts, args[1])
	if err != nil {
		log.Fatalf("%v", err)
	}
	os.Exit(code)
}
