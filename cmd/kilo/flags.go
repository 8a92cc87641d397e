// ABOUTME: CLI flag parsing using stdlib flag package
// ABOUTME: Supports --version, --config, --log, --debug

package main

import "flag"

type cliArgs struct {
	version    bool
	configPath string
	logPath    string
	debug      bool
}

func parseFlags() cliArgs {
	var args cliArgs

	flag.BoolVar(&args.version, "version", false, "Show version and exit")
	flag.StringVar(&args.configPath, "config", "", "YAML settings file")
	flag.StringVar(&args.logPath, "log", "", "Append log lines to this file")
	flag.BoolVar(&args.debug, "debug", false, "Log at debug level")

	flag.Parse()
	return args
}
