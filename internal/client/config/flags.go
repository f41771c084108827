package config

import (
	"flag"
	"os"
	"time"

	"livecontent/internal/flagx"
)

// parseFlags populates selected client Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   server base URL
//	-i int      poll interval, seconds (0 disables polling)
//	-t int      request timeout, seconds
//	-f string   fallback document path
//	-r string   local override file path
//	-m string   binding manifest path
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-i", "-t", "-f", "-r", "-m"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.ServerURL, "a", config.ServerURL, "server base URL")

	pollInterval := fs.Int("i", int(config.PollInterval.Seconds()), "poll interval (in seconds, 0 disables)")
	requestTimeout := fs.Int("t", int(config.RequestTimeout.Seconds()), "request timeout (in seconds)")

	fs.StringVar(&config.FallbackPath, "f", config.FallbackPath, "fallback document path")
	fs.StringVar(&config.OverridePath, "r", config.OverridePath, "local override file path")
	fs.StringVar(&config.ManifestPath, "m", config.ManifestPath, "binding manifest path")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.PollInterval = time.Duration(*pollInterval) * time.Second
	config.RequestTimeout = time.Duration(*requestTimeout) * time.Second
}
