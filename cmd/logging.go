package cmd

import (
	"github.com/urfave/cli"

	"github.com/df07/go-pathtracer/pkg/log"
)

var logger = log.New("pathtracer")

// setupLogging raises verbosity from the global -v (info) and -vv (debug)
// flags. Without either flag the level is left as it is.
func setupLogging(ctx *cli.Context) {
	switch {
	case ctx.GlobalBool("vv"):
		log.SetLevel(log.Debug)
	case ctx.GlobalBool("v"):
		log.SetLevel(log.Info)
	}
}
