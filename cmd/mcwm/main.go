// Command mcwm is a minimalist stacking window manager for X11.
package main

import (
	"os"

	"github.com/kebigon/mcwm/config"
	"github.com/kebigon/mcwm/store"
	"github.com/kebigon/mcwm/wm"

	log "github.com/sirupsen/logrus"
)

func main() {
	log.SetLevel(log.InfoLevel)
	if os.Getenv("MCWM_DEBUG") != "" {
		log.SetLevel(log.DebugLevel)
	}

	cfg := config.Parse(os.Args[1:])

	root, err := store.Connect()
	if err != nil {
		log.WithFields(log.Fields{"err": err}).Fatal("mcwm: failed to connect to X display")
	}

	ctx, err := wm.Bootstrap(root, cfg)
	if err != nil {
		log.WithFields(log.Fields{"err": err}).Fatal("mcwm: failed to initialize")
	}

	code := wm.Run(ctx)
	wm.Teardown(ctx)
	os.Exit(code)
}
