package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/goxwm/goxwm/internal/wm"
	"github.com/goxwm/goxwm/internal/x11"
)

const progName = "goxwm"

var nameSuffix = ""     // set by build
var version = "unknown" // ditto
var distribution = "custom"

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s [-v]\n", progName)
}

func main() {
	appName := progName
	if nameSuffix != "" {
		appName += "-" + nameSuffix
	}

	var printVersion bool
	flag.BoolVar(&printVersion, "v", false, "print version and exit")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() > 0 {
		usage()
		os.Exit(1)
	}

	if printVersion {
		fmt.Printf("%s-%s (%s)\n", progName, version, distribution)
		return
	}

	log := logrus.New()
	log.SetOutput(os.Stderr)
	if os.Getenv("GOXWM_DEBUG") != "" {
		log.SetLevel(logrus.DebugLevel)
	}
	entry := logrus.NewEntry(log).WithField("component", "goxwm")

	cfg := wm.DefaultConfig()
	display, err := x11.Connect(x11.Config{
		FontName:    cfg.FontName,
		Colors:      cfg.Colors,
		BorderPixel: uint32(cfg.BorderPx),
	}, entry)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: cannot open display: %v\n", progName, err)
		os.Exit(1)
	}

	defaultTitle := fmt.Sprintf("%s-%s", appName, version)
	engine := wm.New(display, cfg, entry, defaultTitle)

	if err := engine.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: startup failed: %v\n", progName, err)
		os.Exit(1)
	}

	if err := engine.Run(); err != nil {
		entry.WithError(err).Error("event loop exited")
		engine.Shutdown()
		os.Exit(1)
	}

	engine.Shutdown()
}
