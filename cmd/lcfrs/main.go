package main

import (
	"os"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/pterm/pterm"
)

// Version is the version of the lcfrs command.
var Version = "0.1.0"

func main() {
	initDisplay()
	initTracing()
	if err := newRootCmd().Execute(); err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// All packages share a single Go logger based tracer, writing to stderr.
func initTracing() {
	tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))
	tracer().SetTraceLevel(tracing.LevelError)
}

func setTraceLevel(level string) {
	tracer().SetTraceLevel(tracing.TraceLevelFromString(level))
	tracer().Infof("Trace level is %s", tracer().GetTraceLevel())
}
