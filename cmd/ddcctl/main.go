// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// ddcctl reads and changes monitor settings over DDC/CI.
//
// Without a command it describes every monitor found. Monitors are found on
// the I²C buses periph knows about; on Linux these are the /dev/i2c-N buses
// created by the graphics driver for each connector, and the i2c-dev kernel
// module must be loaded.
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"periph.io/x/host/v3"

	"github.com/GermanBionicSystems/ddcci/ddcci"
	"github.com/GermanBionicSystems/ddcci/vcp"
)

// Set by ldflags.
var version = "devel"

// app is the state shared by the commands.
type app struct {
	cfg        Config
	configFlag string
	debug      bool
	bus        string
	out        io.Writer
	// open returns the monitors on bus, or on every bus when empty.
	open func(bus string, opts *ddcci.Opts) ([]*ddcci.Dev, error)
}

func main() {
	a := &app{out: os.Stdout, open: enumerate}
	if err := execute(a, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// execute runs the command line args.
func execute(a *app, args []string) error {
	root := newRootCmd(a)
	root.SetOut(a.out)
	root.SetArgs(numericArgs(args))
	return root.Execute()
}

// valueFlags are the flags taking a separate value.
var valueFlags = map[string]bool{"--config": true, "--bus": true, "--png": true}

// numericArgs inserts "--" before the first negative number so that values
// like the -1 of "rgb -1 90 -1" are not parsed as shorthand flags. Flags
// following it are moved in front of the "--".
func numericArgs(args []string) []string {
	for i, arg := range args {
		if arg == "--" {
			return args
		}
		if !isNegative(arg) || (i > 0 && valueFlags[args[i-1]]) {
			continue
		}
		var flags, values []string
		for j := i; j < len(args); j++ {
			switch {
			case args[j] == "--":
				values = append(values, args[j+1:]...)
				j = len(args)
			case strings.HasPrefix(args[j], "-") && !isNegative(args[j]):
				flags = append(flags, args[j])
				if valueFlags[args[j]] && j+1 < len(args) {
					j++
					flags = append(flags, args[j])
				}
			default:
				values = append(values, args[j])
			}
		}
		out := append(append([]string{}, args[:i]...), flags...)
		out = append(out, "--")
		return append(out, values...)
	}
	return args
}

func isNegative(arg string) bool {
	if len(arg) < 2 || arg[0] != '-' {
		return false
	}
	_, err := strconv.Atoi(arg)
	return err == nil
}

func enumerate(bus string, opts *ddcci.Opts) ([]*ddcci.Dev, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("%w: %v", ddcci.ErrEnumeration, err)
	}
	return ddcci.Enumerate(bus, opts)
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "ddcctl",
		Short: "Control monitors over DDC/CI",
		Long: `ddcctl reads and changes monitor settings such as brightness, contrast,
color preset and input source over DDC/CI.

Without a command, every monitor is described.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return a.setup()
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.describe(false, "")
		},
	}
	root.PersistentFlags().StringVar(&a.configFlag, "config", "", "config file (default $"+configEnv+" or <user config dir>/ddcctl/config.toml)")
	root.PersistentFlags().BoolVar(&a.debug, "debug", false, "enable debug logging")
	root.PersistentFlags().StringVar(&a.bus, "bus", "", "only use the I²C bus with this name or alias")

	root.AddCommand(versionCmd())
	root.AddCommand(describeCmd(a))
	root.AddCommand(capsCmd(a))
	root.AddCommand(continuousCmd(a, "brightness", "luminance", (*ddcci.Dev).Brightness, (*ddcci.Dev).SetBrightness))
	root.AddCommand(continuousCmd(a, "contrast", "contrast", (*ddcci.Dev).Contrast, (*ddcci.Dev).SetContrast))
	root.AddCommand(continuousCmd(a, "temperature", "color temperature in kelvins", (*ddcci.Dev).ColorTemperature, (*ddcci.Dev).SetColorTemperature))
	root.AddCommand(rgbCmd(a))
	root.AddCommand(enumCmd(a, "preset", "color preset", vcp.Presets, vcp.ParsePreset, (*ddcci.Dev).ColorPreset, (*ddcci.Dev).SetColorPreset))
	root.AddCommand(enumCmd(a, "input", "input source", vcp.Inputs, vcp.ParseInput, (*ddcci.Dev).InputSource, (*ddcci.Dev).SetInputSource))
	root.AddCommand(enumCmd(a, "power", "power mode", vcp.Powers, vcp.ParsePower, (*ddcci.Dev).PowerMode, (*ddcci.Dev).SetPowerMode))
	root.AddCommand(enumCmd(a, "app", "display application", vcp.Applications, vcp.ParseApplication, (*ddcci.Dev).DisplayApplication, (*ddcci.Dev).SetDisplayApplication))
	root.AddCommand(restoreCmd(a))
	root.AddCommand(getCmd(a))
	root.AddCommand(setCmd(a))
	return root
}

// setup loads the config and configures logging.
func (a *app) setup() error {
	p, err := configPath(a.configFlag)
	if err != nil {
		return err
	}
	if a.cfg, err = LoadConfig(p); err != nil {
		return err
	}
	if a.bus == "" {
		a.bus = a.cfg.Bus
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if a.debug || a.cfg.DebugLogging {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Debug().Str("config", p).Str("bus", a.bus).Strs("models", a.cfg.Models).Msg("loaded config")
	return nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		// The version does not need a config.
		PersistentPreRun: func(_ *cobra.Command, _ []string) {},
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "ddcctl %s\n", version)
		},
	}
}
