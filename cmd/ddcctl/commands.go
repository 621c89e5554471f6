// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/GermanBionicSystems/ddcci/card"
	"github.com/GermanBionicSystems/ddcci/ddcci"
	"github.com/GermanBionicSystems/ddcci/swatch"
	"github.com/GermanBionicSystems/ddcci/vcp"
)

// errNoMonitor is returned when no bus has a display answering DDC/CI.
var errNoMonitor = errors.New("no DDC/CI monitor found")

// each runs fn on every monitor passing the model allow-list. A failing
// monitor is logged and does not stop the others.
func (a *app) each(fn func(d *ddcci.Dev) error) error {
	devs, err := a.open(a.bus, a.cfg.Opts())
	if err != nil {
		return err
	}
	if len(devs) == 0 {
		return errNoMonitor
	}
	defer func() {
		for _, d := range devs {
			if err := d.Close(); err != nil {
				log.Warn().Err(err).Str("bus", d.Name()).Msg("failed to release monitor")
			}
		}
	}()
	matched, failed := 0, 0
	for _, d := range devs {
		model, err := d.Model()
		if err != nil {
			log.Error().Err(err).Str("bus", d.Name()).Msg("failed to read capabilities")
			failed++
			continue
		}
		if !a.cfg.Allowed(model) {
			log.Debug().Str("bus", d.Name()).Str("model", model).Msg("model not in allow-list")
			continue
		}
		matched++
		if err := fn(d); err != nil {
			log.Error().Err(err).Str("bus", d.Name()).Str("model", model).Msg("monitor failed")
			failed++
		}
	}
	if failed != 0 {
		return fmt.Errorf("%d of %d monitors failed", failed, len(devs))
	}
	if matched == 0 {
		return errors.New("no monitor matched the models allow-list")
	}
	return nil
}

func describeCmd(a *app) *cobra.Command {
	var (
		jsonOut bool
		pngPath string
	)
	cmd := &cobra.Command{
		Use:   "describe",
		Short: "Describe every monitor",
		Long: `Print the identification and the current settings of every monitor.

Examples:
  # Machine readable
  ddcctl describe --json

  # Render a card per monitor, written to monitor-<bus>.png
  ddcctl describe --png monitor.png

  # Render the card of one monitor to monitor.png
  ddcctl describe --bus i2c-4 --png monitor.png`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.describe(jsonOut, pngPath)
		},
	}
	cmd.Flags().BoolVar(&jsonOut, "json", false, "print one JSON object per monitor")
	cmd.Flags().StringVar(&pngPath, "png", "", "render the description as a PNG card")
	return cmd
}

func (a *app) describe(jsonOut bool, pngPath string) error {
	return a.each(func(d *ddcci.Dev) error {
		desc, err := d.Describe()
		if err != nil {
			return err
		}
		white := whitePoint(d, desc)
		if pngPath != "" {
			p := pngPath
			if a.bus == "" {
				p = pngName(pngPath, d.Name())
			}
			if err := writeCard(p, desc, white); err != nil {
				return err
			}
			log.Info().Str("bus", d.Name()).Str("file", p).Msg("wrote card")
		}
		if jsonOut {
			return json.NewEncoder(a.out).Encode(desc)
		}
		fmt.Fprintf(a.out, "%s\n", d.Name())
		for _, f := range desc.Fields() {
			fmt.Fprintf(a.out, "  %-24s %s\n", f.Label, f.Value)
		}
		if white != nil && isTerminal(a.out) {
			s := swatch.New(&swatch.Opts{})
			fmt.Fprintf(a.out, "  %-24s ", "white point")
			if err := s.Show(*white); err != nil {
				return err
			}
			return s.Halt()
		}
		return nil
	})
}

// whitePoint returns the color of white given the monitor's gains, or nil
// when the gains were not reported.
func whitePoint(d *ddcci.Dev, desc *ddcci.Description) *color.NRGBA {
	if desc.RGB == nil {
		return nil
	}
	maxRGB, err := d.MaxRGB()
	if err != nil {
		log.Debug().Err(err).Str("bus", d.Name()).Msg("no gain maximums")
		return nil
	}
	c := swatch.Gains(*desc.RGB, maxRGB)
	return &c
}

// pngName inserts bus before the extension of p.
func pngName(p, bus string) string {
	ext := filepath.Ext(p)
	return strings.TrimSuffix(p, ext) + "-" + bus + ext
}

func writeCard(p string, desc *ddcci.Description, white *color.NRGBA) error {
	opts := card.DefaultOpts
	if white != nil {
		opts.Swatch = *white
	}
	f, err := os.Create(p)
	if err != nil {
		return err
	}
	if err := card.WritePNG(f, desc.Name, desc.Fields(), &opts); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func isTerminal(w any) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func capsCmd(a *app) *cobra.Command {
	var parsed bool
	cmd := &cobra.Command{
		Use:   "caps",
		Short: "Print the capabilities string of every monitor",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.each(func(d *ddcci.Dev) error {
				if parsed {
					c, err := d.Capabilities()
					if err != nil {
						return err
					}
					fmt.Fprintf(a.out, "%s: %s\n", d.Name(), c)
					return nil
				}
				raw, err := d.RawCapabilities()
				if err != nil {
					return err
				}
				fmt.Fprintf(a.out, "%s: %s\n", d.Name(), raw)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&parsed, "parsed", false, "print the parsed capabilities in canonical form")
	return cmd
}

func continuousCmd(a *app, use, what string, get func(*ddcci.Dev) (int, error), set func(*ddcci.Dev, int) error) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [N]",
		Short: "Get or set the " + what,
		Long: "Without argument, print the " + what + " of every monitor. With N, set it.\n" +
			"Values outside the range the monitor reports are clamped.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if len(args) == 0 {
				return a.each(func(d *ddcci.Dev) error {
					v, err := get(d)
					if err != nil {
						return err
					}
					fmt.Fprintf(a.out, "%s: %d\n", d.Name(), v)
					return nil
				})
			}
			v, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid %s %q", what, args[0])
			}
			return a.each(func(d *ddcci.Dev) error {
				return set(d, v)
			})
		},
	}
}

func rgbCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rgb [R G B]",
		Short: "Get or set the red, green and blue gains",
		Long:  "Without argument, print the gains of every monitor. With R G B, set them; -1 keeps a channel.",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 3 {
				return fmt.Errorf("accepts 0 or 3 arg(s), received %d", len(args))
			}
			return nil
		},
		RunE: func(_ *cobra.Command, args []string) error {
			if len(args) == 0 {
				return a.each(func(d *ddcci.Dev) error {
					v, err := d.RGB()
					if err != nil {
						return err
					}
					fmt.Fprintf(a.out, "%s: %d %d %d\n", d.Name(), v[0], v[1], v[2])
					return nil
				})
			}
			var v [3]int
			for i, s := range args {
				n, err := strconv.Atoi(s)
				if err != nil {
					return fmt.Errorf("invalid gain %q", s)
				}
				v[i] = n
			}
			return a.each(func(d *ddcci.Dev) error {
				return d.SetRGB(v[0], v[1], v[2])
			})
		},
	}
}

func enumCmd[T vcp.Enum](a *app, use, what string, values []T, parse func(string) (T, error), get func(*ddcci.Dev) (T, error), set func(*ddcci.Dev, string) error) *cobra.Command {
	names := make([]string, len(values))
	for i, v := range values {
		names[i] = v.String()
	}
	return &cobra.Command{
		Use:       use + " [NAME]",
		Short:     "Get or set the " + what,
		Long:      "Without argument, print the " + what + " of every monitor. With NAME, set it.\nNAME is one of: " + strings.Join(names, ", "),
		ValidArgs: names,
		Args:      cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if len(args) == 0 {
				return a.each(func(d *ddcci.Dev) error {
					v, err := get(d)
					if err != nil {
						return err
					}
					fmt.Fprintf(a.out, "%s: %s\n", d.Name(), v)
					return nil
				})
			}
			if _, err := parse(args[0]); err != nil {
				return err
			}
			return a.each(func(d *ddcci.Dev) error {
				return set(d, args[0])
			})
		},
	}
}

func restoreCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:       "restore all|luminance|color",
		Short:     "Restore factory defaults",
		ValidArgs: []string{"all", "luminance", "color"},
		Args:      cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if _, err := vcp.ParseRestore(args[0]); err != nil {
				return err
			}
			return a.each(func(d *ddcci.Dev) error {
				return d.Restore(args[0])
			})
		},
	}
}

func getCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get NAME",
		Short: "Read a raw feature by name",
		Long:  "Print the current and maximum value of a feature.\nNAME is one of: " + strings.Join(vcp.Names(), ", "),
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if _, err := vcp.CodeFor(args[0]); err != nil {
				return err
			}
			return a.each(func(d *ddcci.Dev) error {
				cur, maximum, err := d.Feature(args[0])
				if err != nil {
					return err
				}
				fmt.Fprintf(a.out, "%s: %d/%d\n", d.Name(), cur, maximum)
				return nil
			})
		},
	}
}

func setCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set NAME VALUE",
		Short: "Write a raw feature by name",
		Long:  "Write VALUE as is; there is no clamping.\nVALUE is decimal or 0x prefixed hexadecimal.",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			if _, err := vcp.CodeFor(args[0]); err != nil {
				return err
			}
			v, err := strconv.ParseUint(args[1], 0, 16)
			if err != nil {
				return fmt.Errorf("invalid value %q", args[1])
			}
			return a.each(func(d *ddcci.Dev) error {
				return d.SetFeature(args[0], uint32(v))
			})
		},
	}
}
