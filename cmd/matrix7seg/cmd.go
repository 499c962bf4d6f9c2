package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/flavioheleno/matrix7seg"
	"github.com/flavioheleno/matrix7seg/glyph"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func RootCmd() *cobra.Command {
	var configFile string

	rootCmd := &cobra.Command{
		Use:   "matrix7seg",
		Short: "Drive an 8-digit seven-segment display",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if cmd.Flags().Lookup("debug").Changed {
				log.SetLevel(log.DebugLevel)
			}
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newNumberCmd(&configFile))
	rootCmd.AddCommand(newTextCmd(&configFile))
	rootCmd.AddCommand(newRawCmd(&configFile))
	rootCmd.AddCommand(newClearCmd(&configFile))
	rootCmd.AddCommand(newTestCmd(&configFile))
	rootCmd.AddCommand(newGlyphsCmd())
	rootCmd.PersistentFlags().Bool("debug", false, "Turn on debug logging.")
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "YAML configuration file. Dry run when empty.")

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Prints the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s (built: %s)\n", buildVersion, buildTime)
		},
	}
}

func newNumberCmd(configFile *string) *cobra.Command {
	var layout matrix7seg.Layout
	cmd := &cobra.Command{
		Use:   "number <value>",
		Short: "Show an integer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("not an integer: %q", args[0])
			}
			table := glyph.Normal
			if layout.Rotated {
				table = glyph.Rotated
			}
			return withDevice(*configFile, table, func(dev *matrix7seg.Dev) error {
				if err := dev.WriteNumber(value, layout); err != nil {
					return err
				}
				return dev.Show()
			})
		},
	}

	cmd.Flags().BoolVarP(&layout.ZeroPad, "zero-pad", "z", false, "Pad with zeros instead of spaces.")
	cmd.Flags().BoolVarP(&layout.LeftJustify, "left", "l", false, "Left justify the value.")
	cmd.Flags().BoolVarP(&layout.Rotated, "rotate", "r", false, "Use the rotated digit set.")

	return cmd
}

func newTextCmd(configFile *string) *cobra.Command {
	var layout matrix7seg.Layout
	cmd := &cobra.Command{
		Use:   "text <value>",
		Short: "Show a string of up to 8 characters",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDevice(*configFile, glyph.Normal, func(dev *matrix7seg.Dev) error {
				if err := dev.WriteString(args[0], layout); err != nil {
					return err
				}
				return dev.Show()
			})
		},
	}

	cmd.Flags().BoolVarP(&layout.ZeroPad, "zero-pad", "z", false, "Pad with zeros instead of spaces.")
	cmd.Flags().BoolVarP(&layout.LeftJustify, "left", "l", false, "Left justify the value.")

	return cmd
}

func newRawCmd(configFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "raw <position> <mask>",
		Short: "Set the segments of one digit, position 1 being the rightmost",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("not a position: %q", args[0])
			}
			mask, err := strconv.ParseUint(args[1], 0, 8)
			if err != nil {
				return fmt.Errorf("not a segment mask: %q", args[1])
			}
			return withDevice(*configFile, glyph.Normal, func(dev *matrix7seg.Dev) error {
				if err := dev.WriteRaw(pos, byte(mask)); err != nil {
					return err
				}
				return dev.Show()
			})
		},
	}
}

func newClearCmd(configFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Blank the display",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDevice(*configFile, glyph.Normal, func(dev *matrix7seg.Dev) error {
				return dev.Clear()
			})
		},
	}
}

func newTestCmd(configFile *string) *cobra.Command {
	var duration time.Duration
	cmd := &cobra.Command{
		Use:   "test",
		Short: "Light every segment for a while",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDevice(*configFile, glyph.Normal, func(dev *matrix7seg.Dev) error {
				if err := dev.TestDisplay(true); err != nil {
					return err
				}
				log.Infof("Display test for %v", duration)
				time.Sleep(duration)
				return dev.TestDisplay(false)
			})
		},
	}

	cmd.Flags().DurationVarP(&duration, "duration", "d", 2*time.Second, "How long to keep the test pattern on.")

	return cmd
}

func newGlyphsCmd() *cobra.Command {
	var rotated bool
	cmd := &cobra.Command{
		Use:   "glyphs",
		Short: "List the available characters and their segment masks",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			table := glyph.Normal
			if rotated {
				table = glyph.Rotated
			}
			for _, r := range table.Runes() {
				mask, _ := table.Lookup(r)
				fmt.Fprintf(cmd.OutOrStdout(), "%q\t0x%02x\n", r, mask)
			}
		},
	}

	cmd.Flags().BoolVarP(&rotated, "rotated", "r", false, "List the rotated digit set.")

	return cmd
}

// withDevice opens the configured display, applies the intensity and runs fn.
// table is only used to log what ended up in the buffer.
func withDevice(configFile string, table *glyph.Table, fn func(dev *matrix7seg.Dev) error) error {
	conf, err := readConfig(configFile)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	dev, closeDev, err := openDevice(conf)
	if err != nil {
		return err
	}
	defer closeDev()

	if err := dev.SetIntensity(byte(conf.Intensity)); err != nil {
		return err
	}
	if err := fn(dev); err != nil {
		return err
	}

	for pos := matrix7seg.NumDigits; pos >= 1; pos-- {
		if _, ok := dev.Digit(pos); !ok {
			log.Warnf("No glyph for position %d, it is left blank", pos)
		}
	}
	log.WithField("digits", fmt.Sprintf("[%s]", render(dev.Buffer(), table))).Infof("Display updated on %v", dev)
	return nil
}
