// This file is part of stm32f1.
//
// stm32f1 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// stm32f1 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with stm32f1.  If not, see <https://www.gnu.org/licenses/>.

// stm32f1 composes a model of the STM32F100 value-line SoC on the generic
// board and reports on the result. Preferences are given with the --prefs
// flag in the form "key::value; key::value". For example:
//
//	stm32f1 memmap --prefs "soc.density::medium"
//	stm32f1 regs rcc
//	stm32f1 memviz --prefs "board.ramsize::0x100000" | dot -Tsvg > soc.svg
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jetsetilly/stm32f1/hardware/board"
	"github.com/jetsetilly/stm32f1/hardware/preferences"
	"github.com/jetsetilly/stm32f1/logger"
	"github.com/jetsetilly/stm32f1/prefs"
	"github.com/jetsetilly/stm32f1/version"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func main() {
	// errors are printed here rather than by cobra so that they go through
	// logrus
	err := newRootCmd(os.Stdout, os.Stderr).Execute()
	if err != nil {
		log.Error(err)
		os.Exit(10)
	}
}

// session holds the values of the persistent flags and the machine created
// from them
type session struct {
	prefs    string
	firmware string
	verbose  bool
	echo     bool

	errOut io.Writer
}

func newRootCmd(out io.Writer, errOut io.Writer) *cobra.Command {
	sess := &session{errOut: errOut}

	root := &cobra.Command{
		Use:           version.ApplicationName,
		Short:         "Model of the STM32F100 value-line SoC.",
		Long:          "Compose the STM32F100 SoC on the generic board and report on its topology.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetOutput(errOut)
			if sess.verbose {
				log.SetLevel(log.DebugLevel)
			} else {
				log.SetLevel(log.InfoLevel)
			}
			if sess.echo {
				logger.SetEcho(echoWriter(errOut))
			}
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logger.SetEcho(nil)
		},
	}

	root.SetOut(out)
	root.SetErr(errOut)

	root.PersistentFlags().StringVar(&sess.prefs, "prefs", "", "preferences in the form \"key::value; key::value\"")
	root.PersistentFlags().StringVar(&sess.firmware, "firmware", "", "firmware image to load into flash")
	root.PersistentFlags().BoolVarP(&sess.verbose, "verbose", "v", false, "increase logging verbosity")
	root.PersistentFlags().BoolVar(&sess.echo, "echo", false, "echo the emulation log to stderr")

	root.AddCommand(
		newMemmapCmd(sess),
		newRegsCmd(sess),
		newIRQCmd(sess),
		newClocksCmd(sess),
		newMemvizCmd(sess),
		newPeekCmd(sess),
		newPrefsCmd(sess),
		newVersionCmd(),
	)

	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w\n\n%s", err, cmd.UsageString())
	})

	return root
}

// echoWriter colorizes the log echo if the output is a terminal
func echoWriter(w io.Writer) io.Writer {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return logger.NewColorizer(w)
	}
	return w
}

// preferences creates the preferences for the machine. any values given with
// the --prefs flag are applied
func (sess *session) preferences() (*preferences.Preferences, error) {
	if sess.prefs == "" {
		return preferences.NewPreferences()
	}

	prefs.PushCommandLineStack(sess.prefs)
	defer func() {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			log.Warnf("unused preferences: %s", unused)
		}
	}()

	return preferences.NewPreferences()
}

// machine creates a new generic board from the preferences and loads the
// firmware if one has been specified
func (sess *session) machine() (*board.Machine, error) {
	p, err := sess.preferences()
	if err != nil {
		return nil, err
	}
	log.Debugf("preferences:\n%s", p)

	m, err := board.NewGeneric(p)
	if err != nil {
		return nil, err
	}
	log.Debugf("composed %s density SoC", m.SoC.Density())

	if sess.firmware != "" {
		image, err := os.ReadFile(sess.firmware)
		if err != nil {
			return nil, err
		}
		err = m.LoadFirmware(image)
		if err != nil {
			return nil, err
		}
		log.Debugf("loaded firmware from %s", sess.firmware)
	}

	return m, nil
}
