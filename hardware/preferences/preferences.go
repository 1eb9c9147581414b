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

package preferences

import (
	"github.com/jetsetilly/stm32f1/curated"
	"github.com/jetsetilly/stm32f1/hardware/cpu"
	"github.com/jetsetilly/stm32f1/hardware/soc"
	"github.com/jetsetilly/stm32f1/prefs"
)

// MaxRAMSize is the largest external PSRAM that can be attached to the FSMC.
const MaxRAMSize = 256 * 1024 * 1024

// Sentinel error patterns.
const (
	UnknownCPUType = "preferences: unknown cpu type (%s)"
	InvalidSysclk  = "preferences: sysclk must be greater than zero (%d)"
	InvalidRAMSize = "preferences: ram size must be between 0 and %d (%d)"
)

// Default values.
const (
	DefaultDensity = "high"
	DefaultSysclk  = 24000000
	DefaultRAMSize = 0
)

// Preferences defines and collates the preference values used by the board.
type Preferences struct {
	group *prefs.Group

	// density variant of the SoC
	Density prefs.String

	// core type passed to the CPU handle
	CPUType prefs.String

	// frequency of the board clock that drives the SoC sysclk
	Sysclk prefs.Int

	// size of the PSRAM region. zero means no PSRAM
	RAMSize prefs.Int
}

func (p *Preferences) String() string {
	return p.group.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values in the top group of the command line stack are
// applied before the function returns.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{
		group: prefs.NewGroup(),
	}

	p.Density.SetHookPre(func(v prefs.Value) error {
		_, err := soc.ParseDensity(v.(string))
		return err
	})

	p.CPUType.SetHookPre(func(v prefs.Value) error {
		for _, t := range cpu.Types {
			if t == v.(string) {
				return nil
			}
		}
		return curated.Errorf(UnknownCPUType, v)
	})

	p.Sysclk.SetHookPre(func(v prefs.Value) error {
		if v.(int64) <= 0 {
			return curated.Errorf(InvalidSysclk, v)
		}
		return nil
	})

	p.RAMSize.SetHookPre(func(v prefs.Value) error {
		n := v.(int64)
		if n < 0 || n > MaxRAMSize {
			return curated.Errorf(InvalidRAMSize, MaxRAMSize, n)
		}
		return nil
	})

	err := p.SetDefaults()
	if err != nil {
		return nil, err
	}

	err = p.group.Add("soc.density", &p.Density)
	if err != nil {
		return nil, err
	}
	err = p.group.Add("soc.cputype", &p.CPUType)
	if err != nil {
		return nil, err
	}
	err = p.group.Add("board.sysclk", &p.Sysclk)
	if err != nil {
		return nil, err
	}
	err = p.group.Add("board.ramsize", &p.RAMSize)
	if err != nil {
		return nil, err
	}

	err = p.group.ApplyCommandLine()
	if err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all settings to default values.
func (p *Preferences) SetDefaults() error {
	err := p.Density.Set(DefaultDensity)
	if err != nil {
		return err
	}
	err = p.CPUType.Set(soc.DefaultCPUType)
	if err != nil {
		return err
	}
	err = p.Sysclk.Set(DefaultSysclk)
	if err != nil {
		return err
	}
	return p.RAMSize.Set(DefaultRAMSize)
}

// Set the preference value named by key.
func (p *Preferences) Set(key string, v prefs.Value) error {
	return p.group.Set(key, v)
}
