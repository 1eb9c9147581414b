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

// Package board implements the generic STM32F1 machine. The machine is a
// board clock driving the SoC, optional PSRAM attached to the FSMC and a
// firmware image loaded into flash.
package board

import (
	"github.com/jetsetilly/stm32f1/curated"
	"github.com/jetsetilly/stm32f1/hardware/clocks"
	"github.com/jetsetilly/stm32f1/hardware/memory/memorymap"
	"github.com/jetsetilly/stm32f1/hardware/preferences"
	"github.com/jetsetilly/stm32f1/hardware/soc"
	"github.com/jetsetilly/stm32f1/logger"
)

// Description of the generic machine.
const Description = "STM32F1 generic (Cortex-M3)"

// PSRAMOrigin is the start of the first NOR/PSRAM bank of the FSMC.
const PSRAMOrigin = 0x60000000

// List of error patterns returned by the board.
const (
	RAMTooLarge     = "board: ram size of %d bytes is too large (maximum %d)"
	FirmwareTooLong = "board: firmware of %d bytes does not fit in %d bytes of flash"
	BoardError      = "board: %v"
)

// Machine is the generic STM32F1 board.
type Machine struct {
	Prefs *preferences.Preferences

	// the clock on the board that drives the SoC
	Sysclk *clocks.Clock

	SoC *soc.SoC

	// PSRAM is nil if the SoC has no FSMC or if the ram size preference is
	// zero
	PSRAM *memorymap.Region
}

// NewGeneric creates a new generic machine. The prefs argument can be nil, in
// which case a new Preferences instance will be created.
func NewGeneric(prefs *preferences.Preferences) (*Machine, error) {
	var err error

	if prefs == nil {
		prefs, err = preferences.NewPreferences()
		if err != nil {
			return nil, curated.Errorf(BoardError, err)
		}
	}

	ramSize := prefs.RAMSize.Get().(int64)
	if ramSize > preferences.MaxRAMSize {
		return nil, curated.Errorf(RAMTooLarge, ramSize, preferences.MaxRAMSize)
	}

	m := &Machine{
		Prefs:  prefs,
		Sysclk: clocks.NewClock("SYSCLK"),
	}

	err = m.Sysclk.SetHz(uint64(prefs.Sysclk.Get().(int64)))
	if err != nil {
		return nil, curated.Errorf(BoardError, err)
	}

	m.SoC, err = soc.Compose(soc.Config{
		Density: prefs.Density.String(),
		CPUType: prefs.CPUType.String(),
		Sysclk:  m.Sysclk,
	})
	if err != nil {
		return nil, curated.Errorf(BoardError, err)
	}

	// more RAM can be attached to the FSMC of high density parts
	if m.SoC.Parameters().HasFSMC && ramSize > 0 {
		m.PSRAM = memorymap.NewRAM("psram1", uint32(ramSize))
		err = m.SoC.Memory().Add(PSRAMOrigin, m.PSRAM)
		if err != nil {
			return nil, curated.Errorf(BoardError, err)
		}
		logger.Logf(logger.Allow, "board", "psram: %d bytes at %#08x", ramSize, PSRAMOrigin)
	}

	return m, nil
}

// LoadFirmware copies the firmware image into flash. The image is written
// from address zero, which is where the vector table is fetched from on
// reset.
func (m *Machine) LoadFirmware(image []byte) error {
	flashSize := m.SoC.Parameters().FlashSize
	if uint64(len(image)) > uint64(flashSize) {
		return curated.Errorf(FirmwareTooLong, len(image), flashSize)
	}
	err := m.SoC.Memory().Program(soc.AliasOrigin, image)
	if err != nil {
		return curated.Errorf(BoardError, err)
	}
	logger.Logf(logger.Allow, "board", "firmware: %d bytes loaded", len(image))
	return nil
}

// Reset the machine.
func (m *Machine) Reset() {
	m.SoC.Reset()
}
