package cc1101

import (
	"fmt"
	"strings"

	"github.com/hatstand/cc1101/addresses"
)

func (c *CC1101) getPATable() ([]byte, error) {
	return c.ReadBurst(addresses.PATable, addresses.PATableSize)
}

// setPATable always writes all eight slots, zero padded.
func (c *CC1101) setPATable(settings []byte) error {
	table := make([]byte, addresses.PATableSize)
	copy(table, settings)
	return c.WriteBurst(addresses.PATable, table)
}

// GetOutputPower returns the PATABLE entries in use, selected by PA_POWER in
// FREND0. In ASK/OOK mode the first entry is used for logical 0 and the last
// for logical 1.
func (c *CC1101) GetOutputPower() ([]byte, error) {
	table, err := c.getPATable()
	if err != nil {
		return nil, err
	}
	index, err := c.readField(paPower)
	if err != nil {
		return nil, err
	}
	return table[:index+1], nil
}

// SetOutputPower writes between one and eight power settings to PATABLE and
// points PA_POWER at the last one.
func (c *CC1101) SetOutputPower(levels []byte) error {
	if len(levels) < 1 || len(levels) > addresses.PATableSize {
		return invalid("output power", "expected 1 to %d power levels, got %d", addresses.PATableSize, len(levels))
	}
	if err := c.setPATable(levels); err != nil {
		return err
	}
	return c.writeField(paPower, byte(len(levels)-1))
}

// SetOutputPowerLevels is SetOutputPower for callers holding wider integers.
func (c *CC1101) SetOutputPowerLevels(levels []int) error {
	settings := make([]byte, len(levels))
	for i, l := range levels {
		if l < 0 || l > 0xff {
			return invalid("output power", "level %d at index %d outside [0, 255]", l, i)
		}
		settings[i] = byte(l)
	}
	return c.SetOutputPower(settings)
}

// FormatPATable renders power settings as a tuple literal, e.g. (0, 0xc6).
func FormatPATable(settings []byte, insertSpaces bool) string {
	parts := make([]string, len(settings))
	for i, s := range settings {
		if s == 0 {
			parts[i] = "0"
		} else {
			parts[i] = fmt.Sprintf("0x%02x", s)
		}
	}
	sep := ","
	if insertSpaces {
		sep = ", "
	}
	if len(parts) == 1 {
		return "(" + parts[0] + ",)"
	}
	return "(" + strings.Join(parts, sep) + ")"
}
