package cc1101

import (
	"github.com/hatstand/cc1101/addresses"
	"go.uber.org/zap"
)

const (
	// The synthesizer cannot go below this when transmitting, see "Table 4:
	// RF Transmit Section" of the datasheet.
	transmitMinFrequencyHertz = 281.7e6
	// Requests within this margin of the floor are not reported.
	transmitMinFrequencyToleranceHertz = 50e3

	LowFrequencyWarning = "CC1101 is unable to transmit at frequencies below 281.7 MHz"
)

func (c *CC1101) getBaseFrequencyControlWord() ([3]byte, error) {
	b, err := c.ReadBurst(byte(addresses.FREQ2), 3)
	if err != nil {
		return [3]byte{}, err
	}
	return [3]byte{b[0], b[1], b[2]}, nil
}

func (c *CC1101) setBaseFrequencyControlWord(word [3]byte) error {
	return c.WriteBurst(byte(addresses.FREQ2), word[:])
}

func (c *CC1101) GetBaseFrequencyHertz() (float64, error) {
	word, err := c.getBaseFrequencyControlWord()
	if err != nil {
		return 0, err
	}
	return c.crystal.FrequencyControlWordToHertz(word), nil
}

// SetBaseFrequencyHertz programs FREQ2..FREQ0. Frequencies below the
// transmit floor are still written, with a warning logged.
func (c *CC1101) SetBaseFrequencyHertz(hz float64) error {
	word, err := c.crystal.HertzToFrequencyControlWord(hz)
	if err != nil {
		return err
	}
	if hz < transmitMinFrequencyHertz-transmitMinFrequencyToleranceHertz {
		c.log.Warn(LowFrequencyWarning, zap.Float64("hertz", hz))
	}
	return c.setBaseFrequencyControlWord(word)
}
