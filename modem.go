package cc1101

import (
	"github.com/hatstand/cc1101/addresses"
)

// GetSymbolRateBaud decodes DRATE_M and DRATE_E.
func (c *CC1101) GetSymbolRateBaud() (float64, error) {
	b, err := c.ReadBurst(byte(addresses.MDMCFG4), 2)
	if err != nil {
		return 0, err
	}
	exponent := symbolRateExponent.get(b[0])
	mantissa := symbolRateMantissa.get(b[1])
	return c.crystal.SymbolRateFloatingPointToReal(mantissa, exponent), nil
}

// SetSymbolRateBaud writes the closest representable symbol rate. The
// channel bandwidth bits sharing MDMCFG4 are preserved.
func (c *CC1101) SetSymbolRateBaud(baud float64) error {
	mantissa, exponent, err := c.crystal.SymbolRateRealToFloatingPoint(baud)
	if err != nil {
		return err
	}
	mdmcfg4, err := c.readRegister(addresses.MDMCFG4)
	if err != nil {
		return err
	}
	return c.WriteBurst(byte(addresses.MDMCFG4), []byte{
		symbolRateExponent.set(mdmcfg4, exponent),
		symbolRateMantissa.set(0, mantissa),
	})
}

// GetFilterBandwidthHertz decodes CHANBW_M and CHANBW_E.
func (c *CC1101) GetFilterBandwidthHertz() (float64, error) {
	mdmcfg4, err := c.readRegister(addresses.MDMCFG4)
	if err != nil {
		return 0, err
	}
	return c.crystal.FilterBandwidthFloatingPointToReal(
		filterBandwidthMantissa.get(mdmcfg4),
		filterBandwidthExponent.get(mdmcfg4),
	), nil
}

// SetFilterBandwidthHertz selects the channel filter bandwidth closest to hz.
// The symbol rate exponent sharing MDMCFG4 is preserved.
func (c *CC1101) SetFilterBandwidthHertz(hz float64) error {
	mantissa, exponent, err := c.crystal.FilterBandwidthRealToFloatingPoint(hz)
	if err != nil {
		return err
	}
	mdmcfg4, err := c.readRegister(addresses.MDMCFG4)
	if err != nil {
		return err
	}
	mdmcfg4 = filterBandwidthMantissa.set(mdmcfg4, mantissa)
	mdmcfg4 = filterBandwidthExponent.set(mdmcfg4, exponent)
	return c.writeRegister(addresses.MDMCFG4, mdmcfg4)
}

func (c *CC1101) GetModulationFormat() (ModulationFormat, error) {
	v, err := c.readField(modFormat)
	return ModulationFormat(v), err
}

func (c *CC1101) SetModulationFormat(format ModulationFormat) error {
	if !format.valid() {
		return invalid("modulation format", "%v", format)
	}
	return c.writeField(modFormat, byte(format))
}

func (c *CC1101) GetSyncMode() (SyncMode, error) {
	v, err := c.readField(syncMode)
	return SyncMode(v), err
}

func (c *CC1101) SetSyncMode(mode SyncMode) error {
	return c.writeField(syncMode, byte(mode))
}

// NUM_PREAMBLE encodings, see "Table 35: MDMCFG1" of the datasheet.
var preambleLengths = [...]int{2, 3, 4, 6, 8, 12, 16, 24}

// GetPreambleLengthBytes returns the minimum number of preamble bytes
// transmitted.
func (c *CC1101) GetPreambleLengthBytes() (int, error) {
	v, err := c.readField(numPreamble)
	if err != nil {
		return 0, err
	}
	return preambleLengths[v], nil
}

func (c *CC1101) SetPreambleLengthBytes(length int) error {
	for i, l := range preambleLengths {
		if l == length {
			return c.writeField(numPreamble, byte(i))
		}
	}
	return invalid("preamble length", "%d bytes, expected one of %v", length, preambleLengths)
}
