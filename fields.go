package cc1101

import "github.com/hatstand/cc1101/addresses"

// bitField is a run of bits inside a single configuration register.
type bitField struct {
	register addresses.ConfigurationRegisterAddress
	offset   uint8
	width    uint8
}

var (
	// PKTCTRL0
	lengthConfig = bitField{addresses.PKTCTRL0, 0, 2}
	crcEnable    = bitField{addresses.PKTCTRL0, 2, 1}
	pktFormat    = bitField{addresses.PKTCTRL0, 4, 2}
	whiteData    = bitField{addresses.PKTCTRL0, 6, 1}

	// MDMCFG4..MDMCFG1
	symbolRateExponent      = bitField{addresses.MDMCFG4, 0, 4}
	filterBandwidthMantissa = bitField{addresses.MDMCFG4, 4, 2}
	filterBandwidthExponent = bitField{addresses.MDMCFG4, 6, 2}
	symbolRateMantissa      = bitField{addresses.MDMCFG3, 0, 8}
	syncMode                = bitField{addresses.MDMCFG2, 0, 2}
	modFormat               = bitField{addresses.MDMCFG2, 4, 3}
	numPreamble             = bitField{addresses.MDMCFG1, 4, 3}

	// FREND0
	paPower = bitField{addresses.FREND0, 0, 3}
)

func (f bitField) mask() byte {
	return byte((1<<f.width - 1) << f.offset)
}

func (f bitField) max() byte {
	return byte(1<<f.width - 1)
}

func (f bitField) get(b byte) byte {
	return (b & f.mask()) >> f.offset
}

func (f bitField) set(b, v byte) byte {
	return b&^f.mask() | (v<<f.offset)&f.mask()
}

func (c *CC1101) readField(f bitField) (byte, error) {
	b, err := c.readRegister(f.register)
	if err != nil {
		return 0, err
	}
	return f.get(b), nil
}

// writeField re-reads the register and writes it back with only f replaced.
func (c *CC1101) writeField(f bitField, v byte) error {
	if v > f.max() {
		return invalid(f.register.String(), "field value %d exceeds %d", v, f.max())
	}
	b, err := c.readRegister(f.register)
	if err != nil {
		return err
	}
	return c.writeRegister(f.register, f.set(b, v))
}
