//go:generate mockgen -destination=mocks/mock_spibus.go -package=mocks github.com/hatstand/cc1101 SPIBus

// Package cc1101 drives a TI CC1101 sub-GHz transceiver over SPI.
//
// Registers are exposed through physical units: carrier frequency in hertz,
// symbol rate in baud, channel filter bandwidth in hertz and the power
// amplifier table. The driver issues one synchronous bus transfer per
// register access and never retries.
//
// A CC1101 is not safe for concurrent use. Several setters read, modify and
// write back a register shared with unrelated bits; callers sharing the bus
// between goroutines must serialise access themselves.
package cc1101

import (
	"github.com/hatstand/cc1101/addresses"
	"github.com/hatstand/cc1101/units"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// SPIBus is a synchronous full-duplex transfer. Bytes clocked in from the
// chip replace data in place. github.com/kidoman/embd.SPIBus satisfies it.
type SPIBus interface {
	TransferAndReceiveData(data []byte) error
}

// Chip identification expected by SelfTest.
const (
	expectedPartnum = 0x00
)

var supportedVersions = []byte{0x04, 0x14}

type CC1101 struct {
	bus     SPIBus
	crystal units.Crystal
	log     *zap.Logger
}

type Option func(*CC1101)

// WithCrystal overrides the 26 MHz default crystal frequency.
func WithCrystal(c units.Crystal) Option {
	return func(cc *CC1101) {
		cc.crystal = c
	}
}

// WithLogger sets the logger used for transfer tracing and advisory warnings.
// The global zap logger is used otherwise.
func WithLogger(l *zap.Logger) Option {
	return func(cc *CC1101) {
		cc.log = l
	}
}

func New(bus SPIBus, opts ...Option) *CC1101 {
	c := &CC1101{
		bus:     bus,
		crystal: units.DefaultCrystal,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.log == nil {
		c.log = zap.L()
	}
	c.log = c.log.Named("cc1101")
	return c
}

// Crystal returns the crystal frequency used for unit conversions.
func (c *CC1101) Crystal() units.Crystal {
	return c.crystal
}

func (c *CC1101) Reset() error {
	_, err := c.Strobe(addresses.SRES)
	return err
}

// SelfTest checks the part number and version reported by the chip.
func (c *CC1101) SelfTest() error {
	partnum, err := c.readStatusRegister(addresses.PARTNUM)
	if err != nil {
		return err
	}
	version, err := c.readStatusRegister(addresses.VERSION)
	if err != nil {
		return err
	}
	c.log.Debug("identified chip", zap.Uint8("partnum", partnum), zap.Uint8("version", version))
	if partnum != expectedPartnum {
		return errors.Errorf("unexpected part number %#02x, expected %#02x", partnum, expectedPartnum)
	}
	for _, v := range supportedVersions {
		if version == v {
			return nil
		}
	}
	return errors.Errorf("unsupported chip version %#02x", version)
}

// GetMainRadioControlStateMachineState reads MARCSTATE.
func (c *CC1101) GetMainRadioControlStateMachineState() (MainRadioControlStateMachineState, error) {
	v, err := c.readStatusRegister(addresses.MARCSTATE)
	if err != nil {
		return 0, err
	}
	return MainRadioControlStateMachineState(v & 0x1f), nil
}
