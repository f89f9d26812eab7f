// Package spibus opens the SPI buses a CC1101 is wired to and decorates them
// with metrics.
package spibus

import (
	"io"
	"strconv"

	"github.com/pkg/errors"
	"periph.io/x/periph/conn/physic"
)

// Bus is a full-duplex transfer where received bytes replace data in place.
type Bus interface {
	TransferAndReceiveData(data []byte) error
}

type BusCloser interface {
	Bus
	io.Closer
}

const (
	DriverPeriph = "periph"
	DriverEmbd   = "embd"
)

// Open opens device with the named driver. For periph the device is a
// spireg name such as "SPI0.0" (empty picks the first port); for embd it is
// the chip select channel number.
func Open(driver, device string, hz int64) (BusCloser, error) {
	switch driver {
	case DriverPeriph:
		bus, err := OpenPeriph(device, physic.Frequency(hz)*physic.Hertz)
		if err != nil {
			return nil, err
		}
		return bus, nil
	case DriverEmbd:
		channel := 0
		if device != "" {
			var err error
			channel, err = strconv.Atoi(device)
			if err != nil || channel < 0 || channel > 1 {
				return nil, errors.Errorf("embd: invalid SPI channel %q", device)
			}
		}
		bus, err := OpenEmbd(byte(channel), int(hz))
		if err != nil {
			return nil, err
		}
		return bus, nil
	}
	return nil, errors.Errorf("unknown SPI driver %q", driver)
}
