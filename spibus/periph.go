package spibus

import (
	"github.com/pkg/errors"
	"periph.io/x/periph/conn/physic"
	"periph.io/x/periph/conn/spi"
	"periph.io/x/periph/conn/spi/spireg"
	"periph.io/x/periph/host"
)

type txer interface {
	Tx(w, r []byte) error
}

// PeriphBus adapts a periph SPI connection to the in-place transfer used by
// the driver.
type PeriphBus struct {
	port spi.PortCloser
	conn txer
}

func NewPeriphBus(conn spi.Conn) *PeriphBus {
	return &PeriphBus{conn: conn}
}

// OpenPeriph initialises the host drivers and connects to name in mode 0.
func OpenPeriph(name string, speed physic.Frequency) (*PeriphBus, error) {
	if _, err := host.Init(); err != nil {
		return nil, errors.Wrap(err, "periph: failed to initialise host")
	}
	port, err := spireg.Open(name)
	if err != nil {
		return nil, errors.Wrapf(err, "periph: failed to open SPI port %q", name)
	}
	conn, err := port.Connect(speed, spi.Mode0, 8)
	if err != nil {
		port.Close()
		return nil, errors.Wrap(err, "periph: failed to connect to SPI port")
	}
	return &PeriphBus{port: port, conn: conn}, nil
}

func (b *PeriphBus) TransferAndReceiveData(data []byte) error {
	r := make([]byte, len(data))
	if err := b.conn.Tx(data, r); err != nil {
		return err
	}
	copy(data, r)
	return nil
}

func (b *PeriphBus) Close() error {
	if b.port == nil {
		return nil
	}
	return b.port.Close()
}
