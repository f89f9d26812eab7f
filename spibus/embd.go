package spibus

import (
	"github.com/kidoman/embd"
	_ "github.com/kidoman/embd/host/rpi"
	"github.com/pkg/errors"
)

// EmbdBus is an SPI bus on a Raspberry Pi driven through embd.
type EmbdBus struct {
	embd.SPIBus
}

// OpenEmbd opens the bus in mode 0 with 8 bits per word.
func OpenEmbd(channel byte, speed int) (*EmbdBus, error) {
	if err := embd.InitSPI(); err != nil {
		return nil, errors.Wrap(err, "embd: failed to initialise SPI")
	}
	return &EmbdBus{embd.NewSPIBus(embd.SPIMode0, channel, speed, 8, 0)}, nil
}

func (b *EmbdBus) Close() error {
	err := b.SPIBus.Close()
	if cerr := embd.CloseSPI(); err == nil {
		err = cerr
	}
	return err
}
