package cc1101

import (
	"encoding/hex"

	"github.com/hatstand/cc1101/addresses"
	"go.uber.org/zap"
)

// Header flags, see "10.1 Chip Status Byte" and table 45 of the datasheet.
const (
	WRITE_SINGLE_BYTE = 0x00
	WRITE_BURST       = 0x40
	READ_SINGLE_BYTE  = 0x80
	READ_BURST        = 0xc0

	addressMask = 0x3f
)

func checkAddress(address byte) error {
	if address&^addressMask != 0 {
		return invalid("address", "%#02x does not fit in 6 bits", address)
	}
	return nil
}

// transfer sends header followed by payload and returns the bytes clocked in
// after the chip status byte.
func (c *CC1101) transfer(op string, header byte, payload []byte) ([]byte, error) {
	buf := make([]byte, 1+len(payload))
	buf[0] = header
	copy(buf[1:], payload)
	c.log.Debug("spi transfer", zap.String("op", op), zap.String("tx", hex.EncodeToString(buf)))
	if err := c.bus.TransferAndReceiveData(buf); err != nil {
		return nil, &TransportError{Op: op, Header: header, Err: err}
	}
	c.log.Debug("spi response", zap.String("op", op), zap.String("rx", hex.EncodeToString(buf)))
	return buf[1:], nil
}

// Strobe issues a command strobe and returns the chip status byte.
func (c *CC1101) Strobe(strobe addresses.StrobeAddress) (byte, error) {
	buf := []byte{byte(strobe)}
	if err := c.bus.TransferAndReceiveData(buf); err != nil {
		return 0, &TransportError{Op: "strobe " + strobe.String(), Header: byte(strobe), Err: err}
	}
	return buf[0], nil
}

func (c *CC1101) ReadSingleByte(address byte) (byte, error) {
	if err := checkAddress(address); err != nil {
		return 0, err
	}
	data, err := c.transfer("read single byte", address|READ_SINGLE_BYTE, []byte{0x00})
	if err != nil {
		return 0, err
	}
	return data[0], nil
}

// ReadBurst reads count consecutive registers starting at address in a
// single transfer.
func (c *CC1101) ReadBurst(address byte, count int) ([]byte, error) {
	if err := checkAddress(address); err != nil {
		return nil, err
	}
	if count < 1 {
		return nil, invalid("count", "burst read of %d bytes", count)
	}
	return c.transfer("read burst", address|READ_BURST, make([]byte, count))
}

func (c *CC1101) WriteSingleByte(address byte, in byte) error {
	if err := checkAddress(address); err != nil {
		return err
	}
	_, err := c.transfer("write single byte", address|WRITE_SINGLE_BYTE, []byte{in})
	return err
}

func (c *CC1101) WriteBurst(address byte, data []byte) error {
	if err := checkAddress(address); err != nil {
		return err
	}
	if len(data) == 0 {
		return invalid("data", "empty burst write")
	}
	_, err := c.transfer("write burst", address|WRITE_BURST, data)
	return err
}

// Status registers are only reachable with the burst bit set.
func (c *CC1101) readStatusRegister(register addresses.StatusRegisterAddress) (byte, error) {
	data, err := c.transfer("read status register "+register.String(), byte(register)|READ_BURST, []byte{0x00})
	if err != nil {
		return 0, err
	}
	return data[0], nil
}

func (c *CC1101) readRegister(register addresses.ConfigurationRegisterAddress) (byte, error) {
	return c.ReadSingleByte(byte(register))
}

func (c *CC1101) writeRegister(register addresses.ConfigurationRegisterAddress, value byte) error {
	return c.WriteSingleByte(byte(register), value)
}
