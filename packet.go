package cc1101

import (
	"encoding/binary"

	"github.com/hatstand/cc1101/addresses"
)

func (c *CC1101) GetSyncWord() (uint16, error) {
	b, err := c.ReadBurst(byte(addresses.SYNC1), 2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

func (c *CC1101) SetSyncWord(word uint16) error {
	b := make([]byte, 2)
	binary.BigEndian.PutUint16(b, word)
	return c.WriteBurst(byte(addresses.SYNC1), b)
}

// GetPacketLengthBytes returns PKTLEN: the packet length in fixed mode or
// the maximum length in variable mode.
func (c *CC1101) GetPacketLengthBytes() (int, error) {
	v, err := c.readRegister(addresses.PKTLEN)
	return int(v), err
}

func (c *CC1101) SetPacketLengthBytes(length int) error {
	if length < 1 || length > 0xff {
		return invalid("packet length", "%d bytes outside [1, 255]", length)
	}
	return c.writeRegister(addresses.PKTLEN, byte(length))
}

func (c *CC1101) GetPacketLengthMode() (PacketLengthMode, error) {
	v, err := c.readField(lengthConfig)
	return PacketLengthMode(v), err
}

func (c *CC1101) SetPacketLengthMode(mode PacketLengthMode) error {
	if mode != PacketLengthFixed && mode != PacketLengthVariable {
		return invalid("packet length mode", "%v", mode)
	}
	return c.writeField(lengthConfig, byte(mode))
}

// DisableChecksum clears CRC_EN.
func (c *CC1101) DisableChecksum() error {
	return c.writeField(crcEnable, 0)
}

// DisableDataWhitening clears WHITE_DATA.
func (c *CC1101) DisableDataWhitening() error {
	return c.writeField(whiteData, 0)
}

func (c *CC1101) GetTransceiveMode() (TransceiveMode, error) {
	v, err := c.readField(pktFormat)
	return TransceiveMode(v), err
}

func (c *CC1101) SetTransceiveMode(mode TransceiveMode) error {
	switch mode {
	case TransceiveFIFO, TransceiveSynchronousSerial, TransceiveAsynchronousSerial:
		return c.writeField(pktFormat, byte(mode))
	}
	return invalid("transceive mode", "%v", mode)
}
