// Package cc1101test provides an in-memory CC1101 register file for tests.
package cc1101test

import "github.com/pkg/errors"

// Chip answers bus transfers like a CC1101 would, backed by plain arrays.
// It records every transfer as sent.
type Chip struct {
	Registers [0x30]byte
	PATable   [8]byte
	Status    map[byte]byte
	Transfers [][]byte
}

// NewChip returns a chip in its power on state, idle, reporting version 0x14.
func NewChip() *Chip {
	c := &Chip{Status: map[byte]byte{0x30: 0x00, 0x31: 0x14, 0x35: 0x01}}
	// See "Table 43: Configuration Registers Overview" of the datasheet.
	copy(c.Registers[:], []byte{
		0x29, 0x2e, 0x3f, 0x07, 0xd3, 0x91, 0xff, 0x04, 0x45, 0x00, 0x00, 0x0f,
		0x00, 0x1e, 0xc4, 0xec, 0x8c, 0x22, 0x02, 0x22, 0xf8, 0x47, 0x07, 0x30,
		0x04, 0x36, 0x6c, 0x03, 0x40, 0x91, 0x87, 0x6b, 0xf8, 0x56, 0x10, 0xa9,
		0x0a, 0x20, 0x0d, 0x41, 0x00, 0x59, 0x7f, 0x3f, 0x88, 0x31, 0x0b,
	})
	c.PATable[0] = 0xc6
	return c
}

func (c *Chip) TransferAndReceiveData(data []byte) error {
	c.Transfers = append(c.Transfers, append([]byte(nil), data...))
	header := data[0]
	address := int(header & 0x3f)
	read := header&0x80 != 0
	burst := header&0x40 != 0
	data[0] = 0x0f
	if len(data) == 1 {
		return nil
	}
	payload := data[1:]
	switch {
	case address == 0x3e:
		for i := range payload {
			if read {
				payload[i] = c.PATable[i%len(c.PATable)]
			} else {
				c.PATable[i%len(c.PATable)] = payload[i]
			}
		}
	case address >= 0x30 && read && burst:
		payload[0] = c.Status[byte(address)]
	default:
		if address+len(payload) > len(c.Registers) {
			return errors.Errorf("burst of %d bytes from %#02x runs past the configuration registers", len(payload), address)
		}
		for i := range payload {
			if read {
				payload[i] = c.Registers[address+i]
			} else {
				c.Registers[address+i] = payload[i]
			}
		}
	}
	return nil
}
