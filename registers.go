package cc1101

import "github.com/hatstand/cc1101/addresses"

type RegisterValue struct {
	Address addresses.ConfigurationRegisterAddress
	Value   byte
}

// RegisterSnapshot holds a contiguous run of configuration registers in
// ascending address order.
type RegisterSnapshot []RegisterValue

// Value returns the byte read for a, if a lies within the snapshot.
func (s RegisterSnapshot) Value(a addresses.ConfigurationRegisterAddress) (byte, bool) {
	if len(s) == 0 || a < s[0].Address {
		return 0, false
	}
	i := int(a - s[0].Address)
	if i >= len(s) {
		return 0, false
	}
	return s[i].Value, true
}

// GetConfigurationRegisterValues reads the whole configuration bank in one
// burst.
func (c *CC1101) GetConfigurationRegisterValues() (RegisterSnapshot, error) {
	return c.GetConfigurationRegisterRange(addresses.FirstConfigurationRegister, addresses.LastConfigurationRegister)
}

// GetConfigurationRegisterRange reads start through end inclusive in one
// burst.
func (c *CC1101) GetConfigurationRegisterRange(start, end addresses.ConfigurationRegisterAddress) (RegisterSnapshot, error) {
	registers := addresses.ConfigurationRange(start, end)
	if registers == nil {
		return nil, invalid("register range", "%v to %v", start, end)
	}
	values, err := c.ReadBurst(byte(start), len(registers))
	if err != nil {
		return nil, err
	}
	snapshot := make(RegisterSnapshot, len(registers))
	for i, a := range registers {
		snapshot[i] = RegisterValue{Address: a, Value: values[i]}
	}
	return snapshot, nil
}
