// Package addresses enumerates the CC1101 register address space.
package addresses

import "fmt"

// ConfigurationRegisterAddress identifies one of the 47 configuration
// registers. The value is both the bus address and the ordinal used for
// burst range arithmetic.
type ConfigurationRegisterAddress uint8

const (
	IOCFG2 ConfigurationRegisterAddress = iota
	IOCFG1
	IOCFG0
	FIFOTHR
	SYNC1
	SYNC0
	PKTLEN
	PKTCTRL1
	PKTCTRL0
	ADDR
	CHANNR
	FSCTRL1
	FSCTRL0
	FREQ2
	FREQ1
	FREQ0
	MDMCFG4
	MDMCFG3
	MDMCFG2
	MDMCFG1
	MDMCFG0
	DEVIATN
	MCSM2
	MCSM1
	MCSM0
	FOCCFG
	BSCFG
	AGCCTRL2
	AGCCTRL1
	AGCCTRL0
	WOREVT1
	WOREVT0
	WORCTRL
	FREND1
	FREND0
	FSCAL3
	FSCAL2
	FSCAL1
	FSCAL0
	RCCTRL1
	RCCTRL0
	FSTEST
	PTEST
	AGCTEST
	TEST2
	TEST1
	TEST0

	FirstConfigurationRegister = IOCFG2
	LastConfigurationRegister  = TEST0
)

// NumConfigurationRegisters is the size of the configuration bank.
const NumConfigurationRegisters = int(LastConfigurationRegister) + 1

var configurationRegisterNames = [NumConfigurationRegisters]string{
	"IOCFG2", "IOCFG1", "IOCFG0", "FIFOTHR", "SYNC1", "SYNC0", "PKTLEN",
	"PKTCTRL1", "PKTCTRL0", "ADDR", "CHANNR", "FSCTRL1", "FSCTRL0", "FREQ2",
	"FREQ1", "FREQ0", "MDMCFG4", "MDMCFG3", "MDMCFG2", "MDMCFG1", "MDMCFG0",
	"DEVIATN", "MCSM2", "MCSM1", "MCSM0", "FOCCFG", "BSCFG", "AGCCTRL2",
	"AGCCTRL1", "AGCCTRL0", "WOREVT1", "WOREVT0", "WORCTRL", "FREND1",
	"FREND0", "FSCAL3", "FSCAL2", "FSCAL1", "FSCAL0", "RCCTRL1", "RCCTRL0",
	"FSTEST", "PTEST", "AGCTEST", "TEST2", "TEST1", "TEST0",
}

var configurationRegistersByName = func() map[string]ConfigurationRegisterAddress {
	m := make(map[string]ConfigurationRegisterAddress, NumConfigurationRegisters)
	for i, name := range configurationRegisterNames {
		m[name] = ConfigurationRegisterAddress(i)
	}
	return m
}()

func (a ConfigurationRegisterAddress) Valid() bool {
	return a <= LastConfigurationRegister
}

func (a ConfigurationRegisterAddress) String() string {
	if !a.Valid() {
		return fmt.Sprintf("ConfigurationRegisterAddress(%#02x)", uint8(a))
	}
	return configurationRegisterNames[a]
}

// ConfigurationRegisterByName looks up a register by its datasheet name.
func ConfigurationRegisterByName(name string) (ConfigurationRegisterAddress, bool) {
	a, ok := configurationRegistersByName[name]
	return a, ok
}

// ConfigurationRegisters returns every configuration register in ascending
// address order.
func ConfigurationRegisters() []ConfigurationRegisterAddress {
	return ConfigurationRange(FirstConfigurationRegister, LastConfigurationRegister)
}

// ConfigurationRange returns the registers from start to end inclusive.
// It returns nil if the range is empty or out of bounds.
func ConfigurationRange(start, end ConfigurationRegisterAddress) []ConfigurationRegisterAddress {
	if start > end || !end.Valid() {
		return nil
	}
	r := make([]ConfigurationRegisterAddress, 0, end-start+1)
	for a := start; a <= end; a++ {
		r = append(r, a)
	}
	return r
}

// StrobeAddress identifies a command strobe. Strobes are write-only and
// trigger an action instead of storing a value.
type StrobeAddress uint8

const (
	SRES    StrobeAddress = 0x30 // Reset chip
	SFSTXON StrobeAddress = 0x31 // Enable and calibrate frequency synthesizer
	SXOFF   StrobeAddress = 0x32 // Turn off crystal oscillator
	SCAL    StrobeAddress = 0x33 // Calibrate frequency synthesizer and turn it off
	SRX     StrobeAddress = 0x34 // Enable RX
	STX     StrobeAddress = 0x35 // Enable TX
	SIDLE   StrobeAddress = 0x36 // Exit RX / TX
	SWOR    StrobeAddress = 0x38 // Start automatic RX polling sequence
	SPWD    StrobeAddress = 0x39 // Enter power down mode when CSn goes high
	SFRX    StrobeAddress = 0x3a // Flush the RX FIFO buffer
	SFTX    StrobeAddress = 0x3b // Flush the TX FIFO buffer
	SWORRST StrobeAddress = 0x3c // Reset real time clock
	SNOP    StrobeAddress = 0x3d // No operation
)

var strobeNames = map[StrobeAddress]string{
	SRES: "SRES", SFSTXON: "SFSTXON", SXOFF: "SXOFF", SCAL: "SCAL",
	SRX: "SRX", STX: "STX", SIDLE: "SIDLE", SWOR: "SWOR", SPWD: "SPWD",
	SFRX: "SFRX", SFTX: "SFTX", SWORRST: "SWORRST", SNOP: "SNOP",
}

func (s StrobeAddress) String() string {
	if name, ok := strobeNames[s]; ok {
		return name
	}
	return fmt.Sprintf("StrobeAddress(%#02x)", uint8(s))
}

// StatusRegisterAddress identifies a read-only status register. Status
// registers share their addresses with the strobes and are told apart by
// setting the burst bit on a read.
type StatusRegisterAddress uint8

const (
	PARTNUM        StatusRegisterAddress = 0x30
	VERSION        StatusRegisterAddress = 0x31
	FREQEST        StatusRegisterAddress = 0x32
	LQI            StatusRegisterAddress = 0x33
	RSSI           StatusRegisterAddress = 0x34
	MARCSTATE      StatusRegisterAddress = 0x35
	WORTIME1       StatusRegisterAddress = 0x36
	WORTIME0       StatusRegisterAddress = 0x37
	PKTSTATUS      StatusRegisterAddress = 0x38
	VCO_VC_DAC     StatusRegisterAddress = 0x39
	TXBYTES        StatusRegisterAddress = 0x3a
	RXBYTES        StatusRegisterAddress = 0x3b
	RCCTRL1_STATUS StatusRegisterAddress = 0x3c
	RCCTRL0_STATUS StatusRegisterAddress = 0x3d
)

var statusNames = map[StatusRegisterAddress]string{
	PARTNUM: "PARTNUM", VERSION: "VERSION", FREQEST: "FREQEST", LQI: "LQI",
	RSSI: "RSSI", MARCSTATE: "MARCSTATE", WORTIME1: "WORTIME1",
	WORTIME0: "WORTIME0", PKTSTATUS: "PKTSTATUS", VCO_VC_DAC: "VCO_VC_DAC",
	TXBYTES: "TXBYTES", RXBYTES: "RXBYTES", RCCTRL1_STATUS: "RCCTRL1_STATUS",
	RCCTRL0_STATUS: "RCCTRL0_STATUS",
}

func (s StatusRegisterAddress) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("StatusRegisterAddress(%#02x)", uint8(s))
}

const (
	// PATable is the power amplifier table, accessed in burst mode.
	PATable = 0x3e
	// FIFO is the RX FIFO when read and the TX FIFO when written.
	FIFO = 0x3f

	// PATableSize is the number of power settings in the table.
	PATableSize = 8
)
