package cc1101

import "fmt"

// PacketLengthMode is the LENGTH_CONFIG field of PKTCTRL0.
type PacketLengthMode uint8

const (
	PacketLengthFixed    PacketLengthMode = 0b00
	PacketLengthVariable PacketLengthMode = 0b01
	// Infinite packet length is not supported by this driver.
)

func (m PacketLengthMode) String() string {
	switch m {
	case PacketLengthFixed:
		return "FIXED"
	case PacketLengthVariable:
		return "VARIABLE"
	}
	return fmt.Sprintf("PacketLengthMode(%d)", uint8(m))
}

// TransceiveMode is the PKT_FORMAT field of PKTCTRL0.
type TransceiveMode uint8

const (
	TransceiveFIFO               TransceiveMode = 0b00
	TransceiveSynchronousSerial  TransceiveMode = 0b01
	TransceiveAsynchronousSerial TransceiveMode = 0b11
)

func (m TransceiveMode) String() string {
	switch m {
	case TransceiveFIFO:
		return "FIFO"
	case TransceiveSynchronousSerial:
		return "SYNCHRONOUS_SERIAL"
	case TransceiveAsynchronousSerial:
		return "ASYNCHRONOUS_SERIAL"
	}
	return fmt.Sprintf("TransceiveMode(%d)", uint8(m))
}

// SyncMode is SYNC_MODE[1:0] of MDMCFG2. The carrier sense bit above it is
// left untouched by SetSyncMode.
type SyncMode uint8

const (
	SyncModeNoPreambleAndSync SyncMode = 0b00
	SyncModeFifteenOfSixteen  SyncMode = 0b01
	SyncModeSixteenOfSixteen  SyncMode = 0b10
	SyncModeThirtyOfThirtyTwo SyncMode = 0b11
)

func (m SyncMode) String() string {
	switch m {
	case SyncModeNoPreambleAndSync:
		return "NO_PREAMBLE_AND_SYNC_WORD"
	case SyncModeFifteenOfSixteen:
		return "TRANSMIT_16_MATCH_15_BITS"
	case SyncModeSixteenOfSixteen:
		return "TRANSMIT_16_MATCH_16_BITS"
	case SyncModeThirtyOfThirtyTwo:
		return "TRANSMIT_32_MATCH_30_BITS"
	}
	return fmt.Sprintf("SyncMode(%d)", uint8(m))
}

// ModulationFormat is the MOD_FORMAT field of MDMCFG2.
type ModulationFormat uint8

const (
	Modulation2FSK   ModulationFormat = 0b000
	ModulationGFSK   ModulationFormat = 0b001
	ModulationASKOOK ModulationFormat = 0b011
	Modulation4FSK   ModulationFormat = 0b100
	ModulationMSK    ModulationFormat = 0b111
)

func (f ModulationFormat) String() string {
	switch f {
	case Modulation2FSK:
		return "FSK2"
	case ModulationGFSK:
		return "GFSK"
	case ModulationASKOOK:
		return "ASK_OOK"
	case Modulation4FSK:
		return "FSK4"
	case ModulationMSK:
		return "MSK"
	}
	return fmt.Sprintf("ModulationFormat(%d)", uint8(f))
}

func (f ModulationFormat) valid() bool {
	switch f {
	case Modulation2FSK, ModulationGFSK, ModulationASKOOK, Modulation4FSK, ModulationMSK:
		return true
	}
	return false
}
