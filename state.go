package cc1101

import "fmt"

// MainRadioControlStateMachineState is the MARC_STATE field of MARCSTATE.
type MainRadioControlStateMachineState uint8

const (
	StateSLEEP            MainRadioControlStateMachineState = 0x00
	StateIDLE             MainRadioControlStateMachineState = 0x01
	StateXOFF             MainRadioControlStateMachineState = 0x02
	StateVCOON_MC         MainRadioControlStateMachineState = 0x03
	StateREGON_MC         MainRadioControlStateMachineState = 0x04
	StateMANCAL           MainRadioControlStateMachineState = 0x05
	StateVCOON            MainRadioControlStateMachineState = 0x06
	StateREGON            MainRadioControlStateMachineState = 0x07
	StateSTARTCAL         MainRadioControlStateMachineState = 0x08
	StateBWBOOST          MainRadioControlStateMachineState = 0x09
	StateFS_LOCK          MainRadioControlStateMachineState = 0x0a
	StateIFADCON          MainRadioControlStateMachineState = 0x0b
	StateENDCAL           MainRadioControlStateMachineState = 0x0c
	StateRX               MainRadioControlStateMachineState = 0x0d
	StateRX_END           MainRadioControlStateMachineState = 0x0e
	StateRX_RST           MainRadioControlStateMachineState = 0x0f
	StateTXRX_SWITCH      MainRadioControlStateMachineState = 0x10
	StateRXFIFO_OVERFLOW  MainRadioControlStateMachineState = 0x11
	StateFSTXON           MainRadioControlStateMachineState = 0x12
	StateTX               MainRadioControlStateMachineState = 0x13
	StateTX_END           MainRadioControlStateMachineState = 0x14
	StateRXTX_SWITCH      MainRadioControlStateMachineState = 0x15
	StateTXFIFO_UNDERFLOW MainRadioControlStateMachineState = 0x16
)

var stateNames = [...]string{
	"SLEEP", "IDLE", "XOFF", "VCOON_MC", "REGON_MC", "MANCAL", "VCOON",
	"REGON", "STARTCAL", "BWBOOST", "FS_LOCK", "IFADCON", "ENDCAL", "RX",
	"RX_END", "RX_RST", "TXRX_SWITCH", "RXFIFO_OVERFLOW", "FSTXON", "TX",
	"TX_END", "RXTX_SWITCH", "TXFIFO_UNDERFLOW",
}

func (s MainRadioControlStateMachineState) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("MainRadioControlStateMachineState(%#02x)", uint8(s))
}
