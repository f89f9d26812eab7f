package cc1101

import (
	"fmt"
	"strings"
)

// Describe reads the main settings back from the chip and renders them on
// one line, e.g. for logging after configuration.
func (c *CC1101) Describe() (string, error) {
	state, err := c.GetMainRadioControlStateMachineState()
	if err != nil {
		return "", err
	}
	frequency, err := c.GetBaseFrequencyHertz()
	if err != nil {
		return "", err
	}
	symbolRate, err := c.GetSymbolRateBaud()
	if err != nil {
		return "", err
	}
	bandwidth, err := c.GetFilterBandwidthHertz()
	if err != nil {
		return "", err
	}
	modulation, err := c.GetModulationFormat()
	if err != nil {
		return "", err
	}
	sync, err := c.GetSyncMode()
	if err != nil {
		return "", err
	}
	preamble, err := c.GetPreambleLengthBytes()
	if err != nil {
		return "", err
	}
	syncWord, err := c.GetSyncWord()
	if err != nil {
		return "", err
	}
	lengthMode, err := c.GetPacketLengthMode()
	if err != nil {
		return "", err
	}
	length, err := c.GetPacketLengthBytes()
	if err != nil {
		return "", err
	}
	power, err := c.GetOutputPower()
	if err != nil {
		return "", err
	}

	lengthOp := "="
	if lengthMode == PacketLengthVariable {
		lengthOp = "<="
	}
	attrs := []string{
		"marcstate=" + strings.ToLower(state.String()),
		fmt.Sprintf("base_frequency=%.2fMHz", frequency/1e6),
		fmt.Sprintf("symbol_rate=%.2fkBaud", symbolRate/1e3),
		fmt.Sprintf("filter_bandwidth=%.0fkHz", bandwidth/1e3),
		"modulation_format=" + modulation.String(),
		"sync_mode=" + sync.String(),
		fmt.Sprintf("preamble_length=%dB", preamble),
		fmt.Sprintf("sync_word=0x%04x", syncWord),
		fmt.Sprintf("packet_length%s%dB", lengthOp, length),
		"output_power=" + FormatPATable(power, false),
	}
	return "CC1101(" + strings.Join(attrs, ", ") + ")", nil
}
