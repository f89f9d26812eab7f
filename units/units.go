// Package units converts between physical quantities and the fixed-point
// encodings used by the CC1101 configuration registers.
//
// All conversions depend on the crystal oscillator driving the chip, so they
// are methods on Crystal rather than free functions.
package units

import (
	"fmt"
	"math"
)

// Crystal is the frequency of the crystal oscillator in hertz.
type Crystal float64

// DefaultCrystal is the 26 MHz crystal fitted to most CC1101 modules.
const DefaultCrystal Crystal = 26e6

const (
	frequencyControlWordMax = 1<<24 - 1

	FilterBandwidthMantissaMax = 3
	FilterBandwidthExponentMax = 3

	SymbolRateMantissaMax = 255
	SymbolRateExponentMax = 15
)

// DomainError reports a physical value that cannot be encoded in the register
// it is destined for.
type DomainError struct {
	Quantity string
	Value    float64
	Reason   string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s %g cannot be represented: %s", e.Quantity, e.Value, e.Reason)
}

// FrequencyStep is the quantisation unit of the frequency control word.
func (c Crystal) FrequencyStep() float64 {
	return float64(c) / (1 << 16)
}

// FrequencyControlWordToHertz decodes FREQ2, FREQ1, FREQ0.
func (c Crystal) FrequencyControlWordToHertz(word [3]byte) float64 {
	w := uint32(word[0])<<16 | uint32(word[1])<<8 | uint32(word[2])
	return float64(w) * c.FrequencyStep()
}

// HertzToFrequencyControlWord returns the control word closest to hz.
func (c Crystal) HertzToFrequencyControlWord(hz float64) ([3]byte, error) {
	if math.IsNaN(hz) || hz < 0 {
		return [3]byte{}, &DomainError{"frequency", hz, "must be a non-negative number of hertz"}
	}
	w := math.Round(hz / c.FrequencyStep())
	if w > frequencyControlWordMax {
		return [3]byte{}, &DomainError{"frequency", hz, "control word exceeds 24 bits"}
	}
	v := uint32(w)
	return [3]byte{byte(v >> 16), byte(v >> 8), byte(v)}, nil
}

// FilterBandwidthFloatingPointToReal decodes CHANBW_M and CHANBW_E.
// See "13 Receiver Channel Filter Bandwidth" in the datasheet.
func (c Crystal) FilterBandwidthFloatingPointToReal(mantissa, exponent uint8) float64 {
	return float64(c) / (8 * float64(4+uint(mantissa)) * float64(uint(1)<<exponent))
}

// FilterBandwidthRealToFloatingPoint picks the representable bandwidth
// closest to hz.
func (c Crystal) FilterBandwidthRealToFloatingPoint(hz float64) (mantissa, exponent uint8, err error) {
	if math.IsNaN(hz) || hz <= 0 {
		return 0, 0, &DomainError{"filter bandwidth", hz, "must be positive"}
	}
	best := math.Inf(1)
	for e := uint8(0); e <= FilterBandwidthExponentMax; e++ {
		for m := uint8(0); m <= FilterBandwidthMantissaMax; m++ {
			if d := math.Abs(c.FilterBandwidthFloatingPointToReal(m, e) - hz); d < best {
				best, mantissa, exponent = d, m, e
			}
		}
	}
	return mantissa, exponent, nil
}

// SymbolRateFloatingPointToReal decodes DRATE_M and DRATE_E.
// See "12 Data Rate Programming" in the datasheet.
func (c Crystal) SymbolRateFloatingPointToReal(mantissa, exponent uint8) float64 {
	return float64(256+uint(mantissa)) * math.Ldexp(float64(c), int(exponent)-28)
}

// SymbolRateRealToFloatingPoint encodes baud. A mantissa that rounds up to
// 256 carries into the exponent, as the datasheet prescribes.
func (c Crystal) SymbolRateRealToFloatingPoint(baud float64) (mantissa, exponent uint8, err error) {
	if math.IsNaN(baud) || baud <= 0 {
		return 0, 0, &DomainError{"symbol rate", baud, "must be positive"}
	}
	e := math.Floor(math.Log2(baud/float64(c)) + 20)
	m := math.Round(math.Ldexp(baud/float64(c), 28-int(e)) - 256)
	if m == 256 {
		e++
		m = 0
	}
	if e < 0 || e > SymbolRateExponentMax {
		return 0, 0, &DomainError{"symbol rate", baud, fmt.Sprintf("exponent %g outside [0, %d]", e, SymbolRateExponentMax)}
	}
	return uint8(m), uint8(e), nil
}
