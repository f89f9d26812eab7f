// Package config loads radio profiles: the bus a CC1101 hangs off and the
// physical settings to program into it.
package config

import (
	"io/ioutil"

	"github.com/hatstand/cc1101"
	"github.com/hatstand/cc1101/spibus"
	"github.com/hatstand/cc1101/units"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const (
	DefaultSpeedHertz = 50000
)

type Bus struct {
	Driver     string `yaml:"driver"`
	Device     string `yaml:"device"`
	SpeedHertz int64  `yaml:"speed_hertz"`
}

// Radio holds the settings to program. Unset fields leave the chip alone.
type Radio struct {
	CrystalHertz         float64  `yaml:"crystal_hertz"`
	BaseFrequencyHertz   *float64 `yaml:"base_frequency_hertz"`
	SymbolRateBaud       *float64 `yaml:"symbol_rate_baud"`
	FilterBandwidthHertz *float64 `yaml:"filter_bandwidth_hertz"`
	ModulationFormat     string   `yaml:"modulation_format"`
	SyncWord             *uint16  `yaml:"sync_word"`
	SyncMode             string   `yaml:"sync_mode"`
	PreambleLengthBytes  *int     `yaml:"preamble_length_bytes"`
	PacketLengthMode     string   `yaml:"packet_length_mode"`
	PacketLengthBytes    *int     `yaml:"packet_length_bytes"`
	DisableChecksum      bool     `yaml:"disable_checksum"`
	DisableDataWhitening bool     `yaml:"disable_data_whitening"`
	OutputPower          []int    `yaml:"output_power"`
}

type Config struct {
	Bus   Bus   `yaml:"bus"`
	Radio Radio `yaml:"radio"`
}

func Load(path string) (*Config, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config %s", path)
	}
	return Parse(data)
}

// Parse decodes a YAML profile, fills in defaults and checks enumerated
// settings by name.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse config")
	}
	if cfg.Bus.Driver == "" {
		cfg.Bus.Driver = spibus.DriverPeriph
	}
	if cfg.Bus.SpeedHertz == 0 {
		cfg.Bus.SpeedHertz = DefaultSpeedHertz
	}
	if cfg.Radio.CrystalHertz == 0 {
		cfg.Radio.CrystalHertz = float64(units.DefaultCrystal)
	}
	if _, err := cfg.Radio.modulationFormat(); err != nil {
		return nil, err
	}
	if _, err := cfg.Radio.syncMode(); err != nil {
		return nil, err
	}
	if _, err := cfg.Radio.packetLengthMode(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Crystal is the crystal frequency to build the driver with.
func (r *Radio) Crystal() units.Crystal {
	return units.Crystal(r.CrystalHertz)
}

func (r *Radio) modulationFormat() (*cc1101.ModulationFormat, error) {
	if r.ModulationFormat == "" {
		return nil, nil
	}
	for _, f := range []cc1101.ModulationFormat{
		cc1101.Modulation2FSK, cc1101.ModulationGFSK, cc1101.ModulationASKOOK,
		cc1101.Modulation4FSK, cc1101.ModulationMSK,
	} {
		if f.String() == r.ModulationFormat {
			return &f, nil
		}
	}
	return nil, errors.Errorf("unknown modulation format %q", r.ModulationFormat)
}

func (r *Radio) syncMode() (*cc1101.SyncMode, error) {
	if r.SyncMode == "" {
		return nil, nil
	}
	for m := cc1101.SyncModeNoPreambleAndSync; m <= cc1101.SyncModeThirtyOfThirtyTwo; m++ {
		if m.String() == r.SyncMode {
			return &m, nil
		}
	}
	return nil, errors.Errorf("unknown sync mode %q", r.SyncMode)
}

func (r *Radio) packetLengthMode() (*cc1101.PacketLengthMode, error) {
	if r.PacketLengthMode == "" {
		return nil, nil
	}
	for _, m := range []cc1101.PacketLengthMode{cc1101.PacketLengthFixed, cc1101.PacketLengthVariable} {
		if m.String() == r.PacketLengthMode {
			return &m, nil
		}
	}
	return nil, errors.Errorf("unknown packet length mode %q", r.PacketLengthMode)
}

// Apply programs every configured setting into the chip, stopping at the
// first failure.
func (r *Radio) Apply(radio *cc1101.CC1101, log *zap.Logger) error {
	step := func(name string, f func() error) error {
		if err := f(); err != nil {
			return errors.Wrapf(err, "failed to set %s", name)
		}
		log.Debug("applied setting", zap.String("setting", name))
		return nil
	}

	if r.BaseFrequencyHertz != nil {
		if err := step("base frequency", func() error { return radio.SetBaseFrequencyHertz(*r.BaseFrequencyHertz) }); err != nil {
			return err
		}
	}
	if r.SymbolRateBaud != nil {
		if err := step("symbol rate", func() error { return radio.SetSymbolRateBaud(*r.SymbolRateBaud) }); err != nil {
			return err
		}
	}
	if r.FilterBandwidthHertz != nil {
		if err := step("filter bandwidth", func() error { return radio.SetFilterBandwidthHertz(*r.FilterBandwidthHertz) }); err != nil {
			return err
		}
	}
	format, err := r.modulationFormat()
	if err != nil {
		return err
	}
	if format != nil {
		if err := step("modulation format", func() error { return radio.SetModulationFormat(*format) }); err != nil {
			return err
		}
	}
	if r.SyncWord != nil {
		if err := step("sync word", func() error { return radio.SetSyncWord(*r.SyncWord) }); err != nil {
			return err
		}
	}
	mode, err := r.syncMode()
	if err != nil {
		return err
	}
	if mode != nil {
		if err := step("sync mode", func() error { return radio.SetSyncMode(*mode) }); err != nil {
			return err
		}
	}
	if r.PreambleLengthBytes != nil {
		if err := step("preamble length", func() error { return radio.SetPreambleLengthBytes(*r.PreambleLengthBytes) }); err != nil {
			return err
		}
	}
	lengthMode, err := r.packetLengthMode()
	if err != nil {
		return err
	}
	if lengthMode != nil {
		if err := step("packet length mode", func() error { return radio.SetPacketLengthMode(*lengthMode) }); err != nil {
			return err
		}
	}
	if r.PacketLengthBytes != nil {
		if err := step("packet length", func() error { return radio.SetPacketLengthBytes(*r.PacketLengthBytes) }); err != nil {
			return err
		}
	}
	if r.DisableChecksum {
		if err := step("checksum", radio.DisableChecksum); err != nil {
			return err
		}
	}
	if r.DisableDataWhitening {
		if err := step("data whitening", radio.DisableDataWhitening); err != nil {
			return err
		}
	}
	if r.OutputPower != nil {
		if err := step("output power", func() error { return radio.SetOutputPowerLevels(r.OutputPower) }); err != nil {
			return err
		}
	}
	return nil
}
