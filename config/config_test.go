package config

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/hatstand/cc1101"
	"github.com/hatstand/cc1101/cc1101test"
	"go.uber.org/zap"

	. "github.com/smartystreets/goconvey/convey"
)

const profile = `
bus:
  driver: embd
  device: "0"
radio:
  base_frequency_hertz: 433.92e6
  symbol_rate_baud: 2400
  filter_bandwidth_hertz: 58e3
  modulation_format: ASK_OOK
  sync_word: 0x1234
  sync_mode: TRANSMIT_16_MATCH_15_BITS
  preamble_length_bytes: 8
  packet_length_mode: FIXED
  packet_length_bytes: 16
  disable_checksum: true
  disable_data_whitening: true
  output_power: [0, 0xc6]
`

func TestParse(t *testing.T) {
	Convey("Defaults", t, func() {
		cfg, err := Parse([]byte("radio: {}"))
		So(err, ShouldBeNil)
		So(cfg.Bus.Driver, ShouldEqual, "periph")
		So(cfg.Bus.SpeedHertz, ShouldEqual, DefaultSpeedHertz)
		So(float64(cfg.Radio.Crystal()), ShouldEqual, 26e6)
		So(cfg.Radio.BaseFrequencyHertz, ShouldBeNil)
	})

	Convey("Full profile", t, func() {
		cfg, err := Parse([]byte(profile))
		So(err, ShouldBeNil)
		So(cfg.Bus.Driver, ShouldEqual, "embd")
		So(*cfg.Radio.BaseFrequencyHertz, ShouldEqual, 433.92e6)
		So(*cfg.Radio.SyncWord, ShouldEqual, 0x1234)
		So(cfg.Radio.OutputPower, ShouldResemble, []int{0, 0xc6})
	})

	Convey("Unknown names are rejected", t, func() {
		_, err := Parse([]byte("radio: {modulation_format: FM}"))
		So(err, ShouldNotBeNil)
		_, err = Parse([]byte("radio: {sync_mode: sometimes}"))
		So(err, ShouldNotBeNil)
		_, err = Parse([]byte("radio: {packet_length_mode: INFINITE}"))
		So(err, ShouldNotBeNil)
		_, err = Parse([]byte("radio: ["))
		So(err, ShouldNotBeNil)
	})

	Convey("Load reads from disk", t, func() {
		dir, err := ioutil.TempDir("", "cc1101")
		So(err, ShouldBeNil)
		defer os.RemoveAll(dir)
		path := filepath.Join(dir, "radio.yaml")
		So(ioutil.WriteFile(path, []byte(profile), 0644), ShouldBeNil)

		cfg, err := Load(path)
		So(err, ShouldBeNil)
		So(*cfg.Radio.PacketLengthBytes, ShouldEqual, 16)

		_, err = Load(filepath.Join(dir, "missing.yaml"))
		So(err, ShouldNotBeNil)
	})
}

func TestApply(t *testing.T) {
	Convey("Every setting reaches the chip", t, func() {
		cfg, err := Parse([]byte(profile))
		So(err, ShouldBeNil)
		chip := cc1101test.NewChip()
		radio := cc1101.New(chip, cc1101.WithCrystal(cfg.Radio.Crystal()), cc1101.WithLogger(zap.NewNop()))

		So(cfg.Radio.Apply(radio, zap.NewNop()), ShouldBeNil)

		hz, err := radio.GetBaseFrequencyHertz()
		So(err, ShouldBeNil)
		So(hz, ShouldAlmostEqual, 433.92e6, 200)
		baud, err := radio.GetSymbolRateBaud()
		So(err, ShouldBeNil)
		So(baud, ShouldAlmostEqual, 2400, 2)
		bandwidth, err := radio.GetFilterBandwidthHertz()
		So(err, ShouldBeNil)
		So(bandwidth, ShouldAlmostEqual, 58035.7, 1)
		format, err := radio.GetModulationFormat()
		So(err, ShouldBeNil)
		So(format, ShouldEqual, cc1101.ModulationASKOOK)
		word, err := radio.GetSyncWord()
		So(err, ShouldBeNil)
		So(word, ShouldEqual, 0x1234)
		mode, err := radio.GetSyncMode()
		So(err, ShouldBeNil)
		So(mode, ShouldEqual, cc1101.SyncModeFifteenOfSixteen)
		preamble, err := radio.GetPreambleLengthBytes()
		So(err, ShouldBeNil)
		So(preamble, ShouldEqual, 8)
		lengthMode, err := radio.GetPacketLengthMode()
		So(err, ShouldBeNil)
		So(lengthMode, ShouldEqual, cc1101.PacketLengthFixed)
		// PKTCTRL0 power on value 0x45 with whitening, CRC and variable
		// length cleared.
		So(chip.Registers[0x08], ShouldEqual, 0x00)
		power, err := radio.GetOutputPower()
		So(err, ShouldBeNil)
		So(power, ShouldResemble, []byte{0, 0xc6})
	})

	Convey("Failures name the setting", t, func() {
		cfg, err := Parse([]byte("radio: {output_power: [1, 2, 300]}"))
		So(err, ShouldBeNil)
		chip := cc1101test.NewChip()
		err = cfg.Radio.Apply(cc1101.New(chip, cc1101.WithLogger(zap.NewNop())), zap.NewNop())
		So(err, ShouldNotBeNil)
		So(err.Error(), ShouldContainSubstring, "output power")
		So(chip.Transfers, ShouldBeEmpty)
	})
}
