package cc1101

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/hatstand/cc1101/mocks"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	. "github.com/smartystreets/goconvey/convey"
)

var baseFrequencies = []struct {
	freq210 []byte
	hz      float64
}{
	{[]byte{0x10, 0xb0, 0x71}, 433920000},
	{[]byte{0x21, 0x62, 0x76}, 868000000},
}

func TestGetBaseFrequency(t *testing.T) {
	for _, tc := range baseFrequencies {
		tc := tc
		Convey("Reads FREQ2..FREQ0 in one burst", t, WithMocks(t, func(bus *mocks.MockSPIBus, cc1101 *CC1101) {
			bus.EXPECT().TransferAndReceiveData([]byte{0x0d | 0xc0, 0, 0, 0}).Return(nil).SetArg(0, append([]byte{0}, tc.freq210...))

			hz, err := cc1101.GetBaseFrequencyHertz()
			So(err, ShouldBeNil)
			So(hz, ShouldAlmostEqual, tc.hz, 170)
		}))
	}
}

func TestSetBaseFrequency(t *testing.T) {
	for _, tc := range baseFrequencies {
		tc := tc
		Convey("Writes FREQ2..FREQ0 in one burst", t, WithMocks(t, func(bus *mocks.MockSPIBus, cc1101 *CC1101) {
			bus.EXPECT().TransferAndReceiveData(append([]byte{0x0d | 0x40}, tc.freq210...)).Return(nil)

			So(cc1101.SetBaseFrequencyHertz(tc.hz), ShouldBeNil)
		}))
	}

	Convey("Unrepresentable frequencies are not written", t, WithMocks(t, func(bus *mocks.MockSPIBus, cc1101 *CC1101) {
		So(cc1101.SetBaseFrequencyHertz(10e9), ShouldHaveSameTypeAs, &DomainError{})
	}))
}

func TestLowFrequencyWarning(t *testing.T) {
	cases := []struct {
		hz   float64
		warn bool
	}{
		{100e6, true},
		{281.6e6, true},
		{281.65e6, false},
		{281.7e6, false},
		{433.92e6, false},
	}
	for _, tc := range cases {
		tc := tc
		Convey("Advisory warning", t, func() {
			mock := gomock.NewController(t)
			defer mock.Finish()
			bus := mocks.NewMockSPIBus(mock)
			core, logs := observer.New(zapcore.WarnLevel)
			cc1101 := New(bus, WithLogger(zap.New(core)))

			bus.EXPECT().TransferAndReceiveData(gomock.Any()).Return(nil).Times(1)
			So(cc1101.SetBaseFrequencyHertz(tc.hz), ShouldBeNil)

			if tc.warn {
				So(logs.Len(), ShouldEqual, 1)
				So(logs.All()[0].Message, ShouldEqual, "CC1101 is unable to transmit at frequencies below 281.7 MHz")
			} else {
				So(logs.Len(), ShouldEqual, 0)
			}
		})
	}
}
