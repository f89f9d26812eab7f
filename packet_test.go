package cc1101

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/hatstand/cc1101/mocks"

	. "github.com/smartystreets/goconvey/convey"
)

// expectPKTCTRL0Update expects a read of PKTCTRL0 returning before followed
// by a write of after.
func expectPKTCTRL0Update(bus *mocks.MockSPIBus, before, after byte) {
	gomock.InOrder(
		bus.EXPECT().TransferAndReceiveData([]byte{0x08 | 0x80, 0}).Return(nil).SetArg(0, []byte{0x0f, before}),
		bus.EXPECT().TransferAndReceiveData([]byte{0x08, after}).Return(nil),
	)
}

func TestDisableDataWhitening(t *testing.T) {
	for _, tc := range [][2]byte{
		{0b01000101, 0b00000101},
		{0b00000101, 0b00000101},
		{0b11111111, 0b10111111},
	} {
		tc := tc
		Convey("Clears WHITE_DATA", t, WithMocks(t, func(bus *mocks.MockSPIBus, cc1101 *CC1101) {
			expectPKTCTRL0Update(bus, tc[0], tc[1])
			So(cc1101.DisableDataWhitening(), ShouldBeNil)
		}))
	}
}

func TestDisableChecksum(t *testing.T) {
	for _, tc := range [][2]byte{
		{0b00000000, 0b00000000},
		{0b00010000, 0b00010000},
		{0b01110010, 0b01110010},
		{0b00010100, 0b00010000},
		{0b01000100, 0b01000000},
		{0b01110110, 0b01110010},
	} {
		tc := tc
		Convey("Clears CRC_EN", t, WithMocks(t, func(bus *mocks.MockSPIBus, cc1101 *CC1101) {
			expectPKTCTRL0Update(bus, tc[0], tc[1])
			So(cc1101.DisableChecksum(), ShouldBeNil)
		}))
	}
}

func TestTransceiveMode(t *testing.T) {
	Convey("Get", t, WithMocks(t, func(bus *mocks.MockSPIBus, cc1101 *CC1101) {
		gomock.InOrder(
			bus.EXPECT().TransferAndReceiveData([]byte{0x08 | 0x80, 0}).Return(nil).SetArg(0, []byte{0x00, 0b01000101}),
			bus.EXPECT().TransferAndReceiveData([]byte{0x08 | 0x80, 0}).Return(nil).SetArg(0, []byte{0x00, 0b00110101}),
		)
		mode, err := cc1101.GetTransceiveMode()
		So(err, ShouldBeNil)
		So(mode, ShouldEqual, TransceiveFIFO)
		mode, err = cc1101.GetTransceiveMode()
		So(err, ShouldBeNil)
		So(mode, ShouldEqual, TransceiveAsynchronousSerial)
	}))

	cases := []struct {
		before, after byte
		mode          TransceiveMode
	}{
		{0b01000101, 0b01000101, TransceiveFIFO},
		{0b01000101, 0b01010101, TransceiveSynchronousSerial},
		{0b01000101, 0b01110101, TransceiveAsynchronousSerial},
		{0b11111111, 0b11001111, TransceiveFIFO},
	}
	for _, tc := range cases {
		tc := tc
		Convey("Set "+tc.mode.String(), t, WithMocks(t, func(bus *mocks.MockSPIBus, cc1101 *CC1101) {
			expectPKTCTRL0Update(bus, tc.before, tc.after)
			So(cc1101.SetTransceiveMode(tc.mode), ShouldBeNil)
		}))
	}

	Convey("Unknown modes are rejected", t, WithMocks(t, func(bus *mocks.MockSPIBus, cc1101 *CC1101) {
		So(cc1101.SetTransceiveMode(TransceiveMode(2)), ShouldHaveSameTypeAs, &ValidationError{})
	}))
}

func TestPacketLengthMode(t *testing.T) {
	gets := []struct {
		pktctrl0 byte
		mode     PacketLengthMode
	}{
		{0b00000000, PacketLengthFixed},
		{0b00000001, PacketLengthVariable},
		{0b01000100, PacketLengthFixed},
		{0b01000101, PacketLengthVariable},
	}
	for _, tc := range gets {
		tc := tc
		Convey("Get", t, WithMocks(t, func(bus *mocks.MockSPIBus, cc1101 *CC1101) {
			bus.EXPECT().TransferAndReceiveData([]byte{0x08 | 0x80, 0}).Return(nil).SetArg(0, []byte{0x00, tc.pktctrl0})
			mode, err := cc1101.GetPacketLengthMode()
			So(err, ShouldBeNil)
			So(mode, ShouldEqual, tc.mode)
		}))
	}

	sets := []struct {
		before, after byte
		mode          PacketLengthMode
	}{
		{0b00000000, 0b00000000, PacketLengthFixed},
		{0b00000001, 0b00000000, PacketLengthFixed},
		{0b00000001, 0b00000001, PacketLengthVariable},
		{0b00000010, 0b00000000, PacketLengthFixed},
		{0b00000010, 0b00000001, PacketLengthVariable},
		{0b01000100, 0b01000101, PacketLengthVariable},
		{0b01000101, 0b01000100, PacketLengthFixed},
	}
	for _, tc := range sets {
		tc := tc
		Convey("Set "+tc.mode.String(), t, WithMocks(t, func(bus *mocks.MockSPIBus, cc1101 *CC1101) {
			expectPKTCTRL0Update(bus, tc.before, tc.after)
			So(cc1101.SetPacketLengthMode(tc.mode), ShouldBeNil)
		}))
	}
}

func TestPacketLength(t *testing.T) {
	Convey("PKTLEN", t, WithMocks(t, func(bus *mocks.MockSPIBus, cc1101 *CC1101) {
		gomock.InOrder(
			bus.EXPECT().TransferAndReceiveData([]byte{0x06 | 0x80, 0}).Return(nil).SetArg(0, []byte{0x0f, 0xff}),
			bus.EXPECT().TransferAndReceiveData([]byte{0x06, 0x3d}).Return(nil),
		)
		length, err := cc1101.GetPacketLengthBytes()
		So(err, ShouldBeNil)
		So(length, ShouldEqual, 255)
		So(cc1101.SetPacketLengthBytes(61), ShouldBeNil)
		So(cc1101.SetPacketLengthBytes(0), ShouldHaveSameTypeAs, &ValidationError{})
		So(cc1101.SetPacketLengthBytes(256), ShouldHaveSameTypeAs, &ValidationError{})
	}))
}

func TestSyncWord(t *testing.T) {
	Convey("SYNC1 and SYNC0", t, WithMocks(t, func(bus *mocks.MockSPIBus, cc1101 *CC1101) {
		gomock.InOrder(
			bus.EXPECT().TransferAndReceiveData([]byte{0x04 | 0x40, 0xd3, 0x91}).Return(nil),
			bus.EXPECT().TransferAndReceiveData([]byte{0x04 | 0xc0, 0, 0}).Return(nil).SetArg(0, []byte{0x0f, 0xd3, 0x91}),
		)
		So(cc1101.SetSyncWord(0xd391), ShouldBeNil)
		word, err := cc1101.GetSyncWord()
		So(err, ShouldBeNil)
		So(word, ShouldEqual, 0xd391)
	}))
}
