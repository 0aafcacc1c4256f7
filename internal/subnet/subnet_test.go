package subnet

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSubnet(t *testing.T) {
	Convey("Given the ordered NetID list [E00001, C00035, 60002D]", t, func() {
		netIDs := []NetID{0xE00001, 0xC00035, 0x60002D}

		Convey("Then the NetID sizes follow the class tables", func() {
			So(NetID(0xE00001).Class().AddrLen(), ShouldEqual, 7)
			So(NetID(0xC00035).Class().AddrLen(), ShouldEqual, 10)
			So(NetID(0x60002D).Class().AddrLen(), ShouldEqual, 17)

			So(NetID(0xE00001).Size(), ShouldEqual, 128)
			So(NetID(0xC00035).Size(), ShouldEqual, 1024)
			So(NetID(0x60002D).Size(), ShouldEqual, 131072)
		})

		Convey("Then the address ranges are contiguous and in list order", func() {
			lower0, upper0, ok := NetID(0xE00001).AddrRange(netIDs)
			So(ok, ShouldBeTrue)
			So(lower0, ShouldEqual, Addr(0))
			So(upper0, ShouldEqual, Addr(128))

			lower1, upper1, ok := NetID(0xC00035).AddrRange(netIDs)
			So(ok, ShouldBeTrue)
			So(lower1, ShouldEqual, Addr(128))
			So(upper1, ShouldEqual, Addr(128+1024))

			lower2, upper2, ok := NetID(0x60002D).AddrRange(netIDs)
			So(ok, ShouldBeTrue)
			So(lower2, ShouldEqual, Addr(128+1024))
			So(upper2, ShouldEqual, Addr(128+1024+131072))

			So(upper0, ShouldEqual, lower1)
			So(upper1, ShouldEqual, lower2)
		})

		Convey("Then a NetID outside the list has no range", func() {
			_, _, ok := NetID(0xC00050).AddrRange(netIDs)
			So(ok, ShouldBeFalse)
		})

		Convey("Then IsLocal covers list members and the retired NetID", func() {
			So(NetID(0xC00035).IsLocal(netIDs), ShouldBeTrue)
			So(NetID(0xC00050).IsLocal(netIDs), ShouldBeFalse)
			So(NetIDRetired.IsLocal(netIDs), ShouldBeTrue)
		})

		Convey("When encoding DevAddrs", func() {
			So(NetIDRetired.DevAddr(0), ShouldEqual, DevAddr(0x90000000))
			So(NetID(0xC00035).DevAddr(16), ShouldEqual, DevAddr(0xFC00D410))
			So(NetID(0x60002D).DevAddr(8), ShouldEqual, DevAddr(0xE05A0008))
		})

		Convey("When decoding DevAddrs", func() {
			So(DevAddr(0x90000000).NetID(), ShouldEqual, NetIDRetired)
			So(DevAddr(0xFC00D410).NetID(), ShouldEqual, NetID(0xC00035))
			So(DevAddr(0xE05A0008).NetID(), ShouldEqual, NetID(0x60002D))

			So(DevAddr(0x90000000).NetClass(), ShouldEqual, NetClass(1))
			So(DevAddr(0xFC00D410).NetClass(), ShouldEqual, NetClass(6))
			So(DevAddr(0xE05A0008).NetClass(), ShouldEqual, NetClass(3))

			So(DevAddr(0x90000000).NwkAddr(), ShouldEqual, uint32(0))
			So(DevAddr(0xFC00D410).NwkAddr(), ShouldEqual, uint32(16))
			So(DevAddr(0xE05A0008).NwkAddr(), ShouldEqual, uint32(8))
		})

		Convey("When mapping DevAddrs to subnet addresses", func() {
			addr1, ok := DevAddr(0xFC00D410).SubnetAddr(netIDs)
			So(ok, ShouldBeTrue)
			So(addr1, ShouldEqual, Addr(128+16))

			addr2, ok := DevAddr(0xE05A0008).SubnetAddr(netIDs)
			So(ok, ShouldBeTrue)
			So(addr2, ShouldEqual, Addr(128+1024+8))

			Convey("Then they invert exactly", func() {
				devAddr1, ok := addr1.DevAddr(netIDs)
				So(ok, ShouldBeTrue)
				So(devAddr1, ShouldEqual, DevAddr(0xFC00D410))

				devAddr2, ok := addr2.DevAddr(netIDs)
				So(ok, ShouldBeTrue)
				So(devAddr2, ShouldEqual, DevAddr(0xE05A0008))
			})
		})

		Convey("Then a retired-NetID DevAddr is local but not subnet addressable", func() {
			devAddr := DevAddr(0x90000000)
			So(devAddr.IsLocal(netIDs), ShouldBeTrue)

			_, ok := devAddr.SubnetAddr(netIDs)
			So(ok, ShouldBeFalse)

			Convey("And subnet address 0 maps to the first listed NetID instead", func() {
				out, ok := Addr(0).DevAddr(netIDs)
				So(ok, ShouldBeTrue)
				So(out, ShouldEqual, DevAddr(0xFE000080))
				So(out.NetID(), ShouldEqual, NetID(0xE00001))
				So(out, ShouldNotEqual, devAddr)
			})
		})

		Convey("Then subnet addresses within the total span round-trip", func() {
			for _, a := range []Addr{0, 127, 128, 1151, 1152, 1160, 132223} {
				devAddr, ok := a.DevAddr(netIDs)
				So(ok, ShouldBeTrue)

				out, ok := devAddr.SubnetAddr(netIDs)
				So(ok, ShouldBeTrue)
				So(out, ShouldEqual, a)
			}
		})

		Convey("Then a subnet address beyond the total span does not resolve", func() {
			_, ok := Addr(128 + 1024 + 131072).DevAddr(netIDs)
			So(ok, ShouldBeFalse)
		})
	})
}
