package subnet

import (
	"encoding/binary"

	"github.com/brocaar/lorawan"
)

// DevAddr is the 32-bit LoRaWAN device address. From MSB to LSB it holds
// the unary class prefix, IDLen(class) bits of NwkID and AddrLen(class)
// bits of NwkAddr.
type DevAddr uint32

// DevAddrFromLoRaWAN converts from the wire representation.
func DevAddrFromLoRaWAN(devAddr lorawan.DevAddr) DevAddr {
	return DevAddr(binary.BigEndian.Uint32(devAddr[:]))
}

// LoRaWAN returns the wire representation.
func (d DevAddr) LoRaWAN() lorawan.DevAddr {
	var out lorawan.DevAddr
	binary.BigEndian.PutUint32(out[:], uint32(d))
	return out
}

// NetClass returns the class encoded in the DevAddr prefix bits.
func (d DevAddr) NetClass() NetClass {
	return classOfPrefix(byte(d >> 24))
}

// NetID extracts the NetID the DevAddr was assigned under. Shifting by
// the class value drops the leading prefix bits and keeps the
// terminating zero bit in front of the NwkID field.
func (d DevAddr) NetID() NetID {
	c := d.NetClass()
	id := (uint32(d) << uint(c)) >> (31 - c.IDLen())
	return NetID(id | uint32(c)<<21)
}

// NwkAddr returns the device address bits of the DevAddr.
func (d DevAddr) NwkAddr() uint32 {
	bits := d.NetClass().AddrLen()
	return uint32(d) & (1<<bits - 1)
}

// IsLocal returns true when the DevAddr belongs to the operator: its
// NetID is a member of the ordered NetID list or the retired NetID.
func (d DevAddr) IsLocal(netIDs []NetID) bool {
	return d.NetID().IsLocal(netIDs)
}

// SubnetAddr maps the DevAddr to its flat subnet address relative to the
// ordered NetID list. ok is false when the DevAddr's NetID is not a list
// member. Note that this includes DevAddrs under the retired NetID,
// which are local but never subnet addressable.
func (d DevAddr) SubnetAddr(netIDs []NetID) (Addr, bool) {
	lower, _, ok := d.NetID().AddrRange(netIDs)
	if !ok {
		return 0, false
	}
	return lower + Addr(d.NwkAddr()), true
}

// String implements fmt.Stringer.
func (d DevAddr) String() string {
	return d.LoRaWAN().String()
}
