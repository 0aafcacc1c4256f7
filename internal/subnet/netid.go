package subnet

import (
	"github.com/brocaar/lorawan"
)

// NetIDRetired is the retired legacy NetID. DevAddrs under this NetID
// are still treated as locally owned so that legacy devices keep
// working, but it never takes part in subnet range computation.
const NetIDRetired = NetID(0x200010)

const netIDMask = 0xffffff

// NetID is a 24-bit LoRaWAN network identifier. The top 3 bits encode
// the NetClass, the remaining bits the NwkID.
type NetID uint32

// NewNetID returns the NetID for the given value. Only the low 24 bits
// are retained, wider values are silently truncated.
func NewNetID(v uint32) NetID {
	return NetID(v & netIDMask)
}

// NetIDFromLoRaWAN converts from the wire representation.
func NetIDFromLoRaWAN(netID lorawan.NetID) NetID {
	return NetID(uint32(netID[0])<<16 | uint32(netID[1])<<8 | uint32(netID[2]))
}

// LoRaWAN returns the wire representation.
func (n NetID) LoRaWAN() lorawan.NetID {
	return lorawan.NetID{byte(n >> 16), byte(n >> 8), byte(n)}
}

// Class returns the NetClass stored in the top 3 bits.
func (n NetID) Class() NetClass {
	return NetClass(n >> 21)
}

// Size returns the number of device addresses assigned to the NetID.
func (n NetID) Size() uint32 {
	return 1 << n.Class().AddrLen()
}

// IsLocal returns true when the NetID is a member of the given ordered
// NetID list, or when it equals the retired NetID.
func (n NetID) IsLocal(netIDs []NetID) bool {
	if n == NetIDRetired {
		return true
	}
	return contains(netIDs, n)
}

// AddrRange returns the half-open subnet address range [lower, upper)
// claimed by the NetID within the ordered NetID list. Ranges are laid
// out contiguously in list order. ok is false when the NetID is not a
// list member.
func (n NetID) AddrRange(netIDs []NetID) (lower, upper Addr, ok bool) {
	// Most uplink traffic carries a foreign NetID, so the cheap
	// membership test runs before the accumulating walk.
	if !contains(netIDs, n) {
		return 0, 0, false
	}

	for _, item := range netIDs {
		size := Addr(item.Size())
		if item == n {
			upper = lower + size
			break
		}
		lower += size
		upper = lower
	}

	return lower, upper, true
}

// DevAddr encodes a DevAddr under this NetID for the given NwkAddr.
// nwkAddr must fit within the AddrLen of the NetID's class, the codec
// does not validate this.
func (n NetID) DevAddr(nwkAddr uint32) DevAddr {
	c := n.Class()
	id := uint32(n) & 0x1fffff
	prefix := classPrefixTable[c] << c.IDLen()
	return DevAddr((prefix|id)<<c.AddrLen() | nwkAddr)
}

// NetIDForAddr returns the NetID whose subnet address range contains the
// given Addr. ok is false when the Addr lies beyond the total assigned
// address space of the list.
func NetIDForAddr(addr Addr, netIDs []NetID) (NetID, bool) {
	for _, n := range netIDs {
		if addr.Within(n, netIDs) {
			return n, true
		}
	}
	return 0, false
}

// String implements fmt.Stringer.
func (n NetID) String() string {
	return n.LoRaWAN().String()
}

func contains(netIDs []NetID, n NetID) bool {
	for _, item := range netIDs {
		if item == n {
			return true
		}
	}
	return false
}
