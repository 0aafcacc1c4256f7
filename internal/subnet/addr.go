package subnet

// Addr is a flat subnet address: an index into the virtual concatenation
// of the address spans of every NetID in the operator's ordered NetID
// list. An Addr is only meaningful relative to the exact list (order and
// membership) it was derived from.
type Addr uint32

// Within returns true when the Addr falls inside the subnet address
// range of the given NetID.
func (a Addr) Within(netID NetID, netIDs []NetID) bool {
	lower, upper, ok := netID.AddrRange(netIDs)
	if !ok {
		return false
	}
	return a >= lower && a < upper
}

// DevAddr maps the Addr back to a DevAddr using the ordered NetID list.
// ok is false when the Addr lies beyond the total assigned address
// space.
func (a Addr) DevAddr(netIDs []NetID) (DevAddr, bool) {
	netID, ok := NetIDForAddr(a, netIDs)
	if !ok {
		return 0, false
	}
	lower, _, _ := netID.AddrRange(netIDs)
	return netID.DevAddr(uint32(a - lower)), true
}
