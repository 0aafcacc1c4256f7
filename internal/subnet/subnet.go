// Package subnet translates between the LoRaWAN DevAddr wire format and
// the flat subnet address space that is formed by the ordered list of
// NetIDs assigned to the network operator. All functions are pure: the
// NetID list is borrowed read-only per call and never retained.
package subnet

// Bit-width tables from the LoRaWAN specification, indexed by NetClass:
// the number of NwkAddr bits and NwkID bits per DevAddr type.
var (
	addrLenTable = [8]uint{25, 24, 20, 17, 15, 13, 10, 7}
	idLenTable   = [8]uint{6, 6, 9, 11, 12, 13, 15, 17}

	// Type prefix bit patterns per NetClass, MSB first, terminating zero
	// bit included.
	classPrefixTable = [8]uint32{
		0b0,
		0b10,
		0b110,
		0b1110,
		0b11110,
		0b111110,
		0b1111110,
		0b11111110,
	}
)

// NetClass is the NetID / DevAddr type (0 - 7). It selects the bit-width
// of the NwkID and NwkAddr fields within a DevAddr.
type NetClass uint8

// AddrLen returns the number of NwkAddr bits for the class.
func (c NetClass) AddrLen() uint {
	if c > 7 {
		return 0
	}
	return addrLenTable[c]
}

// IDLen returns the number of NwkID bits for the class.
func (c NetClass) IDLen() uint {
	if c > 7 {
		return 0
	}
	return idLenTable[c]
}

// classOfPrefix derives the NetClass from the most significant DevAddr
// byte. The class is encoded as a unary prefix: the number of leading
// set bits before the terminating zero bit. A fully set byte is not a
// valid prefix and decodes as class 0.
func classOfPrefix(b byte) NetClass {
	for i := 7; i >= 0; i-- {
		if b&(1<<uint(i)) == 0 {
			return NetClass(7 - i)
		}
	}
	return 0
}
