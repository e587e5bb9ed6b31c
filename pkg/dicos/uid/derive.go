package uid

import (
	"math/big"

	"github.com/google/uuid"
)

// Root is the arc under which UUID derived UIDs live
const Root = "2.25."

// FromUUID maps a UUID to "2.25.<n>" where n is the UUID read as an
// unsigned 128-bit big-endian integer, ISO/IEC 9834-8 §6.3.
func FromUUID(u uuid.UUID) UID {
	n := new(big.Int).SetBytes(u[:])
	return UID{Value: Root + n.String(), Name: "Generated UID", Type: SOPInstance}
}

// FromGUIDBytes maps 16 bytes in the mixed-endian GUID memory layout
// (first three fields little-endian) to a UID.
//
// The integer is assembled least significant byte first: the last 8 bytes
// reversed, then the first 8 bytes with each field's bytes taken high to
// low, then a zero byte that keeps the value non-negative.
func FromGUIDBytes(b [16]byte) UID {
	var le [17]byte
	for i := 0; i < 8; i++ {
		le[i] = b[15-i]
	}
	copy(le[8:16], []byte{b[6], b[7], b[4], b[5], b[0], b[1], b[2], b[3]})

	be := make([]byte, len(le))
	for i := range le {
		be[len(le)-1-i] = le[i]
	}
	n := new(big.Int).SetBytes(be)
	return UID{Value: Root + n.String(), Name: "Generated UID", Type: SOPInstance}
}

// GUIDBytes returns u in the mixed-endian GUID memory layout
func GUIDBytes(u uuid.UUID) [16]byte {
	var b [16]byte
	b[0], b[1], b[2], b[3] = u[3], u[2], u[1], u[0]
	b[4], b[5] = u[5], u[4]
	b[6], b[7] = u[7], u[6]
	copy(b[8:], u[8:])
	return b
}

// DeriveNew returns a UID derived from a new random UUID
func DeriveNew() UID {
	return FromUUID(uuid.New())
}
