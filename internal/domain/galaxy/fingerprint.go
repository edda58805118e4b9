package galaxy

import (
	"encoding/binary"
	"encoding/hex"

	"lukechampine.com/blake3"
)

// Fingerprint returns a BLAKE3 digest of the starmap topology (system ids,
// locations and neighbour entries). Ownership, buildings and fleets are not
// part of it, so it only changes when the graph itself changes.
func (m *Starmap) Fingerprint() string {
	hasher := blake3.New(32, nil)
	buf := make([]byte, 4)

	write := func(v uint32) {
		binary.BigEndian.PutUint32(buf, v)
		hasher.Write(buf)
	}

	write(uint32(len(m.systems)))
	for _, system := range m.Systems() {
		write(system.ID().Value())
		write(system.Location().X)
		write(system.Location().Y)
	}

	write(uint32(len(m.neighbours)))
	for _, link := range m.Neighbours() {
		write(link.From.Value())
		write(link.To.Value())
	}

	return hex.EncodeToString(hasher.Sum(nil))
}
