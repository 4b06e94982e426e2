package codec

import "github.com/velolib/valolab/internal/domain"

// The legacy layout predates the version header: twelve fixed maps, each a
// 24-bit big-endian integer holding five base-26 digits.
const (
	legacyMapCount    = 12
	legacyBytesPerMap = 3
	legacyRadix       = 26
)

func (c *Codec) decodeLegacy(raw []byte) (domain.Compositions, Header) {
	compositions := domain.Compositions{}

	limit := min(legacyMapCount, c.catalog.MapCount())
	for i := 0; i < limit; i++ {
		offset := i * legacyBytesPerMap
		if offset >= len(raw) {
			break
		}

		var mapNumber uint64
		for j := 0; j < legacyBytesPerMap; j++ {
			mapNumber <<= 8
			if offset+j < len(raw) {
				mapNumber |= uint64(raw[offset+j])
			}
		}
		if mapNumber == 0 {
			continue
		}

		if comp := c.digits(mapNumber, legacyRadix); !comp.IsEmpty() {
			compositions[c.catalog.MapAt(i).ID] = comp
		}
	}

	return compositions, Header{
		Format:     FormatLegacy,
		MapCount:   legacyMapCount,
		AgentCount: legacyRadix - 1,
		BitsPerMap: legacyBytesPerMap * 8,
		Truncated:  len(raw) < legacyMapCount*legacyBytesPerMap,
	}
}
