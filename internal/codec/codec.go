// Package codec converts compositions to and from the short base64 code
// carried in the share URL.
//
// Version 1 layout, MSB first:
//
//	version:4 | mapCount:6 | agentCount:6 | map[0]:bitsPerMap | ... | map[mapCount-1]:bitsPerMap
//
// Each map is one mixed-radix integer with radix agentCount+1 and five digits,
// slot 0 being the least significant digit. Digit 0 is an empty slot and digit
// d is the agent at catalog index d-1. The header carries the catalog
// cardinalities used at encode time, so codes stay readable after the catalog
// grows.
package codec

import (
	"encoding/base64"
	"fmt"
	"math/bits"
	"strings"

	"github.com/velolib/valolab/internal/domain"
)

const (
	Version = 1

	versionBits    = 4
	mapCountBits   = 6
	agentCountBits = 6
)

type Format int

const (
	FormatV1 Format = iota + 1
	FormatLegacy
)

func (f Format) String() string {
	switch f {
	case FormatV1:
		return "v1"
	case FormatLegacy:
		return "legacy"
	default:
		return "unknown"
	}
}

// Header describes a decoded code. For legacy codes MapCount, AgentCount and
// BitsPerMap describe the fixed legacy layout.
type Header struct {
	Format     Format
	Version    int
	MapCount   int
	AgentCount int
	BitsPerMap int
	Truncated  bool
}

type Codec struct {
	catalog domain.Catalog
	text    *base64.Encoding
}

type Option func(*Codec)

// WithTextEncoding replaces the binary-to-text primitive. A nil encoding
// makes the codec unavailable for encoding.
func WithTextEncoding(enc *base64.Encoding) Option {
	return func(c *Codec) {
		c.text = enc
	}
}

func New(catalog domain.Catalog, opts ...Option) *Codec {
	c := &Codec{
		catalog: catalog,
		text:    base64.StdEncoding,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Available reports whether the codec has a text encoding to work with.
func (c *Codec) Available() bool {
	return c.text != nil
}

// BitsPerMap is the width of one map's mixed-radix number for agentCount agents.
func BitsPerMap(agentCount int) int {
	return bits.Len64(mapNumberMax(agentCount))
}

func mapNumberMax(agentCount int) uint64 {
	base := uint64(agentCount) + 1
	n := uint64(1)
	for i := 0; i < domain.SlotsPerMap; i++ {
		n *= base
	}
	return n - 1
}

// Encode packs compositions using the live catalog. Agents not in the catalog
// encode as empty slots and maps not in the catalog are ignored.
func (c *Codec) Encode(compositions domain.Compositions) (string, error) {
	if !c.Available() {
		return "", ErrEncodingUnavailable
	}

	agentCount := c.catalog.AgentCount()
	base := uint64(agentCount) + 1
	width := BitsPerMap(agentCount)

	w := &bitWriter{}
	w.write(Version, versionBits)
	w.write(uint64(c.catalog.MapCount()), mapCountBits)
	w.write(uint64(agentCount), agentCountBits)

	for _, m := range c.catalog.Maps() {
		comp := compositions.Get(m.ID)

		var mapNumber uint64
		place := uint64(1)
		for _, agent := range comp {
			mapNumber += c.slotValue(agent) * place
			place *= base
		}
		w.write(mapNumber, width)
	}

	return c.text.EncodeToString(w.bytes()), nil
}

func (c *Codec) slotValue(agent domain.AgentID) uint64 {
	if agent == domain.EmptySlot {
		return 0
	}
	i, ok := c.catalog.AgentIndex(agent)
	if !ok {
		return 0
	}
	return uint64(i) + 1
}

// Decode unpacks a code against the live catalog. Empty input yields an empty
// mapping and no error. Malformed input yields an empty mapping and an error
// wrapping ErrMalformed; partial results are never returned.
func (c *Codec) Decode(code string) (domain.Compositions, error) {
	compositions, _, err := c.decode(code)
	return compositions, err
}

// Inspect decodes code and also reports the header it was read with.
func (c *Codec) Inspect(code string) (domain.Compositions, Header, error) {
	return c.decode(code)
}

func (c *Codec) decode(code string) (domain.Compositions, Header, error) {
	if strings.TrimSpace(code) == "" {
		return domain.Compositions{}, Header{}, nil
	}

	raw, err := c.decodeText(code)
	if err != nil {
		return domain.Compositions{}, Header{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	r := newBitReader(raw)
	version := int(r.read(versionBits))
	if version != Version {
		compositions, header := c.decodeLegacy(raw)
		header.Version = version
		return compositions, header, nil
	}

	compositions, header := c.decodeV1(r)
	return compositions, header, nil
}

// decodeText mirrors the forgiving base64 of browsers: surrounding whitespace
// is dropped, padding is optional, and spaces are read as '+' because query
// decoders turn an unescaped '+' into a space.
func (c *Codec) decodeText(code string) ([]byte, error) {
	text := c.text
	if text == nil {
		text = base64.StdEncoding
	}

	cleaned := strings.TrimSpace(code)
	cleaned = strings.ReplaceAll(cleaned, " ", "+")
	cleaned = strings.TrimRight(cleaned, "=")

	return text.WithPadding(base64.NoPadding).DecodeString(cleaned)
}

func (c *Codec) decodeV1(r *bitReader) (domain.Compositions, Header) {
	mapCount := int(r.read(mapCountBits))
	agentCount := int(r.read(agentCountBits))
	base := uint64(agentCount) + 1
	width := BitsPerMap(agentCount)

	compositions := domain.Compositions{}
	limit := min(mapCount, c.catalog.MapCount())
	for i := 0; i < limit; i++ {
		mapNumber := r.read(width)
		if mapNumber == 0 {
			continue
		}
		if comp := c.digits(mapNumber, base); !comp.IsEmpty() {
			compositions[c.catalog.MapAt(i).ID] = comp
		}
	}

	return compositions, Header{
		Format:     FormatV1,
		Version:    Version,
		MapCount:   mapCount,
		AgentCount: agentCount,
		BitsPerMap: width,
		Truncated:  r.overrun > 0,
	}
}

// digits splits mapNumber into five base-radix digits, least significant
// first. Digits pointing past the live catalog become empty slots.
func (c *Codec) digits(mapNumber, base uint64) domain.Composition {
	var comp domain.Composition
	remaining := mapNumber
	for slot := 0; slot < domain.SlotsPerMap; slot++ {
		digit := remaining % base
		remaining /= base

		if digit == 0 || digit-1 >= uint64(c.catalog.AgentCount()) {
			continue
		}
		comp[slot] = c.catalog.AgentAt(int(digit - 1)).ID
	}
	return comp
}
