package application

import (
	"errors"
	"fmt"

	"github.com/velolib/valolab/internal/codec"
	"github.com/velolib/valolab/internal/domain"
	"github.com/velolib/valolab/internal/ports"
	"go.uber.org/zap"
)

// QueryParam is the location query parameter carrying the encoded board.
const QueryParam = "c"

type LoadStatus int

const (
	LoadAbsent LoadStatus = iota
	LoadDecoded
	LoadMalformed
)

func (s LoadStatus) String() string {
	switch s {
	case LoadAbsent:
		return "absent"
	case LoadDecoded:
		return "decoded"
	case LoadMalformed:
		return "malformed"
	default:
		return "unknown"
	}
}

// Board holds the current compositions. Every mutation swaps in a new value
// and republishes the encoded board into the location.
type Board struct {
	catalog   domain.Catalog
	codec     *codec.Codec
	location  ports.Location
	clipboard ports.Clipboard
	notifier  ports.Notifier
	logger    *zap.Logger

	compositions domain.Compositions
}

type BoardOption func(*Board)

func WithClipboard(clipboard ports.Clipboard) BoardOption {
	return func(b *Board) {
		b.clipboard = clipboard
	}
}

func WithNotifier(notifier ports.Notifier) BoardOption {
	return func(b *Board) {
		b.notifier = notifier
	}
}

func NewBoard(catalog domain.Catalog, c *codec.Codec, location ports.Location, logger *zap.Logger, opts ...BoardOption) *Board {
	if logger == nil {
		logger = zap.NewNop()
	}
	if c == nil {
		c = codec.New(catalog)
	}

	b := &Board{
		catalog:      catalog,
		codec:        c,
		location:     location,
		logger:       logger,
		compositions: domain.Compositions{},
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *Board) Catalog() domain.Catalog {
	return b.catalog
}

// Compositions returns a copy of the current state.
func (b *Board) Compositions() domain.Compositions {
	return b.compositions.Clone()
}

// URL is the current location, which is also the share link.
func (b *Board) URL() string {
	return b.location.String()
}

// LoadFromLocation seeds the board from the location's query parameter.
// A missing or undecodable parameter leaves the board empty.
func (b *Board) LoadFromLocation() LoadStatus {
	code, ok := b.location.Query(QueryParam)
	if !ok || code == "" {
		b.compositions = domain.Compositions{}
		return LoadAbsent
	}

	decoded, err := b.codec.Decode(code)
	if err != nil {
		b.logger.Warn("failed to decode compositions", zap.String("code", code), zap.Error(err))
		b.compositions = domain.Compositions{}
		return LoadMalformed
	}

	b.compositions = decoded
	b.logger.Debug("loaded compositions", zap.Int("maps", len(decoded)))
	return LoadDecoded
}

// SetSlot replaces one slot. It checks catalog membership and the slot range
// only; uniqueness within a map is left to SelectAgent.
func (b *Board) SetSlot(mapID domain.MapID, slot int, agent domain.AgentID) error {
	if err := b.validateSlot(mapID, slot); err != nil {
		return err
	}
	if agent != domain.EmptySlot {
		if _, ok := b.catalog.AgentIndex(agent); !ok {
			return fmt.Errorf("%w: %q", domain.ErrUnknownAgent, agent)
		}
	}

	next := b.compositions.Clone()
	comp := next[mapID]
	comp[slot] = agent
	if comp.IsEmpty() {
		delete(next, mapID)
	} else {
		next[mapID] = comp
	}

	return b.replace(next)
}

// ResetMap removes the map's entry, which is the same as clearing every slot.
func (b *Board) ResetMap(mapID domain.MapID) error {
	if !b.catalog.HasMap(mapID) {
		return fmt.Errorf("%w: %q", domain.ErrUnknownMap, mapID)
	}

	next := b.compositions.Clone()
	delete(next, mapID)
	return b.replace(next)
}

func (b *Board) ResetAll() error {
	return b.replace(domain.Compositions{})
}

func (b *Board) replace(next domain.Compositions) error {
	b.compositions = next
	return b.publish()
}

// publish writes the encoded board into the location. When the codec cannot
// encode, the location is left as it was.
func (b *Board) publish() error {
	code, err := b.codec.Encode(b.compositions)
	if err != nil {
		if errors.Is(err, codec.ErrEncodingUnavailable) {
			b.logger.Warn("skipping location update", zap.Error(err))
			return nil
		}
		return fmt.Errorf("encode compositions: %w", err)
	}

	if err := b.location.ReplaceQuery(QueryParam, code); err != nil {
		return fmt.Errorf("publish compositions: %w", err)
	}

	b.logger.Debug("published compositions", zap.String("code", code))
	return nil
}

func (b *Board) validateSlot(mapID domain.MapID, slot int) error {
	if !b.catalog.HasMap(mapID) {
		return fmt.Errorf("%w: %q", domain.ErrUnknownMap, mapID)
	}
	if slot < 0 || slot >= domain.SlotsPerMap {
		return fmt.Errorf("%w: %d", domain.ErrSlotOutOfRange, slot)
	}
	return nil
}
