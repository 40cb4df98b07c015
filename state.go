package randseed

import (
	"encoding/binary"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"

	"github.com/nozzle/randseed/internal/rand"
)

// StateLen is the number of slots in the generator state array.
// Slot 0 is unused by the algorithm but is persisted like the others.
const StateLen = rand.StateLen

const (
	binaryVersion = 1
	binaryLen     = 1 + 4*(3+StateLen)
)

// ErrInvalidState is returned when persisted state cannot be restored.
var ErrInvalidState = errors.New("randseed: invalid state")

// State is the complete persisted form of a generator. A generator restored
// from a State continues with exactly the sequence the original would have
// produced.
type State struct {
	Seed      int32
	Position1 int32
	Position2 int32
	Seeds     [StateLen]int32
}

// Validate checks that the cursors index into the state array.
func (s State) Validate() error {
	if s.Position1 < 0 || s.Position1 >= StateLen {
		return fmt.Errorf("%w: position1 %d out of range [0,%d]", ErrInvalidState, s.Position1, StateLen-1)
	}
	if s.Position2 < 0 || s.Position2 >= StateLen {
		return fmt.Errorf("%w: position2 %d out of range [0,%d]", ErrInvalidState, s.Position2, StateLen-1)
	}
	return nil
}

// State captures the generator's current state.
func (r *Rand) State() State {
	pos1, pos2 := r.src.Positions()
	return State{
		Seed:      r.src.SeedValue(),
		Position1: pos1,
		Position2: pos2,
		Seeds:     r.src.State(),
	}
}

// Restore replaces the generator's state with s.
func (r *Rand) Restore(s State) error {
	if err := s.Validate(); err != nil {
		return err
	}
	r.src.Load(s.Seed, s.Position1, s.Position2, s.Seeds)
	return nil
}

// FromState creates a generator from persisted state.
func FromState(s State) (*Rand, error) {
	r := &Rand{}
	if err := r.Restore(s); err != nil {
		return nil, err
	}
	return r, nil
}

// stateDocument is the text form shared by the JSON and XML encodings.
// Seeds is a slice so that a wrong element count is detected on decode.
type stateDocument struct {
	Seed      int32   `json:"seed" xml:"Seed"`
	Position1 int32   `json:"position1" xml:"Position1"`
	Position2 int32   `json:"position2" xml:"Position2"`
	Seeds     []int32 `json:"seeds" xml:"Seeds>int"`
}

func (s State) document() stateDocument {
	return stateDocument{
		Seed:      s.Seed,
		Position1: s.Position1,
		Position2: s.Position2,
		Seeds:     s.Seeds[:],
	}
}

func (d stateDocument) state() (State, error) {
	if len(d.Seeds) != StateLen {
		return State{}, fmt.Errorf("%w: %d seeds, expected %d", ErrInvalidState, len(d.Seeds), StateLen)
	}
	s := State{
		Seed:      d.Seed,
		Position1: d.Position1,
		Position2: d.Position2,
	}
	copy(s.Seeds[:], d.Seeds)
	return s, s.Validate()
}

// MarshalJSON implements json.Marshaler.
func (s State) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.document())
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *State) UnmarshalJSON(data []byte) error {
	var d stateDocument
	if err := json.Unmarshal(data, &d); err != nil {
		return err
	}
	decoded, err := d.state()
	if err != nil {
		return err
	}
	*s = decoded
	return nil
}

// MarshalXML implements xml.Marshaler.
func (s State) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return e.EncodeElement(s.document(), start)
}

// UnmarshalXML implements xml.Unmarshaler.
func (s *State) UnmarshalXML(dec *xml.Decoder, start xml.StartElement) error {
	var d stateDocument
	if err := dec.DecodeElement(&d, &start); err != nil {
		return err
	}
	decoded, err := d.state()
	if err != nil {
		return err
	}
	*s = decoded
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler. The layout is a
// version byte followed by seed, position1, position2 and the 56 state
// values as little-endian int32s.
func (s State) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 1, binaryLen)
	buf[0] = binaryVersion
	buf = binary.LittleEndian.AppendUint32(buf, uint32(s.Seed))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(s.Position1))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(s.Position2))
	for _, v := range s.Seeds {
		buf = binary.LittleEndian.AppendUint32(buf, uint32(v))
	}
	return buf, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (s *State) UnmarshalBinary(data []byte) error {
	if len(data) != binaryLen {
		return fmt.Errorf("%w: %d bytes, expected %d", ErrInvalidState, len(data), binaryLen)
	}
	if data[0] != binaryVersion {
		return fmt.Errorf("%w: unknown version %d", ErrInvalidState, data[0])
	}

	word := func(i int) int32 {
		off := 1 + 4*i
		return int32(binary.LittleEndian.Uint32(data[off : off+4]))
	}

	decoded := State{
		Seed:      word(0),
		Position1: word(1),
		Position2: word(2),
	}
	for i := range decoded.Seeds {
		decoded.Seeds[i] = word(3 + i)
	}
	if err := decoded.Validate(); err != nil {
		return err
	}
	*s = decoded
	return nil
}

// GobEncode implements gob.GobEncoder using the binary layout.
func (s State) GobEncode() ([]byte, error) {
	return s.MarshalBinary()
}

// GobDecode implements gob.GobDecoder.
func (s *State) GobDecode(data []byte) error {
	return s.UnmarshalBinary(data)
}

// MarshalJSON implements json.Marshaler by encoding the generator's State.
func (r *Rand) MarshalJSON() ([]byte, error) {
	return r.State().MarshalJSON()
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *Rand) UnmarshalJSON(data []byte) error {
	var s State
	if err := s.UnmarshalJSON(data); err != nil {
		return err
	}
	return r.Restore(s)
}

// MarshalXML implements xml.Marshaler.
func (r *Rand) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return r.State().MarshalXML(e, start)
}

// UnmarshalXML implements xml.Unmarshaler.
func (r *Rand) UnmarshalXML(dec *xml.Decoder, start xml.StartElement) error {
	var s State
	if err := s.UnmarshalXML(dec, start); err != nil {
		return err
	}
	return r.Restore(s)
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (r *Rand) MarshalBinary() ([]byte, error) {
	return r.State().MarshalBinary()
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (r *Rand) UnmarshalBinary(data []byte) error {
	var s State
	if err := s.UnmarshalBinary(data); err != nil {
		return err
	}
	return r.Restore(s)
}

// GobEncode implements gob.GobEncoder.
func (r *Rand) GobEncode() ([]byte, error) {
	return r.MarshalBinary()
}

// GobDecode implements gob.GobDecoder.
func (r *Rand) GobDecode(data []byte) error {
	return r.UnmarshalBinary(data)
}
