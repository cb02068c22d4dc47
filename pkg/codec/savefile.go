package codec

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
)

// Tail is the undecoded remainder of a save file. It is never interpreted
// and must be handed back unchanged when the save is written.
type Tail []byte

// SaveFile is the decoded prefix of a character save.
type SaveFile struct {
	Appearance AppearanceRecord
	QuickSlots QuickSlots
	Cosmetic   CosmeticRecord
	nickname   string
}

// Nickname returns the character name.
func (s *SaveFile) Nickname() string {
	return s.nickname
}

// SetNickname replaces the character name. The name must be valid UTF-8 and
// at most MaxStringLen bytes once encoded.
func (s *SaveFile) SetNickname(name string) error {
	if err := checkString(name); err != nil {
		return fmt.Errorf("%w: nickname: %w", ErrInvalidValue, err)
	}
	s.nickname = name
	return nil
}

// Sex returns the sex flag.
func (s *SaveFile) Sex() Sex {
	return s.Cosmetic.Sex
}

// SetSex replaces the sex flag.
func (s *SaveFile) SetSex(v Sex) error {
	if !v.Valid() {
		return fmt.Errorf("%w: sex flag %d", ErrInvalidValue, uint8(v))
	}
	s.Cosmetic.Sex = v
	return nil
}

// SetOutfitColor replaces the palette color of one garment.
func (s *SaveFile) SetOutfitColor(part OutfitPart, c OutfitColor) error {
	if !c.Valid() {
		return fmt.Errorf("%w: %s color %d", ErrInvalidValue, part, uint8(c))
	}
	switch part {
	case OutfitPoncho:
		s.Cosmetic.PonchoColor = c
	case OutfitShirt:
		s.Cosmetic.ShirtColor = c
	case OutfitPants:
		s.Cosmetic.PantsColor = c
	default:
		return fmt.Errorf("%w: %s", ErrInvalidValue, part)
	}
	return nil
}

// PrefixSize returns the number of bytes the decoded prefix occupies on disk.
func (s *SaveFile) PrefixSize() int {
	n := AppearanceSchema.Size() + CosmeticSchema.Size() + 1 + len(s.nickname)
	for _, slot := range s.QuickSlots {
		n++
		switch slot.kind {
		case SlotItem:
			n += 4
		case SlotSkill:
			n += 2
		}
	}
	return n
}

// Decode reads a save from r: appearance record, quickslots, cosmetic
// record, nickname, then everything left as the tail. No partial value is
// returned on failure.
func Decode(r io.Reader) (*SaveFile, Tail, error) {
	rd := NewReader(r)

	appearance, err := ReadAppearance(rd)
	if err != nil {
		return nil, nil, err
	}
	slots, err := ReadQuickSlots(rd)
	if err != nil {
		return nil, nil, err
	}
	cosmetic, err := ReadCosmetic(rd)
	if err != nil {
		return nil, nil, err
	}
	nickname, err := rd.ReadString()
	if err != nil {
		return nil, nil, fmt.Errorf("nickname: %w", err)
	}
	tail, err := rd.ReadRemaining()
	if err != nil {
		return nil, nil, fmt.Errorf("tail: %w", err)
	}

	return &SaveFile{
		Appearance: appearance,
		QuickSlots: slots,
		Cosmetic:   cosmetic,
		nickname:   nickname,
	}, Tail(tail), nil
}

// Marshal encodes s followed by tail, in the same order Decode reads them.
func Marshal(s *SaveFile, tail Tail) ([]byte, error) {
	w := NewWriter()
	WriteAppearance(w, &s.Appearance)
	WriteQuickSlots(w, &s.QuickSlots)
	WriteCosmetic(w, &s.Cosmetic)
	if err := w.WriteString(s.nickname); err != nil {
		return nil, fmt.Errorf("%w: nickname: %w", ErrInvalidValue, err)
	}
	w.WriteBytes(tail)
	return w.Bytes(), nil
}

// Unmarshal decodes a save held in memory.
func Unmarshal(data []byte) (*SaveFile, Tail, error) {
	return Decode(bytes.NewReader(data))
}

// Encode writes s and tail to w. Nothing is written if s cannot be encoded.
func Encode(w io.Writer, s *SaveFile, tail Tail) error {
	data, err := Marshal(s, tail)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// ReadFile decodes the save at path.
func ReadFile(path string) (*SaveFile, Tail, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	s, tail, err := Decode(bufio.NewReader(f))
	if err != nil {
		return nil, nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return s, tail, nil
}

// WriteFile creates or truncates path and writes s followed by tail.
// The body is encoded before the file is touched, so an edit that cannot be
// encoded leaves path unchanged.
func WriteFile(path string, s *SaveFile, tail Tail) error {
	data, err := Marshal(s, tail)
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return os.WriteFile(path, data, 0644)
}
