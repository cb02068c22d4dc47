package codec

import "fmt"

// QuickSlotCount is the number of quickslot entries stored in every save.
const QuickSlotCount = 10

// SlotKind identifies the variant held by a QuickSlot. Its value is the
// on-disk tag byte.
type SlotKind uint8

const (
	SlotEmpty SlotKind = 0
	SlotItem  SlotKind = 1
	SlotSkill SlotKind = 2
)

func (k SlotKind) String() string {
	switch k {
	case SlotEmpty:
		return "empty"
	case SlotItem:
		return "item"
	case SlotSkill:
		return "skill"
	default:
		return fmt.Sprintf("SlotKind(%d)", uint8(k))
	}
}

// QuickSlot is one shortcut binding: empty, an item reference or a skill reference.
//
// A slot decoded from an unrecognised tag is Empty but keeps its tag byte, so
// encoding it again reproduces the byte that was consumed.
type QuickSlot struct {
	kind  SlotKind
	tag   byte
	item  int32
	skill uint16
}

// EmptySlot returns an unbound slot.
func EmptySlot() QuickSlot {
	return QuickSlot{kind: SlotEmpty, tag: byte(SlotEmpty)}
}

// ItemSlot returns a slot bound to an item id.
func ItemSlot(id int32) QuickSlot {
	return QuickSlot{kind: SlotItem, tag: byte(SlotItem), item: id}
}

// SkillSlot returns a slot bound to a skill id.
func SkillSlot(id uint16) QuickSlot {
	return QuickSlot{kind: SlotSkill, tag: byte(SlotSkill), skill: id}
}

func (q QuickSlot) Kind() SlotKind {
	return q.kind
}

// Tag returns the tag byte that will be written for this slot.
func (q QuickSlot) Tag() byte {
	return q.tag
}

// ItemID returns the item id and true if the slot holds an item.
func (q QuickSlot) ItemID() (int32, bool) {
	return q.item, q.kind == SlotItem
}

// SkillID returns the skill id and true if the slot holds a skill.
func (q QuickSlot) SkillID() (uint16, bool) {
	return q.skill, q.kind == SlotSkill
}

func (q QuickSlot) String() string {
	switch q.kind {
	case SlotItem:
		return fmt.Sprintf("item(%d)", q.item)
	case SlotSkill:
		return fmt.Sprintf("skill(%d)", q.skill)
	default:
		if q.tag != byte(SlotEmpty) {
			return fmt.Sprintf("empty(tag=%d)", q.tag)
		}
		return "empty"
	}
}

// QuickSlots holds the quickslot bar in slot order 0..9.
type QuickSlots [QuickSlotCount]QuickSlot

// ReadQuickSlots reads exactly QuickSlotCount entries with no separator.
func ReadQuickSlots(r *Reader) (QuickSlots, error) {
	var slots QuickSlots
	for i := range slots {
		slot, err := readQuickSlot(r)
		if err != nil {
			return QuickSlots{}, fmt.Errorf("quickslot %d: %w", i, err)
		}
		slots[i] = slot
	}
	return slots, nil
}

func readQuickSlot(r *Reader) (QuickSlot, error) {
	tag, err := r.ReadU8()
	if err != nil {
		return QuickSlot{}, err
	}
	switch SlotKind(tag) {
	case SlotItem:
		id, err := r.ReadI32()
		if err != nil {
			return QuickSlot{}, err
		}
		return ItemSlot(id), nil
	case SlotSkill:
		id, err := r.ReadU16()
		if err != nil {
			return QuickSlot{}, err
		}
		return SkillSlot(id), nil
	default:
		// unknown tags carry no payload we know how to size
		return QuickSlot{kind: SlotEmpty, tag: tag}, nil
	}
}

// WriteQuickSlots writes every slot's tag byte followed by its payload.
func WriteQuickSlots(w *Writer, slots *QuickSlots) {
	for _, slot := range slots {
		w.WriteU8(slot.tag)
		switch slot.kind {
		case SlotItem:
			w.WriteI32(slot.item)
		case SlotSkill:
			w.WriteU16(slot.skill)
		}
	}
}
