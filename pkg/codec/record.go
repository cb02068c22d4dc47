package codec

import "golang.org/x/text/encoding/charmap"

// AppearanceRecord is the fixed block preceding the quickslots: format tag,
// equipped items, visual style and the last weapon used per class.
type AppearanceRecord struct {
	FormatTag       int32
	EquipHat        int32
	EquipFacegear   int32
	BodyType        byte
	Hair            int32
	EquipWeapon     int32
	EquipShield     int32
	EquipArmor      int32
	EquipShoes      int32
	EquipAccessory1 int32
	EquipAccessory2 int32
	StyleHat        int32
	StyleFacegear   int32
	StyleWeapon     int32
	StyleShield     int32
	HatHidden       bool
	FacegearHidden  bool
	LastTwoHander   int32
	LastOneHander   int32
	LastBow         int32
}

// BodyTypeRune returns the body type character as the client displays it.
func (a *AppearanceRecord) BodyTypeRune() rune {
	return charmap.Windows1252.DecodeByte(a.BodyType)
}

// AppearanceSchema lists AppearanceRecord fields in on-disk order.
var AppearanceSchema = Schema[AppearanceRecord]{
	Name: "appearance",
	Fields: []Field[AppearanceRecord]{
		int32Field("format_tag", func(a *AppearanceRecord) *int32 { return &a.FormatTag }),
		int32Field("equip_hat", func(a *AppearanceRecord) *int32 { return &a.EquipHat }),
		int32Field("equip_facegear", func(a *AppearanceRecord) *int32 { return &a.EquipFacegear }),
		charField("body_type", func(a *AppearanceRecord) *byte { return &a.BodyType }),
		int32Field("hair", func(a *AppearanceRecord) *int32 { return &a.Hair }),
		int32Field("equip_weapon", func(a *AppearanceRecord) *int32 { return &a.EquipWeapon }),
		int32Field("equip_shield", func(a *AppearanceRecord) *int32 { return &a.EquipShield }),
		int32Field("equip_armor", func(a *AppearanceRecord) *int32 { return &a.EquipArmor }),
		int32Field("equip_shoes", func(a *AppearanceRecord) *int32 { return &a.EquipShoes }),
		int32Field("equip_accessory1", func(a *AppearanceRecord) *int32 { return &a.EquipAccessory1 }),
		int32Field("equip_accessory2", func(a *AppearanceRecord) *int32 { return &a.EquipAccessory2 }),
		int32Field("style_hat", func(a *AppearanceRecord) *int32 { return &a.StyleHat }),
		int32Field("style_facegear", func(a *AppearanceRecord) *int32 { return &a.StyleFacegear }),
		int32Field("style_weapon", func(a *AppearanceRecord) *int32 { return &a.StyleWeapon }),
		int32Field("style_shield", func(a *AppearanceRecord) *int32 { return &a.StyleShield }),
		boolField("hat_hidden", func(a *AppearanceRecord) *bool { return &a.HatHidden }),
		boolField("facegear_hidden", func(a *AppearanceRecord) *bool { return &a.FacegearHidden }),
		int32Field("last_two_hander", func(a *AppearanceRecord) *int32 { return &a.LastTwoHander }),
		int32Field("last_one_hander", func(a *AppearanceRecord) *int32 { return &a.LastOneHander }),
		int32Field("last_bow", func(a *AppearanceRecord) *int32 { return &a.LastBow }),
	},
}

// CosmeticRecord is the 6-byte block following the quickslots.
type CosmeticRecord struct {
	HairColor   uint8
	SkinColor   uint8
	PonchoColor OutfitColor
	ShirtColor  OutfitColor
	PantsColor  OutfitColor
	Sex         Sex
}

// CosmeticSchema lists CosmeticRecord fields in on-disk order.
var CosmeticSchema = Schema[CosmeticRecord]{
	Name: "cosmetic",
	Fields: []Field[CosmeticRecord]{
		byteField("hair_color", func(c *CosmeticRecord) *uint8 { return &c.HairColor }),
		byteField("skin_color", func(c *CosmeticRecord) *uint8 { return &c.SkinColor }),
		byteField("poncho_color", func(c *CosmeticRecord) *OutfitColor { return &c.PonchoColor }),
		byteField("shirt_color", func(c *CosmeticRecord) *OutfitColor { return &c.ShirtColor }),
		byteField("pants_color", func(c *CosmeticRecord) *OutfitColor { return &c.PantsColor }),
		byteField("sex", func(c *CosmeticRecord) *Sex { return &c.Sex }),
	},
}

// ReadAppearance decodes the appearance/equipment record.
func ReadAppearance(r *Reader) (AppearanceRecord, error) {
	return AppearanceSchema.Decode(r)
}

// WriteAppearance encodes the appearance/equipment record.
func WriteAppearance(w *Writer, a *AppearanceRecord) {
	AppearanceSchema.Encode(w, a)
}

// ReadCosmetic decodes the cosmetic record.
func ReadCosmetic(r *Reader) (CosmeticRecord, error) {
	return CosmeticSchema.Decode(r)
}

// WriteCosmetic encodes the cosmetic record.
func WriteCosmetic(w *Writer, c *CosmeticRecord) {
	CosmeticSchema.Encode(w, c)
}
