// Package codec reads and writes character save files (.cha).
//
// Only the leading part of a save is understood. The codec decodes that
// prefix into a SaveFile and keeps every byte after it as an opaque Tail,
// so a save can be edited and written back without knowing the rest of the
// format.
//
// # File Format
//
// All integers are little-endian. Sections appear in this fixed order:
//
//	[Appearance(71)][QuickSlot x10][Cosmetic(6)][NickLen(1)][Nickname][Tail]
//
// Sections:
//   - Appearance: 17 int32 fields, 1 body type character and 2 visibility
//     flags, laid out as listed in AppearanceSchema
//   - QuickSlot: 1 tag byte; tag 1 is followed by an int32 item id, tag 2 by
//     a uint16 skill id, any other tag has no payload and decodes as empty
//   - Cosmetic: 5 color bytes and the sex flag, laid out as listed in
//     CosmeticSchema
//   - Nickname: 1 length byte followed by that many UTF-8 bytes
//   - Tail: everything up to end of file, copied verbatim
//
// The section order is the file format. Changing it breaks every existing
// save.
//
// # Usage
//
// Edit a nickname in place:
//
//	save, tail, err := codec.ReadFile("0.cha")
//	if err != nil {
//	    return err
//	}
//	if err := save.SetNickname("Wanderer"); err != nil {
//	    return err
//	}
//	return codec.WriteFile("0.cha", save, tail)
//
// # Error Handling
//
// Decoding fails with ErrTruncatedInput when the file ends inside the
// decoded prefix and with ErrInvalidEncoding when the nickname is not
// UTF-8. Encoding fails with ErrStringTooLong when the nickname does not fit
// its length byte; the target file is not touched in that case. Setters
// reject out-of-domain edits with ErrInvalidValue, including a nickname that
// is not valid UTF-8. IsInputError and IsEditError tell the two groups apart. Errors from the file system are
// returned unchanged or wrapped with %w.
//
// # Thread Safety
//
// The package has no shared state. A SaveFile is owned by one caller and
// is not safe for concurrent mutation.
package codec
