package storage

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"time"

	"github.com/segmentio/ksuid"
)

const snapshotHeaderSize = 20

// Snapshot is a verbatim copy of a save file taken before it was overwritten.
type Snapshot struct {
	ID        ksuid.KSUID
	CRC32     uint32 // CRC32 checksum for integrity
	Path      string // file the bytes were read from
	Timestamp uint64 // Unix timestamp in nanoseconds
	Data      []byte
}

// Time returns the snapshot timestamp.
func (s *Snapshot) Time() time.Time {
	return time.Unix(0, int64(s.Timestamp))
}

// Size returns the encoded snapshot size.
func (s *Snapshot) Size() int {
	return snapshotHeaderSize + len(s.Path) + len(s.Data)
}

// encodeSnapshot serializes a snapshot.
// Format: [CRC32(4)][PathSize(4)][DataSize(4)][Timestamp(8)][Path][Data]
func encodeSnapshot(s *Snapshot) []byte {
	buf := make([]byte, s.Size())

	binary.LittleEndian.PutUint32(buf[4:], uint32(len(s.Path)))
	binary.LittleEndian.PutUint32(buf[8:], uint32(len(s.Data)))
	binary.LittleEndian.PutUint64(buf[12:], s.Timestamp)
	copy(buf[snapshotHeaderSize:], s.Path)
	copy(buf[snapshotHeaderSize+len(s.Path):], s.Data)

	s.CRC32 = crc32.ChecksumIEEE(buf[4:])
	binary.LittleEndian.PutUint32(buf[0:], s.CRC32)
	return buf
}

// decodeSnapshot parses and validates an encoded snapshot. The returned
// snapshot does not alias data.
func decodeSnapshot(id ksuid.KSUID, data []byte) (*Snapshot, error) {
	if len(data) < snapshotHeaderSize {
		return nil, fmt.Errorf("snapshot %s: data too short for header", id)
	}

	crc := binary.LittleEndian.Uint32(data[0:4])
	pathSize := int(binary.LittleEndian.Uint32(data[4:8]))
	dataSize := int(binary.LittleEndian.Uint32(data[8:12]))
	if len(data) != snapshotHeaderSize+pathSize+dataSize {
		return nil, fmt.Errorf("snapshot %s: size mismatch: %d != %d", id, len(data), snapshotHeaderSize+pathSize+dataSize)
	}
	if actual := crc32.ChecksumIEEE(data[4:]); actual != crc {
		return nil, fmt.Errorf("snapshot %s: CRC32 mismatch: %d != %d", id, crc, actual)
	}

	body := data[snapshotHeaderSize:]
	s := &Snapshot{
		ID:        id,
		CRC32:     crc,
		Timestamp: binary.LittleEndian.Uint64(data[12:20]),
		Path:      string(body[:pathSize]),
		Data:      append([]byte(nil), body[pathSize:]...),
	}
	return s, nil
}
