// Package codec converts the in-memory item collection to and from its
// on-disk binary form. The format is a single blob: a fixed header
// followed by every record in collection order. There is no version tag
// and no checksum; readers and writers must agree on the layout below.
//
//	Header:     nextID:int32, recordCount:int32
//	Per record: id:int32
//	            name, category, description:  uint32 length + bytes
//	            date:                         fixed 12 bytes (10 chars + 2 unused)
//	            location, status:             uint32 length + bytes
//	            matched:int32, claimed:int32, matchedItemID:int32
//	            personName, personContact:    uint32 length + bytes
package codec

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/haleta-e/lost-and-found-manager/pkg/item"
)

// ErrCorrupt marks snapshots that fail structural sanity checks during
// decoding. Callers treat it the same as a short read: the store is
// unusable as a whole.
var ErrCorrupt = errors.New("codec: corrupt snapshot")

const (
	dateBufLen = 12

	// Stored lengths are trusted only up to these bounds; anything
	// larger is corruption, not data.
	maxFieldLen = 1 << 20
	maxRecords  = 1 << 20
)

var byteOrder = binary.LittleEndian

// Snapshot is the unit of persistence: the whole collection plus the id
// generator state.
type Snapshot struct {
	NextID int32
	Items  []item.Item
}

// Encode writes the snapshot to w in the binary format above.
func Encode(w io.Writer, s Snapshot) error {
	bw := bufio.NewWriter(w)

	if err := writeInt32(bw, s.NextID); err != nil {
		return fmt.Errorf("codec: write header: %w", err)
	}
	if err := writeInt32(bw, int32(len(s.Items))); err != nil {
		return fmt.Errorf("codec: write header: %w", err)
	}

	for _, it := range s.Items {
		if err := encodeItem(bw, it); err != nil {
			return fmt.Errorf("codec: write record %d: %w", it.ID, err)
		}
	}

	return bw.Flush()
}

// Decode reads a snapshot from r. Any structural problem (short read,
// implausible length, unparseable date) fails the whole snapshot; there
// is no partial recovery.
func Decode(r io.Reader) (Snapshot, error) {
	br := bufio.NewReader(r)

	nextID, err := readInt32(br)
	if err != nil {
		return Snapshot{}, fmt.Errorf("codec: read header: %w", err)
	}
	count, err := readInt32(br)
	if err != nil {
		return Snapshot{}, fmt.Errorf("codec: read header: %w", err)
	}
	if nextID < 0 || count < 0 || count > maxRecords {
		return Snapshot{}, fmt.Errorf("%w: header nextID=%d count=%d", ErrCorrupt, nextID, count)
	}

	items := make([]item.Item, 0, count)
	for i := int32(0); i < count; i++ {
		it, err := decodeItem(br)
		if err != nil {
			return Snapshot{}, fmt.Errorf("codec: read record %d of %d: %w", i+1, count, err)
		}
		items = append(items, it)
	}

	return Snapshot{NextID: nextID, Items: items}, nil
}

func encodeItem(w io.Writer, it item.Item) error {
	if err := writeInt32(w, it.ID); err != nil {
		return err
	}

	for _, s := range []string{it.Name, string(it.Category), it.Description} {
		if err := writeString(w, s); err != nil {
			return err
		}
	}

	var date [dateBufLen]byte
	copy(date[:], it.Date.String())
	if _, err := w.Write(date[:]); err != nil {
		return err
	}

	if err := writeString(w, it.Location); err != nil {
		return err
	}
	if err := writeString(w, string(it.Status)); err != nil {
		return err
	}

	for _, v := range []int32{boolToInt32(it.Matched), boolToInt32(it.Claimed), it.MatchedItemID} {
		if err := writeInt32(w, v); err != nil {
			return err
		}
	}

	if err := writeString(w, it.PersonName); err != nil {
		return err
	}
	return writeString(w, it.PersonContact)
}

func decodeItem(r io.Reader) (item.Item, error) {
	var it item.Item

	id, err := readInt32(r)
	if err != nil {
		return it, err
	}
	it.ID = id

	name, err := readString(r, "name")
	if err != nil {
		return it, err
	}
	it.Name = name

	category, err := readString(r, "category")
	if err != nil {
		return it, err
	}
	it.Category = item.Category(category)

	description, err := readString(r, "description")
	if err != nil {
		return it, err
	}
	it.Description = description

	date, err := readDate(r)
	if err != nil {
		return it, err
	}
	it.Date = date

	location, err := readString(r, "location")
	if err != nil {
		return it, err
	}
	it.Location = location

	status, err := readString(r, "status")
	if err != nil {
		return it, err
	}
	it.Status = item.Status(status)

	matched, err := readInt32(r)
	if err != nil {
		return it, err
	}
	it.Matched = matched != 0

	claimed, err := readInt32(r)
	if err != nil {
		return it, err
	}
	it.Claimed = claimed != 0

	matchedID, err := readInt32(r)
	if err != nil {
		return it, err
	}
	it.MatchedItemID = matchedID

	personName, err := readString(r, "personName")
	if err != nil {
		return it, err
	}
	it.PersonName = personName

	personContact, err := readString(r, "personContact")
	if err != nil {
		return it, err
	}
	it.PersonContact = personContact

	return it, nil
}

// readDate consumes the fixed 12-byte buffer. The date occupies the
// first 10 bytes; the remainder is padding. An all-zero buffer decodes
// to the absent date.
func readDate(r io.Reader) (item.Date, error) {
	var buf [dateBufLen]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return item.Date{}, fmt.Errorf("read date: %w", err)
	}

	raw := buf[:]
	if i := bytes.IndexByte(raw, 0); i >= 0 {
		raw = raw[:i]
	}
	if len(raw) == 0 {
		return item.Date{}, nil
	}

	d, err := item.ParseDate(string(raw))
	if err != nil {
		return item.Date{}, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return d, nil
}

func writeString(w io.Writer, s string) error {
	if err := binary.Write(w, byteOrder, uint32(len(s))); err != nil {
		return err
	}
	_, err := io.WriteString(w, s)
	return err
}

func readString(r io.Reader, field string) (string, error) {
	var n uint32
	if err := binary.Read(r, byteOrder, &n); err != nil {
		return "", fmt.Errorf("read %s length: %w", field, err)
	}
	if n > maxFieldLen {
		return "", fmt.Errorf("%w: %s length %d", ErrCorrupt, field, n)
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", fmt.Errorf("read %s: %w", field, err)
	}
	return string(buf), nil
}

func writeInt32(w io.Writer, v int32) error {
	return binary.Write(w, byteOrder, v)
}

func boolToInt32(b bool) int32 {
	if b {
		return 1
	}
	return 0
}

func readInt32(r io.Reader) (int32, error) {
	var v int32
	if err := binary.Read(r, byteOrder, &v); err != nil {
		return 0, err
	}
	return v, nil
}
