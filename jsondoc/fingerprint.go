package jsondoc

import (
	"encoding/binary"

	"github.com/zeebo/blake3"
)

// Fingerprint returns a stable 32-byte digest of the document's structural
// content: fields are visited in sorted key order, each value prefixed with
// its kind tag and length, so structurally equal documents hash equally
// across processes. The digest is a blake3 sum.
func Fingerprint(d Document) [32]byte {
	h := blake3.New()
	hashDoc(h, d)
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

// Hash64 is the Fingerprint truncated to 64 bits, for in-memory tables.
func Hash64(d Document) uint64 {
	fp := Fingerprint(d)
	return binary.BigEndian.Uint64(fp[:8])
}

// FingerprintPrimitive digests a single primitive with the same scheme.
func FingerprintPrimitive(p Primitive) [32]byte {
	h := blake3.New()
	hashPrimitive(h, p)
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

func hashDoc(h *blake3.Hasher, d Document) {
	writeTag(h, byte(KindObject), uint64(d.Len()))
	for _, k := range d.Keys() {
		writeStr(h, k)
		v, _ := d.Get(k)
		hashPrimitive(h, v)
	}
}

func hashPrimitive(h *blake3.Hasher, p Primitive) {
	switch p.kind {
	case KindNull:
		writeTag(h, byte(KindNull), 0)
	case KindBool:
		n := uint64(0)
		if p.b {
			n = 1
		}
		writeTag(h, byte(KindBool), n)
	case KindNumber:
		writeTag(h, byte(KindNumber), uint64(len(p.num)))
		_, _ = h.WriteString(string(p.num))
	case KindString:
		writeTag(h, byte(KindString), uint64(len(p.str)))
		_, _ = h.WriteString(p.str)
	case KindList:
		writeTag(h, byte(KindList), uint64(len(p.list)))
		for _, it := range p.list {
			hashPrimitive(h, it)
		}
	case KindObject:
		hashDoc(h, p.doc)
	}
}

func writeTag(h *blake3.Hasher, kind byte, n uint64) {
	var buf [9]byte
	buf[0] = kind
	binary.BigEndian.PutUint64(buf[1:], n)
	_, _ = h.Write(buf[:])
}

func writeStr(h *blake3.Hasher, s string) {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(len(s)))
	_, _ = h.Write(buf[:])
	_, _ = h.WriteString(s)
}
