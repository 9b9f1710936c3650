// Package filehdr builds the fixed-size file header record that opens
// every SAS7BDAT file: the format magic number, host/endianness markers,
// the two fixed literals ("SAS FILE" and the SAS release string),
// dataset identity, and page geometry. See spec.md §4.J.
package filehdr

import (
	"time"

	"github.com/hailam/sas7bdat/internal/bwriter"
	"github.com/hailam/sas7bdat/internal/sasdate"
)

// Bytes is the fixed total size of the header record. spec.md §4.J calls
// this "320 bytes (approx)" but then places the last timestamp field at
// offset 328 (8 bytes wide); Bytes follows the explicit offsets rather
// than the rounded prose figure.
const Bytes = 336

// magic is the 32-byte format identifier every SAS7BDAT file begins with.
var magic = [32]byte{
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0xc2, 0xea, 0x81, 0x60,
	0xb3, 0x14, 0x11, 0xcf, 0xbd, 0x92, 0x08, 0x00,
	0x09, 0xc7, 0x31, 0x8c, 0x18, 0x1f, 0x10, 0x11,
}

const (
	align1     byte = 0x33
	align2     byte = 0x33
	endianLE   byte = 0x01
	platformUX byte = '1'
)

// Header is everything the file header record needs to describe.
type Header struct {
	DatasetName string
	DatasetType string
	Created     time.Time
	Modified    time.Time
	PageSize    int
	PageCount   int
	// InitialSequence is the page-sequence value internal/pageseq assigns
	// before any page is written; spec.md §4.J records it at offset 320.
	InitialSequence uint32
}

// Build renders h into a Bytes-length buffer. Layout (spec.md §4.J):
//
//	0:   32-byte format magic number
//	32:  alignment/endianness/platform flags (8B): a1(1B), reserved(2B),
//	     a2(1B), endianness(1B), platform(1B), reserved(2B)
//	40:  reserved (44B), zero
//	84:  fixed file-type literal "SAS FILE" (8B)
//	92:  dataset name, UTF-8, space-padded (64B)
//	156: dataset type, UTF-8, space-padded (8B) — "DATA" by Schema's default
//	164: created timestamp, SAS epoch seconds as float64, local time (8B)
//	172: modified timestamp, SAS epoch seconds as float64, local time (8B)
//	180: reserved (20B), zero
//	200: header length, always Bytes (4B)
//	204: page size in bytes (4B)
//	208: page count (8B)
//	216: SAS release literal (8B)
//	224: host OS literal "Linux" (8B)
//	232: host release literal, unused here (8B), zero
//	240: host architecture literal "x86_64" (8B)
//	248: reserved (52B), zero
//	300: first hard-coded password-pattern word (4B)
//	304: second hard-coded password-pattern word (4B)
//	308: reserved (12B), zero
//	320: initial page sequence (4B)
//	324: reserved (4B), zero
//	328: created timestamp, duplicated for readers that look here (8B)
func Build(h Header) []byte {
	buf := make([]byte, Bytes)

	copy(buf[0:32], magic[:])

	buf[32] = align1
	buf[35] = align2
	buf[36] = endianLE
	buf[37] = platformUX

	bwriter.WriteUTF8(buf, 84, "SAS FILE", 8, ' ')
	bwriter.WriteUTF8(buf, 92, h.DatasetName, 64, ' ')
	bwriter.WriteUTF8(buf, 156, h.DatasetType, 8, ' ')

	bwriter.PutFloat64LE(buf, 164, sasdate.SecondsSinceEpoch(h.Created, time.Local))
	bwriter.PutFloat64LE(buf, 172, sasdate.SecondsSinceEpoch(h.Modified, time.Local))

	bwriter.PutUint32LE(buf, 200, uint32(Bytes))
	bwriter.PutUint32LE(buf, 204, uint32(h.PageSize))
	bwriter.PutUint64LE(buf, 208, uint64(h.PageCount))

	bwriter.WriteUTF8(buf, 216, "9.0401M2", 8, ' ')
	bwriter.WriteUTF8(buf, 224, "Linux", 8, ' ')
	bwriter.WriteUTF8(buf, 240, "x86_64", 8, ' ')

	// Hard-coded password-pattern words: not derived from h, per spec.md
	// §4.J ("not derived from the creation time in this implementation").
	bwriter.PutUint32LE(buf, 300, 0x00000000)
	bwriter.PutUint32LE(buf, 304, 0x00000000)

	bwriter.PutUint32LE(buf, 320, h.InitialSequence)

	bwriter.PutFloat64LE(buf, 328, sasdate.SecondsSinceEpoch(h.Created, time.Local))

	return buf
}
