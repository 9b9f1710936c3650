// Package page builds one physical SAS7BDAT page: a 40-byte header, a
// forward-growing subheader index, subheaders placed backward from the
// end of the page, and (for data/mixed pages) row bytes filling whatever
// space is left between the index and the subheader region. The header
// layout is: 0 sequence number (4B), 24 free-byte estimate (2B), 32 page
// kind (2B), 34 total blocks (2B), 36 subheader count (2B), with the
// remaining bytes reserved and zero. See spec.md §4.G.
package page

import (
	"errors"

	"github.com/hailam/sas7bdat/internal/bwriter"
	"github.com/hailam/sas7bdat/internal/subheader"
)

// Kind identifies what a page is used for.
type Kind uint16

const (
	KindMeta  Kind = 0x0000 // subheaders only
	KindData  Kind = 0x0100 // rows only
	KindMixed Kind = 0x0200 // subheaders, then rows, on the same page
)

const (
	HeaderBytes    = 40
	indexEntryBytes = 24
)

// ErrFull is returned by Add/AddRow when the page has no room left.
var ErrFull = errors.New("page: no space remaining")

// MinSize is the smallest page size this implementation ever computes,
// regardless of row length. See spec.md §4.G.
const MinSize = 0x10000

// ComputeSize returns the page size to use for a dataset whose rows are
// rowLength bytes: max(MinSize, 40+rowLength+1), rounded up to the
// nearest 1,024 bytes. Computed once per dataset, from the row length
// alone. See spec.md §4.G.
func ComputeSize(rowLength int) int {
	n := HeaderBytes + rowLength + 1
	if n < MinSize {
		n = MinSize
	}
	return bwriter.Align(n, 1024)
}

type placed struct {
	sub        subheader.Subheader
	dataOffset int
}

// Page accumulates subheaders and/or rows for one physical page of the
// given size. Subheaders are reserved with Add but not rendered until
// Render, once every page's subheaders are known and a subheader.LayoutView
// is available for cross-references.
type Page struct {
	kind      Kind
	size      int
	rowLength int
	buf       []byte

	indexCursor int // next free index-entry offset, grows forward from HeaderBytes
	dataCursor  int // next free subheader-data offset, grows backward from size

	placed []placed

	rowCursor        int // next free row offset, valid once StartRows is called
	observationCount int
	maxObservations  int // capacity computed once, at StartRows
}

// New creates an empty page of the given size, with its own backing
// buffer. rowLength is the row size rows written to this page will use
// (irrelevant for a pure KindMeta page, but still recorded for
// uniformity).
func New(kind Kind, size, rowLength int) *Page {
	return &Page{
		kind:        kind,
		size:        size,
		rowLength:   rowLength,
		buf:         make([]byte, size),
		indexCursor: HeaderBytes,
		dataCursor:  size,
	}
}

// Buf returns the page's backing buffer. Row-writing callers (the
// exporter) write row bytes directly into it at the offset AddRow's
// encode callback receives; Render later fills in the header, index, and
// subheader bytes around them.
func (p *Page) Buf() []byte { return p.buf }

// RemainingForSubheader reports the largest Size() a new subheader could
// have and still fit, accounting for the 24-byte index entry it would
// also need, plus the 24-byte index entry the eventual Terminal
// subheader will need once metadata is finalized (spec.md §4.G).
func (p *Page) RemainingForSubheader() int {
	return p.dataCursor - p.indexCursor - 2*indexEntryBytes
}

// SubheaderCount reports how many subheaders have been reserved so far.
func (p *Page) SubheaderCount() int { return len(p.placed) }

// Add reserves space for s (its data, placed backward from the end of the
// page, and its 24-byte index entry, placed forward after the header) and
// returns its 1-based position on this page. Add does not write any
// bytes; Render does, once every subheader across every page is known.
// Besides s's own index entry, Add always holds back room for one more
// 24-byte index entry — the Terminal subheader's, added once metadata is
// finalized — so a page never fills up with no room left to terminate it.
func (p *Page) Add(s subheader.Subheader) (position int, err error) {
	sz := s.Size()
	need := sz + 2*indexEntryBytes
	if p.dataCursor-p.indexCursor < need {
		return 0, ErrFull
	}
	p.dataCursor -= sz
	p.placed = append(p.placed, placed{sub: s, dataOffset: p.dataCursor})
	p.indexCursor += indexEntryBytes
	return len(p.placed), nil
}

// StartRows freezes the subheader region, computes this page's row
// capacity, and opens the remaining page space (between the index and
// the subheader data) to row writes. Must be called once, after all of
// this page's subheaders have been Added.
func (p *Page) StartRows() {
	p.rowCursor = p.indexCursor
	if p.rowLength <= 0 {
		return
	}
	avail := p.dataCursor - p.rowCursor
	// One extra bit per potential row is reserved for a per-row deleted
	// flag packed at the tail of the row region, so capacity solves
	// 8*rowLength*n + n <= 8*avail rather than a plain division. See
	// spec.md §4.G.
	p.maxObservations = (8 * avail) / (8*p.rowLength + 1)
}

// MaxObservations reports how many rows of p.rowLength bytes fit in the
// space currently open to rows, as computed by StartRows.
func (p *Page) MaxObservations() int { return p.maxObservations }

// AddRow reserves space for one row and invokes encode to write it;
// encode receives the page-relative byte offset to write rowLength bytes
// at. Returns ErrFull if no more rows fit.
func (p *Page) AddRow(encode func(offset int)) error {
	if p.observationCount >= p.maxObservations {
		return ErrFull
	}
	encode(p.rowCursor)
	p.rowCursor += p.rowLength
	p.observationCount++
	return nil
}

// ObservationCount reports how many rows have been written to this page.
func (p *Page) ObservationCount() int { return p.observationCount }

// HasRoom reports whether one more row of p.rowLength bytes fits in the
// space currently open to rows.
func (p *Page) HasRoom() bool {
	return p.observationCount < p.maxObservations
}

// Render fills in the page's header, subheader index, and subheader bytes
// around whatever row bytes have already been written into Buf(), and
// returns Buf(). sequence is this page's value from internal/pageseq.
// Safe to call only once every subheader across every page is known,
// since view's cross-references depend on that.
func (p *Page) Render(sequence uint32, view subheader.LayoutView) []byte {
	buf := p.buf
	for i := 0; i < HeaderBytes; i++ {
		buf[i] = 0
	}

	bwriter.PutUint32LE(buf, 0, sequence)

	freeCursor := p.indexCursor
	if p.rowCursor > freeCursor {
		freeCursor = p.rowCursor
	}
	bwriter.PutUint16LE(buf, 24, uint16(p.dataCursor-freeCursor))

	bwriter.PutUint16LE(buf, 32, uint16(p.kind))
	bwriter.PutUint16LE(buf, 34, uint16(len(p.placed)+p.observationCount))
	bwriter.PutUint16LE(buf, 36, uint16(len(p.placed)))

	for i, pl := range p.placed {
		pl.sub.Emit(buf, pl.dataOffset, view)

		entryOff := HeaderBytes + i*indexEntryBytes
		bwriter.PutUint64LE(buf, entryOff, uint64(pl.dataOffset))
		bwriter.PutUint64LE(buf, entryOff+8, uint64(pl.sub.Size()))
		buf[entryOff+16] = pl.sub.CompressionCode()
		buf[entryOff+17] = pl.sub.TypeCode()
		for i := entryOff + 18; i < entryOff+indexEntryBytes; i++ {
			buf[i] = 0
		}
	}
	return buf
}

// Each visits every subheader reserved on this page, in placement order,
// with its 1-based position.
func (p *Page) Each(visit func(position int, s subheader.Subheader)) {
	for i, pl := range p.placed {
		visit(i+1, pl.sub)
	}
}

// ConvertToMixed retags a metadata page as a mixed page, letting rows be
// written into the space left over after its subheaders.
func (p *Page) ConvertToMixed() { p.kind = KindMixed }

// Size returns the page's total byte size.
func (p *Page) Size() int { return p.size }

// Kind returns the page's kind.
func (p *Page) Kind() Kind { return p.kind }
