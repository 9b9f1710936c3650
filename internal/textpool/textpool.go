// Package textpool interns the strings shared across a metadata section
// (variable names, labels, format names, the dataset type/label) into a
// sequence of ColumnText subheaders, and resolves them back into the
// 6-byte reference triples other subheaders embed. See spec.md §4.F.
package textpool

import (
	"fmt"

	"github.com/hailam/sas7bdat/internal/bwriter"
	"github.com/hailam/sas7bdat/internal/subheader"
)

// Maximum ColumnText payload capacity. 32,740 is the common case; 32,676
// is used instead when the space left on the page is below 32,740 but
// would still allow more than 32,676, and the string fits within the
// smaller historical cap, mirroring SAS's own choice of the narrower
// constant in that situation.
const (
	maxPayload     = 32740
	altMaxPayload  = 32676
)

// Ref locates an interned string: which ColumnText subheader (0-based,
// among ColumnText subheaders only) holds it, its byte offset from that
// subheader's signature, and its length.
type Ref struct {
	SubheaderIndex int
	Offset         int
	Length         int
}

// Pool interns strings into ColumnText subheaders, committing each one to
// the page layout (via addSubheader) once it is full, and asking the page
// layout (via remainingPageSpace) how much room a new one may claim.
// Taking these as callbacks rather than importing internal/pagelayout
// directly avoids a package import cycle, since pagelayout must import
// textpool to hold a Pool.
type Pool struct {
	dedupe             bool
	interned           map[string]Ref
	current            *subheader.ColumnText
	currentIndex       int
	remainingPageSpace func() int
	addSubheader       func(subheader.Subheader) error
}

// New builds a Pool and interns the mandatory leading 4-byte control
// block every SAS7BDAT column text pool begins with.
func New(remainingPageSpace func() int, addSubheader func(subheader.Subheader) error, dedupe bool) (*Pool, error) {
	p := &Pool{
		dedupe:             dedupe,
		interned:           make(map[string]Ref),
		remainingPageSpace: remainingPageSpace,
		addSubheader:       addSubheader,
	}
	if _, err := p.Add(string([]byte{0, 0, 0, 0})); err != nil {
		return nil, fmt.Errorf("textpool: writing control block: %w", err)
	}
	return p, nil
}

// Add interns s, returning its Ref. If dedupe is enabled and s was already
// interned, the existing Ref is returned without consuming more space.
func (p *Pool) Add(s string) (Ref, error) {
	if p.dedupe {
		if ref, ok := p.interned[s]; ok {
			return ref, nil
		}
	}
	for {
		if p.current == nil {
			if err := p.openNew(len(s)); err != nil {
				return Ref{}, err
			}
		}
		if offset, length, ok := p.current.Append(s); ok {
			ref := Ref{SubheaderIndex: p.currentIndex, Offset: p.current.OffsetFromSignature(offset), Length: length}
			p.interned[s] = ref
			return ref, nil
		}
		if err := p.commitCurrent(); err != nil {
			return Ref{}, err
		}
	}
}

// Ref looks up a string already interned via Add.
func (p *Pool) Ref(s string) (Ref, bool) {
	ref, ok := p.interned[s]
	return ref, ok
}

// WriteReference writes the 6-byte reference triple for s at buf[off:
// off+6]. The empty string is encoded as three zero fields, matching SAS's
// convention that an unset label/format needs no pool entry at all.
func (p *Pool) WriteReference(buf []byte, off int, s string) error {
	if s == "" {
		bwriter.PutUint16LE(buf, off, 0)
		bwriter.PutUint16LE(buf, off+2, 0)
		bwriter.PutUint16LE(buf, off+4, 0)
		return nil
	}
	ref, ok := p.Ref(s)
	if !ok {
		return fmt.Errorf("textpool: %q was never interned before being referenced", s)
	}
	bwriter.PutUint16LE(buf, off, uint16(ref.SubheaderIndex))
	bwriter.PutUint16LE(buf, off+2, uint16(ref.Offset))
	bwriter.PutUint16LE(buf, off+4, uint16(ref.Length))
	return nil
}

// Finalize commits any still-open ColumnText subheader to the page
// layout. Called once, after every string the dataset needs has been
// interned and before the page layout's cross-reference pre-pass runs.
func (p *Pool) Finalize() error {
	if p.current == nil {
		return nil
	}
	return p.commitCurrent()
}

// Count reports how many ColumnText subheaders have been committed; a
// still-open subheader is not counted, so it is complete only after
// Finalize.
func (p *Pool) Count() int {
	return p.currentIndex
}

func (p *Pool) openNew(minNeed int) error {
	avail := p.remainingPageSpace() - 28 // frame overhead
	if avail < 0 {
		avail = 0
	}
	size := align4(avail)
	if size > maxPayload {
		size = maxPayload
	}
	need := align4(minNeed)
	if need == 0 {
		need = 4
	}
	if size < need {
		size = need
	}
	if size > altMaxPayload && need <= altMaxPayload && avail < maxPayload {
		size = altMaxPayload
	}
	p.current = subheader.NewColumnText(size)
	return nil
}

func (p *Pool) commitCurrent() error {
	p.current.PadAndFinalize()
	if err := p.addSubheader(p.current); err != nil {
		return err
	}
	p.currentIndex++
	p.current = nil
	return nil
}

func align4(n int) int { return bwriter.Align(n, 4) }
