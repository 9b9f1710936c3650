package subheader

// SubheaderCounts is the fixed 600-byte subheader tracking, for each of the
// seven signatures in trackedSignatures, the (page, position) of its first
// and last appearance (a zero position means "never appeared"). Layout:
//
//	0:       signature (8B)
//	8+40*i:  one 40B record per tracked signature, i in [0,12) — the first
//	         7 slots are populated, the last 5 are reserved and left zero
//	488:     max of Size() across every variable-size subheader (8B)
//	496:     count of tracked signatures actually present (4B)
//	500:     number of tracked signatures, always 7 (4B)
//	504-599: reserved, zero
//
// Per-record layout (40B): signature(8B), firstPage(4B), firstPos(4B),
// lastPage(4B), lastPos(4B), reserved(16B).
type SubheaderCounts struct {
	records      [7]trackedRecord
	maxVarSize   int
}

type trackedRecord struct {
	signature           uint64
	firstPage, firstPos int
	lastPage, lastPos   int
}

const subheaderCountsBytes = 600

// NewSubheaderCounts returns a SubheaderCounts with no appearances recorded
// yet; Observe is called once per subheader the page layout commits, and
// records only those whose signature is tracked.
func NewSubheaderCounts() *SubheaderCounts {
	sc := &SubheaderCounts{}
	for i, sig := range trackedSignatures {
		sc.records[i].signature = sig
	}
	return sc
}

// Observe records that a subheader with the given signature and size was
// committed at (page, pos). Signatures outside trackedSignatures are
// ignored entirely — including maxVarSize, which tracks only the
// variable-size subheader kinds Observe is called for (ColumnAttributes,
// ColumnText, ColumnName, ColumnList), not the fixed-size kinds like
// RowSize that are also added through the same page layout. Safe to call
// multiple times; first/last-appearance tracking is monotonic in call
// order.
func (sc *SubheaderCounts) Observe(signature uint64, page, pos, size int) {
	for i := range sc.records {
		r := &sc.records[i]
		if r.signature != signature {
			continue
		}
		if size > sc.maxVarSize {
			sc.maxVarSize = size
		}
		if r.firstPos == 0 {
			r.firstPage, r.firstPos = page, pos
		}
		r.lastPage, r.lastPos = page, pos
		return
	}
}

func (sc *SubheaderCounts) Signature() uint64      { return SigSubheaderCounts }
func (sc *SubheaderCounts) Size() int              { return subheaderCountsBytes }
func (sc *SubheaderCounts) TypeCode() uint8        { return 0 }
func (sc *SubheaderCounts) CompressionCode() uint8 { return 0 }

func (sc *SubheaderCounts) Emit(buf []byte, off int, _ LayoutView) {
	putU64(buf, off, sc.Signature())

	present := 0
	for i, r := range sc.records {
		base := off + 8 + 40*i
		putU64(buf, base, r.signature)
		putI32(buf, base+8, r.firstPage)
		putI32(buf, base+12, r.firstPos)
		putI32(buf, base+16, r.lastPage)
		putI32(buf, base+20, r.lastPos)
		if r.firstPos != 0 {
			present++
		}
	}
	// slots [7,12) stay zero: the 5 reserved records.

	putI64(buf, off+488, sc.maxVarSize)
	putI32(buf, off+496, present)
	putI32(buf, off+500, len(trackedSignatures))
}
