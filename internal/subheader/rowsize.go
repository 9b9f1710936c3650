package subheader

import "github.com/hailam/sas7bdat/internal/bwriter"

// RowSize is the fixed 808-byte subheader holding the row/page geometry
// and a set of cross-references into the rest of the committed layout.
// It is always the first subheader on the first metadata page. Most of
// its 808 bytes are unused in this implementation (a faithful byte-for-
// byte match with SAS's own opaque constant table is explicitly not a
// goal); only the fields below carry meaning. Layout:
//
//	40:  row length in bytes (8B)
//	48:  total observations in the dataset (8B)
//	56:  deleted observations, always 0 here (8B)
//	72:  count of ColumnFormat subheaders on the first metadata page that
//	     holds any (8B)
//	80:  same, for the second such page (8B)
//	88:  sum over every ColumnList subheader of (size − 28) (8B)
//	96:  aggregate byte length of every variable name (8B)
//	104: page size in bytes (8B)
//	120: maximum observations that fit on a mixed page (8B)
//	440: initial page sequence number (4B)
//	512: record location of the ColumnSize subheader, always (1,2) (16B)
//	528: record location of the last metadata page's final subheader (16B)
//	544: record location of the first data row (16B)
//	560: record location of the last data row (16B)
//	576: record location of the first ColumnFormat subheader (16B)
//	678: text-pool reference to the dataset label (6B)
//	684: dataset type, inline ASCII, space-padded to 8 bytes (8B)
//	748: total ColumnText subheader count (2B)
//	750: maximum variable name length observed (2B)
//	752: maximum variable label length observed (2B)
//	766: maximum observations that fit on a data page (4B)
//	776: total observations, narrow copy of the field at 48 (4B)
type RowSize struct {
	// ColumnSizeLoc is always (1, 2); kept as a field rather than a
	// constant so Emit stays a pure function of its inputs.
	ColumnSizeLoc RecordLocation
}

const rowSizeBytes = 808

func (r *RowSize) Signature() uint64      { return SigRowSize }
func (r *RowSize) Size() int              { return rowSizeBytes }
func (r *RowSize) TypeCode() uint8        { return 0 }
func (r *RowSize) CompressionCode() uint8 { return 0 }

func (r *RowSize) Emit(buf []byte, off int, view LayoutView) {
	t := view.Totals()

	putU64(buf, off, r.Signature())

	putI64(buf, off+40, t.RowLength)
	putI64(buf, off+48, t.TotalObservations)
	putI64(buf, off+56, 0)

	putI64(buf, off+72, t.ColumnFormatFirstAndSecondPageCounts[0])
	putI64(buf, off+80, t.ColumnFormatFirstAndSecondPageCounts[1])

	putI64(buf, off+88, t.ColumnListSizeSum)

	putI64(buf, off+96, t.AggregateVarNameBytes)
	putI64(buf, off+104, t.PageSize)

	putI64(buf, off+120, t.MaxObsMixed)

	putU32(buf, off+440, t.InitialSequence)

	writeLoc(buf, off+512, r.ColumnSizeLoc)
	writeLoc(buf, off+528, t.LastMetaPageLoc)
	writeLoc(buf, off+544, t.FirstDataLoc)
	writeLoc(buf, off+560, t.LastDataLoc)
	writeLoc(buf, off+576, t.FirstColumnFormatLoc)

	_ = view.WriteTextRef(buf, off+678, t.DatasetLabel)
	bwriter.WriteUTF8(buf, off+684, t.DatasetType, 8, ' ')

	putU16(buf, off+748, uint16(t.ColumnTextCount))
	putU16(buf, off+750, uint16(t.MaxVariableNameLen))
	putU16(buf, off+752, uint16(t.MaxVariableLabelLen))

	putI32(buf, off+766, t.MaxObsData)
	putI32(buf, off+776, t.TotalObservations)
}

func writeLoc(buf []byte, off int, loc RecordLocation) {
	putI64(buf, off, loc.Page)
	putI64(buf, off+8, loc.Position)
}
