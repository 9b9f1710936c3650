package subheader

// ColumnSize is the fixed 24-byte subheader recording the variable count.
// It is always the second subheader on the first metadata page, so its
// location is the hard-coded record location (1, 2) RowSize refers to.
type ColumnSize struct {
	VariableCount int
}

const columnSizeBytes = 24

func (c *ColumnSize) Signature() uint64      { return SigColumnSize }
func (c *ColumnSize) Size() int              { return columnSizeBytes }
func (c *ColumnSize) TypeCode() uint8        { return 0 }
func (c *ColumnSize) CompressionCode() uint8 { return 0 }

func (c *ColumnSize) Emit(buf []byte, off int, _ LayoutView) {
	putU64(buf, off, c.Signature())
	putI64(buf, off+8, c.VariableCount)
	putU64(buf, off+16, 0)
}
