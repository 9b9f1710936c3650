package subheader

// ColumnFormat is the fixed 64-byte subheader carrying one variable's
// output format, input format, and label. One is emitted per variable,
// in schema order. Layout:
//
//	0:     signature (8B)
//	8:     reserved (16B), zero
//	24:    output format width (2B)
//	26:    output format decimal places (2B)
//	28:    input format width (2B)
//	30:    input format decimal places (2B)
//	32:    reserved (8B), zero
//	40:    text-pool reference to the input format name (6B)
//	46:    text-pool reference to the output format name (6B)
//	52:    text-pool reference to the variable's label (6B)
//	58:    reserved (6B), zero
type ColumnFormat struct {
	OutputFormatName    string
	OutputFormatWidth   int
	OutputFormatDecimal int
	InputFormatName     string
	InputFormatWidth    int
	InputFormatDecimal  int
	Label               string
}

const columnFormatBytes = 64

func (c *ColumnFormat) Signature() uint64      { return SigColumnFormat }
func (c *ColumnFormat) Size() int              { return columnFormatBytes }
func (c *ColumnFormat) TypeCode() uint8        { return 0 }
func (c *ColumnFormat) CompressionCode() uint8 { return 0 }

func (c *ColumnFormat) Emit(buf []byte, off int, view LayoutView) {
	putU64(buf, off, c.Signature())
	putU16(buf, off+24, uint16(c.OutputFormatWidth))
	putU16(buf, off+26, uint16(c.OutputFormatDecimal))
	putU16(buf, off+28, uint16(c.InputFormatWidth))
	putU16(buf, off+30, uint16(c.InputFormatDecimal))
	_ = view.WriteTextRef(buf, off+40, c.InputFormatName)
	_ = view.WriteTextRef(buf, off+46, c.OutputFormatName)
	_ = view.WriteTextRef(buf, off+52, c.Label)
}
