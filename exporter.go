package sas7bdat

import (
	"errors"
	"fmt"
	"os"

	"github.com/hailam/sas7bdat/internal/filehdr"
	"github.com/hailam/sas7bdat/internal/page"
	"github.com/hailam/sas7bdat/internal/pagelayout"
	"github.com/hailam/sas7bdat/internal/pageseq"
	"github.com/hailam/sas7bdat/internal/rowenc"
	"github.com/hailam/sas7bdat/internal/rowlayout"
	"github.com/hailam/sas7bdat/internal/subheader"
)

// Exporter writes one SAS7BDAT file, one row at a time. Its metadata
// (header plus every subheader-only page) is built and flushed to disk at
// construction time, since the declared row total fully determines the
// page geometry up front; WriteRow only ever appends row bytes.
type Exporter struct {
	f      *os.File
	schema *Schema

	totalRows   int
	rowsWritten int
	closed      bool

	enc      *rowenc.Encoder
	pageSize int

	layout  *pagelayout.Layout
	seq     *pageseq.Sequencer
	pageNum int // 1-based index of the page currentPage will be written as

	currentPage *page.Page
}

// NewExporter creates path for schema, declaring totalRows observations in
// its metadata, and writes the file header and every metadata page except
// the last (mixed) page, which stays in memory until rows fill it or Close
// writes it. WriteRow must be called exactly totalRows times before Close.
func NewExporter(path string, schema *Schema, totalRows int) (*Exporter, error) {
	if schema == nil {
		return nil, newErr(KindBadArgument, "schema is nil")
	}
	if totalRows < 0 {
		return nil, newErr(KindBadArgument, "total row count %d is negative", totalRows)
	}

	ex, err := buildExporter(schema, totalRows)
	if err != nil {
		return nil, err
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, wrapErr(KindIO, err, "creating %s", path)
	}
	ex.f = f

	if err := ex.flushHeaderAndClosedMetaPages(); err != nil {
		f.Close()
		return nil, err
	}
	return ex, nil
}

// buildExporter does every in-memory step of construction: building the
// row layout and encoder, computing the page size from the row length,
// sequencing the full subheader family through pagelayout, and deriving
// RowSize's totals. It does no I/O.
func buildExporter(schema *Schema, totalRows int) (*Exporter, error) {
	vars := schema.Variables()

	rlVars := make([]rowlayout.Var, len(vars))
	encVars := make([]rowenc.Variable, len(vars))
	for i, v := range vars {
		kind := rowlayout.Numeric
		if v.Kind() == Character {
			kind = rowlayout.Character
		}
		rlVars[i] = rowlayout.Var{Kind: kind, Length: v.Length()}
		encVars[i] = rowenc.Variable{Name: v.Name(), Kind: kind, Length: v.Length()}
	}
	rl := rowlayout.New(rlVars)
	enc := rowenc.New(encVars, rl)

	pageSize := page.ComputeSize(rl.RowLength())
	pl := pagelayout.New(pageSize, rl.RowLength())

	if err := addMetadata(pl, schema, vars, rl); err != nil {
		return nil, err
	}
	pl.ConvertToMixedPage()

	aggregateVarNameBytes, maxVarNameLen, maxVarLabelLen := 0, 0, 0
	for _, v := range vars {
		aggregateVarNameBytes += len(v.Name())
		if len(v.Name()) > maxVarNameLen {
			maxVarNameLen = len(v.Name())
		}
		if len(v.Label()) > maxVarLabelLen {
			maxVarLabelLen = len(v.Label())
		}
	}

	seq := pageseq.New()
	pl.DeriveTotals(totalRows, seq.Initial(), schema.Label(), schema.Type(), aggregateVarNameBytes, maxVarNameLen, maxVarLabelLen)

	return &Exporter{
		schema:    schema,
		totalRows: totalRows,
		enc:       enc,
		pageSize:  pageSize,
		layout:    pl,
		seq:       seq,
	}, nil
}

// addMetadata reserves every subheader spec.md §4.H's fixed order calls
// for: RowSize, ColumnSize, SubheaderCounts, interned strings (with the
// text pool finalised immediately after), ColumnName, ColumnAttributes,
// ColumnList (when there is more than one variable), one ColumnFormat per
// variable, then Terminal.
func addMetadata(pl *pagelayout.Layout, schema *Schema, vars []Variable, rl *rowlayout.Layout) error {
	if err := pl.AddSubheader(&subheader.RowSize{ColumnSizeLoc: subheader.RecordLocation{Page: 1, Position: 2}}); err != nil {
		return wrapErr(KindIO, err, "reserving row-size subheader")
	}
	if err := pl.AddSubheader(&subheader.ColumnSize{VariableCount: len(vars)}); err != nil {
		return wrapErr(KindIO, err, "reserving column-size subheader")
	}
	if err := pl.AddSubheader(pl.SubheaderCounts()); err != nil {
		return wrapErr(KindIO, err, "reserving subheader-counts subheader")
	}

	// spec.md §4.H's fixed interning order: a blank 8-byte placeholder,
	// the dataset type space-padded to 8 bytes, the literal "DATASTEP",
	// then the dataset label. The dataset name itself is never interned
	// — it is written directly into the file header's own fixed field,
	// not referenced through the text pool.
	if _, err := pl.InternString("        "); err != nil {
		return wrapErr(KindIO, err, "interning reserved text-pool placeholder")
	}
	paddedType := schema.Type()
	for len(paddedType) < 8 {
		paddedType += " "
	}
	if _, err := pl.InternString(paddedType); err != nil {
		return wrapErr(KindIO, err, "interning dataset type")
	}
	if _, err := pl.InternString("DATASTEP"); err != nil {
		return wrapErr(KindIO, err, "interning procedure literal")
	}
	if schema.Label() != "" {
		if _, err := pl.InternString(schema.Label()); err != nil {
			return wrapErr(KindIO, err, "interning dataset label")
		}
	}

	names := make([]string, len(vars))
	for i, v := range vars {
		names[i] = v.Name()
		if _, err := pl.InternString(v.Name()); err != nil {
			return wrapErr(KindIO, err, "interning variable name %q", v.Name())
		}
		if v.Label() != "" {
			if _, err := pl.InternString(v.Label()); err != nil {
				return wrapErr(KindIO, err, "interning variable label for %q", v.Name())
			}
		}
		if name := v.InputFormat().Name(); name != "" {
			if _, err := pl.InternString(name); err != nil {
				return wrapErr(KindIO, err, "interning input format name for %q", v.Name())
			}
		}
		if name := v.OutputFormat().Name(); name != "" {
			if _, err := pl.InternString(name); err != nil {
				return wrapErr(KindIO, err, "interning output format name for %q", v.Name())
			}
		}
	}

	// The text pool's own finalisation comes immediately after every
	// string has been interned and before ColumnName onward, per
	// spec.md §4.H's fixed order.
	if err := pl.FinalizeTextPool(); err != nil {
		return wrapErr(KindIO, err, "finalising column text pool")
	}

	if err := pl.AddColumnNames(names); err != nil {
		return wrapErr(KindIO, err, "reserving column-name subheaders")
	}

	entries := make([]subheader.ColumnAttributeEntry, len(vars))
	for i, v := range vars {
		kind := rowlayout.Numeric
		if v.Kind() == Character {
			kind = rowlayout.Character
		}
		entries[i] = subheader.ColumnAttributeEntry{
			PhysicalOffset: rl.PhysicalOffset(i),
			Length:         v.Length(),
			Kind:           kind,
			Name:           v.Name(),
		}
	}
	if err := pl.AddColumnAttributes(entries); err != nil {
		return wrapErr(KindIO, err, "reserving column-attributes subheaders")
	}

	// ColumnList is only emitted for more than one variable; see
	// spec.md §4.H.
	if len(vars) > 1 {
		if err := pl.AddColumnList(len(vars)); err != nil {
			return wrapErr(KindIO, err, "reserving column-list subheaders")
		}
	}

	for _, v := range vars {
		cf := &subheader.ColumnFormat{
			OutputFormatName:    v.OutputFormat().Name(),
			OutputFormatWidth:   v.OutputFormat().Width(),
			OutputFormatDecimal: v.OutputFormat().Decimal(),
			InputFormatName:     v.InputFormat().Name(),
			InputFormatWidth:    v.InputFormat().Width(),
			InputFormatDecimal:  v.InputFormat().Decimal(),
			Label:               v.Label(),
		}
		if err := pl.AddSubheader(cf); err != nil {
			return wrapErr(KindIO, err, "reserving column-format subheader for %q", v.Name())
		}
	}

	if err := pl.AddSubheader(&subheader.Terminal{}); err != nil {
		return wrapErr(KindIO, err, "reserving terminal subheader")
	}
	return nil
}

// flushHeaderAndClosedMetaPages writes the file header and every
// metadata page except the last (the mixed page, which stays open in
// memory to receive rows).
func (ex *Exporter) flushHeaderAndClosedMetaPages() error {
	pages := ex.layout.MetaPages()
	hdr := filehdr.Build(filehdr.Header{
		DatasetName:     ex.schema.Name(),
		DatasetType:     ex.schema.Type(),
		Created:         ex.schema.Created(),
		Modified:        ex.schema.Created(),
		PageSize:        ex.pageSize,
		PageCount:       ex.layout.TotalPages(),
		InitialSequence: ex.seq.Initial(),
	})
	// The header occupies one full page-sized slot in the file (spec.md
	// §4.J, §4.I): the fixed-offset fields Build wrote are followed by
	// zero padding out to pageSize.
	headerPage := make([]byte, ex.pageSize)
	copy(headerPage, hdr)
	if _, err := ex.f.Write(headerPage); err != nil {
		return wrapErr(KindIO, err, "writing file header")
	}

	for i, p := range pages[:len(pages)-1] {
		seqVal, err := ex.nextSeq()
		if err != nil {
			return err
		}
		if _, err := ex.f.Write(p.Render(seqVal, ex.layout)); err != nil {
			return wrapErr(KindIO, err, "writing metadata page %d", i+1)
		}
	}
	ex.pageNum = len(pages)
	ex.currentPage = pages[len(pages)-1]
	return nil
}

// nextSeq advances the sequencer and returns the value for the next page
// to be written, in write order. Index 0 (seq.Initial()) is reserved for
// the file header; the first page written gets index 1, per spec.md.
func (ex *Exporter) nextSeq() (uint32, error) {
	if err := ex.seq.Advance(); err != nil {
		return 0, wrapErr(KindSequenceExhausted, err, "page sequence exhausted")
	}
	return ex.seq.Current(), nil
}

// WriteRow encodes row and appends it to the file, opening a new data
// page if the current one is full. Returns ErrTooManyRows once
// totalRows rows have already been written.
func (ex *Exporter) WriteRow(row Row) error {
	if ex.closed {
		return ErrExporterClosed
	}
	if ex.rowsWritten >= ex.totalRows {
		return wrapErr(KindTooManyRows, nil, "already wrote the declared %d rows", ex.totalRows)
	}

	encVals := []any(row)
	if !ex.currentPage.HasRoom() {
		if err := ex.rollPage(); err != nil {
			return err
		}
	}

	var encErr error
	if err := ex.currentPage.AddRow(func(off int) {
		encErr = ex.enc.EncodeRow(ex.currentPage.Buf(), off, encVals)
	}); err != nil {
		return newErr(KindIO, "row does not fit even on a fresh page")
	}
	if encErr != nil {
		return translateEncodeErr(encErr)
	}

	ex.rowsWritten++
	return nil
}

// translateEncodeErr maps an internal/rowenc sentinel to the matching
// package-level Kind, so callers can use errors.Is against e.g. ErrArity
// regardless of which layer detected the problem.
func translateEncodeErr(err error) error {
	switch {
	case errors.Is(err, rowenc.ErrArity):
		return wrapErr(KindArity, err, "encoding row")
	case errors.Is(err, rowenc.ErrTruncation):
		return wrapErr(KindTruncation, err, "encoding row")
	case errors.Is(err, rowenc.ErrType):
		return wrapErr(KindType, err, "encoding row")
	default:
		return err
	}
}

// rollPage flushes the current (now-full) page to disk and opens a fresh
// data page for subsequent rows.
func (ex *Exporter) rollPage() error {
	seqVal, err := ex.nextSeq()
	if err != nil {
		return err
	}
	if _, err := ex.f.Write(ex.currentPage.Render(seqVal, ex.layout)); err != nil {
		return wrapErr(KindIO, err, "writing page %d", ex.pageNum)
	}
	ex.currentPage = ex.layout.NewDataPage()
	ex.pageNum++
	return nil
}

// IsComplete reports whether every declared row has been written.
func (ex *Exporter) IsComplete() bool {
	return ex.rowsWritten == ex.totalRows
}

// Close flushes the final page and closes the underlying file. Close is
// safe to call more than once; subsequent calls are a no-op returning nil.
func (ex *Exporter) Close() error {
	if ex.closed {
		return nil
	}
	ex.closed = true

	seqVal, err := ex.nextSeq()
	if err != nil {
		ex.f.Close()
		return err
	}
	if _, err := ex.f.Write(ex.currentPage.Render(seqVal, ex.layout)); err != nil {
		ex.f.Close()
		return wrapErr(KindIO, err, "writing final page %d", ex.pageNum)
	}
	if err := ex.f.Close(); err != nil {
		return wrapErr(KindIO, err, "closing file")
	}
	return nil
}

// ExportDataset is a convenience wrapper: it creates path, writes every
// row in rows, and closes the file.
func ExportDataset(path string, schema *Schema, rows []Row) error {
	ex, err := NewExporter(path, schema, len(rows))
	if err != nil {
		return err
	}
	for i, row := range rows {
		if err := ex.WriteRow(row); err != nil {
			ex.Close()
			return fmt.Errorf("writing row %d: %w", i, err)
		}
	}
	return ex.Close()
}
