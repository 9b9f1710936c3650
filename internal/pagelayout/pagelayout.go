// Package pagelayout sequences the subheader family across a run of
// metadata pages, owns the column text pool, and — once the whole
// document's row totals are known — derives the cross-references RowSize
// needs and converts the final metadata page into the mixed page rows
// begin filling. See spec.md §4.H.
package pagelayout

import (
	"errors"
	"sort"

	"github.com/hailam/sas7bdat/internal/page"
	"github.com/hailam/sas7bdat/internal/subheader"
	"github.com/hailam/sas7bdat/internal/textpool"
)

// Layout owns the metadata page sequence and the column text pool bound
// to it.
type Layout struct {
	pageSize  int
	rowLength int

	pages []*page.Page
	pool  *textpool.Pool

	subheaderCounts      *subheader.SubheaderCounts
	columnFormatPerPage  map[int]int
	firstColumnFormatLoc subheader.RecordLocation
	haveFirstColFormat   bool
	columnListSizeSum    int

	mixedConverted bool
	totals         subheader.Totals
}

// New starts a fresh layout backed by one open metadata page.
func New(pageSize, rowLength int) *Layout {
	l := &Layout{
		pageSize:            pageSize,
		rowLength:            rowLength,
		subheaderCounts:      subheader.NewSubheaderCounts(),
		columnFormatPerPage:  make(map[int]int),
	}
	l.pages = []*page.Page{page.New(page.KindMeta, pageSize, rowLength)}
	pool, err := textpool.New(l.remainingPageSpace, l.addSubheaderFromPool, true)
	if err != nil {
		// textpool.New only appends the control block to a freshly opened
		// ColumnText sized to hold it and commits nothing to a page, so
		// it does not fail here.
		panic(err)
	}
	l.pool = pool
	return l
}

func (l *Layout) currentPage() *page.Page { return l.pages[len(l.pages)-1] }

func (l *Layout) remainingPageSpace() int { return l.currentPage().RemainingForSubheader() }

func (l *Layout) addSubheaderFromPool(s subheader.Subheader) error { return l.AddSubheader(s) }

// AddSubheader reserves space for s on the current metadata page, opening
// a new page first if it does not fit.
func (l *Layout) AddSubheader(s subheader.Subheader) error {
	for {
		pos, err := l.currentPage().Add(s)
		if err == nil {
			pageIdx := len(l.pages)
			l.subheaderCounts.Observe(s.Signature(), pageIdx, pos, s.Size())
			if s.Signature() == subheader.SigColumnFormat {
				l.columnFormatPerPage[pageIdx]++
				if !l.haveFirstColFormat {
					l.firstColumnFormatLoc = subheader.RecordLocation{Page: pageIdx, Position: pos}
					l.haveFirstColFormat = true
				}
			}
			if s.Signature() == subheader.SigColumnList {
				l.columnListSizeSum += s.Size() - 28
			}
			return nil
		}
		if !errors.Is(err, page.ErrFull) {
			return err
		}
		l.pages = append(l.pages, page.New(page.KindMeta, l.pageSize, l.rowLength))
	}
}

// SubheaderCounts returns the SubheaderCounts instance this layout tracks
// appearances into. The caller is responsible for adding it to the page
// sequence via AddSubheader at the point spec.md's fixed ordering calls
// for (immediately after ColumnSize).
func (l *Layout) SubheaderCounts() *subheader.SubheaderCounts { return l.subheaderCounts }

// InternString interns s into the column text pool, returning its
// reference. Safe to call repeatedly with the same string.
func (l *Layout) InternString(s string) (textpool.Ref, error) {
	return l.pool.Add(s)
}

// maxColumnNamesPerSubheader is spec.md §4.E's stated ColumnName cap.
const maxColumnNamesPerSubheader = 4089

// maxColumnAttributesBytes is spec.md §4.E's self-imposed ColumnAttributes
// byte cap, tighter than the generic 32,740-byte variable-size cap.
const maxColumnAttributesBytes = 24588

// maxColumnListEntriesPerSubheader is spec.md §4.E's stated ColumnList cap.
const maxColumnListEntriesPerSubheader = 16345

const columnListPreambleBytes = 38

// AddColumnNames reserves one or more ColumnName subheaders covering names
// in order, splitting across subheaders (and pages) as needed.
func (l *Layout) AddColumnNames(names []string) error {
	return l.addChunked(len(names), 8, 8, maxColumnNamesPerSubheader, func(off, count int) subheader.Subheader {
		chunk := make([]string, count)
		copy(chunk, names[off:off+count])
		return &subheader.ColumnName{Names: chunk}
	})
}

// AddColumnAttributes reserves one or more ColumnAttributes subheaders
// covering entries in order, splitting across subheaders (and pages) as
// needed.
func (l *Layout) AddColumnAttributes(entries []subheader.ColumnAttributeEntry) error {
	entryCap := (maxColumnAttributesBytes - 28) / 16
	return l.addChunked(len(entries), 16, 0, entryCap, func(off, count int) subheader.Subheader {
		chunk := make([]subheader.ColumnAttributeEntry, count)
		copy(chunk, entries[off:off+count])
		return &subheader.ColumnAttributes{Entries: chunk}
	})
}

// AddColumnList reserves one or more ColumnList subheaders covering every
// column index from 0 to totalVariables-1, splitting across subheaders
// (and pages) as needed.
func (l *Layout) AddColumnList(totalVariables int) error {
	return l.addChunked(totalVariables, 2, columnListPreambleBytes, maxColumnListEntriesPerSubheader, func(off, count int) subheader.Subheader {
		return &subheader.ColumnList{FirstIndex: off, Count: count, TotalVariables: totalVariables}
	})
}

// addChunked splits total entries of entryBytes each (plus a fixed
// headerBytes once per subheader, ahead of the shared 28-byte variable
// frame overhead) across as many subheaders/pages as needed, never
// exceeding entryCap entries per subheader.
func (l *Layout) addChunked(total, entryBytes, headerBytes, entryCap int, build func(offset, count int) subheader.Subheader) error {
	offset := 0
	remaining := total
	for remaining > 0 {
		avail := l.remainingPageSpace() - 28 - headerBytes
		maxEntries := avail / entryBytes
		if entryCap > 0 && maxEntries > entryCap {
			maxEntries = entryCap
		}
		if maxEntries <= 0 {
			l.pages = append(l.pages, page.New(page.KindMeta, l.pageSize, l.rowLength))
			continue
		}
		take := remaining
		if take > maxEntries {
			take = maxEntries
		}
		if err := l.AddSubheader(build(offset, take)); err != nil {
			return err
		}
		offset += take
		remaining -= take
	}
	return nil
}

// FinalizeTextPool commits whatever column text subheader is still open.
// Must be called once, immediately after every string has been interned
// and before any further subheader (ColumnName onward) is added — the
// fixed order spec.md §4.H calls for places the text pool's own
// finalisation ahead of ColumnName, so that subheader's page-space
// accounting reflects the pool's final footprint rather than a stale
// mid-interning state.
func (l *Layout) FinalizeTextPool() error {
	return l.pool.Finalize()
}

// ConvertToMixedPage converts the last metadata page into the mixed page,
// ready for rows. Must be called once, after every subheader the schema
// needs (including Terminal) has been added, and before DeriveTotals or
// Emit.
func (l *Layout) ConvertToMixedPage() {
	if !l.mixedConverted {
		l.currentPage().ConvertToMixed()
		l.currentPage().StartRows()
		l.mixedConverted = true
	}
}

// MixedPage returns the last metadata page, converted to carry rows.
func (l *Layout) MixedPage() *page.Page { return l.currentPage() }

// NewDataPage allocates a fresh pure-data page ready to accept rows.
func (l *Layout) NewDataPage() *page.Page {
	p := page.New(page.KindData, l.pageSize, l.rowLength)
	p.StartRows()
	return p
}

// MetaPages returns every committed metadata/mixed page, in order.
func (l *Layout) MetaPages() []*page.Page { return l.pages }

// DeriveTotals computes the RowSize cross-references that depend on the
// caller-supplied row count and schema facts, and stores the result for
// Totals to return. Call once, after ConvertToMixedPage.
func (l *Layout) DeriveTotals(totalRows int, initialSeq uint32, datasetLabel, datasetType string, aggregateVarNameBytes, maxVarNameLen, maxVarLabelLen int) {
	mixedPage := l.MixedPage()
	maxObsMixed := mixedPage.MaxObservations()

	probe := page.New(page.KindData, l.pageSize, l.rowLength)
	probe.StartRows()
	maxObsData := probe.MaxObservations()

	rowsOnMixed := totalRows
	if rowsOnMixed > maxObsMixed {
		rowsOnMixed = maxObsMixed
	}
	remaining := totalRows - rowsOnMixed
	if remaining < 0 {
		remaining = 0
	}
	totalDataPages := 0
	if remaining > 0 && maxObsData > 0 {
		totalDataPages = (remaining + maxObsData - 1) / maxObsData
	}

	mixedPageIdx := len(l.pages)
	// A row's position on the mixed page continues the same position
	// index space as that page's subheaders (the page header's "total
	// blocks" field is subheader count plus row count), so the first row
	// lands right after the last subheader rather than restarting at 1.
	// Pure data pages carry no subheaders, so rows there start at 1.
	subheadersOnMixed := mixedPage.SubheaderCount()

	// Empty datasets record (0, 3) for both locations rather than the
	// zero value, per spec.md §4.E.
	first := subheader.RecordLocation{Page: 0, Position: 3}
	last := subheader.RecordLocation{Page: 0, Position: 3}
	if totalRows > 0 {
		if rowsOnMixed > 0 {
			first = subheader.RecordLocation{Page: mixedPageIdx, Position: subheadersOnMixed + 1}
		} else {
			first = subheader.RecordLocation{Page: mixedPageIdx + 1, Position: 1}
		}
		if remaining > 0 {
			lastPage := mixedPageIdx + totalDataPages
			lastPos := remaining - (totalDataPages-1)*maxObsData
			last = subheader.RecordLocation{Page: lastPage, Position: lastPos}
		} else {
			last = subheader.RecordLocation{Page: mixedPageIdx, Position: subheadersOnMixed + rowsOnMixed}
		}
	}

	var pageKeys []int
	for k := range l.columnFormatPerPage {
		pageKeys = append(pageKeys, k)
	}
	sort.Ints(pageKeys)
	var counts [2]int
	for i := 0; i < 2 && i < len(pageKeys); i++ {
		counts[i] = l.columnFormatPerPage[pageKeys[i]]
	}

	l.totals = subheader.Totals{
		RowLength:                            l.rowLength,
		TotalObservations:                    totalRows,
		PageSize:                             l.pageSize,
		TotalMetaPages:                       mixedPageIdx,
		MaxObsMixed:                          maxObsMixed,
		MaxObsData:                           maxObsData,
		TotalDataPages:                       totalDataPages,
		InitialSequence:                      initialSeq,
		ColumnTextCount:                      l.pool.Count(),
		MaxVariableNameLen:                   maxVarNameLen,
		MaxVariableLabelLen:                  maxVarLabelLen,
		AggregateVarNameBytes:                aggregateVarNameBytes,
		ColumnListSizeSum:                    l.columnListSizeSum,
		DatasetLabel:                         datasetLabel,
		DatasetType:                          datasetType,
		ColumnFormatFirstAndSecondPageCounts: counts,
		FirstColumnFormatLoc:                 l.firstColumnFormatLoc,
		LastMetaPageLoc:                      subheader.RecordLocation{Page: mixedPageIdx, Position: mixedPage.SubheaderCount() - 1},
		FirstDataLoc:                         first,
		LastDataLoc:                          last,
	}
}

// TotalPages reports the full page count: metadata/mixed pages plus
// whatever data pages DeriveTotals computed.
func (l *Layout) TotalPages() int {
	return len(l.pages) + l.totals.TotalDataPages
}

// WriteTextRef implements subheader.LayoutView.
func (l *Layout) WriteTextRef(buf []byte, off int, s string) error {
	return l.pool.WriteReference(buf, off, s)
}

// ForEachSubheader implements subheader.LayoutView.
func (l *Layout) ForEachSubheader(visit func(page, position int, s subheader.Subheader)) {
	for i, p := range l.pages {
		p.Each(func(pos int, s subheader.Subheader) { visit(i+1, pos, s) })
	}
}

// Totals implements subheader.LayoutView.
func (l *Layout) Totals() subheader.Totals { return l.totals }
