package inventory

// Location of the stock data. These are business constants, not settings.
const (
	SpreadsheetTitle = "Inventory tracker"
	WorksheetName    = "Stock Summary"

	// FirstDataRow is the index of the first row read as an item. Row 0 is
	// the header and row 1 is always skipped.
	FirstDataRow = 2
)

// Recognized column names.
const (
	ColumnItemName   = "Item Name"
	ColumnColor      = "color"
	ColumnSize       = "size"
	ColumnLength     = "length"
	ColumnTotalStock = "Total Stock"
)

// RequiredColumns is the closed set of columns read from the worksheet, in
// display order.
var RequiredColumns = []string{ColumnItemName, ColumnColor, ColumnSize, ColumnLength, ColumnTotalStock}

// Item maps recognized column names to cell values. A column missing from the
// worksheet header is missing from the item.
type Item map[string]string

func (i Item) Get(column string) string { return i[column] }

func (i Item) Name() string       { return i[ColumnItemName] }
func (i Item) Color() string      { return i[ColumnColor] }
func (i Item) Size() string       { return i[ColumnSize] }
func (i Item) Length() string     { return i[ColumnLength] }
func (i Item) TotalStock() string { return i[ColumnTotalStock] }

// Response is one snapshot of the worksheet.
type Response struct {
	Data    []Item   `json:"data"`
	Headers []string `json:"headers"`
}

// Empty returns a response that encodes as {"data":[],"headers":[]}.
func Empty() Response {
	return Response{Data: []Item{}, Headers: []string{}}
}

// Spreadsheet identifies a document returned by a Source search.
type Spreadsheet struct {
	ID           string
	Name         string
	ModifiedTime string // RFC 3339, as reported by the file index
}
