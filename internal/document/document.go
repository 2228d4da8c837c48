package document

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// ErrNoPath is returned by Save when the document was never given a
// file name.
var ErrNoPath = errors.New("document has no file path")

// Document is line-oriented text with an optional backing file.
type Document struct {
	rows     []*Row
	path     string
	modified bool
}

// New creates an empty, unnamed document.
func New() *Document {
	return &Document{}
}

// Load reads the file at path into a document. A missing file yields
// an empty document that will be created on first save.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return &Document{path: path}, nil
	}
	if err != nil {
		return nil, err
	}

	d := &Document{path: path}
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	if text != "" || len(data) > 0 {
		for _, line := range strings.Split(text, "\n") {
			d.rows = append(d.rows, NewRow(line))
		}
	}
	return d, nil
}

// Path returns the backing file path, empty for a scratch document.
func (d *Document) Path() string {
	return d.path
}

// Name returns the base name of the backing file, or empty.
func (d *Document) Name() string {
	if d.path == "" {
		return ""
	}
	return filepath.Base(d.path)
}

// Modified reports whether the document changed since the last save.
func (d *Document) Modified() bool {
	return d.modified
}

// IsEmpty reports whether the document holds no text at all.
func (d *Document) IsEmpty() bool {
	return len(d.rows) == 0
}

// LineCount returns the number of rows.
func (d *Document) LineCount() int {
	return len(d.rows)
}

// Line returns the text of row i, or empty for out-of-range rows.
func (d *Document) Line(i int) string {
	if i < 0 || i >= len(d.rows) {
		return ""
	}
	return d.rows[i].String()
}

// LineSlice returns the clusters of row i in [start, end), for
// horizontally scrolled views. Out-of-range rows are empty.
func (d *Document) LineSlice(i, start, end int) string {
	if i < 0 || i >= len(d.rows) {
		return ""
	}
	return d.rows[i].Slice(start, end)
}

// LineLen returns the cluster count of row i, zero when out of range.
func (d *Document) LineLen(i int) int {
	if i < 0 || i >= len(d.rows) {
		return 0
	}
	return d.rows[i].Len()
}

// Insert places text at the given row and column, growing the
// document with an empty row first when it has none.
func (d *Document) Insert(row, col int, text string) {
	d.ensureRow(row)
	d.rows[row].Insert(col, text)
	d.modified = true
}

// InsertLineBreak splits the row at the column, pushing the tail onto
// a new following row.
func (d *Document) InsertLineBreak(row, col int) {
	d.ensureRow(row)
	tail := d.rows[row].Split(col)

	d.rows = append(d.rows, nil)
	copy(d.rows[row+2:], d.rows[row+1:])
	d.rows[row+1] = tail
	d.modified = true
}

// DeleteBackward removes the cluster before the position. At the
// start of a row it joins the row onto the previous one. It returns
// the position the cursor should move to.
func (d *Document) DeleteBackward(row, col int) (int, int) {
	if row < 0 || row >= len(d.rows) {
		return row, col
	}
	if col > 0 {
		d.rows[row].Delete(col - 1)
		d.modified = true
		return row, col - 1
	}
	if row == 0 {
		return row, col
	}

	prev := d.rows[row-1]
	joined := prev.Len()
	prev.Append(d.rows[row])
	d.rows = append(d.rows[:row], d.rows[row+1:]...)
	d.modified = true
	return row - 1, joined
}

// DeleteForward removes the cluster at the position. At the end of a
// row it joins the next row onto it. The cursor stays put.
func (d *Document) DeleteForward(row, col int) {
	if row < 0 || row >= len(d.rows) {
		return
	}
	if col < d.rows[row].Len() {
		d.rows[row].Delete(col)
		d.modified = true
		return
	}
	if row+1 >= len(d.rows) {
		return
	}

	d.rows[row].Append(d.rows[row+1])
	d.rows = append(d.rows[:row+1], d.rows[row+2:]...)
	d.modified = true
}

// Save writes the document back to its file path.
func (d *Document) Save() error {
	if d.path == "" {
		return ErrNoPath
	}
	return d.writeTo(d.path)
}

// SaveAs writes the document to name and adopts it as the new path.
func (d *Document) SaveAs(name string) error {
	if err := d.writeTo(name); err != nil {
		return err
	}
	d.path = name
	return nil
}

func (d *Document) writeTo(path string) error {
	var sb strings.Builder
	for _, row := range d.rows {
		sb.WriteString(row.String())
		sb.WriteByte('\n')
	}
	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		return err
	}
	d.modified = false
	return nil
}

func (d *Document) ensureRow(row int) {
	for len(d.rows) <= row {
		d.rows = append(d.rows, NewRow(""))
	}
}
