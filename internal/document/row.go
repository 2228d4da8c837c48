package document

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Row is a single line of text stored as grapheme clusters, so that
// multi-codepoint characters edit and render as one unit.
type Row struct {
	clusters []string
}

// NewRow segments text into a row of grapheme clusters.
func NewRow(text string) *Row {
	r := &Row{}
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		r.clusters = append(r.clusters, g.Str())
	}
	return r
}

// Len returns the number of grapheme clusters in the row.
func (r *Row) Len() int {
	return len(r.clusters)
}

// String joins the row back into a plain string.
func (r *Row) String() string {
	return strings.Join(r.clusters, "")
}

// Slice returns the clusters in [start, end) joined into a string.
// The range is clamped to the row, so a window past the end is empty.
func (r *Row) Slice(start, end int) string {
	start = clamp(start, 0, len(r.clusters))
	end = clamp(end, start, len(r.clusters))
	return strings.Join(r.clusters[start:end], "")
}

// Insert places text before the cluster at the given index. Indexes
// outside the row are clamped to its ends.
func (r *Row) Insert(at int, text string) {
	at = clamp(at, 0, len(r.clusters))

	var inserted []string
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		inserted = append(inserted, g.Str())
	}
	if len(inserted) == 0 {
		return
	}

	r.clusters = append(r.clusters[:at], append(inserted, r.clusters[at:]...)...)
}

// Delete removes the cluster at the given index. Out-of-range indexes
// are ignored.
func (r *Row) Delete(at int) {
	if at < 0 || at >= len(r.clusters) {
		return
	}
	r.clusters = append(r.clusters[:at], r.clusters[at+1:]...)
}

// Split cuts the row at the given index and returns the tail as a new
// row. The receiver keeps the head.
func (r *Row) Split(at int) *Row {
	at = clamp(at, 0, len(r.clusters))

	tail := &Row{clusters: append([]string(nil), r.clusters[at:]...)}
	r.clusters = r.clusters[:at]
	return tail
}

// Append joins another row onto the end of this one.
func (r *Row) Append(other *Row) {
	r.clusters = append(r.clusters, other.clusters...)
}

func clamp(v, low, high int) int {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}
