// Package report renders df-style disk usage tables from usage
// snapshots. Snapshots are plain text records supplied by the caller;
// this package never inspects filesystems itself.
package report

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"lukechampine.com/uint128"

	"github.com/dennisklein/dfree/internal/blocks"
)

// Entry is one usage record: a filesystem source, its total, used and
// available byte counts, and the mount target.
//
//nolint:govet // fieldalignment: readability preferred over optimization
type Entry struct {
	Source    string
	Total     uint64
	Used      uint64
	Available uint64
	Target    string
}

// Parse reads usage records from r, one per line, as five
// whitespace-separated fields: source, total, used and available byte
// counts, and target. Blank lines and lines starting with '#' are
// skipped. Malformed lines are errors, never silently dropped.
func Parse(r io.Reader) ([]Entry, error) {
	var entries []Entry

	scanner := bufio.NewScanner(r)
	for lineno := 1; scanner.Scan(); lineno++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 5 {
			return nil, fmt.Errorf("line %d: expected 5 fields, got %d", lineno, len(fields))
		}

		entry := Entry{Source: fields[0], Target: fields[4]}

		for i, dst := range []*uint64{&entry.Total, &entry.Used, &entry.Available} {
			n, err := strconv.ParseUint(fields[i+1], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid byte count %q", lineno, fields[i+1])
			}

			*dst = n
		}

		entries = append(entries, entry)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	return entries, nil
}

var headerStyle = lipgloss.NewStyle().Bold(true)

// Render writes a df-style table for the given entries, with byte
// counts scaled to the given block size. The size column header carries
// the block size's display string, e.g. "1K-blocks".
func Render(w io.Writer, entries []Entry, bs blocks.BlockSize) error {
	unit, err := bs.Format()
	if err != nil {
		return fmt.Errorf("failed to format block size: %w", err)
	}

	header := []string{"Filesystem", unit + "-blocks", "Used", "Available", "Use%", "Mounted on"}
	rightAligned := []bool{false, true, true, true, true, false}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			e.Source,
			scale(e.Total, bs),
			scale(e.Used, bs),
			scale(e.Available, bs),
			usePercent(e.Used, e.Available),
			e.Target,
		})
	}

	widths := make([]int, len(header))
	for _, row := range append([][]string{header}, rows...) {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	styles := make([]lipgloss.Style, len(header))
	for i := range styles {
		styles[i] = lipgloss.NewStyle().Width(widths[i])
		if rightAligned[i] {
			styles[i] = styles[i].Align(lipgloss.Right)
		}
	}

	if err := writeRow(w, header, styles, headerStyle); err != nil {
		return err
	}

	for _, row := range rows {
		if err := writeRow(w, row, styles, lipgloss.NewStyle()); err != nil {
			return err
		}
	}

	return nil
}

func writeRow(w io.Writer, row []string, styles []lipgloss.Style, decorate lipgloss.Style) error {
	cells := make([]string, len(row))
	for i, cell := range row {
		cells[i] = styles[i].Render(decorate.Render(cell))
	}

	if _, err := fmt.Fprintln(w, strings.TrimRight(strings.Join(cells, " "), " ")); err != nil {
		return fmt.Errorf("failed to write row: %w", err)
	}

	return nil
}

// scale converts a byte count to block-size units, rounding up like
// df does.
func scale(bytes uint64, bs blocks.BlockSize) string {
	if bytes == 0 {
		return "0"
	}

	// (bytes-1)/bs + 1 is the overflow-safe ceiling division.
	return strconv.FormatUint((bytes-1)/bs.Bytes()+1, 10)
}

// usePercent computes used/(used+available) as a percentage rounded
// up, or "-" when the filesystem has no capacity at all.
func usePercent(used, available uint64) string {
	total := uint128.From64(used).Add64(available)
	if total.IsZero() {
		return "-"
	}

	// Percentages round up, so 1 byte used of a terabyte still shows
	// as 1%.
	percent := uint128.From64(used).Mul64(100).Add(total.Sub64(1)).Div(total)

	return percent.String() + "%"
}
