package format

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"ansipaint/canvas"
)

// LoadText reads a plain UTF-8 text file as an uncolored document.
// Tabs expand to 8-column stops; trailing newline does not add a row.
func LoadText(r io.Reader) (*canvas.Canvas, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)

	var lines [][]rune
	maxW := 1
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		var row []rune
		for _, r := range line {
			if r == '\t' {
				next := (len(row)/8 + 1) * 8
				for len(row) < next {
					row = append(row, ' ')
				}
				continue
			}
			row = append(row, r)
		}
		if len(row) > maxW {
			maxW = len(row)
		}
		if len(lines) >= maxDocHeight {
			break
		}
		lines = append(lines, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read text document: %w", err)
	}
	if maxW > maxDocWidth {
		maxW = maxDocWidth
	}

	h := len(lines)
	if h < 1 {
		h = 1
	}
	c := canvas.New(maxW, h)
	for y, row := range lines {
		for x, r := range row {
			if x >= maxW {
				break
			}
			cell := canvas.Blank()
			cell.Rune = r
			c.Set(x, y, cell)
		}
	}
	return c, nil
}

// SaveText writes the document's runes only, dropping all color.
// Trailing spaces on each row are trimmed.
func SaveText(w io.Writer, c *canvas.Canvas) error {
	bw := bufio.NewWriter(w)
	cw, ch := c.Size()
	for y := 0; y < ch; y++ {
		end := cw
		for end > 0 {
			r := c.Get(end-1, y).Rune
			if r != ' ' && r != 0 {
				break
			}
			end--
		}
		for x := 0; x < end; x++ {
			r := c.Get(x, y).Rune
			if r == 0 {
				r = ' '
			}
			bw.WriteRune(r)
		}
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write text document: %w", err)
	}
	return nil
}
