// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package textcol loads line-oriented text and writes it back as columns.
package textcol

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Stdin is the file name that reads standard input.
const Stdin = "-"

// ReadLines returns the lines of r without their terminators.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); nil != err {
		return nil, err
	}
	return lines, nil
}

// Lines reads the named file, or stdin for [Stdin].
func Lines(name string, stdin io.Reader) ([]string, error) {
	if name == Stdin {
		return ReadLines(stdin)
	}
	f, err := os.Open(name)
	if nil != err {
		return nil, err
	}
	defer f.Close()

	lines, err := ReadLines(f)
	if nil != err {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return lines, nil
}

// Format selects how a [Writer] renders rows.
type Format string

const (
	Plain Format = "plain"
	Table Format = "table"
)

// Writer renders rows of columns either as delimited text or as a table.
// Plain rows are written immediately; table rows are buffered until Flush.
type Writer struct {
	out   io.Writer
	delim string
	tw    table.Writer
}

func NewWriter(out io.Writer, format Format, delim string) (*Writer, error) {
	w := &Writer{out: out, delim: delim}
	switch format {
	case Plain:
	case Table:
		w.tw = table.NewWriter()
		w.tw.SetStyle(table.StyleLight)
		w.tw.Style().Format.Header = text.FormatDefault
	default:
		return nil, fmt.Errorf("unknown output format: %q", format)
	}
	return w, nil
}

// Header sets column titles. Plain output has no header.
func (w *Writer) Header(cols ...string) {
	if w.tw != nil {
		w.tw.AppendHeader(row(cols))
	}
}

func (w *Writer) Row(cols ...string) error {
	if w.tw != nil {
		w.tw.AppendRow(row(cols))
		return nil
	}
	_, err := io.WriteString(w.out, strings.Join(cols, w.delim)+"\n")
	return err
}

func (w *Writer) Flush() error {
	if w.tw == nil {
		return nil
	}
	_, err := io.WriteString(w.out, w.tw.Render()+"\n")
	return err
}

func row(cols []string) table.Row {
	r := make(table.Row, len(cols))
	for i, c := range cols {
		r[i] = c
	}
	return r
}
