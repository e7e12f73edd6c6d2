// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("ZIPSEQ_LOG_LEVEL", "error")
	t.Setenv("ZIPSEQ_LOG_FORMAT", "json")
	return dir
}

func writeLines(t *testing.T, dir, name string, lines ...string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(strings.Join(lines, "\n")+"\n"), 0o600))
	return p
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out strings.Builder
	err := newApp(strings.NewReader(stdin), &out).Run(context.Background(), append([]string{"zipseq"}, args...))
	return out.String(), err
}

func TestPasteStopsAtShortest(t *testing.T) {
	dir := chdirTemp(t)
	a := writeLines(t, dir, "a.txt", "1", "2", "3")
	b := writeLines(t, dir, "b.txt", "x", "y")

	out, err := run(t, "", "paste", "-d", ",", a, b)
	require.NoError(t, err)
	assert.Equal(t, "1,x\n2,y\n", out)
}

func TestPasteStdin(t *testing.T) {
	dir := chdirTemp(t)
	a := writeLines(t, dir, "a.txt", "1", "2")

	out, err := run(t, "p\nq\nr\n", "paste", a, "-")
	require.NoError(t, err)
	assert.Equal(t, "1\tp\n2\tq\n", out)
}

func TestNumber(t *testing.T) {
	dir := chdirTemp(t)
	a := writeLines(t, dir, "a.txt", "alpha", "beta")

	out, err := run(t, "", "number", "--start", "5", a)
	require.NoError(t, err)
	assert.Equal(t, "5\talpha\n6\tbeta\n", out)
}

func TestNumberTable(t *testing.T) {
	dir := chdirTemp(t)
	a := writeLines(t, dir, "a.txt", "alpha")

	out, err := run(t, "", "--format", "table", "number", a)
	require.NoError(t, err)
	assert.Contains(t, out, "alpha")
	assert.Contains(t, out, "│")
}

func TestUsageErrors(t *testing.T) {
	chdirTemp(t)

	_, err := run(t, "", "paste")
	var code exitCodeError
	require.True(t, errors.As(err, &code))
	assert.Equal(t, exitCodeError(2), code)

	_, err = run(t, "", "number")
	require.True(t, errors.As(err, &code))
	assert.Equal(t, exitCodeError(2), code)

	_, err = run(t, "", "number", "absent.txt")
	require.ErrorIs(t, err, os.ErrNotExist)
}
