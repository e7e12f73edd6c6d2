// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package textcol_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/zipseq/internal/textcol"
)

func TestReadLines(t *testing.T) {
	lines, err := textcol.ReadLines(strings.NewReader("a\nb\r\n\nc"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "", "c"}, lines)
}

func TestLines(t *testing.T) {
	name := filepath.Join(t.TempDir(), "in.txt")
	require.NoError(t, os.WriteFile(name, []byte("x\ny\n"), 0o600))

	lines, err := textcol.Lines(name, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, lines)

	lines, err = textcol.Lines(textcol.Stdin, strings.NewReader("z\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"z"}, lines)

	_, err = textcol.Lines(filepath.Join(t.TempDir(), "absent"), nil)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestPlainWriter(t *testing.T) {
	var sb strings.Builder
	w, err := textcol.NewWriter(&sb, textcol.Plain, ",")
	require.NoError(t, err)
	w.Header("ignored")
	require.NoError(t, w.Row("1", "a"))
	require.NoError(t, w.Row("2", "b"))
	require.NoError(t, w.Flush())
	assert.Equal(t, "1,a\n2,b\n", sb.String())
}

func TestTableWriter(t *testing.T) {
	var sb strings.Builder
	w, err := textcol.NewWriter(&sb, textcol.Table, "")
	require.NoError(t, err)
	w.Header("#", "line")
	require.NoError(t, w.Row("1", "alpha"))
	assert.Empty(t, sb.String())
	require.NoError(t, w.Flush())

	out := sb.String()
	assert.Contains(t, out, "alpha")
	assert.Contains(t, out, "line")
	assert.Contains(t, out, "│")
}

func TestUnknownFormat(t *testing.T) {
	_, err := textcol.NewWriter(&strings.Builder{}, textcol.Format("csv"), ",")
	require.Error(t, err)
}
