// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/zipseq/internal/config"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "zipseq.yaml")
	require.NoError(t, os.WriteFile(name, []byte(body), 0o600))
	return name
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv(config.EnvLogLevel, "")
	t.Setenv(config.EnvLogFormat, "")

	conf, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, "info", conf.Log.Level)
	assert.Equal(t, "auto", conf.Log.Format)
	assert.Equal(t, "plain", conf.Output.Format)
	assert.Equal(t, "\t", conf.Output.Delimiter)
}

func TestLoadFile(t *testing.T) {
	t.Setenv(config.EnvLogLevel, "")
	t.Setenv(config.EnvLogFormat, "")
	name := writeFile(t, "log:\n  level: debug\n  format: json\noutput:\n  format: table\n  delimiter: \",\"\n")

	conf, err := config.Load(name)
	require.NoError(t, err)
	assert.Equal(t, "debug", conf.Log.Level)
	assert.Equal(t, "json", conf.Log.Format)
	assert.Equal(t, "table", conf.Output.Format)
	assert.Equal(t, ",", conf.Output.Delimiter)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv(config.EnvLogLevel, "warn")
	t.Setenv(config.EnvLogFormat, "pretty")
	name := writeFile(t, "log:\n  level: debug\n")

	conf, err := config.Load(name)
	require.NoError(t, err)
	assert.Equal(t, "warn", conf.Log.Level)
	assert.Equal(t, "pretty", conf.Log.Format)
}

func TestLoadMissingNamedFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoadInvalid(t *testing.T) {
	t.Setenv(config.EnvLogLevel, "")
	t.Setenv(config.EnvLogFormat, "")
	for _, body := range []string{
		"log:\n  level: loud\n",
		"log:\n  format: xml\n",
		"output:\n  format: csv\n",
		"log: [\n",
	} {
		_, err := config.Load(writeFile(t, body))
		assert.Error(t, err, body)
	}
}
