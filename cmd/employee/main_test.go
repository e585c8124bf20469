package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ogurasousui/employee-record/internal/core/employee"
)

const profile = `clock:
  today: "18/10/2026"
employee:
  cpr: "5555555555"
  first_name: Lene Rye
  last_name: Johansen
  department: HR
  base_salary: 35045.98
  educational_level: 2
  date_of_birth: "23/8/2006"
  date_of_employment: "26/7/2022"
  country: Iceland
`

func writeProfile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "employee.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	cmd := newRootCommand(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestShow(t *testing.T) {
	t.Parallel()

	out, err := run(t, "show", "--config", writeProfile(t, profile))
	require.NoError(t, err)
	assert.Contains(t, out, "Lene Rye")
	assert.Contains(t, out, "37485.98")
	assert.Contains(t, out, "2.0")
}

func TestShow_TodayFlagOverridesConfig(t *testing.T) {
	t.Parallel()

	out, err := run(t, "show", "--config", writeProfile(t, profile), "--today", "26/07/2032")
	require.NoError(t, err)
	assert.Contains(t, out, "5.0")
}

func TestShow_InvalidTodayFlag(t *testing.T) {
	t.Parallel()

	_, err := run(t, "show", "--config", writeProfile(t, profile), "--today", "2032-07-26")
	require.Error(t, err)
	assert.ErrorIs(t, err, employee.ErrUnparseableDate)
}

func TestCheck(t *testing.T) {
	t.Parallel()

	out, err := run(t, "check", "--config", writeProfile(t, profile))
	require.NoError(t, err)
	assert.Contains(t, out, "ok: 9 field(s) accepted")

	path := writeProfile(t, `clock:
  today: "18/10/2026"
employee:
  cpr: "12"
  base_salary: 5
`)
	out, err = run(t, "check", "--config", path)
	require.Error(t, err)
	assert.ErrorIs(t, err, employee.ErrInvalidCPR)
	assert.ErrorIs(t, err, employee.ErrInvalidBaseSalary)
	assert.Contains(t, out, "must be exactly 10 digits")
}

func TestMissingConfig(t *testing.T) {
	t.Parallel()

	_, err := run(t, "show", "--config", filepath.Join(t.TempDir(), "none.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
