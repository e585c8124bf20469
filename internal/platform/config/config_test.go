package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ogurasousui/employee-record/internal/core/employee"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "employee.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Success(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `clock:
  today: "18/10/2026"

employee:
  cpr: "0999999999"
  first_name: Lene Rye
  last_name: Johansen
  department: HR
  base_salary: 35045.98
  educational_level: 2
  date_of_birth: "23/8/2006"
  date_of_employment: "26/7/2022"
  country: Iceland
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "18/10/2026", cfg.Clock.Today.String())
	require.NotNil(t, cfg.Employee.CPR)
	assert.Equal(t, "0999999999", *cfg.Employee.CPR)
	require.NotNil(t, cfg.Employee.BaseSalary)
	assert.Equal(t, 35045.98, *cfg.Employee.BaseSalary)
	require.NotNil(t, cfg.Employee.EducationalLevel)
	assert.Equal(t, 2, *cfg.Employee.EducationalLevel)

	clk := cfg.Clock.Source()
	require.NotNil(t, clk)
	assert.Equal(t, "18/10/2026", employee.DateOf(clk.Now()).String())

	in := cfg.Employee.Input()
	assert.Equal(t, cfg.Employee.Country, in.Country)
	assert.Equal(t, cfg.Employee.DateOfBirth, in.DateOfBirth)
}

func TestLoad_PartialProfileWithoutClock(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `employee:
  country: Denmark
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.Clock.Today.IsZero())
	assert.Nil(t, cfg.Clock.Source())
	assert.Nil(t, cfg.Employee.CPR)
	require.NotNil(t, cfg.Employee.Country)
	assert.Equal(t, "Denmark", *cfg.Employee.Country)
}

func TestLoad_MissingProfile(t *testing.T) {
	t.Parallel()

	_, err := Load(writeConfig(t, "{}"))
	require.Error(t, err)
}

func TestLoad_InvalidToday(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `clock:
  today: "30/02/2026"
employee:
  country: Denmark
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, employee.ErrUnparseableDate)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestResolvePath(t *testing.T) {
	assert.Equal(t, "custom.yaml", ResolvePath("custom.yaml"))

	t.Setenv("CONFIG_PATH", "env.yaml")
	assert.Equal(t, "env.yaml", ResolvePath(""))

	t.Setenv("CONFIG_PATH", "")
	assert.Equal(t, DefaultPath, ResolvePath(""))
}
