package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ogurasousui/employee-record/internal/core/employee"
)

// DefaultPath は設定ファイルの既定パスです。
const DefaultPath = "assets/employee.yaml"

// Config はアプリケーション全体の設定を表現します。
type Config struct {
	Clock    ClockConfig   `yaml:"clock"`
	Employee ProfileConfig `yaml:"employee"`
}

// ClockConfig は「今日」の扱いに関する設定です。
type ClockConfig struct {
	// TodayRaw を指定すると、その日付を今日として評価します (DD/MM/YYYY)。
	TodayRaw string        `yaml:"today"`
	Today    employee.Date `yaml:"-"`
}

// ProfileConfig は社員レコードへ適用する生の入力です。省略した項目は適用しません。
type ProfileConfig struct {
	CPR              *string  `yaml:"cpr"`
	FirstName        *string  `yaml:"first_name"`
	LastName         *string  `yaml:"last_name"`
	Department       *string  `yaml:"department"`
	BaseSalary       *float64 `yaml:"base_salary"`
	EducationalLevel *int     `yaml:"educational_level"`
	DateOfBirth      *string  `yaml:"date_of_birth"`
	DateOfEmployment *string  `yaml:"date_of_employment"`
	Country          *string  `yaml:"country"`
}

// Load は指定されたパスから設定ファイルを読み込みます。
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}

	if err := cfg.validateAndNormalize(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// ResolvePath はフラグ、CONFIG_PATH 環境変数、既定パスの順に設定ファイルのパスを決定します。
func ResolvePath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv("CONFIG_PATH"); env != "" {
		return env
	}
	return DefaultPath
}

func (c *Config) validateAndNormalize() error {
	if err := c.Clock.validateAndNormalize(); err != nil {
		return err
	}
	if c.Employee.isEmpty() {
		return fmt.Errorf("config: employee must set at least one field")
	}
	return nil
}

func (c *ClockConfig) validateAndNormalize() error {
	if c.TodayRaw == "" {
		return nil
	}
	today, err := employee.ParseDate(c.TodayRaw)
	if err != nil {
		return fmt.Errorf("config: clock.today: %w", err)
	}
	c.Today = today
	return nil
}

// Source は clock.today が指定されていれば固定の Clock を、なければ nil (システム時計) を返します。
func (c ClockConfig) Source() employee.Clock {
	if c.Today.IsZero() {
		return nil
	}
	return employee.FixedClock(c.Today)
}

func (p ProfileConfig) isEmpty() bool {
	return p == ProfileConfig{}
}

// Input は ProfileConfig をユースケースの入力へ変換します。
func (p ProfileConfig) Input() employee.ProfileInput {
	return employee.ProfileInput{
		CPR:              p.CPR,
		FirstName:        p.FirstName,
		LastName:         p.LastName,
		Department:       p.Department,
		BaseSalary:       p.BaseSalary,
		EducationalLevel: p.EducationalLevel,
		DateOfBirth:      p.DateOfBirth,
		DateOfEmployment: p.DateOfEmployment,
		Country:          p.Country,
	}
}
