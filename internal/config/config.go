package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"fdm-dividend/internal/dividend"
	"fdm-dividend/internal/mesh"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Config is the on-disk scenario shape (YAML).
type Config struct {
	// Optional: load the dividend schedule from a separate YAML (e.g. examples/dividends/*.yaml).
	// If both DividendsFile and Dividends are provided, Dividends replaces the file schedule.
	DividendsFile string           `yaml:"dividends_file"`
	Grid          GridConfig       `yaml:"grid"`
	Dividends     []DividendConfig `yaml:"dividends"`
	Rollback      RollbackConfig   `yaml:"rollback"`
}

type GridConfig struct {
	Price PriceAxisConfig `yaml:"price"`
	Axes  []AxisConfig    `yaml:"axes"`
	// PriceAxisIndex is the position of the price axis among all axes.
	PriceAxisIndex int `yaml:"price_axis_index"`
}

// PriceAxisConfig is either explicit Levels or a log-uniform Min..Max range.
type PriceAxisConfig struct {
	Levels []float64 `yaml:"levels"`
	Min    float64   `yaml:"min"`
	Max    float64   `yaml:"max"`
	Points int       `yaml:"points"`
}

type AxisConfig struct {
	Name   string  `yaml:"name"`
	Lo     float64 `yaml:"lo"`
	Hi     float64 `yaml:"hi"`
	Points int     `yaml:"points"`
}

type DividendConfig struct {
	Time float64 `yaml:"time"`
	// Amount is a decimal string so cash amounts like "2.50" are read exactly.
	Amount string `yaml:"amount"`
}

type RollbackConfig struct {
	// Maturity 0 marks an adjust-only scenario; see RequireRollback.
	Maturity float64 `yaml:"maturity"`
	Steps    int     `yaml:"steps"`
}

// ErrAdjustOnly is returned by RequireRollback when rollback.maturity is 0.
var ErrAdjustOnly = errors.New("rollback.maturity must be > 0 to roll back (0 means adjust only)")

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	c.ApplyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadSchedule loads a config whose grid comes from elsewhere, such as a saved
// grid file. Only the schedule and rollback sections are validated.
func LoadSchedule(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	c.ApplyDefaults()
	if err := c.ValidateSchedule(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	if c.DividendsFile != "" {
		schedulePath := c.DividendsFile
		if !filepath.IsAbs(schedulePath) {
			// Prefer paths relative to the config file, falling back to cwd.
			cand := filepath.Join(filepath.Dir(path), schedulePath)
			if _, err := os.Stat(cand); err == nil {
				schedulePath = cand
			}
		}
		loaded, err := loadDividendsFile(schedulePath)
		if err != nil {
			return nil, err
		}
		c.Dividends = MergeDividends(loaded, c.Dividends)
	}
	return &c, nil
}

// ApplyDefaults fills in fields left at their zero value.
func (c *Config) ApplyDefaults() {
	if len(c.Grid.Price.Levels) == 0 && c.Grid.Price.Points == 0 {
		c.Grid.Price.Points = 101
	}
	if c.Rollback.Steps == 0 {
		c.Rollback.Steps = 100
	}
}

func (c *Config) Validate() error {
	if err := c.ValidateSchedule(); err != nil {
		return err
	}
	// Validate grid and schedule together by constructing the adjuster.
	if _, _, err := c.Adjuster(); err != nil {
		return fmt.Errorf("scenario invalid: %w", err)
	}
	return nil
}

// ValidateSchedule checks every section except grid.
func (c *Config) ValidateSchedule() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Rollback.Maturity < 0 {
		return errors.New("rollback.maturity must be >= 0")
	}
	if c.Rollback.Steps < 0 {
		return errors.New("rollback.steps must be >= 0")
	}
	if _, _, err := c.Schedule(); err != nil {
		return fmt.Errorf("scenario invalid: %w", err)
	}
	return nil
}

// RequireRollback returns ErrAdjustOnly unless the scenario has a rollback
// horizon.
func (c *Config) RequireRollback() error {
	if c.Rollback.Maturity <= 0 {
		return ErrAdjustOnly
	}
	return nil
}

// Layout builds the mesh described by the grid section.
func (c *Config) Layout() (*mesh.Layout, error) {
	var logPrice []float64
	var err error
	p := c.Grid.Price
	if len(p.Levels) > 0 {
		logPrice, err = mesh.LogOf(p.Levels)
	} else {
		logPrice, err = mesh.LogPriceAxis(p.Min, p.Max, p.Points)
	}
	if err != nil {
		return nil, fmt.Errorf("grid.price: %w", err)
	}

	others := make([][]float64, 0, len(c.Grid.Axes))
	for i, a := range c.Grid.Axes {
		coords, err := mesh.UniformAxis(a.Lo, a.Hi, a.Points)
		if err != nil {
			return nil, fmt.Errorf("grid.axes[%d] (%s): %w", i, a.Name, err)
		}
		others = append(others, coords)
	}
	return mesh.WithPriceAxis(logPrice, others, c.Grid.PriceAxisIndex)
}

// Schedule returns the dividend times and amounts in file order.
func (c *Config) Schedule() (times, amounts []float64, err error) {
	times = make([]float64, 0, len(c.Dividends))
	amounts = make([]float64, 0, len(c.Dividends))
	for i, d := range c.Dividends {
		amt, err := decimal.NewFromString(d.Amount)
		if err != nil {
			return nil, nil, fmt.Errorf("dividends[%d].amount %q: %w", i, d.Amount, err)
		}
		times = append(times, d.Time)
		amounts = append(amounts, amt.InexactFloat64())
	}
	return times, amounts, nil
}

// Adjuster builds the layout and the dividend adjuster for this scenario.
func (c *Config) Adjuster() (*dividend.Adjuster, *mesh.Layout, error) {
	l, err := c.Layout()
	if err != nil {
		return nil, nil, err
	}
	times, amounts, err := c.Schedule()
	if err != nil {
		return nil, nil, err
	}
	a, err := dividend.NewAdjuster(times, amounts, l, c.Grid.PriceAxisIndex)
	if err != nil {
		return nil, nil, err
	}
	return a, l, nil
}

type dividendsFileWrapper struct {
	Dividends []DividendConfig `yaml:"dividends"`
}

func loadDividendsFile(path string) ([]DividendConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var w dividendsFileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return nil, err
	}
	return w.Dividends, nil
}

// MergeDividends returns override when it is non-empty and base otherwise.
// Schedules are replaced as a whole; partial merges would reorder events.
func MergeDividends(base, override []DividendConfig) []DividendConfig {
	if len(override) > 0 {
		return override
	}
	return base
}
