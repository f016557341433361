package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"fdm-dividend/internal/dividend"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestLoadScenario(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "scenario.yaml", `
grid:
  price:
    levels: [80, 90, 100, 110, 120]
  axes:
    - name: variance
      lo: 0.01
      hi: 0.09
      points: 3
  price_axis_index: 1
dividends:
  - time: 0.5
    amount: "2.50"
rollback:
  maturity: 1
`)
	c, err := Load(p)
	require.NoError(t, err)
	require.Equal(t, 100, c.Rollback.Steps)

	a, l, err := c.Adjuster()
	require.NoError(t, err)
	require.Equal(t, []int{3, 5}, l.Dims())

	amt, ok := a.Amount(0.5)
	require.True(t, ok)
	require.Equal(t, 2.5, amt)
	require.InDeltaSlice(t, []float64{80, 90, 100, 110, 120}, a.Prices(), 1e-9)
}

func TestLoadDividendsFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "divs.yaml", `
dividends:
  - time: 0.25
    amount: "1"
  - time: 0.75
    amount: "1.5"
`)
	p := writeFile(t, dir, "scenario.yaml", `
dividends_file: divs.yaml
grid:
  price: {min: 50, max: 200, points: 31}
`)
	c, err := Load(p)
	require.NoError(t, err)
	require.Len(t, c.Dividends, 2)

	times, amounts, err := c.Schedule()
	require.NoError(t, err)
	require.Equal(t, []float64{0.25, 0.75}, times)
	require.Equal(t, []float64{1, 1.5}, amounts)
}

func TestInlineDividendsReplaceFile(t *testing.T) {
	base := []DividendConfig{{Time: 1, Amount: "1"}}
	override := []DividendConfig{{Time: 2, Amount: "2"}}
	require.Equal(t, override, MergeDividends(base, override))
	require.Equal(t, base, MergeDividends(base, nil))
}

func TestValidateRejectsBadAmount(t *testing.T) {
	c := &Config{
		Grid:      GridConfig{Price: PriceAxisConfig{Levels: []float64{80, 90}}},
		Dividends: []DividendConfig{{Time: 1, Amount: "two"}},
	}
	require.ErrorContains(t, c.Validate(), "dividends[0].amount")
}

func TestValidateRejectsBadPriceAxis(t *testing.T) {
	c := &Config{
		Grid: GridConfig{
			Price:          PriceAxisConfig{Levels: []float64{80, 90}},
			PriceAxisIndex: 3,
		},
	}
	require.Error(t, c.Validate())

	c = &Config{Grid: GridConfig{Price: PriceAxisConfig{Levels: []float64{90, 80}}}}
	require.ErrorIs(t, c.Validate(), dividend.ErrPriceAxis)

	var nilCfg *Config
	require.Error(t, nilCfg.Validate())
}

func TestLoadScheduleSkipsGrid(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "divs.yaml", `
dividends:
  - time: 0.5
    amount: "2"
`)
	_, err := Load(p)
	require.Error(t, err)

	c, err := LoadSchedule(p)
	require.NoError(t, err)
	times, amounts, err := c.Schedule()
	require.NoError(t, err)
	require.Equal(t, []float64{0.5}, times)
	require.Equal(t, []float64{2}, amounts)

	bad := writeFile(t, dir, "bad.yaml", `
dividends:
  - time: 0.5
    amount: "2,5"
`)
	_, err = LoadSchedule(bad)
	require.ErrorContains(t, err, "dividends[0].amount")
}

func TestRequireRollback(t *testing.T) {
	c := &Config{Grid: GridConfig{Price: PriceAxisConfig{Levels: []float64{80, 90}}}}
	require.NoError(t, c.Validate())
	require.ErrorIs(t, c.RequireRollback(), ErrAdjustOnly)

	c.Rollback.Maturity = 1
	require.NoError(t, c.RequireRollback())

	c.Rollback.Maturity = -1
	require.Error(t, c.Validate())
}

func unsetServerEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"API_PORT", "API_ENV", "LOG_LEVEL", "CORS_ALLOWED_ORIGINS", "ENABLE_ADJUSTER_CACHE", "ADJUSTER_CACHE_TTL"} {
		// Setenv restores the original value when the test ends.
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoadServerDefaults(t *testing.T) {
	unsetServerEnv(t)
	s, err := LoadServer()
	require.NoError(t, err)
	require.Equal(t, "8080", s.Port)
	require.Equal(t, []string{"*"}, s.AllowedOrigins)
	require.Equal(t, time.Hour, s.CacheTTL)
	require.False(t, s.CacheEnabled())
}

func TestLoadServerFromEnv(t *testing.T) {
	unsetServerEnv(t)
	t.Setenv("API_PORT", "9090")
	t.Setenv("API_ENV", "production")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("ENABLE_ADJUSTER_CACHE", "true")

	s, err := LoadServer()
	require.NoError(t, err)
	require.Equal(t, "9090", s.Port)
	require.True(t, s.Production())
	require.False(t, s.CacheEnabled())
	require.Equal(t, []string{"https://a.example", "https://b.example"}, s.AllowedOrigins)
	require.Equal(t, "DEBUG", s.Level().String())
}

func TestLoadExampleScenario(t *testing.T) {
	c, err := Load(filepath.Join("..", "..", "examples", "scenario.yaml"))
	require.NoError(t, err)
	require.Len(t, c.Dividends, 4)

	a, l, err := c.Adjuster()
	require.NoError(t, err)
	require.Equal(t, []int{201, 9}, l.Dims())
	require.Len(t, a.StoppingTimes(), 4)
}
