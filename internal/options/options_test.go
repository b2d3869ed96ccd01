package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	limit   int
	name    string
	enabled bool
}

var errNegativeLimit = errors.New("limit must not be negative")

func withLimit(n int) Option[*testConfig] {
	return New(func(c *testConfig) error {
		if n < 0 {
			return errNegativeLimit
		}
		c.limit = n

		return nil
	})
}

func withName(name string) Option[*testConfig] {
	return NoError(func(c *testConfig) { c.name = name })
}

func withEnabled(enabled bool) Option[*testConfig] {
	return NoError(func(c *testConfig) { c.enabled = enabled })
}

func TestApply(t *testing.T) {
	cfg := &testConfig{}

	err := Apply(cfg, withLimit(10), withName("frame"), withEnabled(true))
	require.NoError(t, err)
	require.Equal(t, &testConfig{limit: 10, name: "frame", enabled: true}, cfg)
}

func TestApply_LaterOptionWins(t *testing.T) {
	cfg := &testConfig{}

	require.NoError(t, Apply(cfg, withLimit(1), withLimit(2)))
	require.Equal(t, 2, cfg.limit)
}

func TestApply_StopsAtFirstError(t *testing.T) {
	cfg := &testConfig{}

	err := Apply(cfg, withName("before"), withLimit(-1), withName("after"))
	require.ErrorIs(t, err, errNegativeLimit)
	require.Equal(t, "before", cfg.name)
}

func TestApply_SkipsNil(t *testing.T) {
	cfg := &testConfig{}

	require.NoError(t, Apply(cfg, nil, withEnabled(true)))
	require.True(t, cfg.enabled)
}

func TestApply_NoOptions(t *testing.T) {
	cfg := &testConfig{limit: 3}

	require.NoError(t, Apply(cfg))
	require.Equal(t, 3, cfg.limit)
}
