// Copyright 2024 The Frank Number Filter Authors
// License MIT: http://opensource.org/licenses/MIT

package driver_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frank-number/filter/internal/driver"
)

func runDriver(t *testing.T, input string, opts driver.Options) string {
	t.Helper()
	var out, diag bytes.Buffer
	var warnings []string
	warn := func(format string, args ...any) {
		warnings = append(warnings, format)
	}
	_, err := driver.Run(strings.NewReader(input), &out, &diag, opts, warn, nil)
	require.NoError(t, err)
	return out.String()
}

func TestK4IsNotEmittedByDefault(t *testing.T) {
	got := runDriver(t, "C~\n", driver.Options{Mod: 1})
	assert.Empty(t, got)
}

func TestK4IsEmittedUnderComplement(t *testing.T) {
	got := runDriver(t, "C~\n", driver.Options{Mod: 1, Complement: true})
	assert.Equal(t, "C~\n", got)
}

func TestPetersenIsEmittedByDefault(t *testing.T) {
	got := runDriver(t, "IsP@OkWHG\n", driver.Options{Mod: 1})
	assert.Equal(t, "IsP@OkWHG\n", got)
}

func TestPetersenIsNotEmittedUnderComplement(t *testing.T) {
	got := runDriver(t, "IsP@OkWHG\n", driver.Options{Mod: 1, Complement: true})
	assert.Empty(t, got)
}

func TestConcatenatedStreamKeepsOnlyPetersen(t *testing.T) {
	got := runDriver(t, "C~\nIsP@OkWHG\n", driver.Options{Mod: 1})
	assert.Equal(t, "IsP@OkWHG\n", got)
}

func TestInvalidLineIsSkippedButStreamContinues(t *testing.T) {
	var out, diag bytes.Buffer
	var warnings []string
	warn := func(format string, args ...any) { warnings = append(warnings, format) }
	_, err := driver.Run(strings.NewReader("!not a graph\nIsP@OkWHG\n"), &out, &diag,
		driver.Options{Mod: 1}, warn, nil)
	require.NoError(t, err)
	assert.Equal(t, "IsP@OkWHG\n", out.String())
	assert.NotEmpty(t, warnings)
}

func TestShardingPartitionsTheStream(t *testing.T) {
	input := "C~\nEUxo\nIsP@OkWHG\n"
	var whole string
	{
		var out, diag bytes.Buffer
		driver.Run(strings.NewReader(input), &out, &diag, driver.Options{Mod: 1}, nil, nil)
		whole = out.String()
	}
	var sharded []string
	for r := 0; r < 3; r++ {
		var out, diag bytes.Buffer
		driver.Run(strings.NewReader(input), &out, &diag, driver.Options{Mod: 3, Res: r}, nil, nil)
		if out.Len() > 0 {
			sharded = append(sharded, strings.Split(strings.TrimRight(out.String(), "\n"), "\n")...)
		}
	}
	assert.ElementsMatch(t, strings.Split(strings.TrimRight(whole, "\n"), "\n"), sharded)
}

func TestHeuristicOnlyStillClassifiesPrism(t *testing.T) {
	got := runDriver(t, "EUxo\n", driver.Options{Mod: 1, HeuristicOnly: true})
	assert.Empty(t, got, "the 3-prism has Frank number 2 and the heuristic alone should find it")
}

func TestPrismIsEmittedUnderComplement(t *testing.T) {
	got := runDriver(t, "EUxo\n", driver.Options{Mod: 1, Complement: true})
	assert.Equal(t, "EUxo\n", got)
}

func TestK33IsEmittedUnderComplement(t *testing.T) {
	got := runDriver(t, "EFz_\n", driver.Options{Mod: 1, Complement: true})
	assert.Equal(t, "EFz_\n", got)
}

func TestHeuristicAndExactAgreeOnPrism(t *testing.T) {
	// Under -c a line is emitted iff the graph is classified as Frank
	// number 2, so equal outputs mean the two procedures agree.
	heur := runDriver(t, "EUxo\n", driver.Options{Mod: 1, HeuristicOnly: true, Complement: true})
	exct := runDriver(t, "EUxo\n", driver.Options{Mod: 1, ExactOnly: true, Complement: true})
	assert.Equal(t, heur, exct)
}
