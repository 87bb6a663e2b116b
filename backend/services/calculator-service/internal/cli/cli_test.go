package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chargecalc/backend/services/calculator-service/internal/calculator"
	"chargecalc/backend/services/calculator-service/internal/service"
)

func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("DOTENV_FILE", "")

	var stdout, stderr bytes.Buffer
	root := NewRootCommand()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestEstimateCommand(t *testing.T) {
	out, _, err := executeCommand(t, "estimate", "--battery", "26.8", "--start", "20", "--end", "80", "--price", "0.16428")
	require.NoError(t, err)

	assert.Contains(t, out, "Charging time at 230V")
	assert.Contains(t, out, "10A")
	assert.Contains(t, out, "6h 59m")
	assert.Contains(t, out, "1h 56m")
	assert.Contains(t, out, "€3.17")
	assert.Contains(t, out, "€5.28")
	assert.Contains(t, out, "80.4 km")
	assert.Contains(t, out, "3.54 kg")
}

func TestEstimateCommandUsesDefaults(t *testing.T) {
	out, _, err := executeCommand(t, "estimate")
	require.NoError(t, err)

	assert.Contains(t, out, "€0.16428/kWh")
	assert.Contains(t, out, "€3.17")
}

func TestEstimateCommandVoltage(t *testing.T) {
	out, _, err := executeCommand(t, "estimate", "--voltage", "240", "--start", "0", "--end", "100")
	require.NoError(t, err)

	assert.Contains(t, out, "Charging time at 240V")
	assert.Contains(t, out, "2.4kW")
}

func TestEstimateCommandRejectsInvalidInput(t *testing.T) {
	_, stderr, err := executeCommand(t, "estimate", "--start=-10")
	require.Error(t, err)
	assert.True(t, errors.Is(err, calculator.ErrInvalidRange))
	assert.Contains(t, stderr, "percentages must be between 0 and 100")

	_, _, err = executeCommand(t, "estimate", "--start", "80", "--end", "20")
	assert.True(t, errors.Is(err, calculator.ErrInvalidDirection))
}

func TestRootCommandHasSubcommands(t *testing.T) {
	root := NewRootCommand()
	names := make([]string, 0)
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.Contains(t, names, "serve")
	assert.Contains(t, names, "estimate")
}

func TestEstimateCommandRejectsZeroVoltage(t *testing.T) {
	out, stderr, err := executeCommand(t, "estimate", "--voltage", "0")
	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrInvalidVoltage))
	assert.Contains(t, stderr, "voltage must be greater than 0")
	assert.Empty(t, out)
}
