package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/go-selfies/internal/constraints"
)

func TestNewRootCommand_MountsSubcommands(t *testing.T) {
	root := NewRootCommand()

	names := make(map[string]bool)
	for _, c := range root.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"encode", "decode", "alphabet", "constraints", "serve"} {
		assert.True(t, names[want], "missing subcommand %q", want)
	}
}

func TestExecute_EncodeArguments(t *testing.T) {
	t.Cleanup(func() { _ = constraints.InstallPreset(constraints.PresetDefault) })

	root := NewRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"encode", "c1ccccc1"})

	require.NoError(t, root.Execute())
}

func TestExecute_DecodeFailurePropagates(t *testing.T) {
	t.Cleanup(func() { _ = constraints.InstallPreset(constraints.PresetDefault) })

	root := NewRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"decode", "[C][Branch2_3"})

	assert.Error(t, root.Execute())
}

func TestExecute_PresetOverride(t *testing.T) {
	t.Cleanup(func() { _ = constraints.InstallPreset(constraints.PresetDefault) })

	root := NewRootCommand()
	root.SetArgs([]string{"--preset", "octet_rule", "constraints"})
	require.NoError(t, root.Execute())
	assert.Equal(t, 2, constraints.Current()["S"])
}

//Personal.AI order the ending
