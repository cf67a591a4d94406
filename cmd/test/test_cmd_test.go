package test

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
)

func TestTestCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "with_list", args: []string{"--list"}},
		{name: "with_short_list", args: []string{"-l"}},
		{name: "without_list", args: nil},
	}

	g := goldie.New(t)
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cmd := NewCommand()
			cmd.SetArgs(tc.args)

			var stdout bytes.Buffer
			cmd.SetOut(&stdout)

			require.NoError(t, cmd.Execute())
			g.Assert(t, tc.name, stdout.Bytes())
		})
	}
}

func TestTestCommand_RejectsArguments(t *testing.T) {
	cmd := NewCommand()
	cmd.SetArgs([]string{"extra"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	require.Error(t, cmd.Execute())
}
