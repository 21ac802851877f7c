package cmd

import (
	"bytes"
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_Flags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected Options
	}{
		{
			name:     "serve by default",
			args:     []string{},
			expected: Options{},
		},
		{
			name:     "migrate then serve",
			args:     []string{"--migrate"},
			expected: Options{Migrate: true},
		},
		{
			name:     "seed only implies migrate",
			args:     []string{"--seed-only"},
			expected: Options{Migrate: true, SeedOnly: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Options
			calls := 0
			cmd := NewRootCmd(func(_ *cobra.Command, opts Options) error {
				calls++
				got = opts
				return nil
			})

			buf := new(bytes.Buffer)
			cmd.SetOut(buf)
			cmd.SetErr(buf)
			cmd.SetArgs(tt.args)

			require.NoError(t, cmd.Execute())
			assert.Equal(t, 1, calls)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestRootCmd_RunErrorIsReturned(t *testing.T) {
	boom := errors.New("database unreachable")
	cmd := NewRootCmd(func(*cobra.Command, Options) error { return boom })
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"--migrate"})

	assert.ErrorIs(t, cmd.Execute(), boom)
}

func TestRootCmd_UnknownFlag(t *testing.T) {
	called := false
	cmd := NewRootCmd(func(*cobra.Command, Options) error {
		called = true
		return nil
	})
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"--fetch-db"})

	assert.Error(t, cmd.Execute())
	assert.False(t, called)
}

func TestRootCmdHelp(t *testing.T) {
	cmd := NewRootCmd(func(*cobra.Command, Options) error {
		t.Fatal("help must not start the server")
		return nil
	})

	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"--help"})

	require.NoError(t, cmd.Execute())
	output := buf.String()
	assert.Contains(t, output, "Meal planning API for caretakers and diners")
	assert.Contains(t, output, "Usage:")
	assert.Contains(t, output, "healthy-meal-planner [flags]")
	assert.Contains(t, output, "--migrate")
	assert.Contains(t, output, "--seed-only")
}
