package cmd

import (
	"bytes"
	"context"
	"testing"

	"github.com/kdeps/schematics/pkg/environment"
	"github.com/kdeps/schematics/pkg/logging"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCommand(t *testing.T) {
	fs := afero.NewMemMapFs()
	env := &environment.Environment{NonInteractive: "1"}
	logger := logging.NewTestLogger()

	cmd := NewRootCommand(fs, context.Background(), env, logger)
	require.NotNil(t, cmd)
	assert.Equal(t, "schematics", cmd.Use)
	assert.Contains(t, cmd.Short, "NativeScript")

	flag := cmd.PersistentFlags().Lookup("quiet")
	require.NotNil(t, flag)
	assert.Equal(t, "q", flag.Shorthand)

	var subNames []string
	for _, sub := range cmd.Commands() {
		subNames = append(subNames, sub.Use)
	}
	assert.Contains(t, subNames, "styling")
	assert.Contains(t, subNames, "config")
}

func TestRootCommandVersion(t *testing.T) {
	cmd := NewRootCommand(afero.NewMemMapFs(), context.Background(), &environment.Environment{}, logging.NewTestLogger())
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"--version"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "dev")
}
