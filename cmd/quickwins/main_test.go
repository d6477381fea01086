package main_test

import (
	"bytes"
	"context"
	"testing"

	main "github.com/awalter/quickwins/cmd/quickwins"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain_Run_NoArgs(t *testing.T) {
	t.Parallel()

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	m := main.NewMain()
	err := m.Run(context.Background(), nil, stdout, stderr)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no command specified")
}

func TestMain_Run_Help(t *testing.T) {
	t.Parallel()

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	m := main.NewMain()
	err := m.Run(context.Background(), []string{"--help"}, stdout, stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "audit")
}

func TestMain_Run_UnknownCommand(t *testing.T) {
	t.Parallel()

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	m := main.NewMain()
	err := m.Run(context.Background(), []string{"bogus"}, stdout, stderr)

	require.Error(t, err)
}
