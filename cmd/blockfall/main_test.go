package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintError(t *testing.T) {
	var buf bytes.Buffer
	printError(&buf, errors.New("no scenarios"))
	assert.Equal(t, "Error: no scenarios\n", buf.String())
}

func TestUsageErrorsUseOneFormat(t *testing.T) {
	var cobraOut bytes.Buffer
	rootCmd.SetOut(&cobraOut)
	rootCmd.SetErr(&cobraOut)
	rootCmd.SetArgs([]string{"shapes", "--bogus"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Empty(t, cobraOut.String())

	var buf bytes.Buffer
	printError(&buf, err)
	assert.Equal(t, "Error: unknown flag: --bogus\n", buf.String())
}
