package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParsePercentValid(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"1", 1},
		{"50", 50},
		{"100", 100},
		{"50%", 50},
		{"100%", 100},
	}
	for _, tc := range tests {
		got, err := parsePercent(tc.in)
		require.NoError(t, err)
		require.Equal(t, tc.want, got)
	}
}

func TestParsePercentInvalid(t *testing.T) {
	tests := []string{"0", "101", "-5", "abc", "", "%"}
	for _, in := range tests {
		_, err := parsePercent(in)
		require.Error(t, err)
	}
}

func TestDoMainMissingArgument(t *testing.T) {
	exitCode, _, stdErr := runDoMain(nil)
	require.Equal(t, 1, exitCode)
	require.Contains(t, stdErr, "Usage:")
}

func TestDoMainTooManyArguments(t *testing.T) {
	exitCode, _, stdErr := runDoMain([]string{"50%", "extra"})
	require.Equal(t, 1, exitCode)
	require.Contains(t, stdErr, "Usage:")
}

func TestDoMainInvalidPercentage(t *testing.T) {
	exitCode, _, stdErr := runDoMain([]string{"150%"})
	require.Equal(t, 1, exitCode)
	require.Contains(t, stdErr, "invalid argument")
	require.Contains(t, stdErr, "Usage:")
}

func TestDoMainHelp(t *testing.T) {
	exitCode, _, stdErr := runDoMain([]string{"-h"})
	require.Equal(t, 0, exitCode)
	require.Contains(t, stdErr, "Usage:")
}

func runDoMain(args []string) (int, string, string) {
	stdOut := &bytes.Buffer{}
	stdErr := &bytes.Buffer{}
	exitCode := doMain(args, stdOut, stdErr)
	return exitCode, stdOut.String(), stdErr.String()
}
