package cmd

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

// execute runs the root command with fresh flag state and captured output.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	resetFlags()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

// resetFlags restores the package-level flag variables to their declared
// defaults. Cobra keeps flag values across Execute calls.
func resetFlags() {
	cfgFile = ""
	envFile = ""
	verbose = false
	logFormat = ""

	completeAPI = ""
	completeModel = ""
	completeURL = ""
	completeStrict = false
	completeMaxTries = 0
	completeTimeout = 0
	completeTrace = false

	statusAPI = ""
	statusURL = ""
	statusTimeout = 10 * time.Second

	versionJSON = false
}
