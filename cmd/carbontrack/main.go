package main

import (
	"os"

	"github.com/ecotrace/carbontrack/internal/cli"
	"github.com/ecotrace/carbontrack/pkg/version"
)

func main() {
	os.Exit(run())
}

// run executes the root command and maps failure to a non-zero exit code.
// Split from main so it can be exercised in tests.
func run() int {
	root := cli.NewRootCmd(version.GetVersion())
	if err := root.Execute(); err != nil {
		return 1
	}
	return 0
}
