// Package main is the main entrypoint to the rematch application
package main

import (
	"fmt"
	"os"
	"runtime/pprof"

	"github.com/tanema/rematch/src/cli"
)

func main() {
	stopProfiling := func() {}
	if path := os.Getenv("REMATCH_PROFILE"); path != "" {
		stopProfiling = runProfiling(path)
	}
	err := cli.NewRootCommand().Execute()
	stopProfiling()
	checkErr(err)
}

func checkErr(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func runProfiling(filename string) func() {
	f, err := os.Create(filename)
	checkErr(err)
	checkErr(pprof.StartCPUProfile(f))
	return pprof.StopCPUProfile
}
