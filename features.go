package main

import (
	"fmt"
	"io"
	"runtime"
	"sort"
)

// Version is the release of the viewer and decoder.
const Version = "1.0.0"

// compiledFeatures tracks build-time feature flags via init() registration.
var compiledFeatures []string

func printFeatures(w io.Writer) {
	fmt.Fprintf(w, "Teletext Engine %s\n", Version)
	fmt.Fprintf(w, "  Go version: %s\n", runtime.Version())
	fmt.Fprintf(w, "  OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Compiled features:")

	sort.Strings(compiledFeatures)
	for _, f := range compiledFeatures {
		fmt.Fprintf(w, "  %s\n", f)
	}
	if len(compiledFeatures) == 0 {
		fmt.Fprintln(w, "  (none)")
	}
}
