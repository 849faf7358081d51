package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"codebundler/cmd"

	"golang.org/x/term"
)

func main() {
	wd, err := os.Getwd()
	if err != nil {
		log.Fatalf("Failed to resolve working directory: %v", err)
	}

	app := cmd.NewApp(wd)
	runErr := cmd.Execute(app, os.Args[1:])
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
	}

	// Syncing a logger bound to a pipe or /dev/null returns EINVAL; only
	// sync when stderr is a terminal or a regular file.
	if app.Logger != nil && (term.IsTerminal(int(os.Stderr.Fd())) || isRegularFile(os.Stderr)) {
		if syncErr := app.Logger.Sync(); syncErr != nil {
			if !strings.Contains(strings.ToLower(syncErr.Error()), "invalid argument") {
				log.Printf("Logger sync failed: %v", syncErr)
			}
		}
	}

	os.Exit(cmd.ExitCode(runErr))
}

// isRegularFile checks if the given file is a regular file.
func isRegularFile(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
