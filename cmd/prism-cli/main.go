// SPDX-License-Identifier: Apache-2.0
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"github.com/fsnotify/fsnotify"

	"prism/internal/errors"
	"prism/internal/parser"
)

func main() {
	args := os.Args[1:]
	watch := false
	var path string

	for _, arg := range args {
		if arg == "--watch" || arg == "-w" {
			watch = true
			continue
		}
		path = arg
	}

	if path == "" {
		fmt.Println("Usage: prism [--watch] <file.psl>")
		os.Exit(1)
	}

	ok := processFile(path)

	if watch {
		if err := watchFile(path); err != nil {
			fmt.Fprintf(os.Stderr, "watch failed: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if !ok {
		os.Exit(1)
	}
}

// processFile parses one file, prints diagnostics or the canonical AST,
// and reports whether the parse succeeded.
func processFile(path string) bool {
	startTime := time.Now()

	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read file: %v\n", err)
		return false
	}

	module, parseErrs, scanErrs := parser.ParseSource(path, string(source))

	duration := formatDuration(time.Since(startTime))

	if module == nil {
		reporter := errors.NewReporter(path, string(source))
		fmt.Print(reporter.Report(parseErrs, scanErrs))
		color.Red("Compilation failed after %s", duration)
		return false
	}

	fmt.Println(module.String())
	color.Green("Successfully processed %s in %s", path, duration)
	return true
}

// watchFile reparses whenever the file changes. The watch is on the
// directory rather than the file itself: editors replace files on save,
// which would kill a watch on the old inode.
func watchFile(path string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return err
	}

	color.Cyan("Watching %s for changes...", path)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			fmt.Println()
			processFile(path)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "watch error: %v\n", err)
		}
	}
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Minute:
		return fmt.Sprintf("%.2fmin", d.Minutes())
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1000000.0)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1000.0)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}
