// SPDX-License-Identifier: Apache-2.0
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/fsnotify/fsnotify"

	"resona/internal/check"
	"resona/internal/console"
	"resona/internal/source"
)

func main() {
	watch := flag.Bool("watch", false, "re-run the check when the file changes")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: resona-cli [-watch] <file.rsn>")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}
	path := flag.Arg(0)

	ok := runCheck(path)
	if !*watch {
		if !ok {
			os.Exit(1)
		}
		return
	}
	if err := watchFile(path); err != nil {
		log.Fatal(err)
	}
}

// runCheck scans one file and prints its diagnostics. It returns false if
// the file could not be read or any diagnostic was reported.
func runCheck(path string) bool {
	startTime := time.Now()

	text, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read file: %v\n", err)
		return false
	}

	var index source.Index
	if err := index.SetText(string(text)); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
		return false
	}

	reporter := console.NewReporter(os.Stdout, path, &index)
	var checker check.Checker
	res, err := checker.Run(text, reporter)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
		return false
	}

	duration := time.Since(startTime)
	if res.Diagnostics == 0 {
		color.Green("Checked %s in %s: %d tokens, %d symbols",
			path, formatDuration(duration), res.Tokens, res.Symbols)
		return true
	}
	color.Red("Found %d problems in %s after %s",
		res.Diagnostics, path, formatDuration(duration))
	return false
}

// watchFile re-runs the check whenever the file is written. Some editors
// replace the file on save, so the path is re-added after such events.
func watchFile(path string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	if err := watcher.Add(path); err != nil {
		return err
	}
	log.Printf("watching %s", path)
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				runCheck(path)
			}
			if event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				// Wait for the editor to finish replacing the file.
				time.Sleep(10 * time.Millisecond)
				if err := watcher.Add(path); err == nil {
					runCheck(path)
				}
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("watch error: %v", err)
		}
	}
}

func formatDuration(d time.Duration) string {
	switch {
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
