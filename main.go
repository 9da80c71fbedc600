//go:build windows
// +build windows

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/user"
	"strings"
	"time"

	"corp/winaudit/core"
)

const (
	toolName    = "winaudit"
	toolVersion = "1.2.0"
)

func main() {
	// ===== [Mode interaktif] =====
	// Jika double-click (tidak ada argumen), buka interactive shell.
	if len(os.Args) == 1 {
		startInteractiveShell()
		return
	}

	// ===== Flags =====
	shellFlag := flag.Bool("shell", false, "start interactive shell (banner + prompt)")
	pretty := flag.Bool("pretty", false, "Pretty-print JSON output")
	summary := flag.Bool("summary", false, "Print human-readable summary table to stderr")
	timeout := flag.Int("timeout", 45, "Global timeout in seconds")
	workers := flag.Int("workers", 5, "Max parallel checks")
	checksFlag := flag.String("checks", "", "Comma-separated check IDs to run (e.g. W-001,W-002). Empty = all.")
	outputFile := flag.String("output", "", "Output results to JSON file (e.g. -output results.json)")
	flag.Parse()

	// Jika user minta shell lewat flag
	if *shellFlag {
		startInteractiveShell()
		return
	}

	fmt.Fprintln(os.Stderr, "winaudit (defensive) - running compliance checks...")

	reader := newLiveReader()

	// ===== Pilih cek yang akan dijalankan =====
	// parse CSV, normalisasi & validasi ID; semua invalid -> fallback semua
	valid := make(map[string]bool)
	for _, id := range allCheckIDs() {
		valid[id] = true
	}

	var selected []string
	for _, raw := range strings.Split(*checksFlag, ",") {
		id := strings.ToUpper(strings.TrimSpace(raw))
		if valid[id] {
			selected = append(selected, id)
		}
	}
	if len(selected) == 0 {
		selected = allCheckIDs()
	}

	// ===== Jalankan paralel dengan timeout global =====
	scanner := core.NewScanner(core.Config{
		Timeout:      time.Duration(*timeout) * time.Second,
		MaxWorkers:   *workers,
		ShowProgress: *summary,
	})
	for _, c := range allChecks(reader) {
		scanner.RegisterCheck(c)
	}

	start := time.Now()
	results := scanner.Run(context.Background(), selected)

	// ===== Susun report =====
	hostname, _ := os.Hostname()
	username := ""
	if u, err := user.Current(); err == nil {
		username = u.Username
	}

	report := core.GenerateReport(results, core.Metadata{
		Tool:     toolName,
		Version:  toolVersion,
		ScanTime: start,
		Duration: time.Since(start).Round(time.Millisecond).String(),
		Hostname: hostname,
		Username: username,
		OS:       osVersionString(reader.OSVersion()),
		IsAdmin:  isAdmin(),
	})

	// ===== Emit output =====
	outputWriter := os.Stdout
	if *outputFile != "" {
		file, err := os.Create(*outputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to create output file '%s': %v\n", *outputFile, err)
			os.Exit(1)
		}
		defer func() {
			if err := file.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "failed to close output file: %v\n", err)
			}
		}()
		outputWriter = file
		fmt.Fprintf(os.Stderr, "Writing results to file: %s\n", *outputFile)
	}

	if err := core.WriteJSON(outputWriter, report, *pretty); err != nil {
		fmt.Fprintln(os.Stderr, "failed to emit report:", err)
		os.Exit(1)
	}

	if *summary {
		core.PrintSummaryTable(report, os.Stderr)
	}

	if *outputFile != "" {
		fmt.Fprintf(os.Stderr, "Results successfully written to: %s\n", *outputFile)
	}
}
