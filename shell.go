//go:build windows
// +build windows

package main

import (
	"bufio" // untuk interactive shell
	"fmt"
	"os"
	"os/exec" // jalankan ulang exe sendiri dengan argumen user
	"path/filepath"
	"strings"
)

/* ======================= Interactive shell helpers ======================= */

// startInteractiveShell menampilkan banner & prompt, lalu menjalankan
// winaudit.exe sebagai subprocess dengan argumen yang diketik user
// (tanpa refactor flag).
func startInteractiveShell() {
	printBanner()

	exe, _ := os.Executable()
	exe = filepath.Clean(exe)
	rd := bufio.NewScanner(os.Stdin)

	fmt.Println("Type commands below (same as CLI flags). Examples:")
	fmt.Println("  -checks W-001 -pretty")
	fmt.Println("  -checks W-002,W-007 -summary")
	fmt.Println("  -output audit_results.json")
	fmt.Println("  -checks W-001,W-009 -pretty -output full_audit.json")
	fmt.Println("Built-ins: help, exit, quit")
	fmt.Println()

	for {
		fmt.Print("\x1b[38;2;0;255;204mWINAUDIT\x1b[0m> ")

		if !rd.Scan() {
			// EOF (Ctrl+Z / Ctrl+D) -> keluar
			fmt.Println()
			return
		}
		line := strings.TrimSpace(rd.Text())
		if line == "" {
			continue
		}

		// Built-in commands
		low := strings.ToLower(line)
		switch low {
		case "exit", "quit":
			return
		case "help", "-h", "--help":
			printHelp()
			continue
		}

		// Izinkan user ketik: "winaudit.exe -checks ..." -> buang token pertama
		args := splitCommandLine(line)
		if len(args) > 0 {
			a0 := strings.ToLower(filepath.Base(args[0]))
			if a0 == "winaudit" || a0 == "winaudit.exe" {
				args = args[1:]
			}
		}
		if len(args) == 0 {
			continue
		}

		// Jalankan ulang executable sendiri dengan argumen user
		cmd := exec.Command(exe, args...)
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		cmd.Stdin = os.Stdin
		if err := cmd.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "[error] %v\n", err)
		}
		fmt.Println() // spasi antar-run
	}
}

// printBanner menampilkan ASCII logo sederhana
func printBanner() {
	const banner = `
 _       __   ____   _   __   ___    __  __   ____    ____  ______
| |     / /  /  _/  / | / /  /   |  / / / /  / __ \  /  _/ /_  __/
| | /| / /   / /   /  |/ /  / /| | / / / /  / / / /  / /    / /
| |/ |/ /  _/ /   / /|  /  / ___ |/ /_/ /  / /_/ / _/ /    / /
|__/|__/  /___/  /_/ |_/  /_/  |_|\____/  /_____/ /___/   /_/

`

	fmt.Print(banner)
	fmt.Println(strings.Repeat("*", 70))
	fmt.Println("  WINAUDIT (defensive)          Windows compliance auditor")
	fmt.Println(strings.Repeat("*", 70))
}

// printHelp menjelaskan cara pakai dari dalam shell
func printHelp() {
	fmt.Println("Usage inside shell:")
	fmt.Println("  -checks W-001,W-002 -pretty")
	fmt.Println("  -checks W-007")
	fmt.Println("  -pretty")
	fmt.Println("  -summary")
	fmt.Println("  -output results.json")
	fmt.Println("  -checks W-001,W-009 -pretty -output audit_results.json")
	fmt.Println("Built-ins: help, exit, quit")
	fmt.Println("")
	fmt.Println("Output options:")
	fmt.Println("  -output [filename.json]  Save results to JSON file (sorted W-001 to W-009)")
	fmt.Println("  -pretty                  Format JSON with indentation")
	fmt.Println("  -summary                 Human-readable summary table on stderr")
	fmt.Println("  (no flags)               Display compact JSON to terminal")
}

// splitCommandLine memecah input menjadi argumen (mendukung kutip "…").
func splitCommandLine(s string) []string {
	args := []string{}
	cur := strings.Builder{}
	inQuote := false

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '"':
			inQuote = !inQuote
		case ' ', '\t':
			if inQuote {
				cur.WriteByte(c)
			} else if cur.Len() > 0 {
				args = append(args, cur.String())
				cur.Reset()
			}
		default:
			cur.WriteByte(c)
		}
	}
	if cur.Len() > 0 {
		args = append(args, cur.String())
	}
	return args
}
