package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/annkamsk/lazycalc"
	"github.com/annkamsk/lazycalc/internal/history"
)

func printBanner() {
	fmt.Println("lazycalc REPL (Ctrl+D to exit)")
	fmt.Println()
	fmt.Println("Enter a postfix expression per line, e.g. 42+")
	fmt.Println("Commands: :history [n]   show recent calculations")
	fmt.Println("          :quit          exit")
	fmt.Println()
}

func runREPL(calc *lazycalc.Calc, store history.Store) {
	// Piped input gets no prompt or banner.
	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	if interactive {
		printBanner()
	}

	sc := bufio.NewScanner(os.Stdin)
	for {
		if interactive {
			fmt.Print("> ")
		}
		if !sc.Scan() {
			break
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ":") {
			if !command(line, store) {
				return
			}
			continue
		}
		r, err := run(calc, line)
		if err != nil {
			color.Red("error: %v", err)
			continue
		}
		if err := store.Record(line, r); err != nil {
			color.Red("recording history: %v", err)
		}
		fmt.Println(r)
	}
	if err := sc.Err(); err != nil {
		log.Fatal(err)
	}
}

// command handles a :command line. It reports whether the REPL should keep
// running.
func command(line string, store history.Store) bool {
	fields := strings.Fields(line)
	switch fields[0] {
	case ":quit", ":q":
		return false
	case ":history":
		n := 10
		if len(fields) > 1 {
			k, err := strconv.Atoi(fields[1])
			if err != nil || k < 1 {
				color.Red("usage: :history [n]")
				return true
			}
			n = k
		}
		entries, err := store.Recent(n)
		if err != nil {
			color.Red("reading history: %v", err)
			return true
		}
		for _, e := range entries {
			fmt.Printf("%s = %d\t%s\n", e.Expr, e.Result, e.Ts)
		}
	default:
		color.Red("unknown command %q", fields[0])
	}
	return true
}
