package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/annkamsk/lazycalc"
	"github.com/annkamsk/lazycalc/internal/history"
)

func main() {
	log.SetFlags(0)
	var (
		evalStr = flag.String("e", "", "evaluate one expression and exit")
		dbPath  = flag.String("db", "", "history database path (default in-memory, per session)")
		ext     = flag.Bool("ext", false, "bind extension combinators: ! (digits), , (sequence), ? (conditional), $ (repeat)")
	)
	flag.Parse()

	calc := lazycalc.New()
	if *ext {
		reg := calc.Registry()
		ops := []struct {
			tok byte
			fn  lazycalc.OperatorFunc
		}{
			{'!', lazycalc.Digits},
			{',', lazycalc.Seq},
			{'?', lazycalc.If},
			{'$', lazycalc.Times},
		}
		for _, op := range ops {
			if err := reg.RegisterOperator(op.tok, op.fn); err != nil {
				log.Fatal(err)
			}
		}
	}

	var store history.Store = history.NewMemory()
	if *dbPath != "" {
		s, err := history.NewSQLite(*dbPath)
		if err != nil {
			log.Fatalf("opening history database: %v", err)
		}
		store = s
	}
	defer store.Close()

	if *evalStr != "" {
		r, err := run(calc, *evalStr)
		if err != nil {
			log.Fatal(err)
		}
		if err := store.Record(*evalStr, r); err != nil {
			log.Fatalf("recording history: %v", err)
		}
		fmt.Println(r)
		return
	}

	runREPL(calc, store)
}

// run calculates one expression, converting combinator faults such as
// division by zero into errors so a bad expression doesn't end the session.
func run(calc *lazycalc.Calc, src string) (r int, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("%v", p)
		}
	}()
	return calc.Calculate(src)
}
