package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/smasher164/lambda/lambda"
	"github.com/xyproto/env/v2"
)

var (
	passes   = flag.Int("passes", 0, "number of reduction passes; 0 reduces to normal form")
	maxSteps = flag.Int("max-steps", env.Int("UNTYPED_MAX_STEPS", 1000), "give up normalizing after this many passes")
	maxWork  = flag.Int("max-work", env.Int("UNTYPED_MAX_WORK", 100_000), "give up a pass after visiting this many nodes; 0 disables the limit")
	trace    = flag.Bool("trace", env.Bool("UNTYPED_TRACE"), "log every pass to stderr")
	nameless = flag.Bool("nameless", false, "print the result with de Bruijn indices")
	check    = flag.String("check", "", "run the scored test suite in the given YAML file")
)

var errUnboundedReduction = errors.New("unbounded reduction")

func usage() {
	fmt.Fprint(os.Stderr, "usage: untyped [-passes n] [-max-steps n] [-max-work n] [-trace] [-nameless] ( file | - )\n")
	fmt.Fprint(os.Stderr, "       untyped -check suite.yaml\n\n")
	fmt.Fprint(os.Stderr, "untyped reduces terms of the untyped lambda calculus in normal order.\n\n")
	flag.PrintDefaults()
	os.Exit(2)
}

func errExit(err error) {
	log.Println(err)
	os.Exit(1)
}

// step runs one pass over e, bounded by -max-work.
func step(e *lambda.Expr) error {
	if err := e.ReduceLimited(*maxWork); err != nil {
		return fmt.Errorf("%w: %v", errUnboundedReduction, err)
	}
	return nil
}

// normalize applies passes to e until its rendering stops changing and
// returns the number of passes that changed it. The pass that confirms a
// normal form counts toward limit.
func normalize(e *lambda.Expr, limit int, pass func(*lambda.Expr) error) (int, error) {
	prev := e.String()
	for n := 0; n < limit; n++ {
		if err := pass(e); err != nil {
			return n, err
		}
		cur := e.String()
		if *trace {
			log.Printf("pass %d: %s", n+1, cur)
		}
		if cur == prev {
			return n, nil
		}
		prev = cur
	}
	return limit, fmt.Errorf("%w: no normal form after %d passes", errUnboundedReduction, limit)
}

// reduceN applies exactly n passes to e.
func reduceN(e *lambda.Expr, n int, pass func(*lambda.Expr) error) error {
	for i := 0; i < n; i++ {
		if err := pass(e); err != nil {
			return err
		}
		if *trace {
			log.Printf("pass %d: %s", i+1, e)
		}
	}
	return nil
}

func readInput(name string) (string, error) {
	var b []byte
	var err error
	if name == "-" {
		b, err = io.ReadAll(os.Stdin)
	} else {
		b, err = os.ReadFile(name)
	}
	return strings.TrimSpace(string(b)), err
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("untyped: ")
	flag.Usage = usage
	flag.Parse()

	if *check != "" {
		if flag.NArg() != 0 {
			usage()
		}
		ok, err := runSuiteFile(os.Stdout, *check)
		if err != nil {
			errExit(err)
		}
		if !ok {
			os.Exit(1)
		}
		return
	}

	args := flag.Args()
	if len(args) != 1 || *passes < 0 || *maxSteps < 1 {
		usage()
	}
	src, err := readInput(args[0])
	if err != nil {
		log.Println(err)
		usage()
	}
	e, err := lambda.New(src)
	if err != nil {
		errExit(err)
	}
	if *passes > 0 {
		err = reduceN(e, *passes, step)
	} else {
		_, err = normalize(e, *maxSteps, step)
	}
	if err != nil {
		errExit(err)
	}
	if *nameless {
		fmt.Println(lambda.DeBruijnString(e.Root()))
	} else {
		fmt.Println(e)
	}
}
