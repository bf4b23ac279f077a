package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/samber/lo"
	"github.com/smasher164/lambda/lambda"
	"gopkg.in/yaml.v3"
)

// A section is a titled group of cases worth score points if all pass.
type section struct {
	Title string     `yaml:"title"`
	Score int        `yaml:"score"`
	Skip  bool       `yaml:"skip"`
	Cases []testCase `yaml:"cases"`
}

// A testCase reduces Input Passes times and compares the rendering with
// Want, or compares up to bound-variable names if Alpha is set.
type testCase struct {
	Input  string `yaml:"input"`
	Passes int    `yaml:"passes"`
	Want   string `yaml:"want"`
	Alpha  bool   `yaml:"alpha"`
}

type result int

const (
	passed result = iota
	failed
	skipped
)

func (r result) String() string {
	return [...]string{"PASS", "FAIL", "SKIP"}[r]
}

func (c testCase) run() error {
	e, err := lambda.New(c.Input)
	if err != nil {
		return err
	}
	if err := reduceN(e, c.Passes, step); err != nil {
		return err
	}
	if c.Alpha {
		want, err := lambda.Parse(c.Want)
		if err != nil {
			return fmt.Errorf("want: %w", err)
		}
		if lambda.AlphaEquivalent(e.Root(), want) {
			return nil
		}
	} else if e.String() == c.Want {
		return nil
	}
	return fmt.Errorf("evaluating %s\n    expected value: %s\n    actual value:   %s", c.Input, c.Want, e)
}

func (s section) run(w io.Writer) result {
	fmt.Fprintf(w, "(%2d%%)  %s\n", s.Score, s.Title)
	if s.Skip {
		return skipped
	}
	for i, c := range s.Cases {
		if err := c.run(); err != nil {
			fmt.Fprintf(w, "case %d: %v\n", i+1, err)
			return failed
		}
	}
	return passed
}

// runSuite runs every section and reports whether none failed.
func runSuite(w io.Writer, sections []section) bool {
	results := lo.Map(sections, func(s section, _ int) result {
		r := s.run(w)
		fmt.Fprintln(w, strings.Repeat("-", 56)+r.String())
		return r
	})
	score := lo.Reduce(sections, func(sum int, s section, i int) int {
		if results[i] == passed {
			return sum + s.Score
		}
		return sum
	}, 0)
	fmt.Fprintf(w, "\nestimated total score: %d%%\n", score)
	return !lo.Contains(results, failed)
}

func runSuiteFile(w io.Writer, name string) (bool, error) {
	b, err := os.ReadFile(name)
	if err != nil {
		return false, err
	}
	var sections []section
	if err := yaml.Unmarshal(b, &sections); err != nil {
		return false, fmt.Errorf("%s: %w", name, err)
	}
	return runSuite(w, sections), nil
}
