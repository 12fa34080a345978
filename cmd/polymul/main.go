// cmd/polymul/main.go — multiply polynomials from the command line
//
// Usage:
//   go run ./cmd/polymul -expr "(3x^3 + x^2 + 26x - 5)(x^2 + 4x)"
//   echo "(x^2 + 4x)(x^2 + 4x)" | go run ./cmd/polymul -format pretty
//
// Without -expr each input line is one product. A terminal on stdin gets a
// banner and a prompt.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/njchilds90/gopoly"
)

const banner = `Polynomial multiplier:
Here's how it should look in case you forgot:
(3x^3 + x^2 + 26x - 5)(x^2 + 4x)(x^16 - 12x^9 + -2)... etc.
So go ahead:
`

var formats = []string{"text", "pretty", "latex", "json"}

type config struct {
	Expr   string
	Format string
	Terms  bool
}

func defaultConfig() config {
	return config{Format: "text"}
}

func main() {
	cfg := defaultConfig()
	flag.StringVar(&cfg.Expr, "expr", cfg.Expr, "product to evaluate (reads stdin when empty)")
	flag.StringVar(&cfg.Format, "format", cfg.Format, "output format ("+strings.Join(formats, ", ")+")")
	flag.BoolVar(&cfg.Terms, "terms", cfg.Terms, "also print the (coefficient, exponent) pairs")
	flag.Parse()

	interactive := cfg.Expr == "" && term.IsTerminal(int(os.Stdin.Fd()))
	os.Exit(run(cfg, interactive, os.Stdin, os.Stdout, os.Stderr))
}

// run returns the process exit code: 0 when every product evaluated, 1 when
// any failed, 2 on bad flags.
func run(cfg config, interactive bool, in io.Reader, out, errOut io.Writer) int {
	if !validFormat(cfg.Format) {
		fmt.Fprintf(errOut, "error: unknown format %q (want %s)\n", cfg.Format, strings.Join(formats, ", "))
		return 2
	}

	if cfg.Expr != "" {
		if err := evaluate(cfg, cfg.Expr, out); err != nil {
			report(errOut, err)
			return 1
		}
		return 0
	}

	if interactive {
		fmt.Fprint(out, banner+"\n")
	}

	status := 0
	sc := bufio.NewScanner(in)
	for {
		if interactive {
			fmt.Fprint(out, "> ")
		}
		if !sc.Scan() {
			break
		}
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		if err := evaluate(cfg, line, out); err != nil {
			report(errOut, err)
			status = 1
		}
	}
	if err := sc.Err(); err != nil {
		fmt.Fprintf(errOut, "error reading input: %v\n", err)
		return 1
	}
	return status
}

func validFormat(f string) bool {
	for _, v := range formats {
		if v == f {
			return true
		}
	}
	return false
}

func evaluate(cfg config, line string, out io.Writer) error {
	p, err := gopoly.ParseProduct(line)
	if err != nil {
		return err
	}
	p = p.Normalize()

	if cfg.Terms {
		fmt.Fprintln(out, formatTerms(p.Terms()))
	}

	switch cfg.Format {
	case "pretty":
		fmt.Fprintln(out, p.Pretty())
	case "latex":
		fmt.Fprintln(out, p.LaTeX())
	case "json":
		j, err := gopoly.ToJSON(p)
		if err != nil {
			return fmt.Errorf("encoding result: %w", err)
		}
		fmt.Fprintln(out, j)
	default:
		fmt.Fprintln(out, p.String())
	}
	return nil
}

func formatTerms(terms []gopoly.Term) string {
	parts := make([]string, len(terms))
	for i, t := range terms {
		parts[i] = fmt.Sprintf("[%v, %v]", t.Coeff, t.Exp)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func report(w io.Writer, err error) {
	var pe *gopoly.ParseError
	if errors.As(err, &pe) {
		fmt.Fprintln(w, pe.Diagnostic())
		return
	}
	fmt.Fprintf(w, "error: %v\n", err)
}
