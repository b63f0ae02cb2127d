/*
Vela starts an interactive expression-evaluator session.

It reads lines of input, one expression or assignment at a time, and
prints the result of each. The interpreter keeps the `ans` identifier
bound to the most recent non-void result (spec §3/§9), so the identifier
"ans" can be used in later input to refer back to whatever was last
computed.

Usage:

	vela [flags]

The flags are:

	-v, --version
		Print the current version and exit.

	-c, --command COMMANDS
		Immediately run the given input line(s) at start, separated by
		the ";" character, then continue the interactive session.

	--debug-ast
		Dump the parsed AST as JSON to stderr before evaluating each
		line.

Once a session has started, input is read from stdin. Three session
commands are recognized in addition to ordinary expressions:

	!exit   ends the session
	!list   prints every currently bound identifier and its value
	!init   resets the environment back to its starting state
*/
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"

	"github.com/velalang/vela"
	"github.com/velalang/vela/internal/lexer"
	"github.com/velalang/vela/internal/parser"
	"github.com/velalang/vela/internal/values"
)

const versionString = "vela 0.1.0"

const (
	exitSuccess = iota
	exitRuntimeError
)

var (
	flagVersion = pflag.BoolP("version", "v", false, "print the version and exit")
	flagCommand = pflag.StringP("command", "c", "", "run the given input line(s) immediately, separated by ';'")
	flagDebug   = pflag.Bool("debug-ast", false, "dump the parsed AST as JSON before evaluating each line")
)

// lineReader abstracts over readline's interactive editing and a plain
// buffered stdin reader, the way dekarrin-tunaq's internal/input does:
// readline when attached to a real terminal, direct scanning otherwise
// (piped input, redirected files).
type lineReader interface {
	Readline() (string, error)
	Close() error
}

type directReader struct{ r *bufio.Reader }

func (d *directReader) Readline() (string, error) {
	line, err := d.r.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (d *directReader) Close() error { return nil }

func newLineReader() (lineReader, error) {
	if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		rl, err := readline.NewEx(&readline.Config{Prompt: "> "})
		if err != nil {
			return nil, fmt.Errorf("create readline config: %w", err)
		}
		return rl, nil
	}
	return &directReader{r: bufio.NewReader(os.Stdin)}, nil
}

func main() {
	returnCode := exitSuccess
	defer func() { os.Exit(returnCode) }()

	pflag.Parse()

	if *flagVersion {
		fmt.Println(versionString)
		return
	}

	sess := vela.New(nil)
	sess.Init()

	var startLines []string
	if *flagCommand != "" {
		startLines = strings.Split(*flagCommand, ";")
	}

	rl, err := newLineReader()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		returnCode = exitRuntimeError
		return
	}
	defer rl.Close()

	for _, line := range startLines {
		runLine(sess, strings.TrimSpace(line))
	}

	for {
		line, err := rl.Readline()
		if err != nil {
			if err == io.EOF || err == readline.ErrInterrupt {
				return
			}
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
			returnCode = exitRuntimeError
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "!exit" {
			return
		}
		runLine(sess, line)
	}
}

func runLine(sess *vela.Session, line string) {
	switch line {
	case "":
		return
	case "!exit":
		os.Exit(exitSuccess)
	case "!list":
		printEnvironment(sess)
		return
	case "!init":
		sess.Init()
		return
	}

	if *flagDebug {
		dumpAST(line)
	}

	result, err := sess.Exec(line)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		return
	}
	if result.Kind() == values.VoidKind {
		return
	}
	fmt.Println(formatResult(result))
}

// formatResult renders a Number with thousands separators via
// go-humanize, and a List as its bracketed element sequence.
func formatResult(v values.Value) string {
	if n, ok := v.(values.Number); ok {
		return humanize.CommafWithDigits(float64(n), 6)
	}
	return v.String()
}

func printEnvironment(sess *vela.Session) {
	for _, name := range sess.Names() {
		v := sess.Environment()[name]
		fmt.Printf("%s = %s\n", name, v.String())
	}
}

// dumpAST prints the parsed tree for line as JSON to stderr, mirroring
// the debug-build AST dump of the reference implementation (gated there
// behind NDEBUG, gated here behind --debug-ast instead of a build tag so
// a single release binary can still offer it).
func dumpAST(line string) {
	toks, err := lexer.Tokenize(line)
	if err != nil {
		fmt.Fprintf(os.Stderr, "debug-ast: %s\n", err)
		return
	}
	root, err := parser.Parse(toks)
	if err != nil {
		fmt.Fprintf(os.Stderr, "debug-ast: %s\n", err)
		return
	}
	enc := json.NewEncoder(os.Stderr)
	enc.SetIndent("", "  ")
	_ = enc.Encode(astJSON(root))
}
