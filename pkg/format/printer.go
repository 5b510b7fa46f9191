// Package format renders a configuration back into canonical funding
// DSL text. Formatting is deterministic: parsing the output yields a
// configuration structurally equal to the input.
package format

import (
	"bytes"
	"sort"
	"strings"
)

const indentSize = 4

// printer accumulates indented DSL output.
type printer struct {
	output      *bytes.Buffer
	depth       int
	atLineStart bool
}

func newPrinter() *printer {
	return &printer{
		output:      &bytes.Buffer{},
		atLineStart: true,
	}
}

// String returns the rendered output with a single trailing newline.
func (p *printer) String() string {
	return strings.TrimRight(p.output.String(), "\n") + "\n"
}

func (p *printer) write(s string) {
	if p.atLineStart && len(s) > 0 {
		p.writeIndent()
	}
	p.output.WriteString(s)
}

func (p *printer) writeln(s string) {
	p.write(s)
	p.output.WriteByte('\n')
	p.atLineStart = true
}

func (p *printer) blank() {
	p.output.WriteByte('\n')
	p.atLineStart = true
}

func (p *printer) writeIndent() {
	for i := 0; i < p.depth*indentSize; i++ {
		p.output.WriteByte(' ')
	}
	p.atLineStart = false
}

func (p *printer) indent() {
	p.depth++
}

func (p *printer) dedent() {
	if p.depth > 0 {
		p.depth--
	}
}

var stringEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\t", `\t`,
	"\r", `\r`,
)

// quote renders a DSL string literal.
func quote(s string) string {
	return `"` + stringEscaper.Replace(s) + `"`
}

// sortedKeys returns map keys in lexical order. Config entries lose
// their declaration order in the model, so formatting sorts them to
// stay deterministic.
func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
