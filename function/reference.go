package function

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// WriteReference writes a markdown reference of every function in c to w.
//
// The document has a function index table followed by one section per
// function with its signatures, description and example.
func WriteReference(w io.Writer, c *Catalog) error {
	fns := c.All()
	bw := bufio.NewWriter(w)

	bw.WriteString("# DuckDB EEA Reference Grid Function Reference\n\n")
	bw.WriteString("## Function Index \n")
	bw.WriteString("**[Scalar Functions](#scalar-functions)**\n\n")

	bw.WriteString("| Function | Summary |\n")
	bw.WriteString("| --- | --- |\n")
	for _, fn := range fns {
		fmt.Fprintf(bw, "| [`%s`](#%s) | %s |\n", fn.Name, anchor(fn.Name), fn.Summary())
	}
	bw.WriteString("\n----\n\n")

	bw.WriteString("## Scalar Functions\n\n")
	for _, fn := range fns {
		writeFunction(bw, fn)
	}

	return bw.Flush()
}

func writeFunction(bw *bufio.Writer, fn Scalar) {
	fmt.Fprintf(bw, "### %s\n\n\n", fn.Name)

	if len(fn.Signatures) == 1 {
		bw.WriteString("#### Signature\n\n")
	} else {
		bw.WriteString("#### Signatures\n\n")
	}
	bw.WriteString("```sql\n")
	for _, sig := range fn.Signatures {
		bw.WriteString(sig.String(fn.Name))
		bw.WriteByte('\n')
	}
	bw.WriteString("```\n\n")

	if fn.Description != "" {
		bw.WriteString("#### Description\n\n")
		bw.WriteString(fn.Description)
		bw.WriteString("\n\n")
	}

	if fn.Example != "" {
		bw.WriteString("#### Example\n\n")
		bw.WriteString("```sql\n")
		bw.WriteString(fn.Example)
		bw.WriteString("\n```\n\n")
	}

	bw.WriteString("----\n\n")
}

func anchor(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, " ", "-"))
}
