package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pulseboard/gqlview/parser"
	"github.com/pulseboard/gqlview/toolbar"
	"github.com/pulseboard/gqlview/tree"
)

const (
	highlightOn  = "\x1b[7m"
	highlightOff = "\x1b[0m"
)

func main() {
	pSearch := flag.String("search", "", "expand and highlight matches of this case-sensitive term")
	pCollapsed := flag.Bool("collapsed", false, "start with every node collapsed")
	pTUI := flag.Bool("tui", false, "open the interactive terminal viewer")
	pWatch := flag.Bool("watch", false, "with -tui, reload the document when the file changes")
	flag.Parse()
	argv := flag.Args()

	if *pTUI {
		if len(argv) == 0 {
			fmt.Fprintf(os.Stderr, "usage: gqlview -tui [-watch] operation.graphql\n")
			os.Exit(1)
		}
		if err := runTUI(argv[0], *pWatch); err != nil {
			fmt.Fprintf(os.Stderr, "*** %v\n", err)
			os.Exit(1)
		}
		return
	}

	text, err := readDocument(argv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "*** %v\n", err)
		os.Exit(1)
	}

	st := toolbar.State{}
	if *pCollapsed {
		st.CollapseAll()
	}
	if *pSearch != "" {
		st.ShowSearch()
		st.SetSearchTerm(*pSearch)
	}

	renderer := tree.New(parser.Parse(text))
	rows := renderer.Rows(st, st.Term())
	if len(rows) == 0 {
		// Nothing parsed; show the raw text instead.
		fmt.Print(text)
		if !strings.HasSuffix(text, "\n") {
			fmt.Println()
		}
		return
	}
	for _, row := range rows {
		fmt.Println(formatRow(row))
	}
}

// readDocument reads the operation text from the file argument, or from
// stdin when no argument is given.
func readDocument(argv []string) (string, error) {
	if len(argv) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %v", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(argv[0])
	if err != nil {
		return "", fmt.Errorf("read %s: %v", argv[0], err)
	}
	return string(data), nil
}

// formatRow renders one outline row as indented terminal text, marking
// collapsed branches and highlighting matched spans in reverse video.
func formatRow(row tree.Row) string {
	var b strings.Builder
	b.WriteString(strings.Repeat("  ", row.Depth))
	switch {
	case !row.HasChildren:
		b.WriteString("  ")
	case row.Open:
		b.WriteString("- ")
	default:
		b.WriteString("+ ")
	}
	for _, span := range row.Header {
		if span.Highlight {
			b.WriteString(highlightOn)
			b.WriteString(span.Text)
			b.WriteString(highlightOff)
			continue
		}
		b.WriteString(span.Text)
	}
	return b.String()
}
