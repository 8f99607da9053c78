// handasm takes a file of hand-assembled lines and produces the raw binary
// they describe. Each line has the form:
//
//	XXXX OP A1 A2
//
// where XXXX is a four hex digit address field (ignored other than as a
// line filter) and OP/A1/A2 are hex byte values separated by spaces; a line
// with more than three byte values is rejected as invalid. Any
// trailing tab-separated comment, or a "(*)" annotation, is ignored.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"regexp"
	"strconv"
	"strings"
)

var offset = flag.Int("offset", 0x0000, "Offset to start writing assembled data. Everything prior is zero filled.")

var addressLine = regexp.MustCompile(`^[0-9A-Fa-f]{4}`)

func main() {
	flag.Parse()
	if len(flag.Args()) != 2 {
		log.Fatalf("Usage: %s <input> <output>", os.Args[0])
	}
	in, out := flag.Args()[0], flag.Args()[1]

	output, err := assemble(in)
	if err != nil {
		log.Fatal(err)
	}
	if err := os.WriteFile(out, output, 0o644); err != nil {
		log.Fatalf("can't write %q: %v", out, err)
	}
}

func assemble(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("can't open %q: %w", path, err)
	}
	defer f.Close()

	output := make([]byte, *offset)

	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if !addressLine.MatchString(text) {
			continue
		}
		// Drop the address field and anything from a tab or "(*)" comment
		// marker onward.
		rest := text[4:]
		if idx := strings.Index(rest, "\t"); idx >= 0 {
			rest = rest[:idx]
		}
		if idx := strings.Index(rest, "(*)"); idx >= 0 {
			rest = rest[:idx]
		}
		toks := strings.Fields(rest)
		if len(toks) > 3 {
			return nil, fmt.Errorf("invalid line %d: %q", line, text)
		}
		for _, tok := range toks {
			b, err := strconv.ParseUint(tok, 16, 8)
			if err != nil {
				return nil, fmt.Errorf("can't parse byte on line %d (%q): %w", line, text, err)
			}
			output = append(output, byte(b))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error scanning %q: %w", path, err)
	}
	return output, nil
}
