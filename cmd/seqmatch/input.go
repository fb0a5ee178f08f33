package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// record is one named sequence.
type record struct {
	name string
	seq  []byte
}

// readRecords reads raw sequence text. Lines starting with > open a new
// record named by the header's first word; whitespace is dropped. Text
// before any header forms one record named fallback.
func readRecords(r io.Reader, fallback string) ([]record, error) {
	var (
		out []record
		cur *record
	)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<26)
	for sc.Scan() {
		line := sc.Bytes()
		if len(line) > 0 && line[0] == '>' {
			name := fallback
			if f := strings.Fields(string(line[1:])); len(f) > 0 {
				name = f[0]
			}
			out = append(out, record{name: name})
			cur = &out[len(out)-1]
			continue
		}
		if cur == nil {
			out = append(out, record{name: fallback})
			cur = &out[len(out)-1]
		}
		for _, f := range bytes.Fields(line) {
			cur.seq = append(cur.seq, f...)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// readInputs reads every named file, or stdin when there are none.
func readInputs(stdin io.Reader, files []string) ([]record, error) {
	if len(files) == 0 {
		return readRecords(stdin, "stdin")
	}
	var out []record
	for _, name := range files {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		recs, err := readRecords(f, strings.TrimSuffix(filepath.Base(name), filepath.Ext(name)))
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		out = append(out, recs...)
	}
	return out, nil
}
