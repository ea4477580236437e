// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pubmed

import (
	"bufio"
	"io"
	"strings"
)

// RawRecord is one parsed MEDLINE record: field tag → values seen for that
// tag, in input order. Repeated tags (AU, AD, AID) accumulate. A RawRecord
// is consumed once by Normalize and never mutated.
type RawRecord map[string][]string

// First returns the first value recorded for tag, or "" when absent.
func (r RawRecord) First(tag string) string {
	if vals := r[tag]; len(vals) > 0 {
		return vals[0]
	}
	return ""
}

// ParseMedline reads MEDLINE flat-file records from r. Records are
// separated by blank lines. A field line carries a tag padded to four
// characters followed by "- " and the value (e.g. "TI  - Some title");
// continuation lines start with six spaces and extend the previous value.
// Malformed lines are skipped rather than failing the batch.
func ParseMedline(r io.Reader) ([]RawRecord, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var records []RawRecord
	var cur RawRecord
	var curTag string

	flush := func() {
		if len(cur) > 0 {
			records = append(records, cur)
		}
		cur = nil
		curTag = ""
	}

	for sc.Scan() {
		line := sc.Text()

		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}

		// Continuation line: fold into the previous value.
		if strings.HasPrefix(line, "      ") && curTag != "" {
			vals := cur[curTag]
			vals[len(vals)-1] += " " + strings.TrimSpace(line)
			continue
		}

		if len(line) < 7 || line[4:6] != "- " {
			continue
		}
		tag := strings.TrimSpace(line[:4])
		value := strings.TrimSpace(line[6:])
		if tag == "" {
			continue
		}

		if cur == nil {
			cur = RawRecord{}
		}
		cur[tag] = append(cur[tag], value)
		curTag = tag
	}
	flush()

	return records, sc.Err()
}
