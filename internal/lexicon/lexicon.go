// Package lexicon reads the two plain-text input formats a dictionary is
// built from: the morpheme lexicon CSV and the whitespace-delimited
// connection-cost matrix, using encoding/csv for the former and
// bufio.Scanner for the latter.
package lexicon

import (
	"bufio"
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"midomoji/internal/errutil"
	"midomoji/token"
)

// Entry is one parsed lexicon row: a surface form and the token it maps to.
type Entry struct {
	Surface string
	Token   token.Token
}

// ReadLexicon parses a CSV lexicon of the form
// "surface,left_id,right_id,cost" with no header row, in the order the
// file presents them (insertion order feeds trie construction directly).
func ReadLexicon(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 4
	cr.ReuseRecord = true

	var entries []Entry
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errutil.InvalidInputFormat("reading lexicon row: %v", err)
		}
		leftID, err := strconv.ParseUint(rec[1], 10, 16)
		if err != nil {
			return nil, errutil.InvalidInputFormat("lexicon left_id %q: %v", rec[1], err)
		}
		rightID, err := strconv.ParseUint(rec[2], 10, 16)
		if err != nil {
			return nil, errutil.InvalidInputFormat("lexicon right_id %q: %v", rec[2], err)
		}
		cost, err := strconv.ParseInt(rec[3], 10, 16)
		if err != nil {
			return nil, errutil.InvalidInputFormat("lexicon cost %q: %v", rec[3], err)
		}
		entries = append(entries, Entry{
			Surface: rec[0],
			Token: token.Token{
				LeftID:  uint16(leftID),
				RightID: uint16(rightID),
				Cost:    int16(cost),
			},
		})
	}
	return entries, nil
}

// MatrixDims is the "left_max right_max" header line of a connection-cost
// matrix file.
type MatrixDims struct {
	LeftMax, RightMax int
}

// MatrixCell is one "left_id right_id cost" data row.
type MatrixCell struct {
	LeftID, RightID int
	Cost            int16
}

// ReadMatrix parses a whitespace-delimited matrix file: a single
// "left_max right_max" header line followed by "left_id right_id cost"
// rows, one per line.
func ReadMatrix(r io.Reader) (MatrixDims, []MatrixCell, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if !sc.Scan() {
		return MatrixDims{}, nil, errutil.InvalidInputFormat("matrix file empty: missing left_max/right_max header")
	}
	dims, err := parseDims(sc.Text())
	if err != nil {
		return MatrixDims{}, nil, err
	}

	var cells []MatrixCell
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 3 {
			return MatrixDims{}, nil, errutil.InvalidInputFormat("matrix row %q: expected 3 fields, got %d", line, len(fields))
		}
		leftID, err := strconv.Atoi(fields[0])
		if err != nil {
			return MatrixDims{}, nil, errutil.InvalidInputFormat("matrix left_id %q: %v", fields[0], err)
		}
		rightID, err := strconv.Atoi(fields[1])
		if err != nil {
			return MatrixDims{}, nil, errutil.InvalidInputFormat("matrix right_id %q: %v", fields[1], err)
		}
		cost, err := strconv.ParseInt(fields[2], 10, 16)
		if err != nil {
			return MatrixDims{}, nil, errutil.InvalidInputFormat("matrix cost %q: %v", fields[2], err)
		}
		cells = append(cells, MatrixCell{LeftID: leftID, RightID: rightID, Cost: int16(cost)})
	}
	if err := sc.Err(); err != nil {
		return MatrixDims{}, nil, errutil.IOError("scanning matrix file: %v", err)
	}
	return dims, cells, nil
}

func parseDims(line string) (MatrixDims, error) {
	fields := strings.Fields(strings.TrimSpace(line))
	if len(fields) != 2 {
		return MatrixDims{}, errutil.InvalidInputFormat("matrix header %q: expected left_max right_max", line)
	}
	leftMax, err := strconv.Atoi(fields[0])
	if err != nil {
		return MatrixDims{}, errutil.InvalidInputFormat("matrix left_max %q: %v", fields[0], err)
	}
	rightMax, err := strconv.Atoi(fields[1])
	if err != nil {
		return MatrixDims{}, errutil.InvalidInputFormat("matrix right_max %q: %v", fields[1], err)
	}
	return MatrixDims{LeftMax: leftMax, RightMax: rightMax}, nil
}
