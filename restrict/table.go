package restrict

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/multierr"

	"github.com/coregx/seqmatch/log"
)

// TableError reports an enzyme table line that could not be used.
type TableError struct {
	Line int
	Err  error
}

func (e *TableError) Error() string {
	return fmt.Sprintf("enzyme table line %d: %v", e.Line, e.Err)
}

func (e *TableError) Unwrap() error {
	return e.Err
}

// ReadTable parses an enzyme table. Each record is one line of
// whitespace-separated fields:
//
//	name pattern len ncuts blunt c1 c2 c3 c4
//
// blunt is Y or N (1/0 and true/false are accepted too). Blank lines and
// lines starting with # are skipped.
//
// Bad lines are skipped and reported together as *TableError values
// combined with multierr; the enzymes that parsed are returned either way.
func ReadTable(r io.Reader) ([]Enzyme, error) {
	var (
		out  []Enzyme
		errs error
	)
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		e, err := parseRecord(strings.Fields(text))
		if err != nil {
			log.Warnf("restrict: skipping enzyme table line %d: %v", line, err)
			errs = multierr.Append(errs, &TableError{Line: line, Err: err})
			continue
		}
		out = append(out, e)
	}
	if err := sc.Err(); err != nil {
		errs = multierr.Append(errs, err)
	}
	return out, errs
}

func parseRecord(f []string) (Enzyme, error) {
	if len(f) != 9 {
		return Enzyme{}, fmt.Errorf("%w: %d fields, want 9", ErrBadEnzyme, len(f))
	}
	var nums [6]int
	for i, idx := range []int{2, 3, 5, 6, 7, 8} {
		n, err := strconv.Atoi(f[idx])
		if err != nil {
			return Enzyme{}, fmt.Errorf("%w: field %d: %w", ErrBadEnzyme, idx+1, err)
		}
		nums[i] = n
	}
	blunt, err := parseBlunt(f[4])
	if err != nil {
		return Enzyme{}, err
	}
	e := Enzyme{
		Name:    f[0],
		Pattern: f[1],
		Len:     nums[0],
		NCuts:   nums[1],
		Blunt:   blunt,
		Cut1:    nums[2],
		Cut2:    nums[3],
		Cut3:    nums[4],
		Cut4:    nums[5],
	}
	if err := e.Validate(); err != nil {
		return Enzyme{}, err
	}
	return e, nil
}

func parseBlunt(s string) (bool, error) {
	switch strings.ToUpper(s) {
	case "Y", "1", "TRUE":
		return true, nil
	case "N", "0", "FALSE":
		return false, nil
	default:
		return false, fmt.Errorf("%w: blunt flag %q", ErrBadEnzyme, s)
	}
}
