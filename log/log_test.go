package log

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	lines []string
}

func (r *recorder) Errorf(format string, args ...any) { r.add("E", fmt.Sprintf(format, args...)) }
func (r *recorder) Error(args ...any)                 { r.add("E", fmt.Sprint(args...)) }
func (r *recorder) Warnf(format string, args ...any)  { r.add("W", fmt.Sprintf(format, args...)) }
func (r *recorder) Warn(args ...any)                  { r.add("W", fmt.Sprint(args...)) }
func (r *recorder) Infof(format string, args ...any)  { r.add("I", fmt.Sprintf(format, args...)) }
func (r *recorder) Info(args ...any)                  { r.add("I", fmt.Sprint(args...)) }
func (r *recorder) Debugf(format string, args ...any) { r.add("D", fmt.Sprintf(format, args...)) }
func (r *recorder) Debug(args ...any)                 { r.add("D", fmt.Sprint(args...)) }

func (r *recorder) add(lvl, msg string) { r.lines = append(r.lines, lvl+":"+msg) }

func TestSetLogger(t *testing.T) {
	prev := current()
	defer SetLogger(prev)

	r := &recorder{}
	SetLogger(r)

	Warnf("enzyme %s skipped", "EcoRI")
	Debug("selected ", "shift-or")
	Infof("%d hits", 3)
	Error("boom")

	assert.Equal(t, []string{
		"W:enzyme EcoRI skipped",
		"D:selected shift-or",
		"I:3 hits",
		"E:boom",
	}, r.lines)
}
