package diagnostics

import (
	"errors"
	"fmt"
	"io"
)

var (
	COMPILER_ERROR_FOUND = errors.New("compiler error found")
)

type Collector struct {
	Diags []Diag
	Out   io.Writer
}

// New returns a silent collector. Set Out to print diagnostics as they are
// reported.
func New() *Collector {
	return &Collector{
		Diags: nil,
	}
}

func NewWithOutput(out io.Writer) *Collector {
	return &Collector{Out: out}
}

func (collector *Collector) ReportAndSave(diag Diag) {
	if collector.Out != nil {
		fmt.Fprint(collector.Out, diag.Error())
	}
	collector.Diags = append(collector.Diags, diag)
}

// Report saves diag and hands it back as an error, so callers can write
// `return nil, p.collector.Report(diag)`.
func (collector *Collector) Report(diag *Diag) error {
	collector.ReportAndSave(*diag)
	return diag
}

func (collector *Collector) HasErrors() bool {
	return len(collector.Diags) > 0
}

func (collector *Collector) Last() *Diag {
	if len(collector.Diags) == 0 {
		return nil
	}
	return &collector.Diags[len(collector.Diags)-1]
}

func (collector *Collector) Reset() {
	collector.Diags = nil
}
