package telemetry

import (
	"io"

	"github.com/fbdl-go/fbdl/output"
)

// noOpCollector is returned by FromContext when telemetry is disabled.
type noOpCollector struct{}

func (noOpCollector) Start(string) Timer { return noOpTimer{} }

func (noOpCollector) Report(io.Writer, *output.Styles) {}

type noOpTimer struct{}

func (noOpTimer) End() {}

func (noOpTimer) Child(string) Timer { return noOpTimer{} }

func (noOpTimer) Record(int, int) {}
