package telemetry

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/alecthomas/assert/v2"

	"github.com/fbdl-go/fbdl/output"
)

func TestNoOpCollector(t *testing.T) {
	collector := noOpCollector{}

	timer := collector.Start("test")
	timer.End()

	child := timer.Child("child")
	child.Record(10, 2)
	child.End()

	var buf bytes.Buffer
	collector.Report(&buf, nil)
	assert.Equal(t, 0, buf.Len())
}

func TestFromContextReturnsNoOpWhenMissing(t *testing.T) {
	collector := FromContext(context.Background())
	assert.NotZero(t, collector)

	_, ok := collector.(noOpCollector)
	assert.True(t, ok, "expected noOpCollector, got %T", collector)
}

func TestWithCollector(t *testing.T) {
	collector := NewTimingCollector()
	ctx := WithCollector(context.Background(), collector)

	retrieved, ok := FromContext(ctx).(*TimingCollector)
	assert.True(t, ok)
	assert.True(t, retrieved == collector, "expected the same collector back")
}

func TestStartTimer(t *testing.T) {
	t.Run("WithoutRootStartsOnCollector", func(t *testing.T) {
		collector := NewTimingCollector()
		ctx := WithCollector(context.Background(), collector)

		timer := StartTimer(ctx, "lex main.fbd")
		timer.End()

		var buf bytes.Buffer
		collector.Report(&buf, nil)
		assert.Equal(t, "lex main.fbd", strings.SplitN(buf.String(), ":", 2)[0])
	})

	t.Run("NestsUnderRootTimer", func(t *testing.T) {
		collector := NewTimingCollector()
		ctx := WithCollector(context.Background(), collector)

		root := collector.Start("check")
		ctx = WithRootTimer(ctx, root)

		StartTimer(ctx, "lex a.fbd").End()
		StartTimer(ctx, "lex b.fbd").End()
		root.End()

		var buf bytes.Buffer
		collector.Report(&buf, nil)

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		assert.Equal(t, 3, len(lines), "got: %s", buf.String())
		assert.True(t, strings.HasPrefix(lines[0], "check: "))
		assert.True(t, strings.HasPrefix(lines[1], "├─ lex a.fbd: "))
		assert.True(t, strings.HasPrefix(lines[2], "└─ lex b.fbd: "))
	})

	t.Run("NoCollector", func(t *testing.T) {
		timer := StartTimer(context.Background(), "ignored")
		_, ok := timer.(noOpTimer)
		assert.True(t, ok)
		timer.End()
	})
}

func TestTimingCollectorBasic(t *testing.T) {
	collector := NewTimingCollector()

	timer := collector.Start("Operation")
	time.Sleep(10 * time.Millisecond)
	timer.End()

	var buf bytes.Buffer
	collector.Report(&buf, nil)

	out := buf.String()
	assert.Contains(t, out, "Operation")
	assert.Contains(t, out, "ms")
}

func TestTimingCollectorHierarchical(t *testing.T) {
	collector := NewTimingCollector()

	root := collector.Start("Total")
	time.Sleep(5 * time.Millisecond)

	child := root.Child("Child")
	time.Sleep(5 * time.Millisecond)
	child.End()

	child2 := root.Child("Child 2")
	time.Sleep(5 * time.Millisecond)
	child2.End()

	root.End()

	var buf bytes.Buffer
	collector.Report(&buf, nil)

	out := buf.String()
	assert.Contains(t, out, "Total")
	assert.Contains(t, out, "├─ Child:")
	assert.Contains(t, out, "└─ Child 2:")
}

func TestTimingCollectorDeepNesting(t *testing.T) {
	collector := NewTimingCollector()

	t1 := collector.Start("Level 1")
	t2 := t1.Child("Level 2")
	t3 := t2.Child("Level 3")
	time.Sleep(5 * time.Millisecond)
	t3.End()
	t2.End()
	t1.End()

	var buf bytes.Buffer
	collector.Report(&buf, nil)

	out := buf.String()
	assert.Contains(t, out, "Level 1")
	assert.Contains(t, out, "Level 2")

	var level3 string
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "Level 3") {
			level3 = line
		}
	}
	assert.True(t, strings.HasPrefix(level3, "   └─ Level 3"), "got: %q", level3)
}

func TestTimingCollectorStyledReport(t *testing.T) {
	collector := NewTimingCollector()
	root := collector.Start("check")
	root.Child("lex main.fbd").End()
	root.End()

	var buf bytes.Buffer
	collector.Report(&buf, output.NewPlainStyles(&buf))

	out := buf.String()
	assert.Contains(t, out, "check: ")
	assert.Contains(t, out, "└─ lex main.fbd: ")
	assert.NotContains(t, out, "\x1b[")
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		duration time.Duration
		want     string
	}{
		{1 * time.Millisecond, "1ms"},
		{10 * time.Millisecond, "10ms"},
		{100 * time.Millisecond, "100ms"},
		{999 * time.Millisecond, "999ms"},
		{1 * time.Second, "1.00s"},
		{1500 * time.Millisecond, "1.50s"},
		{2 * time.Second, "2.00s"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, formatDuration(tt.duration))
		})
	}
}

func TestTimingCollectorEmptyReport(t *testing.T) {
	collector := NewTimingCollector()

	var buf bytes.Buffer
	collector.Report(&buf, nil)
	assert.Equal(t, 0, buf.Len())
}

func TestTimerRecord(t *testing.T) {
	collector := NewTimingCollector()
	root := collector.Start("check main.fbd")

	a := root.Child("lex main.fbd")
	a.Record(120, 30)
	a.End()

	b := root.Child("lex uart.fbd")
	b.Record(80, 20)
	b.Record(0, 1)
	b.End()

	root.End()

	var buf bytes.Buffer
	collector.Report(&buf, nil)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, 3, len(lines), "got: %s", buf.String())
	assert.Contains(t, lines[0], "(200 bytes, 51 tokens")
	assert.Contains(t, lines[1], "(120 bytes, 30 tokens")
	assert.Contains(t, lines[2], "(80 bytes, 21 tokens")
}

func TestFormatVolume(t *testing.T) {
	node := &timerNode{}
	assert.Equal(t, "", formatVolume(node, time.Second))

	node.bytes, node.tokens = 1<<20, 10
	assert.Equal(t, " (1048576 bytes, 10 tokens)", formatVolume(node, 0))
	assert.Equal(t, " (1048576 bytes, 10 tokens, 2.0 MB/s)", formatVolume(node, 500*time.Millisecond))
}

func TestTimingCollectorConcurrentChildren(t *testing.T) {
	collector := NewTimingCollector()
	root := collector.Start("load")

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			timer := root.Child(fmt.Sprintf("lex %d.fbd", i))
			timer.Record(10, 2)
			timer.End()
		}()
	}
	wg.Wait()
	root.End()

	var buf bytes.Buffer
	collector.Report(&buf, nil)

	assert.Equal(t, 9, strings.Count(buf.String(), "\n"))
	assert.Contains(t, buf.String(), "load: ")
	assert.Contains(t, buf.String(), "(80 bytes, 16 tokens")
}
