package telemetry

import (
	"fmt"
	"io"
	"time"

	"github.com/fbdl-go/fbdl/output"
)

// slowOperation marks timings worth a look. Lexing is linear, so a single
// file taking this long usually means a pathological input.
const slowOperation = 100 * time.Millisecond

// formatTimingTree writes the tree rooted at root, one operation per line:
//
//	check main.fbd: 3ms (5932 bytes, 1210 tokens, 1.9 MB/s)
//	└─ load main.fbd: 2ms (5932 bytes, 1210 tokens, 2.8 MB/s)
//	   ├─ lex main.fbd: 1ms (5120 bytes, 1044 tokens, 4.9 MB/s)
//	   └─ lex uart.fbd: 0ms (812 bytes, 166 tokens)
func formatTimingTree(w io.Writer, root *timerNode, styles *output.Styles) {
	name := root.name
	if styles != nil {
		name = styles.Keyword(name)
	}
	writeNode(w, "", name, root, styles)

	for i, child := range root.children {
		formatNode(w, child, "", i == len(root.children)-1, styles)
	}
}

func formatNode(w io.Writer, node *timerNode, prefix string, isLast bool, styles *output.Styles) {
	branch, extension := "├─ ", "│  "
	if isLast {
		branch, extension = "└─ ", "   "
	}

	tree := prefix + branch
	if styles != nil {
		tree = styles.Dim(tree)
	}
	writeNode(w, tree, node.name, node, styles)

	for i, child := range node.children {
		formatNode(w, child, prefix+extension, i == len(node.children)-1, styles)
	}
}

func writeNode(w io.Writer, tree, name string, node *timerNode, styles *output.Styles) {
	duration := node.end.Sub(node.start)

	timing := formatDuration(duration)
	if styles != nil && tree != "" {
		timing = styles.Timing(timing, duration >= slowOperation)
	}

	_, _ = fmt.Fprintf(w, "%s%s: %s%s\n", tree, name, timing, formatVolume(node, duration))
}

// formatVolume describes how much source was processed under node, with a
// throughput once the duration is long enough to be meaningful.
func formatVolume(node *timerNode, d time.Duration) string {
	bytes, tokens := node.volume()
	if bytes == 0 && tokens == 0 {
		return ""
	}
	if d < time.Millisecond {
		return fmt.Sprintf(" (%d bytes, %d tokens)", bytes, tokens)
	}
	mbps := float64(bytes) / d.Seconds() / (1 << 20)
	return fmt.Sprintf(" (%d bytes, %d tokens, %.1f MB/s)", bytes, tokens, mbps)
}

// formatDuration formats a duration for display.
// Shows milliseconds for < 1s, seconds for >= 1s.
func formatDuration(d time.Duration) string {
	if d < time.Second {
		ms := float64(d) / float64(time.Millisecond)
		return fmt.Sprintf("%.0fms", ms)
	}
	s := float64(d) / float64(time.Second)
	return fmt.Sprintf("%.2fs", s)
}
