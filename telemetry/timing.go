package telemetry

import (
	"io"
	"sync"
	"time"

	"github.com/fbdl-go/fbdl/output"
)

// TimingCollector builds a tree of timed operations. Each node may carry the
// number of bytes and tokens lexed under it, which the report turns into a
// throughput figure.
//
// The collector is safe for concurrent use.
type TimingCollector struct {
	mu      sync.Mutex
	root    *timerNode
	current *timerNode // Parent for the next Start
}

type timerNode struct {
	name     string
	start    time.Time
	end      time.Time
	bytes    int
	tokens   int
	parent   *timerNode
	children []*timerNode
}

// volume returns the bytes and tokens recorded on n, or the sum over its
// children when n recorded nothing itself.
func (n *timerNode) volume() (bytes, tokens int) {
	if n.bytes > 0 || n.tokens > 0 {
		return n.bytes, n.tokens
	}
	for _, child := range n.children {
		b, t := child.volume()
		bytes += b
		tokens += t
	}
	return bytes, tokens
}

// NewTimingCollector creates a new timing collector.
func NewTimingCollector() *TimingCollector {
	return &TimingCollector{}
}

// Start begins timing an operation. The first timer becomes the root; later
// ones nest under the most recently started timer that has not ended.
func (c *TimingCollector) Start(name string) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()

	node := c.attach(name, c.current)
	if c.root == nil {
		c.root = node
	}
	c.current = node

	return &timingTimer{collector: c, node: node}
}

// attach creates a running node under parent. Callers hold c.mu.
func (c *TimingCollector) attach(name string, parent *timerNode) *timerNode {
	node := &timerNode{name: name, start: time.Now(), parent: parent}
	if parent != nil {
		parent.children = append(parent.children, node)
	}
	return node
}

// Report writes the timing tree. Nothing is written before the first Start.
func (c *TimingCollector) Report(w io.Writer, styles *output.Styles) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.root == nil {
		return
	}

	formatTimingTree(w, c.root, styles)
}

type timingTimer struct {
	collector *TimingCollector
	node      *timerNode
}

func (t *timingTimer) End() {
	t.collector.mu.Lock()
	defer t.collector.mu.Unlock()

	t.node.end = time.Now()
	if t.collector.current == t.node && t.node.parent != nil {
		t.collector.current = t.node.parent
	}
}

// Child starts a timer nested directly under t, regardless of which timer
// the collector considers current.
func (t *timingTimer) Child(name string) Timer {
	t.collector.mu.Lock()
	defer t.collector.mu.Unlock()

	return &timingTimer{
		collector: t.collector,
		node:      t.collector.attach(name, t.node),
	}
}

func (t *timingTimer) Record(bytes, tokens int) {
	t.collector.mu.Lock()
	defer t.collector.mu.Unlock()

	t.node.bytes += bytes
	t.node.tokens += tokens
}
