package panel

import (
	"context"
	"fmt"
	"io"
	"sync"

	"go.uber.org/zap"
)

// WriterDisplay writes each panel to w, one fragment per Show.
type WriterDisplay struct {
	mu       sync.Mutex
	w        io.Writer
	markdown bool
	log      *zap.Logger
}

func NewWriterDisplay(w io.Writer, markdown bool, log *zap.Logger) *WriterDisplay {
	if log == nil {
		log = zap.NewNop()
	}
	return &WriterDisplay{w: w, markdown: markdown, log: log}
}

func (d *WriterDisplay) Show(_ context.Context, p Panel) {
	out := ""
	if d.markdown {
		out = RenderMarkdown(p)
	} else {
		html, err := RenderHTML(p)
		if err != nil {
			d.log.Error("render panel", zap.String("title", p.Title), zap.Error(err))
			return
		}
		out = html
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, err := fmt.Fprintln(d.w, out); err != nil {
		d.log.Warn("write panel", zap.Error(err))
	}
}

// Recorder keeps every panel it is shown, in order.
type Recorder struct {
	mu     sync.Mutex
	panels []Panel
}

func (r *Recorder) Show(_ context.Context, p Panel) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.panels = append(r.panels, p)
}

func (r *Recorder) Panels() []Panel {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Panel, len(r.panels))
	copy(out, r.panels)
	return out
}

// Last returns the most recent panel, which is what a page would be showing.
func (r *Recorder) Last() (Panel, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.panels) == 0 {
		return Panel{}, false
	}
	return r.panels[len(r.panels)-1], true
}

// Channel forwards panels to a consumer loop such as the dashboard.
type Channel struct {
	ch chan Panel
}

func NewChannel(buffer int) *Channel {
	return &Channel{ch: make(chan Panel, buffer)}
}

func (c *Channel) Show(ctx context.Context, p Panel) {
	select {
	case c.ch <- p:
	case <-ctx.Done():
	}
}

func (c *Channel) Panels() <-chan Panel {
	return c.ch
}
