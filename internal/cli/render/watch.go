package render

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/trebuchet-org/treb-networks/internal/usecase"
)

// WatchRenderer renders reload events as they happen
type WatchRenderer struct {
	mu     sync.Mutex
	out    io.Writer
	format Format
}

// NewWatchRenderer creates a new watch renderer
func NewWatchRenderer(out io.Writer, format Format) *WatchRenderer {
	return &WatchRenderer{out: out, format: format}
}

type watchEventView struct {
	Time    time.Time `json:"time" yaml:"time"`
	Paths   []string  `json:"paths" yaml:"paths"`
	Changed []string  `json:"changed" yaml:"changed"`
	Sources []string  `json:"sources,omitempty" yaml:"sources,omitempty"`
	Error   string    `json:"error,omitempty" yaml:"error,omitempty"`
}

// RenderStart prints the watched files
func (r *WatchRenderer) RenderStart(paths []string) {
	if r.format != FormatText {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	fmt.Fprintln(r.out, sectionStyle.Sprint("Watching for changes:"))
	for _, p := range paths {
		fmt.Fprintf(r.out, "  %s\n", getRelativePath(p))
	}
	fmt.Fprintln(r.out, faintStyle.Sprint("Press Ctrl+C to stop"))
}

// Render prints one reload event. Structured formats emit one JSON object per line.
func (r *WatchRenderer) Render(event usecase.WatchEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	view := watchEventView{
		Time:    time.Now().UTC(),
		Paths:   event.Paths,
		Changed: event.Changed,
	}
	if view.Changed == nil {
		view.Changed = []string{}
	}
	if event.Snapshot != nil {
		view.Sources = event.Snapshot.Sources
	}
	if event.Err != nil {
		view.Error = event.Err.Error()
	}

	switch r.format {
	case FormatJSON:
		data, err := json.Marshal(view)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(r.out, string(data))
		return err
	case FormatYAML:
		fmt.Fprintln(r.out, "---")
		return writeStructured(r.out, r.format, view)
	}

	names := make([]string, len(event.Paths))
	for i, p := range event.Paths {
		names[i] = filepath.Base(p)
	}
	stamp := faintStyle.Sprint(view.Time.Local().Format("15:04:05"))

	switch {
	case event.Err != nil:
		fmt.Fprintf(r.out, "%s %s\n", stamp, FormatError(event.Err.Error()))
		fmt.Fprintln(r.out, faintStyle.Sprint("         keeping previous configuration"))
	case len(event.Changed) == 0:
		fmt.Fprintf(r.out, "%s reloaded %s, no network changes\n", stamp, strings.Join(names, ", "))
	default:
		fmt.Fprintf(r.out, "%s reloaded %s, changed: %s\n", stamp, strings.Join(names, ", "),
			nameStyle.Sprint(strings.Join(event.Changed, ", ")))
	}
	return nil
}
