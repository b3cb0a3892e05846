package watch

import (
	"context"
	"crypto/sha256"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/ukaji3/cbamatrix-go/pkg/cbamatrix"
)

// GenerateFunc produces a workbook from template bytes.
type GenerateFunc func(data []byte, req cbamatrix.Request) (*cbamatrix.Result, error)

// Config configures a Watcher.
type Config struct {
	// Dir is the template directory.
	Dir string
	// OutputDir receives generated workbooks. Empty means Dir.
	OutputDir string
	// Debounce is the quiet window before a batch is processed.
	Debounce time.Duration
	// Filter selects template files. Nil admits every file.
	Filter *PatternFilter
	// Request supplies the project fields for every generation.
	Request cbamatrix.Request
}

// Outcome reports what happened to one template file.
type Outcome struct {
	Source  string
	Output  string
	Skipped bool
	Err     error
}

// Watcher regenerates a workbook whenever a template in its directory changes.
type Watcher struct {
	cfg      Config
	generate GenerateFunc
	log      *slog.Logger

	mu      sync.Mutex
	pending map[string]struct{}
	caches  map[string]*cbamatrix.Cache

	// OnOutcome, when set, observes every processed file.
	OnOutcome func(Outcome)
}

// New creates a watcher. Requests are validated up front since every
// generation shares them.
func New(cfg Config, generate GenerateFunc, log *slog.Logger) (*Watcher, error) {
	if err := cbamatrix.Validate(cfg.Request, true); err != nil {
		return nil, err
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = cfg.Dir
	}
	if cfg.Debounce <= 0 {
		cfg.Debounce = 500 * time.Millisecond
	}
	if cfg.Filter == nil {
		cfg.Filter = NewPatternFilter(nil, nil)
	}
	if log == nil {
		log = slog.Default()
	}
	return &Watcher{
		cfg:      cfg,
		generate: generate,
		log:      log,
		pending:  make(map[string]struct{}),
		caches:   make(map[string]*cbamatrix.Cache),
	}, nil
}

// Scan processes every matching template already present in the directory.
func (w *Watcher) Scan() ([]Outcome, error) {
	entries, err := os.ReadDir(w.cfg.Dir)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", w.cfg.Dir, err)
	}
	var outcomes []Outcome
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		path := filepath.Join(w.cfg.Dir, e.Name())
		if !w.cfg.Filter.Matches(path) {
			continue
		}
		outcomes = append(outcomes, w.Process(path))
	}
	return outcomes, nil
}

// Run watches the directory until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create fsnotify watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(w.cfg.Dir); err != nil {
		return fmt.Errorf("watch %s: %w", w.cfg.Dir, err)
	}
	w.log.Info("watching templates", "dir", w.cfg.Dir, "output", w.cfg.OutputDir)

	debouncer := NewDebouncer(w.cfg.Debounce, w.flush)
	defer debouncer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Write) {
				continue
			}
			if !w.cfg.Filter.Matches(event.Name) {
				continue
			}
			w.mu.Lock()
			w.pending[event.Name] = struct{}{}
			w.mu.Unlock()
			debouncer.Trigger()
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watcher error: %w", err)
		}
	}
}

func (w *Watcher) flush() {
	w.mu.Lock()
	paths := make([]string, 0, len(w.pending))
	for p := range w.pending {
		paths = append(paths, p)
	}
	w.pending = make(map[string]struct{})
	w.mu.Unlock()

	sort.Strings(paths)
	for _, p := range paths {
		w.Process(p)
	}
}

// Process generates the workbook for one template. Unchanged content with the
// same request is skipped.
func (w *Watcher) Process(path string) Outcome {
	out := w.process(path)
	switch {
	case out.Err != nil:
		w.log.Warn("template failed", "file", path, "error", out.Err)
	case out.Skipped:
		w.log.Debug("template unchanged", "file", path)
	default:
		w.log.Info("workbook generated", "file", path, "output", out.Output)
	}
	if w.OnOutcome != nil {
		w.OnOutcome(out)
	}
	return out
}

func (w *Watcher) process(path string) Outcome {
	out := Outcome{Source: path}

	data, err := os.ReadFile(path)
	if err != nil {
		out.Err = err
		return out
	}

	sum := sha256.Sum256(data)
	sig := cbamatrix.NewSignature(w.cfg.Request, fmt.Sprintf("%s#%x", path, sum), int64(len(data)))

	result, hit, err := w.cacheFor(path).Get(sig, func() (*cbamatrix.Result, error) {
		return w.generate(data, w.cfg.Request)
	})
	if err != nil {
		out.Err = err
		return out
	}

	out.Output = filepath.Join(w.cfg.OutputDir, result.Filename)
	if hit {
		out.Skipped = true
		return out
	}
	if err := writeOutput(out.Output, result.Data); err != nil {
		// Forget the result so the next change retries the write.
		w.cacheFor(path).Reset()
		out.Err = err
	}
	return out
}

func writeOutput(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func (w *Watcher) cacheFor(path string) *cbamatrix.Cache {
	w.mu.Lock()
	defer w.mu.Unlock()
	c, ok := w.caches[path]
	if !ok {
		c = &cbamatrix.Cache{}
		w.caches[path] = c
	}
	return c
}
