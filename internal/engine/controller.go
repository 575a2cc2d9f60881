package engine

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/paymig/paymig/internal/cache"
	"github.com/paymig/paymig/internal/classify"
	"github.com/paymig/paymig/internal/extract"
	"github.com/paymig/paymig/internal/ignore"
	"github.com/paymig/paymig/internal/lang"
	"github.com/paymig/paymig/internal/patterns"
	"github.com/paymig/paymig/internal/score"
	"github.com/paymig/paymig/internal/types"
)

// Options configure one scan session. Treated as immutable for the run.
type Options struct {
	Mode         types.ScanMode
	Languages    []types.Language // empty = every language with patterns
	IncludeGlobs []string
	ExcludeGlobs []string
	ChangedOnly  bool // skip files whose hash matches the previous session's db
}

// Config wires a Controller. Zero-value collaborators fall back to the
// filesystem enumerator/reader and the extension-table detector.
type Config struct {
	Root            string
	Enumerator      FileEnumerator
	Reader          FileReader
	Detector        LanguageDetector
	MaxBytes        int64
	DefaultExcludes bool
	NoCache         bool
	IgnoreList      *ignore.List
}

// Result contains findings and basic session statistics.
type Result struct {
	Findings     []types.Finding
	FilesScanned int
	SkippedFiles int
	Duration     time.Duration
	Cancelled    bool
	SessionID    string
}

// ExtTableDetector is the default LanguageDetector, backed by the static
// extension table in internal/lang.
type ExtTableDetector struct{}

func (ExtTableDetector) Detect(path string) (types.Language, bool) {
	return lang.Detect(path)
}

// Controller runs scan sessions. At most one session is active per instance;
// the ignore list and findings memo persist across sessions.
type Controller struct {
	cfg Config

	mu        sync.Mutex
	running   bool
	progress  Progress
	observers []func(Progress)

	cancelReq atomic.Bool
	events    chan Progress
	ignore    *ignore.List
	memo      *cache.Memo
}

func New(cfg Config) *Controller {
	if cfg.Enumerator == nil {
		cfg.Enumerator = FSEnumerator{MaxBytes: cfg.MaxBytes, DefaultExcludes: cfg.DefaultExcludes}
	}
	if cfg.Reader == nil {
		cfg.Reader = OSReader{Root: cfg.Root}
	}
	if cfg.Detector == nil {
		cfg.Detector = ExtTableDetector{}
	}
	ign := cfg.IgnoreList
	if ign == nil {
		ign, _ = ignore.Load(filepath.Join(cfg.Root, ignore.FileName))
	}
	return &Controller{
		cfg:    cfg,
		ignore: ign,
		events: make(chan Progress, 64),
		memo:   cache.NewMemo(0),
	}
}

// ScanProject runs a session to completion or cancellation and returns only
// findings.
func (c *Controller) ScanProject(ctx context.Context, opts Options) ([]types.Finding, error) {
	res, err := c.ScanProjectWithStats(ctx, opts)
	if err != nil {
		return nil, err
	}
	return res.Findings, nil
}

// ScanProjectWithStats runs a session and returns findings with statistics.
// It fails with ErrSessionConflict while another session is running and with
// ErrEnumeration when the file set cannot be resolved; in every case the
// controller returns to idle so a new scan may start.
func (c *Controller) ScanProjectWithStats(ctx context.Context, opts Options) (Result, error) {
	var res Result
	id, err := c.begin()
	if err != nil {
		return res, err
	}
	defer c.end()
	res.SessionID = id

	if len(opts.Languages) == 0 {
		opts.Languages = patterns.Languages()
	}
	includes := dedupeGlobs(append(lang.IncludeGlobs(opts.Languages), opts.IncludeGlobs...))
	excludes := dedupeGlobs(append(c.ignore.Patterns(), opts.ExcludeGlobs...))

	files, err := c.cfg.Enumerator.Enumerate(c.cfg.Root, includes, excludes)
	if err != nil {
		return res, fmt.Errorf("%w: %v", ErrEnumeration, err)
	}

	var db cache.DB
	if c.cfg.NoCache {
		db.Entries = map[string]string{}
	} else {
		db, _ = cache.Load(c.cfg.Root)
	}
	updated := map[string]string{}

	c.mu.Lock()
	c.progress.TotalFiles = len(files)
	c.mu.Unlock()

	start := time.Now()
	var out []types.Finding
	for _, p := range files {
		if c.cancelReq.Load() || ctx.Err() != nil {
			res.Cancelled = true
			break
		}
		c.emit(c.advance(p, start))
		findings, skipped := c.scanFile(p, opts, db, updated)
		if skipped {
			res.SkippedFiles++
		} else {
			res.FilesScanned++
		}
		out = append(out, findings...)
	}
	c.emit(c.finalize(res.Cancelled))

	if !c.cfg.NoCache && len(updated) > 0 {
		if db.Entries == nil {
			db.Entries = map[string]string{}
		}
		for k, v := range updated {
			db.Entries[k] = v
		}
		_ = cache.Save(c.cfg.Root, db)
	}

	res.Findings = out
	res.Duration = time.Since(start)
	return res, nil
}

// CancelScan requests cooperative cancellation. Idempotent; a no-op when no
// session is running. The in-flight file runs to completion.
func (c *Controller) CancelScan() {
	c.mu.Lock()
	running := c.running
	c.mu.Unlock()
	if running {
		c.cancelReq.Store(true)
	}
}

// Progress returns a point-in-time copy of the session progress.
func (c *Controller) Progress() Progress {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.progress
}

// Events exposes the progress snapshot stream. Sends are non-blocking: a
// consumer that falls behind misses intermediate snapshots rather than
// stalling the scan.
func (c *Controller) Events() <-chan Progress {
	return c.events
}

// OnProgress registers an observer invoked with each snapshot. Observers run
// on the scan goroutine and should return quickly.
func (c *Controller) OnProgress(fn func(Progress)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.observers = append(c.observers, fn)
}

// AddIgnore adds an exclusion glob for future scans. Returns true when the
// pattern was not already present.
func (c *Controller) AddIgnore(pattern string) bool {
	return c.ignore.Add(pattern)
}

// IgnorePatterns returns the current exclusion globs in insertion order.
func (c *Controller) IgnorePatterns() []string {
	return c.ignore.Patterns()
}

func (c *Controller) begin() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.running {
		return "", ErrSessionConflict
	}
	c.running = true
	c.cancelReq.Store(false)
	id := uuid.NewString()
	c.progress = Progress{SessionID: id}
	return id, nil
}

func (c *Controller) end() {
	c.mu.Lock()
	c.running = false
	c.mu.Unlock()
}

// advance records that a file scan is starting and returns the snapshot to
// emit. The ETA extrapolates the average per-file time so far over the
// remaining count.
func (c *Controller) advance(path string, start time.Time) Progress {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.progress.ProcessedFiles++
	c.progress.CurrentFile = path
	c.progress.Percentage = percentage(c.progress.ProcessedFiles, c.progress.TotalFiles)
	remaining := c.progress.TotalFiles - c.progress.ProcessedFiles
	if c.progress.ProcessedFiles > 0 && remaining > 0 {
		avg := time.Since(start).Seconds() / float64(c.progress.ProcessedFiles)
		c.progress.ETASeconds = avg * float64(remaining)
	} else {
		c.progress.ETASeconds = 0
	}
	return c.progress
}

// finalize closes out the session progress. A completed run forces the
// counters to their terminal values; a cancelled run keeps the counts as
// they stood when cancellation was observed.
func (c *Controller) finalize(cancelled bool) Progress {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.progress.CurrentFile = ""
	c.progress.ETASeconds = 0
	if cancelled {
		c.progress.Cancelled = true
	} else {
		c.progress.Complete = true
		c.progress.Percentage = 100
		c.progress.ProcessedFiles = c.progress.TotalFiles
	}
	return c.progress
}

// scanFile scans one file; unreadable or binary content skips the file
// rather than failing the session.
func (c *Controller) scanFile(path string, opts Options, db cache.DB, updated map[string]string) (out []types.Finding, skipped bool) {
	data, err := c.cfg.Reader.ReadFile(path)
	if err != nil {
		return nil, true
	}
	if looksBinary(data) {
		return nil, true
	}
	h := cache.Hash(data)
	key := dbKey(path, opts.Mode)
	if opts.ChangedOnly && db.Entries != nil && db.Entries[key] == h {
		return nil, true
	}

	language, ok := c.cfg.Detector.Detect(path)
	if !ok || !langSelected(opts.Languages, language) {
		return nil, true
	}
	// Record the hash only for files this session actually scans; a file
	// passed over by the language filter must stay eligible for a later
	// changed-only session that does select its language.
	updated[key] = h

	entries := patterns.For(language, opts.Mode)
	if len(entries) == 0 {
		return nil, false
	}
	if cached, hit := c.memo.Get(h, language, opts.Mode); hit {
		return rebind(cached, path), false
	}

	content := string(data)
	lines := extract.SplitLines(content)
	for _, e := range entries {
		for _, m := range safeMatches(content, e) {
			var line string
			if m.Line-1 < len(lines) {
				line = lines[m.Line-1]
			}
			cls := classify.Classify(m.Match, opts.Mode)
			out = append(out, types.Finding{
				ID:           findingID(path, m.Line, m.Column, m.Match),
				Path:         path,
				Line:         m.Line,
				Column:       m.Column,
				Snippet:      m.Snippet,
				Match:        m.Match,
				Confidence:   score.Confidence(m.Match, line, language),
				EndpointType: cls.EndpointType,
				Language:     language,
				Framework:    e.Framework,
				ScanMode:     opts.Mode,
				ClassName:    cls.ClassName,
				MethodName:   cls.MethodName,
				EndpointURL:  cls.EndpointURL,
				DTOName:      cls.DTOName,
				LogicType:    cls.LogicType,
			})
		}
	}
	c.memo.Add(h, language, opts.Mode, out)
	return out, false
}

// dbKey scopes an incremental-cache entry to the scan mode: the same content
// yields different findings per mode, so "unchanged" is a per-mode fact.
func dbKey(path string, mode types.ScanMode) string {
	return path + "|" + string(mode)
}

// safeMatches contains a pattern execution panic to the one pattern that
// raised it; remaining patterns still run against the file.
func safeMatches(content string, e *patterns.Entry) (ms []extract.RawMatch) {
	defer func() {
		if recover() != nil {
			ms = nil
		}
	}()
	return extract.Matches(content, e)
}

// emit fans a snapshot out to observers and the event stream without ever
// blocking the scan loop.
func (c *Controller) emit(p Progress) {
	c.mu.Lock()
	obs := make([]func(Progress), len(c.observers))
	copy(obs, c.observers)
	c.mu.Unlock()
	for _, fn := range obs {
		fn(p)
	}
	select {
	case c.events <- p:
	default:
	}
}

// rebind clones memoized findings onto a different path with fresh IDs.
func rebind(findings []types.Finding, path string) []types.Finding {
	out := make([]types.Finding, len(findings))
	copy(out, findings)
	for i := range out {
		out[i].Path = path
		out[i].ID = findingID(path, out[i].Line, out[i].Column, out[i].Match)
	}
	return out
}

func findingID(path string, line, col int, match string) string {
	return cache.Hash([]byte(path + ":" + strconv.Itoa(line) + ":" + strconv.Itoa(col) + ":" + match))
}

func langSelected(langs []types.Language, l types.Language) bool {
	for _, x := range langs {
		if x == l {
			return true
		}
	}
	return false
}
