package application

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"github.com/hailam/pokedat/internal/ports"
	"github.com/hailam/pokedat/internal/tbl"
	"github.com/hailam/pokedat/internal/textfile"
	"github.com/hailam/pokedat/internal/utils"
)

// TextService orchestrates container decoding and encoding over files and
// directory trees: codec in, serializer out, and the reverse.
type TextService struct {
	cfg     *textfile.Config
	factory ports.SerializerFactory
	logger  *log.Logger

	// Remap enables private-use character remapping for every decode and
	// encode this service performs.
	Remap bool
}

// NewTextService constructs a TextService for one game configuration.
func NewTextService(cfg *textfile.Config, factory ports.SerializerFactory) *TextService {
	return &TextService{
		cfg:     cfg,
		factory: factory,
		logger:  log.New(os.Stderr, "", 0),
	}
}

// SetLogger replaces the destination for batch progress and warnings.
func (s *TextService) SetLogger(logger *log.Logger) {
	s.logger = logger
}

func (s *TextService) infof(format string, args ...any)  { s.logger.Printf("[INFO] "+format, args...) }
func (s *TextService) warnf(format string, args ...any)  { s.logger.Printf("[WARN] "+format, args...) }
func (s *TextService) errorf(format string, args ...any) { s.logger.Printf("[ERROR] "+format, args...) }

// ReadFile decodes one .dat file into a serialized document under outRoot.
// When outRoot is empty the decoded lines are printed to the log instead.
// The paired .tbl sidecar enriches the document when present; its absence is
// only a warning.
func (s *TextService) ReadFile(datPath, inputRoot, outRoot string, format ports.Format) error {
	data, err := os.ReadFile(datPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", datPath, err)
	}
	lines, err := textfile.GetStrings(data, s.cfg, s.Remap)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", datPath, err)
	}

	if outRoot == "" {
		s.infof("--- %s ---", filepath.Base(datPath))
		for _, line := range lines {
			s.infof("%s", line)
		}
		return nil
	}

	labels := s.loadLabels(datPath)
	doc := buildDocument(lines, labels)

	serializer, err := s.factory.For(format)
	if err != nil {
		return err
	}
	out, err := serializer.Marshal(doc)
	if err != nil {
		return fmt.Errorf("serializing %s: %w", datPath, err)
	}
	outPath, err := utils.OutputPath(datPath, inputRoot, outRoot, serializer.Ext())
	if err != nil {
		return err
	}
	return writeFileAll(outPath, out)
}

// WriteFile compiles one serialized document into a .dat container under
// outRoot. Entry flags are zero; zeros are valid.
func (s *TextService) WriteFile(srcPath, inputRoot, outRoot string, format ports.Format) error {
	serializer, err := s.factory.For(format)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(srcPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", srcPath, err)
	}
	doc, err := serializer.Unmarshal(data)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", srcPath, err)
	}
	lines := doc.Texts()
	bin, err := textfile.GetBytes(lines, make([]uint16, len(lines)), s.cfg, s.Remap)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", srcPath, err)
	}
	outPath, err := utils.OutputPath(srcPath, inputRoot, outRoot, ".dat")
	if err != nil {
		return err
	}
	return writeFileAll(outPath, bin)
}

// ReadDir decodes every .dat under root, mirroring the tree under outRoot.
func (s *TextService) ReadDir(root, outRoot string, format ports.Format) (*BatchResult, error) {
	return s.processDir(root, ".dat", func(path string) error {
		return s.ReadFile(path, root, outRoot, format)
	})
}

// WriteDir compiles every serialized document under root into .dat files
// mirrored under outRoot.
func (s *TextService) WriteDir(root, outRoot string, format ports.Format) (*BatchResult, error) {
	serializer, err := s.factory.For(format)
	if err != nil {
		return nil, err
	}
	return s.processDir(root, serializer.Ext(), func(path string) error {
		return s.WriteFile(path, root, outRoot, format)
	})
}

// BatchResult accumulates per-file outcomes of a directory run.
type BatchResult struct {
	Total       int
	Succeeded   int
	Failed      int
	FailedFiles []string
	Elapsed     time.Duration
}

// processDir runs fn over every matching file under root with a bounded
// worker pool. Per-file failures are accounted, not fatal.
func (s *TextService) processDir(root, ext string, fn func(path string) error) (*BatchResult, error) {
	files, err := utils.ListFiles(root, ext)
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}
	res := &BatchResult{Total: len(files)}
	if len(files) == 0 {
		s.warnf("no %s files found in %s or subfolders", ext, root)
		return res, nil
	}

	workers := runtime.NumCPU() * 2
	if workers > len(files) {
		workers = len(files)
	}
	s.infof("starting processing of %d files with %d workers", len(files), workers)
	start := time.Now()

	type outcome struct {
		path string
		err  error
	}
	jobs := make(chan string)
	results := make(chan outcome)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				results <- outcome{path: path, err: fn(path)}
			}
		}()
	}
	go func() {
		for _, f := range files {
			jobs <- f
		}
		close(jobs)
	}()
	go func() {
		wg.Wait()
		close(results)
	}()

	done := 0
	for out := range results {
		done++
		rel, relErr := filepath.Rel(root, out.path)
		if relErr != nil {
			rel = out.path
		}
		if out.err != nil {
			res.Failed++
			res.FailedFiles = append(res.FailedFiles, rel)
			s.errorf("[%d/%d] failed: %s: %v", done, len(files), rel, out.err)
			continue
		}
		res.Succeeded++
		s.infof("[%d/%d] processed: %s", done, len(files), rel)
	}

	res.Elapsed = time.Since(start)
	perSecond := 0.0
	if res.Elapsed > 0 {
		perSecond = float64(res.Total) / res.Elapsed.Seconds()
	}
	s.infof("completed %d files in %.2f seconds (%.2f files/sec), %d failed",
		res.Total, res.Elapsed.Seconds(), perSecond, res.Failed)
	for _, f := range res.FailedFiles {
		s.errorf("  - %s", f)
	}
	return res, nil
}

// loadLabels reads the sidecar paired with datPath. Absence or corruption
// degrades to no labels with a warning; decoding does not depend on it.
func (s *TextService) loadLabels(datPath string) []tbl.Label {
	labels, err := tbl.ReadFile(tbl.PathFor(datPath))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.warnf(".tbl file not found: %s", tbl.PathFor(datPath))
		} else {
			s.warnf("%v", err)
		}
		return nil
	}
	return labels
}

// buildDocument joins decoded lines with sidecar labels by index. Lines
// beyond the label list get placeholder identities.
func buildDocument(lines []string, labels []tbl.Label) *ports.Document {
	doc := &ports.Document{Entries: make([]ports.Entry, len(lines))}
	for i, line := range lines {
		entry := ports.Entry{ID: fmt.Sprintf("UNKNOWN_%d", i), Hash: "N/A", Text: line}
		if i < len(labels) {
			entry.ID = labels[i].ID
			entry.Hash = fmt.Sprintf("0x%x", labels[i].Hash)
		}
		doc.Entries[i] = entry
	}
	return doc
}

// writeFileAll writes data at path, creating parent directories as needed.
func writeFileAll(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
