package application

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hailam/pokedat/internal/textfile"
	"github.com/hailam/pokedat/internal/utils"
)

// banner delimits per-file sections inside a merged dump: a line of tildes,
// the root-relative source path, a line of tildes.
const banner = "~~~~~~~~~~~~~~~~~~~~"

// Merge decodes every .dat under root and concatenates the lines into one
// flat text file at outPath, each source introduced by a banner.
func (s *TextService) Merge(root, outPath string) error {
	files, err := utils.ListFiles(root, ".dat")
	if err != nil {
		return fmt.Errorf("walking %s: %w", root, err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no .dat files found in %s or subfolders", root)
	}

	var sb strings.Builder
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("reading %s: %w", file, err)
		}
		lines, err := textfile.GetStrings(data, s.cfg, s.Remap)
		if err != nil {
			return fmt.Errorf("decoding %s: %w", file, err)
		}
		rel, err := filepath.Rel(root, file)
		if err != nil {
			return err
		}
		sb.WriteString(banner + "\n")
		sb.WriteString(filepath.ToSlash(rel) + "\n")
		sb.WriteString(banner + "\n")
		for _, line := range lines {
			sb.WriteString(line + "\n")
		}
	}
	s.infof("merged %d files into %s", len(files), outPath)
	return writeFileAll(outPath, []byte(sb.String()))
}

// Split reverses Merge: it parses the banner-delimited dump at mergedPath
// and emits one .dat per section under outRoot, at its recorded relative
// path.
func (s *TextService) Split(mergedPath, outRoot string) error {
	data, err := os.ReadFile(mergedPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", mergedPath, err)
	}
	lines := strings.Split(string(data), "\n")
	// Drop the artifact of the final line terminator.
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}

	var current string
	var body []string
	count := 0
	flush := func() error {
		if current == "" {
			return nil
		}
		bin, err := textfile.GetBytes(body, make([]uint16, len(body)), s.cfg, s.Remap)
		if err != nil {
			return fmt.Errorf("encoding %s: %w", current, err)
		}
		outPath := filepath.Join(outRoot, filepath.FromSlash(current))
		if err := writeFileAll(outPath, bin); err != nil {
			return err
		}
		count++
		return nil
	}

	for i := 0; i < len(lines); i++ {
		if lines[i] == banner && i+2 < len(lines) && lines[i+2] == banner {
			if err := flush(); err != nil {
				return err
			}
			current = strings.TrimSuffix(lines[i+1], "\r")
			body = body[:0]
			i += 2
			continue
		}
		if current == "" {
			if strings.TrimSpace(lines[i]) != "" {
				return fmt.Errorf("%s: content before the first banner", mergedPath)
			}
			continue
		}
		body = append(body, strings.TrimSuffix(lines[i], "\r"))
	}
	if err := flush(); err != nil {
		return err
	}
	if count == 0 {
		return fmt.Errorf("%s: no banner-delimited sections found", mergedPath)
	}
	s.infof("split %s into %d files under %s", mergedPath, count, outRoot)
	return nil
}
