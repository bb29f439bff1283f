// Package fs provides file-based output for reports and page text.
package fs

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fwojciec/sitereport"
	"gopkg.in/yaml.v3"
)

// Ensure FileStore implements sitereport.PageStore at compile time.
var _ sitereport.PageStore = (*FileStore)(nil)

// FileStore writes each page's body text as a markdown file with YAML
// frontmatter. Pages are saved to a temporary directory, then moved
// atomically on Commit.
type FileStore struct {
	baseDir string
	name    string

	// Clears leftovers of an interrupted earlier export before first use.
	reset    sync.Once
	resetErr error
}

// NewFileStore creates a new FileStore.
// baseDir is the parent directory, name is the output directory name.
// Files are saved to baseDir/name.tmp and moved to baseDir/name on Commit.
func NewFileStore(baseDir, name string) *FileStore {
	return &FileStore{
		baseDir: baseDir,
		name:    name,
	}
}

func (s *FileStore) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *FileStore) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

// prepare empties the temporary directory once per store.
func (s *FileStore) prepare() error {
	s.reset.Do(func() {
		if err := os.RemoveAll(s.tempDir()); err != nil {
			s.resetErr = fmt.Errorf("clear %s: %w", s.tempDir(), err)
		}
	})
	return s.resetErr
}

// Save writes page to the temporary directory.
func (s *FileStore) Save(ctx context.Context, page *sitereport.PageRecord) error {
	if err := s.prepare(); err != nil {
		return err
	}

	relPath, err := URLToPath(page.URL)
	if err != nil {
		return err
	}

	fullPath := filepath.Join(s.tempDir(), relPath)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	content, err := FormatPage(page)
	if err != nil {
		return err
	}
	return os.WriteFile(fullPath, content, 0644)
}

// Commit replaces the output directory with the saved pages. Committing
// without any saved page leaves an empty directory.
func (s *FileStore) Commit() error {
	if err := s.prepare(); err != nil {
		return err
	}
	if err := os.MkdirAll(s.tempDir(), 0755); err != nil {
		return err
	}
	if err := os.RemoveAll(s.finalDir()); err != nil {
		return err
	}
	return os.Rename(s.tempDir(), s.finalDir())
}

// Abort discards the saved pages.
func (s *FileStore) Abort() error {
	return os.RemoveAll(s.tempDir())
}

// URLToPath converts a page URL to a relative file path.
// Example: https://example.com/blog/post → blog/post.md
// Paths that would escape the output directory are rejected.
func URLToPath(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}

	path := u.Path
	if path == "" || path == "/" {
		return "index.md", nil
	}

	for _, seg := range strings.Split(path, "/") {
		if seg == ".." {
			return "", sitereport.Errorf(sitereport.EINVALID, "path traversal in %q", rawURL)
		}
	}

	path = strings.TrimPrefix(path, "/")
	if strings.HasSuffix(path, "/") {
		return path + "index.md", nil
	}
	return path + ".md", nil
}

// frontmatter is the YAML header of an exported page.
type frontmatter struct {
	Source        string    `yaml:"source"`
	Title         string    `yaml:"title"`
	Crawled       time.Time `yaml:"crawled"`
	WordCount     int       `yaml:"word_count"`
	InternalLinks int       `yaml:"internal_links"`
	ExternalLinks int       `yaml:"external_links"`
	Images        int       `yaml:"images"`
}

// FormatPage renders page as YAML frontmatter followed by its body text.
func FormatPage(page *sitereport.PageRecord) ([]byte, error) {
	header, err := yaml.Marshal(frontmatter{
		Source:        page.URL,
		Title:         page.Title,
		Crawled:       page.CapturedAt.UTC(),
		WordCount:     page.WordCount,
		InternalLinks: page.InternalLinks,
		ExternalLinks: page.ExternalLinks,
		Images:        page.Images,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal frontmatter: %w", err)
	}

	var b bytes.Buffer
	b.WriteString("---\n")
	b.Write(header)
	b.WriteString("---\n\n")
	b.WriteString(page.Content)
	b.WriteString("\n")
	return b.Bytes(), nil
}
