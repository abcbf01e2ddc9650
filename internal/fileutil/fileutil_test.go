package fileutil_test

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"testing"

	"github.com/alnah/go-sitekit/internal/fileutil"
)

// ---------------------------------------------------------------------------
// TestValidateExtension - Extension validation
// ---------------------------------------------------------------------------

func TestValidateExtension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		extension string
		wantErr   error
	}{
		{name: "valid extension md", extension: "md"},
		{name: "valid extension with dot", extension: ".markdown"},
		{name: "empty extension", extension: "", wantErr: fileutil.ErrExtensionEmpty},
		{name: "lone dot", extension: ".", wantErr: fileutil.ErrExtensionEmpty},
		{name: "forward slash path traversal", extension: "../etc/passwd", wantErr: fileutil.ErrExtensionPathTraversal},
		{name: "backslash path traversal", extension: "..\\windows", wantErr: fileutil.ErrExtensionPathTraversal},
		{name: "null byte injection", extension: "md\x00exe", wantErr: fileutil.ErrExtensionPathTraversal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := fileutil.ValidateExtension(tt.extension)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateExtension(%q) = %v, want %v", tt.extension, err, tt.wantErr)
			}
		})
	}
}

func TestNormalizeExtensions(t *testing.T) {
	t.Parallel()

	got, err := fileutil.NormalizeExtensions([]string{"MD", ".markdown", "Mdx"})
	if err != nil {
		t.Fatalf("NormalizeExtensions() error = %v", err)
	}
	want := []string{".md", ".markdown", ".mdx"}
	if !slices.Equal(got, want) {
		t.Errorf("NormalizeExtensions() = %v, want %v", got, want)
	}

	if _, err := fileutil.NormalizeExtensions([]string{"md", ""}); !errors.Is(err, fileutil.ErrExtensionEmpty) {
		t.Errorf("NormalizeExtensions() with empty entry error = %v, want ErrExtensionEmpty", err)
	}
}

// ---------------------------------------------------------------------------
// TestDiscover - Content file discovery
// ---------------------------------------------------------------------------

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestDiscover(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, filepath.Join(root, "index.md"), "# Home")
	writeFile(t, filepath.Join(root, "posts", "a.md"), "a")
	writeFile(t, filepath.Join(root, "posts", "b.MARKDOWN"), "b")
	writeFile(t, filepath.Join(root, "posts", "notes.txt"), "skip")
	writeFile(t, filepath.Join(root, ".git", "README.md"), "hidden")
	writeFile(t, filepath.Join(root, "images", "cat.png"), "png")

	got, err := fileutil.Discover(root, fileutil.DefaultExtensions)
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	want := []string{
		filepath.Join(root, "index.md"),
		filepath.Join(root, "posts", "a.md"),
		filepath.Join(root, "posts", "b.MARKDOWN"),
	}
	if !slices.Equal(got, want) {
		t.Errorf("Discover() = %v, want %v", got, want)
	}
}

func TestDiscover_CustomExtensions(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, filepath.Join(root, "page.html"), "<p>x</p>")
	writeFile(t, filepath.Join(root, "post.md"), "x")

	got, err := fileutil.Discover(root, []string{"html"})
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if len(got) != 1 || filepath.Base(got[0]) != "page.html" {
		t.Errorf("Discover() = %v, want only page.html", got)
	}
}

func TestDiscover_Errors(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	file := filepath.Join(root, "file.md")
	writeFile(t, file, "x")

	if _, err := fileutil.Discover(filepath.Join(root, "missing"), fileutil.DefaultExtensions); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Discover(missing) error = %v, want ErrNotExist", err)
	}
	if _, err := fileutil.Discover(file, fileutil.DefaultExtensions); !errors.Is(err, fileutil.ErrNotDirectory) {
		t.Errorf("Discover(file) error = %v, want ErrNotDirectory", err)
	}
	if _, err := fileutil.Discover(root, []string{"a/b"}); !errors.Is(err, fileutil.ErrExtensionPathTraversal) {
		t.Errorf("Discover(bad ext) error = %v, want ErrExtensionPathTraversal", err)
	}
}

func TestHasExtension(t *testing.T) {
	t.Parallel()

	exts := []string{".md", ".markdown"}
	tests := []struct {
		path string
		want bool
	}{
		{"post.md", true},
		{"POST.MD", true},
		{"dir/post.markdown", true},
		{"post.mdx", false},
		{"md", false},
	}
	for _, tt := range tests {
		if got := fileutil.HasExtension(tt.path, exts); got != tt.want {
			t.Errorf("HasExtension(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

// ---------------------------------------------------------------------------
// TestWriteFileAtomic - Whole-file replacement
// ---------------------------------------------------------------------------

func TestWriteFileAtomic(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "post.md")
	writeFile(t, path, "old content")

	if err := fileutil.WriteFileAtomic(path, []byte("new content"), 0o600); err != nil {
		t.Fatalf("WriteFileAtomic() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile error = %v", err)
	}
	if string(data) != "new content" {
		t.Errorf("content = %q, want %q", data, "new content")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir error = %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("directory has %d entries, want 1 (temp file left behind)", len(entries))
	}

	if runtime.GOOS != "windows" {
		if mode := fileutil.FileMode(path); mode != 0o600 {
			t.Errorf("FileMode() = %o, want 600", mode)
		}
	}
}

func TestWriteFileAtomic_NewFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "fresh.md")
	content := strings.Repeat("x", 1024*1024)

	if err := fileutil.WriteFileAtomic(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFileAtomic() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile error = %v", err)
	}
	if len(data) != len(content) {
		t.Errorf("file size = %d, want %d", len(data), len(content))
	}
}

func TestWriteFileAtomic_MissingDirectory(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nope", "post.md")
	err := fileutil.WriteFileAtomic(path, []byte("x"), 0o644)
	if err == nil {
		t.Fatal("WriteFileAtomic() expected error for missing directory, got nil")
	}
	if !strings.Contains(err.Error(), "creating temp file") {
		t.Errorf("WriteFileAtomic() error = %q, want error containing 'creating temp file'", err.Error())
	}
}

func TestFileMode_Missing(t *testing.T) {
	t.Parallel()

	if got := fileutil.FileMode(filepath.Join(t.TempDir(), "missing")); got != 0o644 {
		t.Errorf("FileMode(missing) = %o, want 644", got)
	}
}

// ---------------------------------------------------------------------------
// TestFileExists - File existence check
// ---------------------------------------------------------------------------

func TestFileExists(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()

	testFile := filepath.Join(tempDir, "test.txt")
	if err := os.WriteFile(testFile, []byte("content"), 0644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	testDir := filepath.Join(tempDir, "testdir")
	if err := os.Mkdir(testDir, 0755); err != nil {
		t.Fatalf("failed to create test dir: %v", err)
	}

	tests := []struct {
		name string
		path string
		want bool
	}{
		{name: "existing file returns true", path: testFile, want: true},
		{name: "directory returns false", path: testDir, want: false},
		{name: "nonexistent path returns false", path: filepath.Join(tempDir, "nonexistent"), want: false},
		{name: "empty path returns false", path: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := fileutil.FileExists(tt.path)
			if got != tt.want {
				t.Errorf("FileExists(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestIsFilePath - File path detection
// ---------------------------------------------------------------------------

func TestIsFilePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "simple name returns false", input: "sitekit", want: false},
		{name: "hyphenated name returns false", input: "my-site", want: false},
		{name: "relative path with dot-slash returns true", input: "./sitekit.yaml", want: true},
		{name: "parent path returns true", input: "../shared/site.yaml", want: true},
		{name: "absolute Unix path returns true", input: "/etc/sitekit.yaml", want: true},
		{name: "Windows path returns true", input: `C:\sites\site.yaml`, want: true},
		{name: "empty string returns false", input: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := fileutil.IsFilePath(tt.input); got != tt.want {
				t.Errorf("IsFilePath(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
