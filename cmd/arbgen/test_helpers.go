// test_helpers.go
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

//
// -----------------------------------------------------------------------------
// Shared fixtures
// -----------------------------------------------------------------------------

// orderSource is a package file declaring the target struct and the go:generate owner line.
const orderSource = `package shop

import (
	"strings"
	"time"
)

//go:generate go run ../../cmd/arbgen -spec ./order.arb.yaml -out ./order_arb.gen.go

type Order struct {
	ID      uint64
	Placed  time.Duration
	Note    string
	private int
}

var _ = strings.TrimSpace
`

// minimalSpecYAML returns a spec covering every Order field.
func minimalSpecYAML() []byte {
	return []byte(`package: shop
type: Order
fields:
  - name: ID
    type: uint64
  - name: Placed
    type: time.Duration
  - name: Note
    gen: arb.String
  - name: private
    gen: arb.Int
`)
}

// minimalSpecJSON is minimalSpecYAML in JSON.
func minimalSpecJSON() []byte {
	return []byte(`{
  "package": "shop",
  "type": "Order",
  "fields": [
    { "name": "ID", "type": "uint64" },
    { "name": "Placed", "type": "time.Duration" },
    { "name": "Note", "gen": "arb.String" },
    { "name": "private", "gen": "arb.Int" }
  ]
}`)
}

//
// -----------------------------------------------------------------------------
// Small helpers
// -----------------------------------------------------------------------------

// writeTempFile writes a file under dir/name and returns its full path.
func writeTempFile(t *testing.T, dir, name, content string, perm os.FileMode) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), perm))
	return p
}

// readFileString reads a file and returns its contents as string (fatal on error).
func readFileString(t *testing.T, p string) string {
	t.Helper()
	b, err := os.ReadFile(p)
	require.NoError(t, err)
	return string(b)
}

// orderPackage lays out a package dir holding orderSource and returns it.
func orderPackage(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeTempFile(t, dir, "order.go", orderSource, 0o644)
	return dir
}

//
// -----------------------------------------------------------------------------
// writeFileAtomic() seam helpers
// -----------------------------------------------------------------------------

// fakeTempFile is a controllable file-like object for writeFileAtomic tests.
// It lets tests force errors on Write and Close without touching real files.
type fakeTempFile struct {
	fileName string
	writeErr error
	closeErr error
}

func (f *fakeTempFile) Name() string { return f.fileName }

func (f *fakeTempFile) Write(p []byte) (int, error) {
	if f.writeErr != nil {
		return 0, f.writeErr
	}
	return len(p), nil
}

func (f *fakeTempFile) Close() error { return f.closeErr }

// snapWriteSeams captures the current global file seams so tests can restore them.
func snapWriteSeams(t *testing.T) (
	origCreate func(string, string) (tempFile, error),
	origRemove func(string) error,
	origChmod func(string, os.FileMode) error,
	origRename func(string, string) error,
) {
	t.Helper()
	return createTempFile, removeFile, chmodFile, renameFile
}

// setWriteSeams overrides the global seams used by writeFileAtomic.
// Pass nil for any seam you don't want to override.
func setWriteSeams(
	t *testing.T,
	createFn func(string, string) (tempFile, error),
	removeFn func(path string) error,
	chmodFn func(path string, mode os.FileMode) error,
	renameFn func(oldpath, newpath string) error,
) {
	t.Helper()

	if createFn != nil {
		createTempFile = createFn
	}
	if removeFn != nil {
		removeFile = removeFn
	}
	if chmodFn != nil {
		chmodFile = chmodFn
	}
	if renameFn != nil {
		renameFile = renameFn
	}
}

// describe renders a spec field list compactly for failure messages.
func describe(fields []Field) string {
	return fmt.Sprintf("%+v", fields)
}
