package msa

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for path, contents := range files {
		full := filepath.Join(root, filepath.FromSlash(path))
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatalf("creating test tree: %v", err)
		}
		if err := os.WriteFile(full, []byte(contents), 0o644); err != nil {
			t.Fatalf("creating test tree: %v", err)
		}
	}
}

func TestScanDir(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"readme":    "hi",
		"bin/hello": "payload",
		"bin/world": "other",
	})

	files, err := ScanDir(root, "")
	if err != nil {
		t.Fatalf("scanning: unexpected err: %v", err)
	}

	// depth-first preorder: a directory precedes its children, siblings
	// lexical
	var paths []string
	for i := range files {
		paths = append(paths, files[i].Entry.Path)
	}
	wanted := []string{"/bin", "/bin/hello", "/bin/world", "/readme"}
	if !reflect.DeepEqual(wanted, paths) {
		t.Fatalf("paths: wanted `%v`; found `%v`", wanted, paths)
	}

	if files[0].Entry.Type != EntryTypeDir {
		t.Fatalf(
			"`/bin` type: wanted `Dir`; found `%s`",
			files[0].Entry.Type,
		)
	}
	if files[0].Data != nil {
		t.Fatal("`/bin` payload: wanted `nil`; found data")
	}

	hello := files[1]
	if hello.Entry.Type != EntryTypeFile {
		t.Fatalf(
			"`/bin/hello` type: wanted `File`; found `%s`",
			hello.Entry.Type,
		)
	}
	if string(hello.Data) != "payload" {
		t.Fatalf(
			"`/bin/hello` payload: wanted `payload`; found `%s`",
			hello.Data,
		)
	}
	if hello.Entry.Size != uint32(len("payload")) {
		t.Fatalf(
			"`/bin/hello` size: wanted `%d`; found `%d`",
			len("payload"),
			hello.Entry.Size,
		)
	}
}

func TestScanDir_InstallPrefix(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"hello": "x"})

	files, err := ScanDir(root, "usr/local")
	if err != nil {
		t.Fatalf("scanning: unexpected err: %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("wanted `1` file; found `%d`", len(files))
	}
	if wanted := "/usr/local/hello"; files[0].Entry.Path != wanted {
		t.Fatalf(
			"path: wanted `%s`; found `%s`",
			wanted,
			files[0].Entry.Path,
		)
	}
}

func TestScanDir_FollowsSymlinks(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"real/hello": "payload",
		"plain":      "x",
	})
	if err := os.Symlink(
		filepath.Join(root, "real"),
		filepath.Join(root, "linkdir"),
	); err != nil {
		t.Fatalf("creating test symlink: %v", err)
	}
	if err := os.Symlink(
		filepath.Join(root, "plain"),
		filepath.Join(root, "linkfile"),
	); err != nil {
		t.Fatalf("creating test symlink: %v", err)
	}
	if err := os.Symlink(
		filepath.Join(root, "missing"),
		filepath.Join(root, "dangling"),
	); err != nil {
		t.Fatalf("creating test symlink: %v", err)
	}

	files, err := ScanDir(root, "")
	if err != nil {
		t.Fatalf("scanning: unexpected err: %v", err)
	}

	// a link to a directory is walked, a link to a file is packed, and a
	// dangling link is skipped
	var paths []string
	for i := range files {
		paths = append(paths, files[i].Entry.Path)
	}
	wanted := []string{
		"/linkdir",
		"/linkdir/hello",
		"/linkfile",
		"/plain",
		"/real",
		"/real/hello",
	}
	if !reflect.DeepEqual(wanted, paths) {
		t.Fatalf("paths: wanted `%v`; found `%v`", wanted, paths)
	}

	if files[0].Entry.Type != EntryTypeDir {
		t.Fatalf(
			"`/linkdir` type: wanted `Dir`; found `%s`",
			files[0].Entry.Type,
		)
	}
	if string(files[1].Data) != "payload" {
		t.Fatalf(
			"`/linkdir/hello` payload: wanted `payload`; found `%s`",
			files[1].Data,
		)
	}
	if files[2].Entry.Type != EntryTypeFile {
		t.Fatalf(
			"`/linkfile` type: wanted `File`; found `%s`",
			files[2].Entry.Type,
		)
	}
}

func TestScanDir_Executable(t *testing.T) {
	root := t.TempDir()
	full := filepath.Join(root, "tool")
	if err := os.WriteFile(full, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatalf("creating test file: %v", err)
	}

	files, err := ScanDir(root, "")
	if err != nil {
		t.Fatalf("scanning: unexpected err: %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("wanted `1` file; found `%d`", len(files))
	}
	if !files[0].Entry.Executable {
		t.Fatal("executable: wanted `true`; found `false`")
	}
	if files[0].Entry.Mode != 0o755 {
		t.Fatalf("mode: wanted `0755`; found `%#o`", files[0].Entry.Mode)
	}
}
