package msa

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
)

// File pairs an archive entry with its payload. Directories have a nil
// payload.
type File struct {
	Entry Entry
	Data  []byte
}

// ScanDir collects the archive's files from sourceDir in depth-first
// preorder: each directory's entry precedes its children, siblings in
// lexical order. Classification follows symlinks, so a link to a
// directory is walked and a link to a regular file is packed; entries
// resolving to anything else (sockets, devices, dangling links) are
// skipped. Install paths are the file's path relative to sourceDir
// joined under installPrefix.
//
// The walk keeps an explicit worklist rather than recursing, so
// pathological nesting depth costs heap, not stack.
func ScanDir(sourceDir, installPrefix string) ([]File, error) {
	type workItem struct {
		fullPath    string
		installPath string
	}

	pushChildren := func(stack []workItem, item workItem) ([]workItem, error) {
		children, err := os.ReadDir(item.fullPath)
		if err != nil {
			return nil, fmt.Errorf(
				"scanning directory `%s`: %w",
				item.fullPath,
				err,
			)
		}
		// reversed so the stack pops them in lexical order
		for i := len(children) - 1; i >= 0; i-- {
			child := children[i]
			stack = append(stack, workItem{
				fullPath:    filepath.Join(item.fullPath, child.Name()),
				installPath: path.Join(item.installPath, child.Name()),
			})
		}
		return stack, nil
	}

	stack, err := pushChildren(nil, workItem{
		fullPath:    sourceDir,
		installPath: "/" + installPrefix,
	})
	if err != nil {
		return nil, err
	}

	var files []File
	for len(stack) > 0 {
		item := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if len(files) >= MaxFiles {
			return nil, fmt.Errorf(
				"scanning `%s`: %w",
				sourceDir,
				TooManyFilesErr,
			)
		}

		info, err := os.Stat(item.fullPath)
		if err != nil {
			// a dangling link resolves to nothing packable
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("scanning `%s`: %w", item.fullPath, err)
		}

		if info.IsDir() {
			files = append(files, File{Entry: Entry{
				Path: item.installPath,
				Mode: uint32(info.Mode().Perm()),
				Type: EntryTypeDir,
			}})
			if stack, err = pushChildren(stack, item); err != nil {
				return nil, err
			}
			continue
		}

		if !info.Mode().IsRegular() {
			continue
		}

		data, err := os.ReadFile(item.fullPath)
		if err != nil {
			return nil, fmt.Errorf("scanning `%s`: %w", item.fullPath, err)
		}
		files = append(files, File{
			Entry: Entry{
				Path:       item.installPath,
				Size:       uint32(len(data)),
				Mode:       uint32(info.Mode().Perm()),
				Type:       EntryTypeFile,
				Executable: info.Mode().Perm()&0o100 != 0,
			},
			Data: data,
		})
	}

	return files, nil
}
