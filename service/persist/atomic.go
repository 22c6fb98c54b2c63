package persist

import (
	"os"
	"path/filepath"

	"github.com/viant/noted/internal/idgen"
)

// Swappable in tests to inject failures at the final step.
var (
	renameFunc = os.Rename
	linkFunc   = os.Link
)

// writeFile writes data to a temporary sibling of path and moves it into
// place. With replace unset the move fails when path already exists. A
// replaced file keeps its permission bits; mode applies to new files.
func writeFile(path string, data []byte, mode os.FileMode, replace bool) (err error) {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	keepMode := false
	if replace {
		if info, statErr := os.Stat(path); statErr == nil && info.Mode().IsRegular() {
			keepMode = true
			mode = info.Mode().Perm()
		}
	}
	tmp := filepath.Join(dir, "."+base+"."+idgen.New()+".tmp")
	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, mode)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp)
		}
	}()
	if keepMode {
		// umask may have narrowed the bits at create time
		if err = f.Chmod(mode); err != nil {
			_ = f.Close()
			return err
		}
	}
	if _, err = f.Write(data); err != nil {
		_ = f.Close()
		return err
	}
	if err = f.Sync(); err != nil {
		_ = f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	if replace {
		if err = renameFunc(tmp, path); err != nil {
			return err
		}
	} else {
		if err = linkFunc(tmp, path); err != nil {
			return err
		}
		_ = os.Remove(tmp)
	}
	syncDir(dir)
	return nil
}

// syncDir makes the directory entry durable where the platform allows it.
func syncDir(dir string) {
	d, err := os.Open(dir)
	if err != nil {
		return
	}
	_ = d.Sync()
	_ = d.Close()
}
