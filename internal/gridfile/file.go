package gridfile

import (
	"errors"
	"os"
	"path/filepath"

	"torus-life/internal/core"
)

// DefaultExt is appended to names typed without an extension.
const DefaultExt = ".txt"

// Filename appends DefaultExt when name has no extension.
func Filename(name string) string {
	if filepath.Ext(name) == "" {
		return name + DefaultExt
	}
	return name
}

// SaveFile writes g to path, the whole grid when region is nil and only the
// region otherwise. The file is written next to its final location with mode
// 0644 and renamed into place, so a failed save leaves any previous file intact.
func SaveFile(path string, g *core.Grid, region *core.Region) (err error) {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+base+".tmp*")
	if err != nil {
		return &IOError{Op: "create", Path: path, Err: err}
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if region == nil {
		err = SaveFull(g, tmp)
	} else {
		err = SaveRegion(g, *region, tmp)
	}
	if err != nil {
		var ioErr *IOError
		if errors.As(err, &ioErr) && ioErr.Path == "" {
			ioErr.Path = path
		}
		return err
	}
	// CreateTemp makes owner-only files; saved grids are ordinary documents.
	if err = tmp.Chmod(0o644); err != nil {
		return &IOError{Op: "chmod", Path: path, Err: err}
	}
	if err = tmp.Close(); err != nil {
		return &IOError{Op: "close", Path: path, Err: err}
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return &IOError{Op: "rename", Path: path, Err: err}
	}
	return nil
}

// LoadFile reads path into g with Load. On any error g is left as it was.
func LoadFile(path string, g *core.Grid) (core.Region, error) {
	f, err := os.Open(path)
	if err != nil {
		return core.Region{}, &IOError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	region, err := Load(f, g)
	if err != nil {
		var ioErr *IOError
		if errors.As(err, &ioErr) && ioErr.Path == "" {
			ioErr.Path = path
		}
		return core.Region{}, err
	}
	return region, nil
}
