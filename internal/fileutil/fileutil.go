package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// LinkTarget returns the value to store in a symlink at linkPath that points
// at source. Relative targets are computed from the link's directory.
func LinkTarget(linkPath, source string, relative bool) (string, error) {
	absSource, err := filepath.Abs(source)
	if err != nil {
		return "", fmt.Errorf("resolve source %q: %w", source, err)
	}
	if !relative {
		return absSource, nil
	}
	absLink, err := filepath.Abs(linkPath)
	if err != nil {
		return "", fmt.Errorf("resolve link %q: %w", linkPath, err)
	}
	rel, err := filepath.Rel(filepath.Dir(absLink), absSource)
	if err != nil {
		return "", fmt.Errorf("relative target for %q: %w", source, err)
	}
	return rel, nil
}

// ReadLinkTarget reads a symlink and returns its target as a cleaned absolute
// path, resolving relative targets against the link's directory. The target
// itself need not exist.
func ReadLinkTarget(path string) (string, error) {
	target, err := os.Readlink(path)
	if err != nil {
		return "", err
	}
	if !filepath.IsAbs(target) {
		absLink, err := filepath.Abs(path)
		if err != nil {
			return "", fmt.Errorf("resolve link %q: %w", path, err)
		}
		target = filepath.Join(filepath.Dir(absLink), target)
	}
	return filepath.Clean(target), nil
}

// IsSymlink reports whether path exists and is a symlink. Missing paths report false.
func IsSymlink(path string) (bool, error) {
	info, err := os.Lstat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return info.Mode()&os.ModeSymlink != 0, nil
}

// SymlinkPointsTo reports whether linkPath is a symlink whose target resolves
// to source. A regular file or missing path at linkPath reports false.
func SymlinkPointsTo(linkPath, source string) (bool, error) {
	isLink, err := IsSymlink(linkPath)
	if err != nil || !isLink {
		return false, err
	}
	target, err := ReadLinkTarget(linkPath)
	if err != nil {
		return false, err
	}
	absSource, err := filepath.Abs(source)
	if err != nil {
		return false, fmt.Errorf("resolve source %q: %w", source, err)
	}
	return target == filepath.Clean(absSource), nil
}
