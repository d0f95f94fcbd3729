// Package canned discovers predefined image description files.
//
// Canned images are .wks files shipped in well-known directories, locatable
// by bare name without a full path. Their header comments carry the
// descriptions shown by 'wic list images'.
package canned

import (
	"bufio"
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/avalluri/wic/internal/constants"
)

// Image is one discovered canned image description.
type Image struct {
	// Name is the bare image name (file name without the .wks extension).
	Name string `json:"name"`

	// Path is the full path of the description file.
	Path string `json:"path"`

	// ShortDescription is the one-line summary from the file header.
	ShortDescription string `json:"short_description,omitempty"`

	// LongDescription is the extended summary from the file header.
	LongDescription string `json:"long_description,omitempty"`
}

// Scan collects canned images from the given directories. Directories are
// read concurrently; missing directories are skipped. When the same name
// appears in several directories, the earliest directory wins, matching the
// descriptor search order. Results are sorted by name.
func Scan(ctx context.Context, dirs []string) ([]Image, error) {
	perDir := make([][]Image, len(dirs))

	g, ctx := errgroup.WithContext(ctx)
	for i, dir := range dirs {
		i, dir := i, dir
		g.Go(func() error {
			images, err := scanDir(ctx, dir)
			if err != nil {
				return err
			}
			perDir[i] = images
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var all []Image
	for _, images := range perDir {
		for _, img := range images {
			if seen[img.Name] {
				continue
			}
			seen[img.Name] = true
			all = append(all, img)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return all, nil
}

// scanDir reads one directory's .wks files.
func scanDir(ctx context.Context, dir string) ([]Image, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var images []Image
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, constants.WksExtension) {
			continue
		}
		path := filepath.Join(dir, name)
		img := Image{
			Name: strings.TrimSuffix(name, constants.WksExtension),
			Path: path,
		}
		img.ShortDescription, img.LongDescription = readDescriptions(path)
		images = append(images, img)
	}
	return images, nil
}

// readDescriptions extracts the short/long description header comments.
// Parsing failures leave the descriptions empty; listing tolerates
// undocumented files.
func readDescriptions(path string) (short, long string) {
	f, err := os.Open(path) //#nosec G304 -- path enumerated from configured canned dirs
	if err != nil {
		return "", ""
	}
	defer func() { _ = f.Close() }()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, "#") {
			break
		}
		comment := strings.TrimSpace(strings.TrimPrefix(line, "#"))
		switch {
		case strings.HasPrefix(comment, "short-description:"):
			short = strings.TrimSpace(strings.TrimPrefix(comment, "short-description:"))
		case strings.HasPrefix(comment, "long-description:"):
			long = strings.TrimSpace(strings.TrimPrefix(comment, "long-description:"))
		}
	}
	return short, long
}
