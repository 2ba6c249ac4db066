package treebank

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/npillmayer/treegram/normalize"
	"github.com/pkg/errors"
)

// Format is a treebank layout.
type Format int8

// Supported treebank layouts.
const (
	PTB Format = iota
	SPMRL
)

func (f Format) String() string {
	switch f {
	case PTB:
		return "ptb"
	case SPMRL:
		return "spmrl"
	}
	return fmt.Sprintf("<format %d>", int(f))
}

// ParseFormat finds a treebank format by name ("ptb" or "spmrl").
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "ptb", "wsj":
		return PTB, nil
	case "spmrl":
		return SPMRL, nil
	}
	return PTB, fmt.Errorf("unknown treebank format %q", name)
}

// Split locates the corpus files below root.
func (f Format) Split(root string) (*Split, error) {
	if f == SPMRL {
		return SPMRLSplit(root)
	}
	return PTBSplit(root)
}

// Config returns the default normalization settings for a treebank format.
func (f Format) Config() normalize.Config {
	if f == SPMRL {
		return normalize.SPMRLConfig()
	}
	return normalize.PTBConfig()
}

// Split holds the file names of a corpus, divided into training, development
// and test sets. File names are sorted.
type Split struct {
	Train []string
	Dev   []string
	Test  []string
}

func (s *Split) String() string {
	return fmt.Sprintf("train: %d fids, dev: %d fids, test: %d fids",
		len(s.Train), len(s.Dev), len(s.Test))
}

var (
	ptbTrainSections = []string{"02", "03", "04", "05", "06", "07", "08", "09", "10", "11",
		"12", "13", "14", "15", "16", "17", "18", "19", "20", "21"}
	ptbDevSections  = []string{"22"}
	ptbTestSections = []string{"23"}
)

// PTBSplit collects the ".mrg" files of a Penn Treebank below root. Files are
// assigned to a set by the name of the directory they live in; directories
// not named like a section of a set are ignored.
func PTBSplit(root string) (*Split, error) {
	sets := make(map[string]*[]string)
	split := &Split{}
	for _, sec := range ptbTrainSections {
		sets[sec] = &split.Train
	}
	for _, sec := range ptbDevSections {
		sets[sec] = &split.Dev
	}
	for _, sec := range ptbTestSections {
		sets[sec] = &split.Test
	}
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".mrg") {
			return nil
		}
		if fids, ok := sets[filepath.Base(filepath.Dir(path))]; ok {
			*fids = append(*fids, path)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "cannot read PTB corpus at %s", root)
	}
	split.sort()
	tracer().Infof("PTB corpus %s: %s", root, split)
	return split, nil
}

// SPMRLSplit collects the ".ptb" files of an SPMRL treebank below root. If
// there is no directory "train", files are taken from "train5k".
func SPMRLSplit(root string) (*Split, error) {
	if fi, err := os.Stat(root); err != nil {
		return nil, errors.Wrapf(err, "cannot read SPMRL corpus at %s", root)
	} else if !fi.IsDir() {
		return nil, errors.Errorf("SPMRL corpus root %s is not a directory", root)
	}
	split := &Split{}
	var err error
	train := filepath.Join(root, "train")
	if _, e := os.Stat(train); e != nil {
		train = filepath.Join(root, "train5k")
	}
	if split.Train, err = filesBelow(train, ".ptb"); err != nil {
		return nil, err
	}
	if split.Dev, err = filesBelow(filepath.Join(root, "dev"), ".ptb"); err != nil {
		return nil, err
	}
	if split.Test, err = filesBelow(filepath.Join(root, "test"), ".ptb"); err != nil {
		return nil, err
	}
	split.sort()
	tracer().Infof("SPMRL corpus %s: %s", root, split)
	return split, nil
}

// filesBelow lists files with a given suffix in a directory tree. A missing
// directory yields an empty list.
func filesBelow(dir, suffix string) ([]string, error) {
	var fids []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) && path == dir {
				return filepath.SkipDir
			}
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), suffix) {
			fids = append(fids, path)
		}
		return nil
	})
	return fids, errors.Wrapf(err, "cannot read corpus directory %s", dir)
}

func (s *Split) sort() {
	sort.Strings(s.Train)
	sort.Strings(s.Dev)
	sort.Strings(s.Test)
}
