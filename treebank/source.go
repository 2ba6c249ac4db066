package treebank

import (
	"os"
	"sort"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/npillmayer/treegram/tree"
	"github.com/npillmayer/treegram/tree/ptb"
	"github.com/pkg/errors"
)

// Source provides the trees of a corpus, file by file. Trees handed out by
// Forest belong to the caller and may be modified.
//
// Implementations must be safe for concurrent use and must return the same
// trees in the same order every time Forest is called for a file.
type Source interface {
	FileIDs() []string
	Forest(fid string) ([]*tree.Node, error)
}

// DefaultCacheSize is the number of parsed files a FileSource keeps in memory.
const DefaultCacheSize = 64

// FileSource reads trees from files in bracket notation. Parsed forests are
// kept in a LRU cache, as training reads every file twice.
type FileSource struct {
	fids   []string
	reader *ptb.Reader
	cache  *lru.Cache[string, []*tree.Node] // nil if caching is disabled
}

// NewFileSource creates a source for a list of files. cacheSize is the number
// of forests to keep in memory; 0 disables caching.
func NewFileSource(fids []string, cacheSize int) (*FileSource, error) {
	r, err := ptb.NewReader()
	if err != nil {
		return nil, err
	}
	src := &FileSource{fids: fids, reader: r}
	if cacheSize > 0 {
		if src.cache, err = lru.New[string, []*tree.Node](cacheSize); err != nil {
			return nil, errors.Wrap(err, "cannot create forest cache")
		}
	}
	return src, nil
}

// FileIDs returns the file names of the source.
func (src *FileSource) FileIDs() []string {
	return src.fids
}

// Forest reads all trees of a file.
func (src *FileSource) Forest(fid string) ([]*tree.Node, error) {
	if src.cache != nil {
		if forest, ok := src.cache.Get(fid); ok {
			tracer().Debugf("forest cache hit for %s", fid)
			return copyForest(forest), nil
		}
	}
	f, err := os.Open(fid)
	if err != nil {
		return nil, errors.Wrap(err, "cannot open corpus file")
	}
	defer f.Close()
	forest, err := src.reader.ReadAll(f)
	if err != nil {
		return nil, errors.Wrapf(err, "corpus file %s", fid)
	}
	tracer().Debugf("read %d trees from %s", len(forest), fid)
	if src.cache != nil {
		src.cache.Add(fid, forest)
		return copyForest(forest), nil
	}
	return forest, nil
}

func copyForest(forest []*tree.Node) []*tree.Node {
	c := make([]*tree.Node, len(forest))
	for i, t := range forest {
		c[i] = t.Copy()
	}
	return c
}

// MemSource is a Source holding trees in memory.
type MemSource struct {
	forests map[string][]*tree.Node
}

// NewMemSource creates an empty in-memory source.
func NewMemSource() *MemSource {
	return &MemSource{forests: make(map[string][]*tree.Node)}
}

// Add appends trees to the forest of file fid. Add must not be called
// concurrently with other methods.
func (src *MemSource) Add(fid string, trees ...*tree.Node) *MemSource {
	src.forests[fid] = append(src.forests[fid], trees...)
	return src
}

// AddString parses trees in bracket notation and appends them to the forest of
// file fid.
func (src *MemSource) AddString(fid string, input string) error {
	r, err := ptb.NewReader()
	if err != nil {
		return err
	}
	forest, err := r.ReadString(input)
	if err != nil {
		return errors.Wrapf(err, "corpus file %s", fid)
	}
	src.Add(fid, forest...)
	return nil
}

// FileIDs returns the names of all forests, sorted.
func (src *MemSource) FileIDs() []string {
	fids := make([]string, 0, len(src.forests))
	for fid := range src.forests {
		fids = append(fids, fid)
	}
	sort.Strings(fids)
	return fids
}

// Forest returns copies of the trees of file fid.
func (src *MemSource) Forest(fid string) ([]*tree.Node, error) {
	forest, ok := src.forests[fid]
	if !ok {
		return nil, errors.Errorf("no such corpus file: %s", fid)
	}
	return copyForest(forest), nil
}
