package normalize

// Config selects the normalization steps to apply to trees. Steps are independent
// of each other; they are always applied in a fixed order (see package doc).
type Config struct {
	ReadAsCNF         bool // binarize productions with more than 2 children
	CollapseUnary     bool // collapse unary chains into a single node
	CollapseNumber    bool // replace numerals by CollapsedNumber
	LowercaseWord     bool // lower-case and trim words
	RemovePunctuation bool // remove sub-trees without words of a kept tag
	RemoveSublabel    bool // strip function tags and indices from labels
	CollapseRoot      bool // include the root node in unary chain collapsing

	// NumeralTag is the part-of-speech tag of numerals. If it is empty, numerals
	// are collapsed regardless of their tag.
	NumeralTag string
	// KeptTags are the part-of-speech tags of words surviving punctuation removal.
	KeptTags []string
	// RootLabel is set as the label of unlabeled root nodes. If it is empty,
	// root labels are left untouched.
	RootLabel string
	// MaxPunctuationRounds bounds the number of punctuation removal rounds.
	MaxPunctuationRounds int
}

// CollapsedNumber is the placeholder token for numerals.
const CollapsedNumber = "-num-"

// Separators for synthesized labels.
const (
	ChainSeparator = "+"   // joins labels of collapsed unary chains
	FactorSuffix   = "|<>" // marks intermediate nodes of binarized productions
)

// WordTags are the part-of-speech tags of words in the Penn Treebank.
var WordTags = []string{
	"CC", "CD", "DT", "EX", "FW", "IN", "JJ", "JJR", "JJS", "LS",
	"MD", "NN", "NNS", "NNP", "NNPS", "PDT", "POS", "PRP", "PRP$",
	"RB", "RBR", "RBS", "RP", "SYM", "TO", "UH", "VB", "VBD", "VBG",
	"VBN", "VBP", "VBZ", "WDT", "WP", "WP$", "WRB",
}

// CurrencyTags are part-of-speech tags (and words) for currencies in the Penn Treebank.
var CurrencyTags = []string{"#", "$", "C$", "A$"}

// DefaultConfig returns a configuration with all optional steps switched off.
// Only label reduction will be applied.
func DefaultConfig() Config {
	kept := make([]string, 0, len(WordTags)+len(CurrencyTags))
	kept = append(kept, WordTags...)
	kept = append(kept, CurrencyTags...)
	return Config{
		NumeralTag:           "CD",
		KeptTags:             kept,
		RootLabel:            "ROOT",
		MaxPunctuationRounds: 10,
	}
}

// PTBConfig returns the configuration for training on the Penn Treebank.
func PTBConfig() Config {
	conf := DefaultConfig()
	conf.ReadAsCNF = true
	conf.CollapseUnary = true
	conf.CollapseNumber = true
	conf.LowercaseWord = true
	conf.RemovePunctuation = true
	return conf
}

// SPMRLConfig returns the configuration for training on SPMRL treebanks.
// Tag sets differ between languages, therefore numerals are collapsed for
// any tag and punctuation is left in place.
func SPMRLConfig() Config {
	conf := DefaultConfig()
	conf.ReadAsCNF = true
	conf.CollapseUnary = true
	conf.CollapseNumber = true
	conf.LowercaseWord = true
	conf.NumeralTag = ""
	return conf
}
