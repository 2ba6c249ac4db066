package main

import (
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/treegram/normalize"
	"github.com/npillmayer/treegram/rules"
	"github.com/npillmayer/treegram/symbols"
	"github.com/npillmayer/treegram/tree"
	"github.com/npillmayer/treegram/tree/ptb"
)

// Sandbox is an interactive loop for experiments with tree normalization.
type Sandbox struct {
	nz    *normalize.Normalizer
	stats *normalize.Stats
	repl  *readline.Instance
}

func runSandbox(conf normalize.Config) {
	repl, err := readline.New("treegram> ")
	if err != nil {
		tracer().Errorf("%v", err)
		os.Exit(3)
	}
	defer repl.Close()
	sb := &Sandbox{
		nz:    normalize.New(conf),
		stats: normalize.NewStats(),
		repl:  repl,
	}
	pterm.Info.Println("Welcome to the treegram sandbox")
	tracer().Infof("Quit with <ctrl>D") // inform user how to stop the CLI
	sb.REPL()
}

// REPL starts interactive mode.
func (sb *Sandbox) REPL() {
	for {
		line, err := sb.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if quit := sb.Eval(line); quit {
			break
		}
	}
	println("Good bye!")
}

// Eval processes one line of input, which is either a command (":stats",
// ":quit") or a single tree in bracket notation.
func (sb *Sandbox) Eval(line string) bool {
	switch line {
	case ":quit", ":q":
		return true
	case ":stats":
		pterm.Info.Println(sb.stats.String())
		return false
	}
	t, err := ptb.Parse(line)
	if err != nil {
		pterm.Error.Println(err.Error())
		return false
	}
	printTree("input", t)
	t, err = sb.nz.Normalize(t, sb.stats)
	if err != nil {
		pterm.Error.Println(err.Error())
		return false
	}
	printTree("normalized", t)
	idx := symbols.NewIndexer()
	if err = idx.Observe(t); err == nil {
		err = idx.Build()
	}
	var prods []rules.Production
	if err == nil {
		prods, err = rules.Extract(t, idx)
	}
	if err != nil {
		pterm.Error.Println(err.Error())
		return false
	}
	for _, p := range prods {
		pterm.Println("    " + p.Format(idx))
	}
	return false
}

func printTree(title string, t *tree.Node) {
	pterm.Info.Println(title + ": " + t.String())
	ll := leveledTree(t, pterm.LeveledList{}, 0)
	pterm.DefaultTree.WithRoot(pterm.NewTreeFromLeveledList(ll)).Render()
}

func leveledTree(n *tree.Node, ll pterm.LeveledList, level int) pterm.LeveledList {
	if n.IsLeaf() {
		return append(ll, pterm.LeveledListItem{Level: level, Text: n.Terminal})
	}
	label := n.Label
	if label == "" {
		label = "∅"
	}
	ll = append(ll, pterm.LeveledListItem{Level: level, Text: label})
	for _, ch := range n.Children {
		ll = leveledTree(ch, ll, level+1)
	}
	return ll
}
