package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/lcfrs/grammar"
	"github.com/npillmayer/lcfrs/induce"
	"github.com/npillmayer/lcfrs/negra"
	"github.com/npillmayer/lcfrs/tree"
	"github.com/pkg/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func newReplCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive induction sandbox",
		Long: `Repl reads NeGra sentences, line by line. After each "#EOS" line the
sentence's tree is drawn and its rules are printed and added to the session
grammar. Lines starting with ':' are commands, see ":help".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := configFrom(cmd)
			rl, err := readline.New("lcfrs> ")
			if err != nil {
				return err
			}
			defer rl.Close()
			intp := newIntp(cmd.OutOrStdout(), cfg.DaughterOrder())
			pterm.Info.Println("Welcome to the LCFRS induction sandbox")
			tracer().Infof("Quit with <ctrl>D")
			initf, _ := cmd.Flags().GetString("init")
			intp.loadInitFile(initf)
			intp.REPL(rl)
			return nil
		},
	}
	cmd.Flags().String("init", "", "File with sentences and commands to evaluate first")
	return cmd
}

// Intp is our interpreter object
type Intp struct {
	out     io.Writer
	store   *grammar.Store
	order   tree.DaughterOrder
	pending []string // lines of the sentence currently being entered
}

func newIntp(out io.Writer, order tree.DaughterOrder) *Intp {
	return &Intp{
		out:   out,
		store: grammar.NewStore(),
		order: order,
	}
}

func (intp *Intp) loadInitFile(filename string) {
	if filename == "" {
		return
	}
	f, err := os.Open(filename)
	if err != nil {
		tracer().Errorf("Unable to open init file: %s", filename)
		return
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	lineno := 1
	for scanner.Scan() {
		if _, err := intp.Eval(scanner.Text()); err != nil {
			tracer().Errorf("Error line %d: %v", lineno, err)
		}
		lineno++
	}
	if err := scanner.Err(); err != nil {
		tracer().Errorf("Error while reading init file: %v", err)
	}
}

// REPL starts interactive mode.
func (intp *Intp) REPL(rl *readline.Instance) {
	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF
			break
		}
		quit, err := intp.Eval(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	fmt.Fprintln(intp.out, "Good bye!")
}

// Eval evaluates a line of input: either a command, or a line of a NeGra
// sentence. A sentence is induced as soon as its "#EOS" line is entered.
// Eval returns true if the user asked to quit.
func (intp *Intp) Eval(line string) (bool, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false, nil
	}
	if strings.HasPrefix(trimmed, ":") {
		return intp.execute(strings.Fields(trimmed))
	}
	if strings.HasPrefix(trimmed, "#BOS") {
		intp.pending = intp.pending[:0]
	}
	intp.pending = append(intp.pending, line)
	if !strings.HasPrefix(trimmed, "#EOS") {
		return false, nil
	}
	input := strings.Join(intp.pending, "\n")
	intp.pending = intp.pending[:0]
	sentences, err := negra.ReadAll(strings.NewReader(input))
	if err != nil {
		return false, err
	}
	if len(sentences) == 0 {
		return false, errors.New("#EOS without #BOS")
	}
	for _, s := range sentences {
		if err := intp.induce(s); err != nil {
			return false, err
		}
	}
	return false, nil
}

// induce draws the tree of a sentence, prints its rules and merges them into
// the session grammar.
func (intp *Intp) induce(s *negra.Sentence) error {
	t, err := s.Tree(tree.WithDaughterOrder(intp.order))
	if err != nil {
		return err
	}
	rules, err := induce.RulesForTree(t)
	if err != nil {
		return err
	}
	pterm.Println(t.Sentence())
	root, err := indentedListFrom(t)
	if err != nil {
		return err
	}
	pterm.DefaultTree.WithRoot(root).Render()
	added := intp.store.Merge(rules)
	for _, r := range rules {
		fmt.Fprintln(intp.out, r)
	}
	pterm.Info.Println(fmt.Sprintf("%d rules, %d new", len(rules), added))
	return nil
}

func (intp *Intp) execute(args []string) (bool, error) {
	switch args[0] {
	case ":quit", ":q":
		return true, nil
	case ":help":
		fmt.Fprintln(intp.out, replHelp)
	case ":grammar":
		_, err := intp.store.WriteTo(intp.out)
		return false, err
	case ":stats":
		return false, intp.stats()
	case ":order":
		if len(args) < 2 {
			pterm.Info.Println("daughter order is " + intp.order.String())
			return false, nil
		}
		order, err := tree.ParseDaughterOrder(args[1])
		if err != nil {
			return false, err
		}
		intp.order = order
	case ":load":
		if len(args) < 2 {
			return false, errors.New("usage: :load FILE")
		}
		return false, intp.load(args[1])
	case ":write":
		if len(args) < 2 {
			return false, errors.New("usage: :write FILE")
		}
		return false, intp.write(args[1])
	default:
		return false, errors.Errorf("unknown command %s, try :help", args[0])
	}
	return false, nil
}

const replHelp = `Enter NeGra sentences from #BOS to #EOS, or one of
  :grammar          print the session grammar
  :stats            print statistics of the session grammar
  :load FILE        induce rules from a corpus
  :write FILE       write the session grammar to a file
  :order [ORDER]    show or set the daughter order (position|declared)
  :quit             leave`

func (intp *Intp) stats() error {
	st := intp.store.Stats()
	fp, err := intp.store.Fingerprint()
	if err != nil {
		return err
	}
	fmt.Fprintf(intp.out, "rules: %d (terminal %d, nonterminal %d)\n", st.Rules, st.Terminal, st.Nonterminal)
	fmt.Fprintf(intp.out, "max fan-out: %d, max rank: %d\n", st.MaxFanOut, st.MaxRank)
	fmt.Fprintf(intp.out, "fingerprint: %s\n", fp)
	return nil
}

func (intp *Intp) load(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	r, err := negra.NewReader(bufio.NewReader(f))
	if err != nil {
		return err
	}
	ind := induce.New(intp.store, induce.WithDaughterOrder(intp.order))
	report, err := ind.Run(context.Background(), r)
	if err != nil {
		return err
	}
	pterm.Info.Println(fmt.Sprintf("%d trees read, %d skipped, %d new rules",
		report.Read, len(report.Skipped), report.Added))
	return nil
}

func (intp *Intp) write(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if _, err := intp.store.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// --- Tree rendering --------------------------------------------------------

func indentedListFrom(t *tree.Tree) (pterm.TreeNode, error) {
	var ll pterm.LeveledList
	err := t.Walk(func(n *tree.Node, depth int) error {
		ll = append(ll, pterm.LeveledListItem{
			Level: depth,
			Text:  nodeText(n),
		})
		return nil
	})
	if err != nil {
		return pterm.TreeNode{}, err
	}
	tracer().Debugf("|ll| = %d", len(ll))
	return pterm.NewTreeFromLeveledList(ll), nil
}

func nodeText(n *tree.Node) string {
	if n.IsLeaf() {
		return fmt.Sprintf("%s %s %s", n.Label, n.ID, n.Span)
	}
	return fmt.Sprintf("%s %s  fan-out %d", n.Label, n.Span, n.Span.FanOut())
}
