package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/lcfrs/grammar"
	"github.com/npillmayer/lcfrs/induce"
	"github.com/npillmayer/lcfrs/negra"
	"github.com/pkg/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func newInduceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "induce corpus...",
		Short: "Induce a grammar from NeGra corpora",
		Long: `Induce reads all corpora given as arguments, extracts the rules of every
tree and writes the rules of the resulting grammar in lexicographic order,
one rule per line. Use "-" to read a corpus from stdin.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFrom(cmd)
			store := grammar.NewStore()
			report, err := induceCorpora(cmd, cfg, store, args)
			if err != nil {
				return err
			}
			if err := writeGrammar(cmd, cfg, store); err != nil {
				return err
			}
			if !cfg.Quiet {
				report.Print(cmd.ErrOrStderr())
			}
			return nil
		},
	}
	cmd.Flags().StringP("output", "o", "", "File to write the induced grammar to (default: stdout)")
	cmd.Flags().Bool("strict", false, "Abort at the first tree which cannot be induced")
	cmd.Flags().IntP("workers", "w", 1, "Number of goroutines inducing rules")
	cmd.Flags().Int("progress-every", induce.DefaultProgressInterval, "Trees between progress notifications")
	cmd.Flags().Int("format", 0, "NeGra export format [3|4], 0 to detect from #FORMAT")
	return cmd
}

// induceCorpora runs an inducer over each corpus in turn, collecting a
// combined report.
func induceCorpora(cmd *cobra.Command, cfg *Config, store *grammar.Store, corpora []string) (*induce.Report, error) {
	opts := []induce.Option{
		induce.WithDaughterOrder(cfg.DaughterOrder()),
		induce.Strict(cfg.Strict),
		induce.WithWorkers(cfg.Workers),
	}
	if !cfg.Quiet {
		opts = append(opts,
			induce.WithProgress(cfg.ProgressEvery, func(n int, complete bool) {
				if complete {
					pterm.Info.Println("induction complete")
					return
				}
				pterm.Info.Println(fmt.Sprintf("%d trees complete", n))
			}),
			induce.OnSkip(func(s induce.Skip) {
				pterm.Warning.Println(fmt.Sprintf("skipping %s", s))
			}))
	}
	ind := induce.New(store, opts...)
	total := &induce.Report{}
	for _, name := range corpora {
		report, err := induceCorpus(cmd, cfg, ind, name)
		if report != nil {
			total.Read += report.Read
			total.Induced += report.Induced
			total.Added += report.Added
			total.Skipped = append(total.Skipped, report.Skipped...)
			total.Grammar, total.Fingerprint = report.Grammar, report.Fingerprint
		}
		if err != nil {
			return total, errors.Wrapf(err, "corpus %s", name)
		}
	}
	return total, nil
}

func induceCorpus(cmd *cobra.Command, cfg *Config, ind *induce.Inducer, name string) (*induce.Report, error) {
	var input io.Reader = cmd.InOrStdin()
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		input = f
	}
	var opts []negra.Option
	if cfg.Format != 0 {
		opts = append(opts, negra.WithFormat(cfg.Format))
	}
	r, err := negra.NewReader(bufio.NewReader(input), opts...)
	if err != nil {
		return nil, err
	}
	tracer().Infof("inducing rules from %s", name)
	return ind.Run(cmd.Context(), r)
}

// writeGrammar writes the rules of a store to the configured output file, or
// to stdout.
func writeGrammar(cmd *cobra.Command, cfg *Config, store *grammar.Store) error {
	if cfg.Output == "" {
		_, err := store.WriteTo(cmd.OutOrStdout())
		return err
	}
	f, err := os.Create(cfg.Output)
	if err != nil {
		return errors.Wrap(err, "cannot create output file")
	}
	if _, err = store.WriteTo(f); err != nil {
		f.Close()
		return errors.Wrapf(err, "cannot write grammar to %s", cfg.Output)
	}
	if err = f.Close(); err != nil {
		return err
	}
	if !cfg.Quiet {
		pterm.Info.Println(fmt.Sprintf("grammar with %d rules written to %s", store.Size(), cfg.Output))
	}
	return nil
}
