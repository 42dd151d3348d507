package negra

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/npillmayer/lcfrs/tree"
	"github.com/pkg/errors"
	"github.com/timtadh/lexmachine"
)

// ErrUnsupportedFormat flags a #FORMAT line with a version other than 3 or 4.
var ErrUnsupportedFormat = errors.New("unsupported NeGra format")

// DefaultFormat is the export format assumed for corpora without a #FORMAT line.
const DefaultFormat = 4

// Sentence is a sentence of a corpus, i.e. the records of one tree.
type Sentence struct {
	Number  string        // number from the #BOS line
	Line    int           // line number of the #BOS line
	Records []tree.Record // node records in order of appearance
	Err     error         // set if the sentence has malformed records
}

// Tree builds the tree for a sentence.
func (s *Sentence) Tree(opts ...tree.Option) (*tree.Tree, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return tree.Build(s.Records, opts...)
}

func (s *Sentence) String() string {
	return "#" + s.Number
}

// columns holds the field indices for label and mother of a format.
type columns struct {
	label, mother int
}

func columnsFor(format int) (columns, error) {
	switch format {
	case 3:
		return columns{label: 1, mother: 4}, nil
	case 4:
		return columns{label: 2, mother: 5}, nil
	}
	return columns{}, errors.Wrapf(ErrUnsupportedFormat, "format %d", format)
}

// Reader reads sentences from a corpus.
type Reader struct {
	lines   *bufio.Scanner
	lm      *lexmachine.Lexer
	cols    columns
	fixed   bool      // format set by option, #FORMAT lines are ignored
	pending *Sentence // sentence whose #BOS line has already been read
	lineno  int
	err     error
}

// Option configures a reader.
type Option func(*Reader) error

// WithFormat forces an export format, overriding #FORMAT lines of the corpus.
func WithFormat(format int) Option {
	return func(r *Reader) error {
		cols, err := columnsFor(format)
		if err != nil {
			return err
		}
		r.cols, r.fixed = cols, true
		return nil
	}
}

// NewReader creates a reader for a corpus.
func NewReader(input io.Reader, opts ...Option) (*Reader, error) {
	lm, err := lexer()
	if err != nil {
		return nil, err
	}
	r := &Reader{
		lines: bufio.NewScanner(input),
		lm:    lm,
	}
	r.lines.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	r.cols, _ = columnsFor(DefaultFormat)
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Next reads the next sentence. At the end of the corpus it returns io.EOF.
// Other errors are I/O or format errors and end reading; a sentence with
// malformed records is returned with a nil error and its Err field set.
func (r *Reader) Next() (*Sentence, error) {
	if r.err != nil {
		return nil, r.err
	}
	s := r.pending
	r.pending = nil
	for r.lines.Scan() {
		r.lineno++
		line := r.lines.Bytes()
		fields, err := splitFields(r.lm, line)
		if err != nil {
			return nil, r.fail(errors.Wrapf(err, "line %d", r.lineno))
		}
		if len(fields) == 0 {
			continue
		}
		switch {
		case s == nil && fields[0] == "#FORMAT":
			if err := r.setFormat(fields); err != nil {
				return nil, r.fail(err)
			}
		case s == nil && fields[0] == "#BOS":
			s = newSentence(fields, r.lineno)
		case s == nil:
			continue // header, tables
		case fields[0] == "#EOS":
			tracer().Debugf("sentence #%s with %d records", s.Number, len(s.Records))
			return s, nil
		case fields[0] == "#BOS":
			s.Err = errors.Wrapf(tree.ErrMalformedRecord, "line %d: sentence #%s not terminated", r.lineno, s.Number)
			tracer().Errorf("%v", s.Err)
			r.pending = newSentence(fields, r.lineno)
			return s, nil
		default:
			r.addRecord(s, fields)
		}
	}
	if err := r.lines.Err(); err != nil {
		return nil, r.fail(errors.Wrap(err, "cannot read corpus"))
	}
	r.err = io.EOF
	if s != nil {
		s.Err = errors.Wrapf(tree.ErrMalformedRecord, "sentence #%s not terminated at end of input", s.Number)
		return s, nil
	}
	return nil, io.EOF
}

func newSentence(bos []string, line int) *Sentence {
	s := &Sentence{Line: line}
	if len(bos) > 1 {
		s.Number = bos[1]
	}
	return s
}

func (r *Reader) addRecord(s *Sentence, fields []string) {
	if len(fields) <= r.cols.mother {
		if s.Err == nil {
			s.Err = errors.Wrapf(tree.ErrMalformedRecord, "line %d: expected %d fields, have %d",
				r.lineno, r.cols.mother+1, len(fields))
		}
		return
	}
	s.Records = append(s.Records, tree.Record{
		ID:     fields[0],
		Label:  fields[r.cols.label],
		Mother: fields[r.cols.mother],
	})
}

func (r *Reader) setFormat(fields []string) error {
	if r.fixed {
		return nil
	}
	if len(fields) < 2 {
		return errors.Wrapf(ErrUnsupportedFormat, "line %d: missing version", r.lineno)
	}
	v, err := strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil {
		return errors.Wrapf(ErrUnsupportedFormat, "line %d: version %q", r.lineno, fields[1])
	}
	cols, err := columnsFor(v)
	if err != nil {
		return errors.Wrapf(err, "line %d", r.lineno)
	}
	tracer().Debugf("corpus in NeGra format %d", v)
	r.cols = cols
	return nil
}

func (r *Reader) fail(err error) error {
	r.err = err
	return err
}

// ReadAll reads all sentences of a corpus.
func ReadAll(input io.Reader, opts ...Option) ([]*Sentence, error) {
	r, err := NewReader(input, opts...)
	if err != nil {
		return nil, err
	}
	var sentences []*Sentence
	for {
		s, err := r.Next()
		if err == io.EOF {
			return sentences, nil
		}
		if err != nil {
			return sentences, err
		}
		sentences = append(sentences, s)
	}
}
