package report

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/garciat/negcoh/check"
)

type Options struct {
	// Explain adds the reason and the impl positions under each verdict.
	Explain bool
	// Summary appends per-verdict counts.
	Summary bool
}

type Summary struct {
	Pairs    int `yaml:"pairs"`
	Overlap  int `yaml:"overlap"`
	Disjoint int `yaml:"disjoint"`
}

func Summarize(results []check.Result) Summary {
	s := Summary{Pairs: len(results)}
	for _, r := range results {
		switch r.Verdict {
		case check.Overlap:
			s.Overlap++
		case check.Disjoint:
			s.Disjoint++
		default:
			panic("unreachable")
		}
	}
	return s
}

func (s Summary) String() string {
	return fmt.Sprintf("%d pairs: %d overlap, %d disjoint", s.Pairs, s.Overlap, s.Disjoint)
}

// WriteText prints one line per pair:
//
//	Overlap: "impl<P: TA> T<P> for A {}" and "impl<P: TB> T<P> for A {}"
func WriteText(w io.Writer, results []check.Result, opts Options) error {
	for _, r := range results {
		if _, err := fmt.Fprintf(w, "%v: %q and %q\n", r.Verdict, r.Left, r.Right); err != nil {
			return err
		}
		if opts.Explain {
			if _, err := fmt.Fprintf(w, "    at %v and %v\n    %v\n", r.Left.Pos, r.Right.Pos, r.Reason); err != nil {
				return err
			}
		}
	}
	if opts.Summary {
		if _, err := fmt.Fprintln(w, Summarize(results)); err != nil {
			return err
		}
	}
	return nil
}

// ========================

type Document struct {
	Package string   `yaml:"package,omitempty"`
	Results []Entry  `yaml:"results"`
	Summary *Summary `yaml:"summary,omitempty"`
}

type Entry struct {
	Verdict  string `yaml:"verdict"`
	Left     string `yaml:"left"`
	Right    string `yaml:"right"`
	LeftPos  string `yaml:"left_pos,omitempty"`
	RightPos string `yaml:"right_pos,omitempty"`
	Reason   string `yaml:"reason,omitempty"`
}

func NewEntry(r check.Result, explain bool) Entry {
	e := Entry{
		Verdict: r.Verdict.String(),
		Left:    r.Left.String(),
		Right:   r.Right.String(),
	}
	if explain {
		e.LeftPos = r.Left.Pos.String()
		e.RightPos = r.Right.Pos.String()
		e.Reason = r.Reason.String()
	}
	return e
}

func NewDocument(name string, results []check.Result, opts Options) *Document {
	doc := &Document{Package: name, Results: make([]Entry, 0, len(results))}
	for _, r := range results {
		doc.Results = append(doc.Results, NewEntry(r, opts.Explain))
	}
	if opts.Summary {
		s := Summarize(results)
		doc.Summary = &s
	}
	return doc
}

func WriteYAML(w io.Writer, name string, results []check.Result, opts Options) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(NewDocument(name, results, opts)); err != nil {
		return errors.Wrap(err, "encode report")
	}
	return enc.Close()
}

// ReadDocument parses a report written by WriteYAML. Fixture expectations use
// the same shape without positions or reasons.
func ReadDocument(r io.Reader) (*Document, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.Wrap(err, "decode report")
	}
	return &doc, nil
}

// Diff lists the differences between expected entries and actual results,
// comparing verdicts and impls only.
func Diff(want []Entry, got []check.Result) []string {
	var diffs []string
	if len(want) != len(got) {
		diffs = append(diffs, fmt.Sprintf("got %d pairs, want %d", len(got), len(want)))
	}
	for i := 0; i < min(len(want), len(got)); i++ {
		g := NewEntry(got[i], false)
		w := want[i]
		if g.Verdict != w.Verdict || g.Left != w.Left || g.Right != w.Right {
			diffs = append(diffs, fmt.Sprintf("pair %d: got %v: %q and %q, want %v: %q and %q",
				i, g.Verdict, g.Left, g.Right, w.Verdict, w.Left, w.Right))
		}
	}
	return diffs
}
