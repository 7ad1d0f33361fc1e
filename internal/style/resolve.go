package style

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Input exposes a node tree to the resolver. Nodes are addressed by index
// in [0, Len()).
type Input interface {
	Len() int
	// Root returns the root index, or -1 for an empty tree.
	Root() int
	Children(i int) []int
	Subject(i int) Subject
	Declarations(i int) []Declaration
	// Inherit returns properties the node copies from its parent in
	// addition to the Inherited set.
	Inherit(i int) PropertySet
	SubtreeSize(i int) int
}

// DefaultParallelThreshold is the subtree size resolved on its own
// goroutine when Options leaves it unset.
const DefaultParallelThreshold = 512

// Options tunes a resolution pass.
type Options struct {
	// Workers bounds concurrent goroutines. Zero means GOMAXPROCS.
	Workers int
	// ParallelThreshold is the minimum subtree size resolved on a separate
	// goroutine. Zero means DefaultParallelThreshold; negative disables.
	ParallelThreshold int
}

type resolver struct {
	in        Input
	sheet     *Sheet
	out       []Resolved
	errs      [][]*Error
	threshold int
	g         *errgroup.Group
}

// Resolve computes the style of every node in in. The result is indexed
// like the input. Errors are ordered by node index, then declaration order.
func Resolve(in Input, sheet *Sheet, opts Options) ([]Resolved, []*Error) {
	n := in.Len()
	r := &resolver{
		in:        in,
		sheet:     sheet,
		out:       make([]Resolved, n),
		errs:      make([][]*Error, n),
		threshold: opts.ParallelThreshold,
	}
	root := in.Root()
	if root < 0 {
		return r.out, nil
	}
	if r.threshold == 0 {
		r.threshold = DefaultParallelThreshold
	}
	if r.threshold > 0 {
		workers := opts.Workers
		if workers <= 0 {
			workers = runtime.GOMAXPROCS(0)
		}
		r.g = &errgroup.Group{}
		r.g.SetLimit(workers)
	}

	base := Default()
	r.subtree(root, &base)
	if r.g != nil {
		_ = r.g.Wait()
	}

	var errs []*Error
	for _, e := range r.errs {
		errs = append(errs, e...)
	}
	return r.out, errs
}

// subtree resolves i and then its descendants. Large child subtrees are
// handed to the group when a worker is free and resolved inline otherwise.
func (r *resolver) subtree(i int, parent *Resolved) {
	r.node(i, parent)
	self := &r.out[i]
	for _, c := range r.in.Children(i) {
		if r.g != nil && r.in.SubtreeSize(c) >= r.threshold {
			if r.g.TryGo(func() error {
				r.subtree(c, self)
				return nil
			}) {
				continue
			}
		}
		r.subtree(c, self)
	}
}

func (r *resolver) node(i int, parent *Resolved) {
	res := Default()
	res.inherit(parent, Inherited|r.in.Inherit(i))

	sub := r.in.Subject(i)
	for _, d := range r.sheet.Match(sub) {
		r.apply(i, sub, &res, parent, d)
	}
	for _, d := range r.in.Declarations(i) {
		r.apply(i, sub, &res, parent, d)
	}
	res.normalize()
	r.out[i] = res
}

func (r *resolver) apply(i int, sub Subject, res, parent *Resolved, d Declaration) {
	if err := res.apply(parent, d); err != nil {
		r.errs[i] = append(r.errs[i], &Error{
			Node:     i,
			Subject:  sub,
			Property: d.Property,
			Value:    d.Value,
			Err:      err,
		})
	}
}
