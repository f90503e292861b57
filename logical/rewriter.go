package logical

import (
	"go.uber.org/zap"

	"logicss/common"
	"logicss/css"
)

// Options controls single rewriting run.
type Options struct {
	// Preserve keeps original logical declaration after its physical
	// replacement.
	Preserve bool
	// Dir is text direction of the document. When unset direction sensitive
	// properties are emitted twice in rules guarded by :dir().
	Dir common.Direction
}

// Stats summarizes what Process did.
type Stats struct {
	Visited        int // declarations looked at
	Rewritten      int // declarations which got replacement
	RulesAdded     int // :dir() rules inserted
	ParentsRemoved int // rules or at-rules removed because they became empty
}

// Rewriter replaces logical properties with physical ones.
type Rewriter struct {
	opts Options
	log  *zap.Logger
}

// New creates rewriter. Logger may be nil.
func New(opts Options, log *zap.Logger) *Rewriter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Rewriter{opts: opts, log: log.Named("logical")}
}

// Options returns options rewriter was created with.
func (r *Rewriter) Options() Options {
	return r.opts
}

// Process rewrites stylesheet in place. Every declaration present when call
// starts is visited once, replacements are never expanded again.
func (r *Rewriter) Process(sheet *css.Stylesheet) Stats {
	var st Stats
	sheet.WalkDecls(func(d *css.Declaration) {
		st.Visited++
		r.rewrite(d, &st)
	})
	r.log.Debug("Logical properties processed",
		zap.Stringer("dir", r.opts.Dir),
		zap.Bool("preserve", r.opts.Preserve),
		zap.Int("visited", st.Visited),
		zap.Int("rewritten", st.Rewritten),
		zap.Int("rules", st.RulesAdded),
		zap.Int("removed", st.ParentsRemoved))
	return st
}

// Replacement returns nodes which would replace declaration or nil when
// declaration is not logical or its value cannot be expanded. Declaration is
// not modified.
func (r *Rewriter) Replacement(d *css.Declaration) []css.Node {
	fn, ok := transforms[NormalizeName(d.Property)]
	if !ok {
		return nil
	}
	return fn(d, splitValue(d.Property, d.Value), r.opts.Dir)
}

func (r *Rewriter) rewrite(d *css.Declaration, st *Stats) {
	parent := d.Parent()
	if parent == nil {
		return
	}
	nodes := r.Replacement(d)
	if len(nodes) == 0 {
		return
	}
	st.Rewritten++

	// rules go in front of the rule holding declaration, when there is no
	// such rule they are nested in place
	holder, at := parent, css.Node(d)
	if rule, ok := parent.(*css.Rule); ok && rule.Parent() != nil {
		holder, at = rule.Parent(), rule
	}
	for _, n := range nodes {
		switch v := n.(type) {
		case *css.Rule:
			holder.InsertBefore(at, v)
			st.RulesAdded++
		default:
			parent.InsertBefore(d, v)
		}
	}
	r.log.Debug("Rewrote logical property",
		zap.String("property", d.Property),
		zap.String("value", d.Value),
		zap.Int("nodes", len(nodes)))

	if r.opts.Preserve {
		return
	}
	parent.Remove(d)
	if _, root := parent.(*css.Stylesheet); root || len(parent.Nodes()) > 0 {
		return
	}
	if grand := parent.Parent(); grand != nil && grand.Remove(parent) {
		st.ParentsRemoved++
	}
}
