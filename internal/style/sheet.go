package style

import (
	"bytes"
	"fmt"
	"io"
	"slices"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Subject is what selectors match against.
type Subject struct {
	Kind    string
	ID      string
	Classes []string
}

func (s Subject) String() string {
	var b strings.Builder
	b.WriteString(s.Kind)
	if s.ID != "" {
		b.WriteString("#" + s.ID)
	}
	for _, c := range s.Classes {
		b.WriteString("." + c)
	}
	return b.String()
}

// Selector matches nodes by kind, element id and classes. The zero
// Selector matches everything.
type Selector struct {
	Kind    string
	ID      string
	Classes []string
}

// ParseSelector parses "*", "kind", ".class", "#id" and compounds such as
// "text.title#main".
func ParseSelector(s string) (Selector, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Selector{}, fmt.Errorf("empty selector")
	}
	if s == "*" {
		return Selector{}, nil
	}

	var sel Selector
	i := strings.IndexAny(s, ".#")
	if i < 0 {
		i = len(s)
	}
	sel.Kind = s[:i]
	s = s[i:]
	for s != "" {
		prefix := s[0]
		s = s[1:]
		j := strings.IndexAny(s, ".#")
		if j < 0 {
			j = len(s)
		}
		name := s[:j]
		s = s[j:]
		if name == "" {
			return Selector{}, fmt.Errorf("empty name after %q", prefix)
		}
		if prefix == '#' {
			if sel.ID != "" {
				return Selector{}, fmt.Errorf("selector has two ids")
			}
			sel.ID = name
		} else {
			sel.Classes = append(sel.Classes, name)
		}
	}
	return sel, nil
}

// Specificity weighs an id at 100, a class at 10 and a kind at 1.
func (s Selector) Specificity() int {
	n := 10 * len(s.Classes)
	if s.ID != "" {
		n += 100
	}
	if s.Kind != "" {
		n++
	}
	return n
}

// Matches reports whether the selector applies to sub.
func (s Selector) Matches(sub Subject) bool {
	if s.Kind != "" && s.Kind != sub.Kind {
		return false
	}
	if s.ID != "" && s.ID != sub.ID {
		return false
	}
	for _, c := range s.Classes {
		if !slices.Contains(sub.Classes, c) {
			return false
		}
	}
	return true
}

func (s Selector) String() string {
	out := Subject(s).String()
	if out == "" {
		return "*"
	}
	return out
}

// Rule pairs a selector with declarations.
type Rule struct {
	Selector     Selector
	Declarations []Declaration
}

// Sheet is an ordered list of rules. The zero Sheet is empty and usable.
type Sheet struct {
	Rules []Rule
}

// Add parses selector and appends a rule.
func (s *Sheet) Add(selector string, decls ...Declaration) error {
	sel, err := ParseSelector(selector)
	if err != nil {
		return fmt.Errorf("selector %q: %w", selector, err)
	}
	s.Rules = append(s.Rules, Rule{Selector: sel, Declarations: decls})
	return nil
}

// Match returns the declarations of every rule matching sub, ordered by
// ascending specificity with ties kept in source order.
func (s *Sheet) Match(sub Subject) []Declaration {
	if s == nil || len(s.Rules) == 0 {
		return nil
	}
	var matched []*Rule
	for i := range s.Rules {
		if s.Rules[i].Selector.Matches(sub) {
			matched = append(matched, &s.Rules[i])
		}
	}
	sort.SliceStable(matched, func(a, b int) bool {
		return matched[a].Selector.Specificity() < matched[b].Selector.Specificity()
	})
	var out []Declaration
	for _, r := range matched {
		out = append(out, r.Declarations...)
	}
	return out
}

// Merge returns a sheet holding the rules of s followed by other.
func (s *Sheet) Merge(other *Sheet) *Sheet {
	out := &Sheet{}
	if s != nil {
		out.Rules = append(out.Rules, s.Rules...)
	}
	if other != nil {
		out.Rules = append(out.Rules, other.Rules...)
	}
	return out
}

// RuleSpec is the YAML form of a rule. Style stays a raw node so
// declarations keep their document order.
type RuleSpec struct {
	Selector string    `yaml:"selector"`
	Style    yaml.Node `yaml:"style"`
}

type sheetSpec struct {
	Rules []RuleSpec `yaml:"rules"`
}

// ParseSheet reads a YAML style sheet:
//
//	rules:
//	  - selector: ".btn"
//	    style:
//	      padding: [4, 8]
//	      background: "#336699"
func ParseSheet(data []byte) (*Sheet, error) {
	var spec sheetSpec
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&spec); err != nil && err != io.EOF {
		return nil, fmt.Errorf("parse style sheet: %w", err)
	}
	return BuildSheet(spec.Rules)
}

// LoadSheet reads a YAML style sheet from r.
func LoadSheet(r io.Reader) (*Sheet, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read style sheet: %w", err)
	}
	return ParseSheet(data)
}

// BuildSheet converts decoded rule specs into a Sheet.
func BuildSheet(specs []RuleSpec) (*Sheet, error) {
	sheet := &Sheet{}
	for i, rs := range specs {
		decls, err := DecodeDeclarations(&rs.Style)
		if err != nil {
			return nil, fmt.Errorf("rule %d (%s): %w", i, rs.Selector, err)
		}
		if err := sheet.Add(rs.Selector, decls...); err != nil {
			return nil, fmt.Errorf("rule %d: %w", i, err)
		}
	}
	return sheet, nil
}

// DecodeDeclarations reads a YAML mapping of property names to values, in
// document order.
func DecodeDeclarations(n *yaml.Node) ([]Declaration, error) {
	if n.Kind == 0 {
		return nil, nil
	}
	if n.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: style must be a mapping", n.Line)
	}
	decls := make([]Declaration, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, val := n.Content[i], n.Content[i+1]
		prop, ok := PropertyByName(key.Value)
		if !ok {
			return nil, fmt.Errorf("line %d: unknown property %q", key.Line, key.Value)
		}
		var raw any
		if err := val.Decode(&raw); err != nil {
			return nil, fmt.Errorf("line %d: %s: %w", val.Line, key.Value, err)
		}
		v, err := ParseValue(prop, raw)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", val.Line, err)
		}
		decls = append(decls, Declaration{Property: prop, Value: v})
	}
	return decls, nil
}
