package style

// testTree is an index-addressed Input for resolver tests.
type testTree struct {
	nodes []testNode
}

type testNode struct {
	subject  Subject
	decls    []Declaration
	inherit  PropertySet
	children []int
}

// add appends a node under parent (-1 for the root) and returns its index.
func (t *testTree) add(parent int, sub Subject, decls ...Declaration) int {
	i := len(t.nodes)
	t.nodes = append(t.nodes, testNode{subject: sub, decls: decls})
	if parent >= 0 {
		t.nodes[parent].children = append(t.nodes[parent].children, i)
	}
	return i
}

func (t *testTree) Len() int { return len(t.nodes) }

func (t *testTree) Root() int {
	if len(t.nodes) == 0 {
		return -1
	}
	return 0
}

func (t *testTree) Children(i int) []int             { return t.nodes[i].children }
func (t *testTree) Subject(i int) Subject            { return t.nodes[i].subject }
func (t *testTree) Declarations(i int) []Declaration { return t.nodes[i].decls }
func (t *testTree) Inherit(i int) PropertySet        { return t.nodes[i].inherit }

func (t *testTree) SubtreeSize(i int) int {
	n := 1
	for _, c := range t.nodes[i].children {
		n += t.SubtreeSize(c)
	}
	return n
}

func kind(k string) Subject { return Subject{Kind: k} }
