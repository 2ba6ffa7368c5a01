package similarity

// BKTree is a BK-tree over normalized reference forms using edit
// distance as the metric. Nodes live in a flat arena addressed by index,
// so insertion and queries are iterative. The tree is built once; after
// that it is read-only and safe for concurrent queries.
type BKTree struct {
	nodes []bkNode
	size  int
}

// bkNode is one arena slot. Entries whose normalized form equals this
// node's word are recorded as aliases instead of new nodes.
type bkNode struct {
	entry    int32
	word     string
	aliases  []int32
	children map[int]int32
}

// Candidate is one query hit: an entry ID with its edit distance from
// the query target.
type Candidate struct {
	Entry    int32
	Word     string
	Distance int
}

// NewBKTree creates a new empty BK-tree.
func NewBKTree() *BKTree {
	return &BKTree{}
}

// Insert adds an entry with the given normalized form. The first entry
// becomes the root; identical forms attach to the existing node as
// aliases rather than creating a new subtree.
func (t *BKTree) Insert(id int32, word string) {
	if word == "" {
		return
	}

	if len(t.nodes) == 0 {
		t.nodes = append(t.nodes, bkNode{
			entry:    id,
			word:     word,
			children: make(map[int]int32),
		})
		t.size++
		return
	}

	current := int32(0)
	for {
		node := &t.nodes[current]
		dist := LevenshteinDistance(word, node.word)
		if dist == 0 {
			node.aliases = append(node.aliases, id)
			t.size++
			return
		}

		child, exists := node.children[dist]
		if !exists {
			// Appending may move the arena, so grab the child map first.
			children := node.children
			t.nodes = append(t.nodes, bkNode{
				entry:    id,
				word:     word,
				children: make(map[int]int32),
			})
			children[dist] = int32(len(t.nodes) - 1)
			t.size++
			return
		}
		current = child
	}
}

// Query finds all entries within maxDistance edit distance from the
// target. Subtrees whose edge distance k violates |k - d| <= maxDistance
// cannot contain a hit and are pruned. Result order is unspecified.
func (t *BKTree) Query(target string, maxDistance int) []Candidate {
	if len(t.nodes) == 0 || target == "" {
		return nil
	}

	var results []Candidate
	stack := []int32{0}

	for len(stack) > 0 {
		idx := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		node := &t.nodes[idx]

		dist := LevenshteinDistance(target, node.word)
		if dist <= maxDistance {
			results = append(results, Candidate{Entry: node.entry, Word: node.word, Distance: dist})
			for _, alias := range node.aliases {
				results = append(results, Candidate{Entry: alias, Word: node.word, Distance: dist})
			}
		}

		for edge, child := range node.children {
			if edge >= dist-maxDistance && edge <= dist+maxDistance {
				stack = append(stack, child)
			}
		}
	}

	return results
}

// Size returns the number of entries in the tree, aliases included.
func (t *BKTree) Size() int {
	return t.size
}

// Contains checks if a normalized form exists in the tree.
func (t *BKTree) Contains(word string) bool {
	for _, c := range t.Query(word, 0) {
		if c.Distance == 0 {
			return true
		}
	}
	return false
}
