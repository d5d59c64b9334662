package scope

import (
	"fmt"
	"sort"
	"strings"
)

// Print renders the scope tree: 2 spaces per nesting level,
// each node as "<boundName>:" followed by its table's local entries as
// "<key> ==> <value>" (the value shown by its AnnotationName), then its
// children wrapped in \ ... // delimiters.
func Print(root *Node) string {
	var b strings.Builder
	printNode(&b, root, 0)
	return b.String()
}

func printNode(b *strings.Builder, n *Node, depth int) {
	indent := strings.Repeat("  ", depth)
	fmt.Fprintf(b, "%s%s:\n", indent, n.BoundName)

	entries := n.Table.Local()
	sort.Slice(entries, func(i, j int) bool { return entries[i].Key < entries[j].Key })
	for _, e := range entries {
		fmt.Fprintf(b, "%s  %s ==> %s\n", indent, e.Key, e.Value.AnnotationName())
	}

	if len(n.Children) == 0 {
		return
	}
	fmt.Fprintf(b, "%s\\\n", indent)
	for _, c := range n.Children {
		printNode(b, c, depth+1)
	}
	fmt.Fprintf(b, "%s//\n", indent)
}
