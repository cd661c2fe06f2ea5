package asset

import (
	"fmt"
	"strings"
)

// Node labels one tree node, Done marks it purchased
type Node struct {
	Label string
	Done  bool
}

func (n Node) String() string {
	mark := " "
	if n.Done {
		mark = "X"
	}
	return fmt.Sprintf("[%s:%s]", n.Label, mark)
}

// nodeAt returns the rendered node or a blank slot past the end
func nodeAt(nodes []Node, i int) string {
	if i < len(nodes) {
		return nodes[i].String()
	}
	return "[  : ]"
}

// fill expands a template where each {} takes the next node
func fill(template []string, nodes []Node) []string {
	out := make([]string, len(template))
	next := 0
	for i, line := range template {
		for strings.Contains(line, "{}") {
			line = strings.Replace(line, "{}", nodeAt(nodes, next), 1)
			next++
		}
		out[i] = line
	}
	return out
}

var researchTemplate = []string{
	"              ┌──────{}──────┐",
	"              |                  |",
	"      ┌────{}────┐      {}────┐",
	"      |              |                 |",
	"     {}  {}          {}",
	"            |                           |",
	"           {}  {}   {}",
	"                      |",
	"                     {}",
}

// ResearchTree draws the ten research slots in purchase order
func ResearchTree(nodes []Node) []string {
	return fill(researchTemplate, nodes)
}

var technologyTemplate = []string{
	"        {}",
	"           |",
	"     ┌─────┴─────┐",
	"  {}       {}",
	"     |           |",
	" ┌───┴───┐       |",
	"{} {} {}",
	" |       |       |",
	"{} {} {} {}",
	" └───┬───┴───────┘",
	"     |",
	" {} {}",
	" └───┴───┬───┐",
	"      {} {}",
	"  ┌───┴───┐   |",
	"{} {} {}",
	"  └───┬───┴───┘",
	"      |",
	"  {} {}",
	"  └───┬───┘",
	"      |",
	"   {}",
}

// TechnologyTree draws the twenty mining technology slots in content order
func TechnologyTree(nodes []Node) []string {
	return fill(technologyTemplate, nodes)
}
