// Package expression converts between ordered member keys and cohort
// expression trees.
package expression

import (
	"fmt"

	"github.com/mishasvintus/cohort_gateway/internal/domain"
)

// Build creates the OR expression for keys.
//
// Keys are folded from the last to the first, so the result associates as
// k0 OR (k1 OR (... OR kN)). The upstream parser depends on this shape.
// No keys yield a nil node.
func Build(keys []string) domain.Node {
	if len(keys) == 0 {
		return nil
	}

	var acc domain.Node = domain.NewLiteral(keys[len(keys)-1])
	for i := len(keys) - 2; i >= 0; i-- {
		acc = domain.NewOr(domain.NewLiteral(keys[i]), acc)
	}
	return acc
}

// BuildFromMembers creates the OR expression for members in list order.
func BuildFromMembers(members []domain.Member) domain.Node {
	return Build(domain.MemberKeys(members))
}

// Flatten returns literal names of n in left-to-right order.
// Nil nodes and nil children contribute nothing.
func Flatten(n domain.Node) []string {
	keys := make([]string, 0)
	walk(n, func(name string) {
		keys = append(keys, name)
	})
	return keys
}

func walk(n domain.Node, visit func(name string)) {
	switch v := n.(type) {
	case nil:
	case *domain.Literal:
		if v != nil {
			visit(v.Name)
		}
	case *domain.BinaryOperator:
		if v != nil {
			walk(v.Left, visit)
			walk(v.Right, visit)
		}
	default:
		panic(fmt.Sprintf("expression: unexpected node type %T", n))
	}
}
