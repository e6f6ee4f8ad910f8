package syntax

import (
	"encoding/json"
	"io"
)

// FprintJSON writes a JSON representation of the AST to w.
func FprintJSON(w io.Writer, node Node) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toJSON(node))
}

func toJSON(node Node) interface{} {
	if node == nil {
		return nil
	}

	switch n := node.(type) {
	case *File:
		return map[string]interface{}{
			"type":     "File",
			"pos":      n.pos.String(),
			"elements": mapSlice(n.Elements, func(e Element) interface{} { return toJSON(e) }),
		}

	case *Function:
		m := map[string]interface{}{
			"type":   "Function",
			"pos":    n.pos.String(),
			"name":   n.Name,
			"params": mapSlice(n.Params, func(p *Param) interface{} { return toJSON(p) }),
			"result": typeJSON(n.Result),
		}
		if n.Body != nil {
			m["body"] = toJSON(n.Body)
		}
		return m

	case *Param:
		return map[string]interface{}{
			"type":      "Param",
			"pos":       n.pos.String(),
			"name":      n.Name,
			"paramtype": typeJSON(n.Type),
		}

	case *Scope:
		return map[string]interface{}{
			"type":  "Scope",
			"pos":   n.pos.String(),
			"stmts": mapSlice(n.Stmts, func(s Stmt) interface{} { return toJSON(s) }),
		}

	case *ReturnStmt:
		m := map[string]interface{}{
			"type": "ReturnStmt",
			"pos":  n.pos.String(),
		}
		if n.Result != nil {
			m["result"] = toJSON(n.Result)
		}
		return m

	case *AssignStmt:
		return map[string]interface{}{
			"type":    "AssignStmt",
			"pos":     n.pos.String(),
			"mutable": n.Mutable,
			"name":    n.Name,
			"rhs":     toJSON(n.RHS),
		}

	case *BinaryExpr:
		return map[string]interface{}{
			"type": "BinaryExpr",
			"pos":  n.pos.String(),
			"op":   n.Op.String(),
			"x":    toJSON(n.X),
			"y":    toJSON(n.Y),
		}

	case *UnaryExpr:
		return map[string]interface{}{
			"type": "UnaryExpr",
			"pos":  n.pos.String(),
			"op":   n.Op.String(),
			"x":    toJSON(n.X),
		}

	case *ConstantExpr:
		m := map[string]interface{}{
			"type":   "ConstantExpr",
			"pos":    n.pos.String(),
			"signed": n.Value.Signed,
		}
		if n.Value.Signed {
			m["value"] = n.Value.Int
		} else {
			m["value"] = n.Value.UInt
		}
		return m

	case *VariableExpr:
		return map[string]interface{}{
			"type": "VariableExpr",
			"pos":  n.pos.String(),
			"name": n.Name,
		}

	case *CallExpr:
		return map[string]interface{}{
			"type": "CallExpr",
			"pos":  n.pos.String(),
			"name": n.Name,
			"args": mapSlice(n.Args, func(a Expr) interface{} { return toJSON(a) }),
		}

	default:
		return map[string]interface{}{
			"type": "Unknown",
		}
	}
}

func typeJSON(t Type) interface{} {
	return map[string]interface{}{
		"name":    t.Name,
		"pointer": t.Pointer,
	}
}

func mapSlice[T any](s []T, f func(T) interface{}) []interface{} {
	result := make([]interface{}, len(s))
	for i, v := range s {
		result[i] = f(v)
	}
	return result
}
