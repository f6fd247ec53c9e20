package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Print renders a program (a *VectorWrapper of top-level statements, or any
// single statement/expression) back into Spearmint source text. It exists to
// support the parser-idempotence property: parse, Print, re-parse should
// produce an AST equal to the first one modulo position information.
func Print(node Node) string {
	var sb strings.Builder
	printNode(&sb, node, 0)
	return sb.String()
}

func indent(sb *strings.Builder, depth int) {
	sb.WriteString(strings.Repeat("    ", depth))
}

func printBlock(sb *strings.Builder, block *VectorWrapper, depth int) {
	sb.WriteString("{\n")
	for _, stmt := range block.Statements {
		indent(sb, depth+1)
		printNode(sb, stmt, depth+1)
		sb.WriteString(";\n")
	}
	indent(sb, depth)
	sb.WriteString("}")
}

func printNode(sb *strings.Builder, node Node, depth int) {
	switch n := node.(type) {
	case nil:
		return
	case *VectorWrapper:
		for i, stmt := range n.Statements {
			if i > 0 {
				sb.WriteString("\n")
			}
			printNode(sb, stmt, depth)
			sb.WriteString(";")
		}
	case *IntLiteral:
		sb.WriteString(strconv.FormatInt(n.Value, 10))
	case *FloatLiteral:
		// Always keep a '.' so the literal re-lexes as a Float, never an Int.
		s := strconv.FormatFloat(n.Value, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		sb.WriteString(s)
	case *StringLiteral:
		sb.WriteString(strconv.Quote(n.Value))
	case *ListLiteral:
		sb.WriteString("[")
		for i, el := range n.Elements {
			if i > 0 {
				sb.WriteString(", ")
			}
			printNode(sb, el, depth)
		}
		sb.WriteString("]")
	case *UnaryOp:
		sb.WriteString(n.Op)
		printNode(sb, n.Operand, depth)
	case *BinOp:
		sb.WriteString("(")
		printNode(sb, n.Left, depth)
		fmt.Fprintf(sb, " %s ", n.Op)
		printNode(sb, n.Right, depth)
		sb.WriteString(")")
	case *VarDeclaration:
		if n.IsConst {
			sb.WriteString("const ")
		}
		sb.WriteString("var ")
		sb.WriteString(n.Name)
		sb.WriteString(" = ")
		printNode(sb, n.Initializer, depth)
	case *VarAssign:
		sb.WriteString(n.Name)
		sb.WriteString(" = ")
		printNode(sb, n.Expression, depth)
	case *VarAccess:
		sb.WriteString(n.Name)
	case *AttributeAccess:
		printNode(sb, n.Target, depth)
		sb.WriteString(".")
		sb.WriteString(n.Field)
	case *AttributeAssign:
		printNode(sb, n.Target, depth)
		sb.WriteString(" = ")
		printNode(sb, n.Value, depth)
	case *IndexAccess:
		printNode(sb, n.Target, depth)
		sb.WriteString("[")
		printNode(sb, n.Index, depth)
		sb.WriteString("]")
	case *If:
		for i, c := range n.Cases {
			if i == 0 {
				sb.WriteString("if (")
			} else {
				sb.WriteString(" else if (")
			}
			printNode(sb, c.Condition, depth)
			sb.WriteString(") ")
			printBlock(sb, c.Body, depth)
		}
		if n.Else != nil {
			sb.WriteString(" else ")
			printBlock(sb, n.Else, depth)
		}
	case *For:
		sb.WriteString("for (")
		printNode(sb, n.Init, depth)
		sb.WriteString("; ")
		printNode(sb, n.Cond, depth)
		sb.WriteString("; ")
		printNode(sb, n.Update, depth)
		sb.WriteString(") ")
		printBlock(sb, n.Body, depth)
	case *While:
		sb.WriteString("while (")
		printNode(sb, n.Cond, depth)
		sb.WriteString(") ")
		printBlock(sb, n.Body, depth)
	case *FunctionDef:
		sb.WriteString("fn ")
		sb.WriteString(n.Name)
		sb.WriteString("(")
		sb.WriteString(strings.Join(n.ParamNames, ", "))
		sb.WriteString(") ")
		printBlock(sb, n.Body, depth)
	case *FunctionCall:
		printNode(sb, n.Callee, depth)
		sb.WriteString("(")
		for i, a := range n.Args {
			if i > 0 {
				sb.WriteString(", ")
			}
			printNode(sb, a, depth)
		}
		sb.WriteString(")")
	case *Return:
		sb.WriteString("return")
		if n.Expression != nil {
			sb.WriteString(" ")
			printNode(sb, n.Expression, depth)
		}
	case *Break:
		sb.WriteString("break")
	case *Continue:
		sb.WriteString("continue")
	case *StructureDef:
		sb.WriteString("type ")
		sb.WriteString(n.Name)
		sb.WriteString(" {\n")
		for _, m := range n.Members {
			indent(sb, depth+1)
			printNode(sb, m, depth+1)
			sb.WriteString(";\n")
		}
		indent(sb, depth)
		sb.WriteString("}")
	case *ConstructorCall:
		sb.WriteString("new ")
		printNode(sb, n.Expression, depth)
	case *Import:
		sb.WriteString("import ")
		sb.WriteString(strconv.Quote(n.ModuleName))
	default:
		fmt.Fprintf(sb, "/* unknown node %T */", n)
	}
}
