package main

import (
	"fmt"
	"go/format"
	"log"
	"os"
	"strings"
)

var stmtTypes = []string{
	"Expr: expression expr",
	"Print: keyword *token, expression expr",
	"Let: name *token, initializer expr, mutable bool",
	"Block: stmts []stmt",
	"If: keyword *token, condition expr, thenBranch stmt, elseBranch stmt",
	"For: keyword *token, condition expr, body stmt, closer stmt",
	"Return: keyword *token, value expr",
	"Break: keyword *token",
	"Continue: keyword *token",
	"Class: name *token, superclass *variableExpr, methods []*functionExpr",
}

var exprTypes = []string{
	"Literal: value interface{}",
	"Grouping: expression expr",
	"Unary: operator *token, right expr",
	"Binary: left expr, operator *token, right expr",
	"Logical: left expr, operator *token, right expr",
	"Variable: name *token, depth int",
	"Assign: name *token, value expr, depth int",
	"Call: callee expr, paren *token, arguments []expr",
	"Function: keyword *token, name *token, params []*token, body []stmt",
	"Get: object expr, name *token, key expr",
	"Access: object expr, brace *token, index expr",
	"Set: target expr, equal *token, value expr",
	"This: keyword *token, depth int",
	"Super: keyword *token, method *token, depth int",
	"Object: brace *token, keys []string, values []expr",
	"List: brace *token, elements []expr",
}

//go:generate sh -c "go run . Expr > ../../internal/expr.go"
//go:generate sh -c "go run . Stmt > ../../internal/stmt.go"

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: ast Expr|Stmt")
		os.Exit(64)
	}

	var out string
	switch os.Args[1] {
	case "Stmt":
		out = generateAst("Stmt", stmtTypes)
	case "Expr":
		out = generateAst("Expr", exprTypes)
	default:
		fmt.Fprintf(os.Stderr, "Unknown node family %q\n", os.Args[1])
		os.Exit(64)
	}

	src, err := format.Source([]byte(out))
	if err != nil {
		log.Fatal(err)
	}
	fmt.Print(string(src))
}

func generateAst(baseName string, types []string) string {
	out := "// Code generated by cmd/ast; DO NOT EDIT.\n\n"
	out += "package internal\n\n"

	// Start base interface
	out += "type " + strings.ToLower(baseName) + " interface {\n"
	out += "\taccept(" + strings.ToLower(baseName) + "Visitor) (R, error)\n"
	out += "}\n\n"
	// End base interface

	// Start Visitor interface
	out += fmt.Sprintf("type %sVisitor interface {\n", strings.ToLower(baseName))
	for _, t := range types {
		typeDef := strings.Split(t, ":")
		name := strings.TrimSpace(typeDef[0])
		structType := strings.ToLower(string(name[0])) + name[1:] + baseName
		out += "\tvisit" + name + baseName + "(" + strings.ToLower(baseName) + " *" + structType + ") (R, error)\n"
	}
	out += "}\n\n"
	// End Visitor interface

	// Start  structs
	for _, t := range types {
		typeDef := strings.Split(t, ":")
		structName := strings.TrimSpace(typeDef[0])
		structFields := strings.TrimSpace(typeDef[1])
		out += generateType(baseName, structName, structFields)
	}
	// End structs

	return out
}

func generateType(baseName, name, fields string) string {
	// Start Structure Definition
	structName := strings.ToLower(string(name[0])) + name[1:] + baseName
	out := "type " + structName + " struct {\n"
	fieldArray := strings.Split(fields, ",")
	for _, field := range fieldArray {
		out += "\t" + strings.TrimSpace(field) + "\n"
	}
	out += "}\n\n"
	// End Structure Definition

	// Start Method Definition
	out += "func (s *" + structName + ") accept(visitor " + strings.ToLower(baseName) + "Visitor) (R, error) {\n"
	out += "\treturn visitor.visit" + name + baseName + "(s)\n"
	out += "}\n\n"
	// End Method Definition

	return out
}
