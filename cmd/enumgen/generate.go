/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package main

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/format"
	"go/token"
	"strconv"
	"strings"
)

const (
	entityPath = "dirpx.dev/enumx/entity"
	enumxPath  = "dirpx.dev/enumx"
	header     = "// Code generated by enumgen. DO NOT EDIT."
)

// group is one concrete type and its instance variables in source order.
type group struct {
	Type string
	Vars []string
}

// scan finds exported package-level variables initialised with a composite
// literal of a same-package struct type embedding entity.Base or
// entity.Bridged. Files carrying the generated header are skipped.
func scan(files []*ast.File) []group {
	types := make(map[string]bool)
	for _, f := range files {
		if generated(f) {
			continue
		}
		alias, ok := entityImport(f)
		if !ok {
			continue
		}
		for _, spec := range specs(f, token.TYPE) {
			ts := spec.(*ast.TypeSpec)
			if st, ok := ts.Type.(*ast.StructType); ok && embedsEntity(st, alias) {
				types[ts.Name.Name] = true
			}
		}
	}

	var out []group
	index := make(map[string]int)
	for _, f := range files {
		if generated(f) {
			continue
		}
		for _, spec := range specs(f, token.VAR) {
			vs := spec.(*ast.ValueSpec)
			for i, name := range vs.Names {
				if i >= len(vs.Values) || !name.IsExported() {
					continue
				}
				typ := literalType(vs.Values[i])
				if !types[typ] {
					continue
				}
				j, ok := index[typ]
				if !ok {
					j = len(out)
					index[typ] = j
					out = append(out, group{Type: typ})
				}
				out[j].Vars = append(out[j].Vars, name.Name)
			}
		}
	}
	return out
}

// render returns the formatted source of the generated file.
func render(pkg string, groups []group) ([]byte, error) {
	var b bytes.Buffer
	fmt.Fprintf(&b, "%s\n\npackage %s\n\nimport %q\n\nfunc init() {\n", header, pkg, enumxPath)
	for _, g := range groups {
		fmt.Fprintf(&b, "\tenumx.MustDeclare(%s)\n", strings.Join(g.Vars, ", "))
	}
	b.WriteString("}\n")
	return format.Source(b.Bytes())
}

func generated(f *ast.File) bool {
	for _, c := range f.Comments {
		if c.Pos() > f.Package {
			break
		}
		for _, l := range c.List {
			if l.Text == header {
				return true
			}
		}
	}
	return false
}

// entityImport returns the local name of the entity package in f.
func entityImport(f *ast.File) (string, bool) {
	for _, imp := range f.Imports {
		path, err := strconv.Unquote(imp.Path.Value)
		if err != nil || path != entityPath {
			continue
		}
		if imp.Name != nil {
			return imp.Name.Name, imp.Name.Name != "_" && imp.Name.Name != "."
		}
		return "entity", true
	}
	return "", false
}

func specs(f *ast.File, tok token.Token) []ast.Spec {
	var out []ast.Spec
	for _, d := range f.Decls {
		if gd, ok := d.(*ast.GenDecl); ok && gd.Tok == tok {
			out = append(out, gd.Specs...)
		}
	}
	return out
}

func embedsEntity(st *ast.StructType, alias string) bool {
	for _, field := range st.Fields.List {
		if len(field.Names) != 0 {
			continue
		}
		x := field.Type
		switch t := x.(type) {
		case *ast.IndexExpr:
			x = t.X
		case *ast.IndexListExpr:
			x = t.X
		}
		sel, ok := x.(*ast.SelectorExpr)
		if !ok {
			continue
		}
		if pkg, ok := sel.X.(*ast.Ident); ok && pkg.Name == alias &&
			(sel.Sel.Name == "Base" || sel.Sel.Name == "Bridged") {
			return true
		}
	}
	return false
}

// literalType returns the type name of a T{...} literal. Pointer literals
// are ignored.
func literalType(e ast.Expr) string {
	if u, ok := e.(*ast.UnaryExpr); ok && u.Op == token.AND {
		return ""
	}
	cl, ok := e.(*ast.CompositeLit)
	if !ok {
		return ""
	}
	id, ok := cl.Type.(*ast.Ident)
	if !ok {
		return ""
	}
	return id.Name
}
