// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package validate parses edit candidates before they are written, so the
// engine never commits syntactically broken content for a checkable
// language. Validation is advisory for everything else: unknown file types
// always pass.
// Implements: prd004-syntax-validation R1, R2;
//
//	docs/ARCHITECTURE § Syntax Validation.
package validate

import (
	"context"
	"errors"
	"fmt"
	"go/parser"
	"go/token"
	"path/filepath"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/python"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
	"github.com/smacker/go-tree-sitter/yaml"
)

// checkableLangs maps file extensions to their tree-sitter grammar. Go is
// handled separately with the standard library parser.
var checkableLangs = map[string]*sitter.Language{
	".py":   python.GetLanguage(),
	".js":   javascript.GetLanguage(),
	".ts":   typescript.GetLanguage(),
	".yaml": yaml.GetLanguage(),
	".yml":  yaml.GetLanguage(),
}

// Checkable reports whether the path's extension maps to a language this
// package can parse.
func Checkable(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".go" {
		return true
	}
	_, ok := checkableLangs[ext]
	return ok
}

// Check parses content for the language implied by path's extension and
// returns an error describing the first problem found. Non-checkable file
// types always pass.
//
// Implements: prd004-syntax-validation R1.1-R1.4.
func Check(path, content string) error {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".go" {
		return checkGo(path, content)
	}
	lang, ok := checkableLangs[ext]
	if !ok {
		return nil
	}
	return checkTreeSitter(lang, content)
}

func checkGo(path, content string) error {
	fset := token.NewFileSet()
	if _, err := parser.ParseFile(fset, filepath.Base(path), content, 0); err != nil {
		return fmt.Errorf("go syntax: %w", err)
	}
	return nil
}

func checkTreeSitter(lang *sitter.Language, content string) error {
	p := sitter.NewParser()
	p.SetLanguage(lang)

	tree, err := p.ParseCtx(context.Background(), nil, []byte(content))
	if err != nil {
		return fmt.Errorf("parsing candidate: %w", err)
	}
	defer tree.Close()

	if tree.RootNode().HasError() {
		return errors.New("syntax tree contains errors")
	}
	return nil
}
