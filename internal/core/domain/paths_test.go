package domain_test

import (
	"testing"

	"go.trai.ch/forge/internal/core/domain"
)

func TestGenPath(t *testing.T) {
	target := domain.NewBuildTarget("", "src/parser", "parser")
	if got := domain.GenPath(target, "%s/grammar.cc"); got != "forge-out/gen/src/parser/parser/grammar.cc" {
		t.Errorf("unexpected gen path: %q", got)
	}
}

func TestGenPath_FlavoredTarget(t *testing.T) {
	target := domain.NewBuildTarget("", "src/parser", "parser").
		Derive(domain.InternFlavor("lex-grammar-ll"))
	if got := domain.GenPath(target, "%s"); got != "forge-out/gen/src/parser/parser#lex-grammar-ll" {
		t.Errorf("unexpected gen path: %q", got)
	}
}

func TestBinPath(t *testing.T) {
	target := domain.NewBuildTarget("", "app", "main").Derive(domain.InternFlavor("binary"))
	if got := domain.BinPath(target, "%s/main"); got != "forge-out/bin/app/main#binary/main" {
		t.Errorf("unexpected bin path: %q", got)
	}
}

func TestOutputPaths_PureFunctionOfTarget(t *testing.T) {
	target := domain.NewBuildTarget("", "src/lib", "lib").Derive(domain.InternFlavor("static"))
	first := domain.BinPath(target, "%s")
	second := domain.BinPath(target, "%s")
	if first != second {
		t.Errorf("path derivation not deterministic: %q vs %q", first, second)
	}
}
