package minire_test

import (
	"errors"
	"fmt"

	"github.com/coregx/minire"
	"github.com/coregx/minire/syntax"
)

// ExampleCompile demonstrates basic pattern compilation and matching.
func ExampleCompile() {
	re, err := minire.Compile("(ab|de)+")
	if err != nil {
		panic(err)
	}

	ok, _ := re.Match("abcdcd")
	fmt.Println(ok)
	// Output: true
}

// ExampleMatch demonstrates one-shot evaluation with both strategies.
func ExampleMatch() {
	for _, strategy := range []minire.Strategy{minire.Backtrack, minire.SetSimulation} {
		ok, err := minire.Match("abc|def", "def", strategy)
		fmt.Println(strategy, ok, err)
	}
	// Output:
	// backtrack true <nil>
	// pike true <nil>
}

// ExampleCompile_error demonstrates inspecting a parse error.
func ExampleCompile_error() {
	_, err := minire.Compile("abc)")

	var serr *syntax.Error
	if errors.As(err, &serr) {
		fmt.Println(serr.Code, serr.Pos)
	}
	// Output: unexpected ) 3
}

// ExampleRegex_SearchIndex demonstrates an unanchored search.
func ExampleRegex_SearchIndex() {
	re := minire.MustCompile("cd+")
	i, _ := re.SearchIndex("abcddd")
	fmt.Println(i)
	// Output: 2
}

// ExampleRegex_Program demonstrates printing the compiled program.
func ExampleRegex_Program() {
	re := minire.MustCompile("abc?")
	fmt.Print(re.Program())
	// Output:
	// 0000: char a
	// 0001: char b
	// 0002: split 0003, 0004
	// 0003: char c
	// 0004: match
}

// ExampleQuoteMeta demonstrates escaping metacharacters.
func ExampleQuoteMeta() {
	fmt.Println(minire.QuoteMeta("1+1=2?"))
	// Output: 1\+1=2\?
}
