// core/leet/leet_test.go
package leet

import (
	"errors"
	"reflect"
	"sort"
	"testing"
)

func TestOneStep(t *testing.T) {
	table := Table{'a': {"4", "@"}}

	got := OneStep("cat", table)
	want := []string{"cat", "c4t", "c@t"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("OneStep = %v, want %v", got, want)
	}
}

func TestOneStepCaseInsensitive(t *testing.T) {
	table := Table{'a': {"4"}}
	got := OneStep("CAT", table)
	want := []string{"CAT", "C4T"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("OneStep = %v, want %v", got, want)
	}
}

func TestOneStepNoMatches(t *testing.T) {
	got := OneStep("xyz", Table{'a': {"4"}})
	if !reflect.DeepEqual(got, []string{"xyz"}) {
		t.Errorf("OneStep = %v, want only the original", got)
	}
}

func TestClosureEqualsOneStepWhenSaturated(t *testing.T) {
	// One substitutable position: nothing left to do after one step.
	table := Table{'a': {"4", "@"}}
	got, err := Closure("cat", table, Limits{})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"cat", "c4t", "c@t"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Closure = %v, want %v", got, want)
	}
}

func TestClosureExhaustsCombinations(t *testing.T) {
	table := Table{'o': {"0"}, 'l': {"1"}}
	got, err := Closure("lol", table, Limits{})
	if err != nil {
		t.Fatal(err)
	}
	// Three independently substitutable positions: 2^3 strings.
	if len(got) != 8 {
		t.Fatalf("Closure produced %d strings, want 8: %v", len(got), got)
	}
	sorted := append([]string(nil), got...)
	sort.Strings(sorted)
	want := []string{"101", "10l", "1o1", "1ol", "l01", "l0l", "lo1", "lol"}
	if !reflect.DeepEqual(sorted, want) {
		t.Errorf("Closure members = %v, want %v", sorted, want)
	}
	if got[0] != "lol" {
		t.Errorf("Closure[0] = %q, want the original word first", got[0])
	}
}

func TestClosureIdempotent(t *testing.T) {
	table := Table{'o': {"0"}, 'a': {"4", "@"}}
	base, err := Closure("coal", table, Limits{})
	if err != nil {
		t.Fatal(err)
	}
	members := make(map[string]struct{}, len(base))
	for _, m := range base {
		members[m] = struct{}{}
	}
	// Re-running closure on any member stays inside the original set.
	for _, m := range base {
		sub, err := Closure(m, table, Limits{})
		if err != nil {
			t.Fatal(err)
		}
		for _, v := range sub {
			if _, ok := members[v]; !ok {
				t.Fatalf("Closure(%q) produced %q outside Closure(coal)", m, v)
			}
		}
	}
}

func TestClosureVariantCap(t *testing.T) {
	// 'a' -> "aa" keeps producing longer substitutable strings forever.
	table := Table{'a': {"aa"}}
	_, err := Closure("a", table, Limits{MaxVariants: 5})
	var oerr *OverflowError
	if !errors.As(err, &oerr) {
		t.Fatalf("Closure err = %v, want *OverflowError", err)
	}
	if oerr.Word != "a" {
		t.Errorf("OverflowError.Word = %q, want %q", oerr.Word, "a")
	}
}

func TestClosureRoundCap(t *testing.T) {
	// Terminates in two productive rounds; cap at one.
	table := Table{'a': {"b"}, 'b': {"c"}}
	_, err := Closure("a", table, Limits{MaxRounds: 1})
	var oerr *OverflowError
	if !errors.As(err, &oerr) {
		t.Fatalf("Closure err = %v, want *OverflowError", err)
	}
	if got, err := Closure("a", table, Limits{MaxRounds: 8}); err != nil || len(got) != 3 {
		t.Errorf("Closure with room = (%v, %v), want 3 strings", got, err)
	}
}

func TestClosureEmptyTable(t *testing.T) {
	got, err := Closure("word", Table{}, Limits{})
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, []string{"word"}) {
		t.Errorf("Closure = %v, want only the original", got)
	}
}
