package mecqkd_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/katalvlaran/qroute/mecqkd"
)

func TestParse_RoundTrip(t *testing.T) {
	for _, a := range mecqkd.All() {
		got, err := mecqkd.Parse(a.String())
		if err != nil {
			t.Fatalf("Parse(%q): %v", a.String(), err)
		}
		if got != a {
			t.Errorf("Parse(%q) = %v; want %v", a.String(), got, a)
		}
	}
}

func TestParse_Unknown(t *testing.T) {
	_, err := mecqkd.Parse("greedy")
	if !errors.Is(err, mecqkd.ErrUnknownAlgo) {
		t.Fatalf("expected ErrUnknownAlgo, got %v", err)
	}
	want := "valid options are: random,spf,bestfit,randomfeas,spffeas,bestfitfeas"
	if !strings.Contains(err.Error(), want) {
		t.Errorf("error %q does not list the legal labels", err.Error())
	}
}

func TestParse_CaseSensitive(t *testing.T) {
	if _, err := mecqkd.Parse("Random"); !errors.Is(err, mecqkd.ErrUnknownAlgo) {
		t.Fatalf("labels are lowercase only; got %v", err)
	}
}

func TestBase(t *testing.T) {
	cases := map[mecqkd.Algo]mecqkd.Algo{
		mecqkd.Random:      mecqkd.Random,
		mecqkd.Spf:         mecqkd.Spf,
		mecqkd.BestFit:     mecqkd.BestFit,
		mecqkd.RandomFeas:  mecqkd.Random,
		mecqkd.SpfFeas:     mecqkd.Spf,
		mecqkd.BestFitFeas: mecqkd.BestFit,
	}
	for a, want := range cases {
		if got := a.Base(); got != want {
			t.Errorf("%v.Base() = %v; want %v", a, got, want)
		}
	}
}

func TestFeasibleOnly(t *testing.T) {
	for _, a := range mecqkd.All() {
		want := a != a.Base() // exactly the *feas variants differ from their base
		if got := a.FeasibleOnly(); got != want {
			t.Errorf("%v.FeasibleOnly() = %v; want %v", a, got, want)
		}
	}
}

func TestString_Unknown(t *testing.T) {
	if got := mecqkd.Algo(42).String(); got != "unknown" {
		t.Errorf("String() = %q; want \"unknown\"", got)
	}
}
