package cityname

import "testing"

func TestFromFilename_CorrectsKnownCityToken(t *testing.T) {
	t.Parallel()

	if got := FromFilename("roadmap_newyork.xlsx", "", nil); got != "New York" {
		t.Fatalf("want New York, got %q", got)
	}
	if got := FromFilename("planning-losangeles-2025.xlsx", "", nil); got != "Los Angeles" {
		t.Fatalf("want Los Angeles, got %q", got)
	}
}

func TestFromFilename_FallbackWhenNoTokenSurvives(t *testing.T) {
	t.Parallel()

	// "plan" is a stopword and "NY" is too short.
	if got := FromFilename("plan.xlsx", "", nil); got != "New York" {
		t.Fatalf("want default fallback, got %q", got)
	}
	if got := FromFilename("roadmap_ny.xlsx", "Lisbon", nil); got != "Lisbon" {
		t.Fatalf("want configured fallback, got %q", got)
	}
	if got := FromFilename("activités_programme.xlsx", "", nil); got != "New York" {
		t.Fatalf("want fallback for all-stopword name, got %q", got)
	}
}

func TestFromFilename_CapitalizesUnknownTokens(t *testing.T) {
	t.Parallel()

	if got := FromFilename("roadmap_lisbonne.xlsx", "", nil); got != "Lisbonne" {
		t.Fatalf("want Lisbonne, got %q", got)
	}
}

func TestClean_ExtraCorrectionsWinOverBuiltins(t *testing.T) {
	t.Parallel()

	extra := map[string]string{"newyork": "New York City", "kualalumpur": "Kuala Lumpur"}
	if got := Clean("NewYork", extra); got != "New York City" {
		t.Fatalf("want configured correction, got %q", got)
	}
	if got := Clean("KUALALUMPUR", extra); got != "Kuala Lumpur" {
		t.Fatalf("want configured correction, got %q", got)
	}
	if got := Clean("rio", nil); got != "Rio de Janeiro" {
		t.Fatalf("want built-in correction, got %q", got)
	}
}

func TestClean_IgnoresNonLettersWhenMatching(t *testing.T) {
	t.Parallel()

	if got := Clean("new-york2", nil); got != "New York" {
		t.Fatalf("want correction despite separators and digits, got %q", got)
	}
}
