package namesearch

import "testing"

func TestSQLFilter(t *testing.T) {
	fragment, args := SQLFilter("first_name", "last_name", "smith")

	want := "(first_name || ' ' || last_name) ILIKE ? OR last_name ILIKE ?"
	if fragment != want {
		t.Errorf("fragment = %q, want %q", fragment, want)
	}
	if len(args) != 2 {
		t.Fatalf("got %d args, want 2", len(args))
	}
	for i, arg := range args {
		if arg != "%smith%" {
			t.Errorf("args[%d] = %v, want %%smith%%", i, arg)
		}
	}
}

func TestSQLFilterEscapesWildcards(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{"100%", `%100\%%`},
		{"a_b", `%a\_b%`},
		{`back\slash`, `%back\\slash%`},
	}
	for _, test := range tests {
		_, args := SQLFilter("f", "l", test.query)
		if args[0] != test.want {
			t.Errorf("SQLFilter(%q) pattern = %v, want %q", test.query, args[0], test.want)
		}
	}
}
