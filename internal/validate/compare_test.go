package validate

import "testing"

func TestEqualPermutedRows(t *testing.T) {
	a := ResultSet{
		{"id": int64(1), "name": "Ada"},
		{"id": int64(2), "name": "Linus"},
		{"id": int64(3), "name": "Grace"},
	}
	b := ResultSet{
		{"id": int64(3), "name": "Grace"},
		{"id": int64(1), "name": "Ada"},
		{"id": int64(2), "name": "Linus"},
	}

	if !Equal(a, b) {
		t.Fatalf("permuted result sets should compare equal")
	}
	if !Equal(b, a) {
		t.Fatalf("Equal should be symmetric")
	}
}

func TestEqualEmptySets(t *testing.T) {
	if !Equal(ResultSet{}, ResultSet{}) {
		t.Fatalf("two empty result sets should compare equal")
	}
	if Equal(ResultSet{}, ResultSet{{"id": int64(1)}}) {
		t.Fatalf("empty vs non-empty should not compare equal")
	}
}

func TestEqualNilInputs(t *testing.T) {
	if Equal(nil, ResultSet{}) || Equal(ResultSet{}, nil) || Equal(nil, nil) {
		t.Fatalf("nil inputs are not well-formed result sets")
	}
}

func TestEqualLengthMismatch(t *testing.T) {
	a := ResultSet{{"id": int64(1)}, {"id": int64(2)}}
	b := ResultSet{{"id": int64(1)}}
	if Equal(a, b) {
		t.Fatalf("different row counts should not compare equal")
	}
}

func TestEqualValueMismatch(t *testing.T) {
	a := ResultSet{{"id": int64(1), "name": "Ada"}}
	b := ResultSet{{"id": int64(1), "name": "Grace"}}
	if Equal(a, b) {
		t.Fatalf("different values should not compare equal")
	}
}

func TestEqualColumnNameMismatch(t *testing.T) {
	a := ResultSet{{"id": int64(1)}}
	b := ResultSet{{"user_id": int64(1)}}
	if Equal(a, b) {
		t.Fatalf("different column names should not compare equal")
	}
}

func TestEqualTextFormOnly(t *testing.T) {
	// Values compare by text form: TEXT "1" and INTEGER 1 canonicalize the
	// same way. Long-standing behavior, kept for compatibility.
	a := ResultSet{{"id": int64(1)}}
	b := ResultSet{{"id": "1"}}
	if !Equal(a, b) {
		t.Fatalf("text-form comparison should treat 1 and \"1\" as equal")
	}
}

func TestEqualDuplicateMultiplicityIgnored(t *testing.T) {
	// Equal row counts but different duplicate multiplicities still compare
	// equal: rows are deduplicated into sets. Documented limitation.
	a := ResultSet{{"id": int64(1)}, {"id": int64(1)}, {"id": int64(2)}}
	b := ResultSet{{"id": int64(1)}, {"id": int64(2)}, {"id": int64(2)}}
	if !Equal(a, b) {
		t.Fatalf("set-based comparison should ignore duplicate counts")
	}
}

func TestCanonicalRowSortsColumns(t *testing.T) {
	row := Row{"name": "Ada", "id": int64(1), "age": nil}
	if got, want := canonicalRow(row), "age:null|id:1|name:Ada"; got != want {
		t.Fatalf("canonicalRow = %q, want %q", got, want)
	}
}

func TestValueString(t *testing.T) {
	cases := []struct {
		value any
		want  string
	}{
		{nil, "null"},
		{"Ada", "Ada"},
		{[]byte("blob"), "blob"},
		{int64(42), "42"},
		{float64(1.5), "1.5"},
		{float64(2), "2"},
		{true, "true"},
	}
	for _, tc := range cases {
		if got := valueString(tc.value); got != tc.want {
			t.Fatalf("valueString(%v) = %q, want %q", tc.value, got, tc.want)
		}
	}
}
