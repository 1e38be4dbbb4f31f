package validators

import "testing"

func TestNormalizeDocument(t *testing.T) {
	cases := map[string]string{
		"123.456.789-09":     "12345678909",
		"12.345.678/0001-95": "12345678000195",
		"12345678909":        "12345678909",
		"abc":                "",
	}

	for in, want := range cases {
		if got := NormalizeDocument(in); got != want {
			t.Fatalf("NormalizeDocument(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestIsDocumentShapeValid(t *testing.T) {
	if !IsDocumentShapeValid("123.456.789-09") {
		t.Fatal("CPF should be valid")
	}
	if !IsDocumentShapeValid("12.345.678/0001-95") {
		t.Fatal("CNPJ should be valid")
	}
	if IsDocumentShapeValid("1234") {
		t.Fatal("short document should be invalid")
	}
}
