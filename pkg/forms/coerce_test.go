package forms_test

import (
	"testing"

	"github.com/zbyte64/micromodels-forms/pkg/forms"
)

func TestNullBoolCoerce(t *testing.T) {
	cases := []struct {
		name    string
		input   any
		want    any
		wantErr bool
	}{
		{name: "literal none string", input: "None", want: nil},
		{name: "nil", input: nil, want: nil},
		{name: "literal true string", input: "True", want: true},
		{name: "literal false string", input: "False", want: false},
		{name: "nonzero numeric string", input: "1", want: true},
		{name: "zero numeric string", input: "0", want: false},
		{name: "negative numeric string", input: "-3", want: true},
		{name: "bool passthrough", input: true, want: true},
		{name: "int truthiness", input: 0, want: false},
		{name: "garbage string", input: "maybe", wantErr: true},
		{name: "unsupported type", input: 1.5, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := forms.NullBoolCoerce(tc.input)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("coerce: %v", err)
			}
			if got != tc.want {
				t.Fatalf("coerce %v: got %v want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestNullBoolChoices(t *testing.T) {
	choices := forms.NullBoolChoices()
	if len(choices) != 3 {
		t.Fatalf("expected 3 choices, got %d", len(choices))
	}
	if choices[0].Value != nil || choices[0].Label != "Unknown" {
		t.Fatalf("unexpected first choice: %+v", choices[0])
	}
	if choices[1].Value != true || choices[2].Value != false {
		t.Fatalf("unexpected yes/no choices: %+v %+v", choices[1], choices[2])
	}
}
