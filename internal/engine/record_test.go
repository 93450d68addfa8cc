package engine

import (
	"encoding/json"
	"testing"
	"time"
)

func TestRecordMarshalJSON(t *testing.T) {
	rec := NewRecord([]string{"id", "name", "amount", "qty", "when", "created", "missing"})
	rec.Set("id", TextValue("70.962"))
	rec.Set("name", TextValue("Carrazza Giovanni"))
	rec.Set("amount", DecimalValue(1234.56))
	rec.Set("qty", IntValue(3))
	rec.Set("when", DateValue(time.Date(2026, 1, 21, 0, 0, 0, 0, time.UTC)))
	rec.Set("created", DateTimeValue(time.Date(2026, 1, 20, 12, 4, 22, 0, time.UTC)))

	got, err := json.Marshal(rec)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"id":"70.962","name":"Carrazza Giovanni","amount":1234.56,"qty":3,` +
		`"when":"2026-01-21","created":"2026-01-20T12:04:22","missing":null}`
	if string(got) != want {
		t.Errorf("got  %s\nwant %s", got, want)
	}
}

func TestRecordMarshalIsDeterministic(t *testing.T) {
	rec := NewRecord([]string{"b", "a", "c"})
	rec.Set("b", TextValue("2"))
	rec.Set("a", TextValue("1"))
	rec.Set("c", TextValue("3"))

	first, err := json.Marshal(rec)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 10; i++ {
		again, err := json.Marshal(rec)
		if err != nil {
			t.Fatal(err)
		}
		if string(again) != string(first) {
			t.Fatalf("marshal %d differs: %s vs %s", i, again, first)
		}
	}
	// Field order follows the schema, not Go map iteration.
	if want := `{"b":"2","a":"1","c":"3"}`; string(first) != want {
		t.Errorf("got %s, want %s", first, want)
	}
}

func TestRecordHiddenFields(t *testing.T) {
	rec := NewRecord([]string{"keep", "drop"})
	rec.Set("keep", TextValue("yes"))
	rec.Set("drop", TextValue("no"))
	rec.Hide("drop")

	got, err := json.Marshal(rec)
	if err != nil {
		t.Fatal(err)
	}
	if want := `{"keep":"yes"}`; string(got) != want {
		t.Errorf("got %s, want %s", got, want)
	}
	if v := rec.Get("drop"); v.Text() != "no" {
		t.Errorf("hidden field should stay readable, got %q", v.Text())
	}
}

func TestValueString(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want string
	}{
		{"absent", Absent(), ""},
		{"text", TextValue("ORD/26000887"), "ORD/26000887"},
		{"int", IntValue(42), "42"},
		{"decimal", DecimalValue(16.25), "16.25"},
		{"decimal whole", DecimalValue(52), "52"},
		{"date", DateValue(time.Date(2026, 1, 21, 0, 0, 0, 0, time.UTC)), "2026-01-21"},
		{"datetime", DateTimeValue(time.Date(2026, 1, 20, 12, 4, 22, 0, time.UTC)), "2026-01-20T12:04:22"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
