package models

import (
	"reflect"
	"testing"
)

func TestIDListAddIsSetLike(t *testing.T) {
	var l IDList

	if !l.Add(3) {
		t.Fatalf("first add must report a change")
	}
	if l.Add(3) {
		t.Fatalf("duplicate add must be a no-op")
	}
	l.Add(1)
	l.Add(2)

	if !reflect.DeepEqual(l, IDList{3, 1, 2}) {
		t.Fatalf("insertion order not preserved: %v", l)
	}
}

func TestIDListRemovePreservesOrder(t *testing.T) {
	l := IDList{3, 1, 2}

	if !l.Remove(1) {
		t.Fatalf("removing a member must report a change")
	}
	if l.Remove(1) {
		t.Fatalf("removing a non-member must be a no-op")
	}
	if !reflect.DeepEqual(l, IDList{3, 2}) {
		t.Fatalf("remaining order wrong: %v", l)
	}
}

func TestIDListContains(t *testing.T) {
	l := IDList{3, 1, 2}
	if !l.Contains(2) || l.Contains(9) {
		t.Fatalf("membership wrong for %v", l)
	}
}

func TestIDListScanRoundTrip(t *testing.T) {
	l := IDList{7, 8}
	v, err := l.Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}

	var scanned IDList
	if err := scanned.Scan(v.([]byte)); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if !reflect.DeepEqual(scanned, l) {
		t.Fatalf("round trip: got %v, want %v", scanned, l)
	}
}

// Nil slices must serialize as empty JSON arrays, never SQL NULL, so the
// jsonb columns always hold a valid list.
func TestNilValuesSerializeAsEmptyArrays(t *testing.T) {
	for name, value := range map[string]func() ([]byte, error){
		"IDList": func() ([]byte, error) {
			v, err := IDList(nil).Value()
			if err != nil {
				return nil, err
			}
			return v.([]byte), nil
		},
		"StringSlice": func() ([]byte, error) {
			v, err := StringSlice(nil).Value()
			if err != nil {
				return nil, err
			}
			return v.([]byte), nil
		},
		"SkillEntries": func() ([]byte, error) {
			v, err := SkillEntries(nil).Value()
			if err != nil {
				return nil, err
			}
			return v.([]byte), nil
		},
	} {
		b, err := value()
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if string(b) != "[]" {
			t.Fatalf("%s: nil serialized as %q, want []", name, b)
		}
	}
}
