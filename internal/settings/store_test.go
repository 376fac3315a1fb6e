package settings

import (
	"testing"

	"github.com/dshills/modeline/internal/modeline/apply"
)

func TestStore_TypedSets(t *testing.T) {
	s := NewStore()

	s.SetLanguage("cpp")
	s.SetNumericOption(apply.OptTabStop, 4)
	s.SetBooleanOption(apply.OptReadOnly, true)
	s.SetStringOption(apply.OptEncoding, "utf-8")

	tests := []struct {
		path string
		want any
	}{
		{OptLanguage, "cpp"},
		{apply.OptTabStop, 4},
		{apply.OptReadOnly, true},
		{apply.OptEncoding, "utf-8"},
	}

	for _, tt := range tests {
		got, ok := s.Get(tt.path)
		if !ok || got != tt.want {
			t.Errorf("Get(%s) = %v, %v, want %v, true", tt.path, got, ok, tt.want)
		}
	}
}

func TestStore_UnknownOptionIsIgnored(t *testing.T) {
	s := NewStore()
	s.SetNumericOption("editor.noSuchOption", 7)

	if _, ok := s.Get("editor.noSuchOption"); ok {
		t.Error("unknown option was stored")
	}
	if len(s.Changes()) != 0 {
		t.Errorf("Changes = %v, want none", s.Changes())
	}
}

func TestStore_OutOfRangeValueIsSkipped(t *testing.T) {
	s := NewStore()
	s.SetNumericOption(apply.OptTabStop, 4)
	s.SetNumericOption(apply.OptTabStop, 9999)

	got, _ := s.Get(apply.OptTabStop)
	if got != 4 {
		t.Errorf("tabStop = %v, want the prior valid value 4", got)
	}
}

func TestStore_SentinelValuesAreValid(t *testing.T) {
	s := NewStore()
	s.SetNumericOption(apply.OptShiftWidth, apply.FollowTabStop)
	s.SetNumericOption(apply.OptSoftTabStop, apply.FollowShiftWidth)

	if got, ok := s.Get(apply.OptShiftWidth); !ok || got != apply.FollowTabStop {
		t.Errorf("shiftWidth = %v, %v", got, ok)
	}
	if got, ok := s.Get(apply.OptSoftTabStop); !ok || got != apply.FollowShiftWidth {
		t.Errorf("softTabStop = %v, %v", got, ok)
	}
}

func TestStore_ChangesPreserveOrder(t *testing.T) {
	s := NewStore()
	s.SetLanguage("c")
	s.SetLanguage("cpp")

	changes := s.Changes()
	if len(changes) != 2 {
		t.Fatalf("len(Changes) = %d, want 2", len(changes))
	}
	if changes[0].Value != "c" || changes[1].Value != "cpp" {
		t.Errorf("Changes = %v, want c then cpp", changes)
	}

	// The stored value is the last writer's.
	if got, _ := s.Get(OptLanguage); got != "cpp" {
		t.Errorf("language = %v, want cpp", got)
	}
}

func TestStore_RegisterDuplicate(t *testing.T) {
	s := NewStore()
	err := s.Register(Setting{Path: OptLanguage, Type: TypeString})
	if err == nil {
		t.Error("expected error for duplicate registration")
	}
}

func TestSetting_Validate(t *testing.T) {
	def := Setting{
		Path:    "editor.tabStop",
		Type:    TypeInt,
		Minimum: MinValue(1),
		Maximum: MaxValue(16),
	}

	if err := def.Validate(8); err != nil {
		t.Errorf("Validate(8) = %v", err)
	}
	if err := def.Validate(0); err == nil {
		t.Error("Validate(0) accepted a value below minimum")
	}
	if err := def.Validate("8"); err == nil {
		t.Error("Validate accepted a string for an int setting")
	}
}
