package validate

import "testing"

func TestAddKeepsFirstMessagePerField(t *testing.T) {
	fe := FieldErrors{}
	fe.Add("city", "Please enter your city.")
	fe.Add("city", "City cannot exceed 255 characters.")

	if got := fe["city"]; got != "Please enter your city." {
		t.Errorf("city = %q, want the first message", got)
	}
}

func TestOrNil(t *testing.T) {
	fe := FieldErrors{}
	if err := fe.OrNil(); err != nil {
		t.Errorf("empty OrNil = %v, want nil", err)
	}

	fe.Add("title", "Please enter a match title.")
	if err := fe.OrNil(); err == nil {
		t.Error("non-empty OrNil = nil, want error")
	}
}

func TestErrorMentionsFields(t *testing.T) {
	fe := FieldErrors{}
	fe.Add("title", "Please enter a match title.")

	if fe.Error() == "" {
		t.Error("Error() should not be empty")
	}
}
