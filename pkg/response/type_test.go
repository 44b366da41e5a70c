package response_test

import (
	"encoding/json"
	"testing"
	"time"

	"ai-tasker/pkg/response"
)

func TestDateTimeMarshalJSON(t *testing.T) {
	ho := time.FixedZone("ICT", 7*60*60)

	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{name: "utc", in: time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC), want: `"2024-05-01T15:30:00.000Z"`},
		{name: "offset converted", in: time.Date(2024, 5, 1, 22, 30, 0, 250e6, ho), want: `"2024-05-01T15:30:00.250Z"`},
		{name: "zero", in: time.Time{}, want: `null`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := json.Marshal(response.DateTime(tt.in))
			if err != nil {
				t.Fatalf("Marshal() error: %v", err)
			}
			if string(b) != tt.want {
				t.Errorf("Marshal() = %s, want %s", b, tt.want)
			}
		})
	}
}

func TestDateTimeInStruct(t *testing.T) {
	v := struct {
		At response.DateTime `json:"at"`
	}{At: response.DateTime(time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC))}

	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if want := `{"at":"2026-01-02T03:04:05.000Z"}`; string(b) != want {
		t.Errorf("Marshal() = %s, want %s", b, want)
	}
}
