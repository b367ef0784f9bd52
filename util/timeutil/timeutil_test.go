package timeutil

import (
	"testing"
	"time"
)

func TestFormatTimestamp(t *testing.T) {
	testCases := map[string]time.Time{
		"2024:01:02-03:04:05": time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		"1999:12:31-23:59:59": time.Date(1999, 12, 31, 23, 59, 59, 0, time.UTC),
		"2024:07:09-08:00:00": time.Date(2024, 7, 9, 10, 0, 0, 0, time.FixedZone("CEST", 2*3600)),
	}

	for want, input := range testCases {
		get := FormatTimestamp(input)
		if get != want {
			t.Fatalf("Incorrect result from `FormatTimestamp(%v)`, get=%s, want=%s", input, get, want)
		}
	}
}

func TestTimestampLength(t *testing.T) {
	get := Timestamp()
	if len(get) != 19 {
		t.Fatalf("Timestamp length error, get=%d (%s), want 19", len(get), get)
	}
}

func TestParseSeconds(t *testing.T) {
	testCases := map[uint64]string{
		0:    "",
		1:    "01s",
		59:   "59s",
		60:   "01m 00s",
		61:   "01m 01s",
		3599: "59m 59s",
		3600: "01h 00m 00s",
		3601: "01h 00m 01s",
		3661: "01h 01m 01s",
	}

	for duration, want := range testCases {
		get := ParseSeconds(duration)
		if get != want {
			t.Fatalf("Incorrect result from `ParseSeconds(%d)`, get=%s, want=%s",
				duration, get, want)
		}
	}
}
