package timezone

import (
	"testing"
	"time"
)

func TestLoad_ValidZones(t *testing.T) {
	for _, name := range []string{"UTC", "Asia/Kolkata", "America/New_York", "Europe/London"} {
		if _, err := Load(name); err != nil {
			t.Errorf("Load(%q) returned error: %v", name, err)
		}
	}
}

func TestLoad_InvalidZones(t *testing.T) {
	for _, name := range []string{"Invalid/Zone", "IST", "not-a-zone"} {
		if _, err := Load(name); err == nil {
			t.Errorf("Load(%q) expected error, got nil", name)
		}
	}
}

func TestReinterpret_PreservesWallClock(t *testing.T) {
	src, _ := time.LoadLocation("UTC")
	dst, _ := time.LoadLocation("Asia/Kolkata")

	stored := time.Date(2026, 6, 15, 10, 30, 0, 0, time.UTC)
	shifted := Reinterpret(stored, src, dst)

	// 10:30 UTC wall clock becomes 10:30 IST, which is 05:00 UTC.
	want := time.Date(2026, 6, 15, 5, 0, 0, 0, time.UTC)
	if !shifted.Equal(want) {
		t.Errorf("Reinterpret = %v, want %v", shifted.UTC(), want)
	}

	got := shifted.In(dst)
	if got.Hour() != 10 || got.Minute() != 30 {
		t.Errorf("wall clock in target = %02d:%02d, want 10:30", got.Hour(), got.Minute())
	}
}

func TestReinterpret_WestwardShift(t *testing.T) {
	src, _ := time.LoadLocation("UTC")
	dst, _ := time.LoadLocation("America/New_York")

	stored := time.Date(2026, 1, 10, 8, 0, 0, 0, time.UTC)
	shifted := Reinterpret(stored, src, dst)

	// 08:00 EST is 13:00 UTC in January.
	want := time.Date(2026, 1, 10, 13, 0, 0, 0, time.UTC)
	if !shifted.Equal(want) {
		t.Errorf("Reinterpret = %v, want %v", shifted.UTC(), want)
	}
}

func TestReinterpret_HonorsDST(t *testing.T) {
	src, _ := time.LoadLocation("UTC")
	dst, _ := time.LoadLocation("America/New_York")

	winter := Reinterpret(time.Date(2026, 1, 10, 8, 0, 0, 0, time.UTC), src, dst)
	summer := Reinterpret(time.Date(2026, 7, 10, 8, 0, 0, 0, time.UTC), src, dst)

	winterOffset := winter.UTC().Hour() - 8
	summerOffset := summer.UTC().Hour() - 8
	if winterOffset != 5 || summerOffset != 4 {
		t.Errorf("offsets winter=%d summer=%d, want 5 and 4", winterOffset, summerOffset)
	}
}

func TestReinterpret_SameZoneIsIdentity(t *testing.T) {
	loc, _ := time.LoadLocation("Europe/London")
	stored := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	shifted := Reinterpret(stored, loc, loc)
	if !shifted.Equal(stored) {
		t.Errorf("same-zone shift changed instant: %v != %v", shifted, stored)
	}
}
