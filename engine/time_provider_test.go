package engine

import (
	"testing"
	"time"
)

func TestTimeProvider(t *testing.T) {
	var clock Clock = NewTimeProvider()

	t1 := clock.Now()
	time.Sleep(10 * time.Millisecond)
	t2 := clock.Now()

	if diff := t2.Sub(t1); diff < 10*time.Millisecond {
		t.Errorf("Expected at least 10ms difference, got %v", diff)
	}
}

func TestMockTimeProvider(t *testing.T) {
	startTime := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	var mock = NewMockTimeProvider(startTime)
	var _ Clock = mock

	if now := mock.Now(); !now.Equal(startTime) {
		t.Errorf("Expected initial time to be %v, got %v", startTime, now)
	}

	newTime := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
	mock.SetTime(newTime)
	if now := mock.Now(); !now.Equal(newTime) {
		t.Errorf("Expected time after SetTime to be %v, got %v", newTime, now)
	}

	advanced := mock.Advance(16 * time.Millisecond)
	if !advanced.Equal(newTime.Add(16*time.Millisecond)) || !mock.Now().Equal(advanced) {
		t.Errorf("Expected time after Advance to be %v, got %v", newTime.Add(16*time.Millisecond), mock.Now())
	}
}
