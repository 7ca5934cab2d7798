package sensor

import (
	"sync"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestGammaOrZero(t *testing.T) {
	tests := []struct {
		name     string
		reading  OrientationReading
		expected float64
	}{
		{"报告了 gamma", NewGammaReading(12.5), 12.5},
		{"负倾斜", NewGammaReading(-30), -30},
		{"未报告 gamma", OrientationReading{}, 0},
		{"未报告时忽略残留值", OrientationReading{Gamma: 99}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.reading.GammaOrZero(); got != tt.expected {
				t.Errorf("GammaOrZero() = %v，期望 %v", got, tt.expected)
			}
		})
	}
}

func TestReadingQueueDrain(t *testing.T) {
	q := NewReadingQueue(0)

	if got := q.Drain(); len(got) != 0 {
		t.Errorf("empty queue drained %d readings", len(got))
	}

	q.Push(NewGammaReading(1))
	q.Push(NewGammaReading(2))
	q.Push(OrientationReading{})

	got := q.Drain()
	if len(got) != 3 {
		t.Fatalf("Drain() returned %d readings，期望 3", len(got))
	}
	if got[0].Gamma != 1 || got[1].Gamma != 2 || got[2].HasGamma {
		t.Errorf("readings out of order: %+v", got)
	}

	if again := q.Drain(); len(again) != 0 {
		t.Errorf("second Drain() returned %d readings，期望 0", len(again))
	}
}

// TestReadingQueueOverflow 队列满时丢弃最旧的读数
func TestReadingQueueOverflow(t *testing.T) {
	q := NewReadingQueue(2)
	q.Push(NewGammaReading(1))
	q.Push(NewGammaReading(2))
	q.Push(NewGammaReading(3))

	got := q.Drain()
	if len(got) != 2 || got[0].Gamma != 2 || got[1].Gamma != 3 {
		t.Errorf("Drain() = %+v，期望 gammas [2 3]", got)
	}
	if q.Dropped() != 1 {
		t.Errorf("Dropped() = %d，期望 1", q.Dropped())
	}
}

// TestReadingQueueConcurrentPush 模拟事件回调从其他 goroutine 推送
func TestReadingQueueConcurrentPush(t *testing.T) {
	q := NewReadingQueue(1000)
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				q.Push(NewGammaReading(float64(j)))
			}
		}()
	}
	wg.Wait()

	if got := len(q.Drain()); got != 500 {
		t.Errorf("Drain() returned %d readings，期望 500", got)
	}
}

func TestQueueSource(t *testing.T) {
	s := NewQueueSource()
	s.Queue.Push(NewGammaReading(10))

	got := s.Poll()
	if len(got) != 1 || got[0].Gamma != 10 {
		t.Errorf("Poll() = %+v", got)
	}
	if err := s.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func newTestKeyboardSource(pressed map[ebiten.Key]bool) *KeyboardSource {
	s := NewKeyboardSource(2, 5)
	s.isKeyPressed = func(k ebiten.Key) bool { return pressed[k] }
	return s
}

func TestKeyboardSourceTilt(t *testing.T) {
	pressed := map[ebiten.Key]bool{}
	s := newTestKeyboardSource(pressed)

	// 无按键且已回正时不产生读数
	if got := s.Poll(); len(got) != 0 {
		t.Errorf("idle Poll() returned %d readings", len(got))
	}

	pressed[ebiten.KeyArrowRight] = true
	expected := []float64{2, 4, 5}
	for _, want := range expected {
		got := s.Poll()
		if len(got) != 1 || got[0].Gamma != want || !got[0].HasGamma {
			t.Fatalf("Poll() = %+v，期望 gamma %v", got, want)
		}
	}

	// 到达上限后不再产生读数
	if got := s.Poll(); len(got) != 0 {
		t.Errorf("Poll() at max returned %+v", got)
	}

	// 松开后回正
	pressed[ebiten.KeyArrowRight] = false
	for _, want := range []float64{3, 1, 0} {
		got := s.Poll()
		if len(got) != 1 || got[0].Gamma != want {
			t.Fatalf("recentering Poll() = %+v，期望 gamma %v", got, want)
		}
	}
	if s.Gamma() != 0 {
		t.Errorf("Gamma() = %v after recentering，期望 0", s.Gamma())
	}
}

func TestKeyboardSourceBothKeys(t *testing.T) {
	pressed := map[ebiten.Key]bool{ebiten.KeyArrowLeft: true}
	s := newTestKeyboardSource(pressed)

	got := s.Poll()
	if len(got) != 1 || got[0].Gamma != -2 {
		t.Fatalf("left Poll() = %+v，期望 gamma -2", got)
	}

	// 同时按下两个方向键视为松开，开始回正
	pressed[ebiten.KeyArrowRight] = true
	got = s.Poll()
	if len(got) != 1 || got[0].Gamma != 0 {
		t.Errorf("both keys Poll() = %+v，期望 gamma 0", got)
	}
}
