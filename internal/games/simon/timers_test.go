package simon

import (
	"testing"
	"time"
)

func TestTimersFireInDueOrder(t *testing.T) {
	tm := NewTimers()
	var order []string

	tm.Schedule(RoleDeadline, 300*time.Millisecond, func() { order = append(order, "deadline") })
	tm.Schedule(RoleRound, 100*time.Millisecond, func() { order = append(order, "round") })
	tm.Schedule(RolePlayback, 200*time.Millisecond, func() { order = append(order, "playback") })

	tm.Advance(time.Second)

	want := []string{"round", "playback", "deadline"}
	if len(order) != len(want) {
		t.Fatalf("fired %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("fire %d = %s, want %s", i, order[i], want[i])
		}
	}
	if tm.Now() != time.Second {
		t.Errorf("Now() = %v, want 1s", tm.Now())
	}
}

func TestTimersTiesFollowScheduleOrder(t *testing.T) {
	tm := NewTimers()
	var order []Role

	tm.Schedule(RoleReset, 10*time.Millisecond, func() { order = append(order, RoleReset) })
	tm.Schedule(RoleRound, 10*time.Millisecond, func() { order = append(order, RoleRound) })

	tm.Advance(10 * time.Millisecond)

	if len(order) != 2 || order[0] != RoleReset || order[1] != RoleRound {
		t.Errorf("tie order = %v, want [reset round]", order)
	}
}

func TestTimersRescheduleReplaces(t *testing.T) {
	tm := NewTimers()
	fired := 0

	tm.Schedule(RoleDeadline, 100*time.Millisecond, func() { fired += 1 })
	tm.Schedule(RoleDeadline, 500*time.Millisecond, func() { fired += 10 })

	tm.Advance(200 * time.Millisecond)
	if fired != 0 {
		t.Fatalf("replaced timer fired (fired=%d)", fired)
	}

	tm.Advance(300 * time.Millisecond)
	if fired != 10 {
		t.Errorf("fired = %d, want 10", fired)
	}
	if tm.Pending(RoleDeadline) {
		t.Error("timer should not be pending after firing")
	}
}

func TestTimersCancel(t *testing.T) {
	tm := NewTimers()
	fired := false

	tm.Schedule(RolePlayback, time.Millisecond, func() { fired = true })
	tm.Schedule(RoleReset, time.Millisecond, func() { fired = true })
	tm.Cancel(RolePlayback)
	if tm.Pending(RolePlayback) || !tm.Pending(RoleReset) {
		t.Fatal("Cancel should only drop its own role")
	}

	tm.CancelAll()
	tm.Advance(time.Second)
	if fired {
		t.Error("cancelled timers fired")
	}
}

func TestTimersChainedCallbacksInOneAdvance(t *testing.T) {
	tm := NewTimers()
	var at []time.Duration

	var tick func()
	tick = func() {
		at = append(at, tm.Now())
		if len(at) < 3 {
			tm.Schedule(RolePlayback, 100*time.Millisecond, tick)
		}
	}
	tm.Schedule(RolePlayback, 100*time.Millisecond, tick)

	tm.Advance(250 * time.Millisecond)
	if len(at) != 2 || at[0] != 100*time.Millisecond || at[1] != 200*time.Millisecond {
		t.Fatalf("ticks at %v, want [100ms 200ms]", at)
	}

	tm.Advance(50 * time.Millisecond)
	if len(at) != 3 || at[2] != 300*time.Millisecond {
		t.Errorf("ticks at %v, want third at 300ms", at)
	}
}

func TestTimersZeroDelay(t *testing.T) {
	tm := NewTimers()
	fired := false
	tm.Schedule(RoleRound, -time.Second, func() { fired = true })

	tm.Advance(0)
	if !fired {
		t.Error("zero-delay timer should fire on Advance(0)")
	}
}
