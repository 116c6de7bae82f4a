package simon

import "time"

// Role names a timer slot. At most one timer per role is pending.
type Role int

const (
	RoleRound    Role = iota // arming delay and inter-round delay
	RolePlayback             // playback tick
	RoleDeadline             // response deadline
	RoleReset                // reset after the failure animation
	roleCount
)

func (r Role) String() string {
	switch r {
	case RoleRound:
		return "round"
	case RolePlayback:
		return "playback"
	case RoleDeadline:
		return "deadline"
	case RoleReset:
		return "reset"
	default:
		return "unknown"
	}
}

type timer struct {
	due time.Duration
	seq uint64
	fn  func()
}

// Timers is a role-indexed table of one-shot timers on a virtual clock.
// Time only moves when Advance is called, so every callback runs on the
// caller's goroutine and tests control time exactly.
type Timers struct {
	now   time.Duration
	seq   uint64
	slots [roleCount]*timer
}

// NewTimers creates an empty timer table at time zero.
func NewTimers() *Timers {
	return &Timers{}
}

// Now returns the current virtual time.
func (t *Timers) Now() time.Duration {
	return t.now
}

// Schedule arms role to run fn after delay, replacing any pending timer
// of the same role.
func (t *Timers) Schedule(role Role, delay time.Duration, fn func()) {
	if delay < 0 {
		delay = 0
	}
	t.seq++
	t.slots[role] = &timer{due: t.now + delay, seq: t.seq, fn: fn}
}

// Cancel drops the pending timer of role, if any.
func (t *Timers) Cancel(role Role) {
	t.slots[role] = nil
}

// CancelAll drops every pending timer.
func (t *Timers) CancelAll() {
	for i := range t.slots {
		t.slots[i] = nil
	}
}

// Pending reports whether role has a timer armed.
func (t *Timers) Pending(role Role) bool {
	return t.slots[role] != nil
}

// Advance moves the clock forward by d, firing due timers in due order.
// The clock is set to each timer's due time before its callback runs,
// so timers scheduled by a callback fire too if they fall inside d.
func (t *Timers) Advance(d time.Duration) {
	if d < 0 {
		d = 0
	}
	target := t.now + d

	for {
		role, ok := t.next(target)
		if !ok {
			break
		}
		tm := t.slots[role]
		t.slots[role] = nil
		if tm.due > t.now {
			t.now = tm.due
		}
		tm.fn()
	}

	t.now = target
}

// next returns the earliest timer due at or before target.
// Ties go to the timer scheduled first.
func (t *Timers) next(target time.Duration) (Role, bool) {
	best := Role(-1)
	for i, tm := range t.slots {
		if tm == nil || tm.due > target {
			continue
		}
		if best < 0 {
			best = Role(i)
			continue
		}
		cur := t.slots[best]
		if tm.due < cur.due || (tm.due == cur.due && tm.seq < cur.seq) {
			best = Role(i)
		}
	}
	return best, best >= 0
}
