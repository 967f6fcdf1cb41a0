package scene

// Scheduler runs delayed continuations on the scene's own tick instead of
// a wall-clock timer. Tasks scheduled before a Clear belong to an older
// generation and never run, so a scene reset cannot be corrupted by a
// stale delayed callback.
type Scheduler struct {
	now        float64
	generation uint64
	tasks      []task
}

type task struct {
	due float64
	gen uint64
	fn  func()
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// After schedules fn to run once at least delay seconds of scene time
// have elapsed.
func (s *Scheduler) After(delay float64, fn func()) {
	s.tasks = append(s.tasks, task{due: s.now + delay, gen: s.generation, fn: fn})
}

// Update advances scene time and runs due tasks in schedule order. Tasks
// scheduled by a running continuation run next tick at the earliest.
func (s *Scheduler) Update(dt float64) {
	s.now += dt

	// Snapshot: continuations may schedule follow-ups or call Clear
	pending := s.tasks
	s.tasks = nil

	var due []task
	for _, t := range pending {
		if t.gen != s.generation {
			continue
		}
		if t.due > s.now {
			s.tasks = append(s.tasks, t)
			continue
		}
		due = append(due, t)
	}

	for _, t := range due {
		// A continuation may have cleared the scheduler mid-tick
		if t.gen != s.generation {
			continue
		}
		t.fn()
	}
}

// Clear drops all outstanding tasks and invalidates any that are still
// referenced by a running continuation.
func (s *Scheduler) Clear() {
	s.tasks = nil
	s.generation++
	s.now = 0
}

// Pending returns the number of outstanding tasks.
func (s *Scheduler) Pending() int { return len(s.tasks) }
