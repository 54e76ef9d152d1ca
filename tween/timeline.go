package tween

import (
	"math"
	"sort"

	"github.com/milk9111/uifx/common"
)

// Infinite makes a timeline loop until it is killed.
const Infinite = -1

// Options controls how a timeline repeats.
type Options struct {
	// Repeat is the number of extra cycles after the first; 0 plays once.
	Repeat int
	// RepeatDelay is the pause inserted after each cycle before the next.
	RepeatDelay float64
	// DelayFirst also places RepeatDelay before the first cycle.
	DelayFirst bool
	// Delay is a one-time pause before anything plays.
	Delay float64
}

// Timeline is a schedulable group of tweens sharing one time origin.
type Timeline struct {
	opts       Options
	tracks     []*track
	length     float64
	elapsed    float64
	iteration  int
	scheduled  bool
	killed     bool
	done       bool
	onComplete []func()
}

// NewTimeline returns an empty timeline. Options are validated when the
// timeline is scheduled.
func NewTimeline(opts Options) *Timeline {
	return &Timeline{opts: opts}
}

// Add places tw at its own Offset. Tweens sharing an offset play in parallel.
func (tl *Timeline) Add(tw Tween) error {
	if tl == nil {
		return ErrNilTimeline
	}
	if tl.scheduled {
		return ErrAlreadyScheduled
	}
	if err := tw.validate(); err != nil {
		return err
	}
	tr := newTrack(tw)
	tl.tracks = append(tl.tracks, tr)
	tl.length = math.Max(tl.length, tr.end())
	return nil
}

// Then places tw at the current end of the timeline. tw.Offset becomes an
// additional gap before it starts.
func (tl *Timeline) Then(tw Tween) error {
	if tl == nil {
		return ErrNilTimeline
	}
	if !common.Finite(tw.Offset) {
		return ErrNonFinite
	}
	if tw.Offset < 0 {
		return ErrNegativeDuration
	}
	tw.Offset += tl.length
	return tl.Add(tw)
}

// Wait appends an empty gap of d seconds to the cycle.
func (tl *Timeline) Wait(d float64) error {
	if tl == nil {
		return ErrNilTimeline
	}
	if tl.scheduled {
		return ErrAlreadyScheduled
	}
	if !common.Finite(d) {
		return ErrNonFinite
	}
	if d < 0 {
		return ErrNegativeDuration
	}
	tl.length += d
	return nil
}

// OnComplete registers fn to run once when a finite timeline finishes.
// Callbacks never run for killed or infinite timelines.
func (tl *Timeline) OnComplete(fn func()) {
	if tl == nil || fn == nil {
		return
	}
	tl.onComplete = append(tl.onComplete, fn)
}

// Kill halts the timeline where it is. Fields keep their current values and
// completion callbacks do not run. Kill is idempotent.
func (tl *Timeline) Kill() {
	if tl == nil {
		return
	}
	tl.killed = true
}

func (tl *Timeline) Killed() bool {
	return tl != nil && tl.killed
}

// Done reports whether a finite timeline has played to its end.
func (tl *Timeline) Done() bool {
	return tl != nil && tl.done
}

// Live reports whether the timeline is scheduled and still playing.
func (tl *Timeline) Live() bool {
	return tl != nil && tl.scheduled && !tl.killed && !tl.done
}

// Duration is the length of one cycle in seconds.
func (tl *Timeline) Duration() float64 {
	if tl == nil {
		return 0
	}
	return tl.length
}

// TotalDuration is the time from scheduling to completion, or +Inf for an
// infinite timeline.
func (tl *Timeline) TotalDuration() float64 {
	if tl == nil {
		return 0
	}
	if tl.opts.Repeat == Infinite {
		return math.Inf(1)
	}
	total := tl.opts.Delay + float64(tl.opts.Repeat+1)*tl.length + float64(tl.opts.Repeat)*tl.opts.RepeatDelay
	if tl.opts.DelayFirst {
		total += tl.opts.RepeatDelay
	}
	return total
}

// Iteration is the zero-based index of the cycle currently playing.
func (tl *Timeline) Iteration() int {
	if tl == nil {
		return 0
	}
	return tl.iteration
}

func (tl *Timeline) Len() int {
	if tl == nil {
		return 0
	}
	return len(tl.tracks)
}

// Validate reports the configuration error Schedule would return, without
// scheduling.
func (tl *Timeline) Validate() error {
	if tl == nil {
		return ErrNilTimeline
	}
	if tl.scheduled {
		return ErrAlreadyScheduled
	}
	return tl.validate()
}

func (tl *Timeline) validate() error {
	o := tl.opts
	if !common.Finite(o.Delay) || !common.Finite(o.RepeatDelay) {
		return ErrNonFinite
	}
	if o.Delay < 0 || o.RepeatDelay < 0 {
		return ErrNegativeDuration
	}
	if o.Repeat < Infinite {
		return ErrInvalidRepeat
	}
	if o.Repeat == Infinite && tl.length+o.RepeatDelay <= 0 {
		return ErrZeroLengthLoop
	}
	return nil
}

// capture resolves every omitted from-value. A field animated by an earlier
// tween starts from that tween's end value; otherwise the live value is read
// now, before any delay has elapsed.
func (tl *Timeline) capture() {
	sort.SliceStable(tl.tracks, func(i, j int) bool {
		return tl.tracks[i].offset < tl.tracks[j].offset
	})
	projected := make(map[*float64]float64)
	for _, tr := range tl.tracks {
		for i := range tr.channels {
			ch := &tr.channels[i]
			ptr := tr.target.Field(ch.prop)
			if ptr == nil {
				continue
			}
			if !ch.fromSet {
				if v, ok := projected[ptr]; ok {
					ch.from = v
				} else {
					ch.from = *ptr
				}
			}
			projected[ptr] = ch.to
		}
	}
}

// advance moves the playhead by dt seconds and writes the resulting values.
func (tl *Timeline) advance(dt float64) {
	if tl.killed || tl.done {
		return
	}
	tl.elapsed += dt

	t := tl.elapsed - tl.opts.Delay
	if tl.opts.DelayFirst {
		t -= tl.opts.RepeatDelay
	}
	if t < 0 {
		return
	}

	last := tl.opts.Repeat
	period := tl.length + tl.opts.RepeatDelay
	it := last
	if period > 0 {
		it = int(math.Floor(t / period))
	}
	if last != Infinite && it > last {
		it = last
	}

	if it > tl.iteration {
		// Intermediate cycles are indistinguishable: each starts from the
		// captured values, so finishing the current one is enough.
		tl.seek(tl.length)
		tl.iteration = it
		for _, tr := range tl.tracks {
			tr.finished = false
		}
	}

	local := t - float64(it)*period
	if local > tl.length {
		local = tl.length
	}
	tl.seek(local)

	if last != Infinite && it == last && local >= tl.length {
		tl.finish()
	}
}

func (tl *Timeline) seek(local float64) {
	for _, tr := range tl.tracks {
		if tr.finished || local < tr.offset {
			continue
		}
		tr.render(local)
	}
}

func (tl *Timeline) finish() {
	tl.done = true
	callbacks := tl.onComplete
	tl.onComplete = nil
	for _, fn := range callbacks {
		fn()
	}
}
