//go:build linux

package rt

import (
	"github.com/rs/zerolog/log"
	"golang.org/x/sys/unix"
)

// fifoPriority leaves headroom below kernel threads pinned at 99.
const fifoPriority = 90

// realtime snapshots the calling thread's scheduler attributes and moves it
// to SCHED_FIFO. Needs CAP_SYS_NICE or an rtprio limit; without either the
// thread simply stays on the default scheduler, which still works on an
// idle system but tolerates less load.
func realtime() func() {
	tid := unix.Gettid()

	prev, err := unix.SchedGetAttr(tid, 0)
	if err != nil {
		log.Debug().Err(err).Msg("rt: cannot read scheduler attributes")
		return func() {}
	}

	attr := unix.SchedAttr{
		Size:     unix.SizeofSchedAttr,
		Policy:   unix.SCHED_FIFO,
		Priority: fifoPriority,
	}
	if err := unix.SchedSetAttr(tid, &attr, 0); err != nil {
		log.Debug().Err(err).Msg("rt: SCHED_FIFO unavailable, staying on the default scheduler")
		return func() {}
	}

	return func() {
		if err := unix.SchedSetAttr(tid, prev, 0); err != nil {
			log.Warn().Err(err).Msg("rt: failed to restore scheduler attributes")
		}
	}
}
