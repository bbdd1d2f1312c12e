package jobs

import (
	"strings"

	"github.com/robfig/cron/v3"
)

// ScheduleOff disables a job.
const ScheduleOff = "off"

func isDisabled(spec string) bool {
	spec = strings.TrimSpace(spec)
	return spec == "" || strings.EqualFold(spec, ScheduleOff)
}

// scheduleParser accepts standard five-field specs, six-field specs with a
// leading seconds field, and descriptors such as "@every 30s".
var scheduleParser = cron.NewParser(
	cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

func newScheduler() *cron.Cron {
	return cron.New(
		cron.WithParser(scheduleParser),
		cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
	)
}
