package chat

import (
	"time"

	"mindsoul/server/model"
)

// StartDateLayout is the wire format of Plan.StartDate.
const StartDateLayout = "2006-01-02"

// StampStartDate overwrites the plan's start date with the current UTC
// calendar date. The model has no reliable clock, so whatever date it
// produced is discarded. All other fields pass through untouched.
func StampStartDate(p *model.Plan, now time.Time) {
	p.StartDate = now.UTC().Format(StartDateLayout)
}
