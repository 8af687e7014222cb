package domain

import "time"

type SpeedStep struct {
	MinScore int32
	Delay    time.Duration
}

// SpeedTable is ordered by MinScore. The delay never increases with score.
var SpeedTable = []SpeedStep{
	{MinScore: 0, Delay: 150 * time.Millisecond},
	{MinScore: 3, Delay: 140 * time.Millisecond},
	{MinScore: 6, Delay: 120 * time.Millisecond},
	{MinScore: 10, Delay: 110 * time.Millisecond},
	{MinScore: 14, Delay: 100 * time.Millisecond},
	{MinScore: 18, Delay: 80 * time.Millisecond},
	{MinScore: 22, Delay: 60 * time.Millisecond},
	{MinScore: 32, Delay: 50 * time.Millisecond},
}

// FrameDelay returns the delay of the last table row whose MinScore is <= score.
func FrameDelay(score int32) time.Duration {
	delay := SpeedTable[0].Delay
	for _, step := range SpeedTable {
		if score < step.MinScore {
			break
		}
		delay = step.Delay
	}
	return delay
}
