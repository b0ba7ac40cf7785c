package domain

import "time"

// ConflictReport is produced by the external scheduling-conflict detector.
// gesta only renders it.
type ConflictReport struct {
	HasConflicts bool                 `json:"hasConflicts"`
	Conflicts    []ScheduleConflict   `json:"conflicts"`
	Suggestions  []ScheduleSuggestion `json:"suggestions"`
	WorstOverlap int                  `json:"worstOverlap"`
}

type ScheduleConflict struct {
	Quest          Quest  `json:"quest"`
	OverlapMinutes int    `json:"overlapMinutes"`
	OverlapType    string `json:"overlapType"`
}

type ScheduleSuggestion struct {
	Time   time.Time `json:"time"`
	Reason string    `json:"reason"`
}
