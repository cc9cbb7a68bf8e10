package controller

import (
	"time"

	m "github.com/TechnoBlogger14o3/AlgoLab/internal/model"
)

// Message types.
type frameMsg struct {
	frame m.Frame
}

type outcomeMsg struct {
	outcomes []m.Outcome
}

type tickMsg time.Time
