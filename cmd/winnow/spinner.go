package main

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

const defaultSpinnerInterval = 120 * time.Millisecond

// startupStage identifies a phase of startup work shown on the spinner.
type startupStage int

const (
	stageReadingInput startupStage = iota
	stageLoadingHistory
	stageReady
)

type spinnerEvent struct {
	stage  startupStage
	detail string
}

// startupSpinner animates a one-line progress indicator on stderr while
// candidates load. It stays invisible until the delay elapses, so fast
// startups never flash a frame.
type startupSpinner struct {
	writer        io.Writer
	delay         time.Duration
	frameInterval time.Duration
	frames        []rune

	events chan spinnerEvent
	stopCh chan struct{}
	doneCh chan struct{}
	once   sync.Once

	mu       sync.Mutex
	frameIdx int
}

func newStartupSpinner(w io.Writer, delay time.Duration) *startupSpinner {
	return newCustomStartupSpinner(w, delay, defaultSpinnerInterval)
}

func newCustomStartupSpinner(w io.Writer, delay, frameInterval time.Duration) *startupSpinner {
	if w == nil {
		w = io.Discard
	}
	sp := &startupSpinner{
		writer:        w,
		delay:         delay,
		frameInterval: frameInterval,
		frames:        []rune{'|', '/', '-', '\\'},
		events:        make(chan spinnerEvent, 8),
		stopCh:        make(chan struct{}),
		doneCh:        make(chan struct{}),
	}
	go sp.loop()
	return sp
}

// Stage reports progress. Safe to call after Stop; late events are dropped.
func (s *startupSpinner) Stage(stage startupStage, detail string) {
	if s == nil {
		return
	}
	select {
	case <-s.stopCh:
		return
	default:
	}
	select {
	case s.events <- spinnerEvent{stage: stage, detail: detail}:
	default:
	}
}

// Stop clears the spinner line and waits for the render loop to exit. The
// terminal must be quiet before the picker takes over the screen.
func (s *startupSpinner) Stop() {
	if s == nil {
		return
	}
	s.once.Do(func() {
		close(s.stopCh)
		<-s.doneCh
	})
}

func (s *startupSpinner) loop() {
	defer close(s.doneCh)

	var delayCh <-chan time.Time
	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()
		delayCh = timer.C
	} else {
		delayCh = nil
	}

	ticker := time.NewTicker(s.frameInterval)
	defer ticker.Stop()

	var current spinnerEvent
	hasStage := false
	visible := s.delay == 0

	for {
		select {
		case <-s.stopCh:
			if visible {
				s.clearLine()
			}
			return
		case ev := <-s.events:
			current = ev
			hasStage = true
			if visible {
				s.render(current)
			}
		case <-ticker.C:
			if visible && hasStage {
				s.render(current)
			}
		case <-delayCh:
			delayCh = nil
			if hasStage {
				visible = true
				s.render(current)
			}
		}
	}
}

func (s *startupSpinner) render(ev spinnerEvent) {
	frame := s.nextFrame()
	message := formatStageMessage(ev.stage, ev.detail)
	_, _ = fmt.Fprintf(s.writer, "\r\033[2K%c %s", frame, message)
}

func (s *startupSpinner) clearLine() {
	_, _ = fmt.Fprint(s.writer, "\r\033[2K")
}

func (s *startupSpinner) nextFrame() rune {
	s.mu.Lock()
	defer s.mu.Unlock()
	frame := s.frames[s.frameIdx%len(s.frames)]
	s.frameIdx++
	return frame
}

var stageMessages = map[startupStage]string{
	stageReadingInput:   "Sifting the stream...",
	stageLoadingHistory: "Dusting off old picks...",
	stageReady:          "Sharpening the matcher...",
}

func formatStageMessage(stage startupStage, detail string) string {
	message := stageMessages[stage]
	if strings.TrimSpace(message) == "" {
		message = "Winnowing..."
	}
	detail = strings.TrimSpace(detail)
	if detail == "" {
		return message
	}
	return fmt.Sprintf("%s - %s", message, detail)
}
