package terminal

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync"
)

// Service owns a Terminal and polls its input on a dedicated goroutine
// Events are delivered on a channel so the engine stays single-threaded
type Service struct {
	term    Terminal
	eventCh chan Event
	stopCh  chan struct{}
	doneCh  chan struct{}
	mu      sync.Mutex
	running bool
}

// NewService wraps term; call Start to begin polling
func NewService(term Terminal) *Service {
	return &Service{
		term:    term,
		eventCh: make(chan Event, 256),
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}
}

// Start initializes the terminal and launches the poll goroutine
func (s *Service) Start() error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return nil
	}
	s.running = true
	s.mu.Unlock()

	if err := s.term.Init(); err != nil {
		return fmt.Errorf("terminal service: %w", err)
	}

	go s.pollLoop()
	return nil
}

// pollLoop reads input events until stop signal
func (s *Service) pollLoop() {
	defer close(s.doneCh)

	defer func() {
		if r := recover(); r != nil {
			s.term.Fini()
			fmt.Fprintf(os.Stderr, "\r\nterminal poll crashed: %v\r\n%s\r\n", r, debug.Stack())
			os.Exit(1)
		}
	}()

	for {
		select {
		case <-s.stopCh:
			return
		default:
		}

		ev := s.term.PollEvent()
		if ev.Type == EventClosed {
			return
		}

		select {
		case s.eventCh <- ev:
		case <-s.stopCh:
			return
		}
	}
}

// Stop signals the poll loop, waits for it and restores the terminal
func (s *Service) Stop() error {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return nil
	}
	s.running = false
	s.mu.Unlock()

	close(s.stopCh)

	// Unblock PollEvent
	s.term.PostEvent(Event{Type: EventClosed})

	<-s.doneCh

	s.term.Fini()
	return nil
}

// Terminal returns the wrapped terminal instance
func (s *Service) Terminal() Terminal {
	return s.term
}

// Events returns the input event channel
func (s *Service) Events() <-chan Event {
	return s.eventCh
}
