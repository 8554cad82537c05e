package main

import "iter"

// player pulls one frame at a time out of a scene. The scene's state is
// mutated only while a frame is being pulled, so between calls to advance
// the grid or stack shows exactly the last committed step.
type player struct {
	scene     *scene
	next      func() (frame, bool)
	stop      func()
	current   frame
	steps     int
	done      bool
	undoStack []Action
	redoStack []Action
}

func newPlayer(sc *scene) *player {
	next, stop := iter.Pull(sc.steps)
	return &player{scene: sc, next: next, stop: stop}
}

// advance commits the next step and reports whether there was one.
func (p *player) advance() bool {
	if p.done {
		return false
	}
	f, ok := p.next()
	if !ok {
		p.done = true
		p.stop()
		p.current = frame{caption: "finished"}
		return false
	}
	p.current = f
	p.steps++
	if f.action != nil {
		p.undoStack = append(p.undoStack, *f.action)
		p.redoStack = p.redoStack[:0]
	}
	return true
}

// runToEnd commits every remaining step, calling fn after each one.
func (p *player) runToEnd(fn func(*player) error) error {
	for p.advance() {
		if fn == nil {
			continue
		}
		if err := fn(p); err != nil {
			p.close()
			return err
		}
	}
	return nil
}

// close abandons the scene where it stands.
func (p *player) close() {
	p.stop()
}
