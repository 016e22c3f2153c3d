package main

import (
	"fmt"

	"github.com/younwookim/ledgeline/internal/application/replay"
	"github.com/younwookim/ledgeline/internal/application/system"
	"github.com/younwookim/ledgeline/internal/infrastructure/config"
)

// verifyResult is the printable outcome of a headless replay
type verifyResult struct {
	File string
	replay.Result
}

func (r verifyResult) String() string {
	return fmt.Sprintf("%s: %d frames, room %s, pos (%.3f, %.3f), state %s, %d transitions, %d respawns, %d room changes",
		r.File, r.Frames, r.Room, r.Pose.X, r.Pose.Y, r.Pose.State, r.Transitions, r.Respawns, r.RoomChanges)
}

// verify plays a recording against the loader's physics and rooms
func verify(loader *config.Loader, filename string) (verifyResult, error) {
	data, err := replay.LoadReplay(filename)
	if err != nil {
		return verifyResult{}, err
	}

	physics, err := loader.LoadPhysics()
	if err != nil {
		return verifyResult{}, err
	}
	atlas, err := system.LoadAtlas(loader)
	if err != nil {
		return verifyResult{}, err
	}

	res, err := replay.Run(physics, atlas, data)
	if err != nil {
		return verifyResult{}, err
	}
	return verifyResult{File: filename, Result: res}, nil
}
