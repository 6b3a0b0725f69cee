// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package entrypoint

import (
	"fmt"
	"slices"
)

// Stage is the lifecycle stage of the entrypoint.
type Stage int

// Lifecycle stages. On first start the entrypoint runs through
// uninitialized, initializing, seeding, configuring, ready and exec'd. On
// later starts it runs through initialized, configuring, ready and exec'd.
// Any failure leads to aborted.
const (
	StageUnknown Stage = iota
	StageUninitialized
	StageInitialized
	StageInitializing
	StageSeeding
	StageConfiguring
	StageReady
	StageExecd
	StageAborted
)

var stageNames = map[Stage]string{
	StageUnknown:       "unknown",
	StageUninitialized: "uninitialized",
	StageInitialized:   "initialized",
	StageInitializing:  "initializing",
	StageSeeding:       "seeding",
	StageConfiguring:   "configuring",
	StageReady:         "ready",
	StageExecd:         "exec'd",
	StageAborted:       "aborted",
}

func (s Stage) String() string {
	name, exists := stageNames[s]
	if !exists {
		return fmt.Sprintf("stage(%d)", int(s))
	}

	return name
}

var stageTransitions = map[Stage][]Stage{
	StageUnknown:       {StageUninitialized, StageInitialized},
	StageUninitialized: {StageInitializing},
	StageInitializing:  {StageSeeding},
	StageSeeding:       {StageConfiguring},
	StageInitialized:   {StageConfiguring},
	StageConfiguring:   {StageReady},
	StageReady:         {StageExecd},
}

// State is passed along the [Func]s run by [Run].
type State struct {
	stage Stage
}

// Stage returns the current lifecycle stage.
func (s *State) Stage() Stage {
	return s.stage
}

// advance moves to the given stage. Only forward transitions of the
// lifecycle are allowed.
func (s *State) advance(next Stage) error {
	if !slices.Contains(stageTransitions[s.stage], next) {
		return fmt.Errorf("%w: %s -> %s", ErrStageOrder, s.stage, next)
	}

	s.stage = next

	return nil
}

// abort moves to the terminal [StageAborted].
func (s *State) abort() {
	s.stage = StageAborted
}
