package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/Boomerang-Apps/wave/pkg/gates"
)

var (
	lockerLock    bool
	lockerCheck   bool
	lockerAdvance bool
	lockerReset   bool
	lockerConfirm bool
	lockerHistory bool
	lockerProject string
	lockerMode    string
)

// workflowLock is the persisted gate position for a launch, advanced one
// gate at a time as the launch sequence progresses.
type workflowLock struct {
	CurrentGate int             `json:"current_gate"`
	GateMode    string          `json:"gate_mode"`
	UpdatedAt   time.Time       `json:"updated_at"`
	History     []lockHistoryEntry `json:"history"`
}

type lockHistoryEntry struct {
	Gate   int       `json:"gate"`
	Name   string    `json:"name"`
	Action string    `json:"action"`
	At     time.Time `json:"at"`
}

var lockerCmd = &cobra.Command{
	Use:   "locker",
	Short: "Manage the workflow gate lock",
	Long: `locker tracks the launch sequence position in .wave/workflow.lock.
Gates advance strictly one at a time; --reset requires --confirm.`,
	RunE: runLocker,
}

func init() {
	lockerCmd.Flags().BoolVar(&lockerLock, "lock", false, "Initialize the workflow lock at gate 0")
	lockerCmd.Flags().BoolVar(&lockerCheck, "check", false, "Print the current gate")
	lockerCmd.Flags().BoolVar(&lockerAdvance, "advance", false, "Advance to the next gate")
	lockerCmd.Flags().BoolVar(&lockerReset, "reset", false, "Reset the lock to gate 0")
	lockerCmd.Flags().BoolVar(&lockerConfirm, "confirm", false, "Confirm a destructive operation")
	lockerCmd.Flags().BoolVar(&lockerHistory, "history", false, "Print the gate history")
	lockerCmd.Flags().StringVar(&lockerProject, "project", ".", "Project root directory")
	lockerCmd.Flags().StringVar(&lockerMode, "gate-mode", "standard", "Gate ordering (standard or tdd)")
}

func lockPath() string {
	return filepath.Join(lockerProject, ".wave", "workflow.lock")
}

func runLocker(cmd *cobra.Command, args []string) error {
	if !lockerLock && !lockerCheck && !lockerAdvance && !lockerReset && !lockerHistory {
		return fmt.Errorf("%w: one of --lock, --check, --advance, --reset, --history is required", errUsage)
	}

	system, err := gates.NewSystem(gates.Mode(lockerMode))
	if err != nil {
		return fmt.Errorf("%w: %s", errUsage, err)
	}

	switch {
	case lockerLock:
		return initLock(system)
	case lockerAdvance:
		return advanceLock(system)
	case lockerReset:
		if !lockerConfirm {
			return fmt.Errorf("%w: --reset requires --confirm", errUsage)
		}
		return resetLock(system)
	case lockerHistory:
		return printHistory()
	default:
		return printCurrent(system)
	}
}

func readLock() (*workflowLock, error) {
	data, err := os.ReadFile(lockPath())
	if err != nil {
		return nil, fmt.Errorf("no workflow lock found, run --lock first: %w", err)
	}
	var lock workflowLock
	if err := json.Unmarshal(data, &lock); err != nil {
		return nil, fmt.Errorf("malformed workflow lock: %w", err)
	}
	return &lock, nil
}

func writeLock(lock *workflowLock) error {
	lock.UpdatedAt = time.Now().UTC()
	data, err := json.MarshalIndent(lock, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(lockPath()), 0o755); err != nil {
		return err
	}
	return os.WriteFile(lockPath(), data, 0o644)
}

func initLock(system *gates.System) error {
	if _, err := os.Stat(lockPath()); err == nil {
		return fmt.Errorf("workflow lock already exists at %s", lockPath())
	}
	name, _ := system.Name(0)
	lock := &workflowLock{
		CurrentGate: 0,
		GateMode:    string(system.Mode()),
		History: []lockHistoryEntry{
			{Gate: 0, Name: name, Action: "lock", At: time.Now().UTC()},
		},
	}
	if err := writeLock(lock); err != nil {
		return err
	}
	fmt.Printf("Workflow locked at gate 0 (%s)\n", name)
	return nil
}

func advanceLock(system *gates.System) error {
	lock, err := readLock()
	if err != nil {
		return err
	}
	if lock.GateMode != string(system.Mode()) {
		return fmt.Errorf("lock was taken in %s mode, not %s", lock.GateMode, system.Mode())
	}
	next := gates.Gate(lock.CurrentGate) + 1
	if next > system.Terminal() {
		return fmt.Errorf("already at terminal gate %d", lock.CurrentGate)
	}
	if err := system.ValidateTransition(gates.Gate(lock.CurrentGate), next); err != nil {
		return err
	}
	name, err := system.Name(next)
	if err != nil {
		return err
	}
	lock.CurrentGate = int(next)
	lock.History = append(lock.History, lockHistoryEntry{
		Gate: int(next), Name: name, Action: "advance", At: time.Now().UTC(),
	})
	if err := writeLock(lock); err != nil {
		return err
	}
	fmt.Printf("Advanced to gate %d (%s)\n", int(next), name)
	return nil
}

func resetLock(system *gates.System) error {
	lock, err := readLock()
	if err != nil {
		return err
	}
	name, _ := system.Name(0)
	lock.CurrentGate = 0
	lock.GateMode = string(system.Mode())
	lock.History = append(lock.History, lockHistoryEntry{
		Gate: 0, Name: name, Action: "reset", At: time.Now().UTC(),
	})
	if err := writeLock(lock); err != nil {
		return err
	}
	fmt.Println("Workflow lock reset to gate 0")
	return nil
}

func printCurrent(system *gates.System) error {
	lock, err := readLock()
	if err != nil {
		return err
	}
	name, err := system.Name(gates.Gate(lock.CurrentGate))
	if err != nil {
		name = "unknown"
	}
	fmt.Printf("Gate %d (%s), mode %s, updated %s\n",
		lock.CurrentGate, name, lock.GateMode, lock.UpdatedAt.Format(time.RFC3339))
	return nil
}

func printHistory() error {
	lock, err := readLock()
	if err != nil {
		return err
	}
	for _, entry := range lock.History {
		fmt.Printf("%s  %-8s gate %d (%s)\n",
			entry.At.Format(time.RFC3339), entry.Action, entry.Gate, entry.Name)
	}
	return nil
}
