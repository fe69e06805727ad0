package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/bradford-hamilton/chip8core/internal/chip8"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	maxCycles uint64
	maxFrames uint64
	quirkName string
	stopAtPC  string
	debug     bool
)

// runCmd runs a ROM to completion and prints the deterministic register
// dump. It is the headless replacement for a windowed front-end: loading,
// rendering, and input are a host's job, not the core's.
var runCmd = &cobra.Command{
	Use:   "run `path/to/rom`",
	Short: "run a ROM to completion and print the register dump",
	Args:  cobra.ExactArgs(1),
	RunE:  runROM,
}

func init() {
	runCmd.Flags().Uint64Var(&maxCycles, "max-cycles", 100_000, "stop after this many instructions")
	runCmd.Flags().Uint64Var(&maxFrames, "max-frames", 10_000, "stop after this many frames")
	runCmd.Flags().StringVar(&quirkName, "quirks", "", "quirks preset name (CHIP-8, CHIP-48, SCHIP)")
	runCmd.Flags().StringVar(&stopAtPC, "stop-at-pc", "", "stop when the program counter equals this hex address at a frame boundary, e.g. 0x2B4")
	runCmd.Flags().BoolVar(&debug, "debug", false, "print a verbose state dump instead of the register oracle")
}

func runROM(cmd *cobra.Command, args []string) error {
	pathToROM := args[0]

	rom, err := os.ReadFile(pathToROM)
	if err != nil {
		return errors.Wrapf(err, "reading ROM %q", pathToROM)
	}

	exec := chip8.NewExecutor()

	if quirkName != "" {
		preset, ok := chip8.Presets[quirkName]
		if !ok {
			return errors.Errorf("unknown quirks preset %q", quirkName)
		}
		exec.SetQuirks(preset)
	}

	if err := exec.Load(rom); err != nil {
		return errors.Wrapf(err, "loading ROM %q", pathToROM)
	}

	conditions := []chip8.StopCondition{
		chip8.MaxCycles(maxCycles),
		chip8.MaxFrames(maxFrames),
	}

	if stopAtPC != "" {
		word, err := strconv.ParseUint(strings.TrimPrefix(stopAtPC, "0x"), 16, 16)
		if err != nil {
			return errors.Wrapf(err, "parsing --stop-at-pc %q", stopAtPC)
		}
		addr, err := chip8.StrictAddress(uint16(word))
		if err != nil {
			return errors.Wrapf(err, "--stop-at-pc %q", stopAtPC)
		}
		conditions = append(conditions, chip8.ProgramCounter(addr))
	}

	chip8.RunToCompletion(exec, conditions...)

	if debug {
		fmt.Print(exec.DebugDump())
		return nil
	}

	fmt.Println(exec.DumpRegisters())
	return nil
}
