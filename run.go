package main

import (
	"fmt"
	"os"

	"anfsq7/emu"
	"anfsq7/emu/log"
	"anfsq7/tape"
)

func runDeck(cli CLI) {
	cfg := emu.LoadConfigOrDefault()
	if cli.Run.Trace != nil {
		cfg.TraceOut = cli.Run.Trace
		defer cli.Run.Trace.Close()
	}

	deck, err := tape.Open(cli.Run.DeckPath)
	checkf(err, "failed to read deck")

	sim := emu.PowerUp(cfg)
	log.AddContext(sim.CPU)
	checkf(sim.LoadDeck(deck), "failed to load deck")

	maxTicks := cli.Run.Ticks
	if maxTicks == 0 {
		maxTicks = cfg.General.MaxTicks
	}

	rec, err := sim.RunToHalt(maxTicks)
	if err != nil {
		// Leave a snapshot behind even after a fault: the state is the
		// evidence.
		saveSnapshot(sim, cli.Run.Snapshot)
		fatalf("run ended: %s", err)
	}

	fmt.Printf("halted: pc=%04X acc=%s cycles=%d\n", rec.PC, rec.ACC, sim.CPU.Cycles)
	saveSnapshot(sim, cli.Run.Snapshot)
}

func saveSnapshot(sim *emu.Sim, path string) {
	if path == "" {
		return
	}
	f, err := os.Create(path)
	checkf(err, "failed to create snapshot file")
	defer f.Close()
	checkf(sim.SaveSnapshot(f), "failed to write snapshot")
}
