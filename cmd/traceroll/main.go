// Command traceroll runs a ROM to completion (or until a serial pass/fail
// banner or a step budget is exhausted), optionally emitting one trace line
// per non-prefix instruction for diffing against a reference log.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/claude-sandbox/dotmatrix/internal/cpu"
	"github.com/claude-sandbox/dotmatrix/internal/machine"
)

func main() {
	romPath := flag.String("rom", "", "path to the ROM image")
	bootPath := flag.String("boot", "", "path to a boot ROM image (optional)")
	trace := flag.Bool("trace", false, "emit one line per non-prefix instruction")
	maxSteps := flag.Uint64("max-steps", 50_000_000, "abort after this many CPU steps with no serial banner")
	flag.Parse()

	if *romPath == "" {
		log.Fatal("traceroll: -rom is required")
	}

	rom, err := os.ReadFile(*romPath)
	if err != nil {
		log.Fatalf("traceroll: reading ROM: %v", err)
	}

	var boot []byte
	if *bootPath != "" {
		boot, err = os.ReadFile(*bootPath)
		if err != nil {
			log.Fatalf("traceroll: reading boot ROM: %v", err)
		}
	}

	var serial bytes.Buffer
	m := machine.New(machine.Config{
		ROM: rom, BootROM: boot, Serial: &serial,
		SkipBoot: len(boot) == 0,
	})

	if *trace {
		m.CPU.TraceFunc = func(s cpu.Snapshot) {
			fmt.Printf("A:%02X F:%02X B:%02X C:%02X D:%02X E:%02X H:%02X L:%02X SP:%04X PC:%04X PCMEM:%02X,%02X,%02X,%02X\n",
				s.A, s.F, s.B, s.C, s.D, s.E, s.H, s.L, s.SP, s.PC,
				m.Bus.Read(s.PC), m.Bus.Read(s.PC+1), m.Bus.Read(s.PC+2), m.Bus.Read(s.PC+3))
		}
	}

	for steps := uint64(0); steps < *maxSteps; steps++ {
		m.Tick()
		if done, ok := checkSerialBanner(serial.String()); ok {
			fmt.Println(done)
			return
		}
	}

	fmt.Fprintln(os.Stderr, "traceroll: step budget exhausted with no pass/fail banner")
	os.Exit(1)
}

// checkSerialBanner looks for blargg-style "Passed"/"Failed" text in the
// accumulated serial output.
func checkSerialBanner(s string) (string, bool) {
	if bytes.Contains([]byte(s), []byte("Passed")) {
		return s, true
	}
	if bytes.Contains([]byte(s), []byte("Failed")) {
		return s, true
	}
	return "", false
}
