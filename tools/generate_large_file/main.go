// Large FBDL File Generator
//
// This tool generates a large FBDL description for performance testing and profiling.
// It emits nested buses and blocks that touch every token kind the lexer knows about.
//
// Usage:
//
//	go run main.go > large.fbd
//	go run main.go 20000000 > large.fbd  # Specify target size in bytes
package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fbdl-go/fbdl/loader"
)

const (
	defaultTargetSize = 10 * 1024 * 1024 // 10MB
)

var (
	peripherals = []string{
		"Uart", "Spi", "I2c", "Gpio", "Timer", "Dma", "Adc", "Dac",
		"Pwm", "Wdt", "Rtc", "Can", "Eth", "Usb", "Crc", "Aes",
	}

	registers = []string{
		"ctrl", "status", "data", "irq_en", "irq_flags", "divisor",
		"threshold", "count", "mode", "fifo_level", "version", "id",
	}

	accessModes = []string{"Read Write", "Read Only", "Write Only"}
	triggers    = []string{"edge", "level"}
	timeUnits   = []string{"fs", "ps", "ns", "us", "ms", "s"}
)

func main() {
	targetSize := defaultTargetSize
	if len(os.Args) > 1 {
		if size, err := strconv.Atoi(os.Args[1]); err == nil {
			targetSize = size
		}
	}

	data, blockCount := generate(targetSize)

	// Refuse to emit a corpus the lexer rejects
	result := loader.New().MustLoadBytes(context.Background(), "large.fbd", data)

	if _, err := os.Stdout.Write(data); err != nil {
		fmt.Fprintf(os.Stderr, "write failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "\nGenerated %d bytes with %d declarations (%d tokens)\n", len(data), blockCount, result.TokenCount())
}

// generate builds at least targetSize bytes of FBDL and returns them with
// the number of top-level declarations emitted after the header.
func generate(targetSize int) ([]byte, int) {
	var sb strings.Builder
	sb.Grow(targetSize)

	// Write header
	sb.WriteString(writeHeader())

	blockCount := 0

	for sb.Len() < targetSize {
		var output string

		// Mix different kinds of top-level declarations
		switch rand.Intn(10) {
		case 0, 1, 2, 3, 4: // 50% - Peripheral block
			output = generateBlock(blockCount)
		case 5, 6: // 20% - Register type
			output = generateType(blockCount)
		case 7: // 10% - Memory
			output = generateMemory(blockCount)
		case 8: // 10% - Constants
			output = generateConstants(blockCount)
		case 9: // 10% - Stream and proc
			output = generateProc(blockCount)
		}

		sb.WriteString(output)
		blockCount++
	}

	return []byte(sb.String()), blockCount
}

func writeHeader() string {
	var sb strings.Builder
	sb.WriteString("# Large FBDL File for Performance Testing\n")
	sb.WriteString("# Generated: " + time.Now().Format("2006-01-02 15:04:05") + "\n\n")
	sb.WriteString("const WIDTH = 32\n")
	sb.WriteString("const DEPTH = 0x400\n")
	sb.WriteString("const PERIOD = 10ns\n\n")
	sb.WriteString("Main bus\n")
	sb.WriteString("  masters = 2\n")
	sb.WriteString("  width = WIDTH\n\n")

	return sb.String()
}

func name(prefix string, n int) string {
	return fmt.Sprintf("%s%d", prefix, n)
}

func generateBlock(n int) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s block\n", name(peripherals[rand.Intn(len(peripherals))], n))
	fmt.Fprintf(&sb, "  # %s registers\n", strings.ToLower(peripherals[n%len(peripherals)]))

	for i := 0; i < rand.Intn(6)+2; i++ {
		reg := registers[rand.Intn(len(registers))]
		switch rand.Intn(4) {
		case 0:
			fmt.Fprintf(&sb, "  %s config; width = %d\n", name(reg, i), rand.Intn(32)+1)
			fmt.Fprintf(&sb, "    reset_value = 0x%X\n", rand.Intn(0xFFFF))
		case 1:
			fmt.Fprintf(&sb, "  %s [%d] status\n", name(reg, i), rand.Intn(8)+1)
			fmt.Fprintf(&sb, "    atomic = %t\n", rand.Intn(2) == 0)
			fmt.Fprintf(&sb, "    read_value = 0o%o\n", rand.Intn(0777))
		case 2:
			fmt.Fprintf(&sb, "  %s mask; init_value = b\"%s\"\n", name(reg, i), randBits(rand.Intn(8)+1))
		case 3:
			fmt.Fprintf(&sb, "  %s irq\n", name(reg, i))
			fmt.Fprintf(&sb, "    in_trigger = \"%s\"\n", triggers[rand.Intn(len(triggers))])
			fmt.Fprintf(&sb, "    out_trigger = \"%s\"\n", triggers[rand.Intn(len(triggers))])
			fmt.Fprintf(&sb, "    enable_init_value = %t\n", rand.Intn(2) == 0)
		}
	}

	sb.WriteString("\n")
	return sb.String()
}

func generateType(n int) string {
	return fmt.Sprintf(`type %s config
  width = WIDTH - %d
  reset_value = x"%s"
  groups = ["%s", "%s"]

`, name("cfg_t", n), rand.Intn(16), randHex(rand.Intn(4)+1),
		registers[rand.Intn(len(registers))], registers[rand.Intn(len(registers))])
}

func generateMemory(n int) string {
	return fmt.Sprintf(`%s memory
  size = DEPTH * %d
  access = "%s"
  read_latency = %d
  byte_write_enable = %t

`, name("Mem", n), rand.Intn(4)+1, accessModes[rand.Intn(len(accessModes))], rand.Intn(4), rand.Intn(2) == 0)
}

func generateConstants(n int) string {
	return fmt.Sprintf(`const %s = (%d << 2) | 0b%s
const %s = %.3fe-%d
const %s = %d%s

`, name("MASK_", n), rand.Intn(1024), randBits(rand.Intn(16)+1),
		name("RATIO_", n), rand.Float64()*10, rand.Intn(9)+1,
		name("DELAY_", n), rand.Intn(1000)+1, timeUnits[rand.Intn(len(timeUnits))])
}

func generateProc(n int) string {
	return fmt.Sprintf(`%s stream
  delay = PERIOD
  %s param
    range = (0, %d)
  %s return
  %s static; init_value = %d

%s proc
  delay = %d%s
  ok = !true || (WIDTH >= %d && WIDTH != %d)

`, name("Tx", n), name("p", n), rand.Intn(256)+1, name("r", n), name("s", n), rand.Intn(100),
		name("Run", n), rand.Intn(100)+1, timeUnits[rand.Intn(len(timeUnits))], rand.Intn(32), rand.Intn(32))
}

// Helper functions

func randBits(n int) string {
	var sb strings.Builder
	for i := 0; i < n; i++ {
		sb.WriteByte("01"[rand.Intn(2)])
	}
	return sb.String()
}

func randHex(n int) string {
	var sb strings.Builder
	for i := 0; i < n; i++ {
		sb.WriteByte("0123456789abcdef"[rand.Intn(16)])
	}
	return sb.String()
}
