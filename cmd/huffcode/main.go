// Command huffcode builds the static five-symbol code table for a single
// frequency vector and prints it.
//
// Usage:
//
//	huffcode -freqs 31,1,1,1,1
//	huffcode -word 0x1F08421 -json
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	json "github.com/json-iterator/go"
	"github.com/op/go-logging"

	"github.com/indigo-web/huffcode"
	"github.com/indigo-web/huffcode/config"
)

const progName = "huffcode"

var log = logging.MustGetLogger(progName)

type codeReport struct {
	Symbol string `json:"symbol"`
	Len    uint8  `json:"len"`
	Bits   string `json:"bits"`
	Field  uint8  `json:"field"`
}

type report struct {
	Codes  []codeReport `json:"codes"`
	Packed uint32       `json:"packed"`
}

func startLogging(debug bool) {
	backend := logging.NewLogBackend(os.Stderr, progName+": ", 0)
	formatter := logging.MustStringFormatter("%{level:-8s} %{message}")
	leveled := logging.AddModuleLevel(logging.NewBackendFormatter(backend, formatter))
	leveled.SetLevel(logging.WARNING, "")
	if debug {
		leveled.SetLevel(logging.DEBUG, "")
	}
	logging.SetBackend(leveled)
}

func parseFreqs(arg string) ([]uint8, error) {
	parts := strings.Split(arg, ",")
	freqs := make([]uint8, 0, len(parts))

	for _, part := range parts {
		n, err := strconv.ParseUint(strings.TrimSpace(part), 10, 8)
		if err != nil {
			return nil, fmt.Errorf("bad frequency %q: %v", part, err)
		}

		freqs = append(freqs, uint8(n))
	}

	return freqs, nil
}

func main() {
	var (
		freqsArg  string
		wordArg   string
		asJSON    bool
		clamp     bool
		debugging bool
	)

	flag.StringVar(&freqsArg, "freqs", "", "five comma-separated frequencies, symbols a through e")
	flag.StringVar(&wordArg, "word", "", "legacy 25-bit frequency word instead of -freqs")
	flag.BoolVar(&asJSON, "json", false, "print the table as JSON")
	flag.BoolVar(&clamp, "clamp", false, "clamp out-of-range frequencies instead of rejecting them")
	flag.BoolVar(&debugging, "debug", false, "log the merge inputs")
	flag.Parse()

	startLogging(debugging)

	cfg := config.Default()
	if clamp {
		cfg.Input.OutOfRange = config.Clamp
	}
	codec := huffcode.New(cfg)

	var table huffcode.Table

	switch {
	case freqsArg != "" && wordArg != "":
		log.Fatal("-freqs and -word are mutually exclusive")
	case freqsArg != "":
		freqs, err := parseFreqs(freqsArg)
		if err != nil {
			log.Fatal(err)
		}

		log.Debugf("frequencies: %v", freqs)
		table, err = codec.Table(freqs)
		if err != nil {
			log.Fatal(err)
		}
	case wordArg != "":
		word, err := strconv.ParseUint(wordArg, 0, 32)
		if err != nil {
			log.Fatalf("bad frequency word %q: %v", wordArg, err)
		}

		f := huffcode.UnpackFrequencies(uint32(word))
		log.Debugf("frequencies: %v", f)
		table = huffcode.Build(f)
	default:
		flag.Usage()
		os.Exit(2)
	}

	if !asJSON {
		fmt.Print(codec.Render(table))
		fmt.Printf("packed 0x%05X\n", table.Pack())
		return
	}

	out := report{Packed: table.Pack()}
	for id, code := range table {
		out.Codes = append(out.Codes, codeReport{
			Symbol: string(cfg.Output.Labels[id]),
			Len:    code.Len,
			Bits:   fmt.Sprintf("%0*b", int(code.Len), code.Bits),
			Field:  code.Bits,
		})
	}

	stream := json.ConfigDefault.BorrowStream(os.Stdout)
	stream.WriteVal(out)
	stream.WriteRaw("\n")
	if err := stream.Flush(); err != nil {
		log.Fatal(err)
	}
	json.ConfigDefault.ReturnStream(stream)
}
