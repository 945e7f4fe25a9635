// Command wmctl embeds and extracts watermarks in BMP images from the
// command line.
package main

import (
	"crypto/rand"
	"encoding/binary"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strconv"

	wm "github.com/Stamp-ed/resilient-watermarking-pipeline"
	"github.com/Stamp-ed/resilient-watermarking-pipeline/internal/attack"
	"github.com/Stamp-ed/resilient-watermarking-pipeline/internal/bitpack"
	"github.com/Stamp-ed/resilient-watermarking-pipeline/internal/imageio"
	"github.com/Stamp-ed/resilient-watermarking-pipeline/internal/metrics"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	var err error
	switch os.Args[1] {
	case "embed":
		err = runEmbed(os.Args[2:])
	case "extract":
		err = runExtract(os.Args[2:])
	case "genkey":
		err = runGenKey(os.Args[2:])
	case "attack":
		err = runAttack(os.Args[2:])
	case "serve":
		err = runServe(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: wmctl <embed|extract|genkey|attack|serve> [flags]")
}

func parseKey(s string) (uint64, error) {
	return strconv.ParseUint(s, 0, 64)
}

func runEmbed(args []string) error {
	fs := flag.NewFlagSet("embed", flag.ExitOnError)
	in := fs.String("in", "", "input BMP path")
	out := fs.String("out", "", "output BMP path")
	keyStr := fs.String("key", "", "64-bit key, e.g. 0xABCDEF1234567890")
	payload := fs.String("payload", "", "payload text to embed")
	alpha := fs.Float64("alpha", 2.0, "embedding strength")
	padMode := fs.String("pad", "zero", "padding mode: zero or edge")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" || *out == "" || *keyStr == "" || *payload == "" {
		return fmt.Errorf("wmctl: embed requires -in, -out, -key, -payload")
	}
	key, err := parseKey(*keyStr)
	if err != nil {
		return fmt.Errorf("wmctl: invalid key: %w", err)
	}

	f, err := os.Open(*in)
	if err != nil {
		return err
	}
	defer f.Close()
	planes, err := imageio.Decode(f)
	if err != nil {
		return err
	}

	mode := imageio.PadZero
	if *padMode == "edge" {
		mode = imageio.PadEdge
	}
	pw := imageio.NextMultipleOf32(planes.W)
	ph := imageio.NextMultipleOf32(planes.H)
	y := imageio.Pad(planes.Y, planes.W, planes.H, pw, ph, mode)
	yOrig := append([]float32(nil), y...)

	bits := bitpack.Pack([]byte(*payload))
	if err := wm.Embed(y, pw, ph, bits, key, float32(*alpha)); err != nil {
		return fmt.Errorf("wmctl: embed: %w", err)
	}

	log.Printf("embedded %d bits, PSNR=%.2f dB", len(bits), metrics.PSNR(yOrig, y))

	planes.Y = imageio.Unpad(y, pw, planes.W, planes.H)

	outFile, err := os.Create(*out)
	if err != nil {
		return err
	}
	defer outFile.Close()
	return imageio.Encode(outFile, planes)
}

func runExtract(args []string) error {
	fs := flag.NewFlagSet("extract", flag.ExitOnError)
	in := fs.String("in", "", "input BMP path")
	keyStr := fs.String("key", "", "64-bit key")
	length := fs.Int("bytes", 0, "number of payload bytes to recover")
	padMode := fs.String("pad", "zero", "padding mode: zero or edge")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" || *keyStr == "" || *length <= 0 {
		return fmt.Errorf("wmctl: extract requires -in, -key, -bytes")
	}
	key, err := parseKey(*keyStr)
	if err != nil {
		return fmt.Errorf("wmctl: invalid key: %w", err)
	}

	f, err := os.Open(*in)
	if err != nil {
		return err
	}
	defer f.Close()
	planes, err := imageio.Decode(f)
	if err != nil {
		return err
	}

	mode := imageio.PadZero
	if *padMode == "edge" {
		mode = imageio.PadEdge
	}
	pw := imageio.NextMultipleOf32(planes.W)
	ph := imageio.NextMultipleOf32(planes.H)
	y := imageio.Pad(planes.Y, planes.W, planes.H, pw, ph, mode)

	res, err := wm.Extract(y, pw, ph, key, *length*8)
	if err != nil {
		return fmt.Errorf("wmctl: extract: %w", err)
	}

	text := bitpack.Unpack(res.Bits)
	log.Printf("verdict=%s mean_confidence=%.3f min_confidence=%.3f", res.Verdict, res.MeanConfidence, res.MinConfidence)
	fmt.Printf("%s\n", text)
	return nil
}

func runGenKey(args []string) error {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return fmt.Errorf("wmctl: genkey: %w", err)
	}
	key := binary.BigEndian.Uint64(buf[:])
	fmt.Printf("0x%016X\n", key)
	return nil
}

func runAttack(args []string) error {
	fs := flag.NewFlagSet("attack", flag.ExitOnError)
	in := fs.String("in", "", "input BMP path")
	out := fs.String("out", "", "output BMP path")
	kind := fs.String("kind", "", "quantize|noise|crop")
	q := fs.Float64("q", 4.0, "quantization factor (kind=quantize)")
	amp := fs.Float64("amplitude", 1.0, "noise amplitude (kind=noise)")
	frac := fs.Float64("fraction", 0.2, "border fraction (kind=crop)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" || *out == "" || *kind == "" {
		return fmt.Errorf("wmctl: attack requires -in, -out, -kind")
	}

	f, err := os.Open(*in)
	if err != nil {
		return err
	}
	defer f.Close()
	planes, err := imageio.Decode(f)
	if err != nil {
		return err
	}

	switch *kind {
	case "quantize":
		attack.Quantize(planes.Y, *q)
	case "noise":
		attack.AdditiveSine(planes.Y, *amp)
	case "crop":
		attack.CropBorder(planes.Y, planes.W, planes.H, *frac)
	default:
		return fmt.Errorf("wmctl: unknown attack kind %q", *kind)
	}

	outFile, err := os.Create(*out)
	if err != nil {
		return err
	}
	defer outFile.Close()
	return imageio.Encode(outFile, planes)
}

func runServe(args []string) error {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	in := fs.String("in", "", "BMP path to serve")
	addr := fs.String("http", ":8080", "listen address")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" {
		return fmt.Errorf("wmctl: serve requires -in")
	}
	http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		f, err := os.Open(*in)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		defer f.Close()
		w.Header().Set("Content-Type", "image/bmp")
		if _, err := io.Copy(w, f); err != nil {
			log.Printf("serve: %v", err)
		}
	})
	log.Printf("serving %s on %s", *in, *addr)
	return http.ListenAndServe(*addr, nil)
}
