package boardingpass

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ErrBarcodeDecode is returned when the external decoder cannot read the
// image.
var ErrBarcodeDecode = errors.New("barcode decode failed")

const zxingRunner = "com.google.zxing.client.j2se.CommandLineRunner"

// Decoder reads Aztec barcodes by invoking ZXing's CommandLineRunner:
//
//	java -cp javase.jar:core.jar com.google.zxing.client.j2se.CommandLineRunner <image> --possibleFormats=AZTEC
type Decoder struct {
	java string
	jars []string
}

// NewDecoder creates a Decoder. java is the java binary (defaults to "java"
// when empty); jars are the ZXing javase and core jar paths.
func NewDecoder(java string, jars ...string) *Decoder {
	if java == "" {
		java = "java"
	}
	return &Decoder{java: java, jars: jars}
}

// Decode runs the external decoder on an image file and returns the raw
// decoded string.
func (d *Decoder) Decode(ctx context.Context, imagePath string) (string, error) {
	classpath := strings.Join(d.jars, ":")
	cmd := exec.CommandContext(ctx, d.java, "-cp", classpath, zxingRunner, imagePath, "--possibleFormats=AZTEC")

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("%w: %s", ErrBarcodeDecode, decodeFailureReason(stdout.String(), stderr.String()))
	}

	// CommandLineRunner prints the file path, the format line, then the raw
	// decoded string on the third line.
	lines := strings.Split(stdout.String(), "\n")
	if len(lines) < 3 {
		return "", fmt.Errorf("%w: unexpected decoder output", ErrBarcodeDecode)
	}
	return lines[2], nil
}

// decodeFailureReason digs the meaningful line out of the decoder's output;
// a long stderr is assumed to be a java stack trace.
func decodeFailureReason(stdout, stderr string) string {
	errLines := strings.Split(stderr, "\n")
	if len(errLines) > 5 {
		for _, line := range errLines {
			if strings.HasPrefix(line, "Caused by") {
				return line
			}
		}
	}
	if stdout != "" {
		return strings.SplitN(stdout, "\n", 2)[0]
	}
	return errLines[0]
}
