package audio

import (
	"os"
	"os/exec"
	"runtime"
	"strconv"

	"github.com/lixenwraith/territory/parameter"
)

// pcmTool is a playback command that reads interleaved s16le from stdin
type pcmTool struct {
	typ  BackendType
	bin  string
	args func(rate, channels string) []string
}

// Ordered by preference; the first tool found on PATH wins
var pcmTools = []pcmTool{
	{BackendPulse, "pacat", func(rate, ch string) []string {
		return []string{"--raw", "--playback", "--format=s16le", "--rate=" + rate, "--channels=" + ch, "--latency-msec=50"}
	}},
	{BackendPipeWire, "pw-cat", func(rate, ch string) []string {
		return []string{"--playback", "--format=s16", "--rate=" + rate, "--channels=" + ch, "--latency=50ms", "-"}
	}},
	{BackendALSA, "aplay", func(rate, ch string) []string {
		return []string{"-q", "-t", "raw", "-f", "S16_LE", "-r", rate, "-c", ch}
	}},
	{BackendSoX, "play", func(rate, ch string) []string {
		return []string{"-q", "-t", "raw", "-e", "signed", "-b", "16", "-c", ch, "-r", rate, "-", "-d"}
	}},
	{BackendFFplay, "ffplay", func(rate, ch string) []string {
		return []string{"-nodisp", "-autoexit", "-loglevel", "quiet", "-probesize", "32", "-analyzeduration", "0",
			"-f", "s16le", "-ac", ch, "-ar", rate, "-i", "pipe:0"}
	}},
}

// DetectBackend resolves a playback tool for the cue stream at rate
func DetectBackend(rate int) (*BackendConfig, error) {
	r := strconv.Itoa(rate)
	ch := strconv.Itoa(parameter.AudioChannels)

	for _, t := range pcmTools {
		path, err := exec.LookPath(t.bin)
		if err != nil {
			continue
		}
		return &BackendConfig{Type: t.typ, Name: t.bin, Path: path, Args: t.args(r, ch)}, nil
	}

	// FreeBSD exposes OSS without any helper binary
	if runtime.GOOS == "freebsd" {
		if _, err := os.Stat("/dev/dsp"); err == nil {
			return &BackendConfig{Type: BackendOSS, Name: "oss", Path: "/dev/dsp"}, nil
		}
	}

	return nil, ErrNoAudioBackend
}
