package http

import (
	"context"
	"os"
	"os/exec"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/rbxweb/rbxweb/internal/constants"
)

// Verdict is a liveness classification from the preflight probe.
type Verdict int

const (
	// VerdictUnknown means the probe produced no usable status line. The
	// primary path proceeds since there is no evidence either way.
	VerdictUnknown Verdict = iota
	// VerdictUp means the probe saw a healthy status line.
	VerdictUp
	// VerdictDown means the probe saw an error status line or could not
	// reach the server at all.
	VerdictDown
)

// String returns a human-readable name for the verdict.
func (v Verdict) String() string {
	switch v {
	case VerdictUp:
		return "up"
	case VerdictDown:
		return "down"
	default:
		return "unknown"
	}
}

// Prober checks server liveness independently of the primary HTTP client,
// so a down server is not misdiagnosed as a client defect.
type Prober interface {
	Probe(ctx context.Context, url string, headers map[string]string) (Verdict, error)
}

// CurlProber shells out to curl in verbose mode and classifies the status
// lines in its combined output.
type CurlProber struct {
	// Path is the curl binary, "curl" when empty.
	Path string
	// Timeout bounds the probe via --max-time, 10s when zero.
	Timeout time.Duration
}

// Probe runs curl against the URL with the given headers and classifies
// the result. A curl that exits nonzero without producing a status line
// counts as down.
func (p *CurlProber) Probe(ctx context.Context, url string, headers map[string]string) (Verdict, error) {
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return VerdictUnknown, constants.ErrInvalidProbeURL
	}

	path := p.Path
	if path == "" {
		path = "curl"
	}

	binary, err := exec.LookPath(path)
	if err != nil {
		return VerdictUnknown, constants.ErrProbeToolNotFound
	}

	timeout := p.Timeout
	if timeout <= 0 {
		timeout = constants.ShortHTTPTimeout
	}

	args := []string{
		"-v", "-sS", "-k",
		"-o", os.DevNull,
		"--max-time", strconv.Itoa(int(timeout.Seconds())),
	}

	// Sorted so the argument list is stable for logging and tests.
	keys := make([]string, 0, len(headers))
	for key := range headers {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	for _, key := range keys {
		args = append(args, "-H", key+": "+headers[key])
	}

	args = append(args, url)

	output, runErr := exec.CommandContext(ctx, binary, args...).CombinedOutput()

	verdict := ClassifyProbeOutput(output)
	if verdict == VerdictUnknown && runErr != nil {
		return VerdictDown, nil
	}

	return verdict, nil
}

// ClassifyProbeOutput scans verbose curl output for response status lines
// ("< HTTP/..."), classifying 200 and 204 as up and any 4xx or 5xx as
// down. With redirect chains the last classifiable line wins.
func ClassifyProbeOutput(output []byte) Verdict {
	verdict := VerdictUnknown

	for _, line := range strings.Split(string(output), "\n") {
		line = strings.TrimRight(line, "\r")
		if !strings.HasPrefix(line, "< HTTP/") {
			continue
		}

		// Trailing pad so a bare "HTTP/2 200" still matches " 200 ".
		padded := line + " "

		switch {
		case strings.Contains(padded, " 200 ") || strings.Contains(padded, " 204 "):
			verdict = VerdictUp
		case strings.Contains(padded, " 4") || strings.Contains(padded, " 5"):
			verdict = VerdictDown
		}
	}

	return verdict
}
