package obs

import (
	"bytes"
	"context"
	"errors"
	"log"
	"strings"
	"testing"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := log.Writer()
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(prev) })
	return &buf
}

func TestTimeLogsRequestIDAndError(t *testing.T) {
	buf := captureLog(t)

	ctx := WithRequestID(context.Background(), "abc123")
	err := errors.New("boom")
	Time(ctx, "pins.Insert")(&err)

	line := buf.String()
	for _, want := range []string{"req_id=abc123", "op=pins.Insert", "err=boom"} {
		if !strings.Contains(line, want) {
			t.Errorf("log line %q missing %q", line, want)
		}
	}
}

func TestTimeWithoutError(t *testing.T) {
	buf := captureLog(t)

	var err error
	Time(context.Background(), "pins.List")(&err)

	if strings.Contains(buf.String(), "err=") {
		t.Fatalf("unexpected err field in %q", buf.String())
	}
}
