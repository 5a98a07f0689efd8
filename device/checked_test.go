package device_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/devblok/glstream/device"
	"github.com/devblok/glstream/device/devicetest"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestCheckedPassesCallsThrough(t *testing.T) {
	rec := devicetest.NewRecorder()
	dev := device.NewChecked(rec, quietLogger())

	buf := dev.GenBuffer()
	dev.BindBuffer(device.ArrayBuffer, buf)
	dev.BufferData(device.ArrayBuffer, 64, nil, device.StreamDraw)

	if got := rec.Count("BufferData"); got != 1 {
		t.Errorf("BufferData recorded %d times, want 1", got)
	}
	if rec.Sizes[buf] != 64 {
		t.Errorf("buffer size = %d, want 64", rec.Sizes[buf])
	}
}

func TestCheckedPanicsWithCallName(t *testing.T) {
	rec := devicetest.NewRecorder()
	dev := device.NewChecked(rec, quietLogger())

	buf := dev.GenBuffer()
	dev.BindBuffer(device.ArrayBuffer, buf)

	rec.ErrState = errors.New("GL_OUT_OF_MEMORY")
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("no panic on dirty device error state")
		}
		msg, ok := r.(string)
		if !ok {
			t.Fatalf("panic value %T, want string", r)
		}
		if !strings.Contains(msg, "BufferData") {
			t.Errorf("panic %q does not name the failing call", msg)
		}
		if !strings.Contains(msg, "GL_OUT_OF_MEMORY") {
			t.Errorf("panic %q does not carry the device error", msg)
		}
	}()
	dev.BufferData(device.ArrayBuffer, 1<<30, nil, device.StreamDraw)
}
