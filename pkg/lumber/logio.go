package lumber

import (
	"bytes"
)

// Writer adapts a Logger to io.Writer, emitting one entry per line.
// Partial lines are buffered until a newline arrives or Sync is called.
type Writer struct {
	Log   Logger
	Level string
	buff  bytes.Buffer
}

// NewWriter returns a Writer logging at debug level.
func NewWriter(log Logger) *Writer {
	return NewLevelWriter(log, Debug)
}

// NewLevelWriter returns a Writer logging at the given level.
func NewLevelWriter(log Logger, level string) *Writer {
	return &Writer{Log: log, Level: level}
}

// Write splits bs on newlines and logs every complete line.
func (w *Writer) Write(bs []byte) (int, error) {
	n := len(bs)
	for {
		idx := bytes.IndexByte(bs, '\n')
		if idx < 0 {
			w.buff.Write(bs)
			return n, nil
		}
		if w.buff.Len() == 0 {
			w.log(bs[:idx])
		} else {
			w.buff.Write(bs[:idx])
			w.flush(true)
		}
		bs = bs[idx+1:]
	}
}

// Close flushes any buffered partial line.
func (w *Writer) Close() error {
	return w.Sync()
}

// Sync logs the buffered partial line, if any.
func (w *Writer) Sync() error {
	w.flush(false)
	return nil
}

func (w *Writer) flush(allowEmpty bool) {
	if allowEmpty || w.buff.Len() > 0 {
		w.log(w.buff.Bytes())
	}
	w.buff.Reset()
}

func (w *Writer) log(b []byte) {
	msg := string(b)
	switch w.Level {
	case Info:
		w.Log.Infof("%s", msg)
	case Warn:
		w.Log.Warnf("%s", msg)
	case Error:
		w.Log.Errorf("%s", msg)
	default:
		w.Log.Debugf("%s", msg)
	}
}
