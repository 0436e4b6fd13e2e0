package auditlog

import (
	"encoding/json"
	"log"
	"os"
	"sync"
	"time"
)

// Logger appends structured JSON entries to a dedicated payment audit
// file, one object per line. It records request/response pairs and errors
// on the payment path, separate from normal process logs, so webhook
// discrepancies can be replayed later. Entries are never rewritten.
type Logger struct {
	mu   sync.Mutex
	path string
}

// Entry is one audit record.
type Entry struct {
	Time  time.Time   `json:"time"`
	Title string      `json:"title"`
	Data  interface{} `json:"data,omitempty"`
}

// New creates a logger writing to path. The file is created on first write.
func New(path string) *Logger {
	return &Logger{path: path}
}

// Log appends one entry. An audit write must never take the request path
// down, so failures are reported to the process log and swallowed.
func (l *Logger) Log(title string, data interface{}) {
	entry := Entry{
		Time:  time.Now().UTC(),
		Title: title,
		Data:  data,
	}

	line, err := json.Marshal(entry)
	if err != nil {
		log.Printf("audit log: marshal failed for %q: %v", title, err)
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		log.Printf("audit log: open %s failed: %v", l.path, err)
		return
	}
	defer f.Close()

	if _, err := f.Write(append(line, '\n')); err != nil {
		log.Printf("audit log: write failed: %v", err)
	}
}
