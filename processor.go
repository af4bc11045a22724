// FILE: lixenwraith/slogger/processor.go
package slogger

import "github.com/lixenwraith/slogger/sanitizer"

// loopState is the writer goroutine state
type loopState int

const (
	stateIdle     loopState = iota // Waiting for records or stop
	stateDraining                  // Writing a drained batch
	stateStopping                  // Stop requested, checking for late records
	stateStopped                   // Terminal
)

// processLogs is the writer loop running in its own goroutine. It exits only after a drain
// that follows the stop request finds the queue empty.
func (l *Logger) processLogs(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	var batch []Record
	state := stateIdle

	for state != stateStopped {
		switch state {
		case stateIdle:
			l.queue.wait(stop)
			state = stateDraining

		case stateDraining:
			batch = l.queue.drain(batch)
			l.writeBatch(batch)
			if isClosed(stop) {
				state = stateStopping
			} else {
				state = stateIdle
			}

		case stateStopping:
			if l.queue.len() == 0 {
				state = stateStopped
			} else {
				state = stateDraining
			}
		}
	}

	clear(batch)
}

// writeBatch writes records in order under the file lock and flushes once at the end.
// Flush markers are acknowledged after the flush. Records still buffered when a write or
// flush fails are counted as dropped.
func (l *Logger) writeBatch(batch []Record) {
	if len(batch) == 0 {
		return
	}

	l.fileMu.Lock()
	defer l.fileMu.Unlock()

	l.sink.resetRetry()
	rotation := l.state.FileRotation.Load()
	console := l.state.ConsoleWriter.Load().(*sink)
	mirror := l.state.EnableConsole.Load()
	san := l.state.Sanitizer.Load().(*sanitizer.Sanitizer)
	var pending uint64 // Buffered since the batch began or the last failure

	for i := range batch {
		record := &batch[i]
		if record.isMarker() {
			l.acks = append(l.acks, record.flushed)
			continue
		}

		l.lineBuf = record.appendLine(l.lineBuf[:0], san)

		if mirror {
			console.w.Write(l.lineBuf)
		}

		if !l.sink.ensureOpen(record.CapturedAt, rotation) {
			l.state.TotalDropped.Add(1)
			continue
		}

		if err := l.sink.write(l.lineBuf); err != nil {
			l.internalLog("%v\n", err)
			l.state.TotalDropped.Add(pending + 1)
			pending = 0
			// bufio errors are sticky, the next batch reopens the file
			l.sink.abandon()
			continue
		}
		pending++
	}

	if err := l.sink.flush(); err != nil {
		l.internalLog("%v\n", err)
		l.state.TotalDropped.Add(pending)
		l.sink.abandon()
	} else {
		l.state.TotalWritten.Add(pending)
	}

	for i, ack := range l.acks {
		close(ack)
		l.acks[i] = nil
	}
	l.acks = l.acks[:0]
}

// isClosed reports whether ch has been closed without blocking
func isClosed(ch <-chan struct{}) bool {
	select {
	case <-ch:
		return true
	default:
		return false
	}
}
