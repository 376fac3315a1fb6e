// Package events defines the event payloads published on the bus.
package events

import (
	"github.com/dshills/modeline/internal/buffer"
	"github.com/dshills/modeline/internal/event/topic"
)

// TopicBufferLoaded is published after a buffer's content has been
// read in. It is the trigger for the mode-line scan.
const TopicBufferLoaded topic.Topic = "buffer.loaded"

// BufferLoaded carries the freshly loaded buffer.
type BufferLoaded struct {
	// Path is where the content was loaded from, "" for in-memory text.
	Path string

	// Buffer is the loaded content.
	Buffer *buffer.Buffer
}
